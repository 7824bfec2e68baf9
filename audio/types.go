package audio

import "github.com/lixenwraith/showcase/constants"

// SoundType identifies a page sound effect
type SoundType int

const (
	SoundClick SoundType = iota
	SoundFocus
	SoundReveal
)

func (s SoundType) String() string {
	switch s {
	case SoundClick:
		return "click"
	case SoundFocus:
		return "focus"
	case SoundReveal:
		return "reveal"
	}
	return "unknown"
}

// AudioConfig holds synthesis parameters
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns quiet interface sounds
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: constants.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundClick:  0.6,
			SoundFocus:  0.3,
			SoundReveal: 0.25,
		},
	}
}

// Player is the sound surface used by the engine
type Player interface {
	Play(SoundType)
	ToggleMute() bool
}

// Silent is a Player that discards every sound
type Silent struct{}

func (Silent) Play(SoundType)   {}
func (Silent) ToggleMute() bool { return true }
