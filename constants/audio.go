package constants

import "time"

// Audio system
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	AudioMasterVolume   = 0.5
)

// Click (CTA ripple)
const (
	ClickSoundDuration = 60 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 45 * time.Millisecond
	ClickSoundFreq     = 660.0
)

// Focus tick (keyboard focus moves)
const (
	FocusSoundDuration = 25 * time.Millisecond
	FocusSoundAttack   = 1 * time.Millisecond
	FocusSoundRelease  = 20 * time.Millisecond
	FocusSoundFreq     = 1320.0
)

// Reveal chime (section fades in)
const (
	RevealSoundDuration = 180 * time.Millisecond
	RevealSoundAttack   = 10 * time.Millisecond
	RevealSoundRelease  = 150 * time.Millisecond
	RevealSoundFreq     = 880.0
)
