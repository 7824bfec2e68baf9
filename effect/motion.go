package effect

import (
	"time"

	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/vmath"
)

// Scroller animates the scroll offset toward a target with ease-in-out
type Scroller struct {
	from, to int
	start    time.Time
	duration time.Duration
	active   bool
}

// Start begins a smooth scroll, replacing any scroll in progress
func (s *Scroller) Start(from, to int, now time.Time, duration time.Duration) {
	s.from = from
	s.to = to
	s.start = now
	s.duration = duration
	s.active = from != to
}

// Stop abandons the animation, e.g. on manual scroll
func (s *Scroller) Stop() {
	s.active = false
}

// Active reports whether an animation is running
func (s *Scroller) Active() bool {
	return s.active
}

// Target returns the destination offset
func (s *Scroller) Target() int {
	return s.to
}

// Step returns the offset for now and whether the animation continues
func (s *Scroller) Step(now time.Time) (int, bool) {
	if !s.active {
		return s.to, false
	}
	t := vmath.Progress(float64(now.Sub(s.start)), float64(s.duration))
	y := int(vmath.Lerp(float64(s.from), float64(s.to), vmath.EaseInOutCubic(t)) + 0.5)
	if t >= 1 {
		s.active = false
		return s.to, false
	}
	return y, true
}

// FloatOffset returns the float keyframe translateY in pixels, zero when not floating
func FloatOffset(s page.Style, now time.Time) float64 {
	if s.Animation != page.AnimFloat {
		return 0
	}
	phase := float64(now.Sub(s.AnimationStart)) / float64(constants.FloatCycle)
	return -constants.FloatAmplitudePx * vmath.EaseInOutSine(phase)
}

// RevealOpacity returns the fade-in opacity at now for a revealed element
func RevealOpacity(s page.Style, now time.Time, transition time.Duration) float64 {
	if !s.Visible {
		return 0
	}
	return vmath.EaseOutCubic(vmath.Progress(float64(now.Sub(s.RevealedAt)), float64(transition)))
}

// HeroRise returns the fadeInUp row offset and opacity for the hero content
func HeroRise(s page.Style, now time.Time, duration time.Duration) (rows float64, opacity float64) {
	if s.Animation != page.AnimFadeInUp {
		return 0, 1
	}
	t := vmath.EaseOutCubic(vmath.Progress(float64(now.Sub(s.AnimationStart)), float64(duration)))
	return float64(constants.HeroRiseRows) * (1 - t), t
}

// RippleProgress returns the ripple expansion in [0, 1]
func RippleProgress(r *page.Ripple, now time.Time) float64 {
	return vmath.Progress(float64(now.Sub(r.Born)), float64(r.Expire))
}
