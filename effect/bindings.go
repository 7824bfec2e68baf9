// Package effect maps element roles to the small style updates the page
// performs in response to scroll, pointer and click events.
package effect

import (
	"time"

	"github.com/lixenwraith/showcase/clock"
	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/page"
)

// Params tunes the effects
type Params struct {
	HeaderThreshold     int // Rows scrolled before the header turns opaque
	HeaderAlphaTop      float64
	HeaderAlphaScrolled float64
	ParallaxSpeed       float64
	TiltDivisor         float64
	RippleDuration      time.Duration
}

// DefaultParams returns the stock page tuning
func DefaultParams() Params {
	return Params{
		HeaderThreshold:     4,
		HeaderAlphaTop:      0.95,
		HeaderAlphaScrolled: 0.98,
		ParallaxSpeed:       0.5,
		TiltDivisor:         10,
		RippleDuration:      600 * time.Millisecond,
	}
}

// Input is the event context passed to an effect
type Input struct {
	Now     time.Time
	ScrollY int
	X, Y    int // Pointer position, page coordinates for flowing elements, screen for fixed ones
}

// Func mutates the style of one element
type Func func(d *page.Document, e *page.Element, in Input)

// Kind selects which binding slot handles an event
type Kind int

const (
	OnScroll Kind = iota
	OnEnter
	OnLeave
	OnMove
	OnClick
)

// Binding holds the effect for each event kind, nil slots are no-ops
type Binding struct {
	Scroll Func
	Enter  Func
	Leave  Func
	Move   Func
	Click  Func
}

func (b Binding) slot(k Kind) Func {
	switch k {
	case OnScroll:
		return b.Scroll
	case OnEnter:
		return b.Enter
	case OnLeave:
		return b.Leave
	case OnMove:
		return b.Move
	case OnClick:
		return b.Click
	}
	return nil
}

// Bindings maps element roles to their effects
type Bindings map[page.Role]Binding

// NewBindings returns the page's role table
// The scheduler removes ripples after their lifetime
func NewBindings(p Params, sched clock.Scheduler) Bindings {
	return Bindings{
		page.RoleHeader:         {Scroll: HeaderBackground(p)},
		page.RoleHeroBackground: {Scroll: Parallax(p)},
		page.RoleProjectCard:    {Enter: StartFloat, Leave: ResetCard, Move: Tilt(p)},
		page.RoleLogo:           {Enter: LiftLogo, Leave: RestLogo},
		page.RoleCTA:            {Click: Ripple(p, sched)},
	}
}

// Apply runs the effect for kind on e, returns false if the role has none
func (b Bindings) Apply(k Kind, d *page.Document, e *page.Element, in Input) bool {
	if e == nil {
		return false
	}
	fn := b[e.Role].slot(k)
	if fn == nil {
		return false
	}
	fn(d, e, in)
	return true
}

// ApplyAll runs the effect for kind on every element whose role binds it
// Returns the number of elements updated
func (b Bindings) ApplyAll(k Kind, d *page.Document, in Input) int {
	n := 0
	for _, e := range d.Elements {
		if b.Apply(k, d, e, in) {
			n++
		}
	}
	return n
}

// HeaderBackground switches header opacity past the scroll threshold
func HeaderBackground(p Params) Func {
	return func(_ *page.Document, e *page.Element, in Input) {
		if in.ScrollY > p.HeaderThreshold {
			e.Style.BackgroundAlpha = p.HeaderAlphaScrolled
		} else {
			e.Style.BackgroundAlpha = p.HeaderAlphaTop
		}
	}
}

// Parallax moves the hero background at a fraction of the scroll speed
func Parallax(p Params) Func {
	return func(_ *page.Document, e *page.Element, in Input) {
		e.Style.TranslateY = float64(in.ScrollY*constants.PixelsPerRow) * p.ParallaxSpeed
	}
}

// StartFloat begins the hover float cycle
func StartFloat(_ *page.Document, e *page.Element, in Input) {
	e.Style.Hovered = true
	e.Style.Animation = page.AnimFloat
	e.Style.AnimationStart = in.Now
}

// ResetCard stops floating and flattens the tilt
func ResetCard(_ *page.Document, e *page.Element, _ Input) {
	e.Style.Hovered = false
	e.Style.Animation = ""
	e.Style.ResetTransform()
}

// Tilt rotates the card toward the pointer and lifts it
func Tilt(p Params) Func {
	return func(_ *page.Document, e *page.Element, in Input) {
		rx, ry := TiltAngles(e, in.X, in.Y, p.TiltDivisor)
		e.Style.RotateX = rx
		e.Style.RotateY = ry
		e.Style.TranslateY = -constants.CardLiftPx
	}
}

// TiltAngles converts a pointer cell inside e to rotateX/rotateY degrees
// Cell centers are converted to pixels before dividing
func TiltAngles(e *page.Element, x, y int, divisor float64) (rotateX, rotateY float64) {
	if divisor == 0 {
		return 0, 0
	}
	px := (float64(x-e.Area.X) + 0.5) * constants.PixelsPerColumn
	py := (float64(y-e.Area.Y) + 0.5) * constants.PixelsPerRow
	centerX := float64(e.Area.Width*constants.PixelsPerColumn) / 2
	centerY := float64(e.Area.Height*constants.PixelsPerRow) / 2
	return (py - centerY) / divisor, (centerX - px) / divisor
}

// LiftLogo raises and scales the logo
func LiftLogo(_ *page.Document, e *page.Element, _ Input) {
	e.Style.Hovered = true
	e.Style.TranslateY = -constants.LogoLiftPx
	e.Style.Scale = constants.LogoScale
}

// RestLogo returns the logo to rest
func RestLogo(_ *page.Document, e *page.Element, _ Input) {
	e.Style.Hovered = false
	e.Style.ResetTransform()
}

// Ripple spawns a click ripple centered on the pointer, removed after the configured lifetime
func Ripple(p Params, sched clock.Scheduler) Func {
	return func(d *page.Document, e *page.Element, in Input) {
		r := &page.Ripple{
			Owner:  e.ID,
			X:      in.X,
			Y:      in.Y,
			Size:   max(e.Area.Width, e.Area.Height),
			Born:   in.Now,
			Expire: p.RippleDuration,
		}
		d.Ripples = append(d.Ripples, r)
		sched.AfterFunc(p.RippleDuration, func() { RemoveRipple(d, r) })
	}
}

// RemoveRipple drops r from the document
func RemoveRipple(d *page.Document, r *page.Ripple) {
	for i, cur := range d.Ripples {
		if cur == r {
			d.Ripples = append(d.Ripples[:i], d.Ripples[i+1:]...)
			return
		}
	}
}
