package page

import (
	"time"

	"github.com/lixenwraith/showcase/core"
)

// Role classifies an element for effect bindings and rendering
type Role int

const (
	RoleHeader Role = iota
	RoleLogo
	RoleNavLink
	RoleHero
	RoleHeroBackground
	RoleHeroContent
	RoleCTA
	RoleSection
	RoleSectionTitle
	RoleText
	RoleProjectCard
	RoleFooter
)

var roleNames = [...]string{
	RoleHeader:         "header",
	RoleLogo:           "logo",
	RoleNavLink:        "nav-link",
	RoleHero:           "hero",
	RoleHeroBackground: "hero-bg",
	RoleHeroContent:    "hero-content",
	RoleCTA:            "cta-button",
	RoleSection:        "section",
	RoleSectionTitle:   "section-title",
	RoleText:           "text",
	RoleProjectCard:    "project-card",
	RoleFooter:         "footer",
}

func (r Role) String() string {
	if int(r) >= 0 && int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Element is one laid-out node of the page
type Element struct {
	ID     string
	Role   Role
	Title  string
	Lines  []string
	Tags   []string
	Target string // Section id for links
	FadeIn bool
	Fixed  bool // Area is in screen coordinates, not page coordinates

	Area core.Area

	// Accessibility attributes
	TabIndex  int // -1 when not focusable
	AriaRole  string
	AriaLabel string

	Style Style
}

// Bounds returns the layout area, satisfies reveal.Element
func (e *Element) Bounds() core.Area {
	return e.Area
}

// Focusable reports whether the element takes keyboard focus
func (e *Element) Focusable() bool {
	return e.TabIndex >= 0
}

// Style is the mutable presentation state of an element
// Effects assign fields directly; the renderer interprets them
type Style struct {
	// Reveal
	Visible    bool
	RevealedAt time.Time

	// Header background opacity
	BackgroundAlpha float64

	// Transform, in CSS pixels and degrees
	TranslateY float64
	RotateX    float64
	RotateY    float64
	Scale      float64

	// Running animation, empty when none
	Animation      string
	AnimationStart time.Time

	Hovered bool
	Focused bool
}

// Animation names
const (
	AnimFloat    = "float"
	AnimFadeInUp = "fadeInUp"
)

// ResetTransform returns the element to its resting transform
func (s *Style) ResetTransform() {
	s.TranslateY = 0
	s.RotateX = 0
	s.RotateY = 0
	s.Scale = 1
}

// Ripple is a transient click effect inside an element
type Ripple struct {
	Owner  string
	X, Y   int // Center in page coordinates
	Size   int // Diameter in cells
	Born   time.Time
	Expire time.Duration
}
