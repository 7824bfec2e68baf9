// Package page holds the laid-out portfolio page: elements, their roles and
// their mutable presentation state.
package page

import (
	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/core"
	"github.com/lixenwraith/showcase/vmath"
)

// Document is the live page for one session
type Document struct {
	Content  *Content
	Elements []*Element
	byID     map[string]*Element

	Width  int // Screen width used for layout
	Height int // Total page height in rows

	ScrollY int
	Loaded  bool

	FocusID string
	HoverID string

	Ripples []*Ripple
}

// New builds and lays out a document for the given screen width
func New(c *Content, width int) *Document {
	d := &Document{
		Content:  c,
		Elements: build(c),
	}
	d.byID = make(map[string]*Element, len(d.Elements))
	for _, e := range d.Elements {
		d.byID[e.ID] = e
	}
	d.Height = d.layout(width)
	return d
}

// Relayout recomputes areas for a new width, presentation state is kept
func (d *Document) Relayout(width int) {
	d.Height = d.layout(width)
}

// Element returns the element with id, nil if absent
func (d *Document) Element(id string) *Element {
	return d.byID[id]
}

// ByRole returns elements of role r in document order
func (d *Document) ByRole(r Role) []*Element {
	var out []*Element
	for _, e := range d.Elements {
		if e.Role == r {
			out = append(out, e)
		}
	}
	return out
}

// Cards returns the project cards in document order
func (d *Document) Cards() []*Element {
	return d.ByRole(RoleProjectCard)
}

// Focusables returns the keyboard focus order
func (d *Document) Focusables() []*Element {
	var out []*Element
	for _, e := range d.Elements {
		if e.Focusable() {
			out = append(out, e)
		}
	}
	return out
}

// FadeIns returns elements awaiting a reveal transition
func (d *Document) FadeIns() []*Element {
	var out []*Element
	for _, e := range d.Elements {
		if e.FadeIn {
			out = append(out, e)
		}
	}
	return out
}

// Focused returns the focused element, nil if none
func (d *Document) Focused() *Element {
	if d.FocusID == "" {
		return nil
	}
	return d.byID[d.FocusID]
}

// SetFocus moves focus to id, empty clears it
func (d *Document) SetFocus(id string) {
	if prev := d.Focused(); prev != nil {
		prev.Style.Focused = false
	}
	d.FocusID = ""
	if e := d.byID[id]; e != nil && e.Focusable() {
		e.Style.Focused = true
		d.FocusID = id
	}
}

// MaxScroll returns the largest scroll offset for a viewport of the given height
func (d *Document) MaxScroll(viewHeight int) int {
	return max(0, d.Height-viewHeight)
}

// ClampScroll limits y to the scrollable range
func (d *Document) ClampScroll(y, viewHeight int) int {
	return min(max(y, 0), d.MaxScroll(viewHeight))
}

// SectionTop returns the scroll offset that aligns section id below the fixed header
func (d *Document) SectionTop(id string) (int, bool) {
	e := d.byID[id]
	if e == nil || e.Role != RoleSection {
		return 0, false
	}
	return max(0, e.Area.Y-constants.HeaderHeight), true
}

// Viewport returns the visible page region for a screen of the given size
func (d *Document) Viewport(width, height int) core.Area {
	return core.Area{X: 0, Y: d.ScrollY, Width: width, Height: height}
}

// HitTest returns the innermost element under screen cell (sx, sy)
// Fixed elements take precedence; others are tested in page coordinates
func (d *Document) HitTest(sx, sy int) *Element {
	for i := len(d.Elements) - 1; i >= 0; i-- {
		e := d.Elements[i]
		if e.Fixed && vmath.AreaContains(e.Area, sx, sy) {
			return e
		}
	}
	py := sy + d.ScrollY
	for i := len(d.Elements) - 1; i >= 0; i-- {
		e := d.Elements[i]
		if !e.Fixed && vmath.AreaContains(e.Area, sx, py) {
			return e
		}
	}
	return nil
}

// ToPage converts a screen row to a page row for non-fixed elements
func (d *Document) ToPage(sy int) int {
	return sy + d.ScrollY
}

// Adopt carries session state from a previous document of the same page
// Revealed elements stay revealed, matched by id
func (d *Document) Adopt(prev *Document) {
	if prev == nil {
		return
	}
	d.Loaded = prev.Loaded
	d.ScrollY = prev.ScrollY
	for _, old := range prev.Elements {
		if e := d.byID[old.ID]; e != nil && old.Style.Visible {
			e.Style.Visible = true
			e.Style.RevealedAt = old.Style.RevealedAt
		}
	}
	if hero := prev.Element("hero-content"); hero != nil {
		if e := d.Element("hero-content"); e != nil {
			e.Style.Animation = hero.Style.Animation
			e.Style.AnimationStart = hero.Style.AnimationStart
		}
	}
	d.SetFocus(prev.FocusID)
}
