package render

import (
	"time"

	"github.com/lixenwraith/showcase/core"
	"github.com/lixenwraith/showcase/page"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now time.Time
	Doc *page.Document

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Top page row shown at screen row 0
	ScrollY int

	// Animation timing
	RevealTransition time.Duration
	HeroDuration     time.Duration
}

// NewRenderContext snapshots the document for one frame
func NewRenderContext(doc *page.Document, now time.Time, width, height int, reveal, hero time.Duration) RenderContext {
	return RenderContext{
		Now:              now,
		Doc:              doc,
		ScreenWidth:      width,
		ScreenHeight:     height,
		ScrollY:          doc.ScrollY,
		RevealTransition: reveal,
		HeroDuration:     hero,
	}
}

// PageToScreen converts a page row to a screen row
// Returns visible=false if the row is off screen
func (rc *RenderContext) PageToScreen(py int) (int, bool) {
	sy := py - rc.ScrollY
	return sy, sy >= 0 && sy < rc.ScreenHeight
}

// ScreenArea returns an element's area in screen coordinates
func (rc *RenderContext) ScreenArea(e *page.Element) core.Area {
	a := e.Area
	if !e.Fixed {
		a.Y -= rc.ScrollY
	}
	return a
}

// OnScreen reports whether any part of e is visible
func (rc *RenderContext) OnScreen(e *page.Element) bool {
	a := rc.ScreenArea(e)
	return a.Bottom() > 0 && a.Y < rc.ScreenHeight && a.Right() > 0 && a.X < rc.ScreenWidth
}
