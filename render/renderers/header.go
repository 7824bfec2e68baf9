package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
)

// HeaderRenderer draws the fixed header over the scrolled page
type HeaderRenderer struct{}

// NewHeaderRenderer creates a new header renderer
func NewHeaderRenderer() *HeaderRenderer {
	return &HeaderRenderer{}
}

// Render blends the header background at its current alpha, then logo and nav links
func (r *HeaderRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	doc := ctx.Doc
	for _, e := range doc.ByRole(page.RoleHeader) {
		a := e.Area
		alpha := e.Style.BackgroundAlpha
		for y := max(a.Y, 0); y < min(a.Bottom(), buf.Height()); y++ {
			for x := max(a.X, 0); x < min(a.Right(), buf.Width()); x++ {
				buf.Set(x, y, ' ', render.RgbHeaderFg, render.RgbHeaderBg, render.BlendAlpha, alpha, tcell.AttrNone)
			}
		}
	}

	for _, e := range doc.ByRole(page.RoleLogo) {
		r.logo(buf, e)
	}
	for _, e := range doc.ByRole(page.RoleNavLink) {
		r.navLink(buf, e, doc.HoverID == e.ID)
	}
}

// logo hover lifts by whole rows only when the transform reaches half a row
func (r *HeaderRenderer) logo(buf *render.RenderBuffer, e *page.Element) {
	a := e.Area
	y := a.Y + int(math.Round(e.Style.TranslateY/constants.PixelsPerRow))
	fg := render.RgbLogo
	attrs := tcell.AttrBold
	if e.Style.Scale > 1 {
		fg = render.Scale(fg, e.Style.Scale*1.1)
		attrs |= tcell.AttrUnderline
	}
	buf.Text(a.X+1, y, e.Title, fg, attrs)
}

func (r *HeaderRenderer) navLink(buf *render.RenderBuffer, e *page.Element, hovered bool) {
	a := e.Area
	fg := render.RgbHeaderFg
	attrs := tcell.AttrNone
	if hovered {
		fg = render.RgbLogo
	}
	if e.Style.Focused {
		attrs = tcell.AttrReverse
	}
	buf.Text(a.X+1, a.Y, e.Title, fg, attrs)
}
