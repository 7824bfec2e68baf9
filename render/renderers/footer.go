package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
)

// FooterRenderer draws the page footer
type FooterRenderer struct{}

// NewFooterRenderer creates a new footer renderer
func NewFooterRenderer() *FooterRenderer {
	return &FooterRenderer{}
}

// Render fills the footer band and centers its text
func (r *FooterRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range ctx.Doc.ByRole(page.RoleFooter) {
		if !ctx.OnScreen(e) {
			continue
		}
		a := ctx.ScreenArea(e)
		buf.FillBg(a.X, a.Y, a.Width, a.Height, render.RgbFooterBg)
		for i, line := range page.Wrap(joinLines(e), a.Width-2*constants.PagePaddingX) {
			buf.Text(centered(a.X, a.Width, line), a.Y+1+i, line, render.RgbMuted, tcell.AttrNone)
		}
	}
}
