package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
)

// SectionRenderer draws section titles and body text with the fade-in transition
type SectionRenderer struct{}

// NewSectionRenderer creates a new section renderer
func NewSectionRenderer() *SectionRenderer {
	return &SectionRenderer{}
}

// Render draws titles and text blocks on screen
func (r *SectionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range ctx.Doc.Elements {
		if e.Role != page.RoleSectionTitle && e.Role != page.RoleText {
			continue
		}
		if !ctx.OnScreen(e) {
			continue
		}
		op := opacity(ctx, e)
		if op <= 0 {
			continue
		}
		a := ctx.ScreenArea(e)
		y := a.Y + riseRows(op)

		if e.Role == page.RoleSectionTitle {
			fadeText(buf, centered(a.X, a.Width, e.Title), y, e.Title, render.RgbTitle, op, tcell.AttrBold)
			continue
		}
		for i, line := range page.Wrap(joinLines(e), a.Width) {
			fadeText(buf, a.X, y+i, line, render.RgbText, op, tcell.AttrNone)
		}
	}
}
