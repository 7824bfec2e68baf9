package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/showcase/effect"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
)

// HeroRenderer draws the gradient hero with its parallax dot field, headline and CTA
type HeroRenderer struct{}

// NewHeroRenderer creates a new hero renderer
func NewHeroRenderer() *HeroRenderer {
	return &HeroRenderer{}
}

// Render draws background, content and call-to-action
func (r *HeroRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	doc := ctx.Doc
	if bg := doc.Element("hero-bg"); bg != nil && ctx.OnScreen(bg) {
		r.background(ctx, buf, bg)
	}
	if content := doc.Element("hero-content"); content != nil && ctx.OnScreen(content) {
		r.content(ctx, buf, content)
	}
	if cta := doc.Element("cta"); cta != nil && ctx.OnScreen(cta) {
		r.cta(ctx, buf, cta)
	}
}

// background fills the 135 degree gradient; the dot field is shifted by the parallax offset
func (r *HeroRenderer) background(ctx render.RenderContext, buf *render.RenderBuffer, e *page.Element) {
	a := ctx.ScreenArea(e)
	shift := pxToRows(e.Style.TranslateY)
	w, h := float64(max(a.Width, 1)), float64(max(a.Height, 1))

	for y := max(a.Y, 0); y < min(a.Bottom(), buf.Height()); y++ {
		row := y - a.Y
		for x := max(a.X, 0); x < min(a.Right(), buf.Width()); x++ {
			t := (float64(row)/h + float64(x-a.X)/w) / 2
			col := render.Lerp(render.RgbHeroTop, render.RgbHeroBottom, t)
			buf.SetBgOnly(x, y, col)

			// Pattern coordinates in the background's own frame
			py := row - shift
			if py >= 0 && (x*7+py*13)%23 == 0 {
				buf.SetFgOnly(x, y, '·', render.Blend(col, render.RgbHeroDots, 0.35), tcell.AttrNone)
			}
		}
	}
}

func (r *HeroRenderer) content(ctx render.RenderContext, buf *render.RenderBuffer, e *page.Element) {
	rise, op := effect.HeroRise(e.Style, ctx.Now, ctx.HeroDuration)
	if op <= 0 {
		return
	}
	a := ctx.ScreenArea(e)
	y := a.Y + int(rise+0.5)

	fadeText(buf, centered(a.X, a.Width, e.Title), y, e.Title, render.RgbTitle, op, tcell.AttrBold)
	for i, line := range page.Wrap(joinLines(e), a.Width) {
		fadeText(buf, centered(a.X, a.Width, line), y+2+i, line, render.RgbText, op*0.9, tcell.AttrNone)
	}
}

func (r *HeroRenderer) cta(ctx render.RenderContext, buf *render.RenderBuffer, e *page.Element) {
	a := ctx.ScreenArea(e)
	bg := render.RgbCTABg
	if e.Style.Focused {
		bg = render.Scale(bg, 1.15)
	}
	buf.FillBg(a.X, a.Y, a.Width, a.Height, bg)
	buf.Text(centered(a.X, a.Width, e.Title), a.Y+a.Height/2, e.Title, render.RgbCTAFg, tcell.AttrBold)
	if e.Style.Focused {
		drawFrame(buf, a.X, a.Y, a.Width, a.Height, render.RgbFocus)
	}
}

// drawFrame outlines a rectangle with rounded corners, keeping backgrounds
func drawFrame(buf *render.RenderBuffer, x, y, w, h int, fg render.RGB) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for col := x + 1; col < right; col++ {
		buf.SetFgOnly(col, y, '─', fg, tcell.AttrNone)
		buf.SetFgOnly(col, bottom, '─', fg, tcell.AttrNone)
	}
	for row := y + 1; row < bottom; row++ {
		buf.SetFgOnly(x, row, '│', fg, tcell.AttrNone)
		buf.SetFgOnly(right, row, '│', fg, tcell.AttrNone)
	}
	buf.SetFgOnly(x, y, '╭', fg, tcell.AttrNone)
	buf.SetFgOnly(right, y, '╮', fg, tcell.AttrNone)
	buf.SetFgOnly(x, bottom, '╰', fg, tcell.AttrNone)
	buf.SetFgOnly(right, bottom, '╯', fg, tcell.AttrNone)
}
