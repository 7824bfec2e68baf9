package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/showcase/effect"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
)

// Shading per degree of tilt at the card edge
const tiltShade = 0.01

// CardRenderer draws project cards: frame, text, lift shadow and tilt shading
type CardRenderer struct{}

// NewCardRenderer creates a new card renderer
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{}
}

// Render draws every visible project card
func (r *CardRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range ctx.Doc.Elements {
		if e.Role != page.RoleProjectCard || !ctx.OnScreen(e) {
			continue
		}
		op := opacity(ctx, e)
		if op <= 0 {
			continue
		}
		r.card(ctx, buf, e, op)
	}
}

func (r *CardRenderer) card(ctx render.RenderContext, buf *render.RenderBuffer, e *page.Element, op float64) {
	a := ctx.ScreenArea(e)
	a.Y += riseRows(op)

	// Lift in pixels, positive is up
	lift := -(e.Style.TranslateY + effect.FloatOffset(e.Style, ctx.Now))
	if lift > 0 {
		r.shadow(buf, a.X, a.Y, a.Width, a.Height, min(lift/20, 1)*0.6*op)
	}

	w, h := float64(max(a.Width-1, 1)), float64(max(a.Height-1, 1))
	for y := max(a.Y, 0); y < min(a.Bottom(), buf.Height()); y++ {
		ny := 2*float64(y-a.Y)/h - 1
		for x := max(a.X, 0); x < min(a.Right(), buf.Width()); x++ {
			nx := 2*float64(x-a.X)/w - 1
			shade := 1 + (e.Style.RotateY*nx-e.Style.RotateX*ny)*tiltShade
			bg := render.Scale(render.RgbCardBg, shade)
			buf.SetBgOnly(x, y, render.Lerp(buf.Get(x, y).Bg, bg, op))
		}
	}

	border := render.RgbCardBorder
	switch {
	case e.Style.Focused:
		border = render.RgbFocus
	case e.Style.Hovered:
		border = render.RgbAccent
	}
	drawFrame(buf, a.X, a.Y, a.Width, a.Height, render.Lerp(render.RgbBackground, border, op))

	inner := a.Width - 4
	if inner <= 0 {
		return
	}
	if title := page.Wrap(e.Title, inner); len(title) > 0 {
		fadeText(buf, a.X+2, a.Y+1, title[0], render.RgbTitle, op, tcell.AttrBold)
	}

	body := page.Wrap(joinLines(e), inner)
	for i := 0; i < len(body) && i < a.Height-4; i++ {
		fadeText(buf, a.X+2, a.Y+2+i, body[i], render.RgbText, op, tcell.AttrNone)
	}
	if len(e.Tags) > 0 {
		if tags := page.Wrap("#"+strings.Join(e.Tags, " #"), inner); len(tags) > 0 {
			fadeText(buf, a.X+2, a.Bottom()-2, tags[0], render.RgbTag, op, tcell.AttrNone)
		}
	}
}

// shadow darkens the row below and the column right of the card
func (r *CardRenderer) shadow(buf *render.RenderBuffer, x, y, w, h int, alpha float64) {
	for col := x + 1; col <= x+w; col++ {
		buf.Set(col, y+h, 0, render.RGB{}, render.RgbCardShadow, render.BlendAlpha, alpha, tcell.AttrNone)
	}
	for row := y + 1; row < y+h; row++ {
		buf.Set(x+w, row, 0, render.RGB{}, render.RgbCardShadow, render.BlendAlpha, alpha, tcell.AttrNone)
	}
}
