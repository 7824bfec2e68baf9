// Package renderers holds the page layers drawn by the render orchestrator.
package renderers

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/showcase/constants"
	"github.com/lixenwraith/showcase/effect"
	"github.com/lixenwraith/showcase/page"
	"github.com/lixenwraith/showcase/render"
)

// fadeInRisePx is the translateY a fade-in element starts from
const fadeInRisePx = 30.0

// opacity returns the reveal opacity, elements without fade-in are always opaque
func opacity(ctx render.RenderContext, e *page.Element) float64 {
	if !e.FadeIn {
		return 1
	}
	return effect.RevealOpacity(e.Style, ctx.Now, ctx.RevealTransition)
}

// riseRows converts the remaining fade-in offset to whole rows
func riseRows(op float64) int {
	return int(math.Round((1 - op) * fadeInRisePx / constants.PixelsPerRow))
}

// pxToRows rounds a pixel offset to rows
func pxToRows(px float64) int {
	return int(math.Round(px / constants.PixelsPerRow))
}

// fade blends fg toward the background cell color at (x, y)
func fade(buf *render.RenderBuffer, x, y int, fg render.RGB, op float64) render.RGB {
	return render.Lerp(buf.Get(x, y).Bg, fg, op)
}

// fadeText writes s with every rune blended toward its cell background
func fadeText(buf *render.RenderBuffer, x, y int, s string, fg render.RGB, op float64, attrs tcell.AttrMask) {
	for _, ch := range s {
		buf.SetFgOnly(x, y, ch, fade(buf, x, y, fg, op), attrs)
		x += runewidth.RuneWidth(ch)
	}
}

// centered returns the column that centers s inside [x, x+w)
func centered(x, w int, s string) int {
	return x + page.Center(w, runewidth.StringWidth(s))
}

// joinLines flattens element lines for wrapping
func joinLines(e *page.Element) string {
	return strings.Join(e.Lines, " ")
}
