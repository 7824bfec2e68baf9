package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/showcase/effect"
	"github.com/lixenwraith/showcase/render"
)

// Cells are about twice as tall as wide
const cellAspect = 2.0

// RippleRenderer draws expanding click ripples clipped to their owner
type RippleRenderer struct{}

// NewRippleRenderer creates a new ripple renderer
func NewRippleRenderer() *RippleRenderer {
	return &RippleRenderer{}
}

// Render screens a fading disc over the owner element, scale 0 -> 4 over the ripple lifetime
func (r *RippleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, rp := range ctx.Doc.Ripples {
		owner := ctx.Doc.Element(rp.Owner)
		if owner == nil {
			continue
		}
		t := effect.RippleProgress(rp, ctx.Now)
		radius := float64(rp.Size) / 2 * 4 * t
		alpha := 0.6 * (1 - t)
		if alpha <= 0 {
			continue
		}
		a := ctx.ScreenArea(owner)
		cy := rp.Y - ctx.ScrollY
		if owner.Fixed {
			cy = rp.Y
		}
		for y := max(a.Y, 0); y < min(a.Bottom(), buf.Height()); y++ {
			for x := max(a.X, 0); x < min(a.Right(), buf.Width()); x++ {
				dx := float64(x - rp.X)
				dy := float64(y-cy) * cellAspect
				if math.Hypot(dx, dy) > radius {
					continue
				}
				buf.Set(x, y, 0, render.RGB{}, render.RgbRipple, render.BlendScreen, alpha, tcell.AttrNone)
			}
		}
	}
}
