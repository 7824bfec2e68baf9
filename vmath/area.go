package vmath

import "github.com/lixenwraith/showcase/core"

// AreaCenter returns the center point of the area
func AreaCenter(a core.Area) core.Point {
	return core.Point{
		X: a.X + a.Width/2,
		Y: a.Y + a.Height/2,
	}
}

// AreaContains checks if point is within area
func AreaContains(a core.Area, x, y int) bool {
	return x >= a.X && x < a.Right() && y >= a.Y && y < a.Bottom()
}

// AreaIntersect returns the overlap of a and b and whether they touch
// Edge-adjacent areas touch with a zero-size overlap, matching viewport observer semantics
func AreaIntersect(a, b core.Area) (core.Area, bool) {
	x0 := max(a.X, b.X)
	y0 := max(a.Y, b.Y)
	x1 := min(a.Right(), b.Right())
	y1 := min(a.Bottom(), b.Bottom())
	if x1 < x0 || y1 < y0 {
		return core.Area{}, false
	}
	return core.Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, true
}

// AreaExpand grows the area by the given edge offsets, negative values shrink it
// Dimensions clamp at zero
func AreaExpand(a core.Area, top, right, bottom, left int) core.Area {
	out := core.Area{
		X:      a.X - left,
		Y:      a.Y - top,
		Width:  a.Width + left + right,
		Height: a.Height + top + bottom,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}
