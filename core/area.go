package core

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Area represents a rectangular region in cell units
// Zero Width or Height is a degenerate (line or point) area
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Right returns the exclusive right edge
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the exclusive bottom edge
func (a Area) Bottom() int {
	return a.Y + a.Height
}

// Size returns the cell count covered by the area
func (a Area) Size() int {
	if a.Width <= 0 || a.Height <= 0 {
		return 0
	}
	return a.Width * a.Height
}
