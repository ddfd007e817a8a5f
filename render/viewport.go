package render

import "math"

// viewMargin keeps goals and walls outside the boundary on screen
const viewMargin = 0.75

// cellAspect is the height of a terminal cell relative to its width
const cellAspect = 2.0

// Viewport maps the arena floor (XZ) onto a block of terminal cells
// -Z is the top of the screen
type Viewport struct {
	X, Y          int // Top-left cell
	Width, Height int
	span          float64
	sx, sz        float64
}

// NewViewport fits a square arena of the given half extent into the cell block
func NewViewport(x, y, width, height int, halfExtent float64) Viewport {
	v := Viewport{X: x, Y: y, Width: max(width, 1), Height: max(height, 1)}
	v.span = halfExtent + viewMargin
	if v.span <= 0 {
		v.span = 1
	}

	size := 2 * v.span
	v.sz = float64(v.Height-1) / size
	v.sx = v.sz * cellAspect
	if size*v.sx > float64(v.Width-1) {
		v.sx = float64(v.Width-1) / size
		v.sz = v.sx / cellAspect
	}
	return v
}

// offsets centre the projected square inside the block
func (v Viewport) offsets() (ox, oy int) {
	size := 2 * v.span
	ox = v.X + (v.Width-1-int(math.Round(size*v.sx)))/2
	oy = v.Y + (v.Height-1-int(math.Round(size*v.sz)))/2
	return ox, oy
}

// Cell returns the terminal cell for a floor point
func (v Viewport) Cell(x, z float64) (col, row int) {
	ox, oy := v.offsets()
	col = ox + int(math.Round((x+v.span)*v.sx))
	row = oy + int(math.Round((z+v.span)*v.sz))
	return col, row
}

// Rect returns the inclusive cell range covering a floor rectangle
func (v Viewport) Rect(cx, cz, halfX, halfZ float64) (c0, r0, c1, r1 int) {
	c0, r0 = v.Cell(cx-halfX, cz-halfZ)
	c1, r1 = v.Cell(cx+halfX, cz+halfZ)
	return c0, r0, c1, r1
}

// Contains reports whether a cell lies inside the block
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Width && row >= v.Y && row < v.Y+v.Height
}
