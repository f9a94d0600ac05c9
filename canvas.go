package scanline

import "math"

// Canvas extents and layout constants, matching the editor's drawing
// surface defaults.
const (
	MinCanvasWidth  = 400
	MinCanvasHeight = 600
	GridSpacing     = 20
)

// Canvas maps between the logical coordinate system (origin at the
// canvas center, Y grows upward) and the device coordinate system
// (origin top-left, Y grows downward). It is a pure value; mapping in
// both directions is an exact inverse for integer inputs.
type Canvas struct {
	Width, Height int
}

// NewCanvas creates a Canvas clamped to the minimum extents.
func NewCanvas(width, height int) Canvas {
	return Canvas{
		Width:  max(MinCanvasWidth, width),
		Height: max(MinCanvasHeight, height),
	}
}

// Resize returns a Canvas with the new extents, clamped to the minimums.
// Mapping midpoints are derived from the extents, so the result is ready
// to use immediately.
func (c Canvas) Resize(width, height int) Canvas {
	return NewCanvas(width, height)
}

// MidX returns the horizontal midpoint in device pixels (floor division).
func (c Canvas) MidX() int { return c.Width / 2 }

// MidY returns the vertical midpoint in device pixels (floor division).
func (c Canvas) MidY() int { return c.Height / 2 }

// ToScreen converts logical coordinates to device coordinates.
func (c Canvas) ToScreen(lx, ly float64) (sx, sy float64) {
	return lx + float64(c.MidX()), float64(c.MidY()) - ly
}

// ToLogical converts device coordinates to logical coordinates.
func (c Canvas) ToLogical(sx, sy float64) (lx, ly float64) {
	return sx - float64(c.MidX()), float64(c.MidY()) - sy
}

// SnapToGrid rounds device coordinates to the nearest grid intersection.
func (c Canvas) SnapToGrid(sx, sy float64) (float64, float64) {
	return math.Round(sx/GridSpacing) * GridSpacing,
		math.Round(sy/GridSpacing) * GridSpacing
}

// Contains reports whether the device pixel lies on the canvas.
func (c Canvas) Contains(sx, sy int) bool {
	return sx >= 0 && sx < c.Width && sy >= 0 && sy < c.Height
}
