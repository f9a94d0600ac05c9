package scanline

// Style is the stroke visibility policy applied during scan conversion.
// The integer codes are the persisted values.
type Style int

const (
	StyleSolid Style = iota + 1
	StyleDotted
	StyleThick
	StyleUserDefined
)

// String returns a display name for the style.
func (s Style) String() string {
	switch s {
	case StyleSolid:
		return "solid"
	case StyleDotted:
		return "dotted"
	case StyleThick:
		return "thick"
	case StyleUserDefined:
		return "user-defined"
	}
	return "unknown"
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s >= StyleSolid && s <= StyleUserDefined
}

// Visible decides whether the fragment at the given step is plotted.
// Solid and thick strokes plot every step (thick strokes are rendered
// structurally, see ThickLineQuad and the ring helpers, so their
// per-step answer is always true). Dotted strokes plot two steps out of
// every four. User-defined strokes consult bit (step mod 16) of the mask.
func (s Style) Visible(step int, mask uint16) bool {
	switch s {
	case StyleSolid, StyleThick:
		return true
	case StyleDotted:
		return step%4 < 2
	case StyleUserDefined:
		return mask>>(step%16)&1 == 1
	}
	return false
}

// Quad is a filled quadrilateral in logical coordinates, listed in
// perimeter order.
type Quad [4]Point

// ThickLineQuad builds the quadrilateral covering a line stroked with
// the given thickness: both endpoints offset by half the thickness along
// the unit normal of the line direction. A zero-length line gets a zero
// offset and collapses to a point.
func ThickLineQuad(x1, y1, x2, y2 float64, thickness int) Quad {
	n := Pt(x2-x1, y2-y1).Perp().Normalize().Mul(float64(thickness) / 2)
	p1, p2 := Pt(x1, y1), Pt(x2, y2)
	return Quad{p1.Sub(n), p1.Add(n), p2.Add(n), p2.Sub(n)}
}

// CircleRings returns the radii of the concentric solid circles that
// simulate a thick circle stroke: thickness rings spanning
// r ± (thickness-1)/2. Rings whose radius falls below 1 are skipped.
func CircleRings(r float64, thickness int) []int {
	rings := make([]int, 0, thickness)
	for i := 0; i < thickness; i++ {
		offset := r + float64(i) - float64(thickness-1)/2
		if offset >= 1 {
			rings = append(rings, int(offset))
		}
	}
	return rings
}

// EllipseRings returns the (rx, ry) radius pairs of the concentric solid
// ellipses simulating a thick ellipse stroke. Pairs where either radius
// falls below 1 are skipped.
func EllipseRings(rx, ry float64, thickness int) [][2]int {
	rings := make([][2]int, 0, thickness)
	for i := 0; i < thickness; i++ {
		d := float64(i) - float64(thickness-1)/2
		orx, ory := rx+d, ry+d
		if orx >= 1 && ory >= 1 {
			rings = append(rings, [2]int{int(orx), int(ory)})
		}
	}
	return rings
}
