package scanline

// Algorithm identifies one of the five scan-conversion algorithms.
// Objects store the tag, never a function reference; the tag is resolved
// through a lookup table at rasterization time (see Rasterize).
type Algorithm int

const (
	AlgorithmDDA Algorithm = iota + 1
	AlgorithmBresenham
	AlgorithmSymmetricalDDA
	AlgorithmMidpointCircle
	AlgorithmMidpointEllipse
)

// String returns the persisted name of the algorithm. The names match
// the data files written by earlier versions of the editor.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDDA:
		return "dda_line"
	case AlgorithmBresenham:
		return "bresenham_line"
	case AlgorithmSymmetricalDDA:
		return "symmetrical_dda_line"
	case AlgorithmMidpointCircle:
		return "draw_circle"
	case AlgorithmMidpointEllipse:
		return "draw_ellipse"
	}
	return "unknown"
}

// ParseAlgorithm maps a persisted name back to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, bool) {
	switch name {
	case "dda_line":
		return AlgorithmDDA, true
	case "bresenham_line":
		return AlgorithmBresenham, true
	case "symmetrical_dda_line":
		return AlgorithmSymmetricalDDA, true
	case "draw_circle":
		return AlgorithmMidpointCircle, true
	case "draw_ellipse":
		return AlgorithmMidpointEllipse, true
	}
	return 0, false
}

// Primitive returns the primitive kind the algorithm scan-converts.
func (a Algorithm) Primitive() Primitive {
	switch a {
	case AlgorithmDDA, AlgorithmBresenham, AlgorithmSymmetricalDDA:
		return PrimitiveLine
	case AlgorithmMidpointCircle:
		return PrimitiveCircle
	case AlgorithmMidpointEllipse:
		return PrimitiveEllipse
	}
	return 0
}
