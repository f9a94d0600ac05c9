package scanline

// Primitive identifies the geometric kind of a drawable object.
type Primitive int

const (
	PrimitiveLine Primitive = iota + 1
	PrimitiveCircle
	PrimitiveEllipse
)

// String returns the persisted name of the primitive.
func (p Primitive) String() string {
	switch p {
	case PrimitiveLine:
		return "line"
	case PrimitiveCircle:
		return "circle"
	case PrimitiveEllipse:
		return "ellipse"
	}
	return "unknown"
}

// ParsePrimitive maps a persisted name back to a Primitive.
func ParsePrimitive(name string) (Primitive, bool) {
	switch name {
	case "line":
		return PrimitiveLine, true
	case "circle":
		return PrimitiveCircle, true
	case "ellipse":
		return PrimitiveEllipse, true
	}
	return 0, false
}

// Params holds the primitive-specific base parameters of an object.
// Lines use X1..Y2, circles use XC, YC, R and ellipses use XC, YC, RX, RY;
// the unused fields stay zero. Params is a plain value: transformation
// folding copies it and never writes back.
type Params struct {
	X1, Y1, X2, Y2 float64
	XC, YC         float64
	R              float64
	RX, RY         float64
}

// LineParams builds the parameters of a line segment.
func LineParams(x1, y1, x2, y2 float64) Params {
	return Params{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// CircleParams builds the parameters of a circle.
func CircleParams(xc, yc, r float64) Params {
	return Params{XC: xc, YC: yc, R: r}
}

// EllipseParams builds the parameters of an axis-aligned ellipse.
func EllipseParams(xc, yc, rx, ry float64) Params {
	return Params{XC: xc, YC: yc, RX: rx, RY: ry}
}

// Center returns the geometric center of the primitive: the midpoint of
// a line's endpoints, or the center field of a circle/ellipse. Rotation
// and scaling requests capture this point at request time.
func (p Params) Center(prim Primitive) Point {
	if prim == PrimitiveLine {
		return Pt(p.X1, p.Y1).Midpoint(Pt(p.X2, p.Y2))
	}
	return Pt(p.XC, p.YC)
}

// Object is a drawable primitive together with its rendering attributes
// and ordered transformation history. Base parameters are only ever
// replaced by Store.Bake; all other computation derives effective state
// fresh from Base plus Transforms.
type Object struct {
	ID         int
	Primitive  Primitive
	Algorithm  Algorithm
	Base       Params
	Color      RGB
	Style      Style
	Thickness  int
	Mask       uint16
	Transforms []Transform
}

// Effective returns the object's parameters with every transformation
// record folded in, in insertion order.
func (o *Object) Effective() Params {
	return ApplyTransforms(o.Primitive, o.Base, o.Transforms)
}
