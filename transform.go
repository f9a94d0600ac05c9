package scanline

import (
	"encoding/json"
	"math"
)

// TransformKind tags a transformation record. The values are the
// persisted type names.
type TransformKind string

const (
	TransformTranslate   TransformKind = "translate"
	TransformRotate      TransformKind = "rotate"
	TransformScale       TransformKind = "scale"
	TransformReflect     TransformKind = "reflect"
	TransformReflectLine TransformKind = "reflect_line"
)

// Axis names a reflection axis for TransformReflect records.
type Axis string

const (
	AxisX      Axis = "x"
	AxisY      Axis = "y"
	AxisOrigin Axis = "origin"
)

// Transform is one immutable transformation record. Only the fields for
// its Kind are meaningful. Records are folded strictly left to right in
// insertion order; applying the same ordered list to the same base
// parameters is always deterministic.
type Transform struct {
	Kind TransformKind

	// Translate.
	DX, DY float64

	// Rotate: angle in degrees around (CX, CY), the center captured at
	// the moment the rotation was requested.
	Angle, CX, CY float64

	// Scale: per-axis factors around the fixed point (FX, FY) captured
	// at request time.
	SX, SY, FX, FY float64

	// Reflect across a coordinate axis or the origin.
	Axis Axis

	// ReflectLine: an arbitrary reflection line through two points.
	LineP1, LineP2 Point
}

// Translate builds a translation record.
func Translate(dx, dy float64) Transform {
	return Transform{Kind: TransformTranslate, DX: dx, DY: dy}
}

// RotateAbout builds a rotation record of angleDeg degrees around (cx, cy).
func RotateAbout(angleDeg, cx, cy float64) Transform {
	return Transform{Kind: TransformRotate, Angle: angleDeg, CX: cx, CY: cy}
}

// ScaleAbout builds a scaling record with per-axis factors around (fx, fy).
func ScaleAbout(sx, sy, fx, fy float64) Transform {
	return Transform{Kind: TransformScale, SX: sx, SY: sy, FX: fx, FY: fy}
}

// ReflectAcrossAxis builds a reflection record across the X axis, the
// Y axis or the origin.
func ReflectAcrossAxis(axis Axis) Transform {
	return Transform{Kind: TransformReflect, Axis: axis}
}

// ReflectAcrossLine builds a reflection record across the arbitrary line
// through p1 and p2.
func ReflectAcrossLine(p1, p2 Point) Transform {
	return Transform{Kind: TransformReflectLine, LineP1: p1, LineP2: p2}
}

// ApplyTransforms folds the transformation list over a copy of the base
// parameters, left to right, and returns the effective parameters. The
// base value is never modified. Records with an unrecognized kind are
// skipped.
func ApplyTransforms(prim Primitive, base Params, transforms []Transform) Params {
	p := base
	for _, t := range transforms {
		p = t.apply(prim, p)
	}
	return p
}

func (t Transform) apply(prim Primitive, p Params) Params {
	switch t.Kind {
	case TransformTranslate:
		return mapPoints(prim, p, func(q Point) Point {
			return Pt(q.X+t.DX, q.Y+t.DY)
		})

	case TransformRotate:
		sin, cos := math.Sincos(t.Angle * math.Pi / 180)
		return mapPoints(prim, p, func(q Point) Point {
			dx, dy := q.X-t.CX, q.Y-t.CY
			return Pt(dx*cos-dy*sin+t.CX, dx*sin+dy*cos+t.CY)
		})

	case TransformScale:
		p = mapPoints(prim, p, func(q Point) Point {
			return Pt((q.X-t.FX)*t.SX+t.FX, (q.Y-t.FY)*t.SY+t.FY)
		})
		switch prim {
		case PrimitiveCircle:
			// The circle radius scales by the X factor only; kept for
			// compatibility with existing data files.
			p.R *= t.SX
		case PrimitiveEllipse:
			p.RX *= t.SX
			p.RY *= t.SY
		}
		return p

	case TransformReflect:
		return mapPoints(prim, p, func(q Point) Point {
			switch t.Axis {
			case AxisX:
				return Pt(q.X, -q.Y)
			case AxisY:
				return Pt(-q.X, q.Y)
			case AxisOrigin:
				return Pt(-q.X, -q.Y)
			}
			return q
		})

	case TransformReflectLine:
		// Radii are magnitudes and never reflect; only point fields move.
		return mapPoints(prim, p, func(q Point) Point {
			return reflectPointAcrossLine(q, t.LineP1, t.LineP2)
		})
	}
	return p
}

// mapPoints applies f to every point field of the primitive: both
// endpoints of a line, or the center of a circle/ellipse.
func mapPoints(prim Primitive, p Params, f func(Point) Point) Params {
	switch prim {
	case PrimitiveLine:
		a := f(Pt(p.X1, p.Y1))
		b := f(Pt(p.X2, p.Y2))
		p.X1, p.Y1, p.X2, p.Y2 = a.X, a.Y, b.X, b.Y
	case PrimitiveCircle, PrimitiveEllipse:
		c := f(Pt(p.XC, p.YC))
		p.XC, p.YC = c.X, c.Y
	}
	return p
}

// reflectPointAcrossLine reflects q across the line through p1 and p2.
// Vertical and horizontal lines are special-cased to avoid the infinite
// slope; a degenerate line (p1 == p2) leaves the point unchanged.
func reflectPointAcrossLine(q, p1, p2 Point) Point {
	if p1 == p2 {
		return q
	}
	if p1.X == p2.X {
		return Pt(2*p1.X-q.X, q.Y)
	}
	if p1.Y == p2.Y {
		return Pt(q.X, 2*p1.Y-q.Y)
	}
	m := (p2.Y - p1.Y) / (p2.X - p1.X)
	c := p1.Y - m*p1.X
	denom := 1 + m*m
	return Pt(
		(q.X*(1-m*m)+2*m*q.Y-2*m*c)/denom,
		(q.Y*(m*m-1)+2*m*q.X+2*c)/denom,
	)
}

// transformJSON is the on-disk shape of a record; only the fields for
// the record's type are written.
type transformJSON struct {
	Type   string      `json:"type"`
	DX     float64     `json:"dx"`
	DY     float64     `json:"dy"`
	Angle  float64     `json:"angle"`
	CX     float64     `json:"cx"`
	CY     float64     `json:"cy"`
	SX     float64     `json:"sx"`
	SY     float64     `json:"sy"`
	FX     float64     `json:"fx"`
	FY     float64     `json:"fy"`
	Axis   string      `json:"axis"`
	LineP1 *[2]float64 `json:"line_p1"`
	LineP2 *[2]float64 `json:"line_p2"`
}

// MarshalJSON writes the record with its kind tag and only the fields
// that kind uses.
func (t Transform) MarshalJSON() ([]byte, error) {
	m := map[string]any{"type": string(t.Kind)}
	switch t.Kind {
	case TransformTranslate:
		m["dx"], m["dy"] = t.DX, t.DY
	case TransformRotate:
		m["angle"], m["cx"], m["cy"] = t.Angle, t.CX, t.CY
	case TransformScale:
		m["sx"], m["sy"], m["fx"], m["fy"] = t.SX, t.SY, t.FX, t.FY
	case TransformReflect:
		m["axis"] = string(t.Axis)
	case TransformReflectLine:
		m["line_p1"] = [2]float64{t.LineP1.X, t.LineP1.Y}
		m["line_p2"] = [2]float64{t.LineP2.X, t.LineP2.Y}
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads a record written by MarshalJSON or by earlier
// versions of the editor. Unknown kinds are preserved as-is and ignored
// when applied.
func (t *Transform) UnmarshalJSON(data []byte) error {
	var j transformJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*t = Transform{
		Kind:  TransformKind(j.Type),
		DX:    j.DX,
		DY:    j.DY,
		Angle: j.Angle,
		CX:    j.CX,
		CY:    j.CY,
		SX:    j.SX,
		SY:    j.SY,
		FX:    j.FX,
		FY:    j.FY,
		Axis:  Axis(j.Axis),
	}
	if j.LineP1 != nil {
		t.LineP1 = Pt(j.LineP1[0], j.LineP1[1])
	}
	if j.LineP2 != nil {
		t.LineP2 = Pt(j.LineP2[0], j.LineP2[1])
	}
	return nil
}
