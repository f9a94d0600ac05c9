package scanline

import "math"

// HitTolerance is the pixel margin added to an object's visual boundary
// when testing a click, independent of the object's own thickness.
const HitTolerance = 10.0

// HitTest finds the object whose rendered visual boundary (accounting
// for stroke thickness) is closest to the logical point, within
// HitTolerance. Among all hits the smallest boundary distance wins;
// ties keep the earliest object in store order. Returns false if no
// object is close enough.
func (s *Store) HitTest(p Point) (int, bool) {
	bestID := -1
	best := math.Inf(1)
	for _, o := range s.objects {
		d, hit := hitDistance(p, o.Primitive, o.Effective(), o.Thickness)
		if hit && d < best {
			best = d
			bestID = o.ID
		}
	}
	return bestID, bestID != -1
}

// hitDistance returns the sort key for a hit on the object's visual
// boundary, or hit=false when the point is outside the tolerance band.
// The visual half-thickness h = (thickness-1)/2 extends the boundary of
// thick strokes outward.
func hitDistance(p Point, prim Primitive, eff Params, thickness int) (d float64, hit bool) {
	h := float64(thickness-1) / 2

	switch prim {
	case PrimitiveLine:
		dist := distanceToSegment(p, Pt(eff.X1, eff.Y1), Pt(eff.X2, eff.Y2))
		if dist <= h+HitTolerance {
			return math.Abs(dist - h), true
		}

	case PrimitiveCircle:
		dist := p.Distance(Pt(eff.XC, eff.YC))
		outer := eff.R + h
		if dist <= outer+HitTolerance {
			return math.Abs(dist - outer), true
		}

	case PrimitiveEllipse:
		center := Pt(eff.XC, eff.YC)
		outerRX, outerRY := eff.RX+h, eff.RY+h
		if outerRX > 0 && outerRY > 0 {
			nx := (p.X - center.X) / (outerRX + HitTolerance)
			ny := (p.Y - center.Y) / (outerRY + HitTolerance)
			if nx*nx+ny*ny <= 1 {
				// Approximate sort key: center distance scaled by the
				// larger outer radius. Cheap to compute but not the true
				// boundary distance, so overlapping ellipses of very
				// different eccentricity can misrank. Known limitation.
				return p.Distance(center) / math.Max(1, math.Max(outerRX, outerRY)), true
			}
			return 0, false
		}
		// Degenerate ellipse: treat as a point.
		if p.Distance(center) <= HitTolerance {
			return 0, true
		}
	}
	return 0, false
}

// distanceToSegment returns the distance from p to the closest point on
// the segment [a, b], clamping the projection to the segment.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lengthSq := ab.LengthSquared()
	if lengthSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
