package scanline

import (
	"fmt"
	"math"
)

// Fragment is one pixel produced by a scan-conversion algorithm, in
// logical coordinates. Step and Total index the fragment within the
// algorithm's walk so the style modulator can pattern the stroke.
type Fragment struct {
	X, Y        int
	Step, Total int
}

// EmitFunc receives fragments in the exact order the algorithm
// produces them.
type EmitFunc func(Fragment)

// rasterFuncs resolves an algorithm tag to its scan converter.
// Parameters are rounded to the nearest integer before stepping.
var rasterFuncs = map[Algorithm]func(Params, EmitFunc){
	AlgorithmDDA: func(p Params, emit EmitFunc) {
		DDALine(ri(p.X1), ri(p.Y1), ri(p.X2), ri(p.Y2), emit)
	},
	AlgorithmBresenham: func(p Params, emit EmitFunc) {
		BresenhamLine(ri(p.X1), ri(p.Y1), ri(p.X2), ri(p.Y2), emit)
	},
	AlgorithmSymmetricalDDA: func(p Params, emit EmitFunc) {
		SymmetricalDDALine(ri(p.X1), ri(p.Y1), ri(p.X2), ri(p.Y2), emit)
	},
	AlgorithmMidpointCircle: func(p Params, emit EmitFunc) {
		MidpointCircle(ri(p.XC), ri(p.YC), ri(p.R), emit)
	},
	AlgorithmMidpointEllipse: func(p Params, emit EmitFunc) {
		MidpointEllipse(ri(p.XC), ri(p.YC), ri(p.RX), ri(p.RY), emit)
	},
}

// Rasterize scan-converts the primitive described by params with the
// given algorithm. Fragments arrive in a deterministic, order-preserving
// sequence; identical inputs always produce identical output.
func Rasterize(algo Algorithm, params Params, emit EmitFunc) error {
	f, ok := rasterFuncs[algo]
	if !ok {
		return fmt.Errorf("rasterize: %w (%d)", ErrUnknownAlgorithm, algo)
	}
	f(params, emit)
	return nil
}

// DDALine walks from (x1,y1) to (x2,y2) with the simple DDA algorithm:
// steps = max(|dx|,|dy|), per-axis float increments, each position
// rounded to the nearest pixel. A zero-length line emits a single
// fragment.
func DDALine(x1, y1, x2, y2 int, emit EmitFunc) {
	dx, dy := x2-x1, y2-y1
	steps := max(intAbs(dx), intAbs(dy))
	if steps == 0 {
		emit(Fragment{X: x1, Y: y1})
		return
	}
	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	x, y := float64(x1), float64(y1)
	for i := 0; i <= steps; i++ {
		emit(Fragment{X: ri(x), Y: ri(y), Step: i, Total: steps})
		x += xInc
		y += yInc
	}
}

// SymmetricalDDALine walks simultaneously from both endpoints toward the
// midpoint: the first half forward from (x1,y1), the second half
// backward from (x2,y2). Step indices continue monotonically across the
// two passes so dotted and masked styles stay continuous.
func SymmetricalDDALine(x1, y1, x2, y2 int, emit EmitFunc) {
	dx, dy := x2-x1, y2-y1
	steps := max(intAbs(dx), intAbs(dy))
	if steps == 0 {
		emit(Fragment{X: x1, Y: y1})
		return
	}
	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	half := steps / 2
	x, y := float64(x1), float64(y1)
	for i := 0; i <= half; i++ {
		emit(Fragment{X: ri(x), Y: ri(y), Step: i, Total: steps})
		x += xInc
		y += yInc
	}

	x, y = float64(x2), float64(y2)
	for i := 0; i < steps-half; i++ {
		emit(Fragment{X: ri(x), Y: ri(y), Step: i + half + 1, Total: steps})
		x -= xInc
		y -= yInc
	}
}

// BresenhamLine walks from (x1,y1) to (x2,y2) with the integer-only
// error-accumulator algorithm. Steep lines (|dy| > |dx|) swap axes for
// the walk and swap back on output. No floating point is involved.
func BresenhamLine(x1, y1, x2, y2 int, emit EmitFunc) {
	dx, dy := intAbs(x2-x1), intAbs(y2-y1)
	sx, sy := stepSign(x1, x2), stepSign(y1, y2)

	steep := dy > dx
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
		dx, dy = intAbs(x2-x1), intAbs(y2-y1)
		sx, sy = stepSign(x1, x2), stepSign(y1, y2)
	}

	p := 2*dy - dx
	x, y := x1, y1
	for i := 0; i <= dx; i++ {
		if steep {
			emit(Fragment{X: y, Y: x, Step: i, Total: dx})
		} else {
			emit(Fragment{X: x, Y: y, Step: i, Total: dx})
		}
		if p >= 0 {
			y += sy
			p -= 2 * dx
		}
		x += sx
		p += 2 * dy
	}
}

// MidpointCircle scan-converts a circle of radius r centered at (xc,yc)
// using the 8-way symmetric midpoint algorithm: start at (0, r) with
// decision variable p = 1 - r, eight reflected fragments per step.
// A zero radius still emits the center.
func MidpointCircle(xc, yc, r int, emit EmitFunc) {
	x, y := 0, r
	p := 1 - r
	step := 0
	for x <= y {
		emit(Fragment{X: xc + x, Y: yc + y, Step: step, Total: r})
		emit(Fragment{X: xc - x, Y: yc + y, Step: step, Total: r})
		emit(Fragment{X: xc + x, Y: yc - y, Step: step, Total: r})
		emit(Fragment{X: xc - x, Y: yc - y, Step: step, Total: r})
		emit(Fragment{X: xc + y, Y: yc + x, Step: step, Total: r})
		emit(Fragment{X: xc - y, Y: yc + x, Step: step, Total: r})
		emit(Fragment{X: xc + y, Y: yc - x, Step: step, Total: r})
		emit(Fragment{X: xc - y, Y: yc - x, Step: step, Total: r})
		step++

		if p < 0 {
			p += 2*x + 3
		} else {
			p += 2*(x-y) + 5
			y--
		}
		x++
	}
}

// MidpointEllipse scan-converts an axis-aligned ellipse with the
// two-region midpoint algorithm: region 1 while the boundary slope
// magnitude is below 1 (2·ry²·x < 2·rx²·y), region 2 from there down to
// y = 0, four reflected fragments per step. rx == ry degenerates to a
// circle without a special branch.
func MidpointEllipse(xc, yc, rx, ry int, emit EmitFunc) {
	total := max(rx, ry)
	rx2 := float64(rx) * float64(rx)
	ry2 := float64(ry) * float64(ry)

	x, y := 0, ry
	p1 := ry2 - rx2*float64(ry) + 0.25*rx2
	step := 0
	for 2*ry2*float64(x) < 2*rx2*float64(y) {
		emitQuad(emit, xc, yc, x, y, step, total)
		step++
		if p1 < 0 {
			x++
			p1 += 2*ry2*float64(x) + ry2
		} else {
			x++
			y--
			p1 += 2*ry2*float64(x) - 2*rx2*float64(y) + ry2
		}
	}

	fx, fy := float64(x), float64(y)
	p2 := ry2*(fx+0.5)*(fx+0.5) + rx2*(fy-1)*(fy-1) - rx2*ry2
	for y >= 0 {
		emitQuad(emit, xc, yc, x, y, step, total)
		step++
		if p2 > 0 {
			y--
			p2 -= 2*rx2*float64(y) + rx2
		} else {
			y--
			x++
			p2 += 2*ry2*float64(x) - 2*rx2*float64(y) + rx2
		}
	}
}

func emitQuad(emit EmitFunc, xc, yc, x, y, step, total int) {
	emit(Fragment{X: xc + x, Y: yc + y, Step: step, Total: total})
	emit(Fragment{X: xc - x, Y: yc + y, Step: step, Total: total})
	emit(Fragment{X: xc + x, Y: yc - y, Step: step, Total: total})
	emit(Fragment{X: xc - x, Y: yc - y, Step: step, Total: total})
}

// ri rounds to the nearest integer, halves away from zero.
func ri(v float64) int { return int(math.Round(v)) }

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func stepSign(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
