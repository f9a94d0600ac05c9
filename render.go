package scanline

import (
	"math"
	"sort"
)

// Colors the renderer uses for chrome and selection highlighting.
var (
	BackgroundLight   = RGB{0.95, 0.95, 0.95}
	GridLight         = RGB{0.7, 0.7, 0.7}
	AxisLight         = RGB{0.4, 0.4, 0.4}
	SelectedHighlight = RGB{1.0, 0.8, 0.2}
	ReflectionLine    = RGB{0.8, 0.2, 0.8}
)

// RenderOptions controls one Render pass.
type RenderOptions struct {
	Background RGB
	ShowGrid   bool
	GridColor  RGB
	AxisColor  RGB
	// SelectedID draws that object in HighlightColor instead of its own
	// color; -1 highlights nothing.
	SelectedID     int
	HighlightColor RGB
}

// DefaultRenderOptions returns the light canvas with grid and axes on
// and nothing selected.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Background:     BackgroundLight,
		ShowGrid:       true,
		GridColor:      GridLight,
		AxisColor:      AxisLight,
		SelectedID:     -1,
		HighlightColor: SelectedHighlight,
	}
}

// Renderer rasterizes a Store into a Pixmap through a Canvas mapping.
// It is the software rendering surface the core is otherwise agnostic
// of: effective parameters flow through the scan-conversion algorithms
// and the style modulator, and visible fragments land here as pixels.
type Renderer struct {
	canvas Canvas
	pix    *Pixmap
}

// NewRenderer creates a renderer with a pixmap matching the canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{
		canvas: canvas,
		pix:    NewPixmap(canvas.Width, canvas.Height),
	}
}

// Canvas returns the renderer's coordinate mapping.
func (r *Renderer) Canvas() Canvas { return r.canvas }

// Pixmap returns the target pixel buffer.
func (r *Renderer) Pixmap() *Pixmap { return r.pix }

// Resize adapts the renderer to new canvas extents.
func (r *Renderer) Resize(width, height int) {
	r.canvas = r.canvas.Resize(width, height)
	r.pix = NewPixmap(r.canvas.Width, r.canvas.Height)
}

// Render repaints the whole store.
func (r *Renderer) Render(s *Store, opts RenderOptions) {
	r.pix.Fill(opts.Background)
	if opts.ShowGrid {
		r.drawGrid(opts.GridColor)
	}
	r.drawAxes(opts.AxisColor)

	for _, o := range s.Objects() {
		color := o.Color
		if o.ID == opts.SelectedID {
			color = opts.HighlightColor
		}
		r.DrawObject(o, color)
	}
}

// DrawObject rasterizes one object with the given color, honoring its
// style, thickness and mask.
func (r *Renderer) DrawObject(o *Object, color RGB) {
	eff := o.Effective()

	if o.Style == StyleThick {
		r.drawThick(o.Primitive, eff, o.Thickness, color)
		return
	}

	_ = Rasterize(o.Algorithm, eff, func(f Fragment) {
		if o.Style.Visible(f.Step, o.Mask) {
			r.PlotLogical(f.X, f.Y, color)
		}
	})
}

// drawThick renders a thick stroke structurally: a filled quadrilateral
// for a line, concentric solid rings for a circle or ellipse.
func (r *Renderer) drawThick(prim Primitive, eff Params, thickness int, color RGB) {
	switch prim {
	case PrimitiveLine:
		q := ThickLineQuad(eff.X1, eff.Y1, eff.X2, eff.Y2, thickness)
		var screen [4]Point
		for i, p := range q {
			sx, sy := r.canvas.ToScreen(p.X, p.Y)
			screen[i] = Pt(sx, sy)
		}
		r.fillQuad(screen, color)
	case PrimitiveCircle:
		for _, ring := range CircleRings(eff.R, thickness) {
			MidpointCircle(ri(eff.XC), ri(eff.YC), ring, func(f Fragment) {
				r.PlotLogical(f.X, f.Y, color)
			})
		}
	case PrimitiveEllipse:
		for _, ring := range EllipseRings(eff.RX, eff.RY, thickness) {
			MidpointEllipse(ri(eff.XC), ri(eff.YC), ring[0], ring[1], func(f Fragment) {
				r.PlotLogical(f.X, f.Y, color)
			})
		}
	}
}

// PlotLogical writes one logical pixel through the canvas mapping,
// dropping pixels that fall off the canvas.
func (r *Renderer) PlotLogical(lx, ly int, color RGB) {
	sx, sy := r.canvas.ToScreen(float64(lx), float64(ly))
	x, y := int(sx), int(sy)
	if r.canvas.Contains(x, y) {
		r.pix.SetPixel(x, y, color)
	}
}

// MarkPoint draws a 3x3 marker at a logical point, used by interactive
// surfaces to echo collected click points.
func (r *Renderer) MarkPoint(p Point, color RGB) {
	sx, sy := r.canvas.ToScreen(p.X, p.Y)
	cx, cy := int(sx), int(sy)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if r.canvas.Contains(cx+dx, cy+dy) {
				r.pix.SetPixel(cx+dx, cy+dy, color)
			}
		}
	}
}

// DrawGuideLine draws a 1-pixel screen-space segment between two logical
// points, used to preview a pending reflection line.
func (r *Renderer) DrawGuideLine(a, b Point, color RGB) {
	ax, ay := r.canvas.ToScreen(a.X, a.Y)
	bx, by := r.canvas.ToScreen(b.X, b.Y)
	BresenhamLine(int(ax), int(ay), int(bx), int(by), func(f Fragment) {
		if r.canvas.Contains(f.X, f.Y) {
			r.pix.SetPixel(f.X, f.Y, color)
		}
	})
}

func (r *Renderer) drawGrid(color RGB) {
	for x := 0; x < r.canvas.Width; x += GridSpacing {
		for y := 0; y < r.canvas.Height; y++ {
			r.pix.SetPixel(x, y, color)
		}
	}
	for y := 0; y < r.canvas.Height; y += GridSpacing {
		for x := 0; x < r.canvas.Width; x++ {
			r.pix.SetPixel(x, y, color)
		}
	}
}

func (r *Renderer) drawAxes(color RGB) {
	midX, midY := r.canvas.MidX(), r.canvas.MidY()
	for x := 0; x < r.canvas.Width; x++ {
		r.pix.SetPixel(x, midY, color)
		r.pix.SetPixel(x, midY-1, color)
	}
	for y := 0; y < r.canvas.Height; y++ {
		r.pix.SetPixel(midX, y, color)
		r.pix.SetPixel(midX-1, y, color)
	}
}

// fillQuad fills a convex quadrilateral given in screen coordinates
// with an even-odd scanline fill.
func (r *Renderer) fillQuad(q [4]Point, color RGB) {
	minY, maxY := q[0].Y, q[0].Y
	for _, p := range q[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(0, int(math.Ceil(minY)))
	y1 := min(r.canvas.Height-1, int(math.Floor(maxY)))

	for y := y0; y <= y1; y++ {
		fy := float64(y)
		var xs []float64
		for i := 0; i < 4; i++ {
			a, b := q[i], q[(i+1)%4]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := max(0, int(math.Ceil(xs[i])))
			x1 := min(r.canvas.Width-1, int(math.Floor(xs[i+1])))
			for x := x0; x <= x1; x++ {
				r.pix.SetPixel(x, y, color)
			}
		}
	}
}
