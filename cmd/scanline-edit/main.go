// Command scanline-edit is an interactive editor over the scanline
// core. All geometry lives in the library; this program only dispatches
// input and blits the rendered pixmap.
//
// Mouse:
//
//	left click   advance the current interaction (draw points, select,
//	             translate, define a reflection line); clicks snap to
//	             the grid
//
// Keys:
//
//	1..5    pick algorithm (DDA, Bresenham, Symmetrical DDA,
//	        Midpoint Circle, Midpoint Ellipse) and start drawing
//	Q/W/E/U pick style (solid, dotted, thick, user-defined mask)
//	S       select mode        T  translate (two clicks)
//	R / F   rotate selected ±15 degrees
//	+ / -   scale selected by 1.1 / 0.9
//	X Y O   reflect selected across the X axis, Y axis or origin
//	L       reflect selected across a clicked line
//	B       bake selected      Delete  delete selected
//	G       toggle grid        Escape  cancel interaction
//	F5 / F9 save / load the data file
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/avantika1036/scanline"
)

func main() {
	var (
		width  = flag.Int("width", 1000, "canvas width")
		height = flag.Int("height", 700, "canvas height")
		data   = flag.String("data", "graphics_data.json", "object store file")
	)
	flag.Parse()

	scanline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store := scanline.NewStore()
	if err := store.Load(*data); err != nil {
		log.Fatalf("Failed to load %s: %v", *data, err)
	}

	g := &game{
		session:  scanline.NewSession(store),
		renderer: scanline.NewRenderer(scanline.NewCanvas(*width, *height)),
		dataFile: *data,
		showGrid: true,
		status:   "Welcome! Pick an algorithm (1-5) to draw.",
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("scanline editor")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

type game struct {
	session  *scanline.Session
	renderer *scanline.Renderer
	dataFile string
	showGrid bool
	status   string
	frame    *ebiten.Image
}

func (g *game) Update() error {
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		canvas := g.renderer.Canvas()
		sx, sy := canvas.SnapToGrid(float64(mx), float64(my))
		lx, ly := canvas.ToLogical(sx, sy)
		res, err := g.session.Click(scanline.Pt(lx, ly))
		if err != nil {
			g.status = err.Error()
		} else {
			g.status = res.Message
		}
		if res.CreatedID != -1 {
			g.save()
		}
	}
	return nil
}

func (g *game) handleKeys() {
	type algoKey struct {
		key  ebiten.Key
		algo scanline.Algorithm
	}
	for _, k := range []algoKey{
		{ebiten.Key1, scanline.AlgorithmDDA},
		{ebiten.Key2, scanline.AlgorithmBresenham},
		{ebiten.Key3, scanline.AlgorithmSymmetricalDDA},
		{ebiten.Key4, scanline.AlgorithmMidpointCircle},
		{ebiten.Key5, scanline.AlgorithmMidpointEllipse},
	} {
		if inpututil.IsKeyJustPressed(k.key) {
			if err := g.session.UseAlgorithm(k.algo); err == nil {
				g.status = fmt.Sprintf("Algorithm: %s. Click to draw.", k.algo)
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.session.SetStyle(scanline.StyleSolid)
		g.status = "Style: solid."
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.session.SetStyle(scanline.StyleDotted)
		g.status = "Style: dotted."
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.session.SetStyle(scanline.StyleThick)
		g.session.SetThickness(5)
		g.status = "Style: thick (5)."
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.session.SetStyle(scanline.StyleUserDefined)
		g.session.SetMask(0xF0F0)
		g.status = "Style: user mask 0xF0F0."

	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.session.BeginSelect()
		g.status = "Click an object to select it."
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.report(g.session.BeginTranslate(), "Click start point, then destination.")
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.report(g.session.BeginReflectLine(), "Click two points of the reflection line.")

	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.transform(func() error { return g.session.RotateSelected(15) }, "Rotated +15°.")
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.transform(func() error { return g.session.RotateSelected(-15) }, "Rotated -15°.")
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.transform(func() error { return g.session.ScaleSelected(1.1, 1.1) }, "Scaled up.")
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.transform(func() error { return g.session.ScaleSelected(0.9, 0.9) }, "Scaled down.")
	case inpututil.IsKeyJustPressed(ebiten.KeyX):
		g.transform(func() error { return g.session.ReflectSelected(scanline.AxisX) }, "Reflected across X.")
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		g.transform(func() error { return g.session.ReflectSelected(scanline.AxisY) }, "Reflected across Y.")
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.transform(func() error { return g.session.ReflectSelected(scanline.AxisOrigin) }, "Reflected across origin.")

	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		_, err := g.session.BakeSelected()
		g.report(err, "Baked transformations.")
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.report(g.session.DeleteSelected(), "Object deleted.")
		g.save()

	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.showGrid = !g.showGrid
		g.status = fmt.Sprintf("Grid: %v.", g.showGrid)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.session.Reset()
		g.status = "Cancelled."

	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		if err := g.session.Store().Load(g.dataFile); err != nil {
			g.status = err.Error()
		} else {
			g.session.Reset()
			g.status = "Loaded."
		}
	}
}

func (g *game) transform(f func() error, ok string) {
	g.report(f(), ok)
	g.save()
}

func (g *game) report(err error, ok string) {
	if err != nil {
		g.status = err.Error()
		return
	}
	g.status = ok
}

func (g *game) save() {
	if err := g.session.Store().Save(g.dataFile); err != nil {
		// In-memory state stays authoritative on a failed save.
		g.status = err.Error()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	opts := scanline.DefaultRenderOptions()
	opts.ShowGrid = g.showGrid
	opts.SelectedID = g.session.Selected()
	g.renderer.Render(g.session.Store(), opts)

	for _, p := range g.session.TempPoints() {
		g.renderer.MarkPoint(p, scanline.Black)
	}
	if g.session.Mode() == scanline.ModeReflectLineP2 && len(g.session.TempPoints()) == 1 {
		mx, my := ebiten.CursorPosition()
		lx, ly := g.renderer.Canvas().ToLogical(float64(mx), float64(my))
		g.renderer.DrawGuideLine(g.session.TempPoints()[0], scanline.Pt(lx, ly), scanline.ReflectionLine)
	}

	pix := g.renderer.Pixmap()
	if g.frame == nil ||
		g.frame.Bounds().Dx() != pix.Width() || g.frame.Bounds().Dy() != pix.Height() {
		g.frame = ebiten.NewImage(pix.Width(), pix.Height())
	}
	g.frame.WritePixels(pix.Data())
	screen.DrawImage(g.frame, nil)

	ebiten.SetWindowTitle("scanline editor - " + g.status)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := g.renderer.Canvas()
	return c.Width, c.Height
}
