// Package scanline is an interactive 2D scan-conversion engine.
//
// # Overview
//
// scanline converts geometric primitives (line segments, circles and
// axis-aligned ellipses) defined in continuous logical coordinates into
// discrete pixel sequences using classical incremental algorithms: DDA,
// Symmetrical DDA, Bresenham, Midpoint Circle and Midpoint Ellipse.
// Objects carry an ordered history of affine transformations (translate,
// rotate, scale, axis reflection, reflection across an arbitrary line)
// that is folded on demand to produce effective parameters; base
// parameters are never mutated except by an explicit bake.
//
// # Quick Start
//
//	import "github.com/avantika1036/scanline"
//
//	store := scanline.NewStore()
//	obj, _ := store.Create(scanline.PrimitiveLine, scanline.AlgorithmBresenham,
//		scanline.LineParams(0, 0, 40, 25),
//		scanline.Blue, scanline.StyleSolid, 1, 0)
//	_ = store.AppendTransform(obj.ID, scanline.RotateAbout(45, 20, 12.5))
//
//	canvas := scanline.NewCanvas(800, 600)
//	r := scanline.NewRenderer(canvas)
//	r.Render(store, scanline.DefaultRenderOptions())
//	_ = r.Pixmap().SavePNG("out.png")
//
// # Architecture
//
// The library is organized around pure, synchronous components:
//   - Coordinate mapping: Canvas (logical center-origin Y-up <-> screen)
//   - Scan conversion: the five rasterizers emitting Fragment sequences
//   - Styling: per-step visibility and thick-stroke geometry
//   - Transformations: ordered Transform records folded left to right
//   - Hit testing: nearest visual boundary with a shared pixel tolerance
//   - Store + persistence: ordered object collection, JSON on disk
//
// Windowing, input dispatch and on-screen presentation are external
// collaborators; see cmd/scanline-edit for an ebiten-based editor built
// on top of this package.
package scanline
