package scanline

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ExportPDF draws the store's objects, at their effective geometry, into
// an A4 PDF. The canvas is scaled uniformly to fit the page; each object
// keeps its color, and stroke thickness maps to the PDF line width.
func ExportPDF(path string, s *Store, c Canvas) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	k := min(pageW/float64(c.Width), pageH/float64(c.Height))

	toPage := func(lx, ly float64) (float64, float64) {
		sx, sy := c.ToScreen(lx, ly)
		return sx * k, sy * k
	}

	for _, o := range s.Objects() {
		eff := o.Effective()
		pdf.SetDrawColor(
			int(clamp255(o.Color.R*255)),
			int(clamp255(o.Color.G*255)),
			int(clamp255(o.Color.B*255)),
		)
		pdf.SetLineWidth(float64(o.Thickness) * k)

		switch o.Primitive {
		case PrimitiveLine:
			x1, y1 := toPage(eff.X1, eff.Y1)
			x2, y2 := toPage(eff.X2, eff.Y2)
			pdf.Line(x1, y1, x2, y2)
		case PrimitiveCircle:
			cx, cy := toPage(eff.XC, eff.YC)
			pdf.Ellipse(cx, cy, eff.R*k, eff.R*k, 0, "D")
		case PrimitiveEllipse:
			cx, cy := toPage(eff.XC, eff.YC)
			pdf.Ellipse(cx, cy, eff.RX*k, eff.RY*k, 0, "D")
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}
