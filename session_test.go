package scanline

import (
	"errors"
	"testing"
)

func TestSession_DrawLine(t *testing.T) {
	sess := NewSession(NewStore())
	if err := sess.UseAlgorithm(AlgorithmDDA); err != nil {
		t.Fatalf("UseAlgorithm: %v", err)
	}
	if sess.Mode() != ModeLineP1 {
		t.Fatalf("mode = %v, want ModeLineP1", sess.Mode())
	}

	res, err := sess.Click(Pt(0, 0))
	if err != nil {
		t.Fatalf("first click: %v", err)
	}
	if res.CreatedID != -1 {
		t.Errorf("first click created %d, want nothing yet", res.CreatedID)
	}
	if sess.Mode() != ModeLineP2 {
		t.Errorf("mode after first click = %v, want ModeLineP2", sess.Mode())
	}

	res, err = sess.Click(Pt(10, 5))
	if err != nil {
		t.Fatalf("second click: %v", err)
	}
	if res.CreatedID != 0 {
		t.Fatalf("second click created %d, want 0", res.CreatedID)
	}
	if sess.Mode() != ModeIdle {
		t.Errorf("mode after completion = %v, want ModeIdle", sess.Mode())
	}

	o, ok := sess.Store().Get(0)
	if !ok {
		t.Fatal("created object missing from store")
	}
	if o.Base != LineParams(0, 0, 10, 5) {
		t.Errorf("base = %+v, want the clicked endpoints", o.Base)
	}
	if o.Algorithm != AlgorithmDDA {
		t.Errorf("algorithm = %v, want DDA", o.Algorithm)
	}
}

func TestSession_DrawCircle(t *testing.T) {
	sess := NewSession(NewStore())
	if err := sess.UseAlgorithm(AlgorithmMidpointCircle); err != nil {
		t.Fatalf("UseAlgorithm: %v", err)
	}

	if _, err := sess.Click(Pt(0, 0)); err != nil {
		t.Fatalf("center click: %v", err)
	}
	res, err := sess.Click(Pt(3, 4))
	if err != nil {
		t.Fatalf("radius click: %v", err)
	}

	o, ok := sess.Store().Get(res.CreatedID)
	if !ok {
		t.Fatal("created circle missing")
	}
	if o.Base != CircleParams(0, 0, 5) {
		t.Errorf("base = %+v, want circle at origin with radius 5", o.Base)
	}

	t.Run("coincident radius click clamps to 1", func(t *testing.T) {
		if err := sess.UseAlgorithm(AlgorithmMidpointCircle); err != nil {
			t.Fatalf("UseAlgorithm: %v", err)
		}
		if _, err := sess.Click(Pt(2, 2)); err != nil {
			t.Fatalf("center click: %v", err)
		}
		res, err := sess.Click(Pt(2, 2))
		if err != nil {
			t.Fatalf("radius click: %v", err)
		}
		o, _ := sess.Store().Get(res.CreatedID)
		if o.Base.R != 1 {
			t.Errorf("radius = %g, want clamped to 1", o.Base.R)
		}
	})
}

func TestSession_DrawEllipse(t *testing.T) {
	sess := NewSession(NewStore())
	if err := sess.UseAlgorithm(AlgorithmMidpointEllipse); err != nil {
		t.Fatalf("UseAlgorithm: %v", err)
	}

	for _, p := range []Point{Pt(0, 0), Pt(4, 1)} {
		if _, err := sess.Click(p); err != nil {
			t.Fatalf("click %v: %v", p, err)
		}
	}
	res, err := sess.Click(Pt(2, -3))
	if err != nil {
		t.Fatalf("final click: %v", err)
	}

	o, ok := sess.Store().Get(res.CreatedID)
	if !ok {
		t.Fatal("created ellipse missing")
	}
	// X radius from the horizontal offset of the second click, Y radius
	// from the vertical offset of the third.
	if o.Base != EllipseParams(0, 0, 4, 3) {
		t.Errorf("base = %+v, want ellipse rx=4 ry=3 at origin", o.Base)
	}
}

func TestSession_SelectAndTranslate(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(0, 0), Pt(10, 0))

	sess.BeginSelect()
	res, err := sess.Click(Pt(5, 2))
	if err != nil {
		t.Fatalf("select click: %v", err)
	}
	if res.SelectedID != 0 {
		t.Fatalf("selected = %d, want 0", res.SelectedID)
	}

	if err := sess.BeginTranslate(); err != nil {
		t.Fatalf("BeginTranslate: %v", err)
	}
	if _, err := sess.Click(Pt(0, 0)); err != nil {
		t.Fatalf("translate start click: %v", err)
	}
	if _, err := sess.Click(Pt(5, 5)); err != nil {
		t.Fatalf("translate end click: %v", err)
	}

	eff, err := sess.Store().EffectiveParams(0)
	if err != nil {
		t.Fatalf("EffectiveParams: %v", err)
	}
	lineApprox(t, eff, 5, 5, 15, 5)

	if sess.Selected() != -1 {
		t.Errorf("selection survived the translate, want cleared")
	}
}

func TestSession_SelectMiss(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(0, 0), Pt(10, 0))

	sess.BeginSelect()
	res, err := sess.Click(Pt(100, 100))
	if err != nil {
		t.Fatalf("select click: %v", err)
	}
	if res.SelectedID != -1 {
		t.Errorf("selected = %d, want -1 on a miss", res.SelectedID)
	}
}

func TestSession_RotateCapturesEffectiveCenter(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(0, 0), Pt(10, 0))
	if err := sess.Store().AppendTransform(0, Translate(5, 5)); err != nil {
		t.Fatalf("AppendTransform: %v", err)
	}

	selectAt(t, sess, Pt(10, 5))
	if err := sess.RotateSelected(90); err != nil {
		t.Fatalf("RotateSelected: %v", err)
	}

	// Midpoint of the moved line is (10, 5); rotating 90 degrees about it
	// stands the line upright through that point.
	eff, err := sess.Store().EffectiveParams(0)
	if err != nil {
		t.Fatalf("EffectiveParams: %v", err)
	}
	lineApprox(t, eff, 10, 0, 10, 10)
}

func TestSession_ScaleSelected(t *testing.T) {
	sess := NewSession(NewStore())
	drawCircle(t, sess, Pt(3, 4), Pt(8, 4)) // radius 5 at (3,4)

	selectAt(t, sess, Pt(8, 4))
	if err := sess.ScaleSelected(2, 2); err != nil {
		t.Fatalf("ScaleSelected: %v", err)
	}

	eff, err := sess.Store().EffectiveParams(0)
	if err != nil {
		t.Fatalf("EffectiveParams: %v", err)
	}
	// Scaling about the circle's own center grows the radius in place.
	if !approxEq(eff.XC, 3) || !approxEq(eff.YC, 4) || !approxEq(eff.R, 10) {
		t.Errorf("effective circle = (%g,%g) r=%g, want (3,4) r=10", eff.XC, eff.YC, eff.R)
	}
}

func TestSession_ReflectSelected(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(3, 4), Pt(6, 8))

	selectAt(t, sess, Pt(4, 5))
	if err := sess.ReflectSelected(AxisY); err != nil {
		t.Fatalf("ReflectSelected: %v", err)
	}

	eff, err := sess.Store().EffectiveParams(0)
	if err != nil {
		t.Fatalf("EffectiveParams: %v", err)
	}
	lineApprox(t, eff, -3, 4, -6, 8)
}

func TestSession_ReflectAcrossClickedLine(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(3, 4), Pt(5, 4))

	selectAt(t, sess, Pt(4, 4))
	if err := sess.BeginReflectLine(); err != nil {
		t.Fatalf("BeginReflectLine: %v", err)
	}
	if _, err := sess.Click(Pt(0, -5)); err != nil {
		t.Fatalf("first line click: %v", err)
	}
	if _, err := sess.Click(Pt(0, 5)); err != nil {
		t.Fatalf("second line click: %v", err)
	}

	eff, err := sess.Store().EffectiveParams(0)
	if err != nil {
		t.Fatalf("EffectiveParams: %v", err)
	}
	lineApprox(t, eff, -3, 4, -5, 4)
}

func TestSession_DeleteSelected(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(0, 0), Pt(10, 0))

	selectAt(t, sess, Pt(5, 0))
	if err := sess.DeleteSelected(); err != nil {
		t.Fatalf("DeleteSelected: %v", err)
	}
	if sess.Store().Len() != 0 {
		t.Errorf("store length = %d after delete, want 0", sess.Store().Len())
	}
	if sess.Selected() != -1 {
		t.Errorf("selection = %d after delete, want -1", sess.Selected())
	}
}

func TestSession_BakeSelected(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(0, 0), Pt(10, 0))
	if err := sess.Store().AppendTransform(0, Translate(5, 5)); err != nil {
		t.Fatalf("AppendTransform: %v", err)
	}

	selectAt(t, sess, Pt(10, 5))
	baked, err := sess.BakeSelected()
	if err != nil {
		t.Fatalf("BakeSelected: %v", err)
	}
	lineApprox(t, baked, 5, 5, 15, 5)

	o, _ := sess.Store().Get(0)
	if len(o.Transforms) != 0 {
		t.Errorf("history length after bake = %d, want 0", len(o.Transforms))
	}
}

func TestSession_EditSelected(t *testing.T) {
	sess := NewSession(NewStore())
	drawLine(t, sess, Pt(0, 0), Pt(10, 0))
	if err := sess.Store().AppendTransform(0, Translate(5, 5)); err != nil {
		t.Fatalf("AppendTransform: %v", err)
	}

	selectAt(t, sess, Pt(10, 5))
	if err := sess.EditSelected(Red, StyleDotted, 4, 0x00FF); err != nil {
		t.Fatalf("EditSelected: %v", err)
	}

	o, _ := sess.Store().Get(0)
	if o.Color != Red || o.Style != StyleDotted || o.Thickness != 4 || o.Mask != 0x00FF {
		t.Errorf("attributes after edit = %+v", o)
	}
	// Edit bakes first so later attribute changes do not replay history.
	lineApprox(t, o.Base, 5, 5, 15, 5)
	if len(o.Transforms) != 0 {
		t.Errorf("history length after edit = %d, want 0", len(o.Transforms))
	}

	t.Run("non-positive thickness keeps the old value", func(t *testing.T) {
		selectAt(t, sess, Pt(10, 5))
		if err := sess.EditSelected(Green, StyleSolid, 0, 0); err != nil {
			t.Fatalf("EditSelected: %v", err)
		}
		o, _ := sess.Store().Get(0)
		if o.Thickness != 4 {
			t.Errorf("thickness = %d, want 4 kept", o.Thickness)
		}
	})
}

func TestSession_OperationsRequireSelection(t *testing.T) {
	sess := NewSession(NewStore())

	ops := []struct {
		name string
		call func() error
	}{
		{"translate", sess.BeginTranslate},
		{"reflect line", sess.BeginReflectLine},
		{"rotate", func() error { return sess.RotateSelected(90) }},
		{"scale", func() error { return sess.ScaleSelected(2, 2) }},
		{"reflect", func() error { return sess.ReflectSelected(AxisX) }},
		{"delete", sess.DeleteSelected},
		{"bake", func() error { _, err := sess.BakeSelected(); return err }},
		{"edit", func() error { return sess.EditSelected(Red, StyleSolid, 1, 0) }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			if err := op.call(); !errors.Is(err, ErrNoSelection) {
				t.Errorf("%s without selection = %v, want ErrNoSelection", op.name, err)
			}
		})
	}
}

func TestSession_Reset(t *testing.T) {
	sess := NewSession(NewStore())
	if err := sess.UseAlgorithm(AlgorithmBresenham); err != nil {
		t.Fatalf("UseAlgorithm: %v", err)
	}
	if _, err := sess.Click(Pt(1, 1)); err != nil {
		t.Fatalf("Click: %v", err)
	}

	sess.Reset()
	if sess.Mode() != ModeIdle || len(sess.TempPoints()) != 0 || sess.Selected() != -1 {
		t.Errorf("after Reset: mode=%v temp=%v selected=%d, want idle/empty/-1",
			sess.Mode(), sess.TempPoints(), sess.Selected())
	}
	if sess.Tool().Algorithm != AlgorithmBresenham {
		t.Errorf("Reset dropped the tool algorithm")
	}
}

func TestSession_UseAlgorithm_Unknown(t *testing.T) {
	sess := NewSession(NewStore())
	if err := sess.UseAlgorithm(Algorithm(42)); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("UseAlgorithm(42) = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestSession_IdleClick(t *testing.T) {
	sess := NewSession(NewStore())
	res, err := sess.Click(Pt(0, 0))
	if err != nil {
		t.Fatalf("Click: %v", err)
	}
	if res.CreatedID != -1 || res.Message == "" {
		t.Errorf("idle click = %+v, want no object and a prompt message", res)
	}
}

func TestParseHelpers(t *testing.T) {
	t.Run("thickness", func(t *testing.T) {
		if v, err := ParseThickness("5"); v != 5 || err != nil {
			t.Errorf(`ParseThickness("5") = %d, %v`, v, err)
		}
		if v, err := ParseThickness("abc"); v != 1 || !errors.Is(err, ErrInvalidInput) {
			t.Errorf(`ParseThickness("abc") = %d, %v, want 1 and ErrInvalidInput`, v, err)
		}
		if v, err := ParseThickness("0"); v != 1 || !errors.Is(err, ErrInvalidInput) {
			t.Errorf(`ParseThickness("0") = %d, %v, want 1 and ErrInvalidInput`, v, err)
		}
	})

	t.Run("mask", func(t *testing.T) {
		if v, err := ParseMask("F0F0"); v != 0xF0F0 || err != nil {
			t.Errorf(`ParseMask("F0F0") = %#04x, %v`, v, err)
		}
		if v, err := ParseMask("zz"); v != 0 || !errors.Is(err, ErrInvalidInput) {
			t.Errorf(`ParseMask("zz") = %#04x, %v, want 0 and ErrInvalidInput`, v, err)
		}
	})

	t.Run("angle", func(t *testing.T) {
		if v, err := ParseAngle("45.5"); v != 45.5 || err != nil {
			t.Errorf(`ParseAngle("45.5") = %g, %v`, v, err)
		}
		if v, err := ParseAngle("x"); v != 0 || !errors.Is(err, ErrInvalidInput) {
			t.Errorf(`ParseAngle("x") = %g, %v, want 0 and ErrInvalidInput`, v, err)
		}
	})

	t.Run("scale factor", func(t *testing.T) {
		if v, err := ParseScaleFactor("2.5"); v != 2.5 || err != nil {
			t.Errorf(`ParseScaleFactor("2.5") = %g, %v`, v, err)
		}
		if v, err := ParseScaleFactor(""); v != 1 || !errors.Is(err, ErrInvalidInput) {
			t.Errorf(`ParseScaleFactor("") = %g, %v, want 1 and ErrInvalidInput`, v, err)
		}
	})
}

// drawLine walks the click state machine to create a DDA line.
func drawLine(t *testing.T, sess *Session, p1, p2 Point) {
	t.Helper()
	if err := sess.UseAlgorithm(AlgorithmDDA); err != nil {
		t.Fatalf("UseAlgorithm: %v", err)
	}
	for _, p := range []Point{p1, p2} {
		if _, err := sess.Click(p); err != nil {
			t.Fatalf("click %v: %v", p, err)
		}
	}
}

// drawCircle walks the click state machine to create a midpoint circle.
func drawCircle(t *testing.T, sess *Session, center, onRadius Point) {
	t.Helper()
	if err := sess.UseAlgorithm(AlgorithmMidpointCircle); err != nil {
		t.Fatalf("UseAlgorithm: %v", err)
	}
	for _, p := range []Point{center, onRadius} {
		if _, err := sess.Click(p); err != nil {
			t.Fatalf("click %v: %v", p, err)
		}
	}
}

// selectAt enters selection mode and clicks the point, failing the test
// if nothing is picked.
func selectAt(t *testing.T, sess *Session, p Point) {
	t.Helper()
	sess.BeginSelect()
	res, err := sess.Click(p)
	if err != nil {
		t.Fatalf("select click at %v: %v", p, err)
	}
	if res.SelectedID == -1 {
		t.Fatalf("nothing selected at %v", p)
	}
}
