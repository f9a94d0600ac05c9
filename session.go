package scanline

import (
	"fmt"
	"math"
	"strconv"
)

// Mode is the interaction state of a drawing session.
type Mode int

const (
	ModeIdle Mode = iota
	ModeLineP1
	ModeLineP2
	ModeCircleCenter
	ModeCircleRadius
	ModeEllipseCenter
	ModeEllipseRXPoint
	ModeEllipseRYPoint
	ModeSelecting
	ModeTranslate
	ModeReflectLineP1
	ModeReflectLineP2
)

// Tool holds the attributes applied to the next object drawn.
type Tool struct {
	Algorithm Algorithm
	Style     Style
	Color     RGB
	Thickness int
	Mask      uint16
}

// DefaultTool returns the session's starting tool: solid blue strokes of
// thickness 1 and no algorithm chosen yet.
func DefaultTool() Tool {
	return Tool{Style: StyleSolid, Color: Blue, Thickness: 1}
}

// ClickResult describes what a canvas click did.
type ClickResult struct {
	// CreatedID is the id of the object the click completed, or -1.
	CreatedID int
	// SelectedID is the selection after the click, or -1.
	SelectedID int
	// Message is a human-readable status line for the UI.
	Message string
}

// Session is the explicit interaction state of one editor: the current
// mode, the points collected so far, the tool for the next object and
// the current selection. It owns no geometry of its own; every mutation
// goes through the Store, and the rasterization/transform/hit-test core
// stays free of session state.
type Session struct {
	store    *Store
	mode     Mode
	temp     []Point
	tool     Tool
	selected int
}

// NewSession creates an idle session over the store with the default tool.
func NewSession(store *Store) *Session {
	return &Session{store: store, selected: -1, tool: DefaultTool()}
}

// Store returns the session's object store.
func (s *Session) Store() *Store { return s.store }

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// Selected returns the selected object id, or -1.
func (s *Session) Selected() int { return s.selected }

// Tool returns the attributes for the next object.
func (s *Session) Tool() Tool { return s.tool }

// TempPoints returns the points collected by the interaction in
// progress, for the UI to echo.
func (s *Session) TempPoints() []Point { return s.temp }

// Reset cancels any interaction in progress and returns to idle,
// keeping the tool but dropping collected points and the selection.
func (s *Session) Reset() {
	s.mode = ModeIdle
	s.temp = nil
	s.selected = -1
}

// SetColor sets the color for the next object.
func (s *Session) SetColor(c RGB) { s.tool.Color = c }

// SetStyle sets the style for the next object.
func (s *Session) SetStyle(st Style) {
	if st.Valid() {
		s.tool.Style = st
	}
}

// SetThickness sets the stroke thickness for the next object,
// clamping to a minimum of 1.
func (s *Session) SetThickness(t int) {
	if t < 1 {
		t = 1
	}
	s.tool.Thickness = t
}

// SetMask sets the 16-bit pattern for user-defined strokes.
func (s *Session) SetMask(m uint16) { s.tool.Mask = m }

// UseAlgorithm picks the algorithm for the next object and enters the
// drawing mode for its primitive. Any selection is dropped.
func (s *Session) UseAlgorithm(a Algorithm) error {
	prim := a.Primitive()
	if prim == 0 {
		return fmt.Errorf("use algorithm: %w (%d)", ErrUnknownAlgorithm, a)
	}
	s.tool.Algorithm = a
	s.temp = nil
	s.selected = -1
	switch prim {
	case PrimitiveLine:
		s.mode = ModeLineP1
	case PrimitiveCircle:
		s.mode = ModeCircleCenter
	case PrimitiveEllipse:
		s.mode = ModeEllipseCenter
	}
	return nil
}

// BeginSelect enters selection mode: the next click picks the closest
// object under the cursor.
func (s *Session) BeginSelect() {
	s.mode = ModeSelecting
	s.temp = nil
	s.selected = -1
}

// BeginTranslate starts a click-pair translation of the selected object.
func (s *Session) BeginTranslate() error {
	if s.selected == -1 {
		return fmt.Errorf("translate: %w", ErrNoSelection)
	}
	s.mode = ModeTranslate
	s.temp = nil
	return nil
}

// BeginReflectLine starts a click-pair definition of an arbitrary
// reflection line for the selected object.
func (s *Session) BeginReflectLine() error {
	if s.selected == -1 {
		return fmt.Errorf("reflect line: %w", ErrNoSelection)
	}
	s.mode = ModeReflectLineP1
	s.temp = nil
	return nil
}

// Click feeds one logical canvas point into the interaction state
// machine and performs whatever the current mode calls for: collecting
// a point, completing an object, selecting, translating or defining a
// reflection line.
func (s *Session) Click(p Point) (ClickResult, error) {
	res := ClickResult{CreatedID: -1, SelectedID: s.selected}

	switch s.mode {
	case ModeLineP1:
		s.temp = append(s.temp, p)
		s.mode = ModeLineP2
		res.Message = fmt.Sprintf("Line P1: (%g, %g). Click P2.", p.X, p.Y)

	case ModeLineP2:
		p1 := s.temp[0]
		obj, err := s.store.Create(PrimitiveLine, s.tool.Algorithm,
			LineParams(p1.X, p1.Y, p.X, p.Y),
			s.tool.Color, s.tool.Style, s.tool.Thickness, s.tool.Mask)
		if err != nil {
			s.Reset()
			return res, err
		}
		s.finishDrawing()
		res.CreatedID = obj.ID
		res.Message = fmt.Sprintf("Line %d drawn.", obj.ID)

	case ModeCircleCenter:
		s.temp = append(s.temp, p)
		s.mode = ModeCircleRadius
		res.Message = fmt.Sprintf("Circle center: (%g, %g). Click for radius.", p.X, p.Y)

	case ModeCircleRadius:
		c := s.temp[0]
		r := int(c.Distance(p))
		if r == 0 {
			r = 1
		}
		obj, err := s.store.Create(PrimitiveCircle, s.tool.Algorithm,
			CircleParams(c.X, c.Y, float64(r)),
			s.tool.Color, s.tool.Style, s.tool.Thickness, s.tool.Mask)
		if err != nil {
			s.Reset()
			return res, err
		}
		s.finishDrawing()
		res.CreatedID = obj.ID
		res.Message = fmt.Sprintf("Circle %d drawn, radius %d.", obj.ID, r)

	case ModeEllipseCenter:
		s.temp = append(s.temp, p)
		s.mode = ModeEllipseRXPoint
		res.Message = fmt.Sprintf("Ellipse center: (%g, %g). Click for X radius.", p.X, p.Y)

	case ModeEllipseRXPoint:
		s.temp = append(s.temp, p)
		s.mode = ModeEllipseRYPoint
		res.Message = "Click for Y radius."

	case ModeEllipseRYPoint:
		c := s.temp[0]
		rx := int(math.Abs(s.temp[1].X - c.X))
		ry := int(math.Abs(p.Y - c.Y))
		if rx == 0 {
			rx = 1
		}
		if ry == 0 {
			ry = 1
		}
		obj, err := s.store.Create(PrimitiveEllipse, s.tool.Algorithm,
			EllipseParams(c.X, c.Y, float64(rx), float64(ry)),
			s.tool.Color, s.tool.Style, s.tool.Thickness, s.tool.Mask)
		if err != nil {
			s.Reset()
			return res, err
		}
		s.finishDrawing()
		res.CreatedID = obj.ID
		res.Message = fmt.Sprintf("Ellipse %d drawn, rx %d, ry %d.", obj.ID, rx, ry)

	case ModeSelecting:
		id, ok := s.store.HitTest(p)
		s.mode = ModeIdle
		if ok {
			s.selected = id
			res.Message = fmt.Sprintf("Object %d selected.", id)
		} else {
			s.selected = -1
			res.Message = "No object selected."
		}

	case ModeTranslate:
		if len(s.temp) == 0 {
			s.temp = append(s.temp, p)
			res.Message = "Translation start point set. Click destination."
			break
		}
		start := s.temp[0]
		dx, dy := p.X-start.X, p.Y-start.Y
		if err := s.store.AppendTransform(s.selected, Translate(dx, dy)); err != nil {
			s.Reset()
			return res, err
		}
		res.Message = fmt.Sprintf("Translated by (%g, %g).", dx, dy)
		s.Reset()

	case ModeReflectLineP1:
		s.temp = append(s.temp, p)
		s.mode = ModeReflectLineP2
		res.Message = "Reflection line P1 set. Click P2."

	case ModeReflectLineP2:
		p1 := s.temp[0]
		if err := s.store.AppendTransform(s.selected, ReflectAcrossLine(p1, p)); err != nil {
			s.Reset()
			return res, err
		}
		res.Message = fmt.Sprintf("Reflected across line (%g, %g)-(%g, %g).", p1.X, p1.Y, p.X, p.Y)
		s.Reset()

	default:
		res.Message = "Select an algorithm or action first."
	}

	res.SelectedID = s.selected
	return res, nil
}

// finishDrawing returns to idle after an object-completing click.
func (s *Session) finishDrawing() {
	s.mode = ModeIdle
	s.temp = nil
	s.selected = -1
}

// RotateSelected appends a rotation of the selected object around its
// current effective center (midpoint of a line's endpoints, center of a
// circle/ellipse), captured now.
func (s *Session) RotateSelected(angleDeg float64) error {
	o, err := s.requireSelection("rotate")
	if err != nil {
		return err
	}
	c := o.Effective().Center(o.Primitive)
	if err := s.store.AppendTransform(o.ID, RotateAbout(angleDeg, c.X, c.Y)); err != nil {
		return err
	}
	s.Reset()
	return nil
}

// ScaleSelected appends a scaling of the selected object around its
// current effective center, captured now.
func (s *Session) ScaleSelected(sx, sy float64) error {
	o, err := s.requireSelection("scale")
	if err != nil {
		return err
	}
	c := o.Effective().Center(o.Primitive)
	if err := s.store.AppendTransform(o.ID, ScaleAbout(sx, sy, c.X, c.Y)); err != nil {
		return err
	}
	s.Reset()
	return nil
}

// ReflectSelected appends an axis reflection of the selected object.
func (s *Session) ReflectSelected(axis Axis) error {
	o, err := s.requireSelection("reflect")
	if err != nil {
		return err
	}
	if err := s.store.AppendTransform(o.ID, ReflectAcrossAxis(axis)); err != nil {
		return err
	}
	s.Reset()
	return nil
}

// DeleteSelected removes the selected object from the store.
func (s *Session) DeleteSelected() error {
	o, err := s.requireSelection("delete")
	if err != nil {
		return err
	}
	if err := s.store.Delete(o.ID); err != nil {
		return err
	}
	s.Reset()
	return nil
}

// BakeSelected collapses the selected object's transformation history
// into its base parameters and returns the new base.
func (s *Session) BakeSelected() (Params, error) {
	o, err := s.requireSelection("bake")
	if err != nil {
		return Params{}, err
	}
	return s.store.Bake(o.ID)
}

// EditSelected bakes the selected object, then replaces its visual
// attributes. A non-positive thickness keeps the old value, matching
// the interactive edit flow.
func (s *Session) EditSelected(color RGB, style Style, thickness int, mask uint16) error {
	o, err := s.requireSelection("edit")
	if err != nil {
		return err
	}
	if _, err := s.store.Bake(o.ID); err != nil {
		return err
	}
	o.Color = color
	if style.Valid() {
		o.Style = style
	}
	if thickness >= 1 {
		o.Thickness = thickness
	}
	o.Mask = mask
	s.Reset()
	return nil
}

func (s *Session) requireSelection(op string) (*Object, error) {
	if s.selected == -1 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSelection)
	}
	id := s.selected
	o, ok := s.store.Get(id)
	if !ok {
		s.selected = -1
		return nil, fmt.Errorf("%s: %w (%d)", op, ErrUnknownObject, id)
	}
	return o, nil
}

// ParseThickness parses a thickness entry. Non-numeric or non-positive
// input falls back to 1 and reports ErrInvalidInput; the caller shows
// the message and continues.
func ParseThickness(text string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil || v <= 0 {
		Logger().Warn("invalid thickness, using default", "input", text)
		return 1, fmt.Errorf("thickness %q: %w", text, ErrInvalidInput)
	}
	return v, nil
}

// ParseMask parses a 16-bit hex pattern entry (e.g. "F0F0"). Invalid
// input falls back to 0 and reports ErrInvalidInput.
func ParseMask(text string) (uint16, error) {
	v, err := strconv.ParseUint(text, 16, 16)
	if err != nil {
		Logger().Warn("invalid mask, using default", "input", text)
		return 0, fmt.Errorf("mask %q: %w", text, ErrInvalidInput)
	}
	return uint16(v), nil
}

// ParseAngle parses a rotation angle in degrees. Invalid input falls
// back to 0 and reports ErrInvalidInput.
func ParseAngle(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		Logger().Warn("invalid angle, using default", "input", text)
		return 0, fmt.Errorf("angle %q: %w", text, ErrInvalidInput)
	}
	return v, nil
}

// ParseScaleFactor parses a scale factor. Invalid input falls back to 1
// and reports ErrInvalidInput.
func ParseScaleFactor(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		Logger().Warn("invalid scale factor, using default", "input", text)
		return 1, fmt.Errorf("scale factor %q: %w", text, ErrInvalidInput)
	}
	return v, nil
}
