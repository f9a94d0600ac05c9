package scanline

import "fmt"

// Store owns the ordered collection of drawable objects. Ids are
// non-negative, unique and monotonically increasing; a deleted id is
// never reused. All operations are synchronous and run to completion;
// the store has no concurrent writers by design.
type Store struct {
	objects []*Object
	nextID  int
}

// NewStore creates an empty store. The first created object gets id 0.
func NewStore() *Store {
	return &Store{}
}

// Len returns the number of objects in the store.
func (s *Store) Len() int { return len(s.objects) }

// NextID returns the id the next created object will receive.
func (s *Store) NextID() int { return s.nextID }

// Objects returns the objects in insertion order. The slice is shared;
// callers must not add or remove elements.
func (s *Store) Objects() []*Object { return s.objects }

// Get returns the object with the given id.
func (s *Store) Get(id int) (*Object, bool) {
	for _, o := range s.objects {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// Create adds a new object with a fresh id and returns it. The algorithm
// must draw the given primitive; a non-positive thickness falls back to 1
// and an invalid style falls back to solid.
func (s *Store) Create(prim Primitive, algo Algorithm, base Params, color RGB, style Style, thickness int, mask uint16) (*Object, error) {
	if algo.Primitive() == 0 {
		return nil, fmt.Errorf("create: %w (%d)", ErrUnknownAlgorithm, algo)
	}
	if algo.Primitive() != prim {
		return nil, fmt.Errorf("create: %w (%s with %s)", ErrPrimitiveMismatch, algo, prim)
	}
	if thickness < 1 {
		thickness = 1
	}
	if !style.Valid() {
		style = StyleSolid
	}
	o := &Object{
		ID:        s.nextID,
		Primitive: prim,
		Algorithm: algo,
		Base:      base,
		Color:     color,
		Style:     style,
		Thickness: thickness,
		Mask:      mask,
	}
	s.objects = append(s.objects, o)
	s.nextID++
	return o, nil
}

// Delete removes the object with the given id permanently. Its id is
// not reused.
func (s *Store) Delete(id int) error {
	for i, o := range s.objects {
		if o.ID == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete: %w (%d)", ErrUnknownObject, id)
}

// AppendTransform appends one transformation record to the object's
// history. The record becomes immutable once appended. The operation is
// all-or-nothing: on error the store is unchanged.
func (s *Store) AppendTransform(id int, t Transform) error {
	o, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("append transform: %w (%d)", ErrUnknownObject, id)
	}
	o.Transforms = append(o.Transforms, t)
	return nil
}

// EffectiveParams returns the object's parameters with its whole
// transformation history folded in.
func (s *Store) EffectiveParams(id int) (Params, error) {
	o, ok := s.Get(id)
	if !ok {
		return Params{}, fmt.Errorf("effective params: %w (%d)", ErrUnknownObject, id)
	}
	return o.Effective(), nil
}

// Bake collapses the object's transformation history: base parameters
// are replaced by the current effective parameters and the history is
// cleared. Baking twice in a row is idempotent. This is the only
// operation that rewrites base parameters.
func (s *Store) Bake(id int) (Params, error) {
	o, ok := s.Get(id)
	if !ok {
		return Params{}, fmt.Errorf("bake: %w (%d)", ErrUnknownObject, id)
	}
	o.Base = o.Effective()
	o.Transforms = nil
	return o.Base, nil
}
