package scanline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// objectJSON is the on-disk record for one drawable object. The field
// names and value encodings match the data files written by earlier
// versions of the editor.
type objectJSON struct {
	ID              int                `json:"id"`
	Type            string             `json:"type"`
	Algorithm       string             `json:"algorithm"`
	Params          map[string]float64 `json:"params"`
	Color           RGB                `json:"color"`
	Style           int                `json:"style"`
	Thickness       int                `json:"thickness"`
	Mask            uint16             `json:"mask"`
	Transformations []Transform        `json:"transformations"`
}

// Encode serializes the whole store as indented JSON.
func (s *Store) Encode(w io.Writer) error {
	records := make([]objectJSON, 0, len(s.objects))
	for _, o := range s.objects {
		transforms := o.Transforms
		if transforms == nil {
			transforms = []Transform{}
		}
		records = append(records, objectJSON{
			ID:              o.ID,
			Type:            o.Primitive.String(),
			Algorithm:       o.Algorithm.String(),
			Params:          paramsToMap(o.Primitive, o.Base),
			Color:           o.Color,
			Style:           int(o.Style),
			Thickness:       o.Thickness,
			Mask:            o.Mask,
			Transformations: transforms,
		})
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Decode reconstructs the store from JSON, replacing all in-memory
// state. A record whose algorithm or primitive name is not recognized
// is dropped with a warning rather than failing the load. The next id
// becomes max(loaded ids)+1, or 0 for an empty file.
func (s *Store) Decode(r io.Reader) error {
	var records []objectJSON
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return fmt.Errorf("decode store: %w", err)
	}

	objects := make([]*Object, 0, len(records))
	nextID := 0
	for _, rec := range records {
		algo, ok := ParseAlgorithm(rec.Algorithm)
		if !ok {
			Logger().Warn("dropping record with unmapped algorithm",
				"id", rec.ID, "algorithm", rec.Algorithm)
			continue
		}
		prim, ok := ParsePrimitive(rec.Type)
		if !ok || algo.Primitive() != prim {
			Logger().Warn("dropping record with mismatched primitive",
				"id", rec.ID, "type", rec.Type, "algorithm", rec.Algorithm)
			continue
		}
		thickness := rec.Thickness
		if thickness < 1 {
			thickness = 1
		}
		style := Style(rec.Style)
		if !style.Valid() {
			style = StyleSolid
		}
		objects = append(objects, &Object{
			ID:         rec.ID,
			Primitive:  prim,
			Algorithm:  algo,
			Base:       paramsFromMap(prim, rec.Params),
			Color:      rec.Color,
			Style:      style,
			Thickness:  thickness,
			Mask:       rec.Mask,
			Transforms: rec.Transformations,
		})
		if rec.ID >= nextID {
			nextID = rec.ID + 1
		}
	}

	s.objects = objects
	s.nextID = nextID
	Logger().Debug("store decoded", "objects", len(objects), "nextID", nextID)
	return nil
}

// Save writes the whole store to path, overwriting any previous file.
// On failure the in-memory state remains authoritative.
func (s *Store) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	if err := s.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("save store: %w", err)
	}
	return f.Close()
}

// Load discards the in-memory state and reconstructs the store from
// path. A missing file is not an error: it loads as an empty store.
// A malformed file leaves the in-memory state untouched.
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.objects = nil
		s.nextID = 0
		return nil
	}
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	defer f.Close()
	return s.Decode(f)
}

func paramsToMap(prim Primitive, p Params) map[string]float64 {
	switch prim {
	case PrimitiveLine:
		return map[string]float64{"x1": p.X1, "y1": p.Y1, "x2": p.X2, "y2": p.Y2}
	case PrimitiveCircle:
		return map[string]float64{"xc": p.XC, "yc": p.YC, "r": p.R}
	case PrimitiveEllipse:
		return map[string]float64{"xc": p.XC, "yc": p.YC, "rx": p.RX, "ry": p.RY}
	}
	return map[string]float64{}
}

func paramsFromMap(prim Primitive, m map[string]float64) Params {
	switch prim {
	case PrimitiveLine:
		return LineParams(m["x1"], m["y1"], m["x2"], m["y2"])
	case PrimitiveCircle:
		return CircleParams(m["xc"], m["yc"], m["r"])
	case PrimitiveEllipse:
		return EllipseParams(m["xc"], m["yc"], m["rx"], m["ry"])
	}
	return Params{}
}
