package scanline

import "errors"

// Sentinel errors returned by store, session and rasterization
// operations. Wrapped errors carry context; test with errors.Is.
var (
	// ErrUnknownObject reports an operation referencing an id that is
	// not in the store. The store is left unchanged.
	ErrUnknownObject = errors.New("unknown object id")

	// ErrUnknownAlgorithm reports an algorithm tag with no registered
	// scan converter.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrPrimitiveMismatch reports an algorithm paired with a primitive
	// it does not draw.
	ErrPrimitiveMismatch = errors.New("algorithm does not draw this primitive")

	// ErrInvalidInput reports user input that could not be parsed; the
	// operation recovers with a documented default.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSelection reports a selection-dependent operation invoked
	// with nothing selected.
	ErrNoSelection = errors.New("no object selected")
)
