package brand

import "errors"

var (
	// ErrUnknownField is returned when an update names a field outside the
	// set its variant may address.
	ErrUnknownField = errors.New("brand: unknown field")
	// ErrIndexOutOfRange is returned when a list update addresses an element
	// that does not exist. Lists are never grown by element updates.
	ErrIndexOutOfRange = errors.New("brand: list index out of range")
	// ErrInvalidPath is returned when a dotted field path cannot be parsed.
	ErrInvalidPath = errors.New("brand: invalid field path")
)
