package theory

import "errors"

var (
	// ErrUnknownNoteName is returned when a root name matches no pitch class.
	ErrUnknownNoteName = errors.New("unknown note name")

	// ErrUnknownMode is returned for mode numbers outside 1-7.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrIndexOutOfRange is returned when a table index is outside its table.
	ErrIndexOutOfRange = errors.New("index out of range")
)
