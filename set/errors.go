package set

import "github.com/pkg/errors"

var (
	// ErrClosed is returned by every operation on a set after Close
	ErrClosed = errors.New("set is closed")

	ErrNilSequence       = errors.New("sequence is required")
	ErrInsufficientSpace = errors.New("destination slice is too small")
)
