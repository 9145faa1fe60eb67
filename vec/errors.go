package vec

import "github.com/pkg/errors"

var (
	// ErrIncompatibleLength is returned when sequences cannot be recycled to
	// a common length.
	ErrIncompatibleLength = errors.New("incompatible lengths")
	// ErrDimensionMismatch is returned when operands must have equal lengths
	// or row counts and do not.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrType is returned when an argument has the wrong kind.
	ErrType = errors.New("wrong argument type")
	// ErrIndexOutOfRange is returned when a selection index does not address
	// an element of the target.
	ErrIndexOutOfRange = errors.New("index out of range")
)
