package list

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-immutable/arr"
)

// Sentinel errors returned by List operations.
var (
	// ErrInvalidArgument is returned, or used as a panic value, when an
	// operation is called with an argument outside its domain: a step <= 0
	// in [Range], a size <= 0 in [List.Chunk], or a nil callback. It is the
	// same value as [arr.ErrInvalidArgument].
	ErrInvalidArgument = arr.ErrInvalidArgument

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("macro not found")
)

// nilCallback is the panic value raised by operations whose mandatory
// callback is nil.
func nilCallback(op string) error {
	return fmt.Errorf("%w: list.%s: callback must not be nil", ErrInvalidArgument, op)
}
