package arr

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a helper is called with an argument
// outside its accepted domain, such as a chunk size <= 0.
//
// Use [errors.Is] for comparisons; the returned error carries the detail:
//
//	_, err := arr.Chunk(items, 0)
//	errors.Is(err, arr.ErrInvalidArgument) // true
var ErrInvalidArgument = errors.New("invalid argument")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
