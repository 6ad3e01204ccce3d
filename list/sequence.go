package list

import "iter"

// Sequence is the read-only surface of [List][T].
//
// Accept Sequence in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *List type.
type Sequence[T any] interface {
	// At returns the item at index i; negative indexes count from the end.
	At(i int) (T, bool)

	// Len returns the number of items.
	Len() int

	// IsEmpty reports whether the sequence contains no items.
	IsEmpty() bool

	// Values iterates over the items from first to last.
	Values() iter.Seq[T]

	// ToSlice returns a copy of every item as a plain Go slice.
	ToSlice() []T
}

var _ Sequence[int] = (*List[int])(nil)
