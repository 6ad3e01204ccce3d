// Package list provides List, a generic, immutable, ordered sequence with a
// broad functional API.
//
// # Overview
//
// The central type is [List][T], a wrapper around a dense slice of T that
// is never modified after construction:
//
//	result := list.Of(5, 3, 8, 1, 9, 2).
//	    Filter(func(n, _ int) bool { return n > 2 }).
//	    Sort().
//	    Take(3)
//	fmt.Println(result) // → 3,5,8
//
// # Immutability
//
// All transformation methods return a *new* List with its own storage,
// leaving the receiver unchanged. The two exceptions return the receiver
// itself: [List.Each], which exists for side effects, and [List.Move] when
// one of its indexes is out of range.
//
// Element values are not copied: a List of pointers shares the pointees
// with whoever else holds them. Use [List.DeepClone] for an independent
// copy.
//
// # Indexes and edge cases
//
// Positional methods accept negative indexes counted from the end. Out of
// range positions, empty lists and a negative Splice delete count are
// defined outcomes, never errors. The only error is [ErrInvalidArgument],
// returned by [Range] and [List.Chunk] for a non-positive step or size, and
// used as the panic value when a mandatory callback is nil.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map], [FlatMap], [CompactMap], [Reduce], [Zip], [Enumerate],
// [GroupByKey], [CountByKey], [KeyBy], [Collapse], and the numeric helpers
// [Range], [Sum], [Average], [MinOf], [MaxOf], [SortOrdered].
//
// # Numbers
//
// [List.Sum], [List.Avg], [List.Min], [List.Max] and the element-wise
// helpers work on any List: they consider only the items that are finite
// integers or floats and ignore the rest.
//
//	list.Of[any](1, "two", 3.5, nil).Sum() // → 4.5
//
// # Randomness
//
// [List.Shuffle] and [List.Random] draw from a package-wide ChaCha20-based
// generator keyed from crypto/rand. Call [Seed] for reproducible output:
//
//	defer list.Seed(42)()
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [List.Macro].
package list
