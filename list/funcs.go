package list

import "github.com/hasbyte1/go-immutable/arr"

// This file contains package-level generic functions for operations that
// transform a List[T] into a List[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chains:
//
//	result := list.Map(
//	    list.Of(1, 2, 3, 4, 5).Filter(func(n, _ int) bool { return n%2 == 0 }),
//	    func(n, _ int) string { return strconv.Itoa(n) },
//	)

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip] and [Enumerate].
type Pair[A, B any] = arr.Pair[A, B]

// Map applies fn to every item and returns a new List[U].
//
//	doubled := list.Map(list.Of(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](l *List[T], fn func(T, int) U) *List[U] {
	if fn == nil {
		panic(nilCallback("Map"))
	}
	return wrap(arr.Map(l.items, fn))
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single List[U].
//
//	words := list.FlatMap(list.Of("hello world", "foo bar"),
//	    func(s string, _ int) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](l *List[T], fn func(T, int) []U) *List[U] {
	if fn == nil {
		panic(nilCallback("FlatMap"))
	}
	return wrap(arr.FlatMap(l.items, fn))
}

// CompactMap applies fn to every item and keeps the results for which fn
// reports true, in one pass.
//
//	ports := list.CompactMap(list.Of("80", "x", "443"),
//	    func(s string, _ int) (int, bool) {
//	        n, err := strconv.Atoi(s)
//	        return n, err == nil
//	    }) // → [80 443]
func CompactMap[T, U any](l *List[T], fn func(T, int) (U, bool)) *List[U] {
	if fn == nil {
		panic(nilCallback("CompactMap"))
	}
	out := make([]U, 0, len(l.items))
	for i, item := range l.items {
		if v, ok := fn(item, i); ok {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// Reduce folds List[T] into a single value of type U, from the left.
//
//	sum := list.Reduce(list.Of(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](l *List[T], fn func(U, T, int) U, initial U) U {
	if fn == nil {
		panic(nilCallback("Reduce"))
	}
	return arr.Reduce(l.items, fn, initial)
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple items share the same key, the last one wins.
//
//	byID := list.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](l *List[T], fn func(T) K) map[K]T {
	if fn == nil {
		panic(nilCallback("KeyBy"))
	}
	return arr.KeyBy(l.items, fn)
}

// Zip combines two lists element-by-element into Pairs.
// Stops at the shorter of the two lists.
//
//	pairs := list.Zip(
//	    list.Of("a", "b", "c"),
//	    list.Of(1, 2, 3),
//	) // → [(a, 1) (b, 2) (c, 3)]
func Zip[A, B any](a *List[A], b *List[B]) *List[Pair[A, B]] {
	return wrap(arr.Zip(a.items, b.items))
}

// Enumerate returns a list of (index, item) pairs.
func Enumerate[T any](l *List[T]) *List[Pair[int, T]] {
	return wrap(l.Enumerate())
}

// Collapse flattens a List[[]T] into a List[T] (one level only).
//
//	flat := list.Collapse(list.Of([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](l *List[[]T]) *List[T] {
	return wrap(arr.Collapse(l.items))
}
