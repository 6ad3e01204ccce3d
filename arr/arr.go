package arr

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether at least one element satisfies fn.
func Contains[T any](items []T, fn func(T) bool) bool {
	return Search(items, fn) >= 0
}

// Includes reports whether items holds an element that is [Same] as value.
func Includes[T any](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// IndexOf returns the index of the first element that is [Same] as value,
// or -1.
func IndexOf[T any](items []T, value T) int {
	for i, item := range items {
		if Same(item, value) {
			return i
		}
	}
	return -1
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// SearchLast returns the index of the last element satisfying fn, or -1.
// Elements are visited from the end.
func SearchLast[T any](items []T, fn func(T) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i]) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Compact returns the elements that are not [IsNil].
func Compact[T any](items []T) []T {
	return Filter(items, func(item T, _ int) bool { return !IsNil(item) })
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice keeping the first occurrence of every distinct
// value, compared with [Same].
func Unique[T any](items []T) []T {
	seen := newValueSet(len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !seen.has(item) {
			seen.add(item)
			out = append(out, item)
		}
	}
	return out
}

// UniqueBy returns elements with duplicates removed using a key function.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// Union returns the distinct elements of a followed by those of b.
func Union[T any](a, b []T) []T {
	return Unique(Concat(a, b))
}

// Diff returns elements in a that are not in b, keeping the order and
// multiplicity they have in a.
func Diff[T any](a, b []T) []T {
	set := newValueSet(len(b))
	for _, item := range b {
		set.add(item)
	}
	out := make([]T, 0, len(a))
	for _, item := range a {
		if !set.has(item) {
			out = append(out, item)
		}
	}
	return out
}

// Intersect returns the elements of a that also occur in b. Each value is
// reported once, in a's first-seen order, and consumes one match from b.
func Intersect[T any](a, b []T) []T {
	taken := make([]bool, len(b))
	emitted := newValueSet(len(a))
	out := make([]T, 0)
	for _, item := range a {
		if emitted.has(item) {
			continue
		}
		for j, candidate := range b {
			if !taken[j] && Same(candidate, item) {
				taken[j] = true
				emitted.add(item)
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements. A size <= 0 is
// rejected with [ErrInvalidArgument].
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, invalid("chunk size must be greater than 0, got %d", size)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Concat returns a new slice holding every part in argument order.
func Concat[T any](parts ...[]T) []T {
	return Collapse(parts)
}

// Nested is implemented by sequence types whose elements [Flatten] should
// splice into the parent.
type Nested interface {
	Elements() []any
}

// Flatten splices nested elements into the result up to depth levels.
// Slices, arrays and [Nested] values count as nested; everything else
// passes through unchanged. A depth <= 0 only copies items.
func Flatten[T any](items []T, depth int) []any {
	out := make([]any, 0, len(items))
	var flatten func(v any, level int)
	flatten = func(v any, level int) {
		if level > depth {
			out = append(out, v)
			return
		}
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem, level+1)
			}
			return
		case Nested:
			for _, elem := range val.Elements() {
				flatten(elem, level+1)
			}
			return
		}
		rv := reflect.ValueOf(v)
		if v != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
			for i := 0; i < rv.Len(); i++ {
				flatten(rv.Index(i).Interface(), level+1)
			}
			return
		}
		out = append(out, v)
	}
	for _, item := range items {
		flatten(item, 1)
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Prepend prepends values to the front of items.
func Prepend[T any](items []T, values ...T) []T {
	return Concat(values, items)
}

// Partition splits items into two slices: those satisfying fn and those that do not.
func Partition[T any](items []T, fn func(T) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for _, item := range items {
		if fn(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Zip pairs elements from a and b at the same index.
// Stops at the length of the shorter slice.
func Zip[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}

// KeyBy creates a map[K]T from items keyed by fn.
// When multiple items share the same key, the last one wins.
func KeyBy[T any, K comparable](items []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(items))
	for _, item := range items {
		out[fn(item)] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items. cmp is a three-way comparator: a
// negative result places a before b. Equal elements keep their order.
func Sort[T any](items []T, cmp func(a, b T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

// Shuffle returns a copy of items in uniformly random order (Fisher–Yates)
// drawn from r. A nil r uses the math/rand/v2 global generator.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r == nil {
		rand.Shuffle(len(out), swap)
	} else {
		r.Shuffle(len(out), swap)
	}
	return out
}

// Random returns one uniformly selected element drawn from r, or false when
// items is empty. A nil r uses the math/rand/v2 global generator.
func Random[T any](items []T, r *rand.Rand) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	if r == nil {
		return items[rand.IntN(len(items))], true
	}
	return items[r.IntN(len(items))], true
}
