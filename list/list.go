package list

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hasbyte1/go-immutable/arr"
)

// List is a generic, immutable, ordered sequence of T.
//
// A List never changes after construction. Every method that looks like an
// edit (Append, RemoveAt, Sort, ...) returns a *new* List backed by freshly
// allocated storage, so Lists can be shared between goroutines and pipeline
// stages without copying or locking.
//
// # Creating a list
//
//	l := list.Of(1, 2, 3, 4, 5)
//	l := list.From([]string{"a", "b", "c"})
//	l := list.Empty[int]()
//	l, _ := list.Range(0, 10, 2) // → [0 2 4 6 8 10]
//
// # Indexes
//
// Positional methods accept negative indexes counted from the end (-1 is
// the last element). Out-of-range positions never fail: accessors report
// false and edits return an unchanged copy. See [arr.Resolve].
//
// # Equality
//
// [List.Has], [List.IndexOf], [List.Unique], [List.Union],
// [List.Intersection] and [List.Difference] compare with [arr.Same]:
// values by ==, reference types by identity.
//
// The zero value is an empty List ready to use.
type List[T any] struct {
	items []T
}

// wrap takes ownership of items without copying. Callers must not retain
// items.
func wrap[T any](items []T) *List[T] {
	if items == nil {
		items = []T{}
	}
	return &List[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Empty creates an empty List of type T.
func Empty[T any]() *List[T] {
	return &List[T]{items: []T{}}
}

// Of creates a List from a variadic list of items (copied).
func Of[T any](items ...T) *List[T] {
	return From(items)
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// FromSeq creates a List from every value produced by seq, in order.
// seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	return wrap(slices.Collect(seq))
}

// FromSequence creates a List holding the items of any [Sequence].
func FromSequence[T any](s Sequence[T]) *List[T] {
	return wrap(s.ToSlice())
}

// FromJSON decodes a JSON array into a new List.
func FromJSON[T any](data []byte) (*List[T], error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("list: decode json: %w", err)
	}
	return wrap(items), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// At returns the item at index i together with a presence flag. Negative
// indexes count from the end. Returns the zero value and false when i is
// out of range; there is no wrap-around beyond -Len().
func (l *List[T]) At(i int) (T, bool) { return arr.Get(l.items, i) }

// First returns the first item, or false when the list is empty.
func (l *List[T]) First() (T, bool) { return l.At(0) }

// Last returns the last item, or false when the list is empty.
func (l *List[T]) Last() (T, bool) { return l.At(-1) }

// Has reports whether the list holds an item that is [arr.Same] as item.
func (l *List[T]) Has(item T) bool { return arr.Includes(l.items, item) }

// IndexOf returns the index of the first item that is [arr.Same] as item,
// or -1.
func (l *List[T]) IndexOf(item T) int { return arr.IndexOf(l.items, item) }

// Contains reports whether at least one item satisfies fn.
func (l *List[T]) Contains(fn func(T) bool) bool {
	return l.FindIndex(fn) >= 0
}

// Find returns the first item satisfying fn, or false.
func (l *List[T]) Find(fn func(T) bool) (T, bool) {
	return l.itemAt(l.FindIndex(fn))
}

// FindIndex returns the index of the first item satisfying fn, or -1.
func (l *List[T]) FindIndex(fn func(T) bool) int {
	if fn == nil {
		panic(nilCallback("FindIndex"))
	}
	return arr.Search(l.items, fn)
}

// FindLast returns the last item satisfying fn, or false.
func (l *List[T]) FindLast(fn func(T) bool) (T, bool) {
	return l.itemAt(l.FindLastIndex(fn))
}

// itemAt looks up a search result; -1 means not found.
func (l *List[T]) itemAt(i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// FindLastIndex returns the index of the last item satisfying fn, or -1.
// Items are visited from the end.
func (l *List[T]) FindLastIndex(fn func(T) bool) int {
	if fn == nil {
		panic(nilCallback("FindLastIndex"))
	}
	return arr.SearchLast(l.items, fn)
}

// Equal reports whether l and other hold the same items, pairwise
// [arr.Same], in the same order. A nil other counts as empty.
func (l *List[T]) Equal(other *List[T]) bool {
	theirs := other.itemsOrNil()
	if len(l.items) != len(theirs) {
		return false
	}
	for i, item := range l.items {
		if !arr.Same(item, theirs[i]) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over (index, item) pairs from first to last.
// Every call starts a fresh traversal.
func (l *List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Values returns an iterator over the items from first to last.
func (l *List[T]) Values() iter.Seq[T] {
	return slices.Values(l.items)
}

// Each calls fn(item, index) for every item and returns l itself, so it can
// be used in chains.
func (l *List[T]) Each(fn func(T, int)) *List[T] {
	if fn == nil {
		panic(nilCallback("Each"))
	}
	for i, item := range l.items {
		fn(item, i)
	}
	return l
}

// Tap calls fn(l) for side-effects (e.g. logging or debugging) and returns
// l unchanged for further chaining.
func (l *List[T]) Tap(fn func(*List[T])) *List[T] {
	if fn == nil {
		panic(nilCallback("Tap"))
	}
	fn(l)
	return l
}

// Enumerate returns the (index, item) pairs of the list in order.
func (l *List[T]) Enumerate() []Pair[int, T] {
	out := make([]Pair[int, T], len(l.items))
	for i, item := range l.items {
		out[i] = Pair[int, T]{First: i, Second: item}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new list with each item replaced by fn(item, index).
//
// For transformation to another element type, use the package-level [Map].
func (l *List[T]) Map(fn func(T, int) T) *List[T] {
	if fn == nil {
		panic(nilCallback("Map"))
	}
	return wrap(arr.Map(l.items, fn))
}

// Filter returns a new list with only the items for which fn(item, index)
// returns true, in their original order.
func (l *List[T]) Filter(fn func(T, int) bool) *List[T] {
	if fn == nil {
		panic(nilCallback("Filter"))
	}
	return wrap(arr.Filter(l.items, fn))
}

// Reject returns a new list with items for which fn returns true removed.
// It is the complement of [List.Filter].
func (l *List[T]) Reject(fn func(T, int) bool) *List[T] {
	if fn == nil {
		panic(nilCallback("Reject"))
	}
	return wrap(arr.Reject(l.items, fn))
}

// Compact returns a new list without nil items (nil interfaces, pointers,
// maps, slices, channels and funcs).
func (l *List[T]) Compact() *List[T] {
	return wrap(arr.Compact(l.items))
}

// CompactMap applies fn to every item and drops the results that are nil,
// in a single pass.
//
// For a typed variant that changes the element type, use [CompactMap].
func (l *List[T]) CompactMap(fn func(T, int) T) *List[T] {
	if fn == nil {
		panic(nilCallback("CompactMap"))
	}
	out := make([]T, 0, len(l.items))
	for i, item := range l.items {
		if v := fn(item, i); !arr.IsNil(v) {
			out = append(out, v)
		}
	}
	return wrap(out)
}

// Reduce folds the list from the left: carry = fn(carry, item) for every
// item, starting from initial.
//
// For reductions that change the type, use the package-level [Reduce].
func (l *List[T]) Reduce(fn func(carry, item T) T, initial T) T {
	if fn == nil {
		panic(nilCallback("Reduce"))
	}
	result := initial
	for _, item := range l.items {
		result = fn(result, item)
	}
	return result
}

// Partition splits the list into two:
// the first contains items for which fn returns true; the second the rest.
func (l *List[T]) Partition(fn func(T) bool) (*List[T], *List[T]) {
	if fn == nil {
		panic(nilCallback("Partition"))
	}
	pass, fail := arr.Partition(l.items, fn)
	return wrap(pass), wrap(fail)
}

// Flatten splices nested items (slices, arrays and Lists) into the result,
// up to depth levels. depth defaults to 1; other items pass through.
func (l *List[T]) Flatten(depth ...int) *List[any] {
	d := 1
	if len(depth) > 0 {
		d = depth[0]
	}
	return wrap(arr.Flatten(l.items, d))
}

// Elements returns the items as []any. It makes a List [arr.Nested], so
// that Lists inside a List are flattened by [List.Flatten].
func (l *List[T]) Elements() []any {
	if l == nil {
		return nil
	}
	return arr.Map(l.items, func(item T, _ int) any { return item })
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural edits
// ─────────────────────────────────────────────────────────────────────────────

// Append returns a new list with items appended.
func (l *List[T]) Append(items ...T) *List[T] {
	return wrap(arr.Concat(l.items, items))
}

// Prepend returns a new list with items inserted at the front.
func (l *List[T]) Prepend(items ...T) *List[T] {
	return wrap(arr.Prepend(l.items, items...))
}

// Concat returns a new list holding l followed by every list in others,
// in argument order.
func (l *List[T]) Concat(others ...*List[T]) *List[T] {
	parts := make([][]T, 0, len(others)+1)
	parts = append(parts, l.items)
	for _, o := range others {
		if o != nil {
			parts = append(parts, o.items)
		}
	}
	return wrap(arr.Concat(parts...))
}

// InsertAt returns a new list with items inserted before index i. i may be
// Len() to append; negative indexes count from the end. An index outside
// [0, Len()] yields an unchanged copy.
func (l *List[T]) InsertAt(i int, items ...T) *List[T] {
	return wrap(arr.Insert(l.items, i, items...))
}

// RemoveAt returns a new list without the item at index i, or an unchanged
// copy when i is out of range.
func (l *List[T]) RemoveAt(i int) *List[T] {
	return wrap(arr.Remove(l.items, i))
}

// ReplaceAt returns a new list with the item at index i set to item, or an
// unchanged copy when i is out of range.
func (l *List[T]) ReplaceAt(i int, item T) *List[T] {
	return wrap(arr.Replace(l.items, i, item))
}

// UpdateAt returns a new list with the item at index i replaced by
// fn(item). fn is not called, and an unchanged copy is returned, when i is
// out of range.
func (l *List[T]) UpdateAt(i int, fn func(T) T) *List[T] {
	if fn == nil {
		panic(nilCallback("UpdateAt"))
	}
	return wrap(arr.Update(l.items, i, fn))
}

// Swap returns a new list with the items at i and j exchanged. If either
// index is out of range the result is an unchanged copy.
func (l *List[T]) Swap(i, j int) *List[T] {
	return wrap(arr.Swap(l.items, i, j))
}

// Move returns a new list where the item at from has been removed and
// reinserted at to. When to > from, to is reduced by one to account for the
// removal:
//
//	list.Of(1, 2, 3, 4).Move(0, 2) // → [2 1 3 4]
//
// If either index is out of range, Move returns l itself rather than a copy.
func (l *List[T]) Move(from, to int) *List[T] {
	out, ok := arr.Move(l.items, from, to)
	if !ok {
		return l
	}
	return wrap(out)
}

// Slice returns the half-open range [start, end) as a new list.
//
// bounds holds the optional start (default 0) and end (default Len()).
// Both may be negative. A range that does not overlap the list yields an
// empty list.
func (l *List[T]) Slice(bounds ...int) *List[T] {
	return wrap(arr.Slice(l.items, bounds...))
}

// Splice returns a new list where up to deleteCount items starting at start
// have been removed and items inserted in their place. start may be
// negative and is clamped to [0, Len()].
//
//	l.Splice(s, d, items...) ≡ l.Slice(0, s).Concat(list.Of(items...), l.Slice(s+d))
//
// A negative deleteCount deletes nothing and the result is a copy of l.
func (l *List[T]) Splice(start, deleteCount int, items ...T) *List[T] {
	return wrap(arr.Splice(l.items, start, deleteCount, items...))
}

// SpliceFrom removes every item from start onward. It is Splice with the
// delete count omitted, equivalent to l.Slice(0, start).
func (l *List[T]) SpliceFrom(start int) *List[T] {
	return l.Slice(0, start)
}

// Chunk splits the list into consecutive lists of at most size items; the
// last one may be smaller. A size <= 0 returns [ErrInvalidArgument].
func (l *List[T]) Chunk(size int) ([]*List[T], error) {
	chunks, err := arr.Chunk(l.items, size)
	if err != nil {
		return nil, err
	}
	out := make([]*List[T], len(chunks))
	for i, c := range chunks {
		out[i] = wrap(c)
	}
	return out, nil
}

// MustChunk is like [List.Chunk] but panics on an invalid size.
func (l *List[T]) MustChunk(size int) []*List[T] {
	chunks, err := l.Chunk(size)
	if err != nil {
		panic(err)
	}
	return chunks
}

// Take returns at most count items from the start. count is clamped to
// [0, Len()].
func (l *List[T]) Take(count int) *List[T] {
	return l.Slice(0, max(count, 0))
}

// Drop returns the list without its first count items. count is clamped to
// [0, Len()]: a count <= 0 yields a copy and a count >= Len() an empty list.
func (l *List[T]) Drop(count int) *List[T] {
	return l.Slice(max(count, 0))
}

// TakeWhile returns the longest prefix whose items all satisfy fn.
func (l *List[T]) TakeWhile(fn func(T) bool) *List[T] {
	if fn == nil {
		panic(nilCallback("TakeWhile"))
	}
	return l.Take(l.prefixLen(fn))
}

// DropWhile returns the list without the longest prefix whose items all
// satisfy fn. Later items that satisfy fn are kept.
func (l *List[T]) DropWhile(fn func(T) bool) *List[T] {
	if fn == nil {
		panic(nilCallback("DropWhile"))
	}
	return l.Drop(l.prefixLen(fn))
}

func (l *List[T]) prefixLen(fn func(T) bool) int {
	n := arr.Search(l.items, func(item T) bool { return !fn(item) })
	if n < 0 {
		return len(l.items)
	}
	return n
}

// Tail returns the list without its first item, or an empty list.
func (l *List[T]) Tail() *List[T] {
	return l.Drop(1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Set operations, Equal and Concat treat a nil *List argument as empty.
func (l *List[T]) itemsOrNil() []T {
	if l == nil {
		return nil
	}
	return l.items
}

// Unique returns a new list keeping the first occurrence of every distinct
// item.
func (l *List[T]) Unique() *List[T] {
	return wrap(arr.Unique(l.items))
}

// Union returns the distinct items of l followed by the distinct items of
// other not already present.
func (l *List[T]) Union(other *List[T]) *List[T] {
	return wrap(arr.Union(l.items, other.itemsOrNil()))
}

// Intersection returns the items present in both lists, each at most once,
// in l's order.
func (l *List[T]) Intersection(other *List[T]) *List[T] {
	return wrap(arr.Intersect(l.items, other.itemsOrNil()))
}

// Difference returns the items of l not present in other, keeping their
// order and multiplicity.
func (l *List[T]) Difference(other *List[T]) *List[T] {
	return wrap(arr.Diff(l.items, other.itemsOrNil()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a new list in ascending order. An optional three-way
// comparator may be supplied: a negative result places a before b. Without
// one, numbers sort numerically before strings, strings sort
// lexicographically, and any other values sort by their fmt.Sprint form.
//
// The sort is stable: equal items keep their original relative order.
func (l *List[T]) Sort(cmps ...func(a, b T) int) *List[T] {
	cmp := compareAny[T]
	if len(cmps) > 0 && cmps[0] != nil {
		cmp = cmps[0]
	}
	return wrap(arr.Sort(l.items, cmp))
}

// SortBy returns a new list sorted in ascending order by the float64
// value extracted by fn.
func (l *List[T]) SortBy(fn func(T) float64) *List[T] {
	if fn == nil {
		panic(nilCallback("SortBy"))
	}
	return l.Sort(func(a, b T) int { return compareFloat(fn(a), fn(b)) })
}

// SortByDesc returns a new list sorted in descending order by fn.
func (l *List[T]) SortByDesc(fn func(T) float64) *List[T] {
	if fn == nil {
		panic(nilCallback("SortByDesc"))
	}
	return l.Sort(func(a, b T) int { return compareFloat(fn(b), fn(a)) })
}

// Reverse returns a new list with items in reversed order.
func (l *List[T]) Reverse() *List[T] {
	return wrap(arr.Reverse(l.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a shallow copy: new storage, same item values. Reference
// items are shared with l.
func (l *List[T]) Clone() *List[T] { return From(l.items) }

// DeepClone returns a copy whose items are duplicated recursively, so that
// no pointer, slice or map reachable from it is shared with l. See
// [arr.DeepCopy].
func (l *List[T]) DeepClone() *List[T] {
	return wrap(arr.DeepCopyAll(l.items))
}

// ToSlice returns a copy of the items as a plain Go slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return l.MarshalJSON()
}

// MarshalJSON implements [json.Marshaler]: a List encodes as the plain
// array of its items.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	if l.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.items)
}

// String joins the fmt.Sprint form of every item with commas.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	return l.Join(",")
}

// Join joins the fmt.Sprint form of every item with sep.
func (l *List[T]) Join(sep string) string {
	return l.Implode(sep, func(item T) string { return fmt.Sprint(item) })
}

// Implode joins all items into a string using sep, converting each item with fn.
func (l *List[T]) Implode(sep string, fn func(T) string) string {
	if fn == nil {
		panic(nilCallback("Implode"))
	}
	return strings.Join(arr.Map(l.items, func(item T, _ int) string { return fn(item) }), sep)
}

// Dump prints the list to stdout and returns l for chaining.
func (l *List[T]) Dump() *List[T] {
	fmt.Println(l.String())
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(l) if condition is true and returns the result.
// Otherwise returns l unchanged.
func (l *List[T]) When(condition bool, fn func(*List[T]) *List[T]) *List[T] {
	if fn == nil {
		panic(nilCallback("When"))
	}
	if condition {
		return fn(l)
	}
	return l
}

// Unless calls fn(l) if condition is false; otherwise returns l.
func (l *List[T]) Unless(condition bool, fn func(*List[T]) *List[T]) *List[T] {
	if fn == nil {
		panic(nilCallback("Unless"))
	}
	return l.When(!condition, fn)
}
