package arr

// ─────────────────────────────────────────────────────────────────────────────
// Index resolution
// ─────────────────────────────────────────────────────────────────────────────

// Resolve maps a possibly negative index onto a sequence of length n.
// Non-negative indexes are returned unchanged; negative ones count from the
// end (-1 is the last element). The result is not clamped and may lie
// outside [0, n).
func Resolve(n, i int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// InRange reports whether i, once resolved, addresses an element of a
// sequence of length n.
func InRange(n, i int) bool {
	r := Resolve(n, i)
	return r >= 0 && r < n
}

// clamp resolves i and bounds it to [0, n].
func clamp(n, i int) int {
	return max(0, min(Resolve(n, i), n))
}

// Get returns the element at the resolved index i.
// Returns the zero value and false when the index is out of range.
func Get[T any](items []T, i int) (T, bool) {
	var zero T
	if !InRange(len(items), i) {
		return zero, false
	}
	return items[Resolve(len(items), i)], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional edits (every function returns a fresh slice)
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a copy of the half-open range [start, end).
//
// bounds holds the optional start and end: start defaults to 0 and end to
// len(items). Both may be negative. A range that does not overlap the
// slice yields an empty result.
func Slice[T any](items []T, bounds ...int) []T {
	n := len(items)
	start, end := 0, n
	if len(bounds) > 0 {
		start = clamp(n, bounds[0])
	}
	if len(bounds) > 1 {
		end = clamp(n, bounds[1])
	}
	if start >= end {
		return []T{}
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// Splice removes up to deleteCount elements starting at the resolved start
// and inserts values in their place. start is clamped to [0, len(items)].
// A negative deleteCount deletes nothing and ignores values.
func Splice[T any](items []T, start, deleteCount int, values ...T) []T {
	if deleteCount < 0 {
		return Slice(items)
	}
	n := len(items)
	s := clamp(n, start)
	e := s + min(deleteCount, n-s)
	return Concat(items[:s], values, items[e:])
}

// Insert places values before the resolved index i. i may resolve to
// len(items) to append. An index outside [0, len(items)] leaves the copy
// unchanged.
func Insert[T any](items []T, i int, values ...T) []T {
	n := len(items)
	r := Resolve(n, i)
	if r < 0 || r > n {
		return Slice(items)
	}
	return Concat(items[:r], values, items[r:])
}

// Remove drops the element at the resolved index i.
func Remove[T any](items []T, i int) []T {
	if !InRange(len(items), i) {
		return Slice(items)
	}
	r := Resolve(len(items), i)
	return Concat(items[:r], items[r+1:])
}

// Replace sets the element at the resolved index i to value.
func Replace[T any](items []T, i int, value T) []T {
	return Update(items, i, func(T) T { return value })
}

// Update replaces the element at the resolved index i with fn(element).
// fn is not called when the index is out of range.
func Update[T any](items []T, i int, fn func(T) T) []T {
	out := Slice(items)
	if InRange(len(items), i) {
		r := Resolve(len(items), i)
		out[r] = fn(out[r])
	}
	return out
}

// Swap exchanges the elements at the resolved indexes i and j. If either
// index is out of range nothing is swapped.
func Swap[T any](items []T, i, j int) []T {
	out := Slice(items)
	n := len(items)
	if InRange(n, i) && InRange(n, j) {
		ri, rj := Resolve(n, i), Resolve(n, j)
		out[ri], out[rj] = out[rj], out[ri]
	}
	return out
}

// Move removes the element at the resolved index from and reinserts it at
// the resolved index to. When to lies after from it is shifted down by one
// to account for the removal. ok is false, and items is returned as is,
// when either index is out of range.
func Move[T any](items []T, from, to int) (out []T, ok bool) {
	n := len(items)
	if !InRange(n, from) || !InRange(n, to) {
		return items, false
	}
	f, t := Resolve(n, from), Resolve(n, to)
	item := items[f]
	rest := Concat(items[:f], items[f+1:])
	if t > f {
		t--
	}
	return Concat(rest[:t], []T{item}, rest[t:]), true
}
