// Package arr provides standalone, non-mutating helper functions over plain
// Go slices. It is the engine behind [github.com/hasbyte1/go-immutable/list]
// and can be used on its own when no wrapper type is wanted.
//
// Every helper returns a freshly allocated slice; the input is never
// written to:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	moved, _ := arr.Move([]int{1, 2, 3, 4}, 0, 2) // → [2 1 3 4]
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2) // → [[1 2] [3 4] [5]]
//
// # Index resolution
//
// Positional helpers accept negative indexes, which count from the end of
// the slice: [Resolve] maps i < 0 to len+i and leaves other indexes alone.
// The resolved index is not clamped. Out-of-range positions are not errors:
// [Get] reports false, [Remove], [Replace], [Update] and [Swap] return an
// unchanged copy, and [Slice] and [Splice] clamp to the slice bounds.
//
// # Equality
//
// [Includes], [IndexOf], [Unique], [Union], [Diff] and [Intersect] compare
// with [Same]: values compare by ==, reference types by identity. No helper
// compares structure; map elements to a canonical key with [UniqueBy] when
// that is what you need.
//
// # Copying
//
// [DeepCopy] duplicates a value recursively through pointers, slices, maps,
// arrays, interfaces and structs, and honours [DeepCopier].
package arr
