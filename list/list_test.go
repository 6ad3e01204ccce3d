package list_test

import (
	"encoding/json"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/hasbyte1/go-immutable/list"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *list.List[int] { return list.Of(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// assertUnchanged fails when op alters the items of l.
func assertUnchanged[T comparable](t *testing.T, l *list.List[T], op func(*list.List[T])) {
	t.Helper()
	before := l.ToSlice()
	op(l)
	assertSlice(t, l.ToSlice(), before)
}

func mustPanicInvalid(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, list.ErrInvalidArgument) {
			t.Fatalf("panic = %v; want ErrInvalidArgument", r)
		}
	}()
	fn()
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestOf(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).ToSlice(), []int{1, 2, 3})
}

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	l := list.From(s)
	s[0] = "z" // mutate original – should not affect the list
	if v, _ := l.First(); v != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestFromSeq(t *testing.T) {
	l := list.FromSeq(slices.Values([]int{4, 5, 6}))
	assertSlice(t, l.ToSlice(), []int{4, 5, 6})
}

func TestFromSequence(t *testing.T) {
	var src list.Sequence[int] = ints(1, 2)
	assertSlice(t, list.FromSequence(src).ToSlice(), []int{1, 2})
}

func TestEmpty(t *testing.T) {
	l := list.Empty[int]()
	if l.Len() != 0 || !l.IsEmpty() || l.IsNotEmpty() {
		t.Fatal("empty list should have Len 0")
	}
}

func TestZeroValue(t *testing.T) {
	var l list.List[int]
	if !l.IsEmpty() || l.Append(1).Len() != 1 {
		t.Fatal("zero List should behave as empty")
	}
	b, err := json.Marshal(&l)
	if err != nil || string(b) != "[]" {
		t.Fatalf("zero List JSON = %s, %v", b, err)
	}
}

func TestRange(t *testing.T) {
	l, err := list.Range(0, 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.ToSlice(), []int{0, 2, 4, 6, 8, 10})

	assertSlice(t, list.MustRange(1, 4).ToSlice(), []int{1, 2, 3, 4})
	assertSlice(t, list.MustRange(0, 9, 4).ToSlice(), []int{0, 4, 8})
	assertSlice(t, list.MustRange(5, 1).ToSlice(), []int{})
	assertSlice(t, list.MustRange(1.0, 2.0, 0.5).ToSlice(), []float64{1, 1.5, 2})
	assertSlice(t, list.MustRange[uint8](250, 255, 5).ToSlice(), []uint8{250, 255})
}

func TestRangeFloat(t *testing.T) {
	l := list.MustRange(0.0, 1.0, 0.1)
	if l.Len() != 11 {
		t.Fatalf("Range(0, 1, 0.1) len = %d; want 11: %v", l.Len(), l)
	}
	if last, _ := l.Last(); last != 1 {
		t.Fatalf("Range(0, 1, 0.1) last = %v; want 1", last)
	}
	if v, _ := l.At(3); v != 0.30000000000000004 && v != 0.3 {
		t.Fatalf("Range(0, 1, 0.1)[3] = %v", v)
	}

	l = list.MustRange(0.0, 0.3, 0.1)
	if last, _ := l.Last(); l.Len() != 4 || last != 0.3 {
		t.Fatalf("Range(0, 0.3, 0.1) = %v; want 4 items ending at 0.3", l)
	}
	assertSlice(t, list.MustRange(2.0, 1.0).ToSlice(), []float64{})
	assertSlice(t, list.MustRange[float32](0, 1, 0.25).ToSlice(), []float32{0, 0.25, 0.5, 0.75, 1})
}

func TestRangeNonFinite(t *testing.T) {
	cases := [][3]float64{
		{0, math.Inf(1), 1},
		{math.Inf(-1), 0, 1},
		{math.NaN(), 1, 1},
		{0, 1, math.Inf(1)},
	}
	for _, c := range cases {
		if _, err := list.Range(c[0], c[1], c[2]); !errors.Is(err, list.ErrInvalidArgument) {
			t.Fatalf("Range(%v, %v, %v) err = %v; want ErrInvalidArgument", c[0], c[1], c[2], err)
		}
	}
}

func TestRangeInvalidStep(t *testing.T) {
	for _, step := range []int{0, -1} {
		l, err := list.Range(0, 10, step)
		if !errors.Is(err, list.ErrInvalidArgument) || l != nil {
			t.Fatalf("Range step %d = %v, %v; want ErrInvalidArgument", step, l, err)
		}
		if !strings.Contains(err.Error(), "step must be a positive number") {
			t.Fatalf("error message = %q", err)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestAt(t *testing.T) {
	l := ints(10, 20, 30)
	cases := map[int]int{0: 10, 1: 20, 2: 30, -1: 30, -2: 20, -3: 10}
	for i, want := range cases {
		if v, ok := l.At(i); !ok || v != want {
			t.Fatalf("At(%d) = %v, %v; want %d", i, v, ok, want)
		}
	}
	for _, i := range []int{3, 99, -4, -99} {
		if _, ok := l.At(i); ok {
			t.Fatalf("At(%d) should be absent", i)
		}
	}
}

func TestIndexSymmetry(t *testing.T) {
	l := ints(5, 6, 7, 8)
	n := l.Len()
	for i := 0; i < n; i++ {
		a, _ := l.At(i)
		b, _ := l.At(-(n - i))
		if a != b {
			t.Fatalf("At(%d)=%d but At(%d)=%d", i, a, -(n - i), b)
		}
	}
}

func TestFirstLast(t *testing.T) {
	f, ok := ints(1, 2, 3).First()
	if !ok || f != 1 {
		t.Fatalf("First = %v, %v", f, ok)
	}
	last, ok := ints(1, 2, 3).Last()
	if !ok || last != 3 {
		t.Fatalf("Last = %v, %v", last, ok)
	}
	if _, ok := list.Empty[int]().First(); ok {
		t.Fatal("First on empty should return false")
	}
	if _, ok := list.Empty[int]().Last(); ok {
		t.Fatal("Last on empty should return false")
	}
}

func TestHas(t *testing.T) {
	type user struct{ name string }
	alice := &user{"alice"}
	l := list.Of(alice, &user{"bob"})
	if !l.Has(alice) {
		t.Fatal("Has should find the same pointer")
	}
	if l.Has(&user{"alice"}) {
		t.Fatal("Has must not use structural equality")
	}
	if !ints(1, 2, 3).Has(2) || ints(1, 2, 3).Has(4) {
		t.Fatal("Has failed for ints")
	}
	if ints(1, 2, 3).IndexOf(3) != 2 || ints(1).IndexOf(9) != -1 {
		t.Fatal("IndexOf failed")
	}
}

func TestFind(t *testing.T) {
	l := ints(1, 4, 2, 5, 3)
	gt3 := func(n int) bool { return n > 3 }
	if v, ok := l.Find(gt3); !ok || v != 4 {
		t.Fatalf("Find = %v, %v", v, ok)
	}
	if i := l.FindIndex(gt3); i != 1 {
		t.Fatalf("FindIndex = %d", i)
	}
	if v, ok := l.FindLast(gt3); !ok || v != 5 {
		t.Fatalf("FindLast = %v, %v", v, ok)
	}
	if i := l.FindLastIndex(gt3); i != 3 {
		t.Fatalf("FindLastIndex = %d", i)
	}

	none := func(n int) bool { return n > 100 }
	if _, ok := l.Find(none); ok {
		t.Fatal("Find should report absent")
	}
	if _, ok := l.FindLast(none); ok {
		t.Fatal("FindLast should report absent")
	}
	if l.FindIndex(none) != -1 || l.FindLastIndex(none) != -1 {
		t.Fatal("index search should return -1")
	}
	if !l.Contains(gt3) || l.Contains(none) {
		t.Fatal("Contains failed")
	}
}

func TestEqual(t *testing.T) {
	if !ints(1, 2).Equal(ints(1, 2)) || ints(1, 2).Equal(ints(2, 1)) || ints(1).Equal(ints(1, 1)) {
		t.Fatal("Equal failed")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestEachReturnsReceiver(t *testing.T) {
	l := ints(1, 2, 3, 4)
	sum := 0
	if got := l.Each(func(n, _ int) { sum += n }); got != l {
		t.Fatal("Each should return the receiver")
	}
	if sum != 10 {
		t.Fatalf("Each sum = %d; want 10", sum)
	}
}

func TestIteratorsRestart(t *testing.T) {
	l := ints(1, 2, 3)
	for range 2 {
		var got []int
		for v := range l.Values() {
			got = append(got, v)
		}
		assertSlice(t, got, []int{1, 2, 3})
	}
	var idx []int
	for i, v := range l.All() {
		if v != i+1 {
			t.Fatalf("All yielded (%d, %d)", i, v)
		}
		idx = append(idx, i)
	}
	assertSlice(t, idx, []int{0, 1, 2})
}

func TestEnumerate(t *testing.T) {
	pairs := list.Of("a", "b").Enumerate()
	if len(pairs) != 2 || pairs[1].First != 1 || pairs[1].Second != "b" {
		t.Fatalf("Enumerate = %v", pairs)
	}
}

func TestTap(t *testing.T) {
	var seen int
	result := ints(1, 2, 3).
		Tap(func(l *list.List[int]) { seen = l.Len() }).
		Len()
	if seen != 3 || result != 3 {
		t.Fatal("Tap failed")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got := ints(1, 2, 3).Map(func(n, i int) int { return n*10 + i }).ToSlice()
	assertSlice(t, got, []int{10, 21, 32})
}

func TestFilterReject(t *testing.T) {
	even := func(n, _ int) bool { return n%2 == 0 }
	assertSlice(t, ints(1, 2, 3, 4, 5).Filter(even).ToSlice(), []int{2, 4})
	assertSlice(t, ints(1, 2, 3, 4, 5).Reject(even).ToSlice(), []int{1, 3, 5})
}

func TestCompact(t *testing.T) {
	one := 1
	got := list.Of[any](0, nil, "", (*int)(nil), &one, false).Compact()
	if got.Len() != 4 {
		t.Fatalf("Compact = %v; want 4 items", got)
	}
}

func TestCompactMap(t *testing.T) {
	got := list.Of[any]("a", 1, "b", 2).CompactMap(func(v any, _ int) any {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s)
		}
		return nil
	})
	if got.String() != "A,B" {
		t.Fatalf("CompactMap = %v", got)
	}
}

func TestReduce(t *testing.T) {
	sum := ints(1, 2, 3, 4, 5).Reduce(func(carry, n int) int { return carry + n }, 0)
	if sum != 15 {
		t.Fatalf("Reduce sum = %d; want 15", sum)
	}
	if ints().Reduce(func(c, n int) int { return c + n }, 7) != 7 {
		t.Fatal("Reduce on empty should return initial")
	}
}

func TestGroupBy(t *testing.T) {
	words := list.Of("apple", "bob", "avocado", "cat", "blue")
	g := words.GroupBy(func(s string) string { return s[:1] })
	assertSlice(t, g.Keys(), []string{"a", "b", "c"})
	as, _ := g.Get("a")
	assertSlice(t, as.ToSlice(), []string{"apple", "avocado"})
	bs, _ := g.Get("b")
	assertSlice(t, bs.ToSlice(), []string{"bob", "blue"})
	if _, ok := g.Get("z"); ok {
		t.Fatal("unknown key should be absent")
	}
	if g.Len() != 3 || len(g.ToMap()) != 3 {
		t.Fatal("group count")
	}

	var order []string
	for k := range g.All() {
		order = append(order, k)
	}
	assertSlice(t, order, []string{"a", "b", "c"})
}

func TestCountBy(t *testing.T) {
	c := ints(1, 2, 3, 4, 5).CountBy(func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assertSlice(t, c.Keys(), []string{"odd", "even"})
	if n, _ := c.Get("odd"); n != 3 {
		t.Fatalf("odd = %d; want 3", n)
	}
	if n, _ := c.Get("even"); n != 2 {
		t.Fatalf("even = %d; want 2", n)
	}
}

func TestPartition(t *testing.T) {
	evens, odds := ints(1, 2, 3, 4, 5).Partition(func(n int) bool { return n%2 == 0 })
	assertSlice(t, evens.ToSlice(), []int{2, 4})
	assertSlice(t, odds.ToSlice(), []int{1, 3, 5})
}

func TestFlatten(t *testing.T) {
	l := list.Of[any](1, []any{2, []any{3, []any{4}}}, list.Of(5, 6), "x")
	if got := l.Flatten(); got.Len() != 6 {
		t.Fatalf("Flatten() = %v; want 6 items", got)
	}
	if got := l.Flatten(10).String(); got != "1,2,3,4,5,6,x" {
		t.Fatalf("Flatten(10) = %q", got)
	}
	if got := l.Flatten(0); got.Len() != l.Len() {
		t.Fatalf("Flatten(0) = %v", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural edits
// ─────────────────────────────────────────────────────────────────────────────

func TestAppendPrependConcat(t *testing.T) {
	orig := ints(1, 2)
	assertSlice(t, orig.Append(3, 4).ToSlice(), []int{1, 2, 3, 4})
	assertSlice(t, orig.Prepend(-1, 0).ToSlice(), []int{-1, 0, 1, 2})
	assertSlice(t, orig.Concat(ints(3), ints(), ints(4, 5)).ToSlice(), []int{1, 2, 3, 4, 5})
	assertSlice(t, orig.ToSlice(), []int{1, 2})
}

func TestInsertAt(t *testing.T) {
	l := ints(1, 2, 3)
	assertSlice(t, l.InsertAt(1, 9).ToSlice(), []int{1, 9, 2, 3})
	assertSlice(t, l.InsertAt(3, 9).ToSlice(), []int{1, 2, 3, 9})
	assertSlice(t, l.InsertAt(-1, 9).ToSlice(), []int{1, 2, 9, 3})
	assertSlice(t, l.InsertAt(10, 9).ToSlice(), []int{1, 2, 3})
}

func TestRemoveReplaceUpdate(t *testing.T) {
	l := ints(1, 2, 3)
	assertSlice(t, l.RemoveAt(0).ToSlice(), []int{2, 3})
	assertSlice(t, l.RemoveAt(-1).ToSlice(), []int{1, 2})
	assertSlice(t, l.RemoveAt(5).ToSlice(), []int{1, 2, 3})
	assertSlice(t, l.ReplaceAt(1, 20).ToSlice(), []int{1, 20, 3})
	assertSlice(t, l.ReplaceAt(-4, 20).ToSlice(), []int{1, 2, 3})
	assertSlice(t, l.UpdateAt(-1, func(n int) int { return n * 100 }).ToSlice(), []int{1, 2, 300})
	assertSlice(t, l.UpdateAt(3, func(n int) int { return n * 100 }).ToSlice(), []int{1, 2, 3})
}

func TestNoOpEditsReturnCopies(t *testing.T) {
	l := ints(1, 2, 3)
	for name, got := range map[string]*list.List[int]{
		"RemoveAt":  l.RemoveAt(9),
		"ReplaceAt": l.ReplaceAt(9, 0),
		"Swap":      l.Swap(0, 9),
		"InsertAt":  l.InsertAt(9, 0),
	} {
		if got == l {
			t.Fatalf("%s should return a copy, not the receiver", name)
		}
		assertSlice(t, got.ToSlice(), []int{1, 2, 3})
	}
}

func TestSwap(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).Swap(0, 2).ToSlice(), []int{3, 2, 1})
	assertSlice(t, ints(1, 2, 3).Swap(-1, 1).ToSlice(), []int{1, 3, 2})
}

func TestMove(t *testing.T) {
	l := ints(1, 2, 3, 4)
	assertSlice(t, l.Move(0, 2).ToSlice(), []int{2, 1, 3, 4})
	assertSlice(t, l.Move(2, 0).ToSlice(), []int{3, 1, 2, 4})
	assertSlice(t, l.Move(1, -1).ToSlice(), []int{1, 3, 2, 4})
	if l.Move(0, 4) != l || l.Move(-5, 0) != l {
		t.Fatal("out-of-range Move should return the receiver")
	}
}

func TestSlice(t *testing.T) {
	l := ints(0, 1, 2, 3, 4)
	assertSlice(t, l.Slice().ToSlice(), []int{0, 1, 2, 3, 4})
	assertSlice(t, l.Slice(1, 3).ToSlice(), []int{1, 2})
	assertSlice(t, l.Slice(-2).ToSlice(), []int{3, 4})
	assertSlice(t, l.Slice(2, -1).ToSlice(), []int{2, 3})
	assertSlice(t, l.Slice(7, 9).ToSlice(), []int{})
	assertSlice(t, l.Slice(3, 1).ToSlice(), []int{})
}

func TestSplice(t *testing.T) {
	got := list.Of[any](1, 2, 3).Splice(1, 1, "x", "y")
	if got.String() != "1,x,y,3" {
		t.Fatalf("Splice = %v", got)
	}
	l := ints(1, 2, 3, 4)
	assertSlice(t, l.Splice(1, -1, 9).ToSlice(), []int{1, 2, 3, 4})
	assertSlice(t, l.Splice(-2, 1).ToSlice(), []int{1, 2, 4})
	assertSlice(t, l.Splice(2, 100).ToSlice(), []int{1, 2})
	assertSlice(t, l.SpliceFrom(2).ToSlice(), []int{1, 2})
	assertSlice(t, l.SpliceFrom(-1).ToSlice(), []int{1, 2, 3})
}

func TestSpliceDecomposition(t *testing.T) {
	l := ints(1, 2, 3, 4, 5)
	items := []int{7, 8}
	for s := 0; s <= 6; s++ {
		for d := 0; d <= 6; d++ {
			want := l.Slice(0, s).Concat(list.Of(items...), l.Slice(s+d))
			got := l.Splice(s, d, items...)
			if !got.Equal(want) {
				t.Fatalf("Splice(%d, %d) = %v; want %v", s, d, got, want)
			}
		}
	}
}

func TestChunk(t *testing.T) {
	chunks, err := ints(1, 2, 3, 4, 5).Chunk(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 {
		t.Fatalf("Chunk len = %d; want 3", len(chunks))
	}
	assertSlice(t, chunks[0].ToSlice(), []int{1, 2})
	assertSlice(t, chunks[2].ToSlice(), []int{5})

	if _, err := ints(1).Chunk(0); !errors.Is(err, list.ErrInvalidArgument) {
		t.Fatalf("Chunk(0) err = %v", err)
	}
	mustPanicInvalid(t, func() { ints(1).MustChunk(-1) })
}

func TestTakeDrop(t *testing.T) {
	l := ints(1, 2, 3)
	assertSlice(t, l.Take(2).ToSlice(), []int{1, 2})
	assertSlice(t, l.Take(10).ToSlice(), []int{1, 2, 3})
	assertSlice(t, l.Take(0).ToSlice(), []int{})
	assertSlice(t, l.Take(-2).ToSlice(), []int{})
	assertSlice(t, l.Drop(1).ToSlice(), []int{2, 3})
	assertSlice(t, l.Drop(3).ToSlice(), []int{})
	assertSlice(t, l.Drop(10).ToSlice(), []int{})
	assertSlice(t, l.Drop(0).ToSlice(), []int{1, 2, 3})
	assertSlice(t, l.Drop(-1).ToSlice(), []int{1, 2, 3})
}

func TestTakeWhileDropWhile(t *testing.T) {
	l := ints(1, 2, 5, 1, 2)
	small := func(n int) bool { return n < 3 }
	assertSlice(t, l.TakeWhile(small).ToSlice(), []int{1, 2})
	assertSlice(t, l.DropWhile(small).ToSlice(), []int{5, 1, 2})
	assertSlice(t, l.TakeWhile(func(int) bool { return true }).ToSlice(), l.ToSlice())
	assertSlice(t, l.DropWhile(func(int) bool { return true }).ToSlice(), []int{})
}

func TestTail(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).Tail().ToSlice(), []int{2, 3})
	assertSlice(t, ints().Tail().ToSlice(), []int{})
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

func TestUnique(t *testing.T) {
	assertSlice(t, ints(1, 2, 2, 3, 3, 3).Unique().ToSlice(), []int{1, 2, 3})
}

func TestUnion(t *testing.T) {
	assertSlice(t, ints(1, 2, 2).Union(ints(3, 2, 4)).ToSlice(), []int{1, 2, 3, 4})
}

func TestIntersection(t *testing.T) {
	assertSlice(t, ints(1, 2, 2, 3, 4).Intersection(ints(4, 2, 2, 9)).ToSlice(), []int{2, 4})
	assertSlice(t, ints(1, 2).Intersection(ints()).ToSlice(), []int{})
}

func TestDifference(t *testing.T) {
	assertSlice(t, ints(1, 1, 2, 3, 3).Difference(ints(2, 9)).ToSlice(), []int{1, 1, 3, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestSort(t *testing.T) {
	l := ints(3, 1, 2)
	assertSlice(t, l.Sort(func(a, b int) int { return a - b }).ToSlice(), []int{1, 2, 3})
	assertSlice(t, l.Sort().ToSlice(), []int{1, 2, 3})
	assertSlice(t, l.Sort(func(a, b int) int { return b - a }).ToSlice(), []int{3, 2, 1})
	assertSlice(t, l.ToSlice(), []int{3, 1, 2})
}

func TestSortIdempotent(t *testing.T) {
	l := ints(5, 3, 9, 1, 3, 7)
	once := l.Sort()
	if !once.Sort().Equal(once) {
		t.Fatal("Sort should be idempotent")
	}
	if once.Len() != l.Len() || once.Difference(l).Len() != 0 {
		t.Fatal("Sort should permute the input")
	}
}

func TestSortLargeIntegers(t *testing.T) {
	assertSlice(t, list.Of[int64](1<<53+1, 1<<53, -(1<<53 + 1)).Sort().ToSlice(),
		[]int64{-(1<<53 + 1), 1 << 53, 1<<53 + 1})
	assertSlice(t, list.Of[uint64](1<<63+1, 1<<63, 1).Sort().ToSlice(),
		[]uint64{1, 1 << 63, 1<<63 + 1})
}

func TestSortMixedIntegerKinds(t *testing.T) {
	got := list.Of[any](uint64(1<<63), int64(-1), int64(1<<62), uint8(3), 2.5).Sort().String()
	if got != "-1,2.5,3,4611686018427387904,9223372036854775808" {
		t.Fatalf("Sort mixed integers = %q", got)
	}
}

func TestSortMixedDefault(t *testing.T) {
	got := list.Of[any]("b", 10, "a", 2.5, true).Sort().String()
	if got != "2.5,10,a,b,true" {
		t.Fatalf("Sort mixed = %q", got)
	}
}

func TestSortStable(t *testing.T) {
	type rec struct {
		k int
		v string
	}
	got := list.Of(rec{1, "a"}, rec{0, "b"}, rec{1, "c"}, rec{0, "d"}).
		Sort(func(a, b rec) int { return a.k - b.k })
	names := list.Map(got, func(r rec, _ int) string { return r.v })
	assertSlice(t, names.ToSlice(), []string{"b", "d", "a", "c"})
}

func TestSortBy(t *testing.T) {
	words := list.Of("ccc", "a", "bb")
	byLen := func(s string) float64 { return float64(len(s)) }
	assertSlice(t, words.SortBy(byLen).ToSlice(), []string{"a", "bb", "ccc"})
	assertSlice(t, words.SortByDesc(byLen).ToSlice(), []string{"ccc", "bb", "a"})
}

func TestReverse(t *testing.T) {
	assertSlice(t, ints(1, 2, 3).Reverse().ToSlice(), []int{3, 2, 1})
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

func TestClone(t *testing.T) {
	type box struct{ n int }
	b := &box{1}
	l := list.Of(b)

	shallow := l.Clone()
	if v, _ := shallow.At(0); v != b {
		t.Fatal("shallow clone should share items")
	}

	deep := l.DeepClone()
	v, _ := deep.At(0)
	if v == b || v.n != 1 {
		t.Fatal("deep clone should duplicate items")
	}
	v.n = 99
	if b.n != 1 {
		t.Fatal("deep clone mutation leaked into the original")
	}
}

func TestToSliceIndependent(t *testing.T) {
	l := ints(1, 2, 3)
	s := l.ToSlice()
	s[0] = 100
	if v, _ := l.At(0); v != 1 {
		t.Fatal("ToSlice must return an independent copy")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, l := range []*list.List[int]{ints(), ints(1), ints(3, 1, 2)} {
		if !list.From(l.ToSlice()).Equal(l) {
			t.Fatalf("round trip failed for %v", l)
		}
	}
}

func TestStringAndJoin(t *testing.T) {
	if s := ints(1, 2, 3).String(); s != "1,2,3" {
		t.Fatalf("String() = %q; want 1,2,3", s)
	}
	if s := ints().String(); s != "" {
		t.Fatalf("empty String() = %q", s)
	}
	if s := list.Of("a", "b").Join(" | "); s != "a | b" {
		t.Fatalf("Join = %q", s)
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Items *list.List[int] `json:"items"`
	}{ints(1, 2, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"items":[1,2,3]}` {
		t.Fatalf("json = %s", b)
	}

	l, err := list.FromJSON[string]([]byte(`["x","y"]`))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.ToSlice(), []string{"x", "y"})

	if _, err := list.FromJSON[int]([]byte(`{`)); err == nil {
		t.Fatal("FromJSON should fail on malformed input")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

func TestWhenUnless(t *testing.T) {
	push := func(l *list.List[int]) *list.List[int] { return l.Append(9) }
	if ints(1).When(true, push).Len() != 2 || ints(1).When(false, push).Len() != 1 {
		t.Fatal("When failed")
	}
	if ints(1).Unless(true, push).Len() != 1 || ints(1).Unless(false, push).Len() != 2 {
		t.Fatal("Unless failed")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Purity & argument checks
// ─────────────────────────────────────────────────────────────────────────────

func TestOperationsDoNotMutate(t *testing.T) {
	l := ints(4, 2, 4, 1, 3)
	ops := map[string]func(*list.List[int]){
		"Map":       func(l *list.List[int]) { l.Map(func(n, _ int) int { return -n }) },
		"Sort":      func(l *list.List[int]) { l.Sort() },
		"Reverse":   func(l *list.List[int]) { l.Reverse() },
		"Shuffle":   func(l *list.List[int]) { l.Shuffle() },
		"Splice":    func(l *list.List[int]) { l.Splice(1, 2, 9, 9) },
		"Swap":      func(l *list.List[int]) { l.Swap(0, -1) },
		"Move":      func(l *list.List[int]) { l.Move(0, 3) },
		"UpdateAt":  func(l *list.List[int]) { l.UpdateAt(0, func(int) int { return 0 }) },
		"ReplaceAt": func(l *list.List[int]) { l.ReplaceAt(2, 0) },
		"InsertAt":  func(l *list.List[int]) { l.InsertAt(0, 0) },
		"Unique":    func(l *list.List[int]) { l.Unique() },
		"Chunk":     func(l *list.List[int]) { l.MustChunk(2) },
		"Append":    func(l *list.List[int]) { l.Append(1).ReplaceAt(0, 100) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) { assertUnchanged(t, l, op) })
	}
}

func TestNilCallbacksPanic(t *testing.T) {
	l := ints(1, 2)
	mustPanicInvalid(t, func() { l.Map(nil) })
	mustPanicInvalid(t, func() { l.Filter(nil) })
	mustPanicInvalid(t, func() { l.Reduce(nil, 0) })
	mustPanicInvalid(t, func() { l.Each(nil) })
	mustPanicInvalid(t, func() { l.Find(nil) })
	mustPanicInvalid(t, func() { l.UpdateAt(0, nil) })
	mustPanicInvalid(t, func() { l.TakeWhile(nil) })
	mustPanicInvalid(t, func() { l.GroupBy(nil) })
	mustPanicInvalid(t, func() { list.Map[int, string](l, nil) })
	mustPanicInvalid(t, func() { l.Tap(nil) })
	mustPanicInvalid(t, func() { l.When(true, nil) })
	mustPanicInvalid(t, func() { l.When(false, nil) })
	mustPanicInvalid(t, func() { l.Unless(false, nil) })
	mustPanicInvalid(t, func() { l.Implode(",", nil) })
}

func TestNilOtherIsEmpty(t *testing.T) {
	l := ints(1, 2, 2)
	if l.Equal(nil) || !ints().Equal(nil) {
		t.Fatal("a nil list should equal only an empty one")
	}
	assertSlice(t, l.Union(nil).ToSlice(), []int{1, 2})
	assertSlice(t, l.Intersection(nil).ToSlice(), []int{})
	assertSlice(t, l.Difference(nil).ToSlice(), []int{1, 2, 2})
	assertSlice(t, l.Concat(nil).ToSlice(), []int{1, 2, 2})
}
