package list

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by the typed numeric helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric subset
// ─────────────────────────────────────────────────────────────────────────────

// asFloat converts any integer or float value, including named numeric
// types, to float64.
func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// numbers returns the numeric subset of the list: every item that is a
// finite integer or float, converted to float64. Other items are skipped.
func (l *List[T]) numbers() []float64 {
	out := make([]float64, 0, len(l.items))
	for _, item := range l.items {
		if f, ok := asFloat(item); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			out = append(out, f)
		}
	}
	return out
}

// Sum returns the sum of the numeric subset of the list. Items that are not
// finite numbers are ignored. An empty subset sums to 0.
func (l *List[T]) Sum() float64 {
	var total float64
	for _, f := range l.numbers() {
		total += f
	}
	return total
}

// Avg returns the arithmetic mean of the numeric subset, or 0 when there
// are no numeric items.
func (l *List[T]) Avg() float64 {
	nums := l.numbers()
	if len(nums) == 0 {
		return 0
	}
	return l.Sum() / float64(len(nums))
}

// Product returns the product of the numeric subset, or 1 when there are no
// numeric items.
func (l *List[T]) Product() float64 {
	result := 1.0
	for _, f := range l.numbers() {
		result *= f
	}
	return result
}

// Min returns the smallest number in the numeric subset, or false when
// there is none.
func (l *List[T]) Min() (float64, bool) {
	return extreme(l.numbers(), func(a, b float64) bool { return a < b })
}

// Max returns the largest number in the numeric subset, or false when
// there is none.
func (l *List[T]) Max() (float64, bool) {
	return extreme(l.numbers(), func(a, b float64) bool { return a > b })
}

func extreme(nums []float64, better func(a, b float64) bool) (float64, bool) {
	if len(nums) == 0 {
		return 0, false
	}
	best := nums[0]
	for _, f := range nums[1:] {
		if better(f, best) {
			best = f
		}
	}
	return best, true
}

// Subtract folds the numeric subset from the left: the first number minus
// every following one. Returns 0 when there are no numeric items.
func (l *List[T]) Subtract() float64 {
	return fold(l.numbers(), func(a, b float64) float64 { return a - b })
}

// Divide folds the numeric subset from the left: the first number divided
// by every following one. Division by zero follows IEEE 754 (±Inf or NaN).
// Returns 0 when there are no numeric items.
func (l *List[T]) Divide() float64 {
	return fold(l.numbers(), func(a, b float64) float64 { return a / b })
}

func fold(nums []float64, fn func(a, b float64) float64) float64 {
	if len(nums) == 0 {
		return 0
	}
	acc := nums[0]
	for _, f := range nums[1:] {
		acc = fn(acc, f)
	}
	return acc
}

// Abs returns the absolute value of every number in the numeric subset.
func (l *List[T]) Abs() *List[float64] { return l.mapNumbers(math.Abs) }

// Square returns the square of every number in the numeric subset.
func (l *List[T]) Square() *List[float64] { return l.Power(2) }

// Cube returns the cube of every number in the numeric subset.
func (l *List[T]) Cube() *List[float64] { return l.Power(3) }

// Sqrt returns the square root of every number in the numeric subset.
// Negative numbers yield NaN.
func (l *List[T]) Sqrt() *List[float64] { return l.mapNumbers(math.Sqrt) }

// Power raises every number in the numeric subset to exp.
func (l *List[T]) Power(exp float64) *List[float64] {
	return l.mapNumbers(func(f float64) float64 { return math.Pow(f, exp) })
}

func (l *List[T]) mapNumbers(fn func(float64) float64) *List[float64] {
	nums := l.numbers()
	for i, f := range nums {
		nums[i] = fn(f)
	}
	return wrap(nums)
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed numeric helpers
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the numbers from, from+step, from+2*step, ... that do not
// exceed to. Both bounds are inclusive. step defaults to 1 and must be
// positive, otherwise [ErrInvalidArgument] is returned.
//
// Float ranges compute every value as from + k*step, and a last value that
// overshoots to by rounding error is reported as to. Non-finite float
// bounds or steps are rejected.
//
//	list.Range(0, 10, 2)      // → [0 2 4 6 8 10]
//	list.Range(0.0, 1.0, 0.1) // → [0 0.1 0.2 ... 0.9 1]
func Range[N Number](from, to N, step ...N) (*List[N], error) {
	s := N(1)
	if len(step) > 0 {
		s = step[0]
	}
	if !(s > 0) {
		return nil, fmt.Errorf("%w: step must be a positive number, got %v", ErrInvalidArgument, s)
	}
	if isFloat[N]() {
		return floatRange(from, to, s)
	}
	out := make([]N, 0)
	for v := from; v <= to; {
		out = append(out, v)
		next := v + s
		if next <= v {
			break
		}
		v = next
	}
	return wrap(out), nil
}

func isFloat[N Number]() bool {
	switch reflect.TypeFor[N]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func floatRange[N Number](from, to, step N) (*List[N], error) {
	f, t, s := float64(from), float64(to), float64(step)
	for _, v := range []float64{f, t, s} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: range bounds and step must be finite, got %v..%v step %v",
				ErrInvalidArgument, from, to, step)
		}
	}
	if f > t {
		return wrap([]N{}), nil
	}
	// Absorb the rounding error of (t-f)/s, e.g. 0.3/0.1 = 2.9999999999999996.
	count := int(math.Floor((t-f)/s+1e-9)) + 1
	out := make([]N, count)
	for k := range out {
		out[k] = from + N(k)*step
		if out[k] > to {
			out[k] = to
		}
	}
	return wrap(out), nil
}

// MustRange is like [Range] but panics on an invalid step.
func MustRange[N Number](from, to N, step ...N) *List[N] {
	l, err := Range(from, to, step...)
	if err != nil {
		panic(err)
	}
	return l
}

// Sum returns the total of a numeric list in its own element type.
func Sum[N Number](l *List[N]) N {
	var total N
	for _, n := range l.items {
		total += n
	}
	return total
}

// Average returns the arithmetic mean of a numeric list, or 0 when it is
// empty.
func Average[N Number](l *List[N]) float64 {
	if l.IsEmpty() {
		return 0
	}
	return float64(Sum(l)) / float64(l.Len())
}

// MinOf returns the smallest item of an ordered list, or false when empty.
func MinOf[O constraints.Ordered](l *List[O]) (O, bool) {
	var zero O
	if l.IsEmpty() {
		return zero, false
	}
	return slices.Min(l.items), true
}

// MaxOf returns the largest item of an ordered list, or false when empty.
func MaxOf[O constraints.Ordered](l *List[O]) (O, bool) {
	var zero O
	if l.IsEmpty() {
		return zero, false
	}
	return slices.Max(l.items), true
}

// SortOrdered returns a new list of ordered items in ascending order.
// The sort is stable.
func SortOrdered[O constraints.Ordered](l *List[O]) *List[O] {
	return l.Sort(cmp.Compare[O])
}

// ─────────────────────────────────────────────────────────────────────────────
// Default ordering
// ─────────────────────────────────────────────────────────────────────────────

// compareAny is the default comparator of [List.Sort]. It ranks numbers
// before strings before everything else. Numbers compare numerically
// (NaN first), strings lexicographically, and other values by their
// fmt.Sprint form.
func compareAny[T any](a, b T) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case 0:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b))
	case 1:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func rank(v any) int {
	if _, ok := asFloat(v); ok {
		return 0
	}
	if v != nil && reflect.TypeOf(v).Kind() == reflect.String {
		return 1
	}
	return 2
}

// compareNumbers orders two numeric values. Integers compare exactly, so
// int64 and uint64 values beyond 2^53 keep their order; a float on either
// side makes the comparison a float64 one.
func compareNumbers(a, b reflect.Value) int {
	ka, kb := numberKind(a), numberKind(b)
	switch {
	case ka == signed && kb == signed:
		return cmp.Compare(a.Int(), b.Int())
	case ka == unsigned && kb == unsigned:
		return cmp.Compare(a.Uint(), b.Uint())
	case ka == signed && kb == unsigned:
		return compareSignedUnsigned(a.Int(), b.Uint())
	case ka == unsigned && kb == signed:
		return -compareSignedUnsigned(b.Int(), a.Uint())
	}
	fa, _ := asFloat(a.Interface())
	fb, _ := asFloat(b.Interface())
	return compareFloat(fa, fb)
}

func compareSignedUnsigned(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

const (
	floating = iota
	signed
	unsigned
)

func numberKind(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	}
	return floating
}

func compareFloat(a, b float64) int {
	return cmp.Compare(a, b)
}
