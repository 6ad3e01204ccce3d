package arr

import "reflect"

// Same reports whether a and b are the same value: primitives compare by
// value, pointers, maps, channels and funcs by identity, and slices by
// backing array, length and capacity. It never compares structure.
//
// Values of different dynamic types are never the same. Like ==, NaN is not
// the same as itself.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.Cap() == vb.Cap() &&
			va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Type().Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual guards == against comparable static types (structs, arrays,
// interfaces) that hold an uncomparable dynamic value.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// IsNil reports whether v is absent: an untyped nil or a nil pointer, map,
// slice, channel, func or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// hashable reports whether v can be used as a map key without risking a
// runtime panic and with == semantics identical to [Same].
func hashable(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128, reflect.String, reflect.Pointer,
		reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// valueSet is a membership set keyed by [Same]. Hashable values go into a
// map; everything else falls back to a linear scan.
type valueSet struct {
	keys  map[any]struct{}
	other []any
}

func newValueSet(capacity int) *valueSet {
	return &valueSet{keys: make(map[any]struct{}, capacity)}
}

func (s *valueSet) add(v any) {
	if hashable(v) {
		s.keys[v] = struct{}{}
		return
	}
	s.other = append(s.other, v)
}

func (s *valueSet) has(v any) bool {
	if hashable(v) {
		_, ok := s.keys[v]
		return ok
	}
	for _, o := range s.other {
		if Same(o, v) {
			return true
		}
	}
	return false
}
