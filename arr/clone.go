package arr

import (
	"reflect"
	"unsafe"
)

// DeepCopier is implemented by types that know how to duplicate themselves.
// [DeepCopy] prefers it over reflection.
type DeepCopier[T any] interface {
	DeepCopy() T
}

// DeepCopy returns a structurally independent copy of v: pointers, slices,
// maps, arrays, interfaces and structs (unexported fields included) are
// duplicated recursively so that no part of the result is shared with v.
// Channels, funcs and unsafe pointers are shared.
//
// Cycles through pointers and maps are reproduced in the copy. Cycles that
// run only through slices are not supported.
func DeepCopy[T any](v T) T {
	if c, ok := any(v).(DeepCopier[T]); ok {
		return c.DeepCopy()
	}
	var out T
	c := copier{seen: make(map[visit]reflect.Value)}
	reflect.ValueOf(&out).Elem().Set(c.copy(reflect.ValueOf(&v).Elem()))
	return out
}

// DeepCopyAll deep-copies every element of items into a fresh slice.
func DeepCopyAll[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = DeepCopy(item)
	}
	return out
}

type visit struct {
	ptr unsafe.Pointer
	typ reflect.Type
}

type copier struct {
	seen map[visit]reflect.Value
}

// copy expects src to be readable through reflection: either addressable or
// not derived from an unexported field.
func (c *copier) copy(src reflect.Value) reflect.Value {
	t := src.Type()
	dst := reflect.New(t).Elem()
	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return dst
		}
		key := visit{src.UnsafePointer(), t}
		if done, ok := c.seen[key]; ok {
			return done
		}
		p := reflect.New(t.Elem())
		c.seen[key] = p
		p.Elem().Set(c.copy(open(src.Elem())))
		return p
	case reflect.Interface:
		if src.IsNil() {
			return dst
		}
		dst.Set(c.copy(src.Elem()))
	case reflect.Slice:
		if src.IsNil() {
			return dst
		}
		dst.Set(reflect.MakeSlice(t, src.Len(), src.Cap()))
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(c.copy(open(src.Index(i))))
		}
	case reflect.Array:
		src = addressable(src)
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(c.copy(open(src.Index(i))))
		}
	case reflect.Map:
		if src.IsNil() {
			return dst
		}
		key := visit{src.UnsafePointer(), t}
		if done, ok := c.seen[key]; ok {
			return done
		}
		m := reflect.MakeMapWithSize(t, src.Len())
		c.seen[key] = m
		iter := src.MapRange()
		for iter.Next() {
			m.SetMapIndex(c.copy(iter.Key()), c.copy(iter.Value()))
		}
		return m
	case reflect.Struct:
		src = addressable(src)
		for i := 0; i < src.NumField(); i++ {
			open(dst.Field(i)).Set(c.copy(open(src.Field(i))))
		}
	default:
		dst.Set(src)
	}
	return dst
}

// open strips the read-only flag reflection puts on values reached through
// unexported fields. v must be addressable.
func open(v reflect.Value) reflect.Value {
	if v.CanSet() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)
	return tmp
}
