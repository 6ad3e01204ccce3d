package list

import "iter"

// Grouped is a read-only mapping that remembers the order in which its keys
// were first seen. It is returned by [List.GroupBy], [List.CountBy] and
// their typed counterparts [GroupByKey] and [CountByKey].
type Grouped[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Keys returns the keys in first-seen order.
func (g *Grouped[K, V]) Keys() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the value stored under key.
func (g *Grouped[K, V]) Get(key K) (V, bool) {
	v, ok := g.values[key]
	return v, ok
}

// Len returns the number of keys.
func (g *Grouped[K, V]) Len() int { return len(g.keys) }

// All iterates over (key, value) pairs in first-seen key order.
func (g *Grouped[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range g.keys {
			if !yield(k, g.values[k]) {
				return
			}
		}
	}
}

// ToMap returns the groups as a plain, unordered map owned by the caller.
func (g *Grouped[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(g.values))
	for k, v := range g.values {
		out[k] = v
	}
	return out
}

// GroupBy partitions the items by the string key returned by fn. Keys keep
// first-seen order and each group keeps the items' original relative order.
//
// For keys of other comparable types use [GroupByKey].
func (l *List[T]) GroupBy(fn func(T) string) *Grouped[string, *List[T]] {
	if fn == nil {
		panic(nilCallback("GroupBy"))
	}
	return GroupByKey(l, fn)
}

// CountBy counts the items per string key returned by fn, in first-seen key
// order.
func (l *List[T]) CountBy(fn func(T) string) *Grouped[string, int] {
	if fn == nil {
		panic(nilCallback("CountBy"))
	}
	return CountByKey(l, fn)
}

// GroupByKey groups items by the comparable key K extracted by fn.
//
//	byDept := list.GroupByKey(employees,
//	    func(e Employee) string { return e.Department })
func GroupByKey[T any, K comparable](l *List[T], fn func(T) K) *Grouped[K, *List[T]] {
	if fn == nil {
		panic(nilCallback("GroupByKey"))
	}
	var keys []K
	buckets := make(map[K][]T)
	for _, item := range l.items {
		k := fn(item)
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], item)
	}
	values := make(map[K]*List[T], len(buckets))
	for k, items := range buckets {
		values[k] = wrap(items)
	}
	return &Grouped[K, *List[T]]{keys: keys, values: values}
}

// CountByKey counts items per comparable key K extracted by fn.
func CountByKey[T any, K comparable](l *List[T], fn func(T) K) *Grouped[K, int] {
	if fn == nil {
		panic(nilCallback("CountByKey"))
	}
	g := &Grouped[K, int]{values: make(map[K]int)}
	for _, item := range l.items {
		k := fn(item)
		if _, ok := g.values[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.values[k]++
	}
	return g
}
