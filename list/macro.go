package list

import (
	"fmt"
	"sync"
)

// MacroFunc is a named extension that runs against a list.
//
// Macros are registered once for every element type, so the receiver
// arrives untyped; assert it back to the *List[T] the macro expects. The
// returned value is handed to the caller of [List.Macro] unchanged.
type MacroFunc func(l any, args ...any) any

// macroTable maps macro names to their functions. The zero value is ready
// to use.
type macroTable struct {
	mu  sync.RWMutex
	fns map[string]MacroFunc
}

var macros macroTable

func (m *macroTable) set(name string, fn MacroFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fns == nil {
		m.fns = make(map[string]MacroFunc)
	}
	m.fns[name] = fn
}

func (m *macroTable) get(name string) (MacroFunc, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn, ok := m.fns[name]
	return fn, ok
}

func (m *macroTable) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fns = nil
}

// RegisterMacro binds fn to name, replacing any earlier binding. A nil fn
// panics with an error wrapping [ErrInvalidArgument].
//
//	list.RegisterMacro("evens", func(l any, _ ...any) any {
//	    return l.(*list.List[int]).Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//	res, _ := list.Of(1, 2, 3, 4).Macro("evens") // → 2,4
func RegisterMacro(name string, fn MacroFunc) {
	if fn == nil {
		panic(nilCallback("RegisterMacro"))
	}
	macros.set(name, fn)
}

// HasMacro reports whether name is bound.
func HasMacro(name string) bool {
	_, ok := macros.get(name)
	return ok
}

// FlushMacros unbinds every macro.
func FlushMacros() { macros.reset() }

// CallMacro runs the macro bound to name on l. The error wraps
// [ErrMacroNotFound] when name is unbound.
func CallMacro(name string, l any, args ...any) (any, error) {
	fn, ok := macros.get(name)
	if !ok {
		return nil, fmt.Errorf("list: call macro %q: %w", name, ErrMacroNotFound)
	}
	return fn(l, args...), nil
}

// Macro runs the macro bound to name with l as its receiver.
func (l *List[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}
