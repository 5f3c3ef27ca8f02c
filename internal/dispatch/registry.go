package dispatch

import (
	"fmt"
	"reflect"
	"slices"
)

// Key identifies a candidate set.
type Key struct {
	Opcode    int
	Subopcode int
}

func (k Key) String() string {
	return fmt.Sprintf("(%d, %d)", k.Opcode, k.Subopcode)
}

// Entry is one row of a registry table.
type Entry[R any] struct {
	Key     Key
	Handler Handler[R]
}

// On builds an Entry for the given key pair.
func On[R any](opcode, subopcode int, h Handler[R]) Entry[R] {
	return Entry[R]{Key: Key{Opcode: opcode, Subopcode: subopcode}, Handler: h}
}

// Registry is a sealed (opcode, subopcode) -> handler multi-map. Candidates
// keep registration order and the same key may hold several handlers of the
// same signature. It has no mutating methods, so concurrent lookups are safe
// once NewRegistry has returned.
type Registry[R any] struct {
	handlers map[Key][]Handler[R]
	keys     []Key
	size     int
}

// NewRegistry builds a registry from a literal table. It panics on an entry
// without a Func or whose Func wraps a nil func, the same way a nil handler
// is rejected by http.Handle.
func NewRegistry[R any](entries ...Entry[R]) *Registry[R] {
	r := &Registry[R]{
		handlers: make(map[Key][]Handler[R]),
	}
	for i, e := range entries {
		if isNilFunc[R](e.Handler.Fn) {
			panic(fmt.Sprintf("dispatch: entry %d (%s %q) has no handler func", i, e.Key, e.Handler.Name))
		}
		if _, exists := r.handlers[e.Key]; !exists {
			r.keys = append(r.keys, e.Key)
		}
		r.handlers[e.Key] = append(r.handlers[e.Key], e.Handler)
		r.size++
	}
	return r
}

// isNilFunc reports whether fn is nil or holds a nil func value, as in
// VoidHandler[R]("name", nil).
func isNilFunc[R any](fn Func[R]) bool {
	return fn == nil || reflect.ValueOf(fn).IsNil()
}

// Lookup returns a copy of the candidate set for key.
func (r *Registry[R]) Lookup(key Key) []Handler[R] {
	return slices.Clone(r.handlers[key])
}

// Signatures returns the signature of every candidate under key, in order.
func (r *Registry[R]) Signatures(key Key) []Signature {
	cands := r.handlers[key]
	sigs := make([]Signature, 0, len(cands))
	for _, h := range cands {
		sigs = append(sigs, h.Signature())
	}
	return sigs
}

// Keys returns the distinct keys in first-registration order.
func (r *Registry[R]) Keys() []Key {
	return slices.Clone(r.keys)
}

// Len returns the number of registered handlers.
func (r *Registry[R]) Len() int {
	return r.size
}

func (r *Registry[R]) candidates(key Key) []Handler[R] {
	return r.handlers[key]
}
