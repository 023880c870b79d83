package tracked

import (
	"runtime"
	"weak"
)

// HeapRef tracks an ordinary garbage collected object. It expires once the
// collector has reclaimed the object, which only happens after every other
// pointer to it is gone.
type HeapRef[T any] struct {
	p weak.Pointer[T]
}

// Heap returns a tracking handle for p.
func Heap[T any](p *T) HeapRef[T] {
	return HeapRef[T]{p: weak.Make(p)}
}

// Value returns the object, or nil once it has been collected.
func (h HeapRef[T]) Value() *T {
	return h.p.Value()
}

func (h HeapRef[T]) Expired() bool {
	return h.p.Value() == nil
}

func (h HeapRef[T]) Acquire() (func(), bool) {
	v := h.p.Value()
	if v == nil {
		return nil, false
	}
	return func() { runtime.KeepAlive(v) }, true
}

func (h HeapRef[T]) TrackedHandle() Handle {
	return h
}
