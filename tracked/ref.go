package tracked

import "sync/atomic"

// block holds the value and its strong count in a single allocation.
type block[T any] struct {
	value    T
	strong   atomic.Int64
	finalize func(*T)
}

func (b *block[T]) retain() bool {
	for {
		n := b.strong.Load()
		if n <= 0 {
			return false
		}
		if b.strong.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (b *block[T]) release() {
	if b.strong.Add(-1) != 0 {
		return
	}
	if b.finalize != nil {
		b.finalize(&b.value)
	}
	var zero T
	b.value = zero
}

// Ref is one strong owner of a tracked value. Every Ref obtained from New,
// Make, Clone or WeakRef.Lock must be released exactly once; extra calls to
// Release on the same Ref are ignored.
type Ref[T any] struct {
	b        *block[T]
	released atomic.Bool
}

// New places v in a fresh block owned by the returned Ref.
func New[T any](v T) *Ref[T] {
	b := &block[T]{value: v}
	b.strong.Store(1)
	return &Ref[T]{b: b}
}

// Make initialises the value in place. finalize runs once, when the last owner
// releases. If init fails the block is dropped and finalize never runs.
func Make[T any](init func(*T) error, finalize func(*T)) (*Ref[T], error) {
	b := &block[T]{}
	if init != nil {
		if err := init(&b.value); err != nil {
			return nil, err
		}
	}
	b.finalize = finalize
	b.strong.Store(1)
	return &Ref[T]{b: b}, nil
}

// Get returns the owned value, or nil once this Ref has been released.
func (r *Ref[T]) Get() *T {
	if r == nil || r.released.Load() {
		return nil
	}
	return &r.b.value
}

// Clone returns a new owner of the same value, or nil if r was released.
func (r *Ref[T]) Clone() *Ref[T] {
	if r == nil || r.released.Load() || !r.b.retain() {
		return nil
	}
	return &Ref[T]{b: r.b}
}

// Release gives up this owner's claim.
func (r *Ref[T]) Release() {
	if r == nil {
		return
	}
	if r.released.CompareAndSwap(false, true) {
		r.b.release()
	}
}

// Weak returns a non-owning reference to the same block.
func (r *Ref[T]) Weak() WeakRef[T] {
	if r == nil {
		return WeakRef[T]{}
	}
	return WeakRef[T]{b: r.b}
}

// UseCount is the number of live strong owners.
func (r *Ref[T]) UseCount() int64 {
	if r == nil {
		return 0
	}
	return r.b.strong.Load()
}

func (r *Ref[T]) TrackedHandle() Handle {
	return r.Weak()
}

// WeakRef observes a block without owning it. WeakRefs to the same block
// compare equal.
type WeakRef[T any] struct {
	b *block[T]
}

// Lock promotes the weak reference to a new owner.
func (w WeakRef[T]) Lock() (*Ref[T], bool) {
	if w.b == nil || !w.b.retain() {
		return nil, false
	}
	return &Ref[T]{b: w.b}, true
}

func (w WeakRef[T]) Expired() bool {
	return w.b == nil || w.b.strong.Load() <= 0
}

func (w WeakRef[T]) Acquire() (func(), bool) {
	r, ok := w.Lock()
	if !ok {
		return nil, false
	}
	return r.Release, true
}

func (w WeakRef[T]) TrackedHandle() Handle {
	return w
}
