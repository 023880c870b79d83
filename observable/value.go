// Package observable provides thread-safe value cells that announce changes
// through a signal.
package observable

import (
	"sync"

	"github.com/delaneyj/slotparty/signals"
	"github.com/delaneyj/slotparty/tracked"
)

// Change is emitted after a cell's value changed.
type Change[T any] struct {
	Old T
	New T
}

// Value is a writeable cell. Setting an equal value is a no-op.
type Value[T comparable] struct {
	mu      sync.Mutex
	v       T
	changed *signals.Signal[int, Change[T], struct{}, struct{}]
}

func NewValue[T comparable](v T, opts ...signals.Option) *Value[T] {
	return &Value[T]{
		v:       v,
		changed: signals.NewWithCombiner[Change[T], struct{}, struct{}](signals.Discard[struct{}], opts...),
	}
}

func (c *Value[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// SetValue stores v and notifies subscribers. Subscribers run on the calling
// goroutine, after the cell is unlocked, so they may read or write it.
func (c *Value[T]) SetValue(v T) error {
	c.mu.Lock()
	if c.v == v {
		c.mu.Unlock()
		return nil
	}
	old := c.v
	c.v = v
	c.mu.Unlock()

	_, err := c.changed.Emit(Change[T]{Old: old, New: v})
	return err
}

// Subscribe calls fn after every change until the connection is closed or
// one of the tracked objects expires.
func (c *Value[T]) Subscribe(fn func(Change[T]), track ...tracked.Trackable) signals.Connection {
	return c.changed.Connect(signals.Func(func(ch Change[T]) struct{} {
		fn(ch)
		return struct{}{}
	}).Track(track...))
}

// Changed exposes the underlying signal for grouped or extended slots.
func (c *Value[T]) Changed() *signals.Signal[int, Change[T], struct{}, struct{}] {
	return c.changed
}

// Derive returns a cell holding fn applied to src's value, kept up to date
// for as long as the returned ref (or a clone of it) is alive. Releasing the
// last ref detaches it from src.
func Derive[T, O comparable](src *Value[T], fn func(T) O) *tracked.Ref[Value[O]] {
	ref, _ := tracked.Make(func(d *Value[O]) error {
		d.v = fn(src.Value())
		d.changed = signals.NewWithCombiner[Change[O], struct{}, struct{}](signals.Discard[struct{}])
		return nil
	}, nil)

	// the slot only runs while ref is pinned by the emission
	cell := ref.Get()
	src.changed.Connect(signals.NewSlot[Change[T], struct{}](func(ch Change[T]) (struct{}, error) {
		return struct{}{}, cell.SetValue(fn(ch.New))
	}).Track(ref))
	// catch up with changes made before the slot was connected; nobody
	// subscribed to cell yet so this cannot fail
	_ = cell.SetValue(fn(src.Value()))
	return ref
}
