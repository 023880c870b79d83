// Package signals implements thread-safe signals and slots.
//
// A Signal keeps an ordered list of slots. Emitting it calls every active slot
// in group order, then connection order within a group, and folds their
// results with a Combiner. Connect, disconnect, block and emit may be called
// concurrently, and from inside a running slot.
//
//	sig := signals.NewWithCombiner[int, int](signals.Collect[int])
//	sig.Connect(signals.Func(func(n int) int { return n + 1 }))
//	sig.Connect(signals.Func(func(n int) int { return n * 2 }))
//	out, err := sig.Emit(3) // [4 6]
package signals

import (
	"cmp"
	"fmt"
	"log/slog"
	"sync"

	"github.com/delaneyj/slotparty/tracked"
)

// Signal dispatches an argument of type A to slots returning R, combining
// their results into T. Slots may be grouped under keys of type G.
type Signal[G, A, R, T any] struct {
	name      string
	logger    *slog.Logger
	ungrouped UngroupedPlacement
	order     groupOrder[G]

	mu       sync.Mutex
	list     *slotList[G, A, R]
	combiner Combiner[R, T]
}

// Default is the signal returned by New.
type Default[A, R any] = Signal[int, A, R, Optional[R]]

// New creates a signal with int groups that returns the last slot's result.
func New[A, R any](opts ...Option) *Default[A, R] {
	return NewGrouped[int, A, R, Optional[R]](OptionalLastValue[R], opts...)
}

func NewWithCombiner[A, R, T any](combiner Combiner[R, T], opts ...Option) *Signal[int, A, R, T] {
	return NewGrouped[int, A, R, T](combiner, opts...)
}

// NewGrouped orders groups by their natural order.
func NewGrouped[G cmp.Ordered, A, R, T any](combiner Combiner[R, T], opts ...Option) *Signal[G, A, R, T] {
	return NewGroupedFunc[G, A, R, T](cmp.Compare[G], combiner, opts...)
}

// NewGroupedFunc orders groups with compare, which must be a strict weak
// order returning a negative, zero or positive number.
func NewGroupedFunc[G, A, R, T any](compare func(a, b G) int, combiner Combiner[R, T], opts ...Option) *Signal[G, A, R, T] {
	if compare == nil || combiner == nil {
		panic("signals: nil compare or combiner")
	}
	cfg := newConfig(opts)
	return &Signal[G, A, R, T]{
		name:      cfg.name,
		logger:    cfg.logger,
		ungrouped: cfg.ungrouped,
		order:     compare,
		list:      &slotList[G, A, R]{},
		combiner:  combiner,
	}
}

func (s *Signal[G, A, R, T]) Name() string {
	return s.name
}

func (s *Signal[G, A, R, T]) ungroupedKey(pos Position) groupKey[G] {
	switch s.ungrouped {
	case UngroupedBeforeGroups:
		return groupKey[G]{bucket: frontBucket}
	case UngroupedAfterGroups:
		return groupKey[G]{bucket: backBucket}
	}
	if pos == AtFront {
		return groupKey[G]{bucket: frontBucket}
	}
	return groupKey[G]{bucket: backBucket}
}

// Connect adds an ungrouped slot, at the back unless AtFront is given.
func (s *Signal[G, A, R, T]) Connect(slot *Slot[A, R], pos ...Position) Connection {
	p := position(pos)
	return s.connect(s.ungroupedKey(p), p, slot.TrackedHandles(), func(Connection) SlotFunc[A, R] {
		return slot.fn
	})
}

// ConnectGroup adds a slot to group, creating the group if needed.
func (s *Signal[G, A, R, T]) ConnectGroup(group G, slot *Slot[A, R], pos ...Position) Connection {
	return s.connect(groupKey[G]{bucket: namedBucket, name: group}, position(pos), slot.TrackedHandles(), func(Connection) SlotFunc[A, R] {
		return slot.fn
	})
}

func (s *Signal[G, A, R, T]) ConnectExtended(slot *ExtendedSlot[A, R], pos ...Position) Connection {
	p := position(pos)
	return s.connect(s.ungroupedKey(p), p, slot.TrackedHandles(), slot.bind)
}

func (s *Signal[G, A, R, T]) ConnectGroupExtended(group G, slot *ExtendedSlot[A, R], pos ...Position) Connection {
	return s.connect(groupKey[G]{bucket: namedBucket, name: group}, position(pos), slot.TrackedHandles(), slot.bind)
}

func (s *Signal[G, A, R, T]) connect(key groupKey[G], pos Position, handles []tracked.Handle, bind func(Connection) SlotFunc[A, R]) Connection {
	body := newConnectionBody(handles)
	conn := Connection{body: body}
	e := &entry[A, R]{conn: body, invoke: bind(conn)}

	s.mu.Lock()
	var next *slotList[G, A, R]
	if s.list.stale(keepConnected[A, R]) {
		next = s.list.compact(keepConnected[A, R])
	} else {
		next = s.list.clone()
	}
	next.insert(s.order, key, pos, e)
	purged := s.list.len() + 1 - next.len()
	s.list = next
	s.mu.Unlock()

	s.logger.Debug(
		"slot connected",
		slog.String("signal", s.name),
		slog.Int("slots", next.len()),
		slog.Int("purged", purged),
	)
	return conn
}

func keepConnected[A, R any](e *entry[A, R]) bool {
	return e.conn.isConnected()
}

// Disconnect disconnects every slot in group.
func (s *Signal[G, A, R, T]) Disconnect(group G) {
	s.mu.Lock()
	if i, ok := s.list.find(s.order, groupKey[G]{bucket: namedBucket, name: group}); ok {
		for _, e := range s.list.groups[i].entries {
			e.conn.disconnect()
		}
	}
	prev := s.list.len()
	s.list = s.list.rebuild(keepConnected[A, R])
	purged := prev - s.list.len()
	s.mu.Unlock()

	s.logger.Debug(
		"group disconnected",
		slog.String("signal", s.name),
		slog.Any("group", group),
		slog.Int("purged", purged),
	)
}

// DisconnectAll disconnects every slot.
func (s *Signal[G, A, R, T]) DisconnectAll() {
	s.mu.Lock()
	old := s.list
	s.list = &slotList[G, A, R]{}
	s.mu.Unlock()

	for _, e := range old.flat {
		e.conn.disconnect()
	}
	s.logger.Debug("all slots disconnected", slog.String("signal", s.name), slog.Int("purged", old.len()))
}

// NumSlots counts connected slots, blocked ones included.
func (s *Signal[G, A, R, T]) NumSlots() int {
	n := 0
	for _, e := range s.snapshot() {
		if e.conn.isConnected() {
			n++
		}
	}
	return n
}

func (s *Signal[G, A, R, T]) Empty() bool {
	for _, e := range s.snapshot() {
		if e.conn.isConnected() {
			return false
		}
	}
	return true
}

func (s *Signal[G, A, R, T]) Combiner() Combiner[R, T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combiner
}

// SetCombiner replaces the combiner for emissions that start afterwards.
func (s *Signal[G, A, R, T]) SetCombiner(combiner Combiner[R, T]) {
	if combiner == nil {
		panic("signals: nil combiner")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.combiner = combiner
}

func (s *Signal[G, A, R, T]) snapshot() []*entry[A, R] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.flat
}

// Emit calls every active slot with args and returns the combined result.
//
// The set and order of slots is fixed when Emit starts; whether each one is
// still active is decided right before calling it. If a slot returns an
// error, the remaining slots are skipped and the error is returned wrapped in
// ErrSlotFailed. Panics raised by slots or the combiner are not recovered.
func (s *Signal[G, A, R, T]) Emit(args A) (out T, err error) {
	s.mu.Lock()
	em := &emission[A, R]{entries: s.list.flat, args: args}
	combiner := s.combiner
	s.mu.Unlock()

	defer func() {
		if em.err == nil {
			return
		}
		// only a slot failure of this emission is unwinding here, unless the
		// combiner swallowed it and panicked with something else
		if r := recover(); r != nil {
			if f, ok := r.(slotFailure); !ok || f.owner != em {
				panic(r)
			}
		}
		var zero T
		out, err = zero, fmt.Errorf("%w: %w", ErrSlotFailed, em.err)
	}()
	return combiner(em.results), nil
}

type emission[A, R any] struct {
	entries []*entry[A, R]
	args    A
	started bool
	err     error
}

func (em *emission[A, R]) results(yield func(R) bool) {
	if em.started {
		return
	}
	em.started = true

	for _, e := range em.entries {
		r, called, err := e.call(em.args)
		if err != nil {
			em.err = err
			panic(slotFailure{owner: em, err: err})
		}
		if called && !yield(r) {
			return
		}
	}
}
