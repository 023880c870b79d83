package signals

import (
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/slotparty/tracked"
)

// SlotFunc is the callable behind a slot. A non-nil error aborts the
// emission that invoked it.
type SlotFunc[A, R any] func(args A) (R, error)

// ExtendedSlotFunc additionally receives the connection it fires through.
type ExtendedSlotFunc[A, R any] func(conn Connection, args A) (R, error)

// trackedSet collects the weak handles a slot depends on. Comparable handles
// are deduplicated; the others are kept in arrival order.
type trackedSet struct {
	handles  mapset.Set[tracked.Handle]
	unhashed []tracked.Handle
}

func newTrackedSet() trackedSet {
	return trackedSet{handles: mapset.NewSet[tracked.Handle]()}
}

func (s *trackedSet) add(hs ...tracked.Handle) {
	for _, h := range hs {
		if h == nil {
			continue
		}
		if !reflect.TypeOf(h).Comparable() {
			s.unhashed = append(s.unhashed, h)
			continue
		}
		s.handles.Add(h)
	}
}

func (s *trackedSet) track(objs []tracked.Trackable) {
	for _, obj := range objs {
		s.add(obj.TrackedHandle())
	}
}

func (s *trackedSet) visit(v tracked.Visitable) {
	v.VisitTracked(func(h tracked.Handle) {
		s.add(h)
	})
}

func (s *trackedSet) slice() []tracked.Handle {
	return append(s.handles.ToSlice(), s.unhashed...)
}

// HandleSource is anything exposing the handles it tracks, like a slot.
type HandleSource interface {
	TrackedHandles() []tracked.Handle
}

// Slot is a callable plus the tracked objects it depends on. A slot expires
// as soon as any of them does.
type Slot[A, R any] struct {
	fn SlotFunc[A, R]
	trackedSet
}

func NewSlot[A, R any](fn SlotFunc[A, R]) *Slot[A, R] {
	return &Slot[A, R]{fn: fn, trackedSet: newTrackedSet()}
}

// Func wraps a callable that cannot fail.
func Func[A, R any](fn func(A) R) *Slot[A, R] {
	return NewSlot[A, R](func(args A) (R, error) {
		return fn(args), nil
	})
}

// Track makes the slot expire when any of objs does.
func (s *Slot[A, R]) Track(objs ...tracked.Trackable) *Slot[A, R] {
	s.track(objs)
	return s
}

// TrackVisitable tracks every handle v yields.
func (s *Slot[A, R]) TrackVisitable(v tracked.Visitable) *Slot[A, R] {
	s.visit(v)
	return s
}

// TrackSlot adopts the tracked objects of another slot.
func (s *Slot[A, R]) TrackSlot(other HandleSource) *Slot[A, R] {
	s.add(other.TrackedHandles()...)
	return s
}

func (s *Slot[A, R]) TrackedHandles() []tracked.Handle {
	return s.slice()
}

func (s *Slot[A, R]) Expired() bool {
	return tracked.AnyExpired(s.slice())
}

// Invoke calls the slot directly, keeping its tracked objects alive for the
// duration of the call. It returns ErrExpiredSlot if one of them is gone.
func (s *Slot[A, R]) Invoke(args A) (R, error) {
	release, ok := tracked.AcquireAll(s.slice())
	if !ok {
		var zero R
		return zero, ErrExpiredSlot
	}
	defer release()
	return s.fn(args)
}

// ExtendedSlot is a slot that can reach its own connection, usually to
// disconnect itself.
type ExtendedSlot[A, R any] struct {
	fn ExtendedSlotFunc[A, R]
	trackedSet
}

func NewExtendedSlot[A, R any](fn ExtendedSlotFunc[A, R]) *ExtendedSlot[A, R] {
	return &ExtendedSlot[A, R]{fn: fn, trackedSet: newTrackedSet()}
}

func (s *ExtendedSlot[A, R]) Track(objs ...tracked.Trackable) *ExtendedSlot[A, R] {
	s.track(objs)
	return s
}

func (s *ExtendedSlot[A, R]) TrackVisitable(v tracked.Visitable) *ExtendedSlot[A, R] {
	s.visit(v)
	return s
}

func (s *ExtendedSlot[A, R]) TrackSlot(other HandleSource) *ExtendedSlot[A, R] {
	s.add(other.TrackedHandles()...)
	return s
}

func (s *ExtendedSlot[A, R]) TrackedHandles() []tracked.Handle {
	return s.slice()
}

func (s *ExtendedSlot[A, R]) Expired() bool {
	return tracked.AnyExpired(s.slice())
}

// bind fixes the connection argument.
func (s *ExtendedSlot[A, R]) bind(conn Connection) SlotFunc[A, R] {
	return func(args A) (R, error) {
		return s.fn(conn, args)
	}
}

// entry is what a signal stores per connected slot.
type entry[A, R any] struct {
	conn   *connectionBody
	invoke SlotFunc[A, R]
}

// call invokes the slot if it is active right now. called is false when the
// slot was skipped.
func (e *entry[A, R]) call(args A) (r R, called bool, err error) {
	if !e.conn.active() {
		return r, false, nil
	}
	release, ok := tracked.AcquireAll(e.conn.handles)
	if !ok {
		e.conn.expire()
		return r, false, nil
	}
	defer release()

	r, err = e.invoke(args)
	return r, err == nil, err
}
