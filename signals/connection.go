package signals

import (
	"sync"
	"sync/atomic"

	"github.com/delaneyj/slotparty/tracked"
)

// State is the runtime state of a connected slot at the moment it is asked.
type State int

const (
	// Disconnected slots are never invoked again.
	Disconnected State = iota
	// Active slots are invoked on emission.
	Active
	// Blocked slots are skipped but stay connected.
	Blocked
	// Expired slots lost one of their tracked objects. They behave like
	// disconnected ones.
	Expired
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Blocked:
		return "blocked"
	case Expired:
		return "expired"
	default:
		return "disconnected"
	}
}

// connectionBody is shared by every copy of a Connection and by the entry the
// signal keeps for the slot. It outlives the entry.
type connectionBody struct {
	connected atomic.Bool
	expired   atomic.Bool
	blocks    atomic.Int64
	handles   []tracked.Handle
}

func newConnectionBody(handles []tracked.Handle) *connectionBody {
	b := &connectionBody{handles: handles}
	b.connected.Store(true)
	return b
}

func (b *connectionBody) disconnect() {
	b.connected.Store(false)
}

// expire latches the expired state.
func (b *connectionBody) expire() {
	b.expired.Store(true)
	b.connected.Store(false)
}

func (b *connectionBody) isConnected() bool {
	if !b.connected.Load() {
		return false
	}
	if tracked.AnyExpired(b.handles) {
		b.expire()
		return false
	}
	return true
}

// active does not look at tracked handles; callers acquire them right after.
func (b *connectionBody) active() bool {
	return b.connected.Load() && b.blocks.Load() == 0
}

func (b *connectionBody) state() State {
	if !b.isConnected() {
		if b.expired.Load() {
			return Expired
		}
		return Disconnected
	}
	if b.blocks.Load() > 0 {
		return Blocked
	}
	return Active
}

// Connection is a handle to one connected slot. Connections are cheap to copy
// and compare equal when they refer to the same slot. The zero Connection was
// never connected.
type Connection struct {
	body *connectionBody
}

// Disconnect stops the slot from being invoked by any emission that has not
// yet reached it. It may be called from any goroutine, any number of times,
// including from inside the slot itself.
func (c Connection) Disconnect() {
	if c.body != nil {
		c.body.disconnect()
	}
}

// Connected reports whether the slot is still connected and none of its
// tracked objects expired.
func (c Connection) Connected() bool {
	return c.body != nil && c.body.isConnected()
}

// Blocked reports whether at least one Blocker holds the slot.
func (c Connection) Blocked() bool {
	return c.body != nil && c.body.blocks.Load() > 0
}

func (c Connection) State() State {
	if c.body == nil {
		return Disconnected
	}
	return c.body.state()
}

// Block suppresses the slot until the returned Blocker is unblocked.
//
//	defer conn.Block().Unblock()
func (c Connection) Block() *Blocker {
	b := &Blocker{conn: c}
	b.Reblock()
	return b
}

// Blocker holds one block on a connection.
type Blocker struct {
	conn     Connection
	mu       sync.Mutex
	blocking bool
}

// Unblock releases the block. Further calls do nothing until Reblock.
func (b *Blocker) Unblock() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.blocking && b.conn.body != nil {
		b.conn.body.blocks.Add(-1)
	}
	b.blocking = false
}

// Reblock takes the block again if it was released.
func (b *Blocker) Reblock() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.blocking && b.conn.body != nil {
		b.conn.body.blocks.Add(1)
	}
	b.blocking = true
}

func (b *Blocker) Blocking() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blocking
}

func (b *Blocker) Connection() Connection {
	return b.conn
}

// ScopedConnection disconnects its slot on Close unless it was released first.
type ScopedConnection struct {
	mu   sync.Mutex
	conn Connection
}

func Scoped(c Connection) *ScopedConnection {
	return &ScopedConnection{conn: c}
}

func (s *ScopedConnection) Connection() Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn
}

// Release hands the connection back without disconnecting it.
func (s *ScopedConnection) Release() Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.conn
	s.conn = Connection{}
	return c
}

func (s *ScopedConnection) Close() error {
	s.Release().Disconnect()
	return nil
}
