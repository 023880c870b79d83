// Package deconstruct builds an object and its owning reference count in one
// allocation, with an optional post-construction phase that runs once the
// object is first used as a shared handle, and a pre-destruction phase that
// runs right before the object is torn down.
//
//	p, err := deconstruct.Construct(func(s *Session) error {
//		return s.init(addr)
//	})
//	if err != nil {
//		return err
//	}
//	session := p.PostConstruct(bus) // runs (*Session).PostConstruct once
//	defer session.Release()         // runs PreDestruct then Destroy
package deconstruct

import (
	"sync"

	"github.com/delaneyj/slotparty/tracked"
)

// PostConstructor is implemented by types that need a second construction
// phase with access to their own shared handle, typically to hand out weak
// references to themselves. self is borrowed: Clone it to keep it.
type PostConstructor[T any] interface {
	PostConstruct(self *tracked.Ref[T], args ...any)
}

// PreDestructor is called once, immediately before Destroy, when the last
// owner releases the object.
type PreDestructor interface {
	PreDestruct()
}

// Destructor is the teardown of the object itself.
type Destructor interface {
	Destroy()
}

// Proxy holds a freshly constructed object until its post-construction phase
// has run.
type Proxy[T any] struct {
	ref  *tracked.Ref[T]
	once sync.Once
}

// New constructs a zero T.
func New[T any]() *Proxy[T] {
	p, _ := Construct[T](nil)
	return p
}

// Construct allocates the object together with its control block and runs
// init on it in place. If init fails the error is returned, no hook runs and
// the allocation is dropped.
func Construct[T any](init func(*T) error) (*Proxy[T], error) {
	ref, err := tracked.Make(init, destroy[T])
	if err != nil {
		return nil, err
	}
	return &Proxy[T]{ref: ref}, nil
}

func destroy[T any](v *T) {
	if pd, ok := any(v).(PreDestructor); ok {
		pd.PreDestruct()
	}
	if d, ok := any(v).(Destructor); ok {
		d.Destroy()
	}
}

// PostConstruct runs the post-construction hook with args, unless it already
// ran, and returns the owning handle. The handle is the proxy's own: callers
// release it when they are done with the object.
func (p *Proxy[T]) PostConstruct(args ...any) *tracked.Ref[T] {
	p.once.Do(func() {
		if pc, ok := any(p.ref.Get()).(PostConstructor[T]); ok {
			pc.PostConstruct(p.ref, args...)
		}
	})
	return p.ref
}

// Ref is PostConstruct without arguments.
func (p *Proxy[T]) Ref() *tracked.Ref[T] {
	return p.PostConstruct()
}
