// Package tracked provides the ownership primitives slots use to find out
// whether the objects they reference are still alive.
//
// A Ref is a strong owner of a value living in the same allocation as its
// reference count. A WeakRef observes that block without keeping it alive and
// can be promoted back to a Ref while at least one strong owner remains.
package tracked

// Handle is a weak, type-erased view of a tracked object.
//
// Implementations should be comparable so that tracking the same object twice
// is recorded once. Non-comparable handles are accepted but never
// deduplicated.
type Handle interface {
	// Expired reports whether the object can no longer be resolved.
	Expired() bool
	// Acquire pins the object for as long as the returned release func has not
	// been called. ok is false when the object already expired.
	Acquire() (release func(), ok bool)
}

// Trackable is implemented by anything able to yield its own weak handle.
type Trackable interface {
	TrackedHandle() Handle
}

// Visitable is implemented by composites holding several trackable values.
type Visitable interface {
	VisitTracked(visit func(Handle))
}

// AnyExpired reports whether any of the handles has expired.
func AnyExpired(handles []Handle) bool {
	for _, h := range handles {
		if h.Expired() {
			return true
		}
	}
	return false
}

// AcquireAll pins every handle. If one of them expired, the ones already
// pinned are released and ok is false.
func AcquireAll(handles []Handle) (release func(), ok bool) {
	if len(handles) == 0 {
		return func() {}, true
	}

	releases := make([]func(), 0, len(handles))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
	for _, h := range handles {
		r, alive := h.Acquire()
		if !alive {
			releaseAll()
			return nil, false
		}
		releases = append(releases, r)
	}
	return releaseAll, true
}
