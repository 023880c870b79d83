package tracked_test

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/slotparty/tracked"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	name string
}

func TestRefLifetime(t *testing.T) {
	ref := tracked.New(widget{name: "a"})
	weak := ref.Weak()

	assert.Equal(t, "a", ref.Get().name)
	assert.False(t, weak.Expired())
	assert.EqualValues(t, 1, ref.UseCount())

	clone := ref.Clone()
	require.NotNil(t, clone)
	assert.EqualValues(t, 2, ref.UseCount())

	ref.Release()
	ref.Release() // ignored
	assert.Nil(t, ref.Get())
	assert.False(t, weak.Expired())
	assert.Equal(t, "a", clone.Get().name)

	clone.Release()
	assert.True(t, weak.Expired())
	_, ok := weak.Lock()
	assert.False(t, ok)
}

func TestWeakLockKeepsAlive(t *testing.T) {
	ref := tracked.New(42)
	weak := ref.Weak()

	locked, ok := weak.Lock()
	require.True(t, ok)
	ref.Release()

	assert.False(t, weak.Expired())
	assert.Equal(t, 42, *locked.Get())

	locked.Release()
	assert.True(t, weak.Expired())
}

func TestWeakEquality(t *testing.T) {
	a := tracked.New(1)
	b := tracked.New(1)
	defer a.Release()
	defer b.Release()

	assert.True(t, a.Weak() == a.Weak())
	assert.False(t, a.Weak() == b.Weak())
	assert.Equal(t, a.TrackedHandle(), a.Weak().TrackedHandle())

	var zero tracked.WeakRef[int]
	assert.True(t, zero.Expired())
}

func TestMakeFinalizesOnce(t *testing.T) {
	finalized := 0
	ref, err := tracked.Make(func(w *widget) error {
		w.name = "made"
		return nil
	}, func(w *widget) {
		assert.Equal(t, "made", w.name)
		finalized++
	})
	require.NoError(t, err)

	clone := ref.Clone()
	ref.Release()
	assert.Equal(t, 0, finalized)
	clone.Release()
	clone.Release()
	assert.Equal(t, 1, finalized)
}

func TestMakeInitFailure(t *testing.T) {
	finalized := false
	ref, err := tracked.Make(func(w *widget) error {
		return assert.AnError
	}, func(*widget) {
		finalized = true
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, ref)
	assert.False(t, finalized)
}

func TestAcquireAll(t *testing.T) {
	a := tracked.New(1)
	b := tracked.New(2)
	handles := []tracked.Handle{a.TrackedHandle(), b.TrackedHandle()}

	release, ok := tracked.AcquireAll(handles)
	require.True(t, ok)
	a.Release()
	assert.False(t, tracked.AnyExpired(handles))
	release()
	assert.True(t, tracked.AnyExpired(handles))

	_, ok = tracked.AcquireAll(handles)
	assert.False(t, ok)
	// the failed attempt must not leave b pinned
	b.Release()
	assert.True(t, b.Weak().Expired())
}

func TestConcurrentCloneRelease(t *testing.T) {
	finalized := 0
	ref, err := tracked.Make[int](nil, func(*int) { finalized++ })
	require.NoError(t, err)
	weak := ref.Weak()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if r, ok := weak.Lock(); ok {
					r.Release()
				}
			}
		}()
	}
	wg.Wait()

	ref.Release()
	assert.Equal(t, 1, finalized)
	assert.True(t, weak.Expired())
}

func TestHeapRef(t *testing.T) {
	h := func() tracked.HeapRef[widget] {
		w := &widget{name: "heap"}
		return tracked.Heap(w)
	}()

	require.Eventually(t, func() bool {
		runtime.GC()
		return h.Expired()
	}, time.Second, 10*time.Millisecond)

	_, ok := h.Acquire()
	assert.False(t, ok)
}

func TestHeapRefAlive(t *testing.T) {
	w := &widget{name: "alive"}
	h := tracked.Heap(w)
	runtime.GC()

	release, ok := h.Acquire()
	require.True(t, ok)
	assert.Equal(t, "alive", h.Value().name)
	release()
	runtime.KeepAlive(w)
}

func TestNilRef(t *testing.T) {
	var r *tracked.Ref[int]
	assert.Nil(t, r.Get())
	assert.Nil(t, r.Clone())
	assert.Zero(t, r.UseCount())
	assert.True(t, r.Weak().Expired())
	assert.True(t, r.TrackedHandle().Expired())
	r.Release()
}
