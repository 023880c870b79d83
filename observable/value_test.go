package observable_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/delaneyj/slotparty/observable"
	"github.com/delaneyj/slotparty/signals"
	"github.com/delaneyj/slotparty/tracked"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicUsage(t *testing.T) {
	count := observable.NewValue(1)

	var changes []observable.Change[int]
	conn := count.Subscribe(func(ch observable.Change[int]) {
		changes = append(changes, ch)
	})

	require.NoError(t, count.SetValue(2))
	require.NoError(t, count.SetValue(2))
	require.NoError(t, count.SetValue(3))
	assert.Equal(t, 3, count.Value())
	assert.Equal(t, []observable.Change[int]{{Old: 1, New: 2}, {Old: 2, New: 3}}, changes)

	conn.Disconnect()
	require.NoError(t, count.SetValue(4))
	assert.Len(t, changes, 2)
}

func TestSubscriberMayWriteBack(t *testing.T) {
	v := observable.NewValue(0)
	v.Subscribe(func(ch observable.Change[int]) {
		if ch.New < 3 {
			require.NoError(t, v.SetValue(ch.New+1))
		}
	})

	require.NoError(t, v.SetValue(1))
	assert.Equal(t, 3, v.Value())
}

func TestSubscriberTracking(t *testing.T) {
	v := observable.NewValue("a")
	owner := tracked.New(struct{}{})

	calls := 0
	conn := v.Subscribe(func(observable.Change[string]) { calls++ }, owner)
	require.NoError(t, v.SetValue("b"))
	owner.Release()
	require.NoError(t, v.SetValue("c"))

	assert.Equal(t, 1, calls)
	assert.False(t, conn.Connected())
}

func TestSubscriberError(t *testing.T) {
	boom := errors.New("boom")
	v := observable.NewValue(0)
	v.Changed().ConnectGroup(0, signals.NewSlot[observable.Change[int], struct{}](func(observable.Change[int]) (struct{}, error) {
		return struct{}{}, boom
	}))

	err := v.SetValue(1)
	assert.ErrorIs(t, err, boom)
	// the value is stored regardless
	assert.Equal(t, 1, v.Value())
}

func TestDerive(t *testing.T) {
	src := observable.NewValue(2)
	doubled := observable.Derive(src, func(n int) int { return n * 2 })
	label := observable.Derive(src, strconv.Itoa)

	assert.Equal(t, 4, doubled.Get().Value())
	assert.Equal(t, "2", label.Get().Value())

	require.NoError(t, src.SetValue(5))
	assert.Equal(t, 10, doubled.Get().Value())
	assert.Equal(t, "5", label.Get().Value())
	assert.Equal(t, 2, src.Changed().NumSlots())

	doubled.Release()
	require.NoError(t, src.SetValue(6))
	assert.Equal(t, "6", label.Get().Value())
	assert.Equal(t, 1, src.Changed().NumSlots())
	label.Release()
	assert.True(t, src.Changed().Empty())
}

func TestDeriveChain(t *testing.T) {
	src := observable.NewValue(1)
	plusOne := observable.Derive(src, func(n int) int { return n + 1 })
	defer plusOne.Release()
	squared := observable.Derive(plusOne.Get(), func(n int) int { return n * n })
	defer squared.Release()

	var seen []int
	squared.Get().Subscribe(func(ch observable.Change[int]) {
		seen = append(seen, ch.New)
	})

	require.NoError(t, src.SetValue(2))
	require.NoError(t, src.SetValue(3))
	assert.Equal(t, 16, squared.Get().Value())
	assert.Equal(t, []int{9, 16}, seen)
}
