package signals

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() *entry[int, int] {
	return &entry[int, int]{conn: newConnectionBody(nil)}
}

func TestInsertSharesUntouchedGroups(t *testing.T) {
	order := groupOrder[int](cmp.Compare[int])
	named := func(g int) groupKey[int] { return groupKey[int]{bucket: namedBucket, name: g} }

	list := &slotList[int, int, int]{}
	for g := 0; g < 3; g++ {
		list = list.clone()
		list.insert(order, named(g), AtBack, testEntry())
	}
	require.Len(t, list.groups, 3)
	flat := slices.Clone(list.flat)

	e := testEntry()
	next := list.clone()
	next.insert(order, named(1), AtFront, e)

	assert.Same(t, list.groups[0], next.groups[0])
	assert.Same(t, list.groups[2], next.groups[2])
	assert.NotSame(t, list.groups[1], next.groups[1])
	assert.Len(t, list.groups[1].entries, 1)
	assert.Same(t, e, next.groups[1].entries[0])

	// the published list is unchanged
	assert.Equal(t, flat, list.flat)
	assert.Len(t, next.flat, 4)
	assert.Same(t, e, next.flat[1])
}

func TestConnectPurgesOnlyWhenStale(t *testing.T) {
	sig := NewWithCombiner[int, int, []int](Collect[int])
	a := sig.ConnectGroup(1, Func(func(n int) int { return n }))
	sig.ConnectGroup(2, Func(func(n int) int { return n }))
	before := sig.list
	assert.False(t, before.stale(keepConnected[int, int]))

	a.Disconnect()
	assert.True(t, before.stale(keepConnected[int, int]))
	sig.ConnectGroup(3, Func(func(n int) int { return n }))
	assert.Equal(t, 2, sig.list.len())
	assert.Len(t, sig.list.groups, 2)
	// the earlier snapshot still holds both entries
	assert.Equal(t, 2, before.len())
}
