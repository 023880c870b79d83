package signals

import "slices"

// Position selects which end of its group a slot is connected to.
type Position int

const (
	AtBack Position = iota
	AtFront
)

func position(pos []Position) Position {
	if len(pos) == 0 {
		return AtBack
	}
	return pos[len(pos)-1]
}

// UngroupedPlacement decides where slots connected without a group go
// relative to the named groups.
type UngroupedPlacement int

const (
	// UngroupedByPosition puts slots connected AtFront before every named
	// group and slots connected AtBack after every named group.
	UngroupedByPosition UngroupedPlacement = iota
	// UngroupedBeforeGroups puts every ungrouped slot before the named groups.
	UngroupedBeforeGroups
	// UngroupedAfterGroups puts every ungrouped slot after the named groups.
	UngroupedAfterGroups
)

type bucket uint8

const (
	frontBucket bucket = iota
	namedBucket
	backBucket
)

type groupKey[G any] struct {
	bucket bucket
	name   G
}

// groupOrder is the user supplied order over group names.
type groupOrder[G any] func(a, b G) int

func (o groupOrder[G]) compare(a, b groupKey[G]) int {
	if a.bucket != b.bucket {
		return int(a.bucket) - int(b.bucket)
	}
	if a.bucket != namedBucket {
		return 0
	}
	return o(a.name, b.name)
}

type slotGroup[G, A, R any] struct {
	key     groupKey[G]
	entries []*entry[A, R]
}

// slotList is never modified once published to a signal. Mutations go
// through rebuild, compact or clone, which return a private copy.
type slotList[G, A, R any] struct {
	groups []*slotGroup[G, A, R]
	flat   []*entry[A, R]
}

func (l *slotList[G, A, R]) len() int {
	return len(l.flat)
}

func (l *slotList[G, A, R]) find(order groupOrder[G], key groupKey[G]) (int, bool) {
	return slices.BinarySearchFunc(l.groups, key, func(g *slotGroup[G, A, R], k groupKey[G]) int {
		return order.compare(g.key, k)
	})
}

// stale reports whether any entry would be dropped by keep.
func (l *slotList[G, A, R]) stale(keep func(*entry[A, R]) bool) bool {
	for _, e := range l.flat {
		if !keep(e) {
			return true
		}
	}
	return false
}

// rebuild copies the list keeping only the entries accepted by keep. Groups
// left without entries are dropped from the copy.
func (l *slotList[G, A, R]) rebuild(keep func(*entry[A, R]) bool) *slotList[G, A, R] {
	next := l.compact(keep)
	next.flatten()
	return next
}

// compact is rebuild without the flat view.
func (l *slotList[G, A, R]) compact(keep func(*entry[A, R]) bool) *slotList[G, A, R] {
	next := &slotList[G, A, R]{
		groups: make([]*slotGroup[G, A, R], 0, len(l.groups)+1),
	}
	for _, g := range l.groups {
		kept := make([]*entry[A, R], 0, len(g.entries))
		for _, e := range g.entries {
			if keep(e) {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			continue
		}
		next.groups = append(next.groups, &slotGroup[G, A, R]{key: g.key, entries: kept})
	}
	return next
}

// clone copies the group index only. Groups are shared with l until insert
// replaces the one it touches.
func (l *slotList[G, A, R]) clone() *slotList[G, A, R] {
	groups := make([]*slotGroup[G, A, R], len(l.groups), len(l.groups)+1)
	copy(groups, l.groups)
	return &slotList[G, A, R]{groups: groups}
}

// insert must only be called on a list returned by compact or clone. The
// target group is replaced, never appended to in place.
func (l *slotList[G, A, R]) insert(order groupOrder[G], key groupKey[G], pos Position, e *entry[A, R]) {
	i, found := l.find(order, key)
	if !found {
		l.groups = slices.Insert(l.groups, i, &slotGroup[G, A, R]{key: key, entries: []*entry[A, R]{e}})
		l.flatten()
		return
	}

	old := l.groups[i].entries
	entries := make([]*entry[A, R], 0, len(old)+1)
	if pos == AtFront {
		entries = append(entries, e)
	}
	entries = append(entries, old...)
	if pos != AtFront {
		entries = append(entries, e)
	}
	l.groups[i] = &slotGroup[G, A, R]{key: key, entries: entries}
	l.flatten()
}

func (l *slotList[G, A, R]) flatten() {
	n := 0
	for _, g := range l.groups {
		n += len(g.entries)
	}
	flat := make([]*entry[A, R], 0, n)
	for _, g := range l.groups {
		flat = append(flat, g.entries...)
	}
	l.flat = flat
}
