package diversity

// groupTable is a fixed-capacity map from group key to accepted count.
// Count slots are preallocated in one arena up to capacity, so the memory
// bound is enforced structurally: Upsert must not be called once Len equals
// the capacity the table was created with.
type groupTable[K comparable] struct {
	slots  map[K]int
	counts []uint32
}

func newGroupTable[K comparable](capacity uint32) groupTable[K] {
	return groupTable[K]{
		slots:  make(map[K]int, capacity),
		counts: make([]uint32, 0, capacity),
	}
}

// Len returns the number of tracked groups.
func (t *groupTable[K]) Len() int { return len(t.counts) }

// Upsert returns the count slot for group, inserting a zero slot when the
// group is new.
func (t *groupTable[K]) Upsert(group K) *uint32 {
	if i, ok := t.slots[group]; ok {
		return &t.counts[i]
	}
	t.counts = append(t.counts, 0)
	t.slots[group] = len(t.counts) - 1
	return &t.counts[len(t.counts)-1]
}

// Lookup returns the count slot for group if it is tracked.
func (t *groupTable[K]) Lookup(group K) (*uint32, bool) {
	i, ok := t.slots[group]
	if !ok {
		return nil, false
	}
	return &t.counts[i], true
}
