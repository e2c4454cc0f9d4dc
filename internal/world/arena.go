package world

// ThingID encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. The generation increments when the slot is
// freed, so an ID held by an actor across a turn boundary goes stale instead
// of silently resolving to whatever thing reuses the slot.
type ThingID uint64

func newThingID(index uint32, generation uint32) ThingID {
	return ThingID(uint64(generation)<<32 | uint64(index))
}

func (id ThingID) index() uint32      { return uint32(id) }
func (id ThingID) generation() uint32 { return uint32(id >> 32) }

// IsZero reports whether the ID is the zero value (never a live thing).
func (id ThingID) IsZero() bool { return id == 0 }

// arena owns every Thing in a world and hands out stable generational IDs.
// Slot 0 is burned at construction so that the zero ThingID never resolves.
type arena struct {
	slots       []*Thing
	generations []uint32
	freeList    []uint32
}

func newArena() *arena {
	return &arena{
		slots:       make([]*Thing, 1, 64),
		generations: make([]uint32, 1, 64),
	}
}

// insert stores the thing in a free slot and returns its ID.
func (a *arena) insert(t *Thing) ThingID {
	var idx uint32
	if n := len(a.freeList); n > 0 {
		idx = a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, nil)
		a.generations = append(a.generations, 0)
	}
	a.slots[idx] = t
	return newThingID(idx, a.generations[idx])
}

// get resolves an ID to its thing, or nil if the ID is stale or unknown.
func (a *arena) get(id ThingID) *Thing {
	idx := id.index()
	if idx == 0 || int(idx) >= len(a.slots) {
		return nil
	}
	if a.generations[idx] != id.generation() {
		return nil
	}
	return a.slots[idx]
}

// remove frees the slot, bumping its generation to invalidate stale IDs.
func (a *arena) remove(id ThingID) {
	idx := id.index()
	if idx == 0 || int(idx) >= len(a.slots) {
		return
	}
	if a.generations[idx] != id.generation() {
		return // already removed
	}
	a.slots[idx] = nil
	a.generations[idx]++
	a.freeList = append(a.freeList, idx)
}
