// File: vertex_store.go
// Role: Dense, ordered, de-duplicated storage of vertex values.
// Determinism:
//   - Slot order is insertion order; removal compacts without reordering.

package core

// vertexStore keeps vertex values in slots 0..size-1 of a manually grown buffer.
type vertexStore[V any] struct {
	slots   []V // len(slots) is the capacity
	size    int
	percent int
	compare func(a, b V) int
}

func newVertexStore[V any](capacity, percent int, compare func(a, b V) int) *vertexStore[V] {
	return &vertexStore[V]{
		slots:   make([]V, capacity),
		percent: percent,
		compare: compare,
	}
}

// indexOf scans occupied slots for a value equal to v. O(size).
func (s *vertexStore[V]) indexOf(v V) int {
	for i := 0; i < s.size; i++ {
		if s.compare(s.slots[i], v) == 0 {
			return i
		}
	}

	return NotFound
}

// add appends v unless an equal value is already stored.
// Returns the slot of v and whether a new slot was occupied.
func (s *vertexStore[V]) add(v V) (int, bool) {
	if i := s.indexOf(v); i != NotFound {
		return i, false
	}
	if s.size == len(s.slots) {
		s.grow()
	}
	s.slots[s.size] = v
	s.size++

	return s.size - 1, true
}

// grow reallocates to old + old*percent/100 + 1 slots, preserving order.
func (s *vertexStore[V]) grow() {
	n := len(s.slots)
	next := make([]V, n+n*s.percent/100+1)
	copy(next, s.slots[:s.size])
	s.slots = next
}

// at returns the value in slot i; i must be in [0, size).
func (s *vertexStore[V]) at(i int) V {
	return s.slots[i]
}

// removeAt shifts every slot above i down by one and clears the vacated tail slot.
func (s *vertexStore[V]) removeAt(i int) {
	copy(s.slots[i:s.size-1], s.slots[i+1:s.size])
	s.size--
	var zero V
	s.slots[s.size] = zero
}

// snapshot returns an independent copy of the occupied slots.
func (s *vertexStore[V]) snapshot() []V {
	out := make([]V, s.size)
	copy(out, s.slots[:s.size])

	return out
}

func (s *vertexStore[V]) clear() {
	var zero V
	for i := 0; i < s.size; i++ {
		s.slots[i] = zero
	}
	s.size = 0
}

func (s *vertexStore[V]) capacity() int { return len(s.slots) }
