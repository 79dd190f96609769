// File: adjacency_list.go
// Role: Per-slot adjacency sequences kept in ascending weight order.
// Determinism:
//   - Equal-weight entries keep their insertion order (stable insert).
//   - Iteration order is the stored order; nothing here is hashed.
// Invariants (maintained by the Graph methods, not by this type):
//   - Symmetry: entry (j,w) in sequence i  <=>  entry (i,w) in sequence j.
//   - Every Neighbor index is < the number of occupied vertex slots.

package core

import (
	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// adjacencyTable holds one singly-linked list of *Entry per vertex slot.
type adjacencyTable struct {
	lists []*singlylinkedlist.List
}

func newAdjacencyTable(capacity int) *adjacencyTable {
	return &adjacencyTable{lists: make([]*singlylinkedlist.List, 0, capacity)}
}

// appendOwner opens an empty sequence for a newly occupied slot.
func (t *adjacencyTable) appendOwner() {
	t.lists = append(t.lists, singlylinkedlist.New())
}

// insert places (neighbor, weight) before the first entry of strictly greater
// weight, so ties stay in insertion order. O(degree).
func (t *adjacencyTable) insert(owner, neighbor int, weight int64) {
	list := t.lists[owner]
	// 1. First position holding a strictly heavier entry; equal weights are skipped.
	at, _ := list.Find(func(_ int, value interface{}) bool {
		return value.(*Entry).Weight > weight
	})
	// 2. No heavier entry: append.
	if at < 0 {
		at = list.Size()
	}
	// 3. Insert at a position; Insert(Size(), ...) appends.
	list.Insert(at, &Entry{Neighbor: neighbor, Weight: weight})
}

// find returns the position and entry for neighbor in owner's sequence, or (-1, nil).
func (t *adjacencyTable) find(owner, neighbor int) (int, *Entry) {
	at, value := t.lists[owner].Find(func(_ int, value interface{}) bool {
		return value.(*Entry).Neighbor == neighbor
	})
	if at < 0 {
		return at, nil
	}

	return at, value.(*Entry)
}

// removeEntry drops the entry for neighbor from owner's sequence; no-op if absent.
func (t *adjacencyTable) removeEntry(owner, neighbor int) {
	if at, _ := t.find(owner, neighbor); at >= 0 {
		t.lists[owner].Remove(at)
	}
}

func (t *adjacencyTable) hasEntry(owner, neighbor int) bool {
	at, _ := t.find(owner, neighbor)

	return at >= 0
}

// weightOf returns the weight stored for neighbor in owner's sequence.
func (t *adjacencyTable) weightOf(owner, neighbor int) (int64, bool) {
	_, e := t.find(owner, neighbor)
	if e == nil {
		return 0, false
	}

	return e.Weight, true
}

// entriesOf copies owner's sequence in stored (ascending weight) order.
func (t *adjacencyTable) entriesOf(owner int) []Entry {
	list := t.lists[owner]
	out := make([]Entry, 0, list.Size())
	it := list.Iterator()
	for it.Next() {
		// Copy by value so callers cannot reach stored entries.
		out = append(out, *it.Value().(*Entry))
	}

	return out
}

func (t *adjacencyTable) degree(owner int) int {
	return t.lists[owner].Size()
}

// clearOwner drops the whole sequence of owner.
func (t *adjacencyTable) clearOwner(owner int) {
	t.lists[owner].Clear()
}

// removeOwner closes the gap left by a removed slot.
func (t *adjacencyTable) removeOwner(owner int) {
	// Shift higher slots down, then release the duplicated tail pointer.
	copy(t.lists[owner:], t.lists[owner+1:])
	t.lists[len(t.lists)-1] = nil
	t.lists = t.lists[:len(t.lists)-1]
}

// renumberAbove decrements every neighbor index greater than removed.
// Precondition: no entry still refers to removed itself.
func (t *adjacencyTable) renumberAbove(removed int) {
	for _, list := range t.lists {
		// Entries are pointers, so decrementing in place keeps list order intact.
		list.Each(func(_ int, value interface{}) {
			if e := value.(*Entry); e.Neighbor > removed {
				e.Neighbor--
			}
		})
	}
}

func (t *adjacencyTable) clear() {
	for i := range t.lists {
		t.lists[i] = nil
	}
	t.lists = t.lists[:0]
}
