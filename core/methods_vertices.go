// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns values in slot order (insertion order, compacted on removal).

package core

// AddVertex inserts v if no equal value is stored (idempotent).
// Complexity: O(V) for the duplicate scan; amortized O(1) storage growth.
func (g *Graph[V]) AddVertex(v V) {
	if _, added := g.vertices.add(v); added {
		g.adjacency.appendOwner()
	}
}

// RemoveVertex deletes v together with every incident edge. Absent v is a no-op.
//
// Steps:
//  1. Drop the mirror entry on each neighbor, then v's own sequence.
//  2. Compact both vertex and adjacency slots above v.
//  3. Renumber every surviving entry whose neighbor index was above v's slot.
//
// Complexity: O(V + E).
func (g *Graph[V]) RemoveVertex(v V) {
	i := g.vertices.indexOf(v)
	if i == NotFound {
		return
	}
	// 1. No entry may point at slot i once it is gone.
	g.detach(i)
	// 2. Both halves compact together to stay index-aligned.
	g.vertices.removeAt(i)
	g.adjacency.removeOwner(i)
	// 3. Surviving references above i shift down by one.
	g.adjacency.renumberAbove(i)
}

// HasVertex reports whether a value equal to v is stored.
func (g *Graph[V]) HasVertex(v V) bool {
	return g.vertices.indexOf(v) != NotFound
}

// IndexOf returns the current slot of v, or NotFound.
// Slots shift when lower vertices are removed.
func (g *Graph[V]) IndexOf(v V) int {
	return g.vertices.indexOf(v)
}

// VertexCount returns the number of stored vertices.
func (g *Graph[V]) VertexCount() int {
	return g.vertices.size
}

// IsEmpty reports whether the graph holds no vertices.
func (g *Graph[V]) IsEmpty() bool {
	return g.vertices.size == 0
}

// Capacity returns the number of allocated vertex slots.
func (g *Graph[V]) Capacity() int {
	return g.vertices.capacity()
}

// Vertices returns a copy of all vertex values in slot order.
// Mutating the returned slice never affects the graph.
func (g *Graph[V]) Vertices() []V {
	return g.vertices.snapshot()
}

// Clear removes all vertices and edges. Capacity is retained.
func (g *Graph[V]) Clear() {
	g.vertices.clear()
	g.adjacency.clear()
}

// lookup resolves v to its slot or fails with ErrUnknownVertex.
func (g *Graph[V]) lookup(v V) (int, error) {
	i := g.vertices.indexOf(v)
	if i == NotFound {
		return NotFound, unknownVertex(v)
	}

	return i, nil
}

// lookupPair resolves both endpoints before any caller mutates state.
func (g *Graph[V]) lookupPair(v1, v2 V) (int, int, error) {
	i1, err := g.lookup(v1)
	if err != nil {
		return NotFound, NotFound, err
	}
	i2, err := g.lookup(v2)
	if err != nil {
		return NotFound, NotFound, err
	}

	return i1, i2, nil
}
