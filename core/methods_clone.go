// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones keep slot order and adjacency order of the source.

package core

// CloneEmpty returns a new Graph with the same comparator, growth policy and
// vertices (same slots), but no edges.
// Complexity: O(V).
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	clone := NewGraphFunc(g.compare,
		WithCapacity(g.vertices.capacity()),
		WithGrowthPercent(g.growth),
	)
	// Source values are already unique; copy slots without the duplicate scan.
	copy(clone.vertices.slots, g.vertices.slots[:g.vertices.size])
	clone.vertices.size = g.vertices.size
	for i := 0; i < g.vertices.size; i++ {
		clone.adjacency.appendOwner()
	}

	return clone
}

// Clone returns a deep copy: vertices, edges and the exact adjacency order.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	clone := g.CloneEmpty()
	for i := 0; i < g.vertices.size; i++ {
		list := clone.adjacency.lists[i]
		for _, e := range g.adjacency.entriesOf(i) {
			entry := e
			list.Add(&entry)
		}
	}

	return clone
}
