// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdges/HasEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() walks slots in order, then each sequence in ascending weight order.
// Failure policy:
//   - Both endpoints are resolved before anything is touched, so an
//     ErrUnknownVertex result leaves the graph unchanged.

package core

// AddEdge connects v1 and v2 with weight, replacing any existing edge between them.
//
// Steps:
//  1. If v1 and v2 are equal under the comparator, return (self-loops are never stored).
//  2. Resolve both endpoints (ErrUnknownVertex).
//  3. Drop both mirror entries of an existing edge.
//  4. Insert (idx2,w) into idx1's sequence and (idx1,w) into idx2's sequence.
//
// Complexity: O(V + deg(v1) + deg(v2)).
func (g *Graph[V]) AddEdge(v1, v2 V, weight int64) error {
	// 1. Self-loop under the comparator: nothing to store.
	if g.compare(v1, v2) == 0 {
		return nil
	}
	// 2. Resolve both endpoints before touching any list.
	i1, i2, err := g.lookupPair(v1, v2)
	if err != nil {
		return err
	}
	// 3. Replacing: drop the old pair so the new weight is re-sorted.
	if g.adjacency.hasEntry(i1, i2) {
		g.adjacency.removeEntry(i1, i2)
		g.adjacency.removeEntry(i2, i1)
	}
	// 4. Mirror insert keeps the table symmetric.
	g.adjacency.insert(i1, i2, weight)
	g.adjacency.insert(i2, i1, weight)

	return nil
}

// RemoveEdge deletes the edge between v1 and v2, if any.
// Returns ErrUnknownVertex when either endpoint is absent.
func (g *Graph[V]) RemoveEdge(v1, v2 V) error {
	i1, i2, err := g.lookupPair(v1, v2)
	if err != nil {
		return err
	}
	g.adjacency.removeEntry(i1, i2)
	g.adjacency.removeEntry(i2, i1)

	return nil
}

// RemoveEdges deletes every edge incident to v but keeps v itself.
func (g *Graph[V]) RemoveEdges(v V) error {
	i, err := g.lookup(v)
	if err != nil {
		return err
	}
	g.detach(i)

	return nil
}

// detach removes the mirror of each entry of slot i, then clears slot i's sequence.
func (g *Graph[V]) detach(i int) {
	for _, e := range g.adjacency.entriesOf(i) {
		g.adjacency.removeEntry(e.Neighbor, i)
	}
	g.adjacency.clearOwner(i)
}

// HasEdge reports whether v1 and v2 are adjacent.
func (g *Graph[V]) HasEdge(v1, v2 V) (bool, error) {
	i1, i2, err := g.lookupPair(v1, v2)
	if err != nil {
		return false, err
	}

	return g.adjacency.hasEntry(i1, i2), nil
}

// EdgeWeight returns the weight of the edge between v1 and v2.
// ok is false when both vertices exist but are not adjacent; that is not an error.
func (g *Graph[V]) EdgeWeight(v1, v2 V) (weight int64, ok bool, err error) {
	i1, i2, err := g.lookupPair(v1, v2)
	if err != nil {
		return 0, false, err
	}
	weight, ok = g.adjacency.weightOf(i1, i2)

	return weight, ok, nil
}

// Edges returns each undirected edge once, in canonical direction
// (compare(From, To) <= 0), ordered by slot and then by adjacency order.
// Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge[V] {
	var out []Edge[V]
	g.eachCanonical(func(from, to V, weight int64) {
		out = append(out, Edge[V]{From: from, To: to, Weight: weight})
	})

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph[V]) EdgeCount() int {
	total := 0
	for i := 0; i < g.vertices.size; i++ {
		total += g.adjacency.degree(i)
	}

	return total / 2
}

// eachCanonical visits every stored entry whose owner value orders at or
// before its neighbor value; that picks exactly one entry of each mirror pair.
func (g *Graph[V]) eachCanonical(visit func(from, to V, weight int64)) {
	for i := 0; i < g.vertices.size; i++ {
		from := g.vertices.at(i)
		for _, e := range g.adjacency.entriesOf(i) {
			to := g.vertices.at(e.Neighbor)
			if g.compare(from, to) <= 0 {
				visit(from, to, e.Weight)
			}
		}
	}
}
