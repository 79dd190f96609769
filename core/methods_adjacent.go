// File: methods_adjacent.go
// Role: Neighborhood queries and index-level snapshots.

package core

// Neighbors returns the values adjacent to v, ordered by ascending edge weight
// (ties in insertion order).
// Returns ErrUnknownVertex when v is absent.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	i, err := g.lookup(v)
	if err != nil {
		return nil, err
	}
	entries := g.adjacency.entriesOf(i)
	out := make([]V, len(entries))
	for k, e := range entries {
		out[k] = g.vertices.at(e.Neighbor)
	}

	return out, nil
}

// Degree returns the number of edges incident to v.
func (g *Graph[V]) Degree(v V) (int, error) {
	i, err := g.lookup(v)
	if err != nil {
		return 0, err
	}

	return g.adjacency.degree(i), nil
}

// View returns an index-level snapshot: vertex values by slot and, per slot,
// the adjacency entries in stored order. Complexity: O(V + E).
func (g *Graph[V]) View() View[V] {
	adjacency := make([][]Entry, g.vertices.size)
	for i := range adjacency {
		adjacency[i] = g.adjacency.entriesOf(i)
	}

	return View[V]{Vertices: g.vertices.snapshot(), Adjacency: adjacency}
}
