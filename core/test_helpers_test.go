// Package core_test contains shared fixtures and invariant checks for core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/wudgraph/core"
	"github.com/stretchr/testify/require"
)

// Common vertex values used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
	Weight5 = 5
	Weight6 = 6
)

// buildSquare returns the A..D fixture:
//
//	A—B(1), B—C(2), C—D(3), A—D(4), A—C(5).
func buildSquare(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraphFrom([]string{VertexA, VertexB, VertexC, VertexD})
	require.NoError(t, g.AddEdge(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdge(VertexB, VertexC, Weight2))
	require.NoError(t, g.AddEdge(VertexC, VertexD, Weight3))
	require.NoError(t, g.AddEdge(VertexA, VertexD, Weight4))
	require.NoError(t, g.AddEdge(VertexA, VertexC, Weight5))

	return g
}

// requireConsistent checks the storage invariants through View():
//   - every neighbor index addresses an occupied slot and is not the owner;
//   - every entry has a mirror with the same weight;
//   - each sequence is sorted by non-decreasing weight.
func requireConsistent[V any](t *testing.T, g *core.Graph[V]) {
	t.Helper()
	view := g.View()
	n := len(view.Vertices)
	require.Len(t, view.Adjacency, n)
	for i, entries := range view.Adjacency {
		for k, e := range entries {
			require.GreaterOrEqual(t, e.Neighbor, 0)
			require.Less(t, e.Neighbor, n, "slot %d refers past the last vertex", i)
			require.NotEqual(t, i, e.Neighbor, "slot %d stores a self-loop", i)
			if k > 0 {
				require.LessOrEqual(t, entries[k-1].Weight, e.Weight, "slot %d is not weight-sorted", i)
			}
			mirrored := false
			for _, m := range view.Adjacency[e.Neighbor] {
				if m.Neighbor == i {
					require.Equal(t, e.Weight, m.Weight, "mirror weight differs for %d-%d", i, e.Neighbor)
					mirrored = true
				}
			}
			require.True(t, mirrored, "entry %d->%d has no mirror", i, e.Neighbor)
		}
	}
}
