package converters_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/wudgraph/converters"
	"github.com/katalvlaran/wudgraph/core"
	"github.com/katalvlaran/wudgraph/mst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

func buildRandom(r *rand.Rand, n int, p float64) *core.Graph[string] {
	g := core.NewGraph[string]()
	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("N%02d", i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				_ = g.AddEdge(fmt.Sprintf("N%02d", i), fmt.Sprintf("N%02d", j), int64(1+r.Intn(50)))
			}
		}
	}

	return g
}

// TestToGonum verifies node and edge mapping.
func TestToGonum(t *testing.T) {
	g := core.NewGraphFrom([]string{"A", "B", "C"})
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("C", "B", 2))

	gg, labels := converters.ToGonum(g)
	assert.Equal(t, []string{"A", "B", "C"}, labels)
	assert.Equal(t, 3, gg.Nodes().Len())
	assert.Equal(t, 2, gg.WeightedEdges().Len())

	w, ok := gg.Weight(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
	_, ok = gg.Weight(0, 2)
	assert.False(t, ok)
}

// TestRoundTrip verifies that export followed by import keeps vertices, edges and weights.
func TestRoundTrip(t *testing.T) {
	g := buildRandom(rand.New(rand.NewSource(7)), 12, 0.3)
	gg, labels := converters.ToGonum(g)

	back, err := converters.FromGonum(gg, func(id int64) string { return labels[id] })
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.ElementsMatch(t, g.Edges(), back.Edges())
}

// TestFromGonumFunc verifies rounding and label collapsing.
func TestFromGonumFunc(t *testing.T) {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(0), simple.Node(1), 2.6))
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(1), simple.Node(2), 1))
	src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(2), simple.Node(3), 5))

	// Nodes 2 and 3 share a label, so their edge would be a self-loop.
	group := func(id int64) int { return map[int64]int{0: 10, 1: 20, 2: 30, 3: 30}[id] }
	g, err := converters.FromGonumFunc(src, group, func(a, b int) int { return a - b })
	require.NoError(t, err)
	assert.Equal(t, "Vertices: {10, 20, 30}, Edges: {(10, 20, 3), (20, 30, 1)}", g.String())
}

// TestKruskal_MatchesGonum cross-checks total MST weight and forest shape against gonum.
func TestKruskal_MatchesGonum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		g := buildRandom(r, 10+round, 0.15)

		tree, err := mst.Kruskal(g)
		require.NoError(t, err)

		gg, _ := converters.ToGonum(g)
		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		want := path.Kruskal(dst, gg)
		assert.Equal(t, int64(want), mst.TotalWeight(tree), "round %d", round)

		treeG, _ := converters.ToGonum(tree)
		assert.Len(t, topo.ConnectedComponents(treeG), len(topo.ConnectedComponents(gg)), "round %d", round)
		assert.Equal(t, dst.WeightedEdges().Len(), tree.EdgeCount(), "round %d", round)
	}
}
