package converters

import (
	"cmp"
	"math"
	"sort"

	"github.com/katalvlaran/wudgraph/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ToGonum copies g into a new weighted undirected gonum graph.
// Node i of the result is slot i of g; labels[i] is its value.
// Missing edges report +Inf weight, the self weight is 0.
//
// Complexity: O(V + E).
func ToGonum[V any](g *core.Graph[V]) (*simple.WeightedUndirectedGraph, []V) {
	view := g.View()
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := range view.Vertices {
		out.AddNode(simple.Node(int64(i)))
	}
	for i, entries := range view.Adjacency {
		for _, e := range entries {
			if i < e.Neighbor {
				out.SetWeightedEdge(out.NewWeightedEdge(
					simple.Node(int64(i)), simple.Node(int64(e.Neighbor)), float64(e.Weight)))
			}
		}
	}

	return out, view.Vertices
}

// FromGonum builds a core.Graph from src, ordering vertices with cmp.Compare.
func FromGonum[V cmp.Ordered](src graph.WeightedUndirected, label func(id int64) V) (*core.Graph[V], error) {
	return FromGonumFunc(src, label, cmp.Compare[V])
}

// FromGonumFunc builds a core.Graph from src using compare for vertex identity.
//
// Nodes are added by ascending ID; edges by ascending (lower ID, higher ID).
// Two nodes mapping to the same label collapse into one vertex; an edge
// between them is dropped as a self-loop.
//
// Errors: whatever AddEdge reports; with a consistent label function none is expected.
func FromGonumFunc[V any](src graph.WeightedUndirected, label func(id int64) V, compare func(a, b V) int) (*core.Graph[V], error) {
	nodes := sortedIDs(graph.NodesOf(src.Nodes()))
	out := core.NewGraphFunc(compare, core.WithCapacity(len(nodes)))
	for _, id := range nodes {
		out.AddVertex(label(id))
	}
	for _, uid := range nodes {
		for _, vid := range sortedIDs(graph.NodesOf(src.From(uid))) {
			if uid >= vid {
				continue
			}
			w, ok := src.Weight(uid, vid)
			if !ok {
				continue
			}
			if err := out.AddEdge(label(uid), label(vid), int64(math.Round(w))); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func sortedIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
