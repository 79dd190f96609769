package mst

import (
	"sort"

	"github.com/katalvlaran/wudgraph/core"
)

// candidate is a harvested edge addressed by input slots.
type candidate struct {
	from, to int
	weight   int64
}

// Kruskal returns a new graph holding every vertex of g and the edges of a
// minimum spanning tree, or of a minimum spanning forest when g is disconnected.
// g is not modified.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrDisconnected : WithRequireConnected was set and g has more than one component.
//
// Steps:
//  1. Harvest one candidate per undirected edge (owner value <= neighbor value).
//  2. Stable-sort candidates by weight.
//  3. label[i] = i for every slot; result = vertices of g, no edges.
//  4. Pop the lightest candidate (a,b,w); if label[a] != label[b], add it to the
//     result and relabel every slot of label[b] to label[a].
//  5. Stop at |V|-1 included edges or when candidates run out.
//  6. With RequireConnected, a short result is ErrDisconnected.
//
// Complexity: O(E log E + V·min(E, V)) plus O(V) per edge insert into the result.
func Kruskal[V any](g *core.Graph[V], opts ...Option[V]) (*core.Graph[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	view := g.View()
	n := len(view.Vertices)

	// 1-2. Harvest and sort; SliceStable keeps harvest order for ties.
	cands := harvest(view, g.Compare())
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].weight < cands[j].weight
	})

	// 3. One label per slot, empty result over the same slots.
	sets := newLabels(n)
	tree := g.CloneEmpty()
	included := 0
	tr := tracing[V]{tracer: o.Tracer, vertices: view.Vertices}
	tr.start(cands, sets, tree)

	// 4-5. Consume candidates lightest first.
	for iteration := 1; included < n-1 && len(cands) > 0; iteration++ {
		// 4a. Pop the lightest remaining candidate.
		c := cands[0]
		cands = cands[1:]

		// 4b. Same label means same component: the edge would close a cycle.
		a, b := sets.of(c.from), sets.of(c.to)
		accepted := a != b
		if accepted {
			// 4c. Add the edge to the result and fold b's component into a's.
			if err := tree.AddEdge(view.Vertices[c.from], view.Vertices[c.to], c.weight); err != nil {
				return nil, err
			}
			sets.merge(a, b)
			included++
		}

		// 4d. Report the decision (no-op without a tracer).
		tr.step(iteration, c, a, b, accepted, cands, sets, included, tree)
	}

	// 6. Fewer than |V|-1 edges: g has more than one component.
	if o.RequireConnected && included < n-1 {
		return nil, ErrDisconnected
	}

	return tree, nil
}

// harvest lists each mirrored pair once, by slot order then adjacency order.
func harvest[V any](view core.View[V], compare func(a, b V) int) []candidate {
	var out []candidate
	for i, entries := range view.Adjacency {
		for _, e := range entries {
			// Each edge is stored twice; keep the copy owned by the lower value.
			if compare(view.Vertices[i], view.Vertices[e.Neighbor]) <= 0 {
				out = append(out, candidate{from: i, to: e.Neighbor, weight: e.Weight})
			}
		}
	}

	return out
}

// TotalWeight sums the weights of all edges of g.
func TotalWeight[V any](g *core.Graph[V]) int64 {
	var total int64
	for _, e := range g.Edges() {
		total += e.Weight
	}

	return total
}

// tracing builds snapshots only when a tracer is attached.
type tracing[V any] struct {
	tracer   Tracer[V]
	vertices []V
}

func (t tracing[V]) start(cands []candidate, sets labels, tree *core.Graph[V]) {
	if t.tracer == nil {
		return
	}
	t.tracer.Trace(Snapshot[V]{
		Phase:     PhaseInit,
		Remaining: t.resolveAll(cands),
		Labels:    sets.clone(),
		Tree:      tree.Clone(),
	})
}

func (t tracing[V]) step(iteration int, c candidate, fromLabel, toLabel int, accepted bool,
	cands []candidate, sets labels, included int, tree *core.Graph[V]) {
	if t.tracer == nil {
		return
	}
	t.tracer.Trace(Snapshot[V]{
		Phase:      PhaseIteration,
		Iteration:  iteration,
		Considered: t.resolve(c),
		FromLabel:  fromLabel,
		ToLabel:    toLabel,
		Accepted:   accepted,
		Remaining:  t.resolveAll(cands),
		Labels:     sets.clone(),
		Included:   included,
		Tree:       tree.Clone(),
	})
}

func (t tracing[V]) resolve(c candidate) core.Edge[V] {
	return core.Edge[V]{From: t.vertices[c.from], To: t.vertices[c.to], Weight: c.weight}
}

func (t tracing[V]) resolveAll(cands []candidate) []core.Edge[V] {
	out := make([]core.Edge[V], len(cands))
	for i, c := range cands {
		out[i] = t.resolve(c)
	}

	return out
}
