// Package mst computes a minimum spanning tree (or forest) of a weighted,
// undirected *core.Graph using Kruskal's algorithm.
//
// What & Why
//
//   - Given a weighted, undirected graph G = (V, E), a minimum spanning tree is
//     a subset T ⊆ E connecting all vertices, without cycles, whose total weight
//     is minimal. A disconnected graph has a minimum spanning forest instead:
//     one tree per connected component.
//
// Algorithm
//
//  1. Harvest candidates: for every slot i and entry (j, w) of i keep the entry
//     only if value(i) <= value(j). Each mirrored pair yields exactly one candidate.
//  2. Stable-sort candidates by weight, so ties keep harvest order.
//  3. Give every slot its own label: label[i] = i.
//  4. Start the result with the same vertices and no edges.
//  5. Take candidates lightest first. When label[a] != label[b] the edge joins
//     the result and every slot labelled label[b] is relabelled label[a].
//  6. Stop once |V|-1 edges are included or the candidates run out.
//
// Relabelling touches every slot on each merge (no path compression, no union
// by rank), so a run costs O(E log E + V·min(E, V)). The relabel order fixes
// which of several equal-weight trees is returned.
//
// Disconnected input
//
// By default Kruskal returns the minimum spanning forest. WithRequireConnected
// turns that case into ErrDisconnected instead.
//
// Tracing
//
// WithTracer attaches an observer receiving a Snapshot after initialization and
// after every iteration. Tracers never influence the result. LogTracer writes
// snapshots to a logrus logger.
//
// Errors
//
//	ErrNilGraph      - the input graph is nil.
//	ErrDisconnected  - WithRequireConnected was given and the input has more than one component.
package mst
