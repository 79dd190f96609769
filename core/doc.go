// Package core provides a generic, weighted, undirected in-memory Graph with
// index-addressed vertex storage and weight-sorted adjacency sequences.
//
// The Graph G = (V,E) is built from two index-aligned halves:
//
//   - vertex store: a dense, ordered collection of unique vertex values.
//     Slot i holds the i-th vertex; capacity grows by a fixed percentage
//     (default 25%) plus one slot when full.
//   - adjacency table: for every slot i, a singly-linked sequence of
//     (neighbor index, weight) entries kept in ascending weight order.
//     Entries of equal weight keep their insertion order.
//
// Every undirected edge {u,v} is stored twice: (v,w) in the sequence of u and
// (u,w) in the sequence of v. All mutating methods keep both halves of that
// mirror pair in sync.
//
// Vertex values may be of any type. Equality and ordering are supplied by one
// comparator (cmp.Compare for ordered types via NewGraph, or a caller-provided
// function via NewGraphFunc). Two values a and b denote the same vertex iff
// compare(a, b) == 0; this rule is used for de-duplication, lookups and
// self-loop rejection alike.
//
// Indices are positions, not identities: RemoveVertex shifts every higher slot
// down by one and renumbers all adjacency entries referring to those slots.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                     // O(V), idempotent
//	RemoveVertex(v V)                  // O(V+E), no-op when absent
//	HasVertex(v V) bool                // O(V)
//	Vertices() []V                     // O(V), independent copy
//
//	// Edge lifecycle
//	AddEdge(v1, v2 V, w int64) error   // O(V+deg), replaces an existing edge
//	RemoveEdge(v1, v2 V) error         // O(V+deg)
//	RemoveEdges(v V) error             // O(V+Σdeg)
//
//	// Query
//	HasEdge(v1, v2 V) (bool, error)
//	EdgeWeight(v1, v2 V) (int64, bool, error) // ok=false means no such edge
//	Neighbors(v V) ([]V, error)               // ascending by edge weight
//	Edges() []Edge[V]                         // canonical direction only
//	View() View[V]                            // index-level snapshot
//
// Errors:
//
//	ErrUnknownVertex - an operation referenced a vertex that is not stored.
//
// A failing call never mutates the graph.
//
// Concurrency: Graph is not safe for concurrent use. Callers sharing a Graph
// across goroutines must serialize every public call, including the whole of
// RemoveVertex and any algorithm run reading the graph.
package core
