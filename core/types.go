// Package core defines the generic Graph type, its options, snapshot types and
// sentinel errors.
package core

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrUnknownVertex indicates an operation referenced a vertex that is not stored in the Graph.
var ErrUnknownVertex = errors.New("core: unknown vertex")

// unknownVertex wraps ErrUnknownVertex with the offending value.
func unknownVertex(v any) error {
	return fmt.Errorf("%w: %v", ErrUnknownVertex, v)
}

const (
	// DefaultCapacity is the number of vertex slots allocated by NewGraph.
	DefaultCapacity = 100

	// DefaultGrowthPercent is the percentage of the current capacity added on growth.
	DefaultGrowthPercent = 25

	// NotFound is returned by IndexOf for absent vertices.
	NotFound = -1
)

// Entry is one adjacency record: the neighbor's slot index and the edge weight.
type Entry struct {
	// Neighbor is the slot index of the adjacent vertex.
	Neighbor int

	// Weight is the weight of the connecting edge.
	Weight int64
}

// Edge is a resolved undirected edge in canonical direction (From <= To).
type Edge[V any] struct {
	From   V
	To     V
	Weight int64
}

// View is an index-level snapshot of a Graph.
//
// Vertices[i] is the value stored in slot i; Adjacency[i] lists the entries of
// slot i in ascending weight order. A View shares nothing with its Graph.
type View[V any] struct {
	Vertices  []V
	Adjacency [][]Entry
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	capacity      int
	growthPercent int
}

// WithCapacity sets the initial number of vertex slots. Zero is allowed: the
// first AddVertex grows the store to 1 slot. Negative values keep DefaultCapacity.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n >= 0 {
			c.capacity = n
		}
	}
}

// WithGrowthPercent sets how much capacity is added (in percent of the current
// capacity, plus one slot) when the vertex store is full. Negative values are ignored.
func WithGrowthPercent(p int) GraphOption {
	return func(c *graphConfig) {
		if p >= 0 {
			c.growthPercent = p
		}
	}
}

// Graph is a weighted, undirected graph over vertex values of type V.
//
// vertices and adjacency are index-aligned: slot i of one always describes the
// same vertex as slot i of the other.
type Graph[V any] struct {
	compare   func(a, b V) int
	growth    int
	vertices  *vertexStore[V]
	adjacency *adjacencyTable
}

// NewGraph creates an empty Graph ordering its vertices with cmp.Compare.
// Complexity: O(capacity).
func NewGraph[V cmp.Ordered](opts ...GraphOption) *Graph[V] {
	return NewGraphFunc(cmp.Compare[V], opts...)
}

// NewGraphFunc creates an empty Graph whose vertex equality and order are both
// defined by compare. compare must describe a total order.
func NewGraphFunc[V any](compare func(a, b V) int, opts ...GraphOption) *Graph[V] {
	c := graphConfig{capacity: DefaultCapacity, growthPercent: DefaultGrowthPercent}
	for _, opt := range opts {
		opt(&c)
	}

	return &Graph[V]{
		compare:   compare,
		growth:    c.growthPercent,
		vertices:  newVertexStore(c.capacity, c.growthPercent, compare),
		adjacency: newAdjacencyTable(c.capacity),
	}
}

// NewGraphFrom creates a Graph pre-populated with vertices, in order.
// The initial capacity is len(vertices) (DefaultCapacity for an empty slice)
// unless overridden by WithCapacity.
// Duplicate values are collapsed onto their first occurrence.
func NewGraphFrom[V cmp.Ordered](vertices []V, opts ...GraphOption) *Graph[V] {
	all := make([]GraphOption, 0, len(opts)+1)
	if len(vertices) > 0 {
		all = append(all, WithCapacity(len(vertices)))
	}
	all = append(all, opts...)
	g := NewGraph[V](all...)
	for _, v := range vertices {
		g.AddVertex(v)
	}

	return g
}

// Compare returns the comparator defining vertex equality and order.
func (g *Graph[V]) Compare() func(a, b V) int {
	return g.compare
}
