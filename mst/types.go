// Package mst defines options, trace types and sentinel errors for MST computation.
package mst

import (
	"errors"

	"github.com/katalvlaran/wudgraph/core"
)

// ErrNilGraph indicates that no input graph was supplied.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrDisconnected indicates that the graph has more than one connected
// component while a spanning tree (not a forest) was required.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Phase tells which step of the run produced a Snapshot.
type Phase int

const (
	// PhaseInit is reported once, after candidates, labels and the empty result are prepared.
	PhaseInit Phase = iota
	// PhaseIteration is reported after each candidate has been considered.
	PhaseIteration
)

// String returns a short phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseIteration:
		return "iteration"
	default:
		return "unknown"
	}
}

// Snapshot is the state of a run handed to a Tracer. All slices and the Tree
// are copies owned by the receiver.
type Snapshot[V any] struct {
	Phase Phase

	// Iteration counts considered candidates; 0 for PhaseInit.
	Iteration int

	// Considered is the candidate taken in this iteration (zero for PhaseInit),
	// with the labels its endpoints had before any merge.
	Considered         core.Edge[V]
	FromLabel, ToLabel int
	Accepted           bool

	// Remaining lists the candidates not yet considered, lightest first.
	Remaining []core.Edge[V]

	// Labels holds the component label of every slot.
	Labels []int

	// Included counts edges added to Tree so far.
	Included int

	// Tree is a clone of the partial result.
	Tree *core.Graph[V]
}

// Tracer observes a run.
type Tracer[V any] interface {
	Trace(s Snapshot[V])
}

// TracerFunc adapts a plain function to Tracer.
type TracerFunc[V any] func(s Snapshot[V])

// Trace calls f(s).
func (f TracerFunc[V]) Trace(s Snapshot[V]) { f(s) }

// Options configures a Kruskal run.
type Options[V any] struct {
	// Tracer, when non-nil, receives a Snapshot after init and after each iteration.
	Tracer Tracer[V]

	// RequireConnected makes a disconnected input fail with ErrDisconnected
	// instead of yielding a spanning forest.
	RequireConnected bool
}

// Option configures Options.
type Option[V any] func(*Options[V])

// WithTracer attaches t to the run.
func WithTracer[V any](t Tracer[V]) Option[V] {
	return func(o *Options[V]) { o.Tracer = t }
}

// WithRequireConnected rejects disconnected input with ErrDisconnected.
func WithRequireConnected[V any]() Option[V] {
	return func(o *Options[V]) { o.RequireConnected = true }
}

// DefaultOptions returns Options for a silent run returning a spanning forest.
func DefaultOptions[V any]() Options[V] {
	return Options[V]{}
}
