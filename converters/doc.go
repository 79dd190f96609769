// Package converters provides two-way adapters between core.Graph and
// gonum/graph:
//
//   - ToGonum exports a core.Graph as a *simple.WeightedUndirectedGraph whose
//     node IDs are the core slot indices.
//   - FromGonum / FromGonumFunc import any graph.WeightedUndirected, labelling
//     nodes through a caller-supplied function.
//
// Weights are int64 in core and float64 in gonum; imports round to the nearest
// integer.
package converters
