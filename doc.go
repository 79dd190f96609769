// Package wudgraph is an in-memory weighted undirected graph with a
// minimum spanning tree solver.
//
// Packages:
//
//	core/       — Graph[V]: vertex store, weight-sorted adjacency lists, edge mutation
//	mst/        — Kruskal's algorithm with optional step tracing
//	converters/ — adapters to and from gonum graphs
//	cmd/wudgraph — CLI reading TOML/YAML graph files
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddVertex("A")
//	g.AddVertex("B")
//	_ = g.AddEdge("A", "B", 3)
//	tree, _ := mst.Kruskal(g)
//	fmt.Println(tree) // Vertices: {A, B}, Edges: {(A, B, 3)}
package wudgraph
