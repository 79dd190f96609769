// File: format.go
// Role: Canonical textual form used by tests, logs and the CLI.
//
//	Vertices: {A, B, C}, Edges: {(A, B, 1), (B, C, 2)}
//
// Edges appear once, in canonical direction, in Edges() order. After every
// fifth tuple the list continues on a new line indented by three spaces.

package core

import (
	"fmt"
	"strings"
)

const edgesPerLine = 5

// String renders the graph in canonical form.
func (g *Graph[V]) String() string {
	var b strings.Builder
	b.WriteString("Vertices: {")
	for i := 0; i < g.vertices.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", g.vertices.at(i))
	}
	b.WriteString("}, Edges: {")
	n := 0
	g.eachCanonical(func(from, to V, weight int64) {
		if n > 0 {
			b.WriteString(", ")
			if n%edgesPerLine == 0 {
				b.WriteString("\n   ")
			}
		}
		fmt.Fprintf(&b, "(%v, %v, %d)", from, to, weight)
		n++
	})
	b.WriteString("}")

	return b.String()
}
