package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/wudgraph/core"
	"github.com/katalvlaran/wudgraph/internal/graphfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareTOML = `
vertices = ["A", "B", "C", "D"]

[[edges]]
from = "A"
to = "B"
weight = 1

[[edges]]
from = "B"
to = "C"
weight = 2

[[edges]]
from = "C"
to = "D"
weight = 3

[[edges]]
from = "A"
to = "D"
weight = 4

[[edges]]
from = "A"
to = "C"
weight = 5
`

const squareYAML = `
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
  - {from: C, to: D, weight: 3}
  - {from: A, to: D, weight: 4}
  - {from: A, to: C, weight: 5}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestLoad_Formats verifies that TOML and YAML describe the same graph.
func TestLoad_Formats(t *testing.T) {
	const want = "Vertices: {A, B, C, D}, Edges: {(A, B, 1), (A, D, 4), (A, C, 5), (B, C, 2), (C, D, 3)}"

	for name, content := range map[string]string{
		"square.toml": squareTOML,
		"square.yaml": squareYAML,
		"square.yml":  squareYAML,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := graphfile.Load(writeFile(t, name, content))
			require.NoError(t, err)
			require.Len(t, doc.Edges, 5)

			g, err := doc.Build()
			require.NoError(t, err)
			assert.Equal(t, want, g.String())
		})
	}
}

// TestLoad_Errors covers unsupported extensions, missing files and bad syntax.
func TestLoad_Errors(t *testing.T) {
	_, err := graphfile.Load(writeFile(t, "graph.json", "{}"))
	assert.ErrorIs(t, err, graphfile.ErrUnsupportedFormat)

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = graphfile.Load(writeFile(t, "broken.toml", "vertices = [\"A\""))
	assert.Error(t, err)
}

// TestBuild_UndeclaredVertex verifies strict endpoint checking when vertices are declared.
func TestBuild_UndeclaredVertex(t *testing.T) {
	doc := &graphfile.Document{
		Vertices: []string{"A", "B"},
		Edges:    []graphfile.EdgeSpec{{From: "A", To: "B", Weight: 1}, {From: "B", To: "Z", Weight: 2}},
	}
	_, err := doc.Build()
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, err.Error(), "edge #2")
}

// TestBuild_EmptyEndpoint verifies ErrInvalidEdge.
func TestBuild_EmptyEndpoint(t *testing.T) {
	doc := &graphfile.Document{Edges: []graphfile.EdgeSpec{{From: "A", Weight: 1}}}
	_, err := doc.Build()
	assert.ErrorIs(t, err, graphfile.ErrInvalidEdge)
}

// TestBuild_RepeatedEdge verifies the last weight wins.
func TestBuild_RepeatedEdge(t *testing.T) {
	doc := &graphfile.Document{Edges: []graphfile.EdgeSpec{
		{From: "A", To: "B", Weight: 9},
		{From: "B", To: "A", Weight: 2},
	}}
	g, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, "Vertices: {A, B}, Edges: {(A, B, 2)}", g.String())
}
