// Package graphfile reads graph definitions (TOML or YAML) and builds core graphs from them.
//
// TOML:
//
//	vertices = ["A", "B", "C"]
//
//	[[edges]]
//	from = "A"
//	to = "B"
//	weight = 1
//
// YAML:
//
//	vertices: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 1}
//
// When vertices is empty, edge endpoints are registered on the fly. Otherwise
// every endpoint must be declared.
package graphfile

import (
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wudgraph/core"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("graphfile: unsupported format")

	// ErrInvalidEdge is returned for edges with an empty endpoint.
	ErrInvalidEdge = errors.New("graphfile: edge endpoint is empty")
)

// EdgeSpec is one undirected edge of a Document.
type EdgeSpec struct {
	From   string `koanf:"from"`
	To     string `koanf:"to"`
	Weight int64  `koanf:"weight"`
}

// Document is the decoded content of a graph file.
type Document struct {
	Vertices []string   `koanf:"vertices"`
	Edges    []EdgeSpec `koanf:"edges"`
}

// Load reads and decodes the graph file at path. The format follows the
// extension: .toml, .yaml or .yml.
func Load(path string) (*Document, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, "failed to read graph file %s", path)
	}

	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode graph file %s", path)
	}

	return &doc, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
}

// Build creates a graph holding the declared vertices (in order) and edges.
// A repeated edge replaces the earlier weight.
func (d *Document) Build() (*core.Graph[string], error) {
	g := core.NewGraphFrom(d.Vertices)
	declared := len(d.Vertices) > 0
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, errors.Wrapf(ErrInvalidEdge, "edge #%d", i+1)
		}
		if !declared {
			g.AddVertex(e.From)
			g.AddVertex(e.To)
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "edge #%d", i+1)
		}
	}

	return g, nil
}
