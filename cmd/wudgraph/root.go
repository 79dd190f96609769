package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/wudgraph/core"
	"github.com/katalvlaran/wudgraph/internal/config"
	"github.com/katalvlaran/wudgraph/internal/graphfile"
	"github.com/katalvlaran/wudgraph/mst"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newRootCommand wires the persistent flags shared by every subcommand.
func newRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wudgraph",
		Short:        "Inspect weighted undirected graphs and compute their minimum spanning tree.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("file", "f", "graph.toml", "path to graph file (.toml, .yaml, .yml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "log in JSON format")

	mstCmd := &cobra.Command{
		Use:   "mst",
		Short: "Compute the minimum spanning tree (forest) with Kruskal's algorithm",
		Args:  cobra.NoArgs,
		RunE:  runMST,
	}
	mstCmd.Flags().Bool("trace", false, "log every Kruskal step")
	mstCmd.Flags().Bool("connected", false, "fail when the graph is disconnected")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the graph and the neighbors of every vertex",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	rootCmd.AddCommand(mstCmd, showCmd)

	return rootCmd
}

// session is the per-invocation state shared by subcommands.
type session struct {
	cfg    *config.Config
	logger *log.Entry
	graph  *core.Graph[string]
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	logger.Debugf("Reading graph from %s", cfg.File)

	doc, err := graphfile.Load(cfg.File)
	if err != nil {
		return nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid graph file %s", cfg.File)
	}
	logger.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debug("graph loaded")

	return &session{cfg: cfg, logger: logger, graph: g}, nil
}

func newLogger(out io.Writer, cfg *config.Config) *log.Entry {
	logger := log.New()
	logger.SetOutput(out)
	if cfg.Verbose || cfg.Trace {
		logger.SetLevel(log.DebugLevel)
	}
	if cfg.JSON {
		logger.SetFormatter(&log.JSONFormatter{})
	}

	return logger.WithField("run", uuid.NewString())
}

func runMST(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	opts := []mst.Option[string]{}
	if s.cfg.Trace {
		opts = append(opts, mst.WithTracer(mst.LogTracer[string](s.logger)))
	}
	if s.cfg.Connected {
		opts = append(opts, mst.WithRequireConnected[string]())
	}

	tree, err := mst.Kruskal(s.graph, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to compute minimum spanning tree")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Graph: %s\n", s.graph)
	fmt.Fprintf(out, "MST: %s\n", tree)
	fmt.Fprintf(out, "Total weight: %d\n", mst.TotalWeight(tree))

	return nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.graph)
	for _, v := range s.graph.Vertices() {
		neighbors, err := s.graph.Neighbors(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %v\n", v, neighbors)
	}

	return nil
}
