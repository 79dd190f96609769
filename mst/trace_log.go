package mst

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wudgraph/core"
	"github.com/sirupsen/logrus"
)

// LogTracer returns a Tracer writing one Debug entry per snapshot to logger.
func LogTracer[V any](logger logrus.FieldLogger) Tracer[V] {
	return TracerFunc[V](func(s Snapshot[V]) {
		entry := logger.WithFields(logrus.Fields{
			"phase":     s.Phase.String(),
			"iteration": s.Iteration,
			"included":  s.Included,
			"remaining": formatEdges(s.Remaining),
			"labels":    fmt.Sprint(s.Labels),
			"tree":      s.Tree.String(),
		})
		if s.Phase == PhaseInit {
			entry.Debug("mst initialized")
			return
		}
		entry.WithFields(logrus.Fields{
			"edge":       fmt.Sprintf("(%v, %v, %d)", s.Considered.From, s.Considered.To, s.Considered.Weight),
			"from_label": s.FromLabel,
			"to_label":   s.ToLabel,
			"accepted":   s.Accepted,
		}).Debug("mst candidate considered")
	})
}

func formatEdges[V any](edges []core.Edge[V]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range edges {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%v, %v, %d)", e.From, e.To, e.Weight)
	}
	b.WriteByte(']')

	return b.String()
}
