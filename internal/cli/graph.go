package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/errand/core"
	"github.com/katalvlaran/errand/edgelist"
)

// loadGraph reads an edge-list file. Self-loops are accepted since they
// never change a shortest path.
func loadGraph(ctx context.Context, path string) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	logger.Debug("loading graph", "path", path)
	g, err := edgelist.Load(path, core.WithLoops())
	if err != nil {
		return nil, err
	}
	prog.done("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// parseIDs parses a comma-separated list of vertex ids such as "1,5,8".
// Spaces around ids are ignored and an empty string yields no ids.
func parseIDs(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid vertex id %q: %w", p, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
