// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: Decode the edge-list format into a core.Graph and encode it back.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/errand/core"
)

// Sentinel errors for decoding.
var (
	// ErrSyntax indicates input the lexer or grammar rejects.
	ErrSyntax = errors.New("edgelist: syntax error")

	// ErrMissingHeader indicates input without a vertex count line.
	ErrMissingHeader = errors.New("edgelist: missing vertex count")

	// ErrFieldCount indicates a line with the wrong number of integers.
	ErrFieldCount = errors.New("edgelist: wrong number of fields")
)

const (
	headerFields = 1
	edgeFields   = 3
)

// Parse decodes src. opts are passed to core.NewGraph.
func Parse(src string, opts ...core.GraphOption) (*core.Graph, error) {
	return decode("", strings.NewReader(src), opts)
}

// Read decodes everything r yields.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	return decode("", r, opts)
}

// Load decodes the file at path; error positions carry the path.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "edgelist: open %s", path)
	}
	defer f.Close()

	return decode(path, f, opts)
}

// decode parses the stream and replays it into a graph line by line.
func decode(name string, r io.Reader, opts []core.GraphOption) (*core.Graph, error) {
	// A trailing newline lets the last line match "@Int* EOL".
	doc, err := parseDocument.Parse(name, io.MultiReader(r, strings.NewReader("\n")))
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	var (
		g      *core.Graph
		e      *entry
		header = true
	)
	for _, e = range doc.Entries {
		switch {
		case len(e.Values) == 0:
			continue
		case header:
			if len(e.Values) != headerFields {
				return nil, errors.Wrapf(ErrFieldCount, "line %d: header has %d fields, want %d",
					e.Pos.Line, len(e.Values), headerFields)
			}
			// checked before the int conversion, which truncates on 32-bit
			if e.Values[0] > core.MaxVertices {
				return nil, errors.Wrapf(core.ErrTooManyVertices, "line %d: header %d exceeds %d",
					e.Pos.Line, e.Values[0], core.MaxVertices)
			}
			if g, err = core.NewGraph(int(e.Values[0]), opts...); err != nil {
				return nil, errors.Wrapf(err, "edgelist: line %d", e.Pos.Line)
			}
			header = false
		default:
			if len(e.Values) != edgeFields {
				return nil, errors.Wrapf(ErrFieldCount, "line %d: edge has %d fields, want %d",
					e.Pos.Line, len(e.Values), edgeFields)
			}
			if err = g.AddEdge(int(e.Values[0]), int(e.Values[1]), e.Values[2]); err != nil {
				return nil, errors.Wrapf(err, "edgelist: line %d", e.Pos.Line)
			}
		}
	}
	if header {
		return nil, ErrMissingHeader
	}

	return g, nil
}

// Write encodes g: the vertex count, then one "u v w" line per edge in
// insertion order. Parse(Write(g)) rebuilds an identical graph.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return errors.New("edgelist: graph is nil")
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, g.VertexCount()); err != nil {
		return errors.Wrap(err, "edgelist: write header")
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return errors.Wrap(err, "edgelist: write edge")
		}
	}

	return errors.Wrap(bw.Flush(), "edgelist: flush")
}
