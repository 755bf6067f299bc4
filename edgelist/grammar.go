// SPDX-License-Identifier: MIT
//
// File: grammar.go
// Role: Lexer and participle grammar of the edge-list text format.
// Format:
//   - First non-empty line: the vertex count V.
//   - Every following non-empty line: "u v w" (endpoints and weight).
//   - '#' starts a comment running to the end of the line.
//   - Blank lines and surrounding spaces or tabs are ignored.

package edgelist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// document is the parse tree: one entry per physical line.
type document struct {
	Entries []*entry `parser:"@@*"`
}

// entry is a line of zero or more integers. Arity is checked after parsing
// so errors can name the offending line.
type entry struct {
	Pos    lexer.Position
	Values []int64 `parser:"@Int* EOL"`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var parseDocument = participle.MustBuild[document](
	participle.Lexer(edgeListLexer),
	participle.Elide("Comment", "Whitespace"),
)
