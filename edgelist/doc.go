// Package edgelist reads and writes graphs in a line-oriented text format:
//
//	# comment
//	5          ← vertex count V
//	0 1 3      ← edge u–v with weight 3
//	1 2 1
//
// Decoding is done by a participle grammar; every semantic error carries the
// line it came from and wraps the matching sentinel (ErrFieldCount,
// ErrMissingHeader, ErrSyntax or a core error such as
// core.ErrVertexOutOfRange), so callers can branch with errors.Is.
package edgelist
