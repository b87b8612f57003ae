// Package dotio reads and writes a small, undirected-only subset of the DOT
// graph language: `;`-terminated statements, `--`-chained edge lists
// expanding pairwise, no attributes.
package dotio

import "errors"

// ErrInvalidDot reports that ReadString's input is not in the supported DOT
// subset (missing braces, a missing semicolon, or a node id that is neither
// a bare identifier nor an unsigned integer), or that WriteString was given
// a labels slice whose length differs from the graph's vertex count.
var ErrInvalidDot = errors.New("dotio: invalid dot source")
