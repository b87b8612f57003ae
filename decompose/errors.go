// Package decompose computes the modular decomposition tree of a graph.Graph.
// The public surface is a single function, Decompose; there are no callback
// hooks and no exported concurrency knobs.
package decompose

import "errors"

// ErrInternalInvariant reports that a structural invariant the algorithm
// relies on did not hold. It should never surface for a valid graph.Graph;
// seeing it means either a bug in this package or a Graph built by bypassing
// graph.New's validation.
var ErrInternalInvariant = errors.New("decompose: internal invariant violated")

// ErrOutOfMemory reports that the arena backing a decomposition could not
// grow to hold the input graph. The forest allocator never imposes its own
// ceiling; this wraps whatever the Go runtime reports on allocation failure.
var ErrOutOfMemory = errors.New("decompose: out of memory")
