// Package graph defines the immutable input graph consumed by Decompose.
//
// A Graph is built once via New and never mutated afterward; the
// decomposition core relies on this immutability to skip defensive copying.
// Two independent decompositions may run concurrently on separate threads
// provided their Graph and MDTree instances do not alias.
package graph

import "errors"

// ErrInvalidGraph reports that the constructor's preconditions were
// violated: a negative vertex count, an out-of-range endpoint, or a
// self-loop. Duplicate edges are coalesced rather than rejected.
var ErrInvalidGraph = errors.New("graph: invalid graph")
