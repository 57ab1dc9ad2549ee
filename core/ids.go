package core

import (
	"strconv"

	"github.com/google/uuid"
)

// IDFn generates the id of the seq-th node created in a graph (seq starts at 1).
// Implementations must never return the same id twice for one graph.
type IDFn func(seq uint64) NodeID

// SequentialIDFn returns "n" + seq, e.g. 1→"n1", 42→"n42".
// Complexity: O(d) where d is the number of decimal digits in seq.
func SequentialIDFn(seq uint64) NodeID {
	return NodeID("n" + strconv.FormatUint(seq, 10))
}

// UUIDIDFn ignores seq and returns a random (version 4) UUID string.
// Use it when ids must stay unique across graphs.
func UUIDIDFn(uint64) NodeID {
	return NodeID(uuid.NewString())
}
