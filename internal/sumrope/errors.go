// Package sumrope implements the dynamic indexed sequence with cumulative
// sums described in this repository: a balanced binary tree of RLEGroups
// (one per line) that caches a LenPair sum at every node, giving O(log n)
// access, replace, prefix-sum, range-sum, and positional query.
//
// The tree is mutable: Replace updates the tree in place rather than
// returning a new SumRope. Sum caches are kept consistent along the
// modification path on every call; a failed call leaves the rope
// unchanged.
package sumrope

import "errors"

var (
	// ErrOutOfRange is returned when an index or offset exceeds the
	// valid interval for the operation.
	ErrOutOfRange = errors.New("sumrope: index out of range")

	// ErrInvalidArgument is returned for malformed arguments that are
	// not themselves out-of-range offsets: a Query dimension outside
	// {0,1}. A negative count passed to Replace is reported as
	// ErrOutOfRange.
	ErrInvalidArgument = errors.New("sumrope: invalid argument")
)
