package sumrope

import (
	"github.com/tbttfox/sumrope/internal/lenpair"
	"github.com/tbttfox/sumrope/internal/rle"
)

// node is a tagged-union tree node: a leaf holds values directly, a
// branch holds two (possibly absent) children. A nil *node represents
// an absent child and is a valid receiver for every read method below.
type node struct {
	sum    lenpair.LenPair
	length int

	// leaf
	values []rle.Group

	// branch; isLeaf is true iff both are nil, which also covers the
	// case of a node holding zero values (collapsed to absent instead).
	left, right *node
}

func (n *node) isLeaf() bool {
	return n == nil || (n.left == nil && n.right == nil)
}

func newLeaf(values []rle.Group) *node {
	if len(values) == 0 {
		return nil
	}
	n := &node{values: values}
	n.update()
	return n
}

func newBranch(left, right *node) *node {
	n := &node{left: left, right: right}
	n.update()
	return n
}

// Len returns the element count cached at n, treating a nil receiver as
// the empty sequence.
func (n *node) Len() int {
	if n == nil {
		return 0
	}
	return n.length
}

// Sum returns the LenPair cached at n, treating a nil receiver as the
// zero sum.
func (n *node) Sum() lenpair.LenPair {
	if n == nil {
		return lenpair.Zero
	}
	return n.sum
}

// update recomputes n's cached sum and length from its immediate
// children or values, without recursing.
func (n *node) update() {
	if n.isLeaf() {
		sum := lenpair.Zero
		for _, v := range n.values {
			sum = sum.Add(v.Pair())
		}
		n.sum = sum
		n.length = len(n.values)
		return
	}
	n.sum = n.left.Sum().Add(n.right.Sum())
	n.length = n.left.Len() + n.right.Len()
}

// updateRec recomputes n's cached sum and length, and those of every
// descendant, from the values at the leaves upward.
func (n *node) updateRec() {
	if n == nil {
		return
	}
	if !n.isLeaf() {
		n.left.updateRec()
		n.right.updateRec()
	}
	n.update()
}

// flatten appends n's values, in order, to out.
func (n *node) flatten(out []rle.Group) []rle.Group {
	if n == nil {
		return out
	}
	if n.isLeaf() {
		return append(out, n.values...)
	}
	out = n.left.flatten(out)
	out = n.right.flatten(out)
	return out
}

// split partitions n's in-order sequence at index, returning the (absent
// or present) left and right subtrees. Each side is rebalanced on the
// way back up the spine, per the weight-balance invariant.
func (n *node) split(index int, chunkSize int, balanceRatio float64) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf() {
		if index <= 0 {
			return nil, n
		}
		if index >= len(n.values) {
			return n, nil
		}
		return newLeaf(n.values[:index:index]), newLeaf(n.values[index:])
	}

	leftLen := n.left.Len()
	if index < leftLen {
		leftPart, rightPart := n.left.split(index, chunkSize, balanceRatio)
		newRight := concat(rightPart, n.right)
		return rebalance(leftPart, chunkSize, balanceRatio), rebalance(newRight, chunkSize, balanceRatio)
	}
	rightPart, rightPart2 := n.right.split(index-leftLen, chunkSize, balanceRatio)
	newLeft := concat(n.left, rightPart)
	return rebalance(newLeft, chunkSize, balanceRatio), rebalance(rightPart2, chunkSize, balanceRatio)
}

// concat joins two (possibly absent) subtrees in order, with no
// balancing beyond collapsing absent sides.
func concat(left, right *node) *node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	return newBranch(left, right)
}
