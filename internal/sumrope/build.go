package sumrope

import (
	"math"

	"github.com/tbttfox/sumrope/internal/rle"
)

// buildBalanced builds a perfectly balanced tree over values, with
// leaves filled to roughly chunkSize, pairing branches bottom-up.
func buildBalanced(values []rle.Group, chunkSize int) *node {
	if len(values) == 0 {
		return nil
	}

	numChunks := 1
	if shift := math.Ceil(math.Log2(float64(len(values)) / float64(chunkSize))); shift > 0 {
		numChunks = 1 << int(shift)
	}

	idealSize := float64(len(values)) / float64(numChunks)
	ceilCount := len(values) - int(math.Floor(idealSize))*numChunks
	floorCount := numChunks - ceilCount

	counts := make([]int, 0, numChunks)
	for i := 0; i < ceilCount; i++ {
		counts = append(counts, int(math.Ceil(idealSize)))
	}
	for i := 0; i < floorCount; i++ {
		counts = append(counts, int(math.Floor(idealSize)))
	}

	leaves := make([]*node, 0, len(counts))
	idx := 0
	for _, count := range counts {
		leaves = append(leaves, newLeaf(values[idx:idx+count:idx+count]))
		idx += count
	}

	for len(leaves) > 1 {
		parents := make([]*node, 0, (len(leaves)+1)/2)
		for i := 0; i < len(leaves); i += 2 {
			left := leaves[i]
			var right *node
			if i+1 < len(leaves) {
				right = leaves[i+1]
			}
			parents = append(parents, newBranch(left, right))
		}
		leaves = parents
	}
	return leaves[0]
}

// rebalance rebuilds n from its flattened sequence if its children
// violate the weight-balance invariant; otherwise it returns n
// unchanged. A leaf or absent node is always balanced.
func rebalance(n *node, chunkSize int, balanceRatio float64) *node {
	if n == nil || n.isLeaf() {
		return n
	}

	leftLen := float64(n.left.Len())
	rightLen := float64(n.right.Len())

	if leftLen*balanceRatio < rightLen || rightLen*balanceRatio < leftLen {
		values := n.flatten(nil)
		return buildBalanced(values, chunkSize)
	}
	return n
}
