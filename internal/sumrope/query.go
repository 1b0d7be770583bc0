package sumrope

import (
	"github.com/tbttfox/sumrope/internal/lenpair"
	"github.com/tbttfox/sumrope/internal/rle"
)

// QueryResult is the full result of a positional query: which element
// the target offset falls in, the cumulative sums at the start of that
// element and at the target offset itself, the element itself, and the
// path of nodes descended to find it (root first, leaf last).
type QueryResult struct {
	Line        int
	LineStart   lenpair.LenPair
	Position    lenpair.LenPair
	Group       rle.Group
	History     []*node
}

// query finds the first element whose prefix sum along dim strictly
// exceeds value, then resolves value inside that element's RLE. value
// and dim are assumed valid (dim in {Char,Byte}); the caller clamps
// value against the rope's total sum before calling.
func (n *node) query(value int, dim lenpair.Dimension, history []*node) QueryResult {
	history = append(history, n)

	if n == nil {
		return QueryResult{History: history}
	}

	if n.isLeaf() {
		running := lenpair.Zero
		lastStart := lenpair.Zero
		for i, v := range n.values {
			pair := v.Pair()
			comp, _ := running.At(dim)
			next, _ := pair.At(dim)
			if comp <= value && comp+next > value {
				offset := value - comp
				pos, _ := resolveOffset(v, offset, dim)
				return QueryResult{
					Line:      i,
					LineStart: running,
					Position:  running.Add(pos),
					Group:     v,
					History:   history,
				}
			}
			lastStart = running
			running = running.Add(pair)
		}
		// value >= total sum along dim: clamp to the last element's end.
		last := rle.Empty
		if len(n.values) > 0 {
			last = n.values[len(n.values)-1]
		}
		lastPair := last.Pair()
		end, _ := lastPair.At(dim)
		return QueryResult{
			Line:      len(n.values) - 1,
			LineStart: lastStart,
			Position:  lastStart.Add(mustPair(dim, end, last)),
			Group:     last,
			History:   history,
		}
	}

	leftSum, _ := n.left.Sum().At(dim)
	if value < leftSum {
		return n.left.query(value, dim, history)
	}

	r := n.right.query(value-leftSum, dim, history)
	r.Line += n.left.Len()
	r.LineStart = n.left.Sum().Add(r.LineStart)
	r.Position = n.left.Sum().Add(r.Position)
	return r
}

func mustPair(dim lenpair.Dimension, offset int, g rle.Group) lenpair.LenPair {
	var p lenpair.LenPair
	var err error
	if dim == lenpair.Byte {
		p, err = g.ByteToPair(offset)
	} else {
		p, err = g.CharToPair(offset)
	}
	if err != nil {
		return lenpair.Zero
	}
	return p
}

func resolveOffset(g rle.Group, offset int, dim lenpair.Dimension) (lenpair.LenPair, error) {
	if dim == lenpair.Byte {
		return g.ByteToPair(offset)
	}
	return g.CharToPair(offset)
}
