package sumrope

import (
	"strings"

	"github.com/tbttfox/sumrope/internal/lenpair"
	"github.com/tbttfox/sumrope/internal/rle"
)

// DefaultChunkSize is the suggested maximum number of elements per leaf.
const DefaultChunkSize = 32

// DefaultBalanceRatio is the suggested branch-weight imbalance threshold
// that triggers a rebuild.
const DefaultBalanceRatio = 3.0

// SumRope is a dynamic sequence of RLEGroups with cached cumulative
// LenPair sums, supporting O(log n) access, replace, prefix-sum,
// range-sum, and positional query. The zero value is not ready to use;
// construct with New or FromText.
type SumRope struct {
	root         *node
	chunkSize    int
	balanceRatio float64
}

// Option configures a SumRope at construction.
type Option func(*SumRope)

// WithChunkSize overrides the default maximum number of elements per
// leaf. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(r *SumRope) {
		if n >= 1 {
			r.chunkSize = n
		}
	}
}

// WithBalanceRatio overrides the default branch-weight imbalance
// threshold. Values below 1 are ignored.
func WithBalanceRatio(ratio float64) Option {
	return func(r *SumRope) {
		if ratio >= 1 {
			r.balanceRatio = ratio
		}
	}
}

func newRope(opts []Option) *SumRope {
	r := &SumRope{chunkSize: DefaultChunkSize, balanceRatio: DefaultBalanceRatio}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// New builds a SumRope whose leaves, read left to right, contain
// values. An empty slice yields an empty rope.
func New(values []rle.Group, opts ...Option) *SumRope {
	r := newRope(opts)
	r.root = buildBalanced(append([]rle.Group(nil), values...), r.chunkSize)
	return r
}

// FromText splits txt on '\n', keeping the newline on every line except
// the last, builds one RLEGroup per line, and returns a SumRope over
// them. An empty string yields an empty rope. FromText fails with
// rle.ErrInvalidEncoding if txt is not valid UTF-8.
func FromText(txt string, opts ...Option) (*SumRope, error) {
	if txt == "" {
		return New(nil, opts...), nil
	}

	var lines []string
	rest := txt
	for {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			lines = append(lines, rest)
			break
		}
		lines = append(lines, rest[:i+1])
		rest = rest[i+1:]
	}

	values := make([]rle.Group, len(lines))
	for i, line := range lines {
		g, err := rle.Construct(line)
		if err != nil {
			return nil, err
		}
		values[i] = g
	}
	return New(values, opts...), nil
}

// Len returns the number of elements in the rope.
func (r *SumRope) Len() int {
	return r.root.Len()
}

// TotalSum returns the LenPair sum of every element, cached at the root.
func (r *SumRope) TotalSum() lenpair.LenPair {
	return r.root.Sum()
}

// ToList returns every element in order.
func (r *SumRope) ToList() []rle.Group {
	return r.root.flatten(nil)
}

// GetSingle returns the LenPair of the i-th element.
func (r *SumRope) GetSingle(i int) (lenpair.LenPair, error) {
	g, err := r.getGroup(i)
	if err != nil {
		return lenpair.Zero, err
	}
	return g.Pair(), nil
}

// GetGroup returns the i-th element's RLEGroup.
func (r *SumRope) GetGroup(i int) (rle.Group, error) {
	return r.getGroup(i)
}

func (r *SumRope) getGroup(i int) (rle.Group, error) {
	if i < 0 || i >= r.Len() {
		return rle.Empty, ErrOutOfRange
	}
	n := r.root
	for !n.isLeaf() {
		leftLen := n.left.Len()
		if i < leftLen {
			n = n.left
		} else {
			i -= leftLen
			n = n.right
		}
	}
	return n.values[i], nil
}

// GetRange returns the elements in [start, end).
func (r *SumRope) GetRange(start, end int) ([]rle.Group, error) {
	if start < 0 || end > r.Len() || start > end {
		return nil, ErrOutOfRange
	}
	out := make([]rle.Group, 0, end-start)
	collectRange(r.root, 0, start, end, &out)
	return out, nil
}

func collectRange(n *node, offset, start, end int, out *[]rle.Group) {
	if n == nil {
		return
	}
	nodeEnd := offset + n.Len()
	if nodeEnd <= start || offset >= end {
		return
	}
	if n.isLeaf() {
		localStart := start - offset
		if localStart < 0 {
			localStart = 0
		}
		localEnd := end - offset
		if localEnd > len(n.values) {
			localEnd = len(n.values)
		}
		*out = append(*out, n.values[localStart:localEnd]...)
		return
	}
	collectRange(n.left, offset, start, end, out)
	collectRange(n.right, offset+n.left.Len(), start, end, out)
}

// Replace deletes oldCount elements beginning at start and inserts
// newValues at that position.
func (r *SumRope) Replace(start, oldCount int, newValues []rle.Group) error {
	if start < 0 || oldCount < 0 || start+oldCount > r.Len() {
		return ErrOutOfRange
	}

	left, tail := r.root.split(start, r.chunkSize, r.balanceRatio)
	_, right := tail.split(oldCount, r.chunkSize, r.balanceRatio)

	mid := buildBalanced(append([]rle.Group(nil), newValues...), r.chunkSize)
	merged := concat(concat(left, mid), right)
	r.root = rebalance(merged, r.chunkSize, r.balanceRatio)
	return nil
}

// Set assigns a single RLEGroup at index i, sugar over Replace.
func (r *SumRope) Set(i int, g rle.Group) error {
	if i < 0 || i >= r.Len() {
		return ErrOutOfRange
	}
	return r.Replace(i, 1, []rle.Group{g})
}

// SetRange assigns a sequence of RLEGroups over [start, end), sugar over
// Replace.
func (r *SumRope) SetRange(start, end int, values []rle.Group) error {
	if start < 0 || end > r.Len() || start > end {
		return ErrOutOfRange
	}
	return r.Replace(start, end-start, values)
}

// PrefixSum returns the LenPair sum of elements [0, i).
func (r *SumRope) PrefixSum(i int) (lenpair.LenPair, error) {
	if i < 0 || i > r.Len() {
		return lenpair.Zero, ErrOutOfRange
	}
	if i == 0 {
		return lenpair.Zero, nil
	}

	total := lenpair.Zero
	n := r.root
	for !n.isLeaf() {
		leftLen := n.left.Len()
		if i < leftLen {
			n = n.left
		} else {
			i -= leftLen
			total = total.Add(n.left.Sum())
			n = n.right
		}
	}
	for _, v := range n.values[:i] {
		total = total.Add(v.Pair())
	}
	return total, nil
}

// RangeSum returns PrefixSum(end) - PrefixSum(start).
func (r *SumRope) RangeSum(start, end int) (lenpair.LenPair, error) {
	a, err := r.PrefixSum(start)
	if err != nil {
		return lenpair.Zero, err
	}
	b, err := r.PrefixSum(end)
	if err != nil {
		return lenpair.Zero, err
	}
	return b.Sub(a), nil
}

// Query finds, for a cumulative target value measured along dim, the
// first element whose prefix sum strictly exceeds value, then resolves
// value inside that element's RLE. value is clamped to
// [0, TotalSum()[dim]]; dim must be lenpair.Char or lenpair.Byte.
func (r *SumRope) Query(value int, dim lenpair.Dimension) (QueryResult, error) {
	if dim != lenpair.Char && dim != lenpair.Byte {
		return QueryResult{}, ErrInvalidArgument
	}
	if value < 0 {
		value = 0
	}
	if total, _ := r.TotalSum().At(dim); value > total {
		value = total
	}

	if r.root == nil {
		return QueryResult{Group: rle.Empty}, nil
	}
	return r.root.query(value, dim, nil), nil
}
