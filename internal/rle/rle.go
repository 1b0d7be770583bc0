// Package rle implements RLEGroup, the per-line run-length summary that
// lets a sumrope line mix ASCII and multibyte UTF-8 text without storing a
// byte width for every character. Construction scans a line once; every
// later byte<->char conversion walks the (much shorter) run list instead
// of the raw text.
package rle

import (
	"errors"
	"unicode/utf8"

	"github.com/tbttfox/sumrope/internal/lenpair"
)

// ErrInvalidEncoding is returned when Construct is given text that is not
// valid UTF-8.
var ErrInvalidEncoding = errors.New("rle: text is not valid UTF-8")

// ErrOutOfRange is returned when a byte or character offset falls outside
// the group's valid [0, len] interval.
var ErrOutOfRange = errors.New("rle: offset out of range")

// Run is one coalesced run of code points sharing the same UTF-8 byte
// width. Width is always in {1,2,3,4}; Count is always >= 1.
type Run struct {
	Width uint8
	Count int
}

// Group is a run-length summary of one line's per-character byte widths,
// plus the cached totals derived from it. The zero value is the empty
// group (an empty line).
type Group struct {
	runs    []Run
	charLen int
	byteLen int
}

// Empty is the canonical zero-length group, returned by queries that need
// to hand back "no line" without allocating.
var Empty = Group{}

// Construct scans s and builds its coalesced run-length encoding. Runs of
// adjacent code points with identical UTF-8 byte width are merged into a
// single (width, count) pair.
func Construct(s string) (Group, error) {
	if !utf8.ValidString(s) {
		return Group{}, ErrInvalidEncoding
	}
	if len(s) == 0 {
		return Group{}, nil
	}

	var runs []Run
	charLen := 0
	byteLen := 0

	for _, r := range s {
		w := uint8(utf8.RuneLen(r))
		charLen++
		byteLen += int(w)

		if n := len(runs); n > 0 && runs[n-1].Width == w {
			runs[n-1].Count++
		} else {
			runs = append(runs, Run{Width: w, Count: 1})
		}
	}

	return Group{runs: runs, charLen: charLen, byteLen: byteLen}, nil
}

// MustConstruct is Construct for callers that already know s is valid
// UTF-8 (e.g. text that came from a Go string literal or another Group's
// round trip). It panics on invalid input.
func MustConstruct(s string) Group {
	g, err := Construct(s)
	if err != nil {
		panic(err)
	}
	return g
}

// CharLen returns the number of characters (code points) in the line.
func (g Group) CharLen() int { return g.charLen }

// ByteLen returns the number of UTF-8 bytes in the line.
func (g Group) ByteLen() int { return g.byteLen }

// Runs returns the group's coalesced (width, count) pairs. The returned
// slice is shared with the group and must not be mutated.
func (g Group) Runs() []Run { return g.runs }

// Pair returns the group's totals as a LenPair.
func (g Group) Pair() lenpair.LenPair {
	return lenpair.New(g.charLen, g.byteLen)
}

// IsEmpty reports whether the line is empty.
func (g Group) IsEmpty() bool {
	return g.charLen == 0
}

// ByteToChar returns the largest character offset c such that
// CharToByte(c) <= b: the boundary belongs to the run that precedes it,
// never the one that follows. b must be in [0, ByteLen()].
func (g Group) ByteToChar(b int) (int, error) {
	if b < 0 || b > g.byteLen {
		return 0, ErrOutOfRange
	}

	chars, bytes := 0, 0
	for _, run := range g.runs {
		runBytes := int(run.Width) * run.Count
		if bytes+runBytes <= b {
			chars += run.Count
			bytes += runBytes
			continue
		}
		// b falls inside this run; consume whole characters of it.
		remaining := b - bytes
		whole := remaining / int(run.Width)
		return chars + whole, nil
	}
	return chars, nil
}

// CharToByte returns the byte offset at the start of character c. c must
// be in [0, CharLen()].
func (g Group) CharToByte(c int) (int, error) {
	if c < 0 || c > g.charLen {
		return 0, ErrOutOfRange
	}

	chars, bytes := 0, 0
	for _, run := range g.runs {
		if chars+run.Count <= c {
			chars += run.Count
			bytes += int(run.Width) * run.Count
			continue
		}
		remaining := c - chars
		return bytes + remaining*int(run.Width), nil
	}
	return bytes, nil
}

// ByteToPair returns LenPair(ByteToChar(b), b).
func (g Group) ByteToPair(b int) (lenpair.LenPair, error) {
	c, err := g.ByteToChar(b)
	if err != nil {
		return lenpair.Zero, err
	}
	return lenpair.New(c, b), nil
}

// CharToPair returns LenPair(c, CharToByte(c)).
func (g Group) CharToPair(c int) (lenpair.LenPair, error) {
	b, err := g.CharToByte(c)
	if err != nil {
		return lenpair.Zero, err
	}
	return lenpair.New(c, b), nil
}
