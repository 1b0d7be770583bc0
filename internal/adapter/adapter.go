// Package adapter wires a sumrope.SumRope to a host document, playing
// the role spec.md §6 describes as an external collaborator: it turns
// line text into RLEGroups, turns edit notifications into Replace
// calls, and exposes the coordinate-conversion surface a real editor
// integration needs (char<->byte, char<->line, line<->char, line<->byte,
// changed-range reporting).
//
// This package owns the host document (internal/hostdoc stands in for
// whatever the real embedding provides) and one rope whose elements
// carry both the char and byte dimensions, per spec.md §6's note that a
// single dual-dimension rope is equivalent to two parallel ropes.
package adapter

import (
	"golang.org/x/text/unicode/norm"

	"github.com/tbttfox/sumrope/internal/hostdoc"
	"github.com/tbttfox/sumrope/internal/lenpair"
	"github.com/tbttfox/sumrope/internal/rle"
	"github.com/tbttfox/sumrope/internal/sumrope"
)

// Adapter keeps a hostdoc.Document and a sumrope.SumRope of its
// per-line metrics synchronized.
type Adapter struct {
	doc       hostdoc.Document
	rope      *sumrope.SumRope
	normalize bool
}

// New builds an Adapter over text. The rope holds one element per line as
// sumrope.FromText splits it; when text ends in '\n' that includes an
// empty final element, so the rope's Len() is then one more than the
// host document's LineCount().
func New(text string, opts ...sumrope.Option) (*Adapter, error) {
	rope, err := sumrope.FromText(text, opts...)
	if err != nil {
		return nil, err
	}
	return &Adapter{doc: hostdoc.FromString(text), rope: rope}, nil
}

// WithNormalization enables NFC normalization of line text before it is
// summarized into an RLEGroup, so callers feeding text from different
// sources get consistent character counts for combining-character
// sequences. It applies to groups built by BuildBlockRange (and so by
// ApplyEdit); the groups New built from the initial text are not
// normalized.
func (a *Adapter) WithNormalization(enabled bool) *Adapter {
	a.normalize = enabled
	return a
}

// BuildBlockRange produces RLEGroups for count lines of the host
// document starting at line start, per spec.md §6's
// build_block_range(start, count) contract.
func (a *Adapter) BuildBlockRange(start, count int) ([]rle.Group, error) {
	groups := make([]rle.Group, 0, count)
	for i := 0; i < count; i++ {
		line, err := a.doc.LineText(start + i)
		if err != nil {
			return nil, err
		}
		end, err := a.doc.LineEndOffset(start + i)
		if err != nil {
			return nil, err
		}
		if end < a.doc.Len() {
			line += "\n"
		}
		groups = append(groups, a.constructGroup(line))
	}
	return groups, nil
}

func (a *Adapter) constructGroup(line string) rle.Group {
	if a.normalize {
		line = norm.NFC.String(line)
	}
	return rle.MustConstruct(line)
}

// ApplyEdit applies a document edit notification (charPos, charsRemoved,
// newText) to both the host document and the rope, per spec.md §6's
// embedding-interface contract:
//  1. map charPos to a line index via Query(charPos, Char);
//  2. compute the affected line count from the old layout;
//  3. rebuild RLEGroups for the new line range from newText;
//  4. call Replace on the rope with the rebuilt groups.
func (a *Adapter) ApplyEdit(charPos, charsRemoved int, newText string) error {
	byteStart, err := a.charToByte(charPos)
	if err != nil {
		return err
	}
	byteEnd, err := a.charToByte(charPos + charsRemoved)
	if err != nil {
		return err
	}

	q, err := a.rope.Query(charPos, lenpair.Char)
	if err != nil {
		return err
	}
	startLine := q.Line

	endQ, err := a.rope.Query(charPos+charsRemoved, lenpair.Char)
	if err != nil {
		return err
	}
	oldLineCount := endQ.Line - startLine + 1

	newDoc, err := a.doc.Replace(byteStart, byteEnd, newText)
	if err != nil {
		return err
	}
	a.doc = newDoc

	newLineStart, err := a.doc.OffsetToPoint(byteStart)
	if err != nil {
		return err
	}
	rebuiltEndLine, err := a.doc.OffsetToPoint(byteStart + len(newText))
	if err != nil {
		return err
	}
	newLineCount := int(rebuiltEndLine.Line-newLineStart.Line) + 1

	groups, err := a.BuildBlockRange(startLine, newLineCount)
	if err != nil {
		return err
	}
	return a.rope.Replace(startLine, oldLineCount, groups)
}

func (a *Adapter) charToByte(charOffset int) (int, error) {
	q, err := a.rope.Query(charOffset, lenpair.Char)
	if err != nil {
		return 0, err
	}
	lineStartByte, err := a.doc.LineStartOffset(q.Line)
	if err != nil {
		return 0, err
	}
	return lineStartByte + q.Position.ByteLen - q.LineStart.ByteLen, nil
}

// CharToByteOffset converts an absolute character offset into the
// document to an absolute byte offset.
func (a *Adapter) CharToByteOffset(charOffset int) (int, error) {
	return a.charToByte(charOffset)
}

// ByteToCharOffset converts an absolute byte offset into the document to
// an absolute character offset.
func (a *Adapter) ByteToCharOffset(byteOffset int) (int, error) {
	q, err := a.rope.Query(byteOffset, lenpair.Byte)
	if err != nil {
		return 0, err
	}
	return q.Position.CharLen, nil
}

// CharToLine returns the line index containing the given character
// offset.
func (a *Adapter) CharToLine(charOffset int) (int, error) {
	q, err := a.rope.Query(charOffset, lenpair.Char)
	if err != nil {
		return 0, err
	}
	return q.Line, nil
}

// ByteToLine returns the line index containing the given byte offset.
func (a *Adapter) ByteToLine(byteOffset int) (int, error) {
	q, err := a.rope.Query(byteOffset, lenpair.Byte)
	if err != nil {
		return 0, err
	}
	return q.Line, nil
}

// LineToChar returns the character offset at the start of line.
func (a *Adapter) LineToChar(line int) (int, error) {
	sum, err := a.rope.PrefixSum(line)
	if err != nil {
		return 0, err
	}
	return sum.CharLen, nil
}

// LineToByte returns the byte offset at the start of line.
func (a *Adapter) LineToByte(line int) (int, error) {
	sum, err := a.rope.PrefixSum(line)
	if err != nil {
		return 0, err
	}
	return sum.ByteLen, nil
}

// ChangedByteRange reports the byte range [start, end) of a document
// edit notification, for callers that only need to re-render the
// affected region.
func (a *Adapter) ChangedByteRange(charPos, charsRemoved, charsAdded int) (hostdoc.Range, error) {
	start, err := a.charToByte(charPos)
	if err != nil {
		return hostdoc.Range{}, err
	}
	end, err := a.charToByte(charPos + charsAdded)
	if err != nil {
		return hostdoc.Range{}, err
	}
	return hostdoc.Range{Start: start, End: end}, nil
}

// ChangedLines reports the inclusive line range [first, last] affected
// by a document edit notification.
func (a *Adapter) ChangedLines(charPos, charsRemoved, charsAdded int) (first, last int, err error) {
	first, err = a.CharToLine(charPos)
	if err != nil {
		return 0, 0, err
	}
	last, err = a.CharToLine(charPos + charsAdded)
	if err != nil {
		return 0, 0, err
	}
	return first, last, nil
}

// TotalChars returns the total character count across every line.
func (a *Adapter) TotalChars() int { return a.rope.TotalSum().CharLen }

// TotalBytes returns the total byte count across every line.
func (a *Adapter) TotalBytes() int { return a.rope.TotalSum().ByteLen }

// TotalLines returns the number of lines tracked by the rope.
func (a *Adapter) TotalLines() int { return a.rope.Len() }

// Rope exposes the underlying SumRope for callers that need direct
// access to PrefixSum/RangeSum/Query.
func (a *Adapter) Rope() *sumrope.SumRope { return a.rope }

// Document exposes the underlying host document.
func (a *Adapter) Document() hostdoc.Document { return a.doc }
