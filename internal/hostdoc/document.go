package hostdoc

// Document is an immutable byte-rope. The zero value is the empty
// document and is ready to use.
type Document struct {
	root *node
}

// New returns the empty document.
func New() Document { return Document{} }

// FromString builds a Document holding s.
func FromString(s string) Document {
	return Document{root: newLeaf(splitIntoChunks(s))}
}

// Len returns the document's length in bytes.
func (d Document) Len() int { return d.root.Len() }

// IsEmpty reports whether the document holds no text.
func (d Document) IsEmpty() bool { return d.Len() == 0 }

// LineCount returns the number of lines in the document. A document with
// no trailing newline still counts its final, unterminated line.
func (d Document) LineCount() int {
	if d.Len() == 0 {
		return 0
	}
	lines := int(d.root.Summary().Lines)
	if endsInNewline(d) {
		return lines
	}
	return lines + 1
}

func endsInNewline(d Document) bool {
	if d.Len() == 0 {
		return false
	}
	b, err := d.ByteAt(d.Len() - 1)
	return err == nil && b == '\n'
}

// String returns the document's full text.
func (d Document) String() string { return d.root.String() }

// Slice returns the text in byte range [start, end).
func (d Document) Slice(start, end int) (string, error) {
	if start < 0 || end > d.Len() || start > end {
		return "", ErrRangeInvalid
	}
	_, tail := d.root.split(start)
	head, _ := tail.split(end - start)
	return head.String(), nil
}

// ByteAt returns the byte at offset.
func (d Document) ByteAt(offset int) (byte, error) {
	s, err := d.Slice(offset, offset+1)
	if err != nil || len(s) == 0 {
		return 0, ErrOffsetOutOfRange
	}
	return s[0], nil
}

// Insert returns a new Document with s inserted at offset.
func (d Document) Insert(offset int, s string) (Document, error) {
	if offset < 0 || offset > d.Len() {
		return d, ErrOffsetOutOfRange
	}
	return Document{root: insertAt(d.root, offset, s)}, nil
}

// Delete returns a new Document with [start, end) removed.
func (d Document) Delete(start, end int) (Document, error) {
	if start < 0 || end > d.Len() || start > end {
		return d, ErrRangeInvalid
	}
	return Document{root: deleteRange(d.root, start, end)}, nil
}

// Replace returns a new Document with [start, end) replaced by s.
func (d Document) Replace(start, end int, s string) (Document, error) {
	deleted, err := d.Delete(start, end)
	if err != nil {
		return d, err
	}
	return deleted.Insert(start, s)
}

// Split divides the document into two at offset.
func (d Document) Split(offset int) (Document, Document, error) {
	if offset < 0 || offset > d.Len() {
		return d, d, ErrOffsetOutOfRange
	}
	l, r := d.root.split(offset)
	return Document{root: l}, Document{root: r}, nil
}

// Concat joins two documents in order.
func Concat(a, b Document) Document {
	return Document{root: concat(a.root, b.root)}
}

// LineStartOffset returns the byte offset where line begins.
func (d Document) LineStartOffset(line int) (int, error) {
	off, ok := lineStartOffset(d.root, line)
	if !ok {
		return 0, ErrLineOutOfRange
	}
	return off, nil
}

// LineEndOffset returns the byte offset where line ends, excluding its
// terminating newline if any.
func (d Document) LineEndOffset(line int) (int, error) {
	off, ok := lineEndOffset(d.root, line)
	if !ok {
		return 0, ErrLineOutOfRange
	}
	return off, nil
}

// LineText returns the text of line, excluding its terminating newline.
func (d Document) LineText(line int) (string, error) {
	s, ok := lineText(d.root, line)
	if !ok {
		return "", ErrLineOutOfRange
	}
	return s, nil
}

// OffsetToPoint converts an absolute byte offset to a line/column Point.
func (d Document) OffsetToPoint(offset int) (Point, error) {
	if offset < 0 || offset > d.Len() {
		return Point{}, ErrOffsetOutOfRange
	}
	return offsetToPoint(d.root, offset), nil
}

// PointToOffset converts a line/column Point back to an absolute byte
// offset, clamping the column to the line's length.
func (d Document) PointToOffset(pt Point) (int, error) {
	off, ok := pointToOffset(d.root, pt)
	if !ok {
		return 0, ErrLineOutOfRange
	}
	return off, nil
}
