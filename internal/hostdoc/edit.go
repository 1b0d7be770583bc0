package hostdoc

// Range is a half-open byte range [Start, End) within a Document.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// Edit describes a single replace operation: the bytes in Range are
// removed and replaced with NewText.
type Edit struct {
	Range   Range
	NewText string
}

// Apply applies e to d and returns the resulting Document.
func (e Edit) Apply(d Document) (Document, error) {
	return d.Replace(e.Range.Start, e.Range.End, e.NewText)
}

// NewInsert returns an Edit that inserts text at offset without removing
// anything.
func NewInsert(offset int, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

// NewDelete returns an Edit that removes [start, end) without inserting
// anything.
func NewDelete(start, end int) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}
