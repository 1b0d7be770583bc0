package hostdoc

import "errors"

var (
	// ErrOffsetOutOfRange is returned when a byte offset falls outside
	// [0, Len()].
	ErrOffsetOutOfRange = errors.New("hostdoc: offset out of range")

	// ErrLineOutOfRange is returned when a line index is greater than
	// the document's newline count. Index LineCount() is accepted when
	// the document is empty or ends in a newline: it names the empty
	// line after the last newline.
	ErrLineOutOfRange = errors.New("hostdoc: line out of range")

	// ErrRangeInvalid is returned when a byte range has start > end or
	// either endpoint outside the document.
	ErrRangeInvalid = errors.New("hostdoc: invalid byte range")
)
