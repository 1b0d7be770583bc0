package hostdoc

import "strings"

// Builder assembles a Document incrementally: text accumulates in a
// strings.Builder and Build turns it into a Document with one FromString
// call.
type Builder struct {
	buf strings.Builder
}

// WriteString appends s to the builder.
func (b *Builder) WriteString(s string) (int, error) {
	return b.buf.WriteString(s)
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return b.buf.Len() }

// Build finalizes the builder into a Document.
func (b *Builder) Build() Document {
	return FromString(b.buf.String())
}

// FromLines joins lines with '\n' and builds a Document from the result.
// A trailing newline is added after every line, matching how a text file
// with n lines is conventionally stored.
func FromLines(lines []string) Document {
	var b Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.Build()
}
