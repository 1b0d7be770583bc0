// Package hostdoc is a small immutable byte-rope used to stand in for the
// "host document widget" that a real embedding (a GUI text editor, an LSP
// server, a terminal pager) would already own. The sumrope package never
// reads file bytes itself; it only consumes RLEGroups that someone else
// built from line text. hostdoc exists so the adapter and the CLI in this
// repository have a concrete, testable stand-in for that someone else.
//
// A Document is a binary tree of text chunks with aggregated byte/line
// metrics cached at every node, used for insert, delete, line lookup, and
// byte<->line/column conversion. FromString puts all of its text's chunks
// in one leaf, so lookups in such a leaf scan its chunks in order; inserts
// and concatenations add branches above it. Operations are immutable:
// every mutator returns a new Document and leaves the receiver untouched,
// which makes it cheap to keep a previous version around while computing
// a diff against it.
package hostdoc
