package hostdoc

// lineStartOffset returns the byte offset where line (0-indexed) begins.
// Line 0 always starts at offset 0.
func lineStartOffset(nd *node, line int) (int, bool) {
	if line == 0 {
		return 0, true
	}
	if nd == nil || line > int(nd.Summary().Lines) {
		return 0, false
	}
	return findLineStart(nd, line)
}

// findLineStart assumes line is in [1, nd.Summary().Lines] and returns the
// offset just past the line'th newline.
func findLineStart(nd *node, line int) (int, bool) {
	if nd.isLeaf() {
		off := 0
		remaining := line
		for _, c := range nd.chunks {
			idx := c.newlines()
			if remaining <= idx.Count() {
				return off + idx.Position(remaining-1) + 1, true
			}
			remaining -= idx.Count()
			off += c.Len()
		}
		return 0, false
	}

	leftLines := int(nd.left.Summary().Lines)
	if line <= leftLines {
		return findLineStart(nd.left, line)
	}
	off, ok := findLineStart(nd.right, line-leftLines)
	if !ok {
		return 0, false
	}
	return nd.left.Len() + off, true
}

// lineEndOffset returns the offset of the newline terminating line, or the
// document length if line is the last (possibly unterminated) line.
func lineEndOffset(nd *node, line int) (int, bool) {
	_, ok := lineStartOffset(nd, line)
	if !ok {
		return 0, false
	}
	total := nd.Len()
	totalLines := int(nd.Summary().Lines)
	if line > totalLines {
		return 0, false
	}
	if line == totalLines {
		return total, true
	}
	next, ok := lineStartOffset(nd, line+1)
	if !ok {
		return 0, false
	}
	// next points just past the newline; the line itself ends before it.
	return next - 1, ok
}

// lineText returns the text of line, excluding its terminating newline.
func lineText(nd *node, line int) (string, bool) {
	start, ok := lineStartOffset(nd, line)
	if !ok {
		return "", false
	}
	end, ok := lineEndOffset(nd, line)
	if !ok {
		return "", false
	}
	_, tail := nd.split(start)
	head, _ := tail.split(end - start)
	return head.String(), true
}

// offsetToPoint converts an absolute byte offset into a line/column Point.
func offsetToPoint(nd *node, offset int) Point {
	if offset <= 0 || nd == nil {
		return Point{}
	}
	if offset > nd.Len() {
		offset = nd.Len()
	}

	if nd.isLeaf() {
		off := 0
		var line uint32
		lastNL := -1
		for _, c := range nd.chunks {
			clen := c.Len()
			if off+clen <= offset {
				idx := c.newlines()
				for _, p := range idx.all() {
					line++
					lastNL = off + p
				}
				off += clen
				continue
			}
			idx := c.newlines()
			for _, p := range idx.all() {
				if off+p >= offset {
					break
				}
				line++
				lastNL = off + p
			}
			break
		}
		return Point{Line: line, Column: uint32(offset - lastNL - 1)}
	}

	leftLen := nd.left.Len()
	if offset <= leftLen {
		return offsetToPoint(nd.left, offset)
	}
	rightPt := offsetToPoint(nd.right, offset-leftLen)
	leftLines := uint32(nd.left.Summary().Lines)
	if rightPt.Line == 0 {
		// still on the line that crosses the left/right boundary.
		leftEndCol := offsetToPoint(nd.left, leftLen)
		return Point{Line: leftLines, Column: leftEndCol.Column + rightPt.Column}
	}
	return Point{Line: leftLines + rightPt.Line, Column: rightPt.Column}
}

// pointToOffset converts a Point back into an absolute byte offset.
func pointToOffset(nd *node, pt Point) (int, bool) {
	start, ok := lineStartOffset(nd, int(pt.Line))
	if !ok {
		return 0, false
	}
	end, ok := lineEndOffset(nd, int(pt.Line))
	if !ok {
		return 0, false
	}
	off := start + int(pt.Column)
	if off > end {
		off = end
	}
	return off, true
}
