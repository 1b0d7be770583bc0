package adapter

import "testing"

func TestBuildBlockRange(t *testing.T) {
	a, err := New("abc\ndef\nghi")
	if err != nil {
		t.Fatal(err)
	}
	groups, err := a.BuildBlockRange(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abc\n", "def\n", "ghi"}
	for i, w := range want {
		g, err := a.rope.GetGroup(i)
		if err != nil {
			t.Fatal(err)
		}
		if groups[i].CharLen() != len(w) || g.CharLen() != len(w) {
			t.Errorf("line %d charlen = %d, want %d", i, groups[i].CharLen(), len(w))
		}
	}
}

func TestApplyEditInsertLine(t *testing.T) {
	a, err := New("one\ntwo\nthree")
	if err != nil {
		t.Fatal(err)
	}

	charPos, err := a.LineToChar(1)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.ApplyEdit(charPos, 0, "inserted\n"); err != nil {
		t.Fatal(err)
	}

	if a.TotalLines() != 4 {
		t.Fatalf("TotalLines() = %d, want 4", a.TotalLines())
	}
	if got := a.Document().String(); got != "one\ninserted\ntwo\nthree" {
		t.Fatalf("Document().String() = %q", got)
	}
}

func TestCoordinateConversions(t *testing.T) {
	a, err := New("ab\nαβ\nxyz")
	if err != nil {
		t.Fatal(err)
	}

	line, err := a.CharToLine(4) // inside "αβ\n" (chars 3,4 are α,β)
	if err != nil {
		t.Fatal(err)
	}
	if line != 1 {
		t.Errorf("CharToLine(4) = %d, want 1", line)
	}

	lineStartChar, err := a.LineToChar(2)
	if err != nil {
		t.Fatal(err)
	}
	if lineStartChar != 6 {
		t.Errorf("LineToChar(2) = %d, want 6", lineStartChar)
	}
}

func TestTotals(t *testing.T) {
	a, err := New("a\nbb\nccc")
	if err != nil {
		t.Fatal(err)
	}
	if a.TotalLines() != 3 {
		t.Errorf("TotalLines() = %d, want 3", a.TotalLines())
	}
	if a.TotalChars() != a.Document().Len() {
		// ASCII-only text: char count equals byte count.
		t.Errorf("TotalChars() = %d, want %d", a.TotalChars(), a.Document().Len())
	}
}
