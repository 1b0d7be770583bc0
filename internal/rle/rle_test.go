package rle

import (
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"
)

func TestConstructEmpty(t *testing.T) {
	g, err := Construct("")
	if err != nil {
		t.Fatal(err)
	}
	if g.CharLen() != 0 || g.ByteLen() != 0 || len(g.Runs()) != 0 {
		t.Fatalf("Construct(\"\") = %+v, want empty", g)
	}
}

func TestConstructInvalidEncoding(t *testing.T) {
	_, err := Construct(string([]byte{0xff, 0xfe}))
	if err != ErrInvalidEncoding {
		t.Fatalf("err = %v, want ErrInvalidEncoding", err)
	}
}

func TestConstructCoalescesRuns(t *testing.T) {
	g, err := Construct("abcé") // three 1-byte runes then one 2-byte rune
	if err != nil {
		t.Fatal(err)
	}
	runs := g.Runs()
	if len(runs) != 2 {
		t.Fatalf("Runs() = %v, want 2 coalesced runs", runs)
	}
	if runs[0] != (Run{Width: 1, Count: 3}) {
		t.Errorf("runs[0] = %+v, want {1,3}", runs[0])
	}
	if runs[1] != (Run{Width: 2, Count: 1}) {
		t.Errorf("runs[1] = %+v, want {2,1}", runs[1])
	}
}

// Property 5: RLE faithfulness against utf8 package ground truth.
func TestFaithfulness(t *testing.T) {
	samples := []string{
		"",
		"hello",
		"aé中\U0001f600",
		strings.Repeat("x", 100),
		"日本語のテキスト",
		"mixed a é 中 😀 text",
	}
	for _, s := range samples {
		g, err := Construct(s)
		if err != nil {
			t.Fatalf("Construct(%q): %v", s, err)
		}
		if g.ByteLen() != len(s) {
			t.Errorf("Construct(%q).ByteLen() = %d, want %d", s, g.ByteLen(), len(s))
		}
		if g.CharLen() != utf8.RuneCountInString(s) {
			t.Errorf("Construct(%q).CharLen() = %d, want %d", s, g.CharLen(), utf8.RuneCountInString(s))
		}

		for c := 0; c <= g.CharLen(); c++ {
			b, err := g.CharToByte(c)
			if err != nil {
				t.Fatalf("CharToByte(%d): %v", c, err)
			}
			back, err := g.ByteToChar(b)
			if err != nil {
				t.Fatalf("ByteToChar(%d): %v", b, err)
			}
			if back != c {
				t.Errorf("ByteToChar(CharToByte(%d)) = %d, want %d", c, back, c)
			}
		}
	}
}

func TestByteToCharBoundaryPolicy(t *testing.T) {
	g := MustConstruct("aé") // 'a' (1 byte) then 'é' (2 bytes)
	// byte 1 is exactly the boundary between the two runs.
	c, err := g.ByteToChar(1)
	if err != nil || c != 1 {
		t.Fatalf("ByteToChar(1) = %d, %v, want 1", c, err)
	}
	// byte 0 and byte 3 (full length) are the edges.
	if c, err := g.ByteToChar(0); err != nil || c != 0 {
		t.Fatalf("ByteToChar(0) = %d, %v, want 0", c, err)
	}
	if c, err := g.ByteToChar(3); err != nil || c != 2 {
		t.Fatalf("ByteToChar(3) = %d, %v, want 2", c, err)
	}
}

func TestOutOfRange(t *testing.T) {
	g := MustConstruct("abc")
	if _, err := g.ByteToChar(-1); err != ErrOutOfRange {
		t.Errorf("ByteToChar(-1) err = %v, want ErrOutOfRange", err)
	}
	if _, err := g.ByteToChar(4); err != ErrOutOfRange {
		t.Errorf("ByteToChar(4) err = %v, want ErrOutOfRange", err)
	}
	if _, err := g.CharToByte(-1); err != ErrOutOfRange {
		t.Errorf("CharToByte(-1) err = %v, want ErrOutOfRange", err)
	}
	if _, err := g.CharToByte(4); err != ErrOutOfRange {
		t.Errorf("CharToByte(4) err = %v, want ErrOutOfRange", err)
	}
}

func FuzzConstructRoundTrip(f *testing.F) {
	f.Add("hello")
	f.Add("aé中\U0001f600")
	f.Add("")
	f.Fuzz(func(t *testing.T, s string) {
		g, err := Construct(s)
		if err != nil {
			if !utf8.ValidString(s) {
				return
			}
			t.Fatalf("Construct(%q) failed on valid UTF-8: %v", s, err)
		}
		if g.ByteLen() != len(s) {
			t.Fatalf("ByteLen mismatch for %q", s)
		}
		for c := 0; c <= g.CharLen(); c++ {
			if _, err := g.CharToByte(c); err != nil {
				t.Fatalf("CharToByte(%d) on %q: %v", c, s, err)
			}
		}
	})
}

func TestQuickRoundTrip(t *testing.T) {
	f := func(s string) bool {
		g, err := Construct(s)
		if err != nil {
			return true
		}
		for c := 0; c <= g.CharLen(); c++ {
			b, err := g.CharToByte(c)
			if err != nil {
				return false
			}
			back, err := g.ByteToChar(b)
			if err != nil || back != c {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}
