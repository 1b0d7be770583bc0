package lenpair

import "testing"

func TestNew(t *testing.T) {
	p := New(15, 25)
	if p.CharLen != 15 || p.ByteLen != 25 {
		t.Errorf("New(15, 25) = %+v", p)
	}
}

func TestAt(t *testing.T) {
	p := New(15, 25)

	if v, err := p.At(Char); err != nil || v != 15 {
		t.Errorf("At(Char) = %d, %v", v, err)
	}
	if v, err := p.At(Byte); err != nil || v != 25 {
		t.Errorf("At(Byte) = %d, %v", v, err)
	}
	if _, err := p.At(2); err != ErrInvalidIndex {
		t.Errorf("At(2) err = %v, want ErrInvalidIndex", err)
	}
}

func TestAdd(t *testing.T) {
	result := New(10, 20).Add(New(5, 8))
	if result != New(15, 28) {
		t.Errorf("Add = %+v, want {15 28}", result)
	}
}

func TestSub(t *testing.T) {
	result := New(10, 20).Sub(New(5, 8))
	if result != New(5, 12) {
		t.Errorf("Sub = %+v, want {5 12}", result)
	}
}

func TestZeroIdentity(t *testing.T) {
	p := New(3, 7)
	if p.Add(Zero) != p {
		t.Error("Add(Zero) should be identity")
	}
	if !Zero.IsZero() {
		t.Error("Zero.IsZero() should be true")
	}
	if New(0, 1).IsZero() {
		t.Error("(0,1) is not zero")
	}
}

func TestLessEq(t *testing.T) {
	a := New(1, 1)
	b := New(2, 2)
	if !a.LessEq(b) {
		t.Error("a should be <= b")
	}
	if !a.LessEq(a) {
		t.Error("a should be <= a")
	}
	if b.LessEq(a) {
		t.Error("b should not be <= a")
	}
}
