package biguint

import "testing"

func TestBitsAndBitAt(t *testing.T) {
	u := FromUint64(0b1011)
	if u.Bits() != 4 {
		t.Fatalf("Bits() = %d, want 4", u.Bits())
	}
	want := []bool{true, true, false, true}
	for i, w := range want {
		if got := u.BitAt(i); got != w {
			t.Errorf("BitAt(%d) = %v, want %v", i, got, w)
		}
	}
	if Zero.Bits() != 0 {
		t.Fatalf("Zero.Bits() = %d, want 0", Zero.Bits())
	}
}

func TestAndOrXor(t *testing.T) {
	a := FromUint64(0b1100)
	b := FromUint64(0b1010)

	if got := a.And(b).Digit(0); got != 0b1000 {
		t.Errorf("And = %b, want 1000", got)
	}
	if got := a.Or(b).Digit(0); got != 0b1110 {
		t.Errorf("Or = %b, want 1110", got)
	}
	if got := a.Xor(b).Digit(0); got != 0b0110 {
		t.Errorf("Xor = %b, want 0110", got)
	}
}

// TestNotMasksToBitLength checks that Not works within the operand's own
// bit length: NOT(101) = 010, which has bit length 2, so NOT(010) = 01.
func TestNotMasksToBitLength(t *testing.T) {
	if !Zero.Not().IsZero() {
		t.Fatal("NOT(0) should be 0")
	}
	u := FromUint64(0b101)
	n := u.Not()
	if n.Digit(0) != 0b010 {
		t.Fatalf("NOT(101) = %b, want 010", n.Digit(0))
	}
	if nn := n.Not(); !nn.Eq(FromUint64(0b1)) {
		t.Fatalf("NOT(NOT(101)) = %v, want 1", nn)
	}
}

func TestLshRshRoundTrip(t *testing.T) {
	u := fromDigits([]Word{0x1, 0x2, 0x3})
	for _, n := range []uint{0, 1, 17, 63, 64, 65, 130} {
		shifted := u.Lsh(n)
		back := shifted.Rsh(n)
		if !back.Eq(u) {
			t.Errorf("Rsh(Lsh(u, %d), %d) = %v, want %v", n, n, back, u)
		}
	}
}

func TestRshBeyondBitLengthIsZero(t *testing.T) {
	u := FromUint64(7)
	if got := u.Rsh(100); !got.IsZero() {
		t.Fatalf("Rsh past bit length = %v, want 0", got)
	}
}

func TestLshZeroStaysZero(t *testing.T) {
	if got := Zero.Lsh(5); !got.IsZero() {
		t.Fatalf("Lsh(0,5) = %v, want 0", got)
	}
}
