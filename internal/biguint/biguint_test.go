package biguint

import "testing"

func TestZeroIsCanonical(t *testing.T) {
	if !Zero.IsZero() {
		t.Fatal("Zero.IsZero() = false")
	}
	if Zero.Len() != 0 {
		t.Fatalf("Zero.Len() = %d, want 0", Zero.Len())
	}
}

func TestFromUint64(t *testing.T) {
	cases := []uint64{0, 1, 42, 1<<64 - 1}
	for _, v := range cases {
		got := FromUint64(v)
		if v == 0 {
			if !got.IsZero() {
				t.Errorf("FromUint64(0).IsZero() = false")
			}
			continue
		}
		if got.Len() != 1 || got.Digit(0) != Word(v) {
			t.Errorf("FromUint64(%d) = %+v, want single digit %d", v, got, v)
		}
	}
}

func TestFromDigitsTrimsTrailingZeros(t *testing.T) {
	got := fromDigits([]Word{1, 2, 0, 0})
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	if got.Digit(0) != 1 || got.Digit(1) != 2 {
		t.Fatalf("digits = [%d %d], want [1 2]", got.Digit(0), got.Digit(1))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := fromDigits([]Word{1, 2, 3})
	b := a.Clone()
	if !a.Eq(b) {
		t.Fatal("clone not equal to original")
	}
	b.digits[0] = 99
	if a.Digit(0) == 99 {
		t.Fatal("mutating clone affected original")
	}
}

func TestDigitOutOfRange(t *testing.T) {
	u := FromUint64(5)
	if u.Digit(-1) != 0 || u.Digit(5) != 0 {
		t.Fatal("Digit out of range should return 0")
	}
}
