package biguint

import (
	"math/big"
	"testing"
)

// FuzzAddAgainstBigInt cross-checks Add against math/big.Int.Add for
// arbitrary byte-string operands.
func FuzzAddAgainstBigInt(f *testing.F) {
	f.Add([]byte{}, []byte{1})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff}, []byte{0x01})
	f.Add(make([]byte, 256), make([]byte, 256))

	f.Fuzz(func(t *testing.T, ab, bb []byte) {
		a, b := SetBytes(ab), SetBytes(bb)
		got := a.Add(b)
		want := new(big.Int).Add(toBig(a), toBig(b))
		if toBig(got).Cmp(want) != 0 {
			t.Errorf("Add mismatch: got %s, want %s", toBig(got), want)
		}
	})
}

// FuzzMulAgainstBigInt cross-checks Mul (schoolbook and both Karatsuba
// paths, depending on operand size) against math/big.Int.Mul.
func FuzzMulAgainstBigInt(f *testing.F) {
	f.Add([]byte{}, []byte{1})
	f.Add(make([]byte, 17), make([]byte, 17))
	f.Add(make([]byte, 200), make([]byte, 8))
	f.Add(make([]byte, 4096), make([]byte, 4096))

	f.Fuzz(func(t *testing.T, ab, bb []byte) {
		if len(ab) > 8192 || len(bb) > 8192 {
			t.Skip()
		}
		a, b := SetBytes(ab), SetBytes(bb)
		got := a.Mul(b)
		want := new(big.Int).Mul(toBig(a), toBig(b))
		if toBig(got).Cmp(want) != 0 {
			t.Errorf("Mul mismatch for %d-byte * %d-byte operands", len(ab), len(bb))
		}
	})
}

// FuzzDivModAgainstBigInt cross-checks DivMod against math/big.Int.QuoRem.
func FuzzDivModAgainstBigInt(f *testing.F) {
	f.Add([]byte{10}, []byte{3})
	f.Add(make([]byte, 300), []byte{7})
	f.Add(make([]byte, 300), make([]byte, 40))

	f.Fuzz(func(t *testing.T, ab, bb []byte) {
		a, b := SetBytes(ab), SetBytes(bb)
		if b.IsZero() {
			_, _, err := a.DivMod(b)
			if err == nil {
				t.Fatal("DivMod by zero should error")
			}
			return
		}
		q, r, err := a.DivMod(b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantQ, wantR := new(big.Int).QuoRem(toBig(a), toBig(b), new(big.Int))
		if toBig(q).Cmp(wantQ) != 0 {
			t.Errorf("quotient mismatch: got %s, want %s", toBig(q), wantQ)
		}
		if toBig(r).Cmp(wantR) != 0 {
			t.Errorf("remainder mismatch: got %s, want %s", toBig(r), wantR)
		}
	})
}

// FuzzBytesRoundTrip verifies Bytes/SetBytes round-trip for arbitrary input.
func FuzzBytesRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00, 0x01})
	f.Add(make([]byte, 1000))

	f.Fuzz(func(t *testing.T, b []byte) {
		u := SetBytes(b)
		back := SetBytes(u.Bytes())
		if !back.Eq(u) {
			t.Errorf("Bytes/SetBytes round trip failed")
		}
	})
}
