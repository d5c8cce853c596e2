package biguint

// BigUint is an arbitrary-precision unsigned integer: a little-endian
// sequence of Word digits. The zero value is the integer 0 (an empty digit
// slice) and is ready to use.
//
// Canonical form: the most-significant digit is non-zero unless the value is
// 0, in which case digits is empty. Every exported operation returns a
// canonical result.
type BigUint struct {
	digits []Word
	// carry records whether the most recent Sub underflowed. It is set only
	// by Sub/SubBorrow and must be read before any other mutource of the
	// value that produced it, since the next operation overwrites it.
	carry bool
}

// Zero is the canonical representation of 0.
var Zero = BigUint{}

// One is the canonical representation of 1.
var One = BigUint{digits: []Word{1}}

// FromUint64 constructs a BigUint from a host unsigned integer.
func FromUint64(v uint64) BigUint {
	if v == 0 {
		return Zero
	}
	return BigUint{digits: []Word{Word(v)}}
}

// FromInt64 constructs a BigUint by reinterpreting the two's-complement bit
// pattern of a host signed integer, per spec.md's "from a host signed
// integer (two's-complement bit pattern reinterpreted)" constructor.
func FromInt64(v int64) BigUint {
	return FromUint64(uint64(v))
}

// fromDigits takes ownership of digits (which must not be referenced by the
// caller afterwards) and returns its canonical form.
func fromDigits(digits []Word) BigUint {
	return BigUint{digits: trim(digits)}
}

// trim returns the slice with trailing (most-significant) zero words
// removed, reusing the backing array.
func trim(digits []Word) []Word {
	n := len(digits)
	for n > 0 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

// IsZero reports whether the value is 0.
func (u BigUint) IsZero() bool {
	return len(u.digits) == 0
}

// Len returns the number of digits in canonical form (0 for the value 0).
func (u BigUint) Len() int {
	return len(u.digits)
}

// Digit returns the digit at index i (0 = least significant), or 0 if i is
// out of range.
func (u BigUint) Digit(i int) Word {
	if i < 0 || i >= len(u.digits) {
		return 0
	}
	return u.digits[i]
}

// Carry reports whether the most recent Sub that produced this value
// underflowed. Per spec.md's Design Notes, prefer the explicit
// (BigUint, borrowed bool) return of Sub/SubBorrow over reading this field;
// it exists for API parity with the source material's carry-flag model.
func (u BigUint) Carry() bool {
	return u.carry
}

// Clone returns a deep copy of u. BigUint is a value type, so ordinary Go
// assignment already deep-copies the header, but the backing digit slice is
// shared until one side mutates through a fresh allocation — Clone forces an
// independent backing array up front, which callers that hand the result to
// code expecting unique ownership (e.g. an in-place accumulator) should use.
func (u BigUint) Clone() BigUint {
	if len(u.digits) == 0 {
		return Zero
	}
	d := make([]Word, len(u.digits))
	copy(d, u.digits)
	return BigUint{digits: d}
}
