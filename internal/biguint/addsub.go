package biguint

// Add returns u+v.
func (u BigUint) Add(v BigUint) BigUint {
	return fromDigits(addDigits(u.digits, v.digits))
}

// addDigits returns the canonical-pending sum a+b as a freshly allocated
// slice (never aliasing a or b).
func addDigits(a, b []Word) []Word {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]Word, len(a)+1)
	var carry Word
	for i, d := range b {
		out[i], carry = addCarry(a[i], d, carry)
	}
	for i := len(b); i < len(a); i++ {
		out[i], carry = addCarry(a[i], 0, carry)
	}
	out[len(a)] = carry
	return out
}

// addShifted adds src, interpreted as starting at word offset `shift` in the
// same little-endian digit stream as dst, into dst and returns the
// (possibly reallocated, possibly longer) result. This lets callers such as
// Karatsuba's lopsided accumulation and middle-term merge add an
// intermediate product directly at an offset without first materializing a
// zero-padded copy of src.
func addShifted(dst []Word, src []Word, shift int) []Word {
	need := shift + len(src) + 1
	if need > len(dst) {
		grown := make([]Word, need)
		copy(grown, dst)
		dst = grown
	}
	var carry Word
	for i, d := range src {
		dst[shift+i], carry = addCarry(dst[shift+i], d, carry)
	}
	for i := shift + len(src); carry != 0 && i < len(dst); i++ {
		dst[i], carry = addCarry(dst[i], 0, carry)
	}
	if carry != 0 {
		dst = append(dst, carry)
	}
	return dst
}

// Sub returns u-v and whether the subtraction underflowed (u < v). When it
// underflows, the returned value is the two's-complement wraparound modulo
// 2^(wordBits*len), matching spec.md's "carry" model, but callers should
// prefer the explicit borrowed return over BigUint.Carry() since it cannot
// be misread after a later mutation.
func (u BigUint) Sub(v BigUint) (BigUint, bool) {
	diff, borrowed := subDigits(u.digits, v.digits)
	result := fromDigits(diff)
	result.carry = borrowed
	return result, borrowed
}

// SubBorrow is an alias for Sub kept for API parity with spec.md's
// sub_borrow-flavored naming; both return the same pair.
func (u BigUint) SubBorrow(v BigUint) (BigUint, bool) {
	return u.Sub(v)
}

func subDigits(a, b []Word) ([]Word, bool) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]Word, n)
	var borrow Word
	for i := 0; i < n; i++ {
		var av, bv Word
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i], borrow = subBorrow(av, bv, borrow)
	}
	return out, borrow != 0
}

// Inc returns u+1.
func (u BigUint) Inc() BigUint { return u.Add(One) }

// Dec returns u-1 and whether it underflowed (u was 0).
func (u BigUint) Dec() (BigUint, bool) { return u.Sub(One) }

// Neg returns the two's-complement negation of u within u's current
// bit-length (the width needed to represent u, rounded up to a whole word),
// i.e. 0-u wrapped to that width. Per spec.md's Non-goals this is not a
// signed value; it exists only to satisfy the unary "-" surface of §6.
func (u BigUint) Neg() BigUint {
	if u.IsZero() {
		return Zero
	}
	width := len(u.digits)
	inv := make([]Word, width)
	for i, d := range u.digits {
		inv[i] = ^d
	}
	neg := addDigits(inv, []Word{1})
	return fromDigits(neg[:width])
}
