package biguint

// DivMod divides u by v using Knuth Algorithm D for the general case, with
// fast paths for the single-digit and trivial cases described in spec.md
// §4.5. It returns (DivByZero error) if v is 0.
func (u BigUint) DivMod(v BigUint) (q, r BigUint, err error) {
	if v.IsZero() {
		return Zero, Zero, errDivByZero()
	}
	if len(u.digits) == 1 && len(v.digits) == 1 {
		a, b := u.digits[0], v.digits[0]
		return FromUint64(uint64(a / b)), FromUint64(uint64(a % b)), nil
	}
	if v.Eq(One) {
		return u, Zero, nil
	}
	if u.Eq(v) {
		return One, Zero, nil
	}
	cmp := u.Cmp(v)
	if u.IsZero() || cmp < 0 {
		return Zero, u, nil
	}
	if len(v.digits) == 1 {
		qd, rem := singleDivMod(u.digits, v.digits[0])
		return fromDigits(qd), FromUint64(uint64(rem)), nil
	}
	qd, rd := knuthDivMod(u.digits, v.digits)
	return fromDigits(qd), fromDigits(rd), nil
}

// Div returns u/v (truncating).
func (u BigUint) Div(v BigUint) (BigUint, error) {
	q, _, err := u.DivMod(v)
	return q, err
}

// Mod returns u%v.
func (u BigUint) Mod(v BigUint) (BigUint, error) {
	_, r, err := u.DivMod(v)
	return r, err
}

// singleDivMod divides the multi-digit dividend by the single-digit divisor
// n, sweeping MSW to LSW.
func singleDivMod(dividend []Word, n Word) (q []Word, r Word) {
	q = make([]Word, len(dividend))
	var rem Word
	for i := len(dividend) - 1; i >= 0; i-- {
		q[i], rem = div2by1(rem, dividend[i], n)
	}
	return q, rem
}

// knuthDivMod implements Knuth's Algorithm D for a divisor of two or more
// digits. It requires len(uDigits) >= len(vDigits) >= 2 and both canonical
// (non-zero most-significant digit).
func knuthDivMod(uDigits, vDigits []Word) (q, r []Word) {
	d := uint(wordBits - bitLen(vDigits[len(vDigits)-1]))

	v := shiftLeftBits(uDigits, d) // dividend; may grow by one word
	wFull := shiftLeftBits(vDigits, d)
	w := wFull[:len(vDigits)] // divisor shift never overflows its width
	n := len(w)

	if v[len(v)-1] >= w[n-1] {
		v = append(v, 0)
	}
	vSize := len(v)
	v = append(v, 0)
	k := vSize - n // m in spec.md's notation

	q = make([]Word, k+1)

	wm1 := w[n-1]
	wm2 := w[n-2]

	for kk := k; kk >= 0; kk-- {
		// div2by1 requires its high word to be strictly less than the
		// divisor. That invariant can fail in exactly one case: the
		// running remainder's leading word equals wm1. There the true
		// quotient digit saturates at the largest representable Word, so
		// it's handled directly instead of going through div2by1.
		var qhat, rhat Word
		var rhatOverflowed bool
		if v[kk+n] == wm1 {
			qhat = ^Word(0)
			var carry Word
			rhat, carry = addCarry(v[kk+n-1], wm1, 0)
			rhatOverflowed = carry != 0
		} else {
			qhat, rhat = div2by1(v[kk+n], v[kk+n-1], wm1)
		}
		if !rhatOverflowed {
			mulHi, mulLo := mulWide(qhat, wm2)
			for mulHi > rhat || (mulHi == rhat && mulLo > v[kk+n-2]) {
				qhat--
				var carry Word
				rhat, carry = addCarry(rhat, wm1, 0)
				if carry != 0 {
					break
				}
				mulHi, mulLo = mulWide(qhat, wm2)
			}
		}

		var mulCarry, borrow Word
		for i := 0; i < n; i++ {
			hi, lo := muladdWide(w[i], qhat, 0, mulCarry)
			mulCarry = hi
			v[kk+i], borrow = subBorrow(v[kk+i], lo, borrow)
		}
		v[kk+n], borrow = subBorrow(v[kk+n], mulCarry, borrow)

		if borrow != 0 {
			qhat--
			var carry Word
			for i := 0; i < n; i++ {
				v[kk+i], carry = addCarry(v[kk+i], w[i], carry)
			}
			v[kk+n], _ = addCarry(v[kk+n], 0, carry)
		}

		q[kk] = qhat
	}

	rWords := make([]Word, n)
	copy(rWords, v[:n])
	r = shiftRightBits(rWords, d)
	return q, r
}

// shiftLeftBits shifts digits left by d < wordBits bits (no word-level
// shift), always appending one extra word to hold any carry-out (which may
// be 0). It does not trim.
func shiftLeftBits(digits []Word, d uint) []Word {
	out := make([]Word, len(digits)+1)
	if d == 0 {
		copy(out, digits)
		return out
	}
	var carry Word
	for i, w := range digits {
		out[i] = (w << d) | carry
		carry = w >> (wordBits - d)
	}
	out[len(digits)] = carry
	return out
}

// shiftRightBits shifts digits right by d < wordBits bits (no word-level
// shift). It does not trim.
func shiftRightBits(digits []Word, d uint) []Word {
	out := make([]Word, len(digits))
	if d == 0 {
		copy(out, digits)
		return out
	}
	for i := range digits {
		lo := digits[i] >> d
		var hi Word
		if i+1 < len(digits) {
			hi = digits[i+1] << (wordBits - d)
		}
		out[i] = lo | hi
	}
	return out
}
