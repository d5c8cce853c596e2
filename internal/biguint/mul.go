package biguint

import "golang.org/x/sync/errgroup"

// karatsubaCutoff is the operand size, in digits, below which Karatsuba
// recursion bottoms out into schoolbook multiplication. 1024/wordBits
// matches the source's `karatsuba_cutoff = 1024 / digit_bits`.
const karatsubaCutoff = 1024 / wordBits

// ParallelKaratsubaThreshold is the split size, in digits (half the larger
// operand, rounded up), at or above which the symmetric Karatsuba split
// computes its two independent recursive products
// (AC and BD) concurrently via errgroup instead of sequentially. Mirrors the
// shape of the teacher's DefaultParallelThreshold, but tuned in digits
// rather than bits since BigUint recursion naturally operates on digit
// counts. It is a package variable rather than a constant so a host
// process can tune it once at startup (see internal/config); it must not
// be changed while operations are in flight.
var ParallelKaratsubaThreshold = 256

// SetParallelKaratsubaThreshold overrides ParallelKaratsubaThreshold. n <= 0
// disables parallel Karatsuba entirely. Callers must do this once during
// startup, before any concurrent use of Mul.
func SetParallelKaratsubaThreshold(n int) {
	if n <= 0 {
		n = int(^uint(0) >> 1) // effectively disables the parallel path
	}
	ParallelKaratsubaThreshold = n
}

// Mul returns u*v.
func (u BigUint) Mul(v BigUint) BigUint {
	if u.IsZero() || v.IsZero() {
		return Zero
	}
	if u.Eq(One) {
		return v
	}
	if v.Eq(One) {
		return u
	}
	return fromDigits(mulDigits(u.digits, v.digits))
}

func mulDigits(a, b []Word) []Word {
	return karatsuba(a, b, karatsubaCutoff)
}

// mulSingle multiplies the multi-digit operand b by the single digit m.
func mulSingle(b []Word, m Word) []Word {
	out := make([]Word, len(b)+1)
	var carry Word
	for i, d := range b {
		hi, lo := muladdWide(d, m, 0, carry)
		out[i] = lo
		carry = hi
	}
	out[len(b)] = carry
	return out
}

// schoolbook multiplies a (the shorter operand) into b using the general
// O(n*m) algorithm, skipping zero digits of a.
func schoolbook(a, b []Word) []Word {
	out := make([]Word, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry Word
		for j, bj := range b {
			hi, lo := muladdWide(ai, bj, out[i+j], carry)
			out[i+j] = lo
			carry = hi
		}
		k := i + len(b)
		for carry != 0 {
			s, c := addCarry(out[k], 0, carry)
			out[k] = s
			carry = c
			k++
		}
	}
	return out
}

// karatsuba multiplies a and b, selecting single-digit schoolbook, general
// schoolbook, lopsided Karatsuba, or symmetric Karatsuba by size.
func karatsuba(a, b []Word, cutoff int) []Word {
	lhs, rhs := a, b
	if len(lhs) > len(rhs) {
		lhs, rhs = rhs, lhs
	}
	if len(lhs) == 0 {
		return nil
	}
	if len(lhs) == 1 {
		return mulSingle(rhs, lhs[0])
	}
	if len(lhs) <= cutoff {
		return schoolbook(lhs, rhs)
	}
	if 2*len(lhs) <= len(rhs) {
		return karatsubaLopsided(lhs, rhs, cutoff)
	}
	return karatsubaSymmetric(lhs, rhs, cutoff)
}

// karatsubaLopsided handles the case where rhs has at least twice the
// digits of lhs: rhs is sliced into windows of len(lhs) digits, each window
// multiplied by lhs via recursive Karatsuba, and accumulated at its offset.
func karatsubaLopsided(lhs, rhs []Word, cutoff int) []Word {
	var result []Word
	offset := 0
	remaining := rhs
	for len(remaining) > 0 {
		sliceLen := len(lhs)
		if sliceLen > len(remaining) {
			sliceLen = len(remaining)
		}
		slice := remaining[:sliceLen]
		p := karatsuba(lhs, slice, cutoff)
		result = addShifted(result, p, offset)
		offset += sliceLen
		remaining = remaining[sliceLen:]
	}
	return result
}

// karatsubaSymmetric splits lhs = A*β+B and rhs = C*β+D at the midpoint of
// the larger operand (rhs, by construction) and assembles
// AC*β² + (AC+BD-(A+B)(C+D) negated, i.e. (A+B)(C+D)-AC-BD)*β + BD.
func karatsubaSymmetric(lhs, rhs []Word, cutoff int) []Word {
	shift := (len(rhs) + 1) / 2

	lo, hi := splitAt(lhs, shift)
	a, b := hi, lo // A = hi, B = lo
	loR, hiR := splitAt(rhs, shift)
	c, d := hiR, loR // C = hi, D = lo

	var ac, bd []Word
	if shift >= ParallelKaratsubaThreshold {
		var g errgroup.Group
		g.Go(func() error {
			ac = karatsuba(a, c, cutoff)
			return nil
		})
		g.Go(func() error {
			bd = karatsuba(b, d, cutoff)
			return nil
		})
		_ = g.Wait() // neither goroutine can return an error
	} else {
		ac = karatsuba(a, c, cutoff)
		bd = karatsuba(b, d, cutoff)
	}

	sumAB := trim(addDigits(a, b))
	sumCD := trim(addDigits(c, d))
	mid := karatsuba(sumAB, sumCD, cutoff)
	mid, _ = subDigits(mid, ac)
	mid, _ = subDigits(mid, bd)

	var result []Word
	result = addShifted(result, bd, 0)
	result = addShifted(result, mid, shift)
	result = addShifted(result, ac, shift*2)
	return result
}

// splitAt returns the low (below n digits) and high (n digits and above)
// windows of x as zero-copy sub-slices; both are read-only views into x's
// backing array and must not outlive it, and must never be mutated by a
// recursive call.
func splitAt(x []Word, n int) (lo, hi []Word) {
	if n > len(x) {
		n = len(x)
	}
	return x[:n], x[n:]
}
