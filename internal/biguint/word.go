package biguint

import "math/bits"

// Word is the machine word used as a single digit of a BigUint, little-endian
// ordered within the digit slice. HalfWord is a half-width digit type; the
// radix I/O bit-windowing in radix.go reads whole Words, not HalfWords.
type Word = uint64
type HalfWord = uint32

const (
	wordBits     = 64
	halfWordBits = wordBits / 2
)

// addCarry returns x+y+cin as (sum, carry-out), wrapping modulo 2^wordBits.
func addCarry(x, y, cin Word) (sum, cout Word) {
	s, c := bits.Add64(x, y, cin)
	return s, c
}

// subBorrow returns x-y-bin as (diff, borrow-out), wrapping modulo 2^wordBits.
// bout is 1 iff x < y+bin.
func subBorrow(x, y, bin Word) (diff, bout Word) {
	d, b := bits.Sub64(x, y, bin)
	return d, b
}

// mulWide returns the full double-word product x*y as (hi, lo).
func mulWide(x, y Word) (hi, lo Word) {
	return bits.Mul64(x, y)
}

// muladdWide returns x*y+a+c as (hi, lo). a and c are each bounded by
// 2^wordBits-1, so a+c can never carry the product into a third word.
func muladdWide(x, y, a, c Word) (hi, lo Word) {
	hi, lo = bits.Mul64(x, y)
	var carry Word
	lo, carry = bits.Add64(lo, a, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	lo, carry = bits.Add64(lo, c, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return hi, lo
}

// div2by1 divides the double-word (hi, lo) by y, requiring hi < y, and
// returns the quotient and remainder.
func div2by1(hi, lo, y Word) (q, r Word) {
	return bits.Div64(hi, lo, y)
}

// bitLen returns the position of the highest set bit of x plus one, or 0 if
// x is 0.
func bitLen(x Word) int {
	return bits.Len64(x)
}
