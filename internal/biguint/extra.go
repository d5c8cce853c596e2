package biguint

import (
	"fmt"
	"io"
	"math/bits"
)

// PopCount returns the number of set bits in u.
func (u BigUint) PopCount() int {
	n := 0
	for _, d := range u.digits {
		n += bits.OnesCount64(uint64(d))
	}
	return n
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm, built directly on DivMod rather than a dedicated kernel.
func GCD(a, b BigUint) BigUint {
	for !b.IsZero() {
		r, _ := a.Mod(b)
		a, b = b, r
	}
	return a
}

// Format implements fmt.Formatter, supporting %b, %o, %d, %x and the default
// %v/%s verbs (all rendered via Text/String).
func (u BigUint) Format(f fmt.State, verb rune) {
	var s string
	var err error
	switch verb {
	case 'b':
		s, err = u.Text(2)
	case 'o':
		s, err = u.Text(8)
	case 'x':
		s, err = u.Text(16)
	case 'd', 'v', 's':
		s = u.String()
	default:
		fmt.Fprintf(f, "%%!%c(biguint.BigUint=%s)", verb, u.String())
		return
	}
	if err != nil {
		fmt.Fprintf(f, "%%!%c(biguint.BigUint=%s)", verb, err)
		return
	}
	io.WriteString(f, s)
}

// Scan implements fmt.Scanner, reading a base-10 literal by default, or
// base 2/8/16 for the %b/%o/%x verbs.
func (u *BigUint) Scan(state fmt.ScanState, verb rune) error {
	base := 10
	switch verb {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x':
		base = 16
	}
	tok, err := state.Token(true, func(r rune) bool {
		_, ok := digitValue(byte(r))
		return ok && r < 128
	})
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return fmt.Errorf("biguint: Scan: no digits")
	}
	v, perr := ParseText(string(tok), base)
	if perr != nil {
		return perr
	}
	*u = v
	return nil
}
