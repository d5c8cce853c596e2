package basex

import "github.com/Kronuz/base-x-go/internal/biguint"

// Encode renders n as a string in this codec's alphabet, optionally
// appending an XOR checksum character. n=0 encodes as a single chr(0)
// character; per spec.md's Design Notes this still carries a checksum
// character when requested, unlike the source material's zero-length
// special case.
func (c *Codec) Encode(n biguint.BigUint, checksum bool) string {
	bp := 0
	if c.blockSize > 0 {
		rounded := (n.Bits() + 7) &^ 7
		if inner := rounded % c.blockSize; inner != 0 {
			bp = c.blockSize - inner
		}
	}
	shifted := n
	if bp > 0 {
		shifted = n.Lsh(uint(bp))
	}

	digits := shifted.RadixDigits(uint32(c.size))
	if c.blockSize > 0 {
		// Left-pad with zero digits so the digit count covers every
		// byte-aligned bit plus the pre-shift; Decode derives its
		// post-shift from that count.
		if want := ((n.Bits()+7)&^7 + bp) / c.blockSize; len(digits) < want {
			padded := make([]byte, want)
			copy(padded[want-len(digits):], digits)
			digits = padded
		}
	}
	out := make([]byte, len(digits))
	sum := 0
	for i, d := range digits {
		out[i] = c.chr[d]
		sum ^= int(d)
	}

	if checksum {
		sz := len(out)
		sum ^= (sz / c.size) % c.size
		sum ^= sz % c.size
		// The XOR of digits below a non-power-of-two size can reach past
		// the alphabet, so the checksum digit is the sum reduced mod size.
		out = append(out, c.chr[sum%c.size])
	}
	return string(out)
}

// EncodeBytes treats b as a base-256 big-endian value and encodes it.
func (c *Codec) EncodeBytes(b []byte, checksum bool) string {
	return c.Encode(biguint.SetBytes(b), checksum)
}
