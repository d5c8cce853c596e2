package basex

import "github.com/Kronuz/base-x-go/internal/biguint"

// Decode parses an encoded string back to a BigUint, verifying and
// consuming a trailing checksum character when checksum is true. Ignored
// characters (per the codec's construction) are skipped and contribute
// nothing to the decoded value, per spec.md's explicit SKIP-sentinel
// design.
func (c *Codec) Decode(s string, checksum bool) (biguint.BigUint, error) {
	n := len(s)
	sum := 0
	if checksum {
		if n == 0 {
			return biguint.Zero, errInvalidChar(0, 0)
		}
		sz := n - 1
		sum ^= (sz / c.size) % c.size
		sum ^= sz % c.size
		n--
	}

	bp := 0
	if c.blockSize > 0 {
		bp = (n * c.blockSize) % 8
	}

	powerOfTwo := c.baseBits > 0
	base := biguint.FromUint64(uint64(c.size))
	acc := biguint.Zero
	for i := 0; i < n; i++ {
		ch := s[i]
		d := c.ord[ch]
		if d == ordSkip {
			continue
		}
		if d == ordInvalid || int(d) >= c.size {
			return biguint.Zero, errInvalidChar(ch, i)
		}
		sum ^= int(d)
		digit := biguint.FromUint64(uint64(d))
		if powerOfTwo {
			acc = acc.Lsh(uint(c.baseBits)).Or(digit)
		} else {
			acc = acc.Mul(base).Add(digit)
		}
	}

	acc = acc.Rsh(uint(bp))

	if checksum {
		ch := s[n]
		d := c.ord[ch]
		if d == ordInvalid || int(d) >= c.size {
			return biguint.Zero, errInvalidChar(ch, n)
		}
		if sum%c.size != int(d) {
			return biguint.Zero, errBadChecksum()
		}
	}

	return acc, nil
}

// DecodeBytes decodes s and returns its base-256 big-endian byte
// representation.
func (c *Codec) DecodeBytes(s string, checksum bool) ([]byte, error) {
	n, err := c.Decode(s, checksum)
	if err != nil {
		return nil, err
	}
	return n.Bytes(), nil
}

// IsValid reports whether s decodes without error under this codec,
// including checksum verification when requested.
func (c *Codec) IsValid(s string, checksum bool) bool {
	_, err := c.Decode(s, checksum)
	return err == nil
}
