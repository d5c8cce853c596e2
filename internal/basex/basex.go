// Package basex implements a configurable positional base-N codec atop
// internal/biguint, parameterized by an alphabet, an ignored-character set,
// and case/padding flags. A Codec is immutable after construction and safe
// to share across goroutines.
package basex

import "math/bits"

// Flag controls optional Codec behavior.
type Flag int

const (
	// IgnoreCase folds each ASCII-letter alphabet character to both cases
	// when building the decode table.
	IgnoreCase Flag = 1 << iota
	// BlockPadding enables RFC4648-style bit alignment to whole bytes for
	// power-of-two bases.
	BlockPadding
)

// ordInvalid and ordSkip are sentinel ord table values distinct from any
// valid digit value (0..255).
const (
	ordInvalid int16 = -1
	ordSkip    int16 = -2
)

// Codec is an immutable alphabet/flags pair implementing encode, decode, and
// validation per spec.md §4.7-§4.9.
type Codec struct {
	chr       []byte
	ord       [256]int16
	size      int
	baseBits  int
	blockSize int
	flags     Flag
}

// New constructs a Codec from an alphabet (2-256 distinct characters), a set
// of characters to ignore during decode, and flags. It rejects duplicate
// alphabet characters and characters shared between the alphabet and the
// ignored set.
func New(alphabet, ignored string, flags Flag) (*Codec, error) {
	size := len(alphabet)
	if size < 2 || size > 256 {
		return nil, errSizeOutOfRange(size)
	}

	c := &Codec{
		chr:   []byte(alphabet),
		size:  size,
		flags: flags,
	}
	for i := range c.ord {
		c.ord[i] = ordInvalid
	}
	for i := 0; i < len(ignored); i++ {
		c.ord[ignored[i]] = ordSkip
	}
	for i := 0; i < size; i++ {
		a := alphabet[i]
		if c.ord[a] != ordInvalid {
			return nil, errDuplicateChar(a)
		}
		c.ord[a] = int16(i)
		if flags&IgnoreCase != 0 {
			switch {
			case a >= 'A' && a <= 'Z':
				c.ord[a-'A'+'a'] = int16(i)
			case a >= 'a' && a <= 'z':
				c.ord[a-'a'+'A'] = int16(i)
			}
		}
	}

	c.baseBits = baseBitsFor(size)
	if flags&BlockPadding != 0 {
		c.blockSize = c.baseBits
	}
	return c, nil
}

// baseBitsFor returns log2(size) when size is an exact power of two, else 0
// (meaning the general divmod-based path applies).
func baseBitsFor(size int) int {
	if size&(size-1) != 0 {
		return 0
	}
	return bits.TrailingZeros(uint(size))
}

// Size returns the number of distinct digit values (the alphabet length).
func (c *Codec) Size() int { return c.size }
