package basex

import "sort"

// mustNew panics on construction failure; the bundled alphabets below are
// fixed literals known to be valid, so a panic here would indicate a bug in
// this file, not bad runtime input.
func mustNew(alphabet, ignored string, flags Flag) *Codec {
	c, err := New(alphabet, ignored, flags)
	if err != nil {
		panic("basex: invalid bundled alphabet: " + err.Error())
	}
	return c
}

const rfc4648Ignored = "= \n\r\t"

// Base2 returns the binary (0,1) codec.
func Base2() *Codec { return mustNew("01", "", 0) }

// Base8 returns the octal codec.
func Base8() *Codec { return mustNew("01234567", "", 0) }

// Base11 returns the base-11 codec ("0123456789a"), case-insensitive.
func Base11() *Codec { return mustNew("0123456789a", "", IgnoreCase) }

// Base16 returns the lowercase hexadecimal codec, case-insensitive.
func Base16() *Codec { return mustNew("0123456789abcdef", "", IgnoreCase) }

// Base16RFC4648 returns the uppercase hexadecimal codec that ignores
// RFC4648 padding and whitespace.
func Base16RFC4648() *Codec {
	return mustNew("0123456789ABCDEF", rfc4648Ignored, IgnoreCase)
}

// Base32 returns the RFC4648 base32 alphabet without padding tolerance.
func Base32() *Codec {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", "", IgnoreCase)
}

// Base32Hex returns the "extended hex" base32 alphabet.
func Base32Hex() *Codec {
	return mustNew("0123456789ABCDEFGHIJKLMNOPQRSTUV", "", IgnoreCase)
}

// Base32RFC4648 is Base32 with RFC4648 padding/whitespace tolerance and
// block-padding bit alignment.
func Base32RFC4648() *Codec {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", rfc4648Ignored, IgnoreCase|BlockPadding)
}

// Base32HexRFC4648 is Base32Hex with RFC4648 padding/whitespace tolerance
// and block-padding bit alignment.
func Base32HexRFC4648() *Codec {
	return mustNew("0123456789ABCDEFGHIJKLMNOPQRSTUV", rfc4648Ignored, IgnoreCase|BlockPadding)
}

// Base32Crockford returns Douglas Crockford's base32 alphabet (omits I, L,
// O, U to avoid visual ambiguity).
func Base32Crockford() *Codec {
	return mustNew("0123456789ABCDEFGHJKMNPQRSTVWXYZ", "", IgnoreCase)
}

// Base36 returns the base-36 codec (digits then lowercase letters),
// case-insensitive.
func Base36() *Codec {
	return mustNew("0123456789abcdefghijklmnopqrstuvwxyz", "", IgnoreCase)
}

// Base58GMP returns the GMP-style base58 alphabet (digits, then A-Z, then
// a-v).
func Base58GMP() *Codec {
	return mustNew("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuv", "", 0)
}

// Base58Bitcoin returns the Bitcoin base58 alphabet (omits 0, O, I, l).
func Base58Bitcoin() *Codec {
	return mustNew("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz", "", 0)
}

// Base58Ripple returns the Ripple base58 alphabet.
func Base58Ripple() *Codec {
	return mustNew("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz", "", 0)
}

// Base58Flickr returns the Flickr base58 alphabet (lowercase before
// uppercase, unlike Bitcoin's).
func Base58Flickr() *Codec {
	return mustNew("123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ", "", 0)
}

// Base58 is an alias for Base58Bitcoin, the de facto default variant.
func Base58() *Codec { return Base58Bitcoin() }

// Base62 returns the standard base-62 alphabet (digits, then A-Z, then
// a-z).
func Base62() *Codec {
	return mustNew("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", "", 0)
}

// Base62Inverted swaps the case ordering of Base62 (digits, then a-z, then
// A-Z).
func Base62Inverted() *Codec {
	return mustNew("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", "", 0)
}

// Base64 returns the standard (RFC 4648 §4) alphabet without padding
// tolerance.
func Base64() *Codec {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", "", 0)
}

// Base64URL returns the URL/filename-safe (RFC 4648 §5) alphabet without
// padding tolerance.
func Base64URL() *Codec {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", "", 0)
}

// Base64RFC4648 is Base64 with padding/whitespace tolerance and
// block-padding bit alignment.
func Base64RFC4648() *Codec {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", rfc4648Ignored, BlockPadding)
}

// Base64RFC4648URL is Base64URL with padding/whitespace tolerance and
// block-padding bit alignment.
func Base64RFC4648URL() *Codec {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", rfc4648Ignored, BlockPadding)
}

// Base66 returns the RFC 3986 unreserved-character-derived alphabet.
func Base66() *Codec {
	return mustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~", "", 0)
}

// registry maps the hyphenated name a CLI flag or HTTP request body would
// carry to the bundled Codec constructor it names.
var registry = map[string]func() *Codec{
	"base2":              Base2,
	"base8":              Base8,
	"base11":             Base11,
	"base16":             Base16,
	"base16-rfc4648":     Base16RFC4648,
	"base32":             Base32,
	"base32-hex":         Base32Hex,
	"base32-rfc4648":     Base32RFC4648,
	"base32-hex-rfc4648": Base32HexRFC4648,
	"base32-crockford":   Base32Crockford,
	"base36":             Base36,
	"base58-gmp":         Base58GMP,
	"base58-bitcoin":     Base58Bitcoin,
	"base58-ripple":      Base58Ripple,
	"base58-flickr":      Base58Flickr,
	"base58":             Base58,
	"base62":             Base62,
	"base62-inverted":    Base62Inverted,
	"base64":             Base64,
	"base64-url":         Base64URL,
	"base64-rfc4648":     Base64RFC4648,
	"base64-rfc4648-url": Base64RFC4648URL,
	"base66":             Base66,
}

// ByName returns the bundled Codec registered under name, or false if name
// is not one of the bundled alphabets.
func ByName(name string) (*Codec, bool) {
	ctor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names returns the sorted list of bundled alphabet names accepted by
// ByName.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
