package basex

import "testing"

// FuzzBase58BitcoinRoundTrip cross-checks EncodeBytes/DecodeBytes round
// trips for the most commonly used bundled alphabet.
func FuzzBase58BitcoinRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 2, 3})
	f.Add([]byte("Hello world!"))
	f.Add(make([]byte, 512))

	c := Base58Bitcoin()
	f.Fuzz(func(t *testing.T, b []byte) {
		want := trimLeadingZeros(b)
		enc := c.EncodeBytes(b, false)
		dec, err := c.DecodeBytes(enc, false)
		if err != nil {
			t.Fatalf("DecodeBytes error: %v", err)
		}
		if string(dec) != string(want) {
			t.Errorf("round trip mismatch: got %q, want %q", dec, want)
		}
	})
}

// FuzzChecksumRoundTrip verifies checksum-appended encodings always decode
// and validate, and that replacing any single character with the next
// alphabet character is reliably caught.
func FuzzChecksumRoundTrip(f *testing.F) {
	f.Add([]byte{}, uint8(0))
	f.Add([]byte{0xde, 0xad, 0xbe, 0xef}, uint8(2))
	f.Add(make([]byte, 64), uint8(10))

	c := Base62()
	f.Fuzz(func(t *testing.T, b []byte, pos uint8) {
		enc := c.EncodeBytes(b, true)
		if !c.IsValid(enc, true) {
			t.Fatalf("freshly encoded checksum string should validate: %q", enc)
		}
		dec, err := c.DecodeBytes(enc, true)
		if err != nil {
			t.Fatalf("DecodeBytes error: %v", err)
		}
		want := trimLeadingZeros(b)
		if string(dec) != string(want) {
			t.Errorf("round trip mismatch: got %q, want %q", dec, want)
		}

		i := int(pos) % len(enc)
		orig := enc[i]
		tampered := []byte(enc)
		tampered[i] = c.chr[(int(c.ord[orig])+1)%c.size]
		if c.IsValid(string(tampered), true) {
			t.Errorf("tampered string should fail validation: %q", tampered)
		}
	})
}
