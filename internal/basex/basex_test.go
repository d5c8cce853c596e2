package basex

import "testing"

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New("a", "", 0); err == nil {
		t.Fatal("alphabet of size 1 should be rejected")
	}
	big := make([]byte, 257)
	for i := range big {
		big[i] = byte(i % 250)
	}
	if _, err := New(string(big), "", 0); err == nil {
		t.Fatal("alphabet of size 257 should be rejected")
	}
}

func TestNewRejectsDuplicateAlphabetChar(t *testing.T) {
	if _, err := New("aab", "", 0); err == nil {
		t.Fatal("duplicate alphabet character should be rejected")
	}
}

func TestNewRejectsIgnoredOverlappingAlphabet(t *testing.T) {
	if _, err := New("abc", "b", 0); err == nil {
		t.Fatal("ignored character overlapping the alphabet should be rejected")
	}
}

func TestBaseBitsForPowersOfTwo(t *testing.T) {
	cases := map[int]int{2: 1, 4: 2, 8: 3, 16: 4, 32: 5, 64: 6, 3: 0, 58: 0, 62: 0}
	for size, want := range cases {
		if got := baseBitsFor(size); got != want {
			t.Errorf("baseBitsFor(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestIgnoreCaseSetsBothCases(t *testing.T) {
	c := Base16()
	if c.ord['a'] != c.ord['A'] {
		t.Fatal("IgnoreCase should fold ord['A'] and ord['a'] to the same value")
	}
}
