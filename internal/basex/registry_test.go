package basex

import "testing"

func TestByNameKnownAlphabet(t *testing.T) {
	c, ok := ByName("base58-bitcoin")
	if !ok {
		t.Fatal("base58-bitcoin should be a known alphabet")
	}
	if c.Size() != 58 {
		t.Errorf("Size() = %d, want 58", c.Size())
	}
}

func TestByNameUnknownAlphabet(t *testing.T) {
	if _, ok := ByName("not-a-real-alphabet"); ok {
		t.Error("unknown alphabet name should report ok=false")
	}
}

func TestNamesCoversAllBundledAlphabets(t *testing.T) {
	names := Names()
	if len(names) != len(registry) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(registry))
	}
	for _, name := range names {
		if _, ok := ByName(name); !ok {
			t.Errorf("Names() returned %q but ByName failed to resolve it", name)
		}
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() is not sorted: %q >= %q", names[i-1], names[i])
		}
	}
}
