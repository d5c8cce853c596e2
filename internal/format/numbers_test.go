package format

import "testing"

func TestFormatNumberString(t *testing.T) {
	cases := map[string]string{
		"0":           "0",
		"123":         "123",
		"1234":        "1,234",
		"1234567":     "1,234,567",
		"-1234567":    "-1,234,567",
		"100000":      "100,000",
	}
	for in, want := range cases {
		if got := FormatNumberString(in); got != want {
			t.Errorf("FormatNumberString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	cases := map[uint64]string{
		500:                "500 B",
		1536:               "1.50 KiB",
		10 * 1024 * 1024:   "10.00 MiB",
	}
	for in, want := range cases {
		if got := FormatBytes(in); got != want {
			t.Errorf("FormatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
