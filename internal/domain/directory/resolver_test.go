package directory

import "testing"

func TestResolveKey(t *testing.T) {
	dir := Directory{
		"1234": "Store A",
		"42":   "Store B (short key)",
		"0012": "Store C (trailing zeros)",
		"0000": "Unknown",
	}

	tests := []struct {
		name    string
		invoice string
		trim    int
		want    string
	}{
		{"empty identifier", "", DefaultTrim, "0000"},
		{"shorter than trim", "123", DefaultTrim, "0000"},
		{"no digits after trim", "ABCDEF123456", DefaultTrim, "0000"},
		{"exact four digit match", "1234567890", DefaultTrim, "1234"},
		{"leading zeros stripped then padded", "00001234XYZ999", DefaultTrim, "1234"},
		{"tier two short key", "0042987654", DefaultTrim, "42"},
		{"tier three trailing zeros", "1200123456", DefaultTrim, "0012"},
		{"unmatched resolves to sentinel", "9999123456", DefaultTrim, "0000"},
		{"long digit run never truncated", "123456789#01", DefaultTrim, "0000"},
		{"relaxed trim reaches shorter prefix", "1234567", RelaxedTrim, "0000"},
		{"digits embedded after letters", "INV-1234-567890", DefaultTrim, "1234"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := dir.ResolveKey(tc.invoice, tc.trim); got != tc.want {
				t.Errorf("ResolveKey(%q, %d) = %q, want %q", tc.invoice, tc.trim, got, tc.want)
			}
		})
	}
}

func TestResolveKey_TierOrder(t *testing.T) {
	// When both the padded candidate and a stripped variant exist, the
	// padded candidate wins.
	dir := Directory{
		"0042": "Padded",
		"42":   "Stripped",
	}
	if got := dir.ResolveKey("0042XXXXXX", DefaultTrim); got != "0042" {
		t.Errorf("ResolveKey = %q, want padded tier-1 match 0042", got)
	}

	// Without the padded entry, the left-stripped form matches.
	delete(dir, "0042")
	if got := dir.ResolveKey("0042XXXXXX", DefaultTrim); got != "42" {
		t.Errorf("ResolveKey = %q, want tier-2 match 42", got)
	}
}

func TestResolveKey_AllZeroRun(t *testing.T) {
	dir := Sentinel()
	// A run of zeros left-strips to nothing and pads back to the sentinel
	// key, which is always present.
	if got := dir.ResolveKey("0000ABCDEF", DefaultTrim); got != UnknownKey {
		t.Errorf("ResolveKey = %q, want %q", got, UnknownKey)
	}
}
