package directory

import (
	"regexp"
	"strings"
)

// Trim widths for ResolveKey. Invoice identifiers carry a variable-width
// suffix after the store code; the default drops six trailing characters,
// and long identifiers get a second attempt with seven.
const (
	DefaultTrim = 6
	RelaxedTrim = 7

	// RelaxedTrimMinLen is the identifier length at which the relaxed
	// width applies on a retry.
	RelaxedTrimMinLen = 11
)

var digitRun = regexp.MustCompile(`\d+`)

// ResolveKey extracts the most plausible store code from a raw invoice
// identifier, dropping trim trailing characters before the digit scan.
//
// The candidate is the first digit run, left-stripped of zeros and re-padded
// to four digits. Matching is tiered: the padded candidate first, then the
// candidate with leading zeros stripped and not re-padded (short numeric
// codes), then with trailing zeros stripped and re-padded (codes ending in
// zero). The tier order matches the store-numbering conventions observed in
// production reports; do not reorder it. Unmatched identifiers resolve to
// UnknownKey.
func (d Directory) ResolveKey(invoice string, trim int) string {
	if invoice == "" {
		return UnknownKey
	}

	truncated := invoice
	if trim > 0 {
		if len(invoice) <= trim {
			truncated = ""
		} else {
			truncated = invoice[:len(invoice)-trim]
		}
	}

	run := digitRun.FindString(truncated)
	if run == "" {
		return UnknownKey
	}

	candidate := zfill(strings.TrimLeft(run, "0"), codeWidth)
	if _, ok := d[candidate]; ok {
		return candidate
	}
	if lres := strings.TrimLeft(candidate, "0"); lres != candidate {
		if _, ok := d[lres]; ok {
			return lres
		}
	}
	if rres := zfill(strings.TrimRight(candidate, "0"), codeWidth); rres != candidate {
		if _, ok := d[rres]; ok {
			return rres
		}
	}
	return UnknownKey
}
