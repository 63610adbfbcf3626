// Package directory builds and queries the canonical store directory used to
// reconcile invoice identifiers against known retail locations.
package directory

import (
	"strings"

	"github.com/chaotic-justice/payrecon/pkg/tabular"
)

const (
	// UnknownKey is the sentinel store code for unresolvable identifiers.
	UnknownKey = "0000"
	// UnknownName is the display name of the fallback bucket.
	UnknownName = "Unknown"

	// legacy depot that never appears in mapping uploads
	legacyKey  = "1997"
	legacyName = "C991997"

	codeWidth = 4
)

// Directory maps 4-digit zero-padded store codes to display names. It is
// built once per request and read-only afterwards.
type Directory map[string]string

// Sentinel returns a directory holding only the two force-inserted entries.
// It is the fallback when a mapping file is missing or unreadable.
func Sentinel() Directory {
	return Directory{
		UnknownKey: UnknownName,
		legacyKey:  legacyName,
	}
}

// FromRows builds a directory from a headerless mapping table. The long
// store name is column 0; the short code is column 2 when the table has at
// least three columns, else column 1. Codes are trimmed, lose a leading "#",
// and must be fully numeric; they are zero-padded to four digits. Later rows
// overwrite earlier ones. The sentinel entries are force-inserted last and
// win over any row-derived entry.
func FromRows(rows [][]string) Directory {
	width := tabular.Width(rows)
	if width < 2 {
		return Sentinel()
	}

	codeCol := 1
	if width >= 3 {
		codeCol = 2
	}

	dir := make(Directory, len(rows)+2)
	for i := range rows {
		code, ok := normalizeCode(tabular.Cell(rows, i, codeCol))
		if !ok {
			continue
		}
		dir[code] = tabular.Cell(rows, i, 0)
	}

	for k, v := range Sentinel() {
		dir[k] = v
	}
	return dir
}

// Name returns the display name for key, or the Unknown bucket's name when
// the key is absent.
func (d Directory) Name(key string) string {
	if name, ok := d[key]; ok {
		return name
	}
	return UnknownName
}

// normalizeCode turns a raw code cell into a canonical store code. The
// second return is false for cells that must be dropped.
func normalizeCode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return "", false
	}
	s = strings.TrimLeft(s, "#")
	if s == "" || !isDigits(s) {
		return "", false
	}
	return zfill(s, codeWidth), true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// zfill left-pads s with zeros to width; longer strings pass through.
func zfill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
