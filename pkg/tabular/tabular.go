// Package tabular decodes CSV and XLSX uploads into plain rows of cells.
// It identifies CSV delimiters automatically and hides workbook mechanics
// from the domain packages, which only ever see [][]string.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported tabular file format")

// candidate CSV delimiters in priority order
var delimiters = []rune{',', ';', '\t'}

// Decode reads filename's extension and decodes data accordingly.
// Supported extensions: .csv, .xlsx, .xls.
func Decode(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return DecodeCSV(data)
	case ".xlsx", ".xls":
		return DecodeXLSX(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// DecodeCSV parses CSV/TSV content with delimiter detection. Records may be
// ragged; callers should use Cell for positional access.
func DecodeCSV(data []byte) ([][]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("file is empty")
	}

	delim := detectDelimiter(data)
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// detectDelimiter picks the candidate that splits the first non-empty line
// into the most fields.
func detectDelimiter(data []byte) rune {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		best := ','
		bestCount := 0
		for _, d := range delimiters {
			if n := strings.Count(line, string(d)); n > bestCount {
				best = d
				bestCount = n
			}
		}
		return best
	}
	return ','
}

// Width returns the widest row length, treating ragged input as a
// rectangular table padded with empty cells.
func Width(rows [][]string) int {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the trimmed cell at (row, col), or "" when out of range.
func Cell(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return strings.TrimSpace(rows[row][col])
}

// IsBlankRow reports whether every cell in the row is empty after trimming.
func IsBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
