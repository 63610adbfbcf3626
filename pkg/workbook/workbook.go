// Package workbook renders result tables into xlsx workbooks. Sheet names
// honour the format's constraints: the characters \ * ? : / [ ] are removed
// and names are capped at 31 characters.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxSheetNameLen is the hard cap the xlsx format places on sheet names.
const MaxSheetNameLen = 31

// ContentType is the MIME type for generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var unsafeSheetChars = strings.NewReplacer(
	`\`, "", "*", "", "?", "", ":", "", "/", "", "[", "", "]", "",
)

// Sheet is an ordered set of rows destined for one worksheet. Cell values
// must be strings or numbers; callers convert decimals to float64.
type Sheet struct {
	Name string
	Rows [][]any
}

// SafeSheetName strips characters the xlsx format forbids and truncates the
// result to MaxSheetNameLen characters.
func SafeSheetName(name string) string {
	cleaned := unsafeSheetChars.Replace(name)
	if runes := []rune(cleaned); len(runes) > MaxSheetNameLen {
		cleaned = string(runes[:MaxSheetNameLen])
	}
	if strings.TrimSpace(cleaned) == "" {
		cleaned = "Sheet"
	}
	return cleaned
}

// Build renders the sheets, in order, into a workbook and returns its bytes.
func Build(sheets []Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool, len(sheets))
	for i, sheet := range sheets {
		name := uniqueName(SafeSheetName(sheet.Name), used)
		if i == 0 {
			// Reuse the default sheet so the workbook has no empty leftover.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("create sheet %s: %w", name, err)
			}
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, fmt.Errorf("cell coordinates: %w", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return nil, fmt.Errorf("write row %d of %s: %w", r+1, name, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// uniqueName disambiguates duplicate sheet names with a numeric suffix,
// keeping the result within MaxSheetNameLen.
func uniqueName(base string, used map[string]bool) string {
	name := base
	for n := 2; used[name]; n++ {
		suffix := " " + strconv.Itoa(n)
		runes := []rune(base)
		if len(runes)+len(suffix) > MaxSheetNameLen {
			runes = runes[:MaxSheetNameLen-len(suffix)]
		}
		name = string(runes) + suffix
	}
	used[name] = true
	return name
}
