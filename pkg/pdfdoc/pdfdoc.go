// Package pdfdoc decodes PDF bytes into per-page plain text and tabular
// regions. Tables are reconstructed from positioned text runs: words on one
// baseline become a row, and a wide horizontal gap starts a new cell.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page holds the decoded content of a single PDF page.
type Page struct {
	// Text is the page's plain text, one line per baseline, top to bottom.
	Text string
	// Tables are contiguous multi-column regions: table -> row -> cells.
	Tables [][][]string
}

// Document is a fully decoded PDF.
type Document struct {
	Pages []Page
}

// minCellGap is the horizontal gap, in points, that separates two cells on
// the same baseline. Tuned against remittance reports with 6-8 columns.
const minCellGap = 12.0

// Parse decodes data into a Document. Malformed files return an error; the
// underlying reader panics on some corrupt inputs, which is recovered here.
func Parse(data []byte) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	doc = &Document{}
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, rowErr := p.GetTextByRow()
		if rowErr != nil {
			// A single undecodable page should not sink the file.
			doc.Pages = append(doc.Pages, Page{})
			continue
		}
		doc.Pages = append(doc.Pages, buildPage(rows))
	}
	return doc, nil
}

// buildPage assembles line text and tabular regions from positioned rows.
func buildPage(rows pdf.Rows) Page {
	var lines []string
	var tables [][][]string
	var current [][]string

	flush := func() {
		if len(current) > 0 {
			tables = append(tables, current)
			current = nil
		}
	}

	for _, row := range rows {
		if len(row.Content) == 0 {
			continue
		}
		cells := splitCells(row.Content)
		lines = append(lines, strings.Join(cells, " "))

		// Multi-cell baselines accumulate into the open table; anything
		// else closes it.
		if len(cells) >= 2 {
			current = append(current, cells)
		} else {
			flush()
		}
	}
	flush()

	return Page{
		Text:   strings.Join(lines, "\n"),
		Tables: tables,
	}
}

// splitCells groups a baseline's words into cells on horizontal gaps.
func splitCells(words pdf.TextHorizontal) []string {
	var cells []string
	var cell strings.Builder
	var prevEnd float64

	for i, w := range words {
		if w.S == "" {
			continue
		}
		if i > 0 && w.X-prevEnd > minCellGap && cell.Len() > 0 {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		if cell.Len() > 0 {
			cell.WriteByte(' ')
		}
		cell.WriteString(w.S)
		prevEnd = w.X + w.W
	}
	if cell.Len() > 0 {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}
	return cells
}
