package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaotic-justice/payrecon/pkg/pdfdoc"
)

var fullDateRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`)

// LineExtractor scans unstructured page text for payment lines. A line
// qualifies when one of its whitespace tokens is a full M/D/YYYY date; the
// first token is then the invoice number and the last token the amount.
// This layout has no usable header block.
type LineExtractor struct{}

func (LineExtractor) Extract(doc *pdfdoc.Document) ([]Transaction, Header, []string) {
	var rows []Transaction
	var skips []string

	for _, page := range doc.Pages {
		for _, line := range strings.Split(page.Text, "\n") {
			parts := strings.Fields(line)

			dateIdx := -1
			for i, p := range parts {
				if fullDateRe.MatchString(p) {
					dateIdx = i
					break
				}
			}
			// The amount sits after the date token; a line ending on the
			// date has none.
			if dateIdx == -1 || dateIdx == len(parts)-1 {
				continue
			}

			raw := parts[len(parts)-1]
			amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
			if err != nil {
				skips = append(skips, fmt.Sprintf("unparseable amount %q on line %q", raw, line))
				continue
			}

			rows = append(rows, Transaction{
				InvoiceNumber: parts[0],
				Amount:        amount,
			})
		}
	}
	return rows, Header{}, skips
}
