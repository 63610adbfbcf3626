package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaotic-justice/payrecon/pkg/pdfdoc"
)

var (
	mmddRe      = regexp.MustCompile(`(\d{1,2}/\d{1,2})`)
	paymentIDRe = regexp.MustCompile(`#(\d+)`)
)

// Remittance table column layout. Column 4 (gross amount) and column 5
// (discount) are present in the reports but not carried.
const (
	colInvoice     = 0
	colOrder       = 1
	colDescription = 2
	colDate        = 3
	colAmount      = 6

	minTableCells = 7
)

// TableExtractor reads structured remittance reports: a first-page header
// block carrying the report date and payment number, then one or more
// tables of invoice rows.
type TableExtractor struct{}

func (TableExtractor) Extract(doc *pdfdoc.Document) ([]Transaction, Header, []string) {
	var hdr Header
	if len(doc.Pages) > 0 {
		hdr = scanHeader(doc.Pages[0].Text)
	}

	var rows []Transaction
	var skips []string
	for _, page := range doc.Pages {
		for _, table := range page.Tables {
			if len(table) < 2 {
				continue
			}
			// first row is the column header
			for _, cells := range table[1:] {
				if len(cells) < minTableCells {
					skips = append(skips, fmt.Sprintf("row has %d cells, need %d", len(cells), minTableCells))
					continue
				}

				invoice := strings.TrimSpace(cells[colInvoice])
				rawAmount := cells[colAmount]
				if rawAmount == "" {
					rawAmount = "0"
				}
				amountStr := strings.TrimSpace(strings.ReplaceAll(rawAmount, ",", ""))
				if invoice == "" || amountStr == "" {
					skips = append(skips, "row missing invoice number or amount")
					continue
				}

				amount, err := decimal.NewFromString(amountStr)
				if err != nil {
					skips = append(skips, fmt.Sprintf("unparseable amount %q for invoice %s", rawAmount, invoice))
					continue
				}

				rows = append(rows, Transaction{
					InvoiceNumber: invoice,
					OrderNumber:   strings.TrimSpace(cells[colOrder]),
					Description:   strings.TrimSpace(cells[colDescription]),
					Date:          strings.TrimSpace(cells[colDate]),
					Amount:        amount,
				})
			}
		}
	}
	return rows, hdr, skips
}

// scanHeader pulls the report date (MM/DD) and payment number from the first
// page. Scanning stops at the first payment match.
func scanHeader(text string) Header {
	var h Header
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "Date"):
			if h.Date == "" {
				if m := mmddRe.FindStringSubmatch(line); m != nil {
					h.Date = m[1]
				}
			}
		case strings.HasPrefix(line, "Payment"):
			if m := paymentIDRe.FindStringSubmatch(line); m != nil {
				h.PaymentID = m[1]
				return h
			}
		}
	}
	return h
}
