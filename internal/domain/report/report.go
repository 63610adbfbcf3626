// Package report extracts transaction rows from decoded PDF payment reports
// and aggregates amounts per resolved store.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/chaotic-justice/payrecon/pkg/pdfdoc"
)

// Transaction is one extracted payment line. StoreKey and StoreName are
// empty until ResolveStores runs.
type Transaction struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	OrderNumber   string          `json:"orderNumber,omitempty"`
	Description   string          `json:"description,omitempty"`
	Date          string          `json:"date,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	StoreKey      string          `json:"storeKey"`
	StoreName     string          `json:"storeName"`
}

// Header carries the report-level date and payment identifier scanned from
// the first page of a structured report.
type Header struct {
	Date      string
	PaymentID string
}

// Valid reports whether both header fields were found.
func (h Header) Valid() bool {
	return h.Date != "" && h.PaymentID != ""
}

// SectionName labels one report's rows in the output workbook.
func (h Header) SectionName() string {
	return h.Date + " #" + h.PaymentID
}

// StoreTotal is one store's aggregated amount.
type StoreTotal struct {
	StoreName string          `json:"storeName"`
	Amount    decimal.Decimal `json:"amount"`
}

// Extractor turns a decoded report into transaction rows. The two
// implementations cover the two report layouts in circulation; the caller
// picks the variant. The string slice lists reasons rows were dropped.
type Extractor interface {
	Extract(doc *pdfdoc.Document) ([]Transaction, Header, []string)
}
