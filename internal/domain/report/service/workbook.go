package service

import (
	"github.com/chaotic-justice/payrecon/internal/domain/report"
	"github.com/chaotic-justice/payrecon/pkg/workbook"
)

// Detail column headers, matching the layout downstream consumers expect.
var (
	paymentsColumns = []any{"invoiceNumber", "amount", "storeKey", "storeName"}
	costcoColumns   = []any{"invoiceNumber", "orderNumber", "description", "date", "amount", "storeKey", "storeName"}
	subtotalColumns = []any{"storeName", "amount"}
)

// buildWorkbook renders a batch into its workbook. The payments variant
// leads with a combined summary sheet; the costco variant ships per-report
// sheets only, each with its own sub-summary and footer.
func (s *Service) buildWorkbook(variant Variant, sections []Section, summary []report.StoreTotal) ([]byte, error) {
	var sheets []workbook.Sheet

	if variant == VariantPayments {
		rows := [][]any{{"Store Name", "Total Amount"}}
		for _, st := range summary {
			rows = append(rows, []any{st.StoreName, st.Amount.InexactFloat64()})
		}
		sheets = append(sheets, workbook.Sheet{Name: "Aggregated Summary", Rows: rows})
	}

	for _, sec := range sections {
		sheets = append(sheets, sectionSheet(variant, sec))
	}
	return workbook.Build(sheets)
}

func sectionSheet(variant Variant, sec Section) workbook.Sheet {
	var rows [][]any

	if variant == VariantCostco {
		rows = append(rows, costcoColumns)
		for _, r := range sec.Rows {
			rows = append(rows, []any{
				r.InvoiceNumber, r.OrderNumber, r.Description, r.Date,
				r.Amount.InexactFloat64(), r.StoreKey, r.StoreName,
			})
		}
		rows = append(rows, nil)
		rows = append(rows, subtotalColumns)
		for _, st := range sec.Subtotals {
			rows = append(rows, []any{st.StoreName, st.Amount.InexactFloat64()})
		}
		rows = append(rows, nil)
		rows = append(rows, []any{"Total", sec.Total.InexactFloat64()})
		if sec.FromHeader {
			rows = append(rows, []any{"Date", sec.Header.Date})
			rows = append(rows, []any{"Check Number", "#" + sec.Header.PaymentID})
		}
	} else {
		rows = append(rows, paymentsColumns)
		for _, r := range sec.Rows {
			rows = append(rows, []any{r.InvoiceNumber, r.Amount.InexactFloat64(), r.StoreKey, r.StoreName})
		}
		rows = append(rows, nil)
		rows = append(rows, []any{"Total", sec.Total.InexactFloat64()})
	}

	return workbook.Sheet{Name: sec.Name, Rows: rows}
}
