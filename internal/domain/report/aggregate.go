package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/chaotic-justice/payrecon/internal/domain/directory"
)

// ResolveStores assigns each row's store key and name from dir. Rows still
// in the Unknown bucket after the first pass get one retry with the relaxed
// trim width when the identifier is long enough; the retry's result stands
// even when it is Unknown again.
func ResolveStores(rows []Transaction, dir directory.Directory) {
	for i := range rows {
		key := dir.ResolveKey(rows[i].InvoiceNumber, directory.DefaultTrim)
		rows[i].StoreKey = key
		rows[i].StoreName = dir.Name(key)
	}

	for i := range rows {
		if rows[i].StoreName != directory.UnknownName {
			continue
		}
		trim := directory.DefaultTrim
		if len(rows[i].InvoiceNumber) >= directory.RelaxedTrimMinLen {
			trim = directory.RelaxedTrim
		}
		key := dir.ResolveKey(rows[i].InvoiceNumber, trim)
		rows[i].StoreKey = key
		rows[i].StoreName = dir.Name(key)
	}
}

// Summarize groups rows by resolved store name and sums amounts, ordered by
// store name. This is the per-report sub-summary ordering.
func Summarize(rows []Transaction) []StoreTotal {
	totals := make(map[string]decimal.Decimal)
	for _, r := range rows {
		totals[r.StoreName] = totals[r.StoreName].Add(r.Amount)
	}

	out := make([]StoreTotal, 0, len(totals))
	for name, amount := range totals {
		out = append(out, StoreTotal{StoreName: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StoreName < out[j].StoreName
	})
	return out
}

// SummarizeByAmount groups like Summarize but orders by descending total,
// breaking ties by store name. This is the combined-summary ordering.
func SummarizeByAmount(rows []Transaction) []StoreTotal {
	out := Summarize(rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	return out
}

// Total sums all row amounts.
func Total(rows []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Amount)
	}
	return sum
}
