// Package sales parses per-salesperson metric blocks out of a tabular sales
// export and validates their sums against the totals the report itself
// carries in its footer.
package sales

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chaotic-justice/payrecon/internal/domain/common"
	"github.com/chaotic-justice/payrecon/pkg/tabular"
)

// Canonical metric keys, in the footer's fixed order.
const (
	MetricPeriodToDate = "period-to-date"
	MetricYearToDate   = "year-to-date"
	MetricPriorYear    = "prior-year"
)

// MetricKeys lists the canonical metrics in footer order.
var MetricKeys = []string{MetricPeriodToDate, MetricYearToDate, MetricPriorYear}

// Export column layout after relabeling: Customer, Cost, n/a, cost-of-goods,
// profit-percentage. Only the first two are read.
const (
	colCustomer = 0
	colCost     = 1

	exportColumns = 5
	blockRows     = 3
	roundPlaces   = 3
)

// Salesperson is one parsed metric block.
type Salesperson struct {
	ID      string
	Metrics map[string]decimal.Decimal
}

// Check compares one metric's expected and actual totals. Matched means
// exact equality after rounding to three decimals; there is no tolerance.
type Check struct {
	Metric   string          `json:"metric"`
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Matched  bool            `json:"matched"`
}

// Analysis is the parsed and validated sales report.
type Analysis struct {
	Salespeople []Salesperson
	// MetricOrder lists metric keys in first-seen order for the output table.
	MetricOrder []string
	Expected    map[string]decimal.Decimal
	Actual      map[string]decimal.Decimal
	Checks      []Check
	Diagnostics []string
}

// Parse reads a sales export, already stripped of its header row, into an
// Analysis. Structural problems (wrong column count, missing footer) fail
// the whole parse; anything row-level is reported in Diagnostics.
func Parse(rows [][]string) (*Analysis, error) {
	width := tabular.Width(rows)
	if width < 2 || width > exportColumns {
		return nil, fmt.Errorf("%w: sales export has %d columns, expected %d (Customer, Cost, n/a, cost-of-goods, profit-percentage)",
			common.ErrSchemaMismatch, width, exportColumns)
	}

	// drop rows that are entirely empty before any positional work
	data := rows[:0:0]
	for _, row := range rows {
		if !tabular.IsBlankRow(row) {
			data = append(data, row)
		}
	}
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: sales export has %d data rows, too short to carry the totals footer", common.ErrSchemaMismatch, len(data))
	}

	a := &Analysis{
		Expected: make(map[string]decimal.Decimal, len(MetricKeys)),
		Actual:   make(map[string]decimal.Decimal, len(MetricKeys)),
	}

	// Expected totals sit in the Cost column of the three rows just above
	// the final row, in fixed metric order.
	for i, key := range MetricKeys {
		cell := tabular.Cell(data, len(data)-4+i, colCost)
		v, err := parseCost(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: footer row %d: %v", common.ErrSchemaMismatch, len(data)-4+i, err)
		}
		a.Expected[key] = v.Round(roundPlaces)
	}

	a.scanBlocks(data)

	// Salespersons whose metrics sum to exactly zero are dropped entirely.
	kept := a.Salespeople[:0]
	for _, sp := range a.Salespeople {
		sum := decimal.Zero
		for _, v := range sp.Metrics {
			sum = sum.Add(v)
		}
		if sum.IsZero() {
			continue
		}
		kept = append(kept, sp)
		for _, key := range MetricKeys {
			a.Actual[key] = a.Actual[key].Add(sp.Metrics[key])
		}
	}
	a.Salespeople = kept

	for _, key := range MetricKeys {
		a.Actual[key] = a.Actual[key].Round(roundPlaces)
		a.Checks = append(a.Checks, Check{
			Metric:   key,
			Expected: a.Expected[key],
			Actual:   a.Actual[key],
			Matched:  a.Actual[key].Equal(a.Expected[key]),
		})
	}

	return a, nil
}

// scanBlocks walks the rows top to bottom collecting metric blocks. A block
// starts at a Customer cell beginning with "salesperson" and consumes the
// next three rows; consumed rows are skipped by index. Repeated salesperson
// identifiers accumulate into one block.
func (a *Analysis) scanBlocks(data [][]string) {
	byID := make(map[string]*Salesperson)
	seenMetric := make(map[string]bool)
	consumedUntil := -1

	for i := range data {
		if i <= consumedUntil {
			continue
		}
		customer := tabular.Cell(data, i, colCustomer)
		if !strings.HasPrefix(strings.ToLower(customer), "salesperson") {
			continue
		}

		tokens := strings.Split(customer, " ")
		if len(tokens) < 2 {
			a.Diagnostics = append(a.Diagnostics, fmt.Sprintf("row %d: salesperson line %q has no identifier", i, customer))
			continue
		}
		id := tokens[1]

		sp := byID[id]
		if sp == nil {
			sp = &Salesperson{ID: id, Metrics: make(map[string]decimal.Decimal, blockRows)}
			byID[id] = sp
			a.Salespeople = append(a.Salespeople, *sp)
		}

		consumedUntil = i + blockRows
		for t := i + 1; t <= i+blockRows; t++ {
			if t >= len(data) {
				a.Diagnostics = append(a.Diagnostics, fmt.Sprintf("row %d: metric block for %q truncated by end of file", i, id))
				break
			}
			key := metricKey(tabular.Cell(data, t, colCustomer))
			v, err := parseCost(tabular.Cell(data, t, colCost))
			if err != nil {
				a.Diagnostics = append(a.Diagnostics, fmt.Sprintf("row %d: %s for %q: %v", t, key, id, err))
				continue
			}
			sp.Metrics[key] = sp.Metrics[key].Add(v)
			if !seenMetric[key] {
				seenMetric[key] = true
				a.MetricOrder = append(a.MetricOrder, key)
			}
		}
	}

	// Salespeople holds copies taken before metrics were filled; refresh
	// them from the canonical map.
	for idx := range a.Salespeople {
		a.Salespeople[idx] = *byID[a.Salespeople[idx].ID]
	}
}

// metricKey normalizes a metric row label: lower-cased, space-joined with
// hyphens, final character dropped. The final-character drop folds the
// labels' trailing punctuation and is preserved as-is from the report
// conventions.
func metricKey(label string) string {
	key := strings.Join(strings.Split(strings.ToLower(strings.TrimSpace(label)), " "), "-")
	if key == "" {
		return key
	}
	runes := []rune(key)
	return string(runes[:len(runes)-1])
}

// parseCost parses a Cost cell, tolerating thousands separators.
func parseCost(cell string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty cost cell")
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable cost %q", cell)
	}
	return v, nil
}
