// Package service orchestrates sales exports: decoding, block parsing,
// validation, and workbook assembly.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chaotic-justice/payrecon/internal/domain/common"
	"github.com/chaotic-justice/payrecon/internal/domain/sales"
	"github.com/chaotic-justice/payrecon/internal/results"
	"github.com/chaotic-justice/payrecon/pkg/tabular"
	"github.com/chaotic-justice/payrecon/pkg/workbook"
)

const downloadFilename = "Sales_Analysis.xlsx"

// InputFile is one uploaded file.
type InputFile struct {
	Name string
	Data []byte
}

// Result is a processed sales export, with the workbook parked in the
// result store.
type Result struct {
	Token       string        `json:"downloadToken"`
	Filename    string        `json:"filename"`
	Checks      []sales.Check `json:"validation"`
	Salespeople int           `json:"salespeople"`
	Diagnostics []string      `json:"diagnostics,omitempty"`
}

// Service processes sales exports.
type Service struct {
	logger  *slog.Logger
	results *results.Store
}

// New creates a sales service.
func New(logger *slog.Logger, store *results.Store) *Service {
	return &Service{logger: logger, results: store}
}

// Process decodes and validates one sales export. The export's first row is
// its column header and is not data.
func (s *Service) Process(ctx context.Context, file *InputFile) (*Result, error) {
	if file == nil || file.Name == "" {
		return nil, common.ErrMissingSales
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := tabular.Decode(file.Name, file.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: reading sales export: %v", common.ErrBadRequest, err)
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}

	analysis, err := sales.Parse(rows)
	if err != nil {
		return nil, err
	}

	data, err := buildWorkbook(analysis)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}
	token := s.results.Put(downloadFilename, workbook.ContentType, data)

	s.logger.Info("sales export processed",
		"file", file.Name,
		"salespeople", len(analysis.Salespeople),
		"diagnostics", len(analysis.Diagnostics),
	)

	return &Result{
		Token:       token,
		Filename:    downloadFilename,
		Checks:      analysis.Checks,
		Salespeople: len(analysis.Salespeople),
		Diagnostics: analysis.Diagnostics,
	}, nil
}

// buildWorkbook renders the per-salesperson table and the validation block
// into a single "Sales Report" sheet.
func buildWorkbook(a *sales.Analysis) ([]byte, error) {
	header := []any{"Salesperson"}
	for _, key := range a.MetricOrder {
		header = append(header, key)
	}

	rows := [][]any{header}
	for _, sp := range a.Salespeople {
		row := []any{sp.ID}
		for _, key := range a.MetricOrder {
			row = append(row, sp.Metrics[key].InexactFloat64())
		}
		rows = append(rows, row)
	}

	rows = append(rows, nil, nil)
	rows = append(rows, []any{"Validation Summary"})
	rows = append(rows, []any{"Metric", "Expected", "Actual", "Matched"})
	for _, c := range a.Checks {
		mark := "✗"
		if c.Matched {
			mark = "✓"
		}
		rows = append(rows, []any{
			titleWords(c.Metric),
			c.Expected.InexactFloat64(),
			c.Actual.InexactFloat64(),
			mark,
		})
	}

	return workbook.Build([]workbook.Sheet{{Name: "Sales Report", Rows: rows}})
}

// titleWords turns "period-to-date" into "Period To Date".
func titleWords(key string) string {
	words := strings.Split(key, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
