// Package service orchestrates report batches: mapping load, PDF decoding,
// extraction, store resolution, aggregation, and workbook assembly.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chaotic-justice/payrecon/internal/domain/common"
	"github.com/chaotic-justice/payrecon/internal/domain/directory"
	"github.com/chaotic-justice/payrecon/internal/domain/report"
	"github.com/chaotic-justice/payrecon/internal/results"
	"github.com/chaotic-justice/payrecon/pkg/observability"
	"github.com/chaotic-justice/payrecon/pkg/pdfdoc"
	"github.com/chaotic-justice/payrecon/pkg/tabular"
	"github.com/chaotic-justice/payrecon/pkg/workbook"
)

// Variant selects the extraction strategy for a batch.
type Variant string

const (
	// VariantPayments scans unstructured page text (the older layout).
	VariantPayments Variant = "payments"
	// VariantCostco reads structured remittance tables.
	VariantCostco Variant = "costco"
)

// InputFile is one uploaded file.
type InputFile struct {
	Name string
	Data []byte
}

// Section is one report's processed rows, labelled for the workbook.
type Section struct {
	Name       string
	FromHeader bool
	Header     report.Header
	Rows       []report.Transaction
	Subtotals  []report.StoreTotal
	Total      decimal.Decimal
}

// Skip records a skipped file or row together with the reason.
type Skip struct {
	File   string `json:"file"`
	Detail string `json:"detail"`
}

// Result is a processed batch, with the workbook parked in the result store.
type Result struct {
	Token    string             `json:"downloadToken"`
	Filename string             `json:"filename"`
	Summary  []report.StoreTotal `json:"summary"`
	Sections int                `json:"sections"`
	Rows     int                `json:"rows"`
	Skipped  []Skip             `json:"skipped,omitempty"`
}

// Service processes report batches. One batch is one request; files are
// handled sequentially and one file's failure never aborts the rest.
type Service struct {
	logger   *slog.Logger
	results  *results.Store
	maxFiles int
	now      func() time.Time
}

// New creates a report service.
func New(logger *slog.Logger, store *results.Store, maxFiles int) *Service {
	return &Service{
		logger:   logger,
		results:  store,
		maxFiles: maxFiles,
		now:      time.Now,
	}
}

// Process runs one batch. Structural problems (missing mapping, unsupported
// mapping format, too many files, nothing extractable at all) fail the
// request; everything else degrades per file or per row.
func (s *Service) Process(ctx context.Context, variant Variant, mapping *InputFile, files []InputFile) (*Result, error) {
	if mapping == nil || mapping.Name == "" {
		return nil, common.ErrMissingMapping
	}
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf("%w: got %d, limit is %d", common.ErrTooManyFiles, len(files), s.maxFiles)
	}

	switch strings.ToLower(filepath.Ext(mapping.Name)) {
	case ".csv", ".xlsx", ".xls":
	default:
		return nil, common.ErrMappingFormat
	}

	dir := s.loadDirectory(mapping)
	extractor := s.extractor(variant)

	var (
		sections []Section
		allRows  []report.Transaction
		skipped  []Skip
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !strings.HasSuffix(strings.ToLower(file.Name), ".pdf") {
			skipped = append(skipped, Skip{File: file.Name, Detail: "not a PDF file"})
			continue
		}

		section, rowSkips, err := s.processFile(extractor, variant, file, dir)
		for _, detail := range rowSkips {
			skipped = append(skipped, Skip{File: file.Name, Detail: detail})
			observability.RowsSkipped.WithLabelValues("row_parse").Inc()
		}
		if err != nil {
			s.logger.Warn("report file skipped", "file", file.Name, "error", err)
			skipped = append(skipped, Skip{File: file.Name, Detail: err.Error()})
			observability.ReportFiles.WithLabelValues("failed").Inc()
			continue
		}

		observability.ReportFiles.WithLabelValues("ok").Inc()
		sections = append(sections, *section)
		allRows = append(allRows, section.Rows...)
	}

	if len(sections) == 0 {
		return nil, common.ErrNoTransactions
	}

	for _, row := range allRows {
		if row.StoreName == directory.UnknownName {
			observability.UnknownStoreRows.Inc()
		}
	}

	summary := report.SummarizeByAmount(allRows)

	data, err := s.buildWorkbook(variant, sections, summary)
	if err != nil {
		return nil, fmt.Errorf("build workbook: %w", err)
	}

	filename := s.downloadName(variant)
	token := s.results.Put(filename, workbook.ContentType, data)

	s.logger.Info("report batch processed",
		"variant", string(variant),
		"sections", len(sections),
		"rows", len(allRows),
		"skipped", len(skipped),
	)

	return &Result{
		Token:    token,
		Filename: filename,
		Summary:  summary,
		Sections: len(sections),
		Rows:     len(allRows),
		Skipped:  skipped,
	}, nil
}

// loadDirectory decodes the mapping file. Unreadable content degrades to
// the sentinel-only directory rather than failing the request.
func (s *Service) loadDirectory(mapping *InputFile) directory.Directory {
	rows, err := tabular.Decode(mapping.Name, mapping.Data)
	if err != nil {
		s.logger.Warn("store mapping unreadable, falling back to sentinel directory",
			"file", mapping.Name, "error", err)
		return directory.Sentinel()
	}
	return directory.FromRows(rows)
}

func (s *Service) extractor(variant Variant) report.Extractor {
	if variant == VariantCostco {
		return report.TableExtractor{}
	}
	return report.LineExtractor{}
}

// processFile decodes and extracts one PDF. The returned error marks the
// whole file as skipped.
func (s *Service) processFile(extractor report.Extractor, variant Variant, file InputFile, dir directory.Directory) (*Section, []string, error) {
	doc, err := pdfdoc.Parse(file.Data)
	if err != nil {
		return nil, nil, err
	}

	rows, hdr, rowSkips := extractor.Extract(doc)
	if len(rows) == 0 {
		return nil, rowSkips, fmt.Errorf("no extractable transaction rows")
	}

	report.ResolveStores(rows, dir)

	section := &Section{
		Name:      file.Name,
		Header:    hdr,
		Rows:      rows,
		Subtotals: report.Summarize(rows),
		Total:     report.Total(rows),
	}
	if variant == VariantCostco && hdr.Valid() {
		section.Name = hdr.SectionName()
		section.FromHeader = true
	}
	return section, rowSkips, nil
}

func (s *Service) downloadName(variant Variant) string {
	date := s.now().Format("2006-01-02")
	if variant == VariantCostco {
		return fmt.Sprintf("Costco_%s.xlsx", date)
	}
	return fmt.Sprintf("Payments_%s.xlsx", date)
}
