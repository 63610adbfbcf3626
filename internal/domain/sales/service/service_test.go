package service

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chaotic-justice/payrecon/internal/domain/common"
	"github.com/chaotic-justice/payrecon/internal/results"
)

func newTestService() (*Service, *results.Store) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := results.NewStore(time.Minute)
	return New(logger, store), store
}

// salesExport builds an xlsx fixture the way the reporting system exports
// it: a header row, salesperson blocks, and a totals footer.
func salesExport(t *testing.T) []byte {
	t.Helper()

	rows := [][]any{
		{"Customer", "Cost", "", "Cost of Goods", "Profit %"},
		{"Salesperson John"},
		{"Period to Date:", 100},
		{"Year to Date:", 200},
		{"Prior Year:", 50},
		{"Salesperson Ghost"},
		{"Period to Date:", 0},
		{"Year to Date:", 0},
		{"Prior Year:", 0},
		{"Totals Period to Date:", 100},
		{"Totals Year to Date:", 200},
		{"Totals Prior Year:", 50},
		{"Report generated 1/4/2026"},
	}

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestProcess(t *testing.T) {
	s, store := newTestService()

	res, err := s.Process(context.Background(), &InputFile{Name: "sales.xlsx", Data: salesExport(t)})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Salespeople)
	require.Len(t, res.Checks, 3)
	for _, c := range res.Checks {
		assert.True(t, c.Matched, "metric %s", c.Metric)
	}

	entry, ok := store.Get(res.Token)
	require.True(t, ok)
	assert.Equal(t, "Sales_Analysis.xlsx", entry.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(entry.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Sales Report"}, f.GetSheetList())

	sheetRows, err := f.GetRows("Sales Report")
	require.NoError(t, err)
	assert.Equal(t, "Salesperson", sheetRows[0][0])
	assert.Equal(t, "John", sheetRows[1][0])

	// validation block lives below the table
	var found bool
	for _, row := range sheetRows {
		if len(row) >= 4 && row[0] == "Period To Date" {
			found = true
			assert.Equal(t, "✓", row[3])
		}
	}
	assert.True(t, found, "validation row for period-to-date not rendered")
}

func TestProcess_MissingFile(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Process(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrMissingSales)

	_, err = s.Process(context.Background(), &InputFile{})
	assert.ErrorIs(t, err, common.ErrMissingSales)
}

func TestProcess_UnreadableExport(t *testing.T) {
	s, _ := newTestService()
	_, err := s.Process(context.Background(), &InputFile{Name: "sales.xlsx", Data: []byte("junk")})
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestProcess_SchemaMismatch(t *testing.T) {
	s, _ := newTestService()
	csv := []byte("h1,h2,h3,h4,h5,h6\na,b,c,d,e,f\n")
	_, err := s.Process(context.Background(), &InputFile{Name: "sales.csv", Data: csv})
	assert.ErrorIs(t, err, common.ErrSchemaMismatch)
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Period To Date", titleWords("period-to-date"))
	assert.Equal(t, "Prior Year", titleWords("prior-year"))
}
