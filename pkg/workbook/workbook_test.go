package workbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSafeSheetName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Aggregated Summary", "Aggregated Summary"},
		{"forbidden chars", `01/04 #42 [a]:*?\`, "0104 #42 a"},
		{"truncated", strings.Repeat("x", 40), strings.Repeat("x", MaxSheetNameLen)},
		{"only forbidden chars", "//", "Sheet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeSheetName(tt.in))
		})
	}
}

func TestUniqueName(t *testing.T) {
	used := make(map[string]bool)

	assert.Equal(t, "Report", uniqueName("Report", used))
	assert.Equal(t, "Report 2", uniqueName("Report", used))
	assert.Equal(t, "Report 3", uniqueName("Report", used))

	long := strings.Repeat("y", MaxSheetNameLen)
	assert.Equal(t, long, uniqueName(long, used))
	dup := uniqueName(long, used)
	assert.Len(t, []rune(dup), MaxSheetNameLen)
	assert.True(t, strings.HasSuffix(dup, " 2"))
}

func TestBuild(t *testing.T) {
	data, err := Build([]Sheet{
		{Name: "Summary", Rows: [][]any{
			{"Store Name", "Total Amount"},
			{"Store A", 12.5},
		}},
		{Name: "Detail", Rows: [][]any{
			{"invoiceNumber", "amount"},
			{"100123456", 12.5},
			nil,
			{"Total", 12.5},
		}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Summary", "Detail"}, f.GetSheetList())

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Store Name", "Total Amount"}, rows[0])

	rows, err = f.GetRows("Detail")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Total", rows[3][0])
}

func TestBuildDuplicateNames(t *testing.T) {
	data, err := Build([]Sheet{
		{Name: "01/04 #42", Rows: [][]any{{"a"}}},
		{Name: "01/04 #42", Rows: [][]any{{"b"}}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"0104 #42", "0104 #42 2"}, f.GetSheetList())
}
