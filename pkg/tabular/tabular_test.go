package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDecodeCSVDelimiters(t *testing.T) {
	tests := []struct {
		name string
		data string
		want [][]string
	}{
		{
			name: "comma",
			data: "Store A,#1\nStore B,#2\n",
			want: [][]string{{"Store A", "#1"}, {"Store B", "#2"}},
		},
		{
			name: "semicolon",
			data: "Store A;#1\nStore B;#2\n",
			want: [][]string{{"Store A", "#1"}, {"Store B", "#2"}},
		},
		{
			name: "tab",
			data: "Store A\t#1\nStore B\t#2\n",
			want: [][]string{{"Store A", "#1"}, {"Store B", "#2"}},
		},
		{
			name: "ragged rows",
			data: "a,b,c\nd\n",
			want: [][]string{{"a", "b", "c"}, {"d"}},
		},
		{
			// encoding/csv drops fully empty lines; detection still keys
			// off the first line with content.
			name: "leading blank line",
			data: "\nStore A;#1\n",
			want: [][]string{{"Store A", "#1"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCSV([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeCSVEmpty(t *testing.T) {
	_, err := DecodeCSV([]byte("  \n \n"))
	assert.Error(t, err)
}

func TestDecodeByExtension(t *testing.T) {
	rows, err := Decode("stores.CSV", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, rows)

	_, err = Decode("stores.txt", []byte("a,b\n"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Store A", "#1"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Store B", "#2"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := Decode("stores.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Store A", "#1"}, rows[0])
}

func TestCellAndWidth(t *testing.T) {
	rows := [][]string{{" a ", "b"}, {"c"}}

	assert.Equal(t, 2, Width(rows))
	assert.Equal(t, "a", Cell(rows, 0, 0))
	assert.Equal(t, "", Cell(rows, 1, 1), "out-of-range column pads with empty")
	assert.Equal(t, "", Cell(rows, 5, 0))
}

func TestIsBlankRow(t *testing.T) {
	assert.True(t, IsBlankRow([]string{"", "  ", "\t"}))
	assert.True(t, IsBlankRow(nil))
	assert.False(t, IsBlankRow([]string{"", "x"}))
}
