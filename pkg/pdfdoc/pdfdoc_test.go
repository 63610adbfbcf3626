package pdfdoc

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// word places a text run at x with the given width.
func word(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		name  string
		words pdf.TextHorizontal
		want  []string
	}{
		{
			name:  "single cell",
			words: pdf.TextHorizontal{word("Invoice", 10, 30)},
			want:  []string{"Invoice"},
		},
		{
			name: "close words join with a space",
			words: pdf.TextHorizontal{
				word("Check", 10, 30),
				word("Number", 42, 35),
			},
			want: []string{"Check Number"},
		},
		{
			name: "wide gap starts a new cell",
			words: pdf.TextHorizontal{
				word("100123456", 10, 50),
				word("1/4/2026", 120, 40),
				word("1,234.56", 300, 40),
			},
			want: []string{"100123456", "1/4/2026", "1,234.56"},
		},
		{
			name: "empty runs are skipped",
			words: pdf.TextHorizontal{
				word("", 10, 5),
				word("only", 100, 20),
			},
			want: []string{"only"},
		},
		{
			name:  "no content",
			words: pdf.TextHorizontal{},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCells(tt.words))
		})
	}
}

func TestBuildPage(t *testing.T) {
	rows := pdf.Rows{
		&pdf.Row{Content: pdf.TextHorizontal{word("Remittance Advice", 10, 100)}},
		&pdf.Row{Content: pdf.TextHorizontal{
			word("Invoice", 10, 40), word("Date", 120, 30), word("Amount", 300, 40),
		}},
		&pdf.Row{Content: pdf.TextHorizontal{
			word("100123456", 10, 50), word("1/4/2026", 120, 40), word("12.50", 300, 30),
		}},
		&pdf.Row{Content: pdf.TextHorizontal{word("Page 1 of 1", 10, 60)}},
		&pdf.Row{Content: pdf.TextHorizontal{
			word("200123456", 10, 50), word("1/5/2026", 120, 40),
		}},
	}

	page := buildPage(rows)

	assert.Equal(t,
		"Remittance Advice\nInvoice Date Amount\n100123456 1/4/2026 12.50\nPage 1 of 1\n200123456 1/5/2026",
		page.Text)

	// The single-cell footer closes the first table; the trailing baseline
	// opens a second one.
	require.Len(t, page.Tables, 2)
	assert.Equal(t, [][]string{
		{"Invoice", "Date", "Amount"},
		{"100123456", "1/4/2026", "12.50"},
	}, page.Tables[0])
	assert.Equal(t, [][]string{{"200123456", "1/5/2026"}}, page.Tables[1])
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("this is not a pdf"))
	assert.Error(t, err)
}
