package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaotic-justice/payrecon/pkg/pdfdoc"
)

func TestLineExtractor(t *testing.T) {
	doc := &pdfdoc.Document{
		Pages: []pdfdoc.Page{
			{Text: "123456789012 ACME WHOLESALE 1/4/2026 1,234.56\n" +
				"no date on this line 99.00\n" +
				"888000111222 ENDS ON DATE 3/3/2026\n" +
				"555000123456 OTHER CO 12/31/2025 88.25"},
			{Text: "777000654321 THIRD CO 2/14/2026 bad-amount"},
		},
	}

	rows, hdr, skips := LineExtractor{}.Extract(doc)

	require.Len(t, rows, 2)
	assert.Equal(t, "123456789012", rows[0].InvoiceNumber)
	assert.Equal(t, "1234.56", rows[0].Amount.String())
	assert.Equal(t, "555000123456", rows[1].InvoiceNumber)
	assert.Equal(t, "88.25", rows[1].Amount.String())

	assert.False(t, hdr.Valid())
	require.Len(t, skips, 1)
	assert.Contains(t, skips[0], "bad-amount")
}

func TestLineExtractor_EmptyDocument(t *testing.T) {
	rows, _, skips := LineExtractor{}.Extract(&pdfdoc.Document{})
	assert.Empty(t, rows)
	assert.Empty(t, skips)
}
