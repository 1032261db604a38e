package pdfs

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Title: "Toolbox Talk Record",
		Org: MetaBlock{
			Title: "Organization",
			Rows:  []LabelRow{{Label: "Name", Value: "Granite Build Ltd"}},
		},
		Record: MetaBlock{
			Title: "Talk",
			Rows:  []LabelRow{{Label: "Talk No", Value: "TBT-2026-0015"}},
		},
		Sections: []Section{
			{Title: "Summary", Text: "Ladder pre-use checks and tagging."},
			{
				Title: "Attendance",
				Table: &Table{
					Columns: []string{"Name", "Date signed", "Signed"},
					Widths:  []float64{0.5, 0.3, 0.2},
					Rows: [][]string{
						{"Alex Reed", "01 Apr 2026", "Yes"},
						{"Bea Long", "", "No"},
					},
				},
			},
		},
		FooterLeft: "VAT No. GB123456789",
	}
}

func TestProduceBytesRepeatable(t *testing.T) {
	doc := sampleDocument()
	first, err := doc.ProduceBytes()
	require.NoError(t, err)
	second, err := doc.ProduceBytes()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteToReportsByteCount(t *testing.T) {
	doc := sampleDocument()
	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestLongSectionSpillsToSecondPage(t *testing.T) {
	base, err := sampleDocument().ProduceBytes()
	require.NoError(t, err)

	doc := sampleDocument()
	rows := make([]LabelRow, 80)
	for i := range rows {
		rows[i] = LabelRow{Label: fmt.Sprintf("Row %d", i+1), Value: "value"}
	}
	doc.Sections = append(doc.Sections, Section{Title: "Overflow", Rows: rows})
	raw, err := doc.ProduceBytes()
	require.NoError(t, err)

	// the page tree dictionary carries the page count in clear text
	assert.Contains(t, string(base), "/Count 1")
	assert.NotContains(t, string(raw), "/Count 1")
	assert.Greater(t, len(raw), len(base))
}
