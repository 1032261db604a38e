package pdfs

// Document - fully assembled printable report. Section order is a content
// contract: title, side-by-side metadata blocks, labeled body sections,
// optional signature table, per-page footer. Immutable once built.
type Document struct {
	Title      string
	Org        MetaBlock // organization identity, left block
	Record     MetaBlock // record identity, right block
	Sections   []Section
	FooterLeft string // registration numbers, may be empty
	Logo       []byte // optional, pre-fetched image bytes. nil = no logo
}

// MetaBlock - a titled grid of label/value rows.
type MetaBlock struct {
	Title string
	Rows  []LabelRow
}

type LabelRow struct {
	Label string
	Value string
}

// Section body is one of: free text, label/value rows, or a multi-column
// table (signature/attendance lists).
type Section struct {
	Title string
	Text  string
	Rows  []LabelRow
	Table *Table
}

// Table - multi-column body, e.g. attendee name / date / signed.
// Row order is preserved in the output.
type Table struct {
	Columns []string
	Widths  []float64 // column width fractions, must sum to 1
	Rows    [][]string
}

// Fixed visual styling. Presentation only - the content contract lives in
// the section ordering above.
var (
	borderColor = rgb{120, 130, 140}
	headerFill  = rgb{226, 232, 238}
	zebraFill   = rgb{244, 246, 248}
	titleColor  = rgb{30, 41, 59}
)

type rgb struct {
	r, g, b int
}
