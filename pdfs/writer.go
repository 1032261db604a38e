package pdfs

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sitetools/ops-core/rw"
)

// Page geometry, pt.
const (
	marginLeft   = 40.0
	marginRight  = 40.0
	marginTop    = 32.0
	marginBottom = 48.0

	lineHeight    = 14.0
	labelColShare = 0.35
)

// Pinned document date. Output must be byte-identical for identical input,
// so the embedded creation/modification dates never track wall-clock time.
var pinnedDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// WriteTo serializes the document as PDF. Either the whole document is
// written or an error is returned before any output is produced.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	raw, err := d.ProduceBytes()
	if err != nil {
		return 0, err
	}
	cw := rw.NewCountWriter(w)
	_, err = cw.Write(raw)
	return cw.BytesWritten(), err
}

func (d *Document) ProduceBytes() ([]byte, error) {
	pdf := fpdf.New("P", "pt", A4Size.Name, "")
	pdf.SetCreationDate(pinnedDate)
	pdf.SetModificationDate(pinnedDate)
	pdf.SetTitle(d.Title, true)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-marginBottom + 12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(90, 90, 90)
		half := contentWidth() / 2
		pdf.CellFormat(half, 10, d.FooterLeft, "", 0, "L", false, 0, "")
		pageLabel := fmt.Sprintf("Page %d of {nb}", pdf.PageNo())
		pdf.CellFormat(half, 10, pageLabel, "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	d.writeLogo(pdf)
	d.writeTitle(pdf)
	d.writeMetaBlocks(pdf)
	for _, sec := range d.Sections {
		writeSection(pdf, sec)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("pdf assembly failed: %v", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func contentWidth() float64 {
	return A4Size.Width - marginLeft - marginRight
}

// writeLogo embeds the optional logo at a fixed top-left offset inside a
// bounded box. Undecodable bytes degrade to a logo-less document.
func (d *Document) writeLogo(pdf *fpdf.Fpdf) {
	if len(d.Logo) == 0 {
		return
	}
	normalized, pxW, pxH, err := normalizeLogo(d.Logo)
	if err != nil {
		log.Printf("[WARN] document logo skipped: %v", err)
		return
	}
	boxW, boxH := FitBox(float64(pxW), float64(pxH), LogoMaxWidth, LogoMaxHeight)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("org-logo", opts, bytes.NewReader(normalized))
	pdf.ImageOptions("org-logo", LogoLeft, LogoTop, boxW, boxH, false, opts, 0, "")
	pdf.SetY(LogoTop + LogoMaxHeight + 10)
}

func (d *Document) writeTitle(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(titleColor.r, titleColor.g, titleColor.b)
	pdf.CellFormat(contentWidth(), 22, d.Title, "", 1, "L", false, 0, "")
	pdf.Ln(6)
}

// writeMetaBlocks draws the organization and record identity blocks
// side by side.
func (d *Document) writeMetaBlocks(pdf *fpdf.Fpdf) {
	gutter := 12.0
	blockW := (contentWidth() - gutter) / 2
	top := pdf.GetY()

	leftBottom := writeMetaBlock(pdf, d.Org, marginLeft, top, blockW)
	rightBottom := writeMetaBlock(pdf, d.Record, marginLeft+blockW+gutter, top, blockW)

	bottom := leftBottom
	if rightBottom > bottom {
		bottom = rightBottom
	}
	pdf.SetY(bottom + 12)
}

func writeMetaBlock(pdf *fpdf.Fpdf, block MetaBlock, x float64, y float64, w float64) float64 {
	pdf.SetXY(x, y)
	pdf.SetDrawColor(borderColor.r, borderColor.g, borderColor.b)
	pdf.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(titleColor.r, titleColor.g, titleColor.b)
	pdf.CellFormat(w, lineHeight, block.Title, "1", 2, "L", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	labelW := w * 0.42
	for _, row := range block.Rows {
		pdf.SetX(x)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(labelW, lineHeight, row.Label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(w-labelW, lineHeight, row.Value, "1", 2, "L", false, 0, "")
	}
	return pdf.GetY()
}

func writeSection(pdf *fpdf.Fpdf, sec Section) {
	ensureSpace(pdf, lineHeight*3)

	pdf.SetX(marginLeft)
	pdf.SetDrawColor(borderColor.r, borderColor.g, borderColor.b)
	pdf.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(titleColor.r, titleColor.g, titleColor.b)
	pdf.CellFormat(contentWidth(), lineHeight+2, sec.Title, "1", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	switch {
	case sec.Table != nil:
		writeTable(pdf, sec.Table)
	case len(sec.Rows) > 0:
		writeLabelRows(pdf, sec.Rows)
	default:
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentWidth(), lineHeight, sec.Text, "1", "L", false)
	}
	pdf.Ln(10)
}

// writeLabelRows draws a label/value grid with zebra striping.
func writeLabelRows(pdf *fpdf.Fpdf, rows []LabelRow) {
	labelW := contentWidth() * labelColShare
	valueW := contentWidth() - labelW
	for i, row := range rows {
		pdf.SetFont("Helvetica", "", 9)
		lines := pdf.SplitText(row.Value, valueW-8)
		rowH := lineHeight * float64(max(len(lines), 1))
		ensureSpace(pdf, rowH)

		fill := i%2 == 1
		pdf.SetFillColor(zebraFill.r, zebraFill.g, zebraFill.b)
		y := pdf.GetY()
		pdf.SetX(marginLeft)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(labelW, rowH, row.Label, "1", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(marginLeft+labelW, y)
		pdf.MultiCell(valueW, rowH/float64(max(len(lines), 1)), row.Value, "1", "L", fill)
		pdf.SetY(y + rowH)
	}
}

// writeTable draws a multi-column table (e.g. the signature/attendance
// list) preserving input row order.
func writeTable(pdf *fpdf.Fpdf, table *Table) {
	widths := table.Widths
	if len(widths) != len(table.Columns) {
		share := 1.0 / float64(len(table.Columns))
		widths = make([]float64, len(table.Columns))
		for i := range widths {
			widths[i] = share
		}
	}
	pdf.SetX(marginLeft)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(headerFill.r, headerFill.g, headerFill.b)
	for i, col := range table.Columns {
		last := i == len(table.Columns)-1
		ln := 0
		if last {
			ln = 1
		}
		pdf.CellFormat(contentWidth()*widths[i], lineHeight, col, "1", ln, "L", true, 0, "")
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(zebraFill.r, zebraFill.g, zebraFill.b)
	for r, row := range table.Rows {
		ensureSpace(pdf, lineHeight)
		fill := r%2 == 1
		pdf.SetX(marginLeft)
		for i := range table.Columns {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			last := i == len(table.Columns)-1
			ln := 0
			if last {
				ln = 1
			}
			pdf.CellFormat(contentWidth()*widths[i], lineHeight, val, "1", ln, "L", fill, 0, "")
		}
	}
}

// ensureSpace starts a new page when fewer than h points remain, so a row
// never splits across a page boundary.
func ensureSpace(pdf *fpdf.Fpdf, h float64) {
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+h > pageH-marginBottom {
		pdf.AddPage()
	}
}
