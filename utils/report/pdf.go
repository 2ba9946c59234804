package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pdfLineHeight = 5.0
	pdfNoWidth    = 10.0
)

// RenderPDF lays the document out on landscape A4 with the agency
// letterhead, a numbered grid and a page footer.
func RenderPDF(doc Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("e-SuKa %s - Halaman %d/{nb}", agencyShort, pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	widths := columnWidths(pdf, doc.Headers)

	pdf.AddPage()
	writeLetterhead(pdf, tr, doc)
	writeHeaderRow(pdf, tr, doc.Headers, widths)

	pdf.SetFont("Arial", "", 9)
	_, pageHeight := pdf.GetPageSize()
	left, _, _, bottom := pdf.GetMargins()

	for _, row := range doc.Rows {
		lines := make([][]string, len(doc.Headers))
		maxLines := 1
		for i := range doc.Headers {
			cell := ""
			if i < len(row) {
				cell = tr(row[i])
			}
			lines[i] = pdf.SplitText(cell, widths[i]-2)
			if len(lines[i]) > maxLines {
				maxLines = len(lines[i])
			}
		}
		rowHeight := float64(maxLines) * pdfLineHeight

		if pdf.GetY()+rowHeight > pageHeight-bottom {
			pdf.AddPage()
			writeHeaderRow(pdf, tr, doc.Headers, widths)
			pdf.SetFont("Arial", "", 9)
		}

		x, y := pdf.GetXY()
		for i, cellLines := range lines {
			pdf.Rect(x, y, widths[i], rowHeight, "D")
			for j, line := range cellLines {
				pdf.SetXY(x+1, y+float64(j)*pdfLineHeight)
				pdf.CellFormat(widths[i]-2, pdfLineHeight, line, "", 0, "L", false, 0, "")
			}
			x += widths[i]
		}
		pdf.SetXY(left, y+rowHeight)
	}

	if len(doc.Rows) == 0 {
		pdf.CellFormat(sum(widths), 8, "Tidak ada data pada periode ini.", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLetterhead(pdf *fpdf.Fpdf, tr func(string) string, doc Document) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 7, tr(agencyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, tr(agencyAddress), "", 1, "C", false, 0, "")

	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	y := pdf.GetY() + 2
	pdf.SetLineWidth(0.6)
	pdf.Line(left, y, pageWidth-right, y)
	pdf.SetLineWidth(0.2)
	pdf.SetY(y + 4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 6, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr("Periode: "+doc.Period), "", 1, "C", false, 0, "")
	pdf.Ln(3)
}

func writeHeaderRow(pdf *fpdf.Fpdf, tr func(string) string, headers []string, widths []float64) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(217, 225, 242)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

// columnWidths gives the "No" column a fixed width and splits the rest of
// the printable width evenly.
func columnWidths(pdf *fpdf.Fpdf, headers []string) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	available := pageWidth - left - right

	widths := make([]float64, len(headers))
	flexible := len(headers)
	if headers[0] == "No" && len(headers) > 1 {
		widths[0] = pdfNoWidth
		available -= pdfNoWidth
		flexible--
	}
	for i := range widths {
		if widths[i] == 0 {
			widths[i] = available / float64(flexible)
		}
	}
	return widths
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
