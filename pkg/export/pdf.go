package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth = 277.0 // A4 landscape minus margins
	pdfRowHeight = 7.0
)

// PDFRenderer renders tables as a landscape A4 document.
type PDFRenderer struct {
	// Widths optionally sets relative column widths; columns share the page
	// equally when nil or mismatched.
	Widths []float64
}

// NewPDFRenderer constructs a PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render creates a PDF with the table title, a bold header row repeated on
// every page, and one bordered row per record.
func (r *PDFRenderer) Render(t Table) ([]byte, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	// Core fonts are cp1252; names carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	widths := r.columnWidths(len(t.Headers))

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range t.Headers {
			pdf.CellFormat(widths[i], pdfRowHeight+1, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("%d/{nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	if t.Title != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 10, tr(t.Title), "", 1, "C", false, 0, "")
		pdf.Ln(2)
	}
	header()
	for _, row := range t.Rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], pdfRowHeight, tr(cell), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) columnWidths(n int) []float64 {
	widths := make([]float64, n)
	if len(r.Widths) == n {
		var total float64
		for _, w := range r.Widths {
			total += w
		}
		if total > 0 {
			for i, w := range r.Widths {
				widths[i] = pdfPageWidth * w / total
			}
			return widths
		}
	}
	for i := range widths {
		widths[i] = pdfPageWidth / float64(n)
	}
	return widths
}
