// internal/services/export_service.go
package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	PDFFilename = "product_qr_codes.pdf"

	pdfMargin       = 10.0
	pdfHeaderHeight = 10.0
	pdfRowHeight    = 36.0
	pdfQRSize       = 30.0
	pdfLineHeight   = 5.0
	pdfCellPadding  = 2.0
)

type pdfColumn struct {
	title string
	width float64
}

// Widths add up to the printable width of an A4 page with 10mm margins.
var pdfColumns = []pdfColumn{
	{"Category", 35},
	{"Product", 50},
	{"QR image", 35},
	{"URL", 70},
}

type ExportService struct {
	compress bool
}

func NewExportService() *ExportService {
	return &ExportService{compress: true}
}

// PDF writes one table row per entry: category, product name, QR image and URL.
func (s *ExportService) PDF(w io.Writer, title string, entries []QREntry) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetCompression(s.compress)
	pdf.SetTitle(title, true)
	pdf.SetCreator("catalog-web", true)

	// Core fonts are cp1252; characters outside it are dropped.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	s.header(pdf)

	_, pageHeight := pdf.GetPageSize()
	for i, entry := range entries {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			s.header(pdf)
		}
		if err := s.row(pdf, tr, i, entry); err != nil {
			return err
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (s *ExportService) header(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(220, 220, 220)
	pdf.SetX(pdfMargin)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfHeaderHeight, col.title, "1", 0, "CM", true, 0, "")
	}
	pdf.Ln(-1)
}

func (s *ExportService) row(pdf *fpdf.Fpdf, tr func(string) string, index int, entry QREntry) error {
	png, err := entry.Symbol.PNG()
	if err != nil {
		return err
	}

	pdf.SetFont("Helvetica", "", 10)
	x, y := pdfMargin, pdf.GetY()

	textCell(pdf, x, y, pdfColumns[0].width, tr(entry.Product.Category), "")
	x += pdfColumns[0].width
	textCell(pdf, x, y, pdfColumns[1].width, tr(entry.Product.ProductName), "")
	x += pdfColumns[1].width

	qrWidth := pdfColumns[2].width
	pdf.Rect(x, y, qrWidth, pdfRowHeight, "D")
	name := fmt.Sprintf("qr_%d", index)
	options := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(png))
	pdf.ImageOptions(name, x+(qrWidth-pdfQRSize)/2, y+(pdfRowHeight-pdfQRSize)/2, pdfQRSize, pdfQRSize, false, options, 0, "")
	x += qrWidth

	textCell(pdf, x, y, pdfColumns[3].width, tr(entry.Product.URL), entry.Product.URL)

	pdf.SetXY(pdfMargin, y+pdfRowHeight)
	if pdf.Err() {
		return fmt.Errorf("failed to render PDF row for %s: %w", entry.Product.ID, pdf.Error())
	}
	return nil
}

// textCell draws a bordered cell with wrapped text centred both ways. Lines
// that do not fit the row height are cut. text must already be translated to
// the font's code page.
func textCell(pdf *fpdf.Fpdf, x, y, width float64, text, link string) {
	pdf.Rect(x, y, width, pdfRowHeight, "D")

	lines := pdf.SplitLines([]byte(text), width-2*pdfCellPadding)
	if maxLines := int(pdfRowHeight) / int(pdfLineHeight); len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	top := y + (pdfRowHeight-float64(len(lines))*pdfLineHeight)/2
	for i, line := range lines {
		pdf.SetXY(x+pdfCellPadding, top+float64(i)*pdfLineHeight)
		pdf.CellFormat(width-2*pdfCellPadding, pdfLineHeight, string(line), "", 0, "C", false, 0, link)
	}
}
