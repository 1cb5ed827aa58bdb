package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter implements PDF export using gofpdf
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export exports the report to PDF format, one table per section.
func (p *PDFExporter) Export(report *Report, writer io.Writer) error {
	style := report.Style

	orientation := "P"
	if style.Orientation == "landscape" {
		orientation = "L"
	}
	pageSize := style.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}
	fontSize := style.FontSize
	if fontSize == 0 {
		fontSize = 10
	}

	pdf := gofpdf.New(orientation, "mm", pageSize, "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts only; custom families are not embedded
	const font = "Arial"

	if report.Title != "" {
		pdf.SetFont(font, "B", 16)
		pdf.Cell(0, 10, report.Title)
		pdf.Ln(12)
	}
	if report.Description != "" {
		pdf.SetFont(font, "", fontSize)
		pdf.MultiCell(0, 5, report.Description, "", "", false)
		pdf.Ln(4)
	}
	if !report.CreatedAt.IsZero() {
		pdf.SetFont(font, "I", 8)
		pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", report.CreatedAt.Format("2006-01-02 15:04:05")))
		pdf.Ln(8)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin

	for _, section := range report.Sections {
		if len(section.Headers) == 0 {
			continue
		}
		colWidth := usableWidth / float64(len(section.Headers))

		pdf.SetFont(font, "B", 12)
		pdf.Cell(0, 8, section.Title)
		pdf.Ln(9)

		drawHeader := func() {
			pdf.SetFont(font, "B", fontSize)
			r, g, b := hexToRGB(style.HeaderBgColor)
			pdf.SetFillColor(r, g, b)
			pdf.SetTextColor(255, 255, 255)
			for _, header := range section.Headers {
				pdf.CellFormat(colWidth, 7, header, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont(font, "", fontSize)
		}
		drawHeader()

		if len(section.Rows) == 0 {
			pdf.CellFormat(usableWidth, 6, "No data for this period", "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}

		for rowIdx, row := range section.Rows {
			if pdf.GetY() > pageHeight-bottomMargin-10 {
				pdf.AddPage()
				drawHeader()
			}

			bg := style.RowBgColor1
			if rowIdx%2 == 1 {
				bg = style.RowBgColor2
			}
			r, g, b := hexToRGB(bg)
			pdf.SetFillColor(r, g, b)

			for colIdx, value := range row {
				align := "R"
				if colIdx == 0 {
					align = "L"
				}
				pdf.CellFormat(colWidth, 6, fmt.Sprintf("%v", value), "1", 0, align, true, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// ContentType returns the MIME type for PDF files
func (p *PDFExporter) ContentType() string {
	return "application/pdf"
}

// FileExtension returns the file extension for PDF files
func (p *PDFExporter) FileExtension() string {
	return ".pdf"
}

// hexToRGB converts hex color to RGB values
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	// Default to white if invalid
	if len(hex) != 6 {
		return 255, 255, 255
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
