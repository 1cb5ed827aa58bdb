package export

import (
	"errors"
	"io"
	"strings"
	"time"
)

// Format represents the export file format
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
)

// ErrUnsupportedFormat is returned for formats without an exporter.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat accepts "pdf", "xlsx" and "excel" in any case. An empty value
// selects xlsx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx", "excel":
		return FormatExcel, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Exporter renders a report into one file format.
type Exporter interface {
	Export(report *Report, writer io.Writer) error
	ContentType() string
	FileExtension() string
}

// Report represents a multi-section document
type Report struct {
	Title       string
	Description string
	CreatedAt   time.Time
	Sections    []Section
	Style       Style
}

// Section is one titled table of the report.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]interface{}
}

// Style defines styling options for exports
type Style struct {
	Orientation string // "portrait" or "landscape"
	PageSize    string // "A4", "Letter", etc.

	HeaderBgColor string // Hex color
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	FontFamily string
	FontSize   float64

	// Excel only
	FreezeHeader bool
	ColumnWidth  float64
}

// DefaultStyle returns default export styling
func DefaultStyle() Style {
	return Style{
		Orientation:   "portrait",
		PageSize:      "A4",
		HeaderBgColor: "#4472C4",
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F2F2F2",
		FontFamily:    "Arial",
		FontSize:      10,
		FreezeHeader:  true,
		ColumnWidth:   20,
	}
}
