package export

import (
	"bytes"
	"fmt"
)

// Service renders reports through the registered exporters.
type Service struct {
	exporters map[Format]Exporter
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		exporters: map[Format]Exporter{
			FormatPDF:   NewPDFExporter(),
			FormatExcel: NewExcelExporter(),
		},
	}
}

// File is a rendered report ready to be sent to a client.
type File struct {
	Name        string // set by the caller
	Content     []byte
	ContentType string
	Extension   string
}

// Render exports the report in the given format.
func (s *Service) Render(report *Report, format Format) (*File, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	var buf bytes.Buffer
	if err := exporter.Export(report, &buf); err != nil {
		return nil, fmt.Errorf("%s export failed: %w", format, err)
	}

	return &File{
		Content:     buf.Bytes(),
		ContentType: exporter.ContentType(),
		Extension:   exporter.FileExtension(),
	}, nil
}
