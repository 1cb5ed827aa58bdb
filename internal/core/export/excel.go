package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes every report section to its own worksheet.
type ExcelExporter struct{}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// Export exports the report to Excel format
func (e *ExcelExporter) Export(report *Report, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Family: report.Style.FontFamily},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := e.createHeaderStyle(f, report.Style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	evenRowStyle, err := e.createRowStyle(f, report.Style, report.Style.RowBgColor2)
	if err != nil {
		return fmt.Errorf("failed to create row style: %w", err)
	}

	for i, section := range report.Sections {
		sheet := sheetName(section.Title, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet, err)
		}

		// Title block on every sheet, then a blank row
		f.SetCellValue(sheet, "A1", report.Title)
		f.SetCellStyle(sheet, "A1", "A1", titleStyle)
		f.SetCellValue(sheet, "A2", report.Description)
		if !report.CreatedAt.IsZero() {
			f.SetCellValue(sheet, "A3", "Generated: "+report.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		headerRow := 5
		if err := e.writeSection(f, sheet, section, headerRow, headerStyle, evenRowStyle, report.Style); err != nil {
			return err
		}
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

func (e *ExcelExporter) writeSection(f *excelize.File, sheet string, section Section, headerRow, headerStyle, evenRowStyle int, style Style) error {
	for col, header := range section.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	if n := len(section.Headers); n > 0 && style.ColumnWidth > 0 {
		last, _ := excelize.ColumnNumberToName(n)
		f.SetColWidth(sheet, "A", last, style.ColumnWidth)
	}

	for i, row := range section.Rows {
		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %q: %w", i, section.Title, err)
		}
		if i%2 == 1 && len(row) > 0 {
			end, _ := excelize.CoordinatesToCellName(len(row), headerRow+1+i)
			f.SetCellStyle(sheet, cell, end, evenRowStyle)
		}
	}

	if style.FreezeHeader {
		topLeft, _ := excelize.CoordinatesToCellName(1, headerRow+1)
		f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: topLeft,
			ActivePane:  "bottomLeft",
		})
	}
	return nil
}

// ContentType returns the MIME type for Excel files
func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns the file extension for Excel files
func (e *ExcelExporter) FileExtension() string {
	return ".xlsx"
}

func (e *ExcelExporter) createHeaderStyle(f *excelize.File, style Style) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   style.FontSize,
			Family: style.FontFamily,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

func (e *ExcelExporter) createRowStyle(f *excelize.File, style Style, bgColor string) (int, error) {
	rowStyle := &excelize.Style{
		Font: &excelize.Font{
			Size:   style.FontSize,
			Family: style.FontFamily,
		},
	}
	if bgColor != "" && bgColor != "#FFFFFF" {
		rowStyle.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(bgColor)},
		}
	}
	return f.NewStyle(rowStyle)
}

// sheetName derives a worksheet name; excelize caps names at 31 characters.
func sheetName(title string, index int) string {
	if title == "" {
		return fmt.Sprintf("Sheet%d", index+1)
	}
	if len(title) > 31 {
		return title[:31]
	}
	return title
}

// stripHashFromColor removes # from hex color codes
func stripHashFromColor(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
