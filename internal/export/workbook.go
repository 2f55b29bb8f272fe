// Package export renders report tables as Excel workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet is one worksheet: a header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Workbook writes sheets in order. The first sheet replaces excelize's default "Sheet1".
func Workbook(sheets ...Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook needs at least one sheet")
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("rename sheet %s: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", sheet.Name, err)
		}

		if err := writeSheet(f, sheet, headerStyle); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	for col, h := range sheet.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet.Name, cell, h); err != nil {
			return fmt.Errorf("write header %s!%s: %w", sheet.Name, cell, err)
		}
	}
	if len(sheet.Headers) > 0 {
		if err := f.SetRowStyle(sheet.Name, 1, 1, headerStyle); err != nil {
			return fmt.Errorf("style header of %s: %w", sheet.Name, err)
		}
		last, _ := excelize.ColumnNumberToName(len(sheet.Headers))
		if err := f.SetColWidth(sheet.Name, "A", last, 18); err != nil {
			return fmt.Errorf("set column width of %s: %w", sheet.Name, err)
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return fmt.Errorf("write row %d of %s: %w", i+2, sheet.Name, err)
		}
	}
	return nil
}

// Bytes renders the workbook to its xlsx encoding.
func Bytes(sheets ...Sheet) ([]byte, error) {
	f, err := Workbook(sheets...)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
