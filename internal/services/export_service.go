package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fullwoodjoz/visitus/internal/dataset"
)

const exportSheet = "Visitors"

// ExportXLSX renders a table as an Excel workbook for the admin download
// surface. Header row first, then rows in table order (anchor row included,
// as in the raw merged view).
func ExportXLSX(t *dataset.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	for c, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, col); err != nil {
			return nil, fmt.Errorf("export: write header: %w", err)
		}
	}

	for r, row := range t.Rows {
		for c, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("export: data cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, row[col]); err != nil {
				return nil, fmt.Errorf("export: write row %d: %w", r, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
