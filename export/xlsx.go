package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/censuspdf/censustab/model"
)

// SheetName is the worksheet tables are written to.
const SheetName = "Data"

// WriteXLSX writes the table as an XLSX workbook. Recovered numbers are
// written as numeric cells so spreadsheet formulas work on them; the
// missing marker and context columns stay text.
func WriteXLSX(t *model.Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	cols := t.Columns()
	for i, col := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, col); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx, rec := range t.Records() {
		for colIdx, col := range cols {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(SheetName, cell, rec[col]); err != nil {
				return fmt.Errorf("write row %d: %w", rowIdx+1, err)
			}
		}
	}

	// Context columns hold long district names.
	_ = f.SetColWidth(SheetName, "A", "B", 24)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// WriteXLSXFile writes the table to an XLSX file at path.
func WriteXLSXFile(t *model.Table, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteXLSX(t, w) })
}
