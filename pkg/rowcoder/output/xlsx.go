package output

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet written when none is configured.
const DefaultSheetName = "data"

// ErrCellTooLong is returned when a cell exceeds the XLSX character limit.
// Such tables can still be exported as CSV.
var ErrCellTooLong = errors.New("cell too long for XLSX")

// checkCellLength rejects text excelize would silently truncate.
func checkCellLength(cellName, column, text string) error {
	if n := utf8.RuneCountInString(text); n > excelize.TotalCellChars {
		return fmt.Errorf("%w: %s (column %q) has %d characters, limit is %d; export as CSV instead",
			ErrCellTooLong, cellName, column, n, excelize.TotalCellChars)
	}
	return nil
}

// WriteXLSX writes the table to a single-sheet workbook.
// Numeric text is stored as numbers; blank cells are left empty. Cells
// longer than excelize.TotalCellChars fail with ErrCellTooLong.
func WriteXLSX(w io.Writer, table *models.Table, sheetName string) error {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := checkCellLength(cellName, col, col); err != nil {
			return err
		}
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for rowIdx := range table.Rows {
		rowNum := rowIdx + 2 // 1-based, header is row 1
		for colIdx, cell := range table.Record(rowIdx) {
			if cell == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return err
			}
			if err := checkCellLength(cellName, table.Columns[colIdx], cell); err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cellName, parseValue(cell)); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}
