package parser

import (
	"fmt"
	"io"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes the first sheet of a workbook with a header row.
// Fully blank rows are skipped.
func ReadXLSX(r io.Reader) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return BuildTable(widenHeader(rows), true)
}

// widenHeader pads the header row to the widest row. GetRows drops
// trailing empty cells, so a blank header cell above data would
// otherwise make the data row wider than the header.
func widenHeader(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if pad := width - len(rows[0]); pad > 0 {
		rows[0] = append(rows[0], make([]string, pad)...)
	}
	return rows
}
