// Package parser decodes CSV and Excel files into tables.
package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

// BuildTable converts raw records (header first) into a table.
// Blank header cells are named by NormalizeHeaders. Short records are
// padded with blank cells; a record wider than the header is rejected. Records whose cells are all blank are skipped when
// skipBlank is set.
func BuildTable(records [][]string, skipBlank bool) (*models.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row found")
	}

	table := models.NewTable(NormalizeHeaders(records[0])...)
	for i, rec := range records[1:] {
		rowNum := i + 2 // 1-based, header is row 1
		if len(rec) > len(table.Columns) {
			if hasData(rec[len(table.Columns):]) {
				return nil, fmt.Errorf("row %d has %d fields, header has %d", rowNum, len(rec), len(table.Columns))
			}
			rec = rec[:len(table.Columns)]
		}
		if skipBlank && !hasData(rec) {
			continue
		}
		table.AppendRow(rec...)
	}

	return table, nil
}

// hasData reports whether any cell is non-blank.
func hasData(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return true
		}
	}
	return false
}
