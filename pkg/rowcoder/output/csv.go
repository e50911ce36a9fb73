package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

// WriteCSV writes the header and every row in table order.
// Blank cells are written as empty fields.
func WriteCSV(w io.Writer, table *models.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	for i := range table.Rows {
		if err := cw.Write(table.Record(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
