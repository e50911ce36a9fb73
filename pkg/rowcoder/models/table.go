// Package models defines data structures for row coding.
package models

// Row maps column name to the cell text. The empty string is a blank cell.
type Row map[string]string

// Table is an ordered, in-memory copy of an uploaded file.
type Table struct {
	// Columns lists column names in file order.
	Columns []string `json:"columns"`
	// Rows holds the data rows in file order (header excluded).
	Rows []Row `json:"rows"`
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column with a blank cell in every row.
// It is a no-op when the column already exists.
func (t *Table) AddColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
	for _, row := range t.Rows {
		row[name] = ""
	}
}

// AppendRow adds a row built from values in column order.
// Missing trailing values are blank.
func (t *Table) AppendRow(values ...string) {
	row := make(Row, len(t.Columns))
	for i, col := range t.Columns {
		if i < len(values) {
			row[col] = values[i]
		} else {
			row[col] = ""
		}
	}
	t.Rows = append(t.Rows, row)
}

// Value returns the cell at row index idx and column col.
// Missing columns read as blank.
func (t *Table) Value(idx int, col string) string {
	return t.Rows[idx][col]
}

// Record returns the row at idx as a slice in column order.
func (t *Table) Record(idx int) []string {
	row := t.Rows[idx]
	rec := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		rec[i] = row[col]
	}
	return rec
}
