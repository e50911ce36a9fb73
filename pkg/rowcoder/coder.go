package rowcoder

import (
	"go.uber.org/zap"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

// MissingLabels returns the label columns absent from the table, in label order.
func MissingLabels(t *models.Table) []models.Label {
	var missing []models.Label
	for _, l := range models.Labels {
		if !t.HasColumn(string(l)) {
			missing = append(missing, l)
		}
	}
	return missing
}

// EnsureLabelColumns appends every missing label column to t, blank in
// every row. Existing columns are never removed, renamed or reordered.
// The table is modified in place and returned.
func EnsureLabelColumns(t *models.Table) *models.Table {
	for _, l := range MissingLabels(t) {
		t.AddColumn(string(l))
	}
	return t
}

// Coder holds a table and a row cursor, and is the only writer of label cells.
// It is not safe for concurrent use.
type Coder struct {
	table  *models.Table
	cursor int
	logger *zap.Logger
}

// NewCoder takes ownership of table, adds missing label columns and
// places the cursor on row 0.
func NewCoder(table *models.Table, logger *zap.Logger) *Coder {
	if table == nil {
		table = models.NewTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coder{
		table:  EnsureLabelColumns(table),
		logger: logger,
	}
}

// Table returns the underlying table. Callers must not modify it.
func (c *Coder) Table() *models.Table {
	return c.table
}

// Len returns the number of rows.
func (c *Coder) Len() int {
	return c.table.Len()
}

// Cursor returns the current row index.
func (c *Coder) Cursor() int {
	return c.cursor
}

func (c *Coder) checkIndex(idx int) error {
	if idx < 0 || idx >= c.table.Len() {
		return &IndexError{Index: idx, Len: c.table.Len()}
	}
	return nil
}

// ReadRow returns the context text and label pre-fill of row idx.
// Missing context columns read as blank text.
func (c *Coder) ReadRow(idx int) (models.RowView, error) {
	if err := c.checkIndex(idx); err != nil {
		return models.RowView{}, err
	}

	row := c.table.Rows[idx]
	view := models.RowView{
		Index: idx,
		ID:    row[models.ColumnID],
		Context: models.Context{
			PreviousConversation: row[models.ColumnPreviousConversation],
			CurrentUserTurn:      row[models.ColumnCurrentUserTurn],
			AIResponse:           row[models.ColumnAIResponse],
		},
		Notes:    row[models.ColumnNotes],
		HasNotes: c.table.HasColumn(models.ColumnNotes),
		Labels:   make(models.Selection, len(models.Labels)),
		Coded:    !c.isUncoded(idx),
	}
	for _, l := range models.Labels {
		view.Labels[l] = models.StateOf(row[string(l)])
	}
	return view, nil
}

// SaveRow writes sel into row idx: set labels become 1 and every other
// label is cleared to blank, whatever the cell held before.
func (c *Coder) SaveRow(idx int, sel models.Selection) error {
	if err := c.checkIndex(idx); err != nil {
		return err
	}

	row := c.table.Rows[idx]
	for _, l := range models.Labels {
		row[string(l)] = sel[l].Cell()
	}
	c.logger.Debug("Row saved", zap.Int("row", idx), zap.Int("labels_set", sel.Count()))
	return nil
}

// isUncoded reports whether every label cell of row idx is blank.
func (c *Coder) isUncoded(idx int) bool {
	row := c.table.Rows[idx]
	for _, l := range models.Labels {
		if !models.IsBlank(row[string(l)]) {
			return false
		}
	}
	return true
}

// clamp limits idx to [0, n-1]. n must be positive.
func clamp(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// bound limits from to [-1, n] so that from+1 and from-1 cannot overflow.
func bound(from, n int) int {
	if from < -1 {
		return -1
	}
	if from > n {
		return n
	}
	return from
}

// NextIndex returns from+1 clamped to the last row.
// It returns false for an empty table.
func (c *Coder) NextIndex(from int) (int, bool) {
	n := c.table.Len()
	if n == 0 {
		return 0, false
	}
	return clamp(bound(from, n)+1, n), true
}

// PreviousIndex returns from-1 clamped to 0.
// It returns false for an empty table.
func (c *Coder) PreviousIndex(from int) (int, bool) {
	n := c.table.Len()
	if n == 0 {
		return 0, false
	}
	return clamp(bound(from, n)-1, n), true
}

// NextUncoded returns the first uncoded row after from. The scan stops
// at the last row without wrapping; false means there is none.
func (c *Coder) NextUncoded(from int) (int, bool) {
	n := c.table.Len()
	for i := bound(from, n) + 1; i < n; i++ {
		if c.isUncoded(i) {
			return i, true
		}
	}
	return 0, false
}

// PreviousUncoded returns the last uncoded row before from. The scan
// stops at row 0 without wrapping; false means there is none.
func (c *Coder) PreviousUncoded(from int) (int, bool) {
	for i := bound(from, c.table.Len()) - 1; i >= 0; i-- {
		if c.isUncoded(i) {
			return i, true
		}
	}
	return 0, false
}

// FirstUncoded returns the first uncoded row in the table.
func (c *Coder) FirstUncoded() (int, bool) {
	return c.NextUncoded(-1)
}

// Current returns the row under the cursor.
func (c *Coder) Current() (models.RowView, error) {
	return c.ReadRow(c.cursor)
}

// move sets the cursor and reports whether it changed.
func (c *Coder) move(idx int, ok bool) (int, bool) {
	if !ok || idx == c.cursor {
		return c.cursor, false
	}
	c.logger.Debug("Cursor moved", zap.Int("from", c.cursor), zap.Int("to", idx))
	c.cursor = idx
	return c.cursor, true
}

// Next moves the cursor one row forward.
func (c *Coder) Next() (int, bool) {
	return c.move(c.NextIndex(c.cursor))
}

// Previous moves the cursor one row back.
func (c *Coder) Previous() (int, bool) {
	return c.move(c.PreviousIndex(c.cursor))
}

// NextUncodedRow moves the cursor to the next uncoded row, if any.
func (c *Coder) NextUncodedRow() (int, bool) {
	return c.move(c.NextUncoded(c.cursor))
}

// PreviousUncodedRow moves the cursor to the previous uncoded row, if any.
func (c *Coder) PreviousUncodedRow() (int, bool) {
	return c.move(c.PreviousUncoded(c.cursor))
}

// Jump moves the cursor to row idx.
func (c *Coder) Jump(idx int) error {
	if err := c.checkIndex(idx); err != nil {
		return err
	}
	c.move(idx, true)
	return nil
}

// ClearRow clears every label of row idx.
func (c *Coder) ClearRow(idx int) error {
	return c.SaveRow(idx, models.NewSelection())
}

// CopyPrevious copies the label states of row idx-1 into row idx and
// returns the copied selection.
func (c *Coder) CopyPrevious(idx int) (models.Selection, error) {
	if err := c.checkIndex(idx); err != nil {
		return nil, err
	}
	prev, err := c.ReadRow(idx - 1)
	if err != nil {
		return nil, err
	}
	if err := c.SaveRow(idx, prev.Labels); err != nil {
		return nil, err
	}
	return prev.Labels, nil
}

// SetNotes replaces the Notes cell of row idx. The column is never
// created; tables without it return ErrNoNotesColumn.
func (c *Coder) SetNotes(idx int, text string) error {
	if err := c.checkIndex(idx); err != nil {
		return err
	}
	if !c.table.HasColumn(models.ColumnNotes) {
		return ErrNoNotesColumn
	}
	c.table.Rows[idx][models.ColumnNotes] = text
	return nil
}

// Progress counts rows holding any non-blank label.
func (c *Coder) Progress() models.Progress {
	p := models.Progress{Total: c.table.Len()}
	for i := 0; i < p.Total; i++ {
		if !c.isUncoded(i) {
			p.Coded++
		}
	}
	return p
}
