package rowcoder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

var contextColumns = []string{
	models.ColumnPreviousConversation,
	models.ColumnCurrentUserTurn,
	models.ColumnAIResponse,
}

// newContextTable builds a table with only the context columns and n rows.
func newContextTable(n int) *models.Table {
	table := models.NewTable(contextColumns...)
	for i := 0; i < n; i++ {
		table.AppendRow("prev", "turn", "response")
	}
	return table
}

func TestEnsureLabelColumns(t *testing.T) {
	t.Run("adds all labels after existing columns", func(t *testing.T) {
		table := models.NewTable(append(contextColumns, "extra")...)
		table.AppendRow("a", "b", "c", "keep me")

		EnsureLabelColumns(table)

		require.Len(t, table.Columns, 12)
		assert.Equal(t, append(contextColumns, "extra"), table.Columns[:4])
		for i, l := range models.Labels {
			assert.Equal(t, string(l), table.Columns[4+i])
			assert.Equal(t, "", table.Value(0, string(l)))
		}
		assert.Equal(t, "keep me", table.Value(0, "extra"))
	})

	t.Run("keeps existing label columns in place", func(t *testing.T) {
		table := models.NewTable("ViolationFlag", "ai_response")
		table.AppendRow("0", "x")

		EnsureLabelColumns(table)

		assert.Equal(t, "ViolationFlag", table.Columns[0])
		assert.Equal(t, "ai_response", table.Columns[1])
		assert.Len(t, table.Columns, 9)
		assert.Equal(t, "0", table.Value(0, "ViolationFlag"), "existing values are untouched")
	})

	t.Run("is idempotent", func(t *testing.T) {
		table := newContextTable(2)
		EnsureLabelColumns(table)
		cols := append([]string(nil), table.Columns...)

		EnsureLabelColumns(table)
		assert.Equal(t, cols, table.Columns)
		assert.Empty(t, MissingLabels(table))
	})
}

func TestReadRow(t *testing.T) {
	table := models.NewTable("id", "ai_response", "Notes", "ViolationFlag", "SequentialCoherence")
	table.AppendRow("r1", "answer", "note", "1", "0")
	coder := NewCoder(table, nil)

	row, err := coder.ReadRow(0)
	require.NoError(t, err)

	assert.Equal(t, "r1", row.ID)
	assert.Equal(t, "answer", row.Context.AIResponse)
	assert.Equal(t, "", row.Context.PreviousConversation, "missing context column reads blank")
	assert.True(t, row.HasNotes)
	assert.Equal(t, "note", row.Notes)
	assert.Equal(t, models.LabelSet, row.Labels[models.ViolationFlag])
	assert.Equal(t, models.LabelUnset, row.Labels[models.SequentialCoherence], "0 pre-fills unchecked")
	assert.True(t, row.Coded)
	assert.Len(t, row.Labels, len(models.Labels))
}

func TestReadRow_OutOfRange(t *testing.T) {
	coder := NewCoder(newContextTable(2), nil)

	for _, idx := range []int{-1, 2, 100} {
		_, err := coder.ReadRow(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}
	assert.ErrorIs(t, coder.SaveRow(2, models.NewSelection()), ErrIndexOutOfRange)
}

func TestSaveRow_RoundTrip(t *testing.T) {
	coder := NewCoder(newContextTable(1), nil)

	// Every combination of the eight labels.
	for mask := 0; mask < 1<<len(models.Labels); mask++ {
		sel := models.NewSelection()
		for i, l := range models.Labels {
			if mask&(1<<i) != 0 {
				sel[l] = models.LabelSet
			}
		}

		require.NoError(t, coder.SaveRow(0, sel))
		row, err := coder.ReadRow(0)
		require.NoError(t, err)
		require.True(t, sel.Equal(row.Labels), "mask %08b", mask)

		for _, l := range models.Labels {
			cell := coder.Table().Value(0, string(l))
			assert.Contains(t, []string{"", "1"}, cell)
		}
	}
}

func TestSaveRow_OverwritesPreexistingValues(t *testing.T) {
	table := models.NewTable("ViolationFlag", "ReferentialCoherence", "PropositionalCoherence")
	table.AppendRow("0", "1", "yes")
	coder := NewCoder(table, nil)

	require.NoError(t, coder.SaveRow(0, models.SelectionOf(models.PropositionalCoherence)))

	assert.Equal(t, "", table.Value(0, "ViolationFlag"))
	assert.Equal(t, "", table.Value(0, "ReferentialCoherence"))
	assert.Equal(t, "1", table.Value(0, "PropositionalCoherence"))
}

func TestSaveRow_MissingKeysAreUnset(t *testing.T) {
	table := models.NewTable("ViolationFlag")
	table.AppendRow("1")
	coder := NewCoder(table, nil)

	require.NoError(t, coder.SaveRow(0, models.Selection{}))
	assert.Equal(t, "", table.Value(0, "ViolationFlag"))
}

func TestNavigation(t *testing.T) {
	coder := NewCoder(newContextTable(3), nil)

	tests := []struct {
		name string
		fn   func(int) (int, bool)
		from int
		want int
	}{
		{"next from start", coder.NextIndex, 0, 1},
		{"next at last row", coder.NextIndex, 2, 2},
		{"next past end", coder.NextIndex, 10, 2},
		{"next from before start", coder.NextIndex, -5, 0},
		{"previous", coder.PreviousIndex, 2, 1},
		{"previous at first row", coder.PreviousIndex, 0, 0},
		{"previous past end", coder.PreviousIndex, 10, 2},
		{"next from max int", coder.NextIndex, math.MaxInt, 2},
		{"previous from min int", coder.PreviousIndex, math.MinInt, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.from)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("boundaries are idempotent", func(t *testing.T) {
		idx := 2
		for i := 0; i < 5; i++ {
			idx, _ = coder.NextIndex(idx)
			assert.Equal(t, 2, idx)
		}
		idx = 0
		for i := 0; i < 5; i++ {
			idx, _ = coder.PreviousIndex(idx)
			assert.Equal(t, 0, idx)
		}
	})
}

func TestUncodedScan(t *testing.T) {
	table := newContextTable(6)
	coder := NewCoder(table, nil)
	// rows 1 and 4 coded, row 3 holds a 0 from the source file
	require.NoError(t, coder.SaveRow(1, models.SelectionOf(models.ViolationFlag)))
	require.NoError(t, coder.SaveRow(4, models.SelectionOf(models.DisciplinaryAnchoring, models.SequentialCoherence)))
	table.Rows[3][string(models.ReferentialCoherence)] = "0"

	next := func(from int) int {
		idx, ok := coder.NextUncoded(from)
		if !ok {
			return -1
		}
		return idx
	}
	prev := func(from int) int {
		idx, ok := coder.PreviousUncoded(from)
		if !ok {
			return -1
		}
		return idx
	}

	assert.Equal(t, 0, next(-1))
	assert.Equal(t, 2, next(0))
	assert.Equal(t, 5, next(2), "rows with any label, including 0, are coded")
	assert.Equal(t, -1, next(5), "no wrap at the end")

	assert.Equal(t, 2, prev(5))
	assert.Equal(t, 0, prev(2))
	assert.Equal(t, -1, prev(0), "no wrap at the start")
	assert.Equal(t, 5, prev(100))

	assert.Equal(t, -1, next(math.MaxInt), "nothing after the end")
	assert.Equal(t, 0, next(math.MinInt))
	assert.Equal(t, 5, prev(math.MaxInt))
	assert.Equal(t, -1, prev(math.MinInt), "nothing before the start")

	first, ok := coder.FirstUncoded()
	assert.True(t, ok)
	assert.Equal(t, 0, first)
}

func TestUncodedScan_AllCoded(t *testing.T) {
	coder := NewCoder(newContextTable(2), nil)
	require.NoError(t, coder.SaveRow(0, models.SelectionOf(models.ViolationFlag)))
	require.NoError(t, coder.SaveRow(1, models.SelectionOf(models.ViolationFlag)))

	_, ok := coder.FirstUncoded()
	assert.False(t, ok)
	_, ok = coder.PreviousUncoded(2)
	assert.False(t, ok)
}

func TestEmptyTable(t *testing.T) {
	coder := NewCoder(models.NewTable(contextColumns...), nil)

	_, ok := coder.NextIndex(0)
	assert.False(t, ok)
	_, ok = coder.PreviousIndex(0)
	assert.False(t, ok)
	_, ok = coder.NextUncoded(-1)
	assert.False(t, ok)
	_, ok = coder.PreviousUncoded(0)
	assert.False(t, ok)

	_, moved := coder.Next()
	assert.False(t, moved)
	_, moved = coder.Previous()
	assert.False(t, moved)
	_, moved = coder.NextUncodedRow()
	assert.False(t, moved)
	_, moved = coder.PreviousUncodedRow()
	assert.False(t, moved)
	assert.Equal(t, 0, coder.Cursor())

	_, err := coder.Current()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, models.Progress{}, coder.Progress())
}

func TestCursorCommands(t *testing.T) {
	coder := NewCoder(newContextTable(4), nil)
	require.NoError(t, coder.SaveRow(1, models.SelectionOf(models.ViolationFlag)))

	idx, moved := coder.Next()
	assert.True(t, moved)
	assert.Equal(t, 1, idx)

	idx, moved = coder.NextUncodedRow()
	assert.True(t, moved)
	assert.Equal(t, 2, idx)

	idx, moved = coder.PreviousUncodedRow()
	assert.True(t, moved)
	assert.Equal(t, 0, idx)

	_, moved = coder.Previous()
	assert.False(t, moved, "already at row 0")

	require.NoError(t, coder.Jump(3))
	assert.Equal(t, 3, coder.Cursor())
	_, moved = coder.Next()
	assert.False(t, moved, "already at the last row")

	assert.ErrorIs(t, coder.Jump(4), ErrIndexOutOfRange)
	assert.Equal(t, 3, coder.Cursor(), "failed jump keeps the cursor")

	row, err := coder.Current()
	require.NoError(t, err)
	assert.Equal(t, 3, row.Index)
}

func TestClearRow(t *testing.T) {
	table := models.NewTable("ViolationFlag", "ReferentialCoherence")
	table.AppendRow("1", "0")
	coder := NewCoder(table, nil)

	require.NoError(t, coder.ClearRow(0))

	_, ok := coder.FirstUncoded()
	assert.True(t, ok, "cleared row is uncoded again")
	for _, l := range models.Labels {
		assert.Equal(t, "", table.Value(0, string(l)))
	}
}

func TestCopyPrevious(t *testing.T) {
	coder := NewCoder(newContextTable(2), nil)
	want := models.SelectionOf(models.ReferentialCoherence, models.RepairOfFragmentation)
	require.NoError(t, coder.SaveRow(0, want))

	sel, err := coder.CopyPrevious(1)
	require.NoError(t, err)
	assert.True(t, want.Equal(sel))

	row, err := coder.ReadRow(1)
	require.NoError(t, err)
	assert.True(t, want.Equal(row.Labels))

	_, err = coder.CopyPrevious(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetNotes(t *testing.T) {
	withNotes := models.NewTable("ai_response", "Notes")
	withNotes.AppendRow("x", "")
	coder := NewCoder(withNotes, nil)

	require.NoError(t, coder.SetNotes(0, "ambiguous"))
	assert.Equal(t, "ambiguous", withNotes.Value(0, "Notes"))

	coder = NewCoder(newContextTable(1), nil)
	assert.ErrorIs(t, coder.SetNotes(0, "x"), ErrNoNotesColumn)
	assert.False(t, coder.Table().HasColumn("Notes"), "Notes is never synthesized")
}

func TestProgress(t *testing.T) {
	table := newContextTable(4)
	coder := NewCoder(table, nil)
	require.NoError(t, coder.SaveRow(0, models.SelectionOf(models.ViolationFlag)))
	table.Rows[2][string(models.DisciplinaryAnchoring)] = "0"

	assert.Equal(t, models.Progress{Coded: 2, Total: 4}, coder.Progress())
}

// Row 0 arrives with ViolationFlag already set.
func TestPrefilledViolationFlag(t *testing.T) {
	table := models.NewTable(append(contextColumns, "ViolationFlag")...)
	table.AppendRow("p", "t", "r", "1")
	table.AppendRow("p", "t", "r", "")
	table.AppendRow("p", "t", "r", "")
	coder := NewCoder(table, nil)

	row, err := coder.ReadRow(0)
	require.NoError(t, err)
	for _, l := range models.Labels {
		want := models.LabelUnset
		if l == models.ViolationFlag {
			want = models.LabelSet
		}
		assert.Equal(t, want, row.Labels[l], string(l))
	}

	idx, ok := coder.NextUncoded(-1)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}
