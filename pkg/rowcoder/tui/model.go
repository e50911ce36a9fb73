package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ukaji3/rowcoder-go/pkg/rowcoder"
	"github.com/ukaji3/rowcoder-go/pkg/rowcoder/models"
)

// Options configures the coding screen.
type Options struct {
	// ExportFormat is the format written by the export key.
	ExportFormat models.Format
	// ExportPath overrides the suggested output path for ExportFormat.
	ExportPath string
	// ExportDir is where suggested output files go; empty means next to the input.
	ExportDir string
	// AutosaveOnNavigate saves pending edits before the cursor moves.
	AutosaveOnNavigate bool
	// Logger receives UI events. If nil, logging is discarded.
	Logger *zap.Logger
}

type inputMode int

const (
	modeLabels inputMode = iota
	modeJump
	modeNotes
)

// Model is the bubbletea model for one coding session.
type Model struct {
	session *rowcoder.Session
	coder   *rowcoder.Coder
	opts    Options
	logger  *zap.Logger

	keys    keyMap
	help    help.Model
	styles  Styles
	context viewport.Model
	input   textinput.Model
	notes   textarea.Model
	mode    inputMode

	// notesLoaded is the editor text as loaded, before any typing.
	notesLoaded string

	row     models.RowView
	pending models.Selection
	dirty   bool
	focus   int

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the coding screen for an open session.
func New(session *rowcoder.Session, opts Options) Model {
	if opts.ExportFormat == "" {
		opts.ExportFormat = models.FormatXLSX
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 12

	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(76)
	ta.SetHeight(4)

	m := Model{
		session: session,
		coder:   session.Coder(),
		opts:    opts,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  DefaultStyles(),
		context: viewport.New(80, 12),
		input:   ti,
		notes:   ta,
		pending: models.NewSelection(),
		width:   80,
		height:  30,
	}
	m.load()
	return m
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(session *rowcoder.Session, opts Options) error {
	p := tea.NewProgram(New(session, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Pending returns the checkbox state not yet saved.
func (m Model) Pending() models.Selection {
	return m.pending.Clone()
}

// Dirty reports whether the checkboxes differ from the saved row.
func (m Model) Dirty() bool {
	return m.dirty
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// load reads the cursor row into the checkboxes and context panel.
func (m *Model) load() {
	m.dirty = false
	row, err := m.coder.Current()
	if err != nil {
		m.row = models.RowView{}
		m.pending = models.NewSelection()
		m.context.SetContent(m.styles.Muted.Render("The table has no rows."))
		return
	}
	m.row = row
	m.pending = row.Labels.Clone()
	m.context.SetContent(m.renderContext())
	m.context.GotoTop()
}

func (m *Model) setStatus(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.logger.Warn("Command failed", zap.Error(err))
}

func (m *Model) empty() bool {
	return m.coder.Len() == 0
}

// save writes the pending checkboxes into the cursor row.
func (m *Model) save() bool {
	if m.empty() {
		return false
	}
	if err := m.coder.SaveRow(m.coder.Cursor(), m.pending); err != nil {
		m.setError(err)
		return false
	}
	m.dirty = false
	m.row.Labels = m.pending.Clone()
	m.row.Coded = m.pending.Count() > 0
	return true
}

// navigate runs a cursor command, saving first when configured to.
func (m *Model) navigate(move func() (int, bool), what string) {
	if m.empty() {
		m.setStatus("The table has no rows.")
		return
	}
	if m.dirty && m.opts.AutosaveOnNavigate {
		if !m.save() {
			return
		}
	}
	idx, moved := move()
	if !moved {
		m.setStatus("No %s row.", what)
		return
	}
	discarded := m.dirty
	m.load()
	if discarded {
		m.setStatus("Row %d of %d. Unsaved edits discarded.", idx+1, m.coder.Len())
		m.logger.Debug("Pending edits discarded", zap.Int("row", idx))
		return
	}
	m.setStatus("Row %d of %d.", idx+1, m.coder.Len())
}

func (m *Model) export(format models.Format) {
	if m.dirty {
		m.save()
	}
	path := m.session.SuggestedOutput(format, m.opts.ExportDir)
	if format == m.opts.ExportFormat && m.opts.ExportPath != "" {
		path = m.opts.ExportPath
	}
	if err := m.session.Export(path, format); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Exported %s.", path)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeJump, modeNotes:
			return m.updateInput(msg)
		}
		return m.updateLabels(msg)
	}
	return m, nil
}

func (m Model) updateLabels(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus + len(models.Labels) - 1) % len(models.Labels)
	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % len(models.Labels)
	case key.Matches(msg, m.keys.Toggle):
		if m.empty() {
			break
		}
		l := models.Labels[m.focus]
		m.pending[l] = m.pending[l].Toggle()
		m.dirty = !m.pending.Equal(m.row.Labels)
	case key.Matches(msg, m.keys.Save):
		if m.save() {
			m.setStatus("Saved row %d.", m.coder.Cursor()+1)
		}
	case key.Matches(msg, m.keys.Next):
		m.navigate(m.coder.Next, "next")
	case key.Matches(msg, m.keys.Prev):
		m.navigate(m.coder.Previous, "previous")
	case key.Matches(msg, m.keys.NextUncoded):
		m.navigate(m.coder.NextUncodedRow, "later uncoded")
	case key.Matches(msg, m.keys.PrevUncoded):
		m.navigate(m.coder.PreviousUncodedRow, "earlier uncoded")
	case key.Matches(msg, m.keys.Clear):
		if m.empty() {
			break
		}
		m.pending = models.NewSelection()
		if m.save() {
			m.setStatus("Cleared codes for this row.")
		}
	case key.Matches(msg, m.keys.CopyPrevious):
		if m.empty() {
			break
		}
		sel, err := m.coder.CopyPrevious(m.coder.Cursor())
		if err != nil {
			if errors.Is(err, rowcoder.ErrIndexOutOfRange) {
				m.setStatus("No previous row to copy from.")
				break
			}
			m.setError(err)
			break
		}
		m.load()
		m.setStatus("Copied %d codes from the previous row.", sel.Count())
	case key.Matches(msg, m.keys.Jump):
		if m.empty() {
			m.setStatus("The table has no rows.")
			break
		}
		m.mode = modeJump
		m.input.Placeholder = fmt.Sprintf("1-%d", m.coder.Len())
		m.input.SetValue("")
		m.input.Focus()
	case key.Matches(msg, m.keys.EditNotes):
		if m.empty() || !m.row.HasNotes {
			m.setStatus("This file has no Notes column.")
			break
		}
		m.mode = modeNotes
		m.notes.SetValue(m.row.Notes)
		m.notes.CursorEnd()
		m.notesLoaded = m.notes.Value()
		m.notes.Focus()
	case key.Matches(msg, m.keys.Export):
		m.export(m.opts.ExportFormat)
	case key.Matches(msg, m.keys.ExportOther):
		m.export(m.opts.ExportFormat.Other())
	case key.Matches(msg, m.keys.ScrollUp):
		m.context.HalfViewUp()
	case key.Matches(msg, m.keys.ScrollDown):
		m.context.HalfViewDown()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeNotes {
		return m.updateNotes(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeLabels
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeLabels
		m.input.Blur()
		m.jumpTo(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateNotes drives the multi-line Notes editor. Enter inserts a line
// break; ctrl+s stores the text and esc discards it.
func (m Model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NotesCancel):
		m.mode = modeLabels
		m.notes.Blur()
		return m, nil
	case key.Matches(msg, m.keys.NotesSave):
		m.mode = modeLabels
		m.notes.Blur()
		m.saveNotes(m.notes.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return m, cmd
}

// jumpTo moves to a 1-based row number, clamped to the table.
func (m *Model) jumpTo(text string) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		m.setStatus("Not a row number: %q", text)
		return
	}
	idx := n - 1
	if idx < 0 {
		idx = 0
	}
	if idx > m.coder.Len()-1 {
		idx = m.coder.Len() - 1
	}
	m.navigate(func() (int, bool) {
		if idx == m.coder.Cursor() {
			return idx, false
		}
		if err := m.coder.Jump(idx); err != nil {
			return m.coder.Cursor(), false
		}
		return idx, true
	}, "other")
}

// saveNotes writes text to the Notes cell. Untouched editor text leaves the
// cell as read from the file, whatever the editor normalized on load.
func (m *Model) saveNotes(text string) {
	if text == m.notesLoaded {
		m.setStatus("Notes unchanged.")
		return
	}
	if err := m.coder.SetNotes(m.coder.Cursor(), text); err != nil {
		m.setError(err)
		return
	}
	m.row.Notes = text
	m.setStatus("Notes saved.")
}

func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	// header, labels, notes, status and help lines plus panel borders
	reserved := len(models.Labels) + 9
	if m.help.ShowAll {
		reserved += 5
	}
	vh := h - reserved
	if vh < 3 {
		vh = 3
	}
	m.context.Width = w - 4
	m.context.Height = vh
	m.help.Width = w
	m.notes.SetWidth(w - 4)
	if !m.empty() {
		m.context.SetContent(m.renderContext())
	}
}

func (m Model) renderContext() string {
	width := m.context.Width
	if width < 20 {
		width = 20
	}
	wrap := lipgloss.NewStyle().Width(width)
	blank := m.styles.Muted.Render("(blank)")

	var sb strings.Builder
	sections := []struct {
		title string
		text  string
	}{
		{models.ColumnPreviousConversation, m.row.Context.PreviousConversation},
		{models.ColumnCurrentUserTurn, m.row.Context.CurrentUserTurn},
		{models.ColumnAIResponse, m.row.Context.AIResponse},
	}
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.styles.Section.Render(s.title))
		sb.WriteString("\n")
		if strings.TrimSpace(s.text) == "" {
			sb.WriteString(blank)
		} else {
			sb.WriteString(wrap.Render(s.text))
		}
	}
	return sb.String()
}

// View renders the screen.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Context.Render(m.context.View()))
	sb.WriteString("\n")
	sb.WriteString(m.renderLabels())

	switch m.mode {
	case modeJump:
		sb.WriteString("Jump to row: " + m.input.View() + "\n")
	case modeNotes:
		sb.WriteString(m.styles.Muted.Render("Notes (ctrl+s save, esc cancel)") + "\n")
		sb.WriteString(m.notes.View() + "\n")
	default:
		if m.row.HasNotes {
			sb.WriteString(m.styles.Muted.Render("Notes: ") + m.row.Notes + "\n")
		}
	}

	if m.status != "" {
		if m.statusErr {
			sb.WriteString(m.styles.Error.Render(m.status))
		} else {
			sb.WriteString(m.styles.Success.Render(m.status))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderHeader() string {
	name := m.session.Name()
	if m.empty() {
		return m.styles.Header.Render(name + ": no rows")
	}

	p := m.coder.Progress()
	parts := []string{
		m.styles.Header.Render(fmt.Sprintf("%s: Row %d of %d", name, m.coder.Cursor()+1, p.Total)),
	}
	if m.row.ID != "" {
		parts = append(parts, m.styles.Muted.Render("id: "+m.row.ID))
	}
	parts = append(parts, m.styles.Muted.Render(fmt.Sprintf("Rows w/ any code: %d/%d", p.Coded, p.Total)))
	if m.dirty {
		parts = append(parts, m.styles.Dirty.Render("unsaved"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderLabels() string {
	var sb strings.Builder
	for i, l := range models.Labels {
		box := "[ ]"
		if m.pending[l] == models.LabelSet {
			box = m.styles.Checked.Render("[x]")
		}
		name := string(l)
		cursor := "  "
		if i == m.focus && m.mode == modeLabels {
			cursor = m.styles.Focused.Render("> ")
			name = m.styles.Focused.Render(name)
		}
		sb.WriteString(cursor + box + " " + name + "\n")
	}
	return sb.String()
}
