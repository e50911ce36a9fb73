package models

// Context holds the read-only text shown next to the checkboxes.
type Context struct {
	// PreviousConversation is the conversation leading up to the turn.
	PreviousConversation string `json:"previous_conversation"`
	// CurrentUserTurn is the user message being answered.
	CurrentUserTurn string `json:"current_user_turn"`
	// AIResponse is the response being coded.
	AIResponse string `json:"ai_response"`
}

// RowView is what the UI needs to render one row.
type RowView struct {
	// Index is the 0-based row index.
	Index int `json:"index"`
	// ID is the value of the optional id column.
	ID string `json:"id,omitempty"`
	// Context is the display text.
	Context Context `json:"context"`
	// Notes is the value of the optional Notes column.
	Notes string `json:"notes,omitempty"`
	// HasNotes reports whether the table has a Notes column.
	HasNotes bool `json:"has_notes"`
	// Labels is the checkbox pre-fill.
	Labels Selection `json:"labels"`
	// Coded reports whether any label cell is non-blank.
	Coded bool `json:"coded"`
}

// Progress counts rows with any label present.
type Progress struct {
	// Coded is the number of rows with at least one non-blank label cell.
	Coded int `json:"coded"`
	// Total is the number of rows.
	Total int `json:"total"`
}
