package models

import (
	"strconv"
	"strings"
)

// Label is one of the fixed label columns coded per row.
type Label string

const (
	AvoidanceOfFragmentation       Label = "AvoidanceOfFragmentation"
	DisciplinaryAnchoring          Label = "DisciplinaryAnchoring"
	DisciplinaryPedagogicAlignment Label = "DisciplinaryPedagogicAlignment"
	PropositionalCoherence         Label = "PropositionalCoherence"
	ReferentialCoherence           Label = "ReferentialCoherence"
	RepairOfFragmentation          Label = "RepairOfFragmentation"
	SequentialCoherence            Label = "SequentialCoherence"
	ViolationFlag                  Label = "ViolationFlag"
)

// Labels is the closed label set in column order.
var Labels = []Label{
	AvoidanceOfFragmentation,
	DisciplinaryAnchoring,
	DisciplinaryPedagogicAlignment,
	PropositionalCoherence,
	ReferentialCoherence,
	RepairOfFragmentation,
	SequentialCoherence,
	ViolationFlag,
}

// Context column names shown to the annotator.
const (
	ColumnPreviousConversation = "previous_conversation"
	ColumnCurrentUserTurn      = "current_user_turn"
	ColumnAIResponse           = "ai_response"
	ColumnID                   = "id"
	ColumnNotes                = "Notes"
)

// LabelState is the coded state of one label cell.
// There is no "false": the tool writes a blank cell instead of 0.
type LabelState int

const (
	// LabelUnset is a blank cell.
	LabelUnset LabelState = iota
	// LabelSet is a cell holding 1.
	LabelSet
)

// String returns the state name.
func (s LabelState) String() string {
	if s == LabelSet {
		return "set"
	}
	return "unset"
}

// Toggle flips between set and unset.
func (s LabelState) Toggle() LabelState {
	if s == LabelSet {
		return LabelUnset
	}
	return LabelSet
}

// Cell returns the cell text written for the state.
func (s LabelState) Cell() string {
	if s == LabelSet {
		return "1"
	}
	return ""
}

// StateOf reads a label cell. Only values numerically equal to 1
// ("1", "1.0") read as set; blanks, 0 and anything else read as unset.
func StateOf(cell string) LabelState {
	v := strings.TrimSpace(cell)
	if v == "" {
		return LabelUnset
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == 1 {
		return LabelSet
	}
	return LabelUnset
}

// IsBlank reports whether a cell counts as blank/missing.
func IsBlank(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

// Selection maps each label to its state. A missing key is unset.
type Selection map[Label]LabelState

// NewSelection returns a selection with every label unset.
func NewSelection() Selection {
	s := make(Selection, len(Labels))
	for _, l := range Labels {
		s[l] = LabelUnset
	}
	return s
}

// SelectionOf builds a selection from label names that should be set.
func SelectionOf(set ...Label) Selection {
	s := NewSelection()
	for _, l := range set {
		s[l] = LabelSet
	}
	return s
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both selections set the same labels.
func (s Selection) Equal(other Selection) bool {
	for _, l := range Labels {
		if s[l] != other[l] {
			return false
		}
	}
	return true
}

// Count returns how many labels are set.
func (s Selection) Count() int {
	n := 0
	for _, l := range Labels {
		if s[l] == LabelSet {
			n++
		}
	}
	return n
}
