// Package tui provides the terminal interface for coding rows.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme.
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
}

// DefaultTheme returns the default palette. ROWCODER_NO_COLOR=1 or NO_COLOR
// strips colors.
func DefaultTheme() Theme {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("ROWCODER_NO_COLOR") == "1" {
		return Theme{}
	}
	return Theme{
		Primary: lipgloss.Color("#2196F3"),
		Accent:  lipgloss.Color("#8BC34A"),
		Muted:   lipgloss.Color("#7a8290"),
		Border:  lipgloss.Color("#3b4758"),
		Success: lipgloss.Color("#8BC34A"),
		Error:   lipgloss.Color("#e53935"),
		Warning: lipgloss.Color("#FFC107"),
	}
}

// Styles holds the styled components.
type Styles struct {
	Header  lipgloss.Style
	Section lipgloss.Style
	Context lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Checked lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Footer  lipgloss.Style
	Dirty   lipgloss.Style
}

// NewStyles creates styles for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Section: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true),

		Context: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Label: lipgloss.NewStyle(),

		Focused: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Checked: lipgloss.NewStyle().
			Foreground(theme.Success),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Dirty: lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true),
	}
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() Styles {
	return NewStyles(DefaultTheme())
}
