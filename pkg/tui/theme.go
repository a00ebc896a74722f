package tui

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title      lipgloss.Style
	Entry      lipgloss.Style
	Selected   lipgloss.Style
	Date       lipgloss.Style
	Tag        lipgloss.Style
	Summary    lipgloss.Style
	Help       lipgloss.Style
	SearchHint lipgloss.Style

	Calendar CalendarTheme
}

// CalendarTheme groups styles used by the month grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// DefaultTheme returns the built-in theme used across the UI.
func DefaultTheme() Theme {
	return Theme{
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Entry:      lipgloss.NewStyle(),
		Selected:   lipgloss.NewStyle().Reverse(true),
		Date:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Tag:        lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Summary:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		SearchHint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
	}
}
