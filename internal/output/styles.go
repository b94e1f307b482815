package output

import "charm.land/lipgloss/v2"

// Symbols used for action results.
const (
	SymbolPassed  = "✔"
	SymbolFailed  = "✘"
	SymbolSkipped = "○"
)

var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
)

// Passed renders s in the success color.
func Passed(s string) string { return passedStyle.Render(s) }

// Failed renders s in the error color.
func Failed(s string) string { return failedStyle.Render(s) }

// Skipped renders s in the warning color.
func Skipped(s string) string { return skippedStyle.Render(s) }

// Muted renders s in gray.
func Muted(s string) string { return mutedStyle.Render(s) }

// Header renders s bold in the primary color.
func Header(s string) string { return headerStyle.Render(s) }
