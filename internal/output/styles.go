package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, block names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for the "replaced" status.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (file paths, block names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusCreated  = "created"
	StatusReplaced = "replaced"
	StatusKept     = "kept"
)

// StatusStyle returns the lipgloss style for a file status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreenCheck)
	case StatusReplaced:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusKept:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatFileLine renders a written file with its block count and status.
//
// Format: f:<path> (<n> blocks)  <status>
func FormatFileLine(path string, blocks int, status string) string {
	return StyleDim.Render("f:") + StyleNoun.Render(path) +
		StyleDim.Render(blockCount(blocks)) + "  " +
		StatusStyle(status).Render(status)
}

func blockCount(n int) string {
	if n == 1 {
		return " (1 block)"
	}
	return fmt.Sprintf(" (%d blocks)", n)
}
