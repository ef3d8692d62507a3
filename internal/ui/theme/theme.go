package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Accent  = lipgloss.Color("#D946EF") // Magenta, ids and arrows
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	// Question colors prompts that ask the user for input.
	Question = lipgloss.NewStyle().
			Foreground(Error)

	Key = lipgloss.NewStyle().
		Foreground(Accent)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)
