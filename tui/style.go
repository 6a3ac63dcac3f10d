package tui

import "github.com/charmbracelet/lipgloss"

// Styles used throughout the TUI.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true)

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleCursor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34")).
			Bold(true)

	styleSlotFilled = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSlotEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleCheckpoint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleFeedback = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleKeybar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
