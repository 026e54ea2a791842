package render

import "github.com/charmbracelet/lipgloss"

// Colors used by the answer view.
var (
	ColorBlue   = lipgloss.Color("#3B82F6")
	ColorGreen  = lipgloss.Color("#10B981")
	ColorPurple = lipgloss.Color("#8B5CF6")
	ColorYellow = lipgloss.Color("#F59E0B")
	ColorRed    = lipgloss.Color("#EF4444")
	ColorGray   = lipgloss.Color("#6B7280")
	ColorWhite  = lipgloss.Color("#F9FAFB")
)

var (
	AnswerTextStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	CitationStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	LatencyStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
