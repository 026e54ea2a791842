package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mkearns79/linkslogic/brand"
)

// styles are built once per brand; everything else in the view is
// shared across brands.
type styles struct {
	title   lipgloss.Style
	tagline lipgloss.Style

	tabActive   lipgloss.Style
	tabInactive lipgloss.Style

	transcript lipgloss.Style
	capturing  lipgloss.Style

	shortcut lipgloss.Style

	errorBanner lipgloss.Style
	infoBanner  lipgloss.Style
	notice      lipgloss.Style

	footer lipgloss.Style
}

func newStyles(b brand.Brand) styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(b.Palette.Primary),
		tagline: lipgloss.NewStyle().
			Foreground(b.Palette.Muted),

		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(b.Palette.Accent),
		tabInactive: lipgloss.NewStyle().
			Foreground(b.Palette.Muted),

		transcript: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")),
		capturing: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444")),

		shortcut: lipgloss.NewStyle().
			Foreground(b.Palette.Accent),

		errorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444")),
		infoBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")),
		notice: lipgloss.NewStyle().
			Foreground(b.Palette.Muted).
			Italic(true),

		footer: lipgloss.NewStyle().
			Foreground(b.Palette.Muted),
	}
}
