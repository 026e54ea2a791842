// Package brand parameterizes the cosmetic differences between the
// branded variants of the assistant: palette, labels, club identifier,
// and avatar asset. Behavior is identical across brands.
package brand

import "github.com/charmbracelet/lipgloss"

// Palette is the brand color scheme applied over the shared view.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
}

// Labels are the brand-specific strings in the shared view.
type Labels struct {
	Title       string
	Tagline     string
	InputPrompt string
}

type Brand struct {
	// ID names the brand in configuration.
	ID   string
	Name string
	// ClubID is the club identifier sent with every question. Distinct
	// per brand even when brands front the same club.
	ClubID      string
	AvatarAsset string
	Palette     Palette
	Labels      Labels
}

var generic = Brand{
	ID:          "generic",
	Name:        "LinksLogic",
	ClubID:      "columbia_cc",
	AvatarAsset: "caddie.png",
	Palette: Palette{
		Primary: lipgloss.Color("#1D4ED8"),
		Accent:  lipgloss.Color("#10B981"),
		Muted:   lipgloss.Color("#6B7280"),
	},
	Labels: Labels{
		Title:       "LinksLogic",
		Tagline:     "Your on-course rules caddie",
		InputPrompt: "Ask a rules question...",
	},
}

var columbia = Brand{
	ID:          "columbia",
	Name:        "Columbia Country Club",
	ClubID:      "columbia_cc",
	AvatarAsset: "columbia_caddie.png",
	Palette: Palette{
		Primary: lipgloss.Color("#14532D"),
		Accent:  lipgloss.Color("#CA8A04"),
		Muted:   lipgloss.Color("#6B7280"),
	},
	Labels: Labels{
		Title:       "Columbia CC Rules Caddie",
		Tagline:     "Local and official rules, one question away",
		InputPrompt: "Ask about a ruling at Columbia...",
	},
}

// Default returns the generic brand.
func Default() Brand { return generic }

// Lookup resolves a brand by its configuration ID, falling back to the
// generic brand for unknown IDs.
func Lookup(id string) Brand {
	switch id {
	case columbia.ID:
		return columbia
	case generic.ID, "":
		return generic
	default:
		return generic
	}
}

// IDs lists the known brand IDs.
func IDs() []string { return []string{generic.ID, columbia.ID} }
