// Package render maps a structured rules answer into a presentational
// view model: classification labels, confidence badges, and bullet-aware
// answer text formatting.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mkearns79/linkslogic/rules"
)

// bulletMarker is the marker the rules service uses for list items
// inside the answer text.
const bulletMarker = "•"

const bulletIndent = "  "

// Classification is the display treatment for a rule classification.
type Classification struct {
	Label string
	Color lipgloss.Color
}

// ClassifyRuleType maps a rule classification to its display label and
// color. Anything outside the two specific classifications is treated
// as combined.
func ClassifyRuleType(ruleType rules.RuleType) Classification {
	switch ruleType {
	case rules.RuleTypeClub:
		return Classification{Label: "Club Rule", Color: ColorPurple}
	case rules.RuleTypeOfficial:
		return Classification{Label: "Official Rules", Color: ColorBlue}
	default:
		return Classification{Label: "Club + Official Rules", Color: ColorGreen}
	}
}

// ConfidenceBadge is the display treatment for a confidence level.
type ConfidenceBadge struct {
	Icon  string
	Color lipgloss.Color
}

// ConfidenceIndicator maps a confidence level to its badge. Anything
// outside high and medium is treated as low.
func ConfidenceIndicator(confidence rules.Confidence) ConfidenceBadge {
	switch confidence {
	case rules.ConfidenceHigh:
		return ConfidenceBadge{Icon: "●●●", Color: ColorGreen}
	case rules.ConfidenceMedium:
		return ConfidenceBadge{Icon: "●●○", Color: ColorYellow}
	default:
		return ConfidenceBadge{Icon: "●○○", Color: ColorRed}
	}
}

// FormatAnswer lays out the answer text for display. Lines are split on
// newlines; lines starting with the bullet marker become indented bullet
// items, with adjacent bullet lines kept together without an intervening
// break. Non-bullet lines are separated by a break. Text is wrapped to
// width when width is positive.
func FormatAnswer(text string, width int) string {
	lines := strings.Split(text, "\n")

	var blocks []string
	var bullets []string

	flushBullets := func() {
		if len(bullets) == 0 {
			return
		}
		blocks = append(blocks, strings.Join(bullets, "\n"))
		bullets = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if item, ok := strings.CutPrefix(trimmed, bulletMarker); ok {
			bullets = append(bullets, formatBullet(strings.TrimSpace(item), width))
			continue
		}

		flushBullets()
		blocks = append(blocks, wrap(trimmed, width))
	}
	flushBullets()

	return strings.Join(blocks, "\n\n")
}

func formatBullet(item string, width int) string {
	prefix := bulletIndent + bulletMarker + " "
	wrapped := wrap(item, width-len([]rune(prefix)))

	var b strings.Builder
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			b.WriteString(prefix)
		} else {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", len([]rune(prefix))))
		}
		b.WriteString(line)
	}
	return b.String()
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

// RuleCitation renders the cited rule numbers as a single line, or ""
// when the answer cites none.
func RuleCitation(ruleNumbers []string) string {
	switch len(ruleNumbers) {
	case 0:
		return ""
	case 1:
		return "Rule " + ruleNumbers[0]
	default:
		return "Rules " + strings.Join(ruleNumbers, ", ")
	}
}

// Latency renders the service-reported response time.
func Latency(seconds float64) string {
	return fmt.Sprintf("%.1fs", seconds)
}
