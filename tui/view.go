package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkearns79/linkslogic/render"
	"github.com/mkearns79/linkslogic/rules"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(m.brand.Labels.Title))
	b.WriteString("  ")
	b.WriteString(m.styles.tagline.Render(m.brand.Labels.Tagline))
	b.WriteString("\n\n")

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.captureUnsupported {
		// Persistent informational banner, not a transient error.
		b.WriteString(m.styles.infoBanner.Render("Voice input is not available on this system. Use typed questions."))
		b.WriteString("\n\n")
	}

	if m.tab == TabVoice {
		b.WriteString(m.viewVoice())
	} else {
		b.WriteString(m.viewTyped())
	}
	b.WriteString("\n")

	if shortcuts := m.viewQuickQuestions(); shortcuts != "" {
		b.WriteString(shortcuts)
		b.WriteString("\n")
	}

	if m.inFlight {
		b.WriteString(fmt.Sprintf("%s Checking the rules for %q...\n\n", m.spin.View(), m.pendingQuestion))
	}

	if m.askErr != nil {
		b.WriteString(m.styles.errorBanner.Render(errorBannerText(m.askErr)))
		b.WriteString("\n")
		b.WriteString(m.styles.footer.Render("esc to dismiss"))
		b.WriteString("\n\n")
	}

	if m.answer != nil {
		b.WriteString(m.viewAnswer(*m.answer))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(m.styles.notice.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewTabs() string {
	voice := m.styles.tabInactive.Render("Voice")
	typed := m.styles.tabInactive.Render("Typed")
	if m.tab == TabVoice {
		voice = m.styles.tabActive.Render("● Voice")
	} else {
		typed = m.styles.tabActive.Render("● Typed")
	}
	return voice + "   " + typed
}

func (m Model) viewVoice() string {
	var b strings.Builder
	if m.capturing {
		b.WriteString(m.styles.capturing.Render("● Listening"))
		b.WriteString(m.styles.footer.Render("  (pause to submit, enter to cancel)"))
	} else {
		b.WriteString(m.styles.footer.Render("enter to start listening"))
	}
	b.WriteString("\n")
	if m.transcript != "" {
		b.WriteString(m.styles.transcript.Render(m.transcript))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewTyped() string {
	return m.input.View() + "\n"
}

func (m Model) viewQuickQuestions() string {
	if m.tab != TabVoice || len(m.quickQuestions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.footer.Render("Quick questions:"))
	b.WriteString("\n")
	for i, q := range m.quickQuestions {
		if i >= 9 {
			break
		}
		b.WriteString(m.styles.shortcut.Render(fmt.Sprintf("  %d", i+1)))
		b.WriteString(" ")
		if q.Icon != "" {
			b.WriteString(q.Icon)
			b.WriteString(" ")
		}
		b.WriteString(q.Text)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewAnswer(answer rules.Answer) string {
	classification := render.ClassifyRuleType(answer.RuleType)
	badge := render.ConfidenceIndicator(answer.Confidence)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(classification.Color).Render(classification.Label))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(badge.Color).Render(badge.Icon))
	b.WriteString("\n\n")

	b.WriteString(render.AnswerTextStyle.Render(render.FormatAnswer(answer.Answer, m.answerWidth())))
	b.WriteString("\n")

	if citation := render.RuleCitation(answer.RuleNumbers); citation != "" {
		b.WriteString(render.CitationStyle.Render(citation))
		b.WriteString("\n")
	}
	if answer.ResponseTime > 0 {
		b.WriteString(render.LatencyStyle.Render("answered in " + render.Latency(answer.ResponseTime)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) answerWidth() int {
	if m.width <= 0 {
		return 0
	}
	return min(m.width-2, 80)
}

func (m Model) viewFooter() string {
	fastMode := "off"
	if m.controller != nil && m.controller.FastMode() {
		fastMode = "on"
	}
	return m.styles.footer.Render(
		fmt.Sprintf("tab switch input • enter submit • ctrl+f fast mode [%s] • ctrl+c quit", fastMode),
	)
}

// errorBannerText distinguishes the three failure classes: the bounded
// wait expiring, the service being unreachable, and the service
// answering with an application error.
func errorBannerText(err error) string {
	apiErr := &rules.APIError{}
	switch {
	case errors.Is(err, rules.ErrTimeout):
		return "The rules service took too long to answer. Please try again."
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return "Could not reach the rules service. Check your connection and try again."
	}
}
