// Package tui is the terminal front end: tab selection between voice
// and typed input, quick-question shortcuts, the live transcript, the
// rendered answer, and inline error reporting.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkearns79/linkslogic/brand"
	"github.com/mkearns79/linkslogic/rules"
)

// InputTab selects how a question is entered.
type InputTab int

const (
	TabVoice InputTab = iota
	TabTyped
)

// Controller is the slice of the session surface the view drives.
type Controller interface {
	Ask(question string)
	StartCapture() error
	StopCapture() error
	CaptureSupported() bool
	FastMode() bool
	SetFastMode(fastMode bool)
}

// QuickQuestionFetcher loads the shortcut list, fetched once at
// startup. *rules.Client satisfies it.
type QuickQuestionFetcher interface {
	QuickQuestions(ctx context.Context) ([]rules.QuickQuestion, error)
}

// Model is the root bubbletea model.
type Model struct {
	controller Controller
	fetcher    QuickQuestionFetcher
	brand      brand.Brand
	styles     styles

	tab   InputTab
	input textinput.Model
	spin  spinner.Model

	// Capture state
	capturing          bool
	captureUnsupported bool
	transcript         string

	// Quick-question shortcuts; empty when the startup fetch failed.
	quickQuestions []rules.QuickQuestion

	// Request state
	inFlight        bool
	pendingQuestion string
	answer          *rules.Answer
	askErr          error

	// notice is a transient line, cleared after a delay.
	notice string

	width  int
	height int
}

// New creates a Model over a running session.
func New(controller Controller, fetcher QuickQuestionFetcher, b brand.Brand) Model {
	input := textinput.New()
	input.Placeholder = b.Labels.InputPrompt
	input.CharLimit = 280
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(b.Palette.Accent)

	tab := TabVoice
	if controller != nil && !controller.CaptureSupported() {
		tab = TabTyped
	}

	return Model{
		controller: controller,
		fetcher:    fetcher,
		brand:      b,
		styles:     newStyles(b),
		tab:        tab,
		input:      input,
		spin:       spin,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		fetchQuickQuestionsCmd(m.fetcher),
	)
}

// fetchQuickQuestionsCmd loads the shortcut list once. Failures are
// logged and leave the list empty; there is no retry.
func fetchQuickQuestionsCmd(fetcher QuickQuestionFetcher) tea.Cmd {
	if fetcher == nil {
		return nil
	}
	return func() tea.Msg {
		questions, err := fetcher.QuickQuestions(context.Background())
		if err != nil {
			logger.Warn("failed to fetch quick questions", "error", err)
			return QuickQuestionsMsg{}
		}
		return QuickQuestionsMsg{Questions: questions}
	}
}

// clearNoticeCmd fires after a delay to clear the transient notice.
func clearNoticeCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case CaptureStateMsg:
		m.capturing = msg.Capturing
		if msg.Capturing {
			m.transcript = ""
		}
		return m, nil

	case CaptureUnsupportedMsg:
		m.captureUnsupported = true
		m.tab = TabTyped
		return m, nil

	case CaptureErrorMsg:
		m.capturing = false
		m.notice = "Voice capture failed: " + msg.Err.Error()
		return m, clearNoticeCmd()

	case TranscriptMsg:
		m.transcript = msg.Transcript
		return m, nil

	case QuestionSubmittedMsg:
		m.inFlight = true
		m.pendingQuestion = msg.Question
		m.answer = nil
		m.askErr = nil
		return m, m.spin.Tick

	case QuestionBlockedMsg:
		m.notice = "Waiting on the previous question..."
		return m, clearNoticeCmd()

	case AnswerMsg:
		m.inFlight = false
		answer := msg.Answer
		m.answer = &answer
		m.askErr = nil
		return m, nil

	case AskFailedMsg:
		m.inFlight = false
		m.answer = nil
		m.askErr = msg.Err
		return m, nil

	case QuickQuestionsMsg:
		m.quickQuestions = msg.Questions
		return m, nil

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	if m.tab == TabTyped {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.tab == TabVoice {
			m.tab = TabTyped
			m.input.Focus()
		} else if !m.captureUnsupported {
			m.tab = TabVoice
			m.input.Blur()
		}
		return m, nil

	case "ctrl+f":
		if m.controller != nil {
			m.controller.SetFastMode(!m.controller.FastMode())
		}
		return m, nil

	case "esc":
		m.askErr = nil
		return m, nil

	case "enter":
		return m.submitFromActiveTab()
	}

	if m.tab == TabVoice {
		// Digits fire quick-question shortcuts on the voice tab.
		if idx := shortcutIndex(msg.String()); idx >= 0 && idx < len(m.quickQuestions) {
			if m.controller != nil {
				m.controller.Ask(m.quickQuestions[idx].Text)
			}
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitFromActiveTab() (tea.Model, tea.Cmd) {
	if m.controller == nil {
		return m, nil
	}

	if m.tab == TabTyped {
		question := m.input.Value()
		if question != "" {
			m.controller.Ask(question)
			m.input.SetValue("")
		}
		return m, nil
	}

	if m.captureUnsupported {
		return m, nil
	}
	if m.capturing {
		if err := m.controller.StopCapture(); err != nil {
			logger.Warn("failed to stop voice capture", "error", err)
		}
		return m, nil
	}
	if err := m.controller.StartCapture(); err != nil {
		m.notice = "Could not start voice capture: " + err.Error()
		return m, clearNoticeCmd()
	}
	return m, nil
}

func shortcutIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	return int(key[0] - '1')
}
