package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkearns79/linkslogic/brand"
	session "github.com/mkearns79/linkslogic/core"
	events "github.com/mkearns79/linkslogic/core/events"
	"github.com/mkearns79/linkslogic/rules"
)

// Run wires the session callbacks into a bubbletea program and blocks
// until the program exits or ctx is cancelled.
func Run(ctx context.Context, sess *session.Session, client *rules.Client, b brand.Brand) error {
	program := tea.NewProgram(
		New(sess, client, b),
		tea.WithContext(ctx),
	)

	sess.Run(ctx,
		session.WithCaptureStateChangedCallback(func(isCapturing bool) {
			program.Send(CaptureStateMsg{Capturing: isCapturing})
		}),
		session.WithCaptureUnsupportedCallback(func() {
			program.Send(CaptureUnsupportedMsg{})
		}),
		session.WithCaptureErrorCallback(func(err error) {
			program.Send(CaptureErrorMsg{Err: err})
		}),
		session.WithTranscriptCallback(func(transcript string) {
			program.Send(TranscriptMsg{Transcript: transcript})
		}),
		session.WithQuestionSubmittedCallback(func(question string, source events.QuestionSource) {
			program.Send(QuestionSubmittedMsg{Question: question, Source: source})
		}),
		session.WithQuestionBlockedCallback(func(question string) {
			program.Send(QuestionBlockedMsg{Question: question})
		}),
		session.WithAskFailedCallback(func(question string, err error) {
			program.Send(AskFailedMsg{Question: question, Err: err})
		}),
		session.WithAnswerCallback(func(answer rules.Answer) {
			program.Send(AnswerMsg{Answer: answer})
		}),
	)

	_, err := program.Run()
	return err
}
