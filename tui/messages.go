package tui

import (
	events "github.com/mkearns79/linkslogic/core/events"
	"github.com/mkearns79/linkslogic/rules"
)

// CaptureStateMsg reports the capture lifecycle (started/ended).
type CaptureStateMsg struct {
	Capturing bool
}

// CaptureUnsupportedMsg is sent once when the platform cannot do speech
// recognition; voice input stays disabled.
type CaptureUnsupportedMsg struct{}

// CaptureErrorMsg carries a platform-level recognition failure.
type CaptureErrorMsg struct {
	Err error
}

// TranscriptMsg carries the combined transcript snapshot (accumulated
// segments plus latest interim).
type TranscriptMsg struct {
	Transcript string
}

// QuestionSubmittedMsg marks the start of a question request.
type QuestionSubmittedMsg struct {
	Question string
	Source   events.QuestionSource
}

// QuestionBlockedMsg reports a submission dropped while another
// question was in flight.
type QuestionBlockedMsg struct {
	Question string
}

// AnswerMsg carries a successful answer.
type AnswerMsg struct {
	Answer rules.Answer
}

// AskFailedMsg carries a failed question request.
type AskFailedMsg struct {
	Question string
	Err      error
}

// QuickQuestionsMsg carries the shortcut list fetched at startup. On
// fetch failure the list stays empty.
type QuickQuestionsMsg struct {
	Questions []rules.QuickQuestion
}

// ClearNoticeMsg clears the transient notice line after a timeout.
type ClearNoticeMsg struct{}
