package events

import "github.com/mkearns79/linkslogic/rules"

const (
	// KindQuestionSubmitted identifies a question dispatched to the rules service.
	KindQuestionSubmitted Kind = "question.submitted"
	// KindQuestionBlocked identifies a submission dropped while another is in flight.
	KindQuestionBlocked Kind = "question.blocked"
	// KindQuestionFailed identifies a request that ended in an error.
	KindQuestionFailed Kind = "question.failed"
	// KindAnswerReceived identifies a parsed rules answer.
	KindAnswerReceived Kind = "answer.received"
)

// QuestionSource distinguishes how a question entered the request gate.
type QuestionSource string

const (
	SourceVoice QuestionSource = "voice"
	SourceTyped QuestionSource = "typed"
)

// QuestionSubmitted marks a question that passed the request gate.
type QuestionSubmitted struct {
	Base
	ID       string
	Question string
	Source   QuestionSource
	FastMode bool
}

// NewQuestionSubmitted creates a question submitted event.
func NewQuestionSubmitted(id, question string, source QuestionSource, fastMode bool) QuestionSubmitted {
	return QuestionSubmitted{
		Base:     NewBase(KindQuestionSubmitted),
		ID:       id,
		Question: question,
		Source:   source,
		FastMode: fastMode,
	}
}

// QuestionBlocked marks a submission attempt dropped by the request gate.
type QuestionBlocked struct {
	Base
	Question string
}

// NewQuestionBlocked creates a question blocked event.
func NewQuestionBlocked(question string) QuestionBlocked {
	return QuestionBlocked{Base: NewBase(KindQuestionBlocked), Question: question}
}

// QuestionFailed marks a request that ended in a timeout, network, or
// application error.
type QuestionFailed struct {
	Base
	ID       string
	Question string
	Err      error
}

// NewQuestionFailed creates a question failed event.
func NewQuestionFailed(id, question string, err error) QuestionFailed {
	return QuestionFailed{Base: NewBase(KindQuestionFailed), ID: id, Question: question, Err: err}
}

// AnswerReceived carries a parsed rules answer.
type AnswerReceived struct {
	Base
	ID     string
	Answer rules.Answer
}

// NewAnswerReceived creates an answer received event.
func NewAnswerReceived(id string, answer rules.Answer) AnswerReceived {
	return AnswerReceived{Base: NewBase(KindAnswerReceived), ID: id, Answer: answer}
}
