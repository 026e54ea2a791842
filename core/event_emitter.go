package session

import events "github.com/mkearns79/linkslogic/core/events"

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts RunOptions) eventEmitter {
	return func(event events.Event) {
		switch typedEvent := event.(type) {
		case events.CaptureStarted:
			if opts.onCaptureStateChanged != nil {
				opts.onCaptureStateChanged(true)
			}
		case events.CaptureEnded:
			if opts.onCaptureStateChanged != nil {
				opts.onCaptureStateChanged(false)
			}
		case events.CaptureError:
			if opts.onCaptureError != nil {
				opts.onCaptureError(typedEvent.Err)
			}
		case events.CaptureUnsupported:
			if opts.onCaptureUnsupported != nil {
				opts.onCaptureUnsupported()
			}
		case events.TranscriptInterimUpdated:
			if opts.onInterimTranscript != nil {
				opts.onInterimTranscript(typedEvent.Interim)
			}
		case events.TranscriptSegment:
			if opts.onTranscriptSegment != nil {
				opts.onTranscriptSegment(typedEvent.Segment)
			}
		case events.TranscriptUpdated:
			if opts.onTranscript != nil {
				opts.onTranscript(typedEvent.Transcript)
			}
		case events.QuestionSubmitted:
			if opts.onQuestionSubmitted != nil {
				opts.onQuestionSubmitted(typedEvent.Question, typedEvent.Source)
			}
		case events.QuestionBlocked:
			if opts.onQuestionBlocked != nil {
				opts.onQuestionBlocked(typedEvent.Question)
			}
		case events.QuestionFailed:
			if opts.onAskFailed != nil {
				opts.onAskFailed(typedEvent.Question, typedEvent.Err)
			}
		case events.AnswerReceived:
			if opts.onAnswer != nil {
				opts.onAnswer(typedEvent.Answer)
			}
		}
	}
}
