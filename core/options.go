package session

import (
	"context"
	"time"

	"github.com/mkearns79/linkslogic/core/audio"
	events "github.com/mkearns79/linkslogic/core/events"
	"github.com/mkearns79/linkslogic/core/speechtotext"
	"github.com/mkearns79/linkslogic/rules"
)

type SessionOption func(*Session)

type SpeechToText interface {
	Transcribe(ctx context.Context, opts ...speechtotext.TranscriptionOption) error
	SendAudio(audio []byte) error
}

func WithSpeechToTextClient(client SpeechToText) SessionOption {
	return func(s *Session) {
		s.speechCapture.set(client)
	}
}

// RulesClient answers a single question. *rules.Client satisfies it.
type RulesClient interface {
	Ask(ctx context.Context, question string, opts ...rules.AskOption) (*rules.Answer, error)
}

func WithRulesClient(client RulesClient) SessionOption {
	return func(s *Session) {
		s.rulesClient = client
	}
}

type AudioInput interface {
	audioInputBase
}

type AudioInputFine interface {
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
}

func WithAudioInput(client AudioInput) SessionOption {
	return func(s *Session) { s.audioInput.Set(client) }
}

// WithQuietPeriod overrides the fixed silence threshold that completes
// an utterance.
func WithQuietPeriod(quietPeriod time.Duration) SessionOption {
	return func(s *Session) { s.quietPeriod = quietPeriod }
}

// WithFastMode sets the initial fast-mode preference sent with every
// question.
func WithFastMode(fastMode bool) SessionOption {
	return func(s *Session) { s.fastMode.Store(fastMode) }
}

type RunOptions struct {
	onCaptureStateChanged func(isCapturing bool)
	onCaptureUnsupported  func()
	onCaptureError        func(err error)
	onInterimTranscript   func(interim string)
	onTranscriptSegment   func(segment string)
	onTranscript          func(transcript string)
	onQuestionSubmitted   func(question string, source events.QuestionSource)
	onQuestionBlocked     func(question string)
	onAskFailed           func(question string, err error)
	onAnswer              func(answer rules.Answer)
}

type RunOption func(*RunOptions)

// WithCaptureStateChangedCallback registers a callback for capture
// lifecycle changes (started/ended).
func WithCaptureStateChangedCallback(callback func(isCapturing bool)) RunOption {
	return func(o *RunOptions) {
		o.onCaptureStateChanged = callback
	}
}

// WithCaptureUnsupportedCallback registers a callback fired once when
// the platform cannot do speech recognition; voice input stays disabled.
func WithCaptureUnsupportedCallback(callback func()) RunOption {
	return func(o *RunOptions) {
		o.onCaptureUnsupported = callback
	}
}

func WithCaptureErrorCallback(callback func(err error)) RunOption {
	return func(o *RunOptions) {
		o.onCaptureError = callback
	}
}

// WithInterimTranscriptCallback registers a callback for mutable interim
// results; each call supersedes the previous one.
func WithInterimTranscriptCallback(callback func(interim string)) RunOption {
	return func(o *RunOptions) {
		o.onInterimTranscript = callback
	}
}

// WithTranscriptSegmentCallback registers a callback for finalized
// transcript segments in arrival order.
func WithTranscriptSegmentCallback(callback func(segment string)) RunOption {
	return func(o *RunOptions) {
		o.onTranscriptSegment = callback
	}
}

// WithTranscriptCallback registers a callback for full transcript
// snapshots, accumulated segments plus latest interim.
func WithTranscriptCallback(callback func(transcript string)) RunOption {
	return func(o *RunOptions) {
		o.onTranscript = callback
	}
}

func WithQuestionSubmittedCallback(callback func(question string, source events.QuestionSource)) RunOption {
	return func(o *RunOptions) {
		o.onQuestionSubmitted = callback
	}
}

// WithQuestionBlockedCallback registers a callback for submissions
// dropped while another question is in flight.
func WithQuestionBlockedCallback(callback func(question string)) RunOption {
	return func(o *RunOptions) {
		o.onQuestionBlocked = callback
	}
}

func WithAskFailedCallback(callback func(question string, err error)) RunOption {
	return func(o *RunOptions) {
		o.onAskFailed = callback
	}
}

func WithAnswerCallback(callback func(answer rules.Answer)) RunOption {
	return func(o *RunOptions) {
		o.onAnswer = callback
	}
}

type audioInputBase interface {
	EncodingInfo() audio.EncodingInfo
	Stream(ctx context.Context, onAudio func(audio []byte)) error
	Close()
}
