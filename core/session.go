// Package session coordinates one question-answering session: voice
// capture assembled into a debounced utterance, typed questions, a
// single-in-flight request gate, and the rules service client behind it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	events "github.com/mkearns79/linkslogic/core/events"
	"github.com/mkearns79/linkslogic/rules"
)

type Session struct {
	id string

	closeOnce sync.Once

	// speechCapture is the capture facade used to handle optional client wiring.
	speechCapture speechCapture
	// audioInput is the input facade used to normalize microphone behavior.
	audioInput audioInput
	// assembler folds recognition events into debounced submissions.
	assembler *utteranceAssembler
	// gate keeps at most one question in flight process-wide.
	gate requestGate

	rulesClient RulesClient

	quietPeriod time.Duration
	fastMode    atomic.Bool

	runOptions    RunOptions
	emitCallbacks eventEmitter
	baseContext   context.Context

	answerMu   sync.RWMutex
	lastAnswer *rules.Answer
	lastErr    error
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id:            uuid.NewString(),
		baseContext:   context.Background(),
		quietPeriod:   DefaultQuietPeriod,
		emitCallbacks: noopEventEmitter,
	}

	s.speechCapture = *newSpeechCapture(nil)
	s.audioInput = *newAudioInput(nil, func(audio []byte) {
		if err := s.speechCapture.SendAudio(audio); err != nil {
			logger.Warn("failed to forward audio to recognition stream", "error", err)
		}
	})

	for _, opt := range opts {
		opt(s)
	}

	s.assembler = newUtteranceAssembler(s.quietPeriod, assemblerCallbacks{
		onTranscript: func(transcript string) {
			s.emitCallbacks(events.NewTranscriptUpdated(transcript))
		},
		onSubmit: func(transcript string) {
			s.submit(transcript, events.SourceVoice)
		},
		stopCapture: s.endCaptureStream,
	})
	s.speechCapture.SetEventEmitter(s.respondToEvent)

	return s
}

func (s *Session) ID() string { return s.id }

// Run wires the session callbacks and reports platform capabilities.
// ctx is used as the base context for capture and question requests;
// cancelling it closes the session.
//
// Contract: call Run at most once per session instance.
func (s *Session) Run(ctx context.Context, opts ...RunOption) {
	s.runOptions = RunOptions{}
	for _, opt := range opts {
		opt(&s.runOptions)
	}

	s.baseContext = ctx
	s.emitCallbacks = newCallbackEventEmitter(s.runOptions)

	go func() {
		<-ctx.Done()
		s.Close()
	}()

	if !s.speechCapture.IsSupported() {
		s.emitCallbacks(events.NewCaptureUnsupported())
	}
}

func (s *Session) Close() {
	s.closeOnce.Do(func() {
		if err := s.audioInput.Close(); err != nil {
			recordedErr := fmt.Errorf("failed to close audio input: %w", err)
			span := trace.SpanFromContext(s.baseContext)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}

		if err := s.speechCapture.Close(s.baseContext); err != nil {
			recordedErr := fmt.Errorf("failed to close speech-to-text client: %w", err)
			span := trace.SpanFromContext(s.baseContext)
			span.RecordError(recordedErr)
			span.SetStatus(codes.Error, recordedErr.Error())
		}
	})
}

// CaptureSupported reports whether voice input is available at all.
func (s *Session) CaptureSupported() bool { return s.speechCapture.IsSupported() }

// IsCapturing reports whether a voice attempt is currently active.
func (s *Session) IsCapturing() bool {
	state := s.assembler.State()
	return state == stateCapturing || state == stateQuietPending
}

// Transcript returns the current combined transcript snapshot.
func (s *Session) Transcript() string { return s.assembler.Transcript() }

func (s *Session) FastMode() bool            { return s.fastMode.Load() }
func (s *Session) SetFastMode(fastMode bool) { s.fastMode.Store(fastMode) }

// InFlight reports whether a question request is pending.
func (s *Session) InFlight() bool { return s.gate.InFlight() }

// Answer returns a copy of the last successful answer, or nil when none
// is displayed.
func (s *Session) Answer() *rules.Answer {
	s.answerMu.RLock()
	defer s.answerMu.RUnlock()

	if s.lastAnswer == nil {
		return nil
	}
	answer := rules.Answer{}
	if err := copier.CopyWithOption(&answer, s.lastAnswer, copier.Option{DeepCopy: true}); err != nil {
		logger.Warn("failed to copy answer snapshot", "error", err)
		return nil
	}
	return &answer
}

// Err returns the error of the last failed request, cleared when a new
// request starts.
func (s *Session) Err() error {
	s.answerMu.RLock()
	defer s.answerMu.RUnlock()
	return s.lastErr
}

// StartCapture begins a voice attempt. It is a no-op when capture is
// unsupported or already active. Restarting after a submission resets
// the utterance state.
func (s *Session) StartCapture() error {
	if !s.speechCapture.IsSupported() {
		return nil
	}
	if s.IsCapturing() {
		return nil
	}

	encodingInfo := s.audioInput.EncodingInfo()
	if err := s.speechCapture.Start(s.baseContext, &encodingInfo); err != nil {
		return fmt.Errorf("failed to start voice capture: %w", err)
	}

	if err := s.audioInput.RequestCapture(s.baseContext); err != nil {
		return fmt.Errorf("failed to open microphone: %w", err)
	}
	return nil
}

// StopCapture ends the voice attempt before quiet-period expiry. The
// utterance is discarded; no submission occurs.
func (s *Session) StopCapture() error {
	if !s.speechCapture.IsSupported() {
		return nil
	}

	s.endCaptureStream()
	return nil
}

// Ask submits a typed question, bypassing capture and entering directly
// at the request gate.
func (s *Session) Ask(question string) {
	s.submit(question, events.SourceTyped)
}

// endCaptureStream releases the microphone and flushes the recognition
// stream; the stream close surfaces as a capture-ended event.
func (s *Session) endCaptureStream() {
	if err := s.audioInput.ReleaseCapture(s.baseContext); err != nil {
		logger.Warn("failed to release microphone", "error", err)
	}
	if err := s.speechCapture.Stop(); err != nil {
		logger.Warn("failed to stop recognition stream", "error", err)
	}
}

func (s *Session) submit(question string, source events.QuestionSource) {
	question = strings.TrimSpace(question)
	if question == "" {
		return
	}

	if !s.gate.TryAcquire() {
		logger.Warn("dropping question, another request is in flight", "question", question)
		s.emitCallbacks(events.NewQuestionBlocked(question))
		return
	}

	if s.rulesClient == nil {
		s.gate.Release()
		s.emitCallbacks(events.NewQuestionFailed("", question, errors.New("no rules client configured")))
		return
	}

	s.answerMu.Lock()
	s.lastAnswer = nil
	s.lastErr = nil
	s.answerMu.Unlock()

	requestID := uuid.NewString()
	s.emitCallbacks(events.NewQuestionSubmitted(requestID, question, source, s.fastMode.Load()))

	go func() {
		defer s.gate.Release()

		ctx, span := tracer.Start(s.baseContext, "submit question")
		defer span.End()

		answer, err := s.rulesClient.Ask(ctx, question, rules.WithFastMode(s.fastMode.Load()))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			s.answerMu.Lock()
			s.lastErr = err
			s.answerMu.Unlock()

			s.emitCallbacks(events.NewQuestionFailed(requestID, question, err))
			return
		}

		s.answerMu.Lock()
		s.lastAnswer = answer
		s.answerMu.Unlock()

		s.emitCallbacks(events.NewAnswerReceived(requestID, *answer))
	}()
}

// respondToEvent routes raw capture events through the assembler before
// forwarding them to the registered callbacks. Events are processed in
// emission order.
func (s *Session) respondToEvent(event events.Event) {
	switch typedEvent := event.(type) {
	case events.CaptureStarted:
		s.assembler.CaptureStarted()
	case events.CaptureEnded:
		s.assembler.CaptureEnded()
	case events.CaptureError:
		s.assembler.CaptureFailed()
		if err := s.audioInput.ReleaseCapture(s.baseContext); err != nil {
			logger.Warn("failed to release microphone after capture error", "error", err)
		}
	case events.TranscriptInterimUpdated:
		s.assembler.InterimResult(typedEvent.Interim)
	case events.TranscriptSegment:
		s.assembler.FinalResult(typedEvent.Segment)
	}

	s.emitCallbacks(event)
}
