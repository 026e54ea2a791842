package session

import (
	"context"
	"fmt"

	"github.com/mkearns79/linkslogic/core/audio"
	events "github.com/mkearns79/linkslogic/core/events"
	"github.com/mkearns79/linkslogic/core/speechtotext"
)

type speechCapture struct {
	// client stores the configured speech-to-text implementation.
	client SpeechToText

	emitEvent eventEmitter
}

func newSpeechCapture(client SpeechToText) *speechCapture {
	return &speechCapture{
		client:    client,
		emitEvent: noopEventEmitter,
	}
}

func (s *speechCapture) set(client SpeechToText) {
	if s != nil {
		s.client = client
	}
}

// IsSupported reports whether voice capture can be used at all. Without
// a configured client Start is a no-op.
func (s *speechCapture) IsSupported() bool {
	return s != nil && s.client != nil
}

func (s *speechCapture) Start(ctx context.Context, encodingInfo *audio.EncodingInfo) error {
	if !s.IsSupported() {
		return nil
	}

	captureOptions := []speechtotext.TranscriptionOption{
		speechtotext.WithInterimTranscriptionCallback(s.invokeInterimResult),
		speechtotext.WithTranscriptionCallback(s.invokeFinalResult),
		speechtotext.WithStreamClosedCallback(s.invokeCaptureEnded),
		speechtotext.WithErrorCallback(s.invokeCaptureError),
		speechtotext.WithEncodingInfo(*encodingInfo),
	}

	if err := s.client.Transcribe(ctx, captureOptions...); err != nil {
		return fmt.Errorf("failed to start capture: %w", err)
	}

	s.emitEvent(events.NewCaptureStarted())
	return nil
}

func (s *speechCapture) SendAudio(audio []byte) error {
	if !s.IsSupported() {
		return nil
	}

	return s.client.SendAudio(audio)
}

// Stop asks the recognition stream to flush and end. The stream-closed
// callback still fires, so a capture-ended event follows.
func (s *speechCapture) Stop() error {
	if !s.IsSupported() {
		return nil
	}

	if stoppable, ok := s.client.(interface{ StopStream() error }); ok {
		if err := stoppable.StopStream(); err != nil {
			return fmt.Errorf("failed to stop capture: %w", err)
		}
	}
	return nil
}

func (s *speechCapture) Close(ctx context.Context) error {
	if !s.IsSupported() {
		return nil
	}

	switch c := s.client.(type) {
	case interface{ Close(context.Context) error }:
		if err := c.Close(ctx); err != nil {
			return fmt.Errorf("failed to close speech-to-text client: %w", err)
		}
	case interface{ Close(context.Context) }:
		c.Close(ctx)
	case interface{ Close() error }:
		if err := c.Close(); err != nil {
			return fmt.Errorf("failed to close speech-to-text client: %w", err)
		}
	case interface{ Close() }:
		c.Close()
	}

	return nil
}

func (s *speechCapture) SetEventEmitter(emitEvent eventEmitter) {
	if s != nil {
		if emitEvent != nil {
			s.emitEvent = emitEvent
		} else {
			s.emitEvent = noopEventEmitter
		}
	}
}

func (s *speechCapture) invokeInterimResult(transcript string) {
	s.emitEvent(events.NewTranscriptInterimUpdated(transcript))
}

func (s *speechCapture) invokeFinalResult(transcript string) {
	s.emitEvent(events.NewTranscriptSegment(transcript))
}

func (s *speechCapture) invokeCaptureEnded() {
	s.emitEvent(events.NewCaptureEnded())
}

func (s *speechCapture) invokeCaptureError(err error) {
	s.emitEvent(events.NewCaptureError(err))
}
