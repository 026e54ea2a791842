package session

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/mkearns79/linkslogic/core/audio"
)

type audioInput struct {
	// base stores the configured input client used for streaming audio.
	base audioInputBase
	// fineCaptureControl is set when the input client supports explicit
	// capture controls.
	fineCaptureControl AudioInputFine

	// connected reports whether a concrete input client is configured.
	connected atomic.Bool
	// isCapturing reports whether the input client is currently capturing.
	isCapturing atomic.Bool
	// shouldCapture reports whether the user has an active voice attempt.
	shouldCapture atomic.Bool

	// onInputAudio is called when input audio is received
	onInputAudio func(audio []byte)
}

func newAudioInput(client audioInputBase, onInputAudio func(audio []byte)) *audioInput {
	if onInputAudio == nil {
		onInputAudio = func(audio []byte) {}
	}

	input := audioInput{onInputAudio: onInputAudio}
	input.Set(client)
	return &input
}

func (a *audioInput) Set(client audioInputBase) {
	if a == nil {
		return
	}

	a.base = client
	a.fineCaptureControl = nil
	a.connected.Store(false)
	a.isCapturing.Store(false)

	if client == nil {
		return
	}

	a.connected.Store(true)
	if fine, ok := client.(AudioInputFine); ok {
		a.fineCaptureControl = fine
	}
}

func (a *audioInput) IsConfigured() bool            { return a != nil && a.connected.Load() }
func (a *audioInput) SupportsCaptureControls() bool { return a != nil && a.fineCaptureControl != nil }
func (a *audioInput) IsCapturing() bool             { return a != nil && a.isCapturing.Load() }
func (a *audioInput) ShouldCapture() bool           { return a != nil && a.shouldCapture.Load() }

// RequestCapture opens the microphone for a voice attempt.
func (a *audioInput) RequestCapture(ctx context.Context) error {
	if a == nil {
		return nil
	}

	a.shouldCapture.Store(true)
	return a.capture(ctx)
}

// ReleaseCapture ends the voice attempt and stops the microphone when
// the client supports explicit controls.
func (a *audioInput) ReleaseCapture(context.Context) error {
	if a == nil {
		return nil
	}

	a.shouldCapture.Store(false)
	return a.stopCapture()
}

func (a *audioInput) capture(ctx context.Context) error {
	if !a.isCapturing.CompareAndSwap(false, true) {
		return nil
	}

	if a.SupportsCaptureControls() {
		go func() {
			if err := a.fineCaptureControl.StartCapture(ctx, a.onAudio); err != nil {
				a.isCapturing.Store(false)
				logger.Warn("failed to start audio input", "error", err)
			}
		}()
		return nil
	}

	if a.base != nil {
		go func() {
			if err := a.base.Stream(ctx, a.onAudio); err != nil {
				a.isCapturing.Store(false)
				logger.Warn("failed to start audio input", "error", err)
			}
		}()
		return nil
	}

	a.isCapturing.Store(false)
	return nil
}

func (a *audioInput) stopCapture() error {
	if !a.SupportsCaptureControls() {
		return nil
	}

	if err := a.fineCaptureControl.StopCapture(); err != nil {
		return err
	}
	a.isCapturing.Store(false)
	return nil
}

func (a *audioInput) Close() error {
	var errs error
	if a.base != nil && a.IsConfigured() {
		if a.fineCaptureControl != nil {
			if err := a.fineCaptureControl.StopCapture(); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		a.base.Close()
	}
	a.isCapturing.Store(false)

	return errs
}

func (a *audioInput) EncodingInfo() audio.EncodingInfo {
	if a == nil || a.base == nil {
		return audio.DefaultEncodingInfo()
	}

	return a.base.EncodingInfo()
}

func (a *audioInput) onAudio(audio []byte) {
	if !a.ShouldCapture() {
		return
	}

	a.onInputAudio(audio)
}
