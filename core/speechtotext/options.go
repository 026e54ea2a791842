// Package speechtotext defines the contract between the capture facade
// and streaming speech-recognition clients.
package speechtotext

import "github.com/mkearns79/linkslogic/core/audio"

type TranscriptionOptions struct {
	// InterimTranscriptionCallback receives mutable interim results; each
	// call supersedes the previous interim text.
	InterimTranscriptionCallback func(transcript string)
	// TranscriptionCallback receives finalized transcript segments in
	// arrival order.
	TranscriptionCallback func(transcript string)

	SpeechStartedCallback func()
	// StreamClosedCallback fires when the recognition stream ends, whether
	// by explicit stop or by error.
	StreamClosedCallback func()
	// ErrorCallback receives platform-level recognition failures. The
	// stream is terminated afterwards; StreamClosedCallback still fires.
	ErrorCallback func(err error)

	EncodingInfo audio.EncodingInfo
}

type TranscriptionOption func(*TranscriptionOptions)

func WithInterimTranscriptionCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.InterimTranscriptionCallback = callback
	}
}

func WithTranscriptionCallback(callback func(transcript string)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.TranscriptionCallback = callback
	}
}

func WithSpeechStartedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.SpeechStartedCallback = callback
	}
}

func WithStreamClosedCallback(callback func()) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.StreamClosedCallback = callback
	}
}

func WithErrorCallback(callback func(err error)) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.ErrorCallback = callback
	}
}

func WithEncodingInfo(encodingInfo audio.EncodingInfo) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.EncodingInfo = encodingInfo
	}
}
