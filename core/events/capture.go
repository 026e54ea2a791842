package events

const (
	// KindCaptureStarted identifies the start of a voice capture attempt.
	KindCaptureStarted Kind = "capture.started"
	// KindCaptureEnded identifies the end of the recognition stream.
	KindCaptureEnded Kind = "capture.ended"
	// KindCaptureError identifies a platform-level recognition failure.
	KindCaptureError Kind = "capture.error"
	// KindCaptureUnsupported identifies a platform without speech recognition.
	KindCaptureUnsupported Kind = "capture.unsupported"
)

// CaptureStarted marks the start of a voice capture attempt.
type CaptureStarted struct{ Base }

// NewCaptureStarted creates a capture started event.
func NewCaptureStarted() CaptureStarted {
	return CaptureStarted{Base: NewBase(KindCaptureStarted)}
}

// CaptureEnded marks the end of the recognition stream.
type CaptureEnded struct{ Base }

// NewCaptureEnded creates a capture ended event.
func NewCaptureEnded() CaptureEnded {
	return CaptureEnded{Base: NewBase(KindCaptureEnded)}
}

// CaptureError carries a recognition failure that ended the capture session.
type CaptureError struct {
	Base
	Err error
}

// NewCaptureError creates a capture error event.
func NewCaptureError(err error) CaptureError {
	return CaptureError{Base: NewBase(KindCaptureError), Err: err}
}

// CaptureUnsupported marks that voice input is unavailable on this platform.
type CaptureUnsupported struct{ Base }

// NewCaptureUnsupported creates a capture unsupported event.
func NewCaptureUnsupported() CaptureUnsupported {
	return CaptureUnsupported{Base: NewBase(KindCaptureUnsupported)}
}
