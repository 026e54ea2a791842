package session

import (
	"strings"
	"sync"
	"time"
)

// DefaultQuietPeriod is how long the assembler waits after the last
// recognition event before treating the utterance as complete.
const DefaultQuietPeriod = 5 * time.Second

type assemblerState string

const (
	// stateIdle: no capture attempt is active.
	stateIdle assemblerState = "idle"
	// stateCapturing: capture is active, no quiet-period timer armed yet.
	stateCapturing assemblerState = "capturing"
	// stateQuietPending: capture is active and the quiet-period timer is
	// armed; any new recognition event rearms it.
	stateQuietPending assemblerState = "quiet_pending"
	// stateSubmitted: the utterance was dispatched; nothing more is
	// accepted until capture restarts.
	stateSubmitted assemblerState = "submitted"
)

type assemblerCallbacks struct {
	// onTranscript receives the combined transcript snapshot (accumulated
	// finalized segments plus latest interim) after every event.
	onTranscript func(transcript string)
	// onSubmit receives the transcript exactly once per capture episode,
	// triggered solely by quiet-period expiry.
	onSubmit func(transcript string)
	// stopCapture is invoked on quiet-period expiry to end the underlying
	// recognition stream.
	stopCapture func()
}

// utteranceAssembler folds the incremental recognition stream into a
// single debounced submission. Finalized segments accumulate, interim
// text is replaced on each update, and a fixed quiet period with no new
// event completes the utterance.
type utteranceAssembler struct {
	mu sync.Mutex

	state     assemblerState
	segments  []string
	interim   string
	submitted bool

	// quietTimer is the single armed quiet-period timer; arming a new one
	// cancels the prior. quietGen invalidates callbacks from a timer that
	// already fired when Stop was too late to catch it.
	quietTimer  *time.Timer
	quietGen    uint64
	quietPeriod time.Duration

	callbacks assemblerCallbacks
}

func newUtteranceAssembler(quietPeriod time.Duration, callbacks assemblerCallbacks) *utteranceAssembler {
	if quietPeriod <= 0 {
		quietPeriod = DefaultQuietPeriod
	}
	if callbacks.onTranscript == nil {
		callbacks.onTranscript = func(string) {}
	}
	if callbacks.onSubmit == nil {
		callbacks.onSubmit = func(string) {}
	}
	if callbacks.stopCapture == nil {
		callbacks.stopCapture = func() {}
	}

	return &utteranceAssembler{
		state:       stateIdle,
		quietPeriod: quietPeriod,
		callbacks:   callbacks,
	}
}

// Transcript returns the accumulated finalized segments joined by single
// spaces, concatenated with the latest interim text.
func (a *utteranceAssembler) Transcript() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.transcriptLocked()
}

func (a *utteranceAssembler) transcriptLocked() string {
	transcript := strings.Join(a.segments, " ")
	if a.interim != "" {
		if transcript != "" {
			transcript += " "
		}
		transcript += a.interim
	}
	return transcript
}

func (a *utteranceAssembler) State() assemblerState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// CaptureStarted begins a fresh episode. Accumulated text, interim text,
// and the submitted flag are all reset; a prior quiet-period timer is
// cancelled.
func (a *utteranceAssembler) CaptureStarted() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelQuietLocked()
	a.segments = nil
	a.interim = ""
	a.submitted = false
	a.state = stateCapturing
}

// InterimResult replaces the interim text and rearms the quiet-period
// timer. Events outside an active episode are ignored.
func (a *utteranceAssembler) InterimResult(text string) {
	a.mu.Lock()
	if a.state != stateCapturing && a.state != stateQuietPending {
		a.mu.Unlock()
		return
	}

	a.interim = text
	a.armQuietLocked()
	transcript := a.transcriptLocked()
	a.mu.Unlock()

	a.callbacks.onTranscript(transcript)
}

// FinalResult appends a finalized segment, clears the interim text it
// supersedes, and rearms the quiet-period timer.
func (a *utteranceAssembler) FinalResult(text string) {
	a.mu.Lock()
	if a.state != stateCapturing && a.state != stateQuietPending {
		a.mu.Unlock()
		return
	}

	a.segments = append(a.segments, text)
	a.interim = ""
	a.armQuietLocked()
	transcript := a.transcriptLocked()
	a.mu.Unlock()

	a.callbacks.onTranscript(transcript)
}

// CaptureEnded handles the end of the recognition stream. After a
// submission it is the expected follow-up and changes nothing; before
// one it means the user stopped early, so the episode is discarded
// without submitting.
func (a *utteranceAssembler) CaptureEnded() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == stateSubmitted {
		return
	}

	a.cancelQuietLocked()
	a.segments = nil
	a.interim = ""
	a.state = stateIdle
}

// CaptureFailed discards the episode on a recognition error. No
// submission occurs.
func (a *utteranceAssembler) CaptureFailed() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelQuietLocked()
	a.segments = nil
	a.interim = ""
	a.state = stateIdle
}

func (a *utteranceAssembler) armQuietLocked() {
	if a.quietTimer != nil {
		a.quietTimer.Stop()
	}
	a.quietGen++
	gen := a.quietGen
	a.quietTimer = time.AfterFunc(a.quietPeriod, func() { a.quietExpired(gen) })
	a.state = stateQuietPending
}

func (a *utteranceAssembler) cancelQuietLocked() {
	if a.quietTimer != nil {
		a.quietTimer.Stop()
		a.quietTimer = nil
	}
	a.quietGen++
}

func (a *utteranceAssembler) quietExpired(gen uint64) {
	a.mu.Lock()
	// A timer that fired while a rearm held the lock carries a stale
	// generation and must not cut the fresh quiet period short.
	if gen != a.quietGen {
		a.mu.Unlock()
		return
	}
	if a.state != stateQuietPending || a.submitted {
		a.mu.Unlock()
		return
	}

	a.quietTimer = nil
	transcript := a.transcriptLocked()
	if strings.TrimSpace(transcript) == "" {
		// Nothing worth submitting; the timer is simply not rearmed.
		a.state = stateCapturing
		a.mu.Unlock()
		return
	}

	a.submitted = true
	a.state = stateSubmitted
	a.mu.Unlock()

	a.callbacks.stopCapture()
	a.callbacks.onSubmit(transcript)
}
