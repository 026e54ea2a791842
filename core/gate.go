package session

import "sync/atomic"

// requestGate keeps at most one question-submission in flight
// process-wide. There is no queue: an attempt made while another request
// is pending is dropped outright.
type requestGate struct {
	inFlight atomic.Bool
}

// TryAcquire marks a request as in flight. It reports false, with no
// other side effect, when another request already holds the gate.
func (g *requestGate) TryAcquire() bool {
	return g.inFlight.CompareAndSwap(false, true)
}

// Release clears the in-flight marker. Callers defer it immediately
// after acquiring so every exit path, success, failure, or timeout,
// releases the gate.
func (g *requestGate) Release() {
	g.inFlight.Store(false)
}

func (g *requestGate) InFlight() bool {
	return g.inFlight.Load()
}
