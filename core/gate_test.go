package session

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestGateSingleInFlight(t *testing.T) {
	gate := &requestGate{}

	if !gate.TryAcquire() {
		t.Fatalf("expected acquire to succeed on an idle gate")
	}
	if !gate.InFlight() {
		t.Fatalf("expected gate to report in-flight after acquire")
	}
	if gate.TryAcquire() {
		t.Fatalf("expected second acquire to fail while in-flight")
	}

	gate.Release()
	if gate.InFlight() {
		t.Fatalf("expected gate to be idle after release")
	}
	if !gate.TryAcquire() {
		t.Fatalf("expected acquire to succeed again after release")
	}
}

func TestGateConcurrentAcquireAdmitsOne(t *testing.T) {
	gate := &requestGate{}

	var wg sync.WaitGroup
	var admitted atomic.Int32
	start := make(chan struct{})
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if gate.TryAcquire() {
				admitted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := admitted.Load(); got != 1 {
		t.Fatalf("expected exactly one goroutine to acquire the gate, got %d", got)
	}
}
