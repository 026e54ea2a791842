package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mkearns79/linkslogic/rules"
)

type rulesClientStub struct {
	mu        sync.Mutex
	questions []string
	fastModes []bool

	answer *rules.Answer
	err    error

	// block, when non-nil, holds Ask until closed.
	block chan struct{}
	// entered, when non-nil, receives a signal as each Ask begins.
	entered chan struct{}
}

func (stub *rulesClientStub) Ask(ctx context.Context, question string, opts ...rules.AskOption) (*rules.Answer, error) {
	options := rules.AskOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	stub.mu.Lock()
	stub.questions = append(stub.questions, question)
	stub.fastModes = append(stub.fastModes, options.FastMode)
	block := stub.block
	entered := stub.entered
	stub.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if stub.err != nil {
		return nil, stub.err
	}
	return stub.answer, nil
}

func (stub *rulesClientStub) askedQuestions() []string {
	stub.mu.Lock()
	defer stub.mu.Unlock()
	return append([]string(nil), stub.questions...)
}

func waitForSignal(t *testing.T, signal <-chan struct{}, failure string) {
	t.Helper()
	select {
	case <-signal:
	case <-time.After(time.Second):
		t.Fatalf("%s", failure)
	}
}

func TestSessionTypedQuestionDeliversAnswer(t *testing.T) {
	stub := &rulesClientStub{answer: &rules.Answer{
		Success:     true,
		Answer:      "Stroke and distance under Rule 18.2.\n• Replay from the previous spot\n• One penalty stroke",
		Question:    "what happens when my ball is lost",
		RuleType:    rules.RuleTypeOfficial,
		RuleNumbers: []string{"18.2"},
		Confidence:  rules.ConfidenceHigh,
	}}

	s := NewSession(WithRulesClient(stub))

	answered := make(chan rules.Answer, 1)
	s.Run(testContext(t),
		WithAnswerCallback(func(answer rules.Answer) { answered <- answer }),
		WithAskFailedCallback(func(question string, err error) {
			t.Errorf("unexpected ask failure for %q: %v", question, err)
		}),
	)

	s.Ask("what happens when my ball is lost")

	select {
	case answer := <-answered:
		if answer.RuleType != rules.RuleTypeOfficial {
			t.Fatalf("expected official rule type, got %q", answer.RuleType)
		}
		if answer.Confidence != rules.ConfidenceHigh {
			t.Fatalf("expected high confidence, got %q", answer.Confidence)
		}
		if len(answer.RuleNumbers) != 1 || answer.RuleNumbers[0] != "18.2" {
			t.Fatalf("expected rule 18.2, got %v", answer.RuleNumbers)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for an answer")
	}

	if questions := stub.askedQuestions(); len(questions) != 1 || questions[0] != "what happens when my ball is lost" {
		t.Fatalf("unexpected questions sent to the rules client: %v", questions)
	}

	snapshot := s.Answer()
	if snapshot == nil || snapshot.Answer != stub.answer.Answer {
		t.Fatalf("expected the answer to be retained on the session, got %+v", snapshot)
	}
	// The snapshot is a copy; mutating it must not leak back.
	snapshot.RuleNumbers[0] = "mutated"
	if again := s.Answer(); again.RuleNumbers[0] != "18.2" {
		t.Fatalf("expected answer snapshots to be independent copies, got %v", again.RuleNumbers)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("expected no retained error, got %v", err)
	}
}

func TestSessionApplicationErrorSurfacesAsFailure(t *testing.T) {
	stub := &rulesClientStub{err: &rules.APIError{Message: "club not found"}}

	s := NewSession(WithRulesClient(stub))

	failed := make(chan error, 1)
	s.Run(testContext(t),
		WithAskFailedCallback(func(question string, err error) { failed <- err }),
		WithAnswerCallback(func(answer rules.Answer) {
			t.Errorf("unexpected answer: %+v", answer)
		}),
	)

	s.Ask("is there relief from the cart path")

	select {
	case err := <-failed:
		apiErr := &rules.APIError{}
		if !errors.As(err, &apiErr) || apiErr.Message != "club not found" {
			t.Fatalf("expected the application error to be surfaced, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for the failure callback")
	}

	if s.Answer() != nil {
		t.Fatalf("expected no retained answer after a failure")
	}
	if err := s.Err(); err == nil {
		t.Fatalf("expected the failure to be retained on the session")
	}
}

func TestSessionGateDropsConcurrentSubmission(t *testing.T) {
	release := make(chan struct{})
	stub := &rulesClientStub{
		answer:  &rules.Answer{Success: true, Answer: "Play it as it lies."},
		block:   release,
		entered: make(chan struct{}, 2),
	}

	s := NewSession(WithRulesClient(stub))

	blocked := make(chan struct{}, 1)
	answered := make(chan struct{}, 1)
	s.Run(testContext(t),
		WithQuestionBlockedCallback(func(question string) { blocked <- struct{}{} }),
		WithAnswerCallback(func(rules.Answer) { answered <- struct{}{} }),
	)

	s.Ask("first question")
	waitForSignal(t, stub.entered, "timed out waiting for the first question to reach the rules client")
	s.Ask("second question")

	waitForSignal(t, blocked, "timed out waiting for the second question to be dropped")
	if !s.InFlight() {
		t.Fatalf("expected the first question to still be in flight")
	}
	if questions := stub.askedQuestions(); len(questions) != 1 {
		t.Fatalf("expected only the first question to reach the rules client, got %v", questions)
	}

	close(release)
	waitForSignal(t, answered, "timed out waiting for the first answer")

	// With the gate released, a new question goes through.
	stub.mu.Lock()
	stub.block = nil
	stub.mu.Unlock()
	s.Ask("third question")
	waitForSignal(t, answered, "timed out waiting for the third answer")

	if questions := stub.askedQuestions(); len(questions) != 2 || questions[1] != "third question" {
		t.Fatalf("expected the third question to be admitted, got %v", questions)
	}
}

func TestSessionBlankQuestionIsIgnored(t *testing.T) {
	stub := &rulesClientStub{answer: &rules.Answer{Success: true, Answer: "ok"}}

	s := NewSession(WithRulesClient(stub))
	s.Run(testContext(t))

	s.Ask("   ")
	time.Sleep(20 * time.Millisecond)

	if questions := stub.askedQuestions(); len(questions) != 0 {
		t.Fatalf("expected blank questions to be dropped, got %v", questions)
	}
	if s.InFlight() {
		t.Fatalf("expected no in-flight request after a blank question")
	}
}

func TestSessionFastModeForwardedPerQuestion(t *testing.T) {
	stub := &rulesClientStub{answer: &rules.Answer{Success: true, Answer: "ok"}}

	s := NewSession(WithRulesClient(stub), WithFastMode(true))

	answered := make(chan struct{}, 1)
	s.Run(testContext(t), WithAnswerCallback(func(rules.Answer) { answered <- struct{}{} }))

	s.Ask("first")
	waitForSignal(t, answered, "timed out waiting for the first answer")

	s.SetFastMode(false)
	s.Ask("second")
	waitForSignal(t, answered, "timed out waiting for the second answer")

	stub.mu.Lock()
	defer stub.mu.Unlock()
	if len(stub.fastModes) != 2 || stub.fastModes[0] != true || stub.fastModes[1] != false {
		t.Fatalf("expected fast mode to track the session setting, got %v", stub.fastModes)
	}
}

func TestSessionVoiceFlowSubmitsDebouncedUtterance(t *testing.T) {
	sttStub := &speechToTextClientStub{}
	rulesStub := &rulesClientStub{answer: &rules.Answer{
		Success:    true,
		Answer:     "Take lateral relief within two club-lengths.",
		RuleType:   rules.RuleTypeOfficial,
		Confidence: rules.ConfidenceHigh,
	}}

	s := NewSession(
		WithSpeechToTextClient(sttStub),
		WithRulesClient(rulesStub),
		WithQuietPeriod(testQuietPeriod),
	)

	var transcriptMu sync.Mutex
	var transcripts []string
	captureEnded := make(chan struct{}, 1)
	answered := make(chan rules.Answer, 1)
	s.Run(testContext(t),
		WithTranscriptCallback(func(transcript string) {
			transcriptMu.Lock()
			transcripts = append(transcripts, transcript)
			transcriptMu.Unlock()
		}),
		WithCaptureStateChangedCallback(func(isCapturing bool) {
			if !isCapturing {
				captureEnded <- struct{}{}
			}
		}),
		WithAnswerCallback(func(answer rules.Answer) { answered <- answer }),
	)

	if !s.CaptureSupported() {
		t.Fatalf("expected capture to be supported with a configured client")
	}
	if err := s.StartCapture(); err != nil {
		t.Fatalf("failed to start capture: %v", err)
	}
	if !s.IsCapturing() {
		t.Fatalf("expected session to report capturing")
	}

	options := sttStub.transcriptionOptions()
	options.InterimTranscriptionCallback("red stakes")
	options.TranscriptionCallback("red stakes near the green")
	options.InterimTranscriptionCallback("what are")
	options.TranscriptionCallback("what are my options")

	if got := s.Transcript(); got != "red stakes near the green what are my options" {
		t.Fatalf("unexpected transcript %q", got)
	}

	waitForSignal(t, captureEnded, "timed out waiting for quiet-period expiry to end capture")
	if got := sttStub.stopped.Load(); got != 1 {
		t.Fatalf("expected quiet-period expiry to stop the recognition stream once, got %d", got)
	}

	select {
	case answer := <-answered:
		if answer.Answer != rulesStub.answer.Answer {
			t.Fatalf("unexpected answer %q", answer.Answer)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for the voice answer")
	}

	if questions := rulesStub.askedQuestions(); len(questions) != 1 ||
		questions[0] != "red stakes near the green what are my options" {
		t.Fatalf("expected the assembled utterance to be submitted, got %v", questions)
	}

	transcriptMu.Lock()
	defer transcriptMu.Unlock()
	if len(transcripts) == 0 || transcripts[len(transcripts)-1] != "red stakes near the green what are my options" {
		t.Fatalf("expected transcript snapshots to end with the full utterance, got %v", transcripts)
	}
}

func TestSessionStopCaptureDiscardsUtterance(t *testing.T) {
	sttStub := &speechToTextClientStub{}
	rulesStub := &rulesClientStub{answer: &rules.Answer{Success: true, Answer: "ok"}}

	s := NewSession(
		WithSpeechToTextClient(sttStub),
		WithRulesClient(rulesStub),
		WithQuietPeriod(testQuietPeriod),
	)
	s.Run(testContext(t))

	if err := s.StartCapture(); err != nil {
		t.Fatalf("failed to start capture: %v", err)
	}
	sttStub.transcriptionOptions().TranscriptionCallback("never mind")

	if err := s.StopCapture(); err != nil {
		t.Fatalf("failed to stop capture: %v", err)
	}

	waitForQuiet(t)
	if questions := rulesStub.askedQuestions(); len(questions) != 0 {
		t.Fatalf("expected a stopped capture to submit nothing, got %v", questions)
	}
	if s.IsCapturing() {
		t.Fatalf("expected session to be idle after stop")
	}
	if got := s.Transcript(); got != "" {
		t.Fatalf("expected transcript to be discarded, got %q", got)
	}
}

func TestSessionWithoutSpeechClientReportsUnsupported(t *testing.T) {
	s := NewSession(WithRulesClient(&rulesClientStub{}))

	unsupported := make(chan struct{}, 1)
	s.Run(testContext(t), WithCaptureUnsupportedCallback(func() { unsupported <- struct{}{} }))

	waitForSignal(t, unsupported, "expected the unsupported callback to fire")

	if s.CaptureSupported() {
		t.Fatalf("expected capture to be unsupported without a client")
	}
	if err := s.StartCapture(); err != nil {
		t.Fatalf("expected start without capture support to be a no-op, got %v", err)
	}
	if s.IsCapturing() {
		t.Fatalf("expected no capture activity without a client")
	}
}
