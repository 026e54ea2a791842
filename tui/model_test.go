package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkearns79/linkslogic/brand"
	"github.com/mkearns79/linkslogic/rules"
)

type controllerStub struct {
	asked        []string
	captureStart int
	captureStop  int
	supported    bool
	fastMode     bool
	startErr     error
}

func (c *controllerStub) Ask(question string) { c.asked = append(c.asked, question) }
func (c *controllerStub) StartCapture() error {
	c.captureStart++
	return c.startErr
}
func (c *controllerStub) StopCapture() error {
	c.captureStop++
	return nil
}
func (c *controllerStub) CaptureSupported() bool    { return c.supported }
func (c *controllerStub) FastMode() bool            { return c.fastMode }
func (c *controllerStub) SetFastMode(fastMode bool) { c.fastMode = fastMode }

type fetcherStub struct {
	questions []rules.QuickQuestion
	err       error
}

func (f *fetcherStub) QuickQuestions(context.Context) ([]rules.QuickQuestion, error) {
	return f.questions, f.err
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	}
	panic("unknown key " + s)
}

func TestNewModelDefaultsToVoiceWhenSupported(t *testing.T) {
	m := New(&controllerStub{supported: true}, nil, brand.Default())
	if m.tab != TabVoice {
		t.Errorf("tab = %v, want voice", m.tab)
	}

	m = New(&controllerStub{supported: false}, nil, brand.Default())
	if m.tab != TabTyped {
		t.Errorf("tab = %v, want typed when capture is unsupported", m.tab)
	}
}

func TestTypedSubmit(t *testing.T) {
	controller := &controllerStub{supported: false}
	m := New(controller, nil, brand.Default())
	m.input.SetValue("is a rake an obstruction")

	updated, _ := m.Update(keyMsg("enter"))
	model := updated.(Model)

	if len(controller.asked) != 1 || controller.asked[0] != "is a rake an obstruction" {
		t.Fatalf("asked = %v", controller.asked)
	}
	if model.input.Value() != "" {
		t.Errorf("input should be cleared after submit, got %q", model.input.Value())
	}
}

func TestTypedSubmitEmptyIsIgnored(t *testing.T) {
	controller := &controllerStub{supported: false}
	m := New(controller, nil, brand.Default())

	m.Update(keyMsg("enter"))

	if len(controller.asked) != 0 {
		t.Fatalf("asked = %v, want none", controller.asked)
	}
}

func TestVoiceEnterTogglesCapture(t *testing.T) {
	controller := &controllerStub{supported: true}
	m := New(controller, nil, brand.Default())

	updated, _ := m.Update(keyMsg("enter"))
	if controller.captureStart != 1 {
		t.Fatalf("captureStart = %d, want 1", controller.captureStart)
	}

	model := updated.(Model)
	updated, _ = model.Update(CaptureStateMsg{Capturing: true})
	model = updated.(Model)
	if !model.capturing {
		t.Fatal("should be capturing after capture-started")
	}

	model.Update(keyMsg("enter"))
	if controller.captureStop != 1 {
		t.Fatalf("captureStop = %d, want 1", controller.captureStop)
	}
}

func TestCaptureStartResetsTranscript(t *testing.T) {
	m := New(&controllerStub{supported: true}, nil, brand.Default())

	updated, _ := m.Update(TranscriptMsg{Transcript: "old words"})
	model := updated.(Model)
	updated, _ = model.Update(CaptureStateMsg{Capturing: true})
	model = updated.(Model)

	if model.transcript != "" {
		t.Errorf("transcript = %q, want cleared on capture start", model.transcript)
	}
}

func TestQuestionLifecycle(t *testing.T) {
	m := New(&controllerStub{supported: true}, nil, brand.Default())

	updated, _ := m.Update(QuestionSubmittedMsg{Question: "what is the rule for a lost ball"})
	model := updated.(Model)
	if !model.inFlight {
		t.Fatal("should be in flight after submission")
	}

	answer := rules.Answer{
		Success:     true,
		Answer:      "Stroke and distance under Rule 18.2.",
		RuleType:    rules.RuleTypeOfficial,
		RuleNumbers: []string{"18.2"},
		Confidence:  rules.ConfidenceHigh,
	}
	updated, _ = model.Update(AnswerMsg{Answer: answer})
	model = updated.(Model)

	if model.inFlight {
		t.Fatal("should not be in flight after the answer")
	}
	if model.answer == nil || model.answer.Answer != answer.Answer {
		t.Fatalf("answer = %+v", model.answer)
	}

	view := model.View()
	if !strings.Contains(view, "Official Rules") {
		t.Error("view should show the official-rules label")
	}
	if !strings.Contains(view, "●●●") {
		t.Error("view should show the high-confidence indicator")
	}
	if !strings.Contains(view, "Rule 18.2") {
		t.Error("view should cite the rule number")
	}
	if strings.Contains(view, "Could not reach") || strings.Contains(view, "took too long") {
		t.Error("view should not show an error banner on success")
	}
}

func TestAskFailureShowsServerMessage(t *testing.T) {
	m := New(&controllerStub{supported: true}, nil, brand.Default())

	updated, _ := m.Update(QuestionSubmittedMsg{Question: "anything"})
	model := updated.(Model)
	updated, _ = model.Update(AskFailedMsg{
		Question: "anything",
		Err:      &rules.APIError{Message: "club not found"},
	})
	model = updated.(Model)

	if model.answer != nil {
		t.Fatal("no answer should be rendered after a failure")
	}
	if !strings.Contains(model.View(), "club not found") {
		t.Error("view should show exactly the server-supplied message")
	}

	// esc dismisses the banner.
	updated, _ = model.Update(keyMsg("esc"))
	model = updated.(Model)
	if strings.Contains(model.View(), "club not found") {
		t.Error("banner should be dismissed")
	}
}

func TestErrorBannerDistinguishesFailureClasses(t *testing.T) {
	timeoutErr := fmt.Errorf("%w (after 10.0s)", rules.ErrTimeout)
	if text := errorBannerText(timeoutErr); !strings.Contains(text, "too long") {
		t.Errorf("timeout banner = %q", text)
	}

	if text := errorBannerText(&rules.APIError{Message: "club not found"}); text != "club not found" {
		t.Errorf("application banner = %q", text)
	}

	if text := errorBannerText(errors.New("dial tcp: refused")); !strings.Contains(text, "reach") {
		t.Errorf("network banner = %q", text)
	}
}

func TestCaptureUnsupportedShowsPersistentBanner(t *testing.T) {
	m := New(&controllerStub{supported: true}, nil, brand.Default())

	updated, _ := m.Update(CaptureUnsupportedMsg{})
	model := updated.(Model)

	if model.tab != TabTyped {
		t.Error("should fall back to typed input")
	}
	if !strings.Contains(model.View(), "Voice input is not available") {
		t.Error("view should show the unsupported banner")
	}

	// Unlike the error banner, esc does not clear it.
	updated, _ = model.Update(keyMsg("esc"))
	model = updated.(Model)
	if !strings.Contains(model.View(), "Voice input is not available") {
		t.Error("unsupported banner should be persistent")
	}
}

func TestQuestionBlockedShowsTransientNotice(t *testing.T) {
	m := New(&controllerStub{supported: true}, nil, brand.Default())

	updated, _ := m.Update(QuestionBlockedMsg{Question: "second question"})
	model := updated.(Model)
	if !strings.Contains(model.View(), "Waiting on the previous question") {
		t.Error("view should show the waiting notice")
	}

	updated, _ = model.Update(ClearNoticeMsg{})
	model = updated.(Model)
	if strings.Contains(model.View(), "Waiting on the previous question") {
		t.Error("notice should clear after its timeout")
	}
}

func TestQuickQuestionShortcuts(t *testing.T) {
	controller := &controllerStub{supported: true}
	m := New(controller, nil, brand.Default())

	updated, _ := m.Update(QuickQuestionsMsg{Questions: []rules.QuickQuestion{
		{ID: "lost", Text: "What if my ball is lost?", Icon: "⛳"},
		{ID: "water", Text: "My ball is in the water"},
	}})
	model := updated.(Model)

	view := model.View()
	if !strings.Contains(view, "What if my ball is lost?") {
		t.Error("view should list quick questions")
	}

	model.Update(keyMsg("2"))
	if len(controller.asked) != 1 || controller.asked[0] != "My ball is in the water" {
		t.Fatalf("asked = %v", controller.asked)
	}

	// Out-of-range digits do nothing.
	model.Update(keyMsg("9"))
	if len(controller.asked) != 1 {
		t.Fatalf("asked = %v, want only the shortcut question", controller.asked)
	}
}

func TestFetchQuickQuestionsCmd(t *testing.T) {
	fetcher := &fetcherStub{questions: []rules.QuickQuestion{{ID: "a", Text: "A?"}}}
	msg := fetchQuickQuestionsCmd(fetcher)()
	loaded, ok := msg.(QuickQuestionsMsg)
	if !ok || len(loaded.Questions) != 1 {
		t.Fatalf("msg = %#v", msg)
	}

	// A failed fetch leaves the list empty instead of erroring.
	fetcher = &fetcherStub{err: errors.New("boom")}
	msg = fetchQuickQuestionsCmd(fetcher)()
	loaded, ok = msg.(QuickQuestionsMsg)
	if !ok || len(loaded.Questions) != 0 {
		t.Fatalf("msg = %#v", msg)
	}
}

func TestFastModeToggle(t *testing.T) {
	controller := &controllerStub{supported: true}
	m := New(controller, nil, brand.Default())

	m.Update(keyMsg("ctrl+f"))
	if !controller.fastMode {
		t.Fatal("fast mode should be enabled after toggle")
	}
}

func TestTabSwitching(t *testing.T) {
	m := New(&controllerStub{supported: true}, nil, brand.Default())

	updated, _ := m.Update(keyMsg("tab"))
	model := updated.(Model)
	if model.tab != TabTyped {
		t.Fatalf("tab = %v, want typed", model.tab)
	}

	updated, _ = model.Update(keyMsg("tab"))
	model = updated.(Model)
	if model.tab != TabVoice {
		t.Fatalf("tab = %v, want voice", model.tab)
	}

	// Once capture is unsupported the voice tab is unreachable.
	updated, _ = model.Update(CaptureUnsupportedMsg{})
	model = updated.(Model)
	updated, _ = model.Update(keyMsg("tab"))
	model = updated.(Model)
	if model.tab != TabTyped {
		t.Fatalf("tab = %v, want typed to stay active", model.tab)
	}
}
