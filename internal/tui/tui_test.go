package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studybuddy/internal/engine"
	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/studyplan"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string             { return s.title }
func (s *stubScreen) Title() string                    { return s.title }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestRouterPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := newRouter(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestRouterPop(t *testing.T) {
	r := newRouter(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected no command popping a nested screen")
	}
	if r.Depth() != 1 || r.Active().Title() != "first" {
		t.Errorf("depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestRouterPopLastQuits(t *testing.T) {
	r := newRouter(&stubScreen{title: "first"})

	if !isQuit(r.Pop()) {
		t.Error("expected quit popping the last screen")
	}
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestRouterReplace(t *testing.T) {
	r := newRouter(&stubScreen{title: "first"})

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" || !s2.initRan {
		t.Errorf("active=%q initRan=%v", r.Active().Title(), s2.initRan)
	}
}

func TestRouterUpdateHandlesNavMessages(t *testing.T) {
	r := newRouter(&stubScreen{title: "first"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.Active().Title() != "second" {
		t.Fatalf("push via message: active=%q", r.Active().Title())
	}
	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "third"}})
	if r.Active().Title() != "third" || r.Depth() != 2 {
		t.Fatalf("replace via message: active=%q depth=%d", r.Active().Title(), r.Depth())
	}
	r.Update(PopScreenMsg{})
	if r.Active().Title() != "first" {
		t.Errorf("pop via message: active=%q", r.Active().Title())
	}
}

func TestModelEscPopsOnlyNested(t *testing.T) {
	m := NewModel(&stubScreen{title: "root"}, "")
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	if _, cmd := m.Update(esc); cmd != nil {
		if _, ok := cmd().(PopScreenMsg); ok {
			t.Error("esc on the root screen should not pop")
		}
	}

	m.Update(PushScreenMsg{Screen: &stubScreen{title: "child"}})
	_, cmd := m.Update(esc)
	if cmd == nil {
		t.Fatal("expected a command for esc on a nested screen")
	}
	if _, ok := cmd().(PopScreenMsg); !ok {
		t.Error("expected esc to pop a nested screen")
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := NewModel(&stubScreen{title: "root"}, "")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	v := updated.(Model).View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{Prompt: "What is a cell?", Options: []string{"unit of life", "a rock", "a planet", "a gas"}, Correct: 0, Explanation: "Cells are the basic unit of life."},
		{Prompt: "What is DNA?", Options: []string{"a sugar", "genetic material", "a bone", "a metal"}, Correct: 1},
	}
}

func TestQuizScreenScoresAnswers(t *testing.T) {
	s := NewQuizScreen("Biology", sampleQuestions())

	// first question: answer A, correct
	s.Update(enter())
	if c, _ := s.Score(); c != 1 {
		t.Fatalf("expected 1 correct, got %d", c)
	}
	if !strings.Contains(s.View(80, 20), "Correct!") {
		t.Error("expected a correct banner")
	}
	s.Update(enter())

	// second question: answer A, wrong
	s.Update(keyPress('1'))
	s.Update(enter())
	if !strings.Contains(s.View(80, 20), "genetic material") {
		t.Error("expected the correct answer to be shown")
	}
	s.Update(enter())

	if !s.Done() {
		t.Fatal("expected quiz to be done")
	}
	correct, total := s.Score()
	if correct != 1 || total != 2 {
		t.Errorf("score = %d/%d", correct, total)
	}
	if !strings.Contains(s.View(80, 20), "1 of 2") {
		t.Errorf("score view = %q", s.View(80, 20))
	}

	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected pop on enter after finishing")
	}
	if _, ok := cmd().(PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestQuizScreenQuitEarly(t *testing.T) {
	s := NewQuizScreen("Biology", sampleQuestions())

	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a command on q")
	}
	if _, ok := cmd().(PopScreenMsg); !ok {
		t.Error("expected q to pop")
	}
	if c, total := s.Score(); c != 0 || total != 2 {
		t.Errorf("score = %d/%d", c, total)
	}
}

func TestQuizScreenEmpty(t *testing.T) {
	s := NewQuizScreen("", nil)
	if !s.Done() {
		t.Error("an empty quiz starts done")
	}
	if s.Title() != "Quiz" {
		t.Errorf("title = %q", s.Title())
	}
	if !strings.Contains(s.View(80, 20), "no questions") {
		t.Errorf("view = %q", s.View(80, 20))
	}
}

func samplePlan() *studyplan.Plan {
	start := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	p := &studyplan.Plan{Title: "7-Day Study Plan", DocumentsIncluded: 1, TotalTopics: 3, HoursPerDay: 2}
	for i := range 7 {
		d := studyplan.Day{Day: i + 1, Date: studyplan.Date{Time: start.AddDate(0, 0, i)}, Title: "Day"}
		if i == 0 {
			d.Sessions = []studyplan.Session{{Time: "09:00", Topic: "Cells", Activities: []string{"Read", "Summarize"}, Source: "bio.txt"}}
		}
		p.Schedule = append(p.Schedule, d)
	}
	return p
}

func TestPlanScreenScroll(t *testing.T) {
	s := NewPlanScreen(samplePlan())

	first := s.View(80, 5)
	if !strings.Contains(first, "3 topics from 1 documents") {
		t.Errorf("expected summary line, got %q", first)
	}
	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.View(80, 5) == first {
		t.Error("expected scrolling to change the view")
	}

	for range 100 {
		s.Update(keyPress('j'))
	}
	s.View(80, 5)
	last := s.offset
	s.Update(keyPress('j'))
	s.View(80, 5)
	if s.offset != last {
		t.Error("expected scrolling to stop at the end")
	}

	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected pop on q")
	}
	if _, ok := cmd().(PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestRenderPlanFreeDay(t *testing.T) {
	out := RenderPlan(samplePlan(), 80)
	if !strings.Contains(out, "Free day") {
		t.Error("expected free days to be labelled")
	}
	if !strings.Contains(out, "2026-10-14") {
		t.Error("expected dates")
	}
}

type fakeDispatcher struct {
	mu   sync.Mutex
	reqs []engine.Request
	resp *engine.Response
}

func (f *fakeDispatcher) Dispatch(_ context.Context, req engine.Request) *engine.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.resp != nil {
		return f.resp
	}
	return &engine.Response{Kind: req.Kind(), Content: "ok"}
}

func send(t *testing.T, s *ChatScreen, line string) tea.Cmd {
	t.Helper()
	s.input.Model.SetValue(line)
	_, cmd := s.Update(enter())
	return cmd
}

func TestChatScreenAsksQuestion(t *testing.T) {
	d := &fakeDispatcher{resp: &engine.Response{
		Kind:    engine.KindChat,
		Content: "A cell is the basic unit of life.",
		Answer:  &engine.Answer{Sources: []engine.Source{{Content: "A cell is the basic unit of life.", DocumentID: "bio"}}},
	}}
	s := NewChatScreen(context.Background(), d, []string{"bio"})

	cmd := send(t, s, "what is a cell?")
	if cmd == nil || !s.Pending() {
		t.Fatal("expected an async dispatch")
	}
	if _, upd := s.Update(keyPress('x')); upd != nil {
		t.Error("expected keys to be ignored while pending")
	}

	s.Update(cmd())
	if s.Pending() {
		t.Error("expected pending to clear after the response")
	}
	if len(d.reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(d.reqs))
	}
	chat, ok := d.reqs[0].(engine.ChatRequest)
	if !ok || chat.Message != "what is a cell?" || chat.DocumentIDs[0] != "bio" {
		t.Errorf("request = %#v", d.reqs[0])
	}
	view := s.View(80, 30)
	if !strings.Contains(view, "basic unit of life") {
		t.Errorf("view missing answer: %q", view)
	}
}

func TestChatScreenQuizCommandPushesQuiz(t *testing.T) {
	d := &fakeDispatcher{resp: &engine.Response{
		Kind:    engine.KindQuiz,
		Content: "I've generated 2 medium difficulty questions.",
		Quiz:    &engine.Quiz{Title: "Quiz", Questions: sampleQuestions()},
	}}
	s := NewChatScreen(context.Background(), d, []string{"bio"})

	cmd := send(t, s, "/quiz 2 hard questions")
	if cmd == nil {
		t.Fatal("expected dispatch")
	}
	_, next := s.Update(cmd())
	if next == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := next().(PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", next())
	}
	if _, ok := msg.Screen.(*QuizScreen); !ok {
		t.Errorf("expected a quiz screen, got %T", msg.Screen)
	}
	if _, ok := d.reqs[0].(engine.QuizRequest); !ok {
		t.Errorf("expected a quiz request, got %T", d.reqs[0])
	}
}

func TestChatScreenPlanCommand(t *testing.T) {
	d := &fakeDispatcher{resp: &engine.Response{Kind: engine.KindStudyPlan, Content: "plan", Plan: samplePlan()}}
	s := NewChatScreen(context.Background(), d, []string{"bio"})

	cmd := send(t, s, "/plan 3")
	_, next := s.Update(cmd())
	msg, ok := next().(PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*PlanScreen); !ok {
		t.Errorf("expected a plan screen, got %T", msg.Screen)
	}
	req := d.reqs[0].(engine.StudyPlanRequest)
	if req.Preferences.DurationDays != 3 {
		t.Errorf("days = %d", req.Preferences.DurationDays)
	}
}

func TestChatScreenLocalCommands(t *testing.T) {
	d := &fakeDispatcher{}
	s := NewChatScreen(context.Background(), d, nil)

	if cmd := send(t, s, "/plan soon"); cmd != nil {
		t.Error("expected a bad /plan argument to stay local")
	}
	if cmd := send(t, s, "/bogus"); cmd != nil {
		t.Error("expected an unknown command to stay local")
	}
	if cmd := send(t, s, "/help"); cmd != nil {
		t.Error("expected /help to stay local")
	}
	if len(d.reqs) != 0 {
		t.Errorf("expected no dispatches, got %d", len(d.reqs))
	}
	if !strings.Contains(s.View(80, 30), "unknown command /bogus") {
		t.Error("expected an error line in the transcript")
	}
	if !isQuit(send(t, s, "/quit")) {
		t.Error("expected /quit to quit")
	}
}

func TestChatScreenIgnoresBlankInput(t *testing.T) {
	d := &fakeDispatcher{}
	s := NewChatScreen(context.Background(), d, nil)

	if cmd := send(t, s, "   "); cmd != nil {
		t.Error("expected no dispatch for blank input")
	}
}

func TestHighlightConfidence(t *testing.T) {
	out := highlightConfidence("**High Confidence** - Document 1:\nx\n---\n**Low Confidence** - Document 2:\ny")
	if strings.Contains(out, "**") {
		t.Errorf("expected markers to be replaced: %q", out)
	}
	if !strings.Contains(out, "High Confidence") || !strings.Contains(out, "Low Confidence") {
		t.Errorf("expected labels to remain: %q", out)
	}
}
