package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/ui/components"
	"github.com/abhisek/studybuddy/internal/ui/layout"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

// QuizScreen plays a quiz one question at a time, showing the explanation
// after each answer and the score at the end.
type QuizScreen struct {
	title     string
	questions []quiz.Question
	idx       int
	mc        components.MultiChoice
	correct   int
	done      bool
}

var _ Screen = (*QuizScreen)(nil)
var _ KeyHintProvider = (*QuizScreen)(nil)

func NewQuizScreen(title string, questions []quiz.Question) *QuizScreen {
	s := &QuizScreen{title: title, questions: questions}
	if len(questions) == 0 {
		s.done = true
		return s
	}
	s.load()
	return s
}

func (s *QuizScreen) load() {
	q := s.questions[s.idx]
	s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.Correct)
}

func (s *QuizScreen) Init() tea.Cmd { return nil }

func (s *QuizScreen) Title() string {
	if s.title == "" {
		return "Quiz"
	}
	return s.title
}

// Score reports correct answers and the number of questions.
func (s *QuizScreen) Score() (correct, total int) {
	return s.correct, len(s.questions)
}

// Done reports whether every question has been answered.
func (s *QuizScreen) Done() bool { return s.done }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.done:
		return []layout.KeyHint{{Key: "Enter", Description: "Close"}}
	case s.mc.Submitted:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "q", Description: "Stop"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓/1-9", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "q", Description: "Stop"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.done {
		switch key {
		case "enter", "q":
			return s, pop
		}
		return s, nil
	}
	if key == "q" {
		s.done = true
		return s, pop
	}

	if s.mc.Submitted {
		if key == "enter" {
			s.idx++
			if s.idx >= len(s.questions) {
				s.done = true
			} else {
				s.load()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.IsCorrect() {
		s.correct++
	}
	return s, cmd
}

func (s *QuizScreen) View(width, height int) string {
	if s.done {
		return s.viewScore(width)
	}

	var b strings.Builder
	bar := components.NewProgressBar(fmt.Sprintf("Question %d", s.idx+1), s.idx, len(s.questions), min(width, 60))
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(layout.Wrap(s.mc.View(), width))

	if s.mc.Submitted {
		b.WriteString("\n")
		if s.mc.IsCorrect() {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite. ") +
				theme.Body.Render("Answer: "+s.questions[s.idx].Answer()))
		}
		if exp := s.questions[s.idx].Explanation; exp != "" {
			b.WriteString("\n\n" + theme.Hint.Render(layout.Wrap(exp, width)))
		}
	}
	return layout.Tail(b.String(), height)
}

func (s *QuizScreen) viewScore(width int) string {
	total := len(s.questions)
	if total == 0 {
		return theme.Hint.Render("This quiz has no questions.")
	}
	pct := s.correct * 100 / total
	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz complete"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("You answered %d of %d correctly (%d%%).", s.correct, total, pct)))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("Score", s.correct, total, min(width, 60)).View())
	return b.String()
}
