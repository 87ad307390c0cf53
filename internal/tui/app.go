package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/ui/layout"
)

// Model is the root bubbletea model. It owns the screen stack and draws the
// frame around the active screen.
type Model struct {
	router *router
	status string
	width  int
	height int
}

// NewModel starts with initial as the only screen. status is shown on the
// right of the header.
func NewModel(initial Screen, status string) Model {
	return Model{router: newRouter(initial), status: status}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, pop
			}
		}
	}

	return m, m.router.Update(msg)
}

// Active returns the screen on top of the stack.
func (m Model) Active() Screen {
	return m.router.Active()
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status, m.width)

	hints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(KeyHintProvider); ok {
		hints = append(hp.KeyHints(), hints...)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	footer := layout.RenderFooter(hints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// RunChat starts the chat REPL over the given documents.
func RunChat(ctx context.Context, d Dispatcher, documentIDs []string) error {
	chat := NewChatScreen(ctx, d, documentIDs)
	status := fmt.Sprintf("%d %s", len(documentIDs), plural(len(documentIDs), "doc"))
	if _, err := tea.NewProgram(NewModel(chat, status)).Run(); err != nil {
		return fmt.Errorf("run chat: %w", err)
	}
	return nil
}

// RunQuiz plays questions and returns the final score.
func RunQuiz(title string, questions []quiz.Question) (correct, total int, err error) {
	qs := NewQuizScreen(title, questions)
	if _, err := tea.NewProgram(NewModel(qs, "")).Run(); err != nil {
		return 0, 0, fmt.Errorf("run quiz: %w", err)
	}
	correct, total = qs.Score()
	return correct, total, nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
