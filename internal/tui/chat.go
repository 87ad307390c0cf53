package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studybuddy/internal/engine"
	"github.com/abhisek/studybuddy/internal/studyplan"
	"github.com/abhisek/studybuddy/internal/ui/components"
	"github.com/abhisek/studybuddy/internal/ui/layout"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

// Dispatcher runs a request. *engine.Engine satisfies it; callers may wrap
// it to record every request.
type Dispatcher interface {
	Dispatch(ctx context.Context, req engine.Request) *engine.Response
}

const chatHelp = "Commands: /quiz [message]  /plan [days]  /help  /quit"

type role int

const (
	roleUser role = iota
	roleAssistant
	roleSystem
)

type turn struct {
	role    role
	text    string
	sources []engine.Source
}

// responseMsg carries a finished dispatch back into the update loop.
type responseMsg struct {
	resp *engine.Response
}

// ChatScreen is a REPL over the selected documents. Plain input is a
// question; /quiz and /plan open the matching screen.
type ChatScreen struct {
	ctx         context.Context
	dispatcher  Dispatcher
	documentIDs []string
	input       components.TextInput
	transcript  []turn
	pending     bool
}

var _ Screen = (*ChatScreen)(nil)
var _ KeyHintProvider = (*ChatScreen)(nil)

func NewChatScreen(ctx context.Context, d Dispatcher, documentIDs []string) *ChatScreen {
	return &ChatScreen{
		ctx:         ctx,
		dispatcher:  d,
		documentIDs: documentIDs,
		input:       components.NewTextInput("Ask about your documents...", 500),
		transcript:  []turn{{role: roleSystem, text: chatHelp}},
	}
}

func (s *ChatScreen) Init() tea.Cmd { return s.input.Init() }

func (s *ChatScreen) Title() string { return "Chat" }

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Send"}}
}

// Pending reports whether a request is in flight.
func (s *ChatScreen) Pending() bool { return s.pending }

func (s *ChatScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case responseMsg:
		return s.handleResponse(msg.resp)
	case tea.KeyMsg:
		if s.pending {
			return s, nil
		}
	}

	var (
		line      string
		submitted bool
		cmd       tea.Cmd
	)
	s.input, line, submitted, cmd = s.input.Update(msg)
	if !submitted || line == "" {
		return s, cmd
	}
	return s.submit(line)
}

func (s *ChatScreen) submit(line string) (Screen, tea.Cmd) {
	s.transcript = append(s.transcript, turn{role: roleUser, text: line})

	req, quit, err := s.parse(line)
	switch {
	case quit:
		return s, tea.Quit
	case err != nil:
		s.transcript = append(s.transcript, turn{role: roleSystem, text: err.Error()})
		return s, nil
	case req == nil:
		return s, nil
	}

	s.pending = true
	ctx, d := s.ctx, s.dispatcher
	return s, func() tea.Msg {
		return responseMsg{resp: d.Dispatch(ctx, req)}
	}
}

// parse turns one input line into a request. A nil request with no error
// means the line was handled locally.
func (s *ChatScreen) parse(line string) (req engine.Request, quit bool, err error) {
	if !strings.HasPrefix(line, "/") {
		return engine.ChatRequest{Message: line, DocumentIDs: s.documentIDs}, false, nil
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "/quit", "/exit":
		return nil, true, nil
	case "/help":
		s.transcript = append(s.transcript, turn{role: roleSystem, text: chatHelp})
		return nil, false, nil
	case "/quiz":
		req, err := engine.ParseRequest(engine.KindQuiz, rest, s.documentIDs)
		return req, false, err
	case "/plan":
		prefs := studyplan.Preferences{}
		if rest != "" {
			days, err := strconv.Atoi(rest)
			if err != nil || days < 1 {
				return nil, false, fmt.Errorf("usage: /plan [days], got %q", rest)
			}
			prefs.DurationDays = days
		}
		return engine.StudyPlanRequest{DocumentIDs: s.documentIDs, Preferences: prefs}, false, nil
	default:
		return nil, false, fmt.Errorf("unknown command %s. %s", cmd, chatHelp)
	}
}

func (s *ChatScreen) handleResponse(resp *engine.Response) (Screen, tea.Cmd) {
	s.pending = false
	if resp == nil {
		return s, nil
	}

	t := turn{role: roleAssistant, text: resp.Content}
	if resp.Answer != nil {
		t.sources = resp.Answer.Sources
	}
	s.transcript = append(s.transcript, t)

	switch {
	case resp.Quiz != nil && len(resp.Quiz.Questions) > 0:
		return s, push(NewQuizScreen(resp.Quiz.Title, resp.Quiz.Questions))
	case resp.Plan != nil:
		return s, push(NewPlanScreen(resp.Plan))
	}
	return s, nil
}

func (s *ChatScreen) View(width, height int) string {
	var b strings.Builder
	for _, t := range s.transcript {
		b.WriteString(renderTurn(t, width))
		b.WriteString("\n")
	}
	if s.pending {
		b.WriteString(theme.Hint.Render("thinking..."))
		b.WriteString("\n")
	}

	inputView := s.input.View()
	history := layout.Tail(strings.TrimRight(b.String(), "\n"), height-2)
	return history + "\n\n" + inputView
}

func renderTurn(t turn, width int) string {
	var label string
	switch t.role {
	case roleUser:
		label = theme.UserLabel.Render("You")
	case roleAssistant:
		label = theme.AssistantLabel.Render("Buddy")
	default:
		return theme.Hint.Render(layout.Wrap(t.text, width))
	}

	body := highlightConfidence(t.text)
	out := label + "\n" + layout.Wrap(body, width)
	for _, src := range t.sources {
		out += "\n" + theme.Source.Render(layout.Wrap("↳ "+src.Content, max(width-2, 1)))
	}
	return out
}

// highlightConfidence colours the **band** labels of merged answers.
func highlightConfidence(text string) string {
	for _, band := range []string{engine.HighConfidence, engine.ModerateConfidence, engine.LowConfidence} {
		text = strings.ReplaceAll(text, "**"+band+"**", theme.Confidence.Render(band))
	}
	return strings.ReplaceAll(text, "\n---\n", "\n"+theme.Separator.Render("───")+"\n")
}
