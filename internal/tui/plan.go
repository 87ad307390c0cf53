package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studybuddy/internal/studyplan"
	"github.com/abhisek/studybuddy/internal/ui/layout"
	"github.com/abhisek/studybuddy/internal/ui/theme"
)

// PlanScreen shows a study plan as a scrollable list of days.
type PlanScreen struct {
	plan   *studyplan.Plan
	offset int
}

var _ Screen = (*PlanScreen)(nil)

func NewPlanScreen(plan *studyplan.Plan) *PlanScreen {
	return &PlanScreen{plan: plan}
}

func (s *PlanScreen) Init() tea.Cmd { return nil }

func (s *PlanScreen) Title() string {
	if s.plan == nil {
		return "Study Plan"
	}
	return s.plan.Title
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "q", Description: "Close"},
	}
}

func (s *PlanScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "q", "enter":
		return s, pop
	}
	return s, nil
}

func (s *PlanScreen) View(width, height int) string {
	lines := strings.Split(RenderPlan(s.plan, width), "\n")
	maxOffset := max(len(lines)-height, 0)
	s.offset = min(s.offset, maxOffset)
	end := min(s.offset+height, len(lines))
	return strings.Join(lines[s.offset:end], "\n")
}

// RenderPlan draws a plan as styled text, wrapped to width.
func RenderPlan(p *studyplan.Plan, width int) string {
	if p == nil {
		return theme.Hint.Render("No plan.")
	}
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d topics from %d documents, %d hours a day",
		p.TotalTopics, p.DocumentsIncluded, p.HoursPerDay)))
	b.WriteString("\n")

	for _, d := range p.Schedule {
		b.WriteString("\n")
		b.WriteString(theme.Title.Render(d.Title) + "  " + theme.Muted.Render(d.Date.String()))
		b.WriteString("\n")
		if len(d.Sessions) == 0 {
			b.WriteString(theme.Hint.Render("  Free day: review earlier material"))
			b.WriteString("\n")
			continue
		}
		for _, sess := range d.Sessions {
			line := fmt.Sprintf("  %s  %s", theme.Confidence.Render(sess.Time), sess.Topic)
			if sess.Source != "" {
				line += theme.Muted.Render("  (" + sess.Source + ")")
			}
			b.WriteString(layout.Wrap(line, width))
			b.WriteString("\n")
			b.WriteString(theme.Source.Render(layout.Wrap(strings.Join(sess.Activities, " · "), max(width-2, 1))))
			b.WriteString("\n")
		}
	}
	return b.String()
}
