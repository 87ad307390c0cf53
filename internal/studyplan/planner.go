package studyplan

import (
	"fmt"
	"strings"
	"time"
)

// Planner lays topics out over a schedule.
type Planner interface {
	// BuildPlan distributes topics across prefs.DurationDays days starting
	// on the calendar day of now.
	BuildPlan(topics []Topic, documents int, prefs Preferences, now time.Time) *Plan
}

// DefaultPlanner spreads topics evenly over the days in extraction order
// and gives every day with topics a morning study block, an optional
// afternoon review block and an evening daily review.
type DefaultPlanner struct{}

// NewPlanner returns the default planner.
func NewPlanner() *DefaultPlanner {
	return &DefaultPlanner{}
}

// BuildPlan always returns exactly prefs.DurationDays days with strictly
// increasing dates, the first being today.
func (p *DefaultPlanner) BuildPlan(topics []Topic, documents int, prefs Preferences, now time.Time) *Plan {
	prefs = prefs.withDefaults()
	days := prefs.DurationDays

	perDay := TopicsPerDay(len(topics), days)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	plan := &Plan{
		Title:             fmt.Sprintf("%d-Day Study Plan", days),
		TotalDuration:     fmt.Sprintf("%d days", days),
		DocumentsIncluded: documents,
		TotalTopics:       len(topics),
		HoursPerDay:       prefs.HoursPerDay,
		Schedule:          make([]Day, 0, days),
	}

	for d := 1; d <= days; d++ {
		lo := min((d-1)*perDay, len(topics))
		hi := min(d*perDay, len(topics))
		dayTopics := topics[lo:hi]

		plan.Schedule = append(plan.Schedule, Day{
			Day:         d,
			Date:        Date{start.AddDate(0, 0, d-1)},
			Title:       dayTitle(d, dayTopics),
			Sessions:    daySessions(dayTopics),
			TopicsCount: len(dayTopics),
		})
	}
	return plan
}

// TopicsPerDay is ceil(total/days), and at least 1.
func TopicsPerDay(total, days int) int {
	if days <= 0 {
		return max(1, total)
	}
	return max(1, (total+days-1)/days)
}

func daySessions(topics []Topic) []Session {
	if len(topics) == 0 {
		return []Session{}
	}

	first := topics[0]
	sessions := []Session{{
		Time:  MorningSlot,
		Topic: "Study: " + first.Title,
		Activities: []string{
			"Read about " + first.Title,
			"Take detailed notes",
			"Identify key concepts",
			"Create mind map",
		},
		Source: first.Source,
	}}

	if len(topics) > 1 {
		second := topics[1]
		sessions = append(sessions, Session{
			Time:  AfternoonSlot,
			Topic: "Review: " + second.Title,
			Activities: []string{
				"Study " + second.Title,
				"Practice exercises",
				"Summarize key points",
				"Test understanding",
			},
			Source: second.Source,
		})
	}

	return append(sessions, Session{
		Time:  EveningSlot,
		Topic: "Daily Review",
		Activities: []string{
			"Review today's topics",
			"Create flashcards",
			"Practice recall",
			"Plan tomorrow's study",
		},
	})
}

func dayTitle(day int, topics []Topic) string {
	if len(topics) == 0 {
		return fmt.Sprintf("Day %d: Review and consolidation", day)
	}
	parts := make([]string, len(topics))
	for i, t := range topics {
		parts[i] = truncate(t.Title, dayTitleTopicLen)
	}
	return fmt.Sprintf("Day %d: %s", day, strings.Join(parts, ", "))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
