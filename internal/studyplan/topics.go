// Package studyplan builds day-by-day study schedules from the structure of
// document text.
package studyplan

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/studybuddy/internal/textproc"
)

// Topic extraction limits.
const (
	MaxTopicsPerDocument = 10
	MaxFallbackTopics    = 5

	minTitleLen    = 5  // exclusive
	maxTitleLen    = 80 // exclusive
	minFallbackLen = 30 // exclusive
	maxFallbackLen = 100
	relatedLimit   = 2
)

// Topic is one schedulable unit of study.
type Topic struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	Content string `json:"content,omitempty"`
}

// topicCues are tried in priority order; every match of one cue is
// collected before the next cue runs.
var topicCues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)chapter\s+\d+[^\n]*`),
	regexp.MustCompile(`\d+\.\d*\s+[A-Z][^\n]*`),
	regexp.MustCompile(`(?m)^[A-Z][A-Z ]{5,30}$`),
}

// ExtractTopics finds structural headings in text: chapter headings, then
// numbered sections, then short all-caps lines. When none match, up to
// five medium-length sentences stand in as topics. source names the
// document the topics came from.
func ExtractTopics(text, source string) []Topic {
	text = textproc.Normalize(text)
	if text == "" {
		return nil
	}
	sentences := textproc.Sentences(text, "", textproc.MinAnswerSentence)

	var titles []string
	seen := make(map[string]bool)
	for _, cue := range topicCues {
		for _, m := range cue.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			n := utf8.RuneCountInString(m)
			if n <= minTitleLen || n >= maxTitleLen || seen[m] {
				continue
			}
			seen[m] = true
			titles = append(titles, m)
		}
	}
	if len(titles) > MaxTopicsPerDocument {
		titles = titles[:MaxTopicsPerDocument]
	}

	if len(titles) == 0 {
		for _, s := range sentences {
			if n := s.Len(); n > minFallbackLen && n < maxFallbackLen {
				titles = append(titles, strings.TrimRight(s.Text, ".!?"))
			}
			if len(titles) == MaxFallbackTopics {
				break
			}
		}
	}

	topics := make([]Topic, len(titles))
	for i, t := range titles {
		topics[i] = Topic{
			Title:   t,
			Source:  source,
			Content: relatedContent(t, sentences),
		}
	}
	return topics
}

// relatedContent joins the first two sentences that mention the first
// word of title.
func relatedContent(title string, sentences []textproc.Segment) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	first := strings.ToLower(fields[0])

	var related []string
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s.Text), first) {
			related = append(related, strings.TrimRight(s.Text, ".!?"))
			if len(related) == relatedLimit {
				break
			}
		}
	}
	return strings.Join(related, ". ")
}
