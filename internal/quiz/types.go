// Package quiz composes multiple-choice quizzes from document text.
package quiz

// Kind records which generator produced a question.
type Kind string

const (
	KindDefinition Kind = "definition"
	KindConcept    Kind = "concept"
	KindFactual    Kind = "factual"
	KindKeyword    Kind = "keyword"
	KindDefault    Kind = "default"
)

// Question is a single multiple-choice item. Correct indexes Options.
type Question struct {
	Prompt      string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Kind        Kind     `json:"kind"`
}

// Answer returns the text of the correct option, or "" when the index is
// out of range.
func (q Question) Answer() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

// clone returns a deep copy so callers can never mutate shared tables.
func (q Question) clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}
