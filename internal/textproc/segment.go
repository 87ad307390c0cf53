package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind identifies what a Segment was cut from.
type Kind string

const (
	KindSentence  Kind = "sentence"
	KindParagraph Kind = "paragraph"
)

// Minimum (exclusive) sentence lengths by consumer, and the paragraph floor.
const (
	MinAnswerSentence     = 15
	MinDefinitionSentence = 20
	MinFactSentence       = 30
	MaxKeywordSentence    = 150
	MinParagraph          = 50

	// MinQuizContent is the smallest document body worth mining for quiz
	// questions. Anything shorter goes straight to the default bank.
	MinQuizContent = 100
)

// Segment is a sentence or paragraph span of a document. Position is the
// zero-based order in which the segment was encountered; consumers rely on
// it as the tie-break and must never reorder it.
type Segment struct {
	Text       string `json:"text"`
	DocumentID string `json:"document_id"`
	Position   int    `json:"position"`
	Kind       Kind   `json:"kind"`
}

// Len returns the segment length in characters, not counting trailing
// terminal punctuation.
func (s Segment) Len() int {
	return utf8.RuneCountInString(strings.TrimRight(s.Text, ".!?"))
}

var (
	sentencePattern  = regexp.MustCompile(`[^.!?]+[.!?]*`)
	paragraphPattern = regexp.MustCompile(`\n\s*\n`)
)

// Sentences splits text on runs of '.', '!' and '?'. The terminator stays
// attached to its sentence. Sentences whose body is not longer than minLen
// characters are dropped.
func Sentences(text, docID string, minLen int) []Segment {
	var out []Segment
	for _, m := range sentencePattern.FindAllString(text, -1) {
		s := strings.TrimSpace(strings.ReplaceAll(m, "\n", " "))
		seg := Segment{Text: s, DocumentID: docID, Kind: KindSentence}
		if seg.Len() <= minLen {
			continue
		}
		seg.Position = len(out)
		out = append(out, seg)
	}
	return out
}

// Paragraphs splits text on blank lines and keeps paragraphs of at least
// MinParagraph characters.
func Paragraphs(text, docID string) []Segment {
	var out []Segment
	for _, p := range paragraphPattern.Split(text, -1) {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) < MinParagraph {
			continue
		}
		out = append(out, Segment{
			Text:       p,
			DocumentID: docID,
			Position:   len(out),
			Kind:       KindParagraph,
		})
	}
	return out
}

// Lines returns the non-empty lines of text whose trimmed length exceeds
// minLen, in order.
func Lines(text string, minLen int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) > minLen {
			out = append(out, line)
		}
	}
	return out
}
