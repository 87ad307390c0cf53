package quiz

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/studybuddy/internal/distractor"
	"github.com/abhisek/studybuddy/internal/extract"
	"github.com/abhisek/studybuddy/internal/keywords"
	"github.com/abhisek/studybuddy/internal/textproc"
)

// Source is the material a generator mines for questions.
type Source struct {
	Text      string             // normalized document body
	Sentences []textproc.Segment // sentences in source order
}

// NewSource segments already-normalized text.
func NewSource(text string) Source {
	return Source{
		Text:      text,
		Sentences: textproc.Sentences(text, "", textproc.MinAnswerSentence),
	}
}

// Generator produces candidate questions from a source. Generators never
// return more than budget questions.
type Generator interface {
	// Name returns a short identifier, e.g. "definition".
	Name() string

	// Generate returns at most budget questions.
	Generate(src Source, budget int) []Question
}

// Blank replaces the masked answer word in fill-in-the-blank prompts.
const Blank = "______"

const (
	distractorsPerQuestion = 3
	minBlankWord           = 5
)

var (
	factualCue  = regexp.MustCompile(`(?i)\d+|first|second|third|main|primary|key|important|types?|kinds?|categories`)
	keywordCue  = regexp.MustCompile(`(?i)\b(important|key|main|primary|essential|critical|significant|major|fundamental)\b`)
	extraStops  = map[string]bool{"from": true, "that": true, "this": true}
	wordTrimSet = `.,;:!?()[]{}"'` + "`"
)

// DefinitionGenerator asks "What is <term>?" for each extracted definition.
type DefinitionGenerator struct {
	Distractors *distractor.Generator
}

func (g *DefinitionGenerator) Name() string { return "definition" }

func (g *DefinitionGenerator) Generate(src Source, budget int) []Question {
	var out []Question
	for _, d := range extract.Definitions(src.Sentences) {
		if len(out) >= budget {
			break
		}
		out = append(out, Question{
			Prompt:      "What is " + d.Name + "?",
			Options:     withDistractors(g.Distractors, d.Description),
			Correct:     0,
			Explanation: "Based on the document: " + d.Description,
			Kind:        KindDefinition,
		})
	}
	return out
}

// ConceptGenerator asks which option best describes each extracted concept.
type ConceptGenerator struct {
	Distractors *distractor.Generator
	Extractors  []extract.PatternExtractor
}

func (g *ConceptGenerator) Name() string { return "concept" }

func (g *ConceptGenerator) Generate(src Source, budget int) []Question {
	var out []Question
	for _, c := range extract.Concepts(src.Text, g.Extractors...) {
		if len(out) >= budget {
			break
		}
		out = append(out, Question{
			Prompt:      "Which of the following best describes " + c.Name + "?",
			Options:     withDistractors(g.Distractors, c.Description),
			Correct:     0,
			Explanation: "From the document: " + c.Description,
			Kind:        KindConcept,
		})
	}
	return out
}

// FactualGenerator blanks a content word in sentences that carry numbers,
// ordinals or importance cues.
type FactualGenerator struct {
	Distractors *distractor.Generator
}

func (g *FactualGenerator) Name() string { return "factual" }

func (g *FactualGenerator) Generate(src Source, budget int) []Question {
	var out []Question
	for _, s := range src.Sentences {
		if len(out) >= budget {
			break
		}
		if s.Len() <= textproc.MinFactSentence || !factualCue.MatchString(s.Text) {
			continue
		}
		if q, ok := blankQuestion(g.Distractors, s.Text, 5, "Complete the following statement: ", KindFactual); ok {
			out = append(out, q)
		}
	}
	return out
}

// KeywordGenerator blanks a content word in medium-length sentences that
// contain an explicit importance marker.
type KeywordGenerator struct {
	Distractors *distractor.Generator
}

func (g *KeywordGenerator) Name() string { return "keyword" }

func (g *KeywordGenerator) Generate(src Source, budget int) []Question {
	var out []Question
	for _, s := range src.Sentences {
		if len(out) >= budget {
			break
		}
		n := s.Len()
		if n <= textproc.MinFactSentence || n >= textproc.MaxKeywordSentence || !keywordCue.MatchString(s.Text) {
			continue
		}
		if q, ok := blankQuestion(g.Distractors, s.Text, 8, "Fill in the blank: ", KindKeyword); ok {
			out = append(out, q)
		}
	}
	return out
}

// DefaultGenerators returns the generators in priority order.
func DefaultGenerators(d *distractor.Generator, extractors ...extract.PatternExtractor) []Generator {
	return []Generator{
		&DefinitionGenerator{Distractors: d},
		&ConceptGenerator{Distractors: d, Extractors: extractors},
		&FactualGenerator{Distractors: d},
		&KeywordGenerator{Distractors: d},
	}
}

// blankQuestion masks the first content word of sentence. Sentences with
// minWords words or fewer are rejected.
func blankQuestion(d *distractor.Generator, sentence string, minWords int, prefix string, kind Kind) (Question, bool) {
	words := strings.Fields(sentence)
	if len(words) <= minWords {
		return Question{}, false
	}
	answer := pickBlankWord(words)
	if answer == "" {
		return Question{}, false
	}
	masked, ok := maskFirst(sentence, answer)
	if !ok {
		return Question{}, false
	}
	return Question{
		Prompt:      prefix + masked,
		Options:     withDistractors(d, answer),
		Correct:     0,
		Explanation: "From the document: " + sentence,
		Kind:        kind,
	}, true
}

// pickBlankWord returns the first word longer than four characters that
// is not a stop-word, with surrounding punctuation removed.
func pickBlankWord(words []string) string {
	for _, w := range words {
		w = strings.Trim(w, wordTrimSet)
		lower := strings.ToLower(w)
		if utf8.RuneCountInString(w) < minBlankWord || keywords.IsStopWord(lower) || extraStops[lower] {
			continue
		}
		return w
	}
	return ""
}

// maskFirst replaces the first whole-word, case-insensitive occurrence of
// word in s with Blank.
func maskFirst(s, word string) (string, bool) {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err == nil {
		if loc := re.FindStringIndex(s); loc != nil {
			return s[:loc[0]] + Blank + s[loc[1]:], true
		}
	}
	// \b is ASCII-only; fall back to a plain substring for other scripts.
	if i := strings.Index(s, word); i >= 0 {
		return s[:i] + Blank + s[i+len(word):], true
	}
	return s, false
}

func withDistractors(d *distractor.Generator, correct string) []string {
	if d == nil {
		d = distractor.New()
	}
	return append([]string{correct}, d.Distinct(correct, distractorsPerQuestion)...)
}
