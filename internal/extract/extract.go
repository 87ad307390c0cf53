// Package extract finds concept and definition pairs in document text using
// structural patterns.
package extract

import (
	"regexp"
	"strings"

	"github.com/abhisek/studybuddy/internal/textproc"
)

// Caps on how many items a single document contributes.
const (
	MaxConcepts    = 3
	MaxDefinitions = 2

	// minConceptLine is the exclusive minimum trimmed line length scanned.
	minConceptLine = 10
)

// Concept is a named idea and the text that describes it.
type Concept struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Extractor   string `json:"extractor"`
}

// PatternExtractor pulls concepts out of a single line or sentence.
// Implementations must be stateless and safe for concurrent use.
type PatternExtractor interface {
	// Name returns a short identifier, e.g. "is-are".
	Name() string

	// Extract returns every concept found in text, possibly none.
	Extract(text string) []Concept
}

var (
	isArePattern      = regexp.MustCompile(`([A-Z][\w ]*?)\s+(?i:is|are)\s+([^.!?]+)`)
	labelValuePattern = regexp.MustCompile(`^\s*[•\-*\d.)\s]+([^:]+):\s*(.+)`)
	definitionPattern = regexp.MustCompile(`([A-Z][\w ]*?)\s+(?i:is|means|refers to|defined as)\s+([^.!?]+)`)
)

// regexExtractor matches a two-group pattern: group 1 is the name and
// group 2 the description.
type regexExtractor struct {
	name    string
	pattern *regexp.Regexp
}

func (e *regexExtractor) Name() string { return e.name }

func (e *regexExtractor) Extract(text string) []Concept {
	m := e.pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	name := strings.TrimSpace(m[1])
	desc := strings.TrimSpace(m[2])
	if name == "" || desc == "" {
		return nil
	}
	return []Concept{{Name: name, Description: desc, Extractor: e.name}}
}

// IsAreExtractor matches "<Capitalized phrase> is|are <description>".
func IsAreExtractor() PatternExtractor {
	return &regexExtractor{
		name:    "is-are",
		pattern: isArePattern,
	}
}

// LabelValueExtractor matches bulleted or numbered "label: value" lines.
func LabelValueExtractor() PatternExtractor {
	return &regexExtractor{
		name:    "label-value",
		pattern: labelValuePattern,
	}
}

// DefinitionExtractor matches "<Capitalized phrase> is|means|refers to|defined as <definition>".
func DefinitionExtractor() PatternExtractor {
	return &regexExtractor{
		name:    "definition",
		pattern: definitionPattern,
	}
}

// DefaultExtractors returns the concept extractors in the order they are
// applied to each line.
func DefaultExtractors() []PatternExtractor {
	return []PatternExtractor{
		IsAreExtractor(),
		LabelValueExtractor(),
	}
}

// Concepts scans text line by line, running every extractor over each line
// longer than 10 characters, and stops after MaxConcepts results.
func Concepts(text string, extractors ...PatternExtractor) []Concept {
	if len(extractors) == 0 {
		extractors = DefaultExtractors()
	}
	var out []Concept
	for _, line := range textproc.Lines(text, minConceptLine) {
		for _, ex := range extractors {
			for _, c := range ex.Extract(line) {
				out = append(out, c)
				if len(out) == MaxConcepts {
					return out
				}
			}
		}
	}
	return out
}

// Definitions applies the definition pattern to sentences longer than
// textproc.MinDefinitionSentence and stops after MaxDefinitions results.
func Definitions(sentences []textproc.Segment) []Concept {
	ex := DefinitionExtractor()
	var out []Concept
	for _, s := range sentences {
		if s.Len() <= textproc.MinDefinitionSentence {
			continue
		}
		for _, c := range ex.Extract(s.Text) {
			out = append(out, c)
			if len(out) == MaxDefinitions {
				return out
			}
		}
	}
	return out
}
