package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/studybuddy/internal/keywords"
)

const answerSeparator = "\n\n---\n\n"

// Confidence bands for multi-document answers.
const (
	HighConfidence     = "High Confidence"
	ModerateConfidence = "Moderate Confidence"
	LowConfidence      = "Low Confidence"
)

// ConfidenceLabel maps a confidence value onto its display band.
func ConfidenceLabel(c float64) string {
	switch {
	case c > 0.7:
		return HighConfidence
	case c > 0.4:
		return ModerateConfidence
	default:
		return LowConfidence
	}
}

// SuggestionMessage is the answer when no document produced a match.
func SuggestionMessage(question string, searched int) string {
	return fmt.Sprintf("I searched through %d documents but couldn't find specific information about \"%s\". Here are some suggestions:\n\n"+
		"• Try using different keywords or phrases\n"+
		"• Check if your question relates to the content in your documents\n"+
		"• Consider uploading more relevant materials\n"+
		"• Ask more specific questions about particular topics",
		searched, question)
}

// QueryMultiple runs Query against every document and merges the answered
// results in id order. Documents that are missing, fail to load or have no
// match are left out.
func (e *Engine) QueryMultiple(ctx context.Context, question string, documentIDs []string) *Answer {
	qt := keywords.Classify(question)
	if keywords.Extract(question).Empty() {
		return sentinel(OutcomeNoKeywords, MsgNoKeywords, qt)
	}

	results := make([]*Answer, len(documentIDs))
	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, id := range documentIDs {
		g.Go(func() error {
			results[i] = e.Query(ctx, question, id)
			return nil
		})
	}
	_ = g.Wait() // Query never fails

	label := ConfidenceLabel(e.confidence)
	var (
		parts   []string
		sources = []Source{}
	)
	for _, r := range results {
		if !r.Answered() {
			continue
		}
		parts = append(parts, fmt.Sprintf("**%s** - Document %d:\n%s", label, len(parts)+1, r.Text))
		sources = append(sources, r.Sources...)
	}

	if len(parts) == 0 {
		return sentinel(OutcomeNoResults, SuggestionMessage(question, len(documentIDs)), qt)
	}
	return &Answer{
		Text:         strings.Join(parts, answerSeparator),
		Sources:      sources,
		Outcome:      OutcomeAnswered,
		QuestionType: qt,
	}
}
