package engine

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/studybuddy/internal/keywords"
	"github.com/abhisek/studybuddy/internal/relevance"
)

// Outcome says how an Answer was produced.
type Outcome string

const (
	OutcomeAnswered       Outcome = "answered"
	OutcomeContentMissing Outcome = "content_missing"
	OutcomeLookupFailed   Outcome = "lookup_failed"
	OutcomeNoKeywords     Outcome = "no_keywords"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeNoResults      Outcome = "no_results"
)

// Fixed answer texts for the non-answered outcomes.
const (
	MsgContentMissing = "Document not found or content not extracted. Please re-upload the document."
	MsgLookupFailed   = "I'm having trouble accessing the document. Please ensure the document was uploaded and processed correctly."
	MsgNoKeywords     = "Please ask a more specific question."
	MsgNoMatch        = "No relevant information found."
)

// Source points at the segment an answer came from.
type Source struct {
	Content    string `json:"content"`
	DocumentID string `json:"document_id"`
}

type Answer struct {
	Text         string                `json:"answer"`
	Sources      []Source              `json:"sources"`
	Outcome      Outcome               `json:"outcome"`
	QuestionType keywords.QuestionType `json:"question_type"`
}

// Answered reports whether the answer carries document content.
func (a *Answer) Answered() bool {
	return a != nil && a.Outcome == OutcomeAnswered
}

func sentinel(o Outcome, text string, qt keywords.QuestionType) *Answer {
	return &Answer{Text: text, Sources: []Source{}, Outcome: o, QuestionType: qt}
}

// Query answers question from a single document with its best-scoring
// sentence.
func (e *Engine) Query(ctx context.Context, question, documentID string) *Answer {
	qt := keywords.Classify(question)

	doc, err := e.src.GetDocumentText(ctx, documentID)
	switch {
	case errors.Is(err, ErrNotFound):
		return sentinel(OutcomeContentMissing, MsgContentMissing, qt)
	case err != nil:
		e.log.Warn("document lookup failed",
			zap.String("document_id", documentID),
			zap.Error(err))
		return sentinel(OutcomeLookupFailed, MsgLookupFailed, qt)
	case doc == nil || strings.TrimSpace(doc.Text) == "":
		return sentinel(OutcomeContentMissing, MsgContentMissing, qt)
	}

	kw := keywords.Extract(question)
	if kw.Empty() {
		return sentinel(OutcomeNoKeywords, MsgNoKeywords, qt)
	}

	ix := e.index(ctx, doc)
	best, ok := relevance.Best(e.scorer, kw, ix.Sentences)
	if !ok {
		return sentinel(OutcomeNoMatch, MsgNoMatch, qt)
	}

	return &Answer{
		Text:         best.Segment.Text,
		Sources:      []Source{{Content: best.Segment.Text, DocumentID: doc.ID}},
		Outcome:      OutcomeAnswered,
		QuestionType: qt,
	}
}
