package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/studyplan"
)

// load fetches a document and reports whether it has usable text. Lookup
// errors are logged against the operation name.
func (e *Engine) load(ctx context.Context, op, id string) (*Document, bool) {
	doc, err := e.src.GetDocumentText(ctx, id)
	if err != nil {
		e.log.Warn("document unavailable",
			zap.String("op", op),
			zap.String("document_id", id),
			zap.Error(err))
		return nil, false
	}
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		e.log.Debug("document has no content",
			zap.String("op", op),
			zap.String("document_id", id))
		return doc, false
	}
	return doc, true
}

// GenerateQuiz returns exactly n questions for the document. Missing or
// short documents are served from the default bank.
func (e *Engine) GenerateQuiz(ctx context.Context, documentID string, n int) []quiz.Question {
	var content string
	if doc, ok := e.load(ctx, "quiz", documentID); ok {
		content = e.index(ctx, doc).Text
	}
	return e.composer.Compose(content, n)
}

// GenerateStudyPlan extracts topics from every loadable document, in id
// order, and spreads them over the requested number of days.
func (e *Engine) GenerateStudyPlan(ctx context.Context, documentIDs []string, prefs studyplan.Preferences) *studyplan.Plan {
	perDoc := make([][]studyplan.Topic, len(documentIDs))
	loaded := make([]bool, len(documentIDs))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, id := range documentIDs {
		g.Go(func() error {
			doc, ok := e.load(ctx, "study-plan", id)
			if !ok {
				return nil
			}
			ix := e.index(ctx, doc)
			perDoc[i] = studyplan.ExtractTopics(ix.Text, doc.FileName)
			loaded[i] = true
			return nil
		})
	}
	_ = g.Wait()

	var (
		topics    []studyplan.Topic
		documents int
	)
	for i := range documentIDs {
		if loaded[i] {
			documents++
			topics = append(topics, perDoc[i]...)
		}
	}
	return e.planner.BuildPlan(topics, documents, prefs, e.now())
}
