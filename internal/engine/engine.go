// Package engine answers questions, builds quizzes and composes study plans
// from stored documents using keyword heuristics. Every operation returns a
// usable value; failures degrade to sentinel answers or fallback content and
// are logged rather than returned.
package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/studybuddy/internal/cache"
	"github.com/abhisek/studybuddy/internal/distractor"
	"github.com/abhisek/studybuddy/internal/extract"
	"github.com/abhisek/studybuddy/internal/quiz"
	"github.com/abhisek/studybuddy/internal/relevance"
	"github.com/abhisek/studybuddy/internal/studyplan"
	"github.com/abhisek/studybuddy/internal/textproc"
)

// Defaults used when no option overrides them.
const (
	DefaultConcurrency = 4
	DefaultConfidence  = 0.5
	defaultCacheSize   = 128
	defaultCacheTTL    = 10 * time.Minute
)

type Engine struct {
	src         DocumentSource
	log         *zap.Logger
	scorer      relevance.Scorer
	extractors  []extract.PatternExtractor
	composer    *quiz.Composer
	planner     studyplan.Planner
	cache       cache.Cache[*textproc.Index]
	now         func() time.Time
	concurrency int
	confidence  float64
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithScorer(s relevance.Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithExtractors replaces the concept extractors used by quiz generation.
// It has no effect when WithComposer is also given.
func WithExtractors(x ...extract.PatternExtractor) Option {
	return func(e *Engine) { e.extractors = x }
}

func WithComposer(c *quiz.Composer) Option {
	return func(e *Engine) { e.composer = c }
}

func WithPlanner(p studyplan.Planner) Option {
	return func(e *Engine) { e.planner = p }
}

// WithCache sets the document index cache. Pass cache.Noop to disable.
func WithCache(c cache.Cache[*textproc.Index]) Option {
	return func(e *Engine) { e.cache = c }
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithConcurrency bounds the per-document fan-out. Values below 1 are
// ignored.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithConfidence sets the confidence attached to every multi-document
// answer.
func WithConfidence(c float64) Option {
	return func(e *Engine) { e.confidence = c }
}

func New(src DocumentSource, opts ...Option) *Engine {
	e := &Engine{
		src:         src,
		log:         zap.NewNop(),
		scorer:      relevance.DefaultScorer(),
		extractors:  extract.DefaultExtractors(),
		planner:     studyplan.NewPlanner(),
		now:         time.Now,
		concurrency: DefaultConcurrency,
		confidence:  DefaultConfidence,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = cache.NewMemory[*textproc.Index](defaultCacheSize, defaultCacheTTL)
	}
	if e.composer == nil {
		cfg := quiz.DefaultConfig()
		cfg.Generators = quiz.DefaultGenerators(distractor.New(), e.extractors...)
		e.composer = quiz.NewComposer(cfg, e.log)
	}
	return e
}

// indexKey identifies an index by document id and content, so edits to a
// stored document never serve a stale index.
func indexKey(doc *Document) string {
	sum := sha256.Sum256([]byte(doc.Text))
	return doc.ID + ":" + hex.EncodeToString(sum[:])[:16]
}

// index returns the segmented form of doc, from the cache when possible.
// Cache failures fall back to building the index.
func (e *Engine) index(ctx context.Context, doc *Document) *textproc.Index {
	key := indexKey(doc)
	ix, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		e.log.Debug("index cache get failed", zap.String("key", key), zap.Error(err))
	}
	if ok && ix != nil {
		return ix
	}

	ix = textproc.NewIndex(doc.ID, doc.FileName, doc.Text)
	if err := e.cache.Set(ctx, key, ix); err != nil {
		e.log.Debug("index cache set failed", zap.String("key", key), zap.Error(err))
	}
	return ix
}
