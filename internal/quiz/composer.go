package quiz

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/abhisek/studybuddy/internal/distractor"
	"github.com/abhisek/studybuddy/internal/extract"
	"github.com/abhisek/studybuddy/internal/textproc"
)

// Config controls how a Composer builds quizzes.
type Config struct {
	// Generators run in priority order until the requested count is
	// reached.
	Generators []Generator

	// Validators run on every generated question. The first failure
	// drops the question.
	Validators []Validator

	// MinContent is the shortest trimmed document body mined for
	// questions. Shorter content is served entirely from the default bank.
	MinContent int
}

// DefaultConfig returns the standard generator and validator chains.
func DefaultConfig() Config {
	d := distractor.New()
	return Config{
		Generators: DefaultGenerators(d, extract.DefaultExtractors()...),
		Validators: DefaultValidators(),
		MinContent: textproc.MinQuizContent,
	}
}

// Composer turns document text into a quiz of an exact length.
type Composer struct {
	cfg Config
	log *zap.Logger
}

// NewComposer creates a Composer. A nil logger disables logging.
func NewComposer(cfg Config, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{cfg: cfg, log: log}
}

// Compose returns exactly n valid questions for content. Generated
// questions come first; the rest are drawn from the default bank, picking
// item len(quiz) mod DefaultBankSize each time.
func (c *Composer) Compose(content string, n int) []Question {
	if n < 1 {
		return []Question{}
	}

	var out []Question
	if utf8.RuneCountInString(strings.TrimSpace(content)) >= c.cfg.MinContent {
		out = c.generate(NewSource(content), n)
	} else {
		c.log.Debug("content too short for generation, using default bank",
			zap.Int("length", len(content)))
	}

	for len(out) < n {
		out = append(out, bankQuestion(len(out)))
	}
	return out[:n]
}

// generate runs the generators in priority order. Every generator may
// return up to n questions; only valid questions with a prompt not already
// taken are kept, until n are collected.
func (c *Composer) generate(src Source, n int) []Question {
	var out []Question
	seen := make(map[string]bool)
	for _, g := range c.cfg.Generators {
		if len(out) >= n {
			break
		}
		for _, q := range g.Generate(src, n) {
			if len(out) >= n {
				break
			}
			if err := Check(q, c.cfg.Validators); err != nil {
				c.log.Debug("dropping invalid question",
					zap.String("generator", g.Name()),
					zap.String("question", q.Prompt),
					zap.Error(err))
				continue
			}
			key := promptKey(q.Prompt)
			if seen[key] {
				c.log.Debug("dropping repeated question",
					zap.String("generator", g.Name()),
					zap.String("question", q.Prompt))
				continue
			}
			seen[key] = true
			out = append(out, q)
		}
	}
	return out
}

// promptKey folds case and whitespace so reworded spacing still collides.
func promptKey(prompt string) string {
	return strings.ToLower(strings.Join(strings.Fields(prompt), " "))
}
