// Package distractor fabricates plausible wrong answers for multiple-choice
// questions.
package distractor

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// GenericPool holds domain-agnostic wrong answers, selected by
// variant mod len(GenericPool).
var GenericPool = []string{
	"A type of software application for data management",
	"A hardware component used for processing information",
	"A network protocol for secure communication",
	"A programming language feature for development",
	"A database management technique for storage",
	"A security mechanism for system protection",
	"An algorithm for efficient data processing",
	"A user interface design pattern for applications",
	"A mathematical model for statistical analysis",
	"A framework for web application development",
}

// Substitution maps a topic term to the alternatives swapped in for it.
type Substitution struct {
	Term         string
	Alternatives []string
}

// Substitutions is the topic table, in match priority order.
var Substitutions = []Substitution{
	{"machine learning", []string{"artificial intelligence", "data science", "computer vision", "natural language"}},
	{"neural networks", []string{"decision trees", "linear regression", "support vectors", "random forests"}},
	{"deep learning", []string{"shallow learning", "surface learning", "basic learning", "simple learning"}},
	{"artificial intelligence", []string{"machine learning", "data mining", "pattern recognition", "expert systems"}},
	{"data", []string{"information", "knowledge", "statistics", "algorithms"}},
	{"computers", []string{"machines", "systems", "devices", "processors"}},
	{"patterns", []string{"structures", "formats", "designs", "arrangements"}},
}

const (
	// MinSubstitutionLen is the shortest correct answer eligible for term
	// substitution. Shorter answers always get a generic distractor.
	MinSubstitutionLen = 60

	// DefaultVarietyBias is the threshold above which a random draw picks
	// the generic pool even when substitution would apply.
	DefaultVarietyBias = 0.7
)

var (
	termPattern = buildTermPattern()
	termIndex   = buildTermIndex()
)

// Generator produces distractors. Without WithRand it is fully
// deterministic. It is safe for concurrent use.
type Generator struct {
	mu   sync.Mutex
	rng  *rand.Rand
	bias float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand enables the variety bias: each substitution-eligible call draws
// from r and falls back to the generic pool when the draw exceeds the bias.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithVarietyBias overrides DefaultVarietyBias.
func WithVarietyBias(b float64) Option {
	return func(g *Generator) { g.bias = b }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{bias: DefaultVarietyBias}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate returns one wrong option for correct. The result never equals
// correct, ignoring case.
func (g *Generator) Generate(correct string, variant int) string {
	if utf8.RuneCountInString(correct) >= MinSubstitutionLen && !g.preferGeneric() {
		if s, ok := substitute(correct, variant); ok && !strings.EqualFold(s, correct) {
			return s
		}
	}
	return generic(correct, variant)
}

// Distinct returns n distractors for variants 1..n that differ from
// correct and from each other, ignoring case. When substitution produces
// collisions, further generic pool entries fill the gap. Each distractor
// takes the case of correct's first letter.
func (g *Generator) Distinct(correct string, n int) []string {
	out := make([]string, 0, n)
	seen := map[string]bool{strings.ToLower(correct): true}
	add := func(s string) {
		s = MatchCase(s, correct)
		if k := strings.ToLower(s); !seen[k] {
			seen[k] = true
			out = append(out, s)
		}
	}

	for v := 1; v <= n; v++ {
		add(g.Generate(correct, v))
	}
	for i := 0; len(out) < n && i < len(GenericPool); i++ {
		add(GenericPool[(n+1+i)%len(GenericPool)])
	}
	return out
}

func (g *Generator) preferGeneric() bool {
	if g.rng == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() > g.bias
}

// generic picks GenericPool[variant mod len], skipping forward past an
// entry that equals correct.
func generic(correct string, variant int) string {
	n := len(GenericPool)
	start := ((variant % n) + n) % n
	for i := 0; i < n; i++ {
		cand := GenericPool[(start+i)%n]
		if !strings.EqualFold(cand, correct) {
			return cand
		}
	}
	return GenericPool[start]
}

// substitute replaces every table term in the lower-cased text with its
// variant-indexed alternative in a single pass, then capitalizes the first
// letter. It reports whether anything was replaced.
func substitute(correct string, variant int) (string, bool) {
	replaced := false
	out := termPattern.ReplaceAllStringFunc(strings.ToLower(correct), func(term string) string {
		alts := termIndex[term]
		replaced = true
		return alts[((variant%len(alts))+len(alts))%len(alts)]
	})
	if !replaced {
		return "", false
	}
	return capitalize(out), true
}

func capitalize(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

// MatchCase upper- or lower-cases the first letter of s to match the first
// letter of like. A like that does not start with a cased letter leaves s
// unchanged.
func MatchCase(s, like string) string {
	r, _ := utf8.DecodeRuneInString(like)
	switch {
	case unicode.IsUpper(r):
		return mapFirst(s, unicode.ToUpper)
	case unicode.IsLower(r):
		return mapFirst(s, unicode.ToLower)
	}
	return s
}

func mapFirst(s string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(f(r)) + s[size:]
}

func buildTermPattern() *regexp.Regexp {
	terms := make([]string, len(Substitutions))
	for i, s := range Substitutions {
		terms[i] = regexp.QuoteMeta(s.Term)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(terms, "|") + `)\b`)
}

func buildTermIndex() map[string][]string {
	m := make(map[string][]string, len(Substitutions))
	for _, s := range Substitutions {
		m[s.Term] = s.Alternatives
	}
	return m
}
