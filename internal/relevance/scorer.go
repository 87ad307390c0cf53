// Package relevance ranks document segments against a keyword set.
package relevance

import (
	"sort"
	"strings"

	"github.com/abhisek/studybuddy/internal/keywords"
	"github.com/abhisek/studybuddy/internal/textproc"
)

// Scorer assigns a relevance score to a segment. Implementations must be
// stateless and safe for concurrent use; a score of 0 means "not relevant".
type Scorer interface {
	// Name returns a short identifier used in logs, e.g. "keyword".
	Name() string

	// Score returns a non-negative relevance score for seg.
	Score(kw keywords.Set, seg textproc.Segment) int
}

// KeywordScorer counts how many keywords occur as substrings of the
// lower-cased segment. There is no stemming and no position weighting.
type KeywordScorer struct{}

func (KeywordScorer) Name() string { return "keyword" }

func (KeywordScorer) Score(kw keywords.Set, seg textproc.Segment) int {
	lower := strings.ToLower(seg.Text)
	score := 0
	for _, k := range kw.Terms() {
		if strings.Contains(lower, k) {
			score++
		}
	}
	return score
}

// DefaultScorer returns the scorer used when none is configured.
func DefaultScorer() Scorer {
	return KeywordScorer{}
}

// Candidate is a segment together with its score.
type Candidate struct {
	Segment textproc.Segment
	Score   int
}

// Rank scores every segment, drops those scoring 0 and orders the rest by
// descending score. Equal scores keep their source order.
func Rank(s Scorer, kw keywords.Set, segs []textproc.Segment) []Candidate {
	if kw.Empty() {
		return nil
	}
	out := make([]Candidate, 0, len(segs))
	for _, seg := range segs {
		if score := s.Score(kw, seg); score > 0 {
			out = append(out, Candidate{Segment: seg, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Best returns the top-ranked candidate, or false when nothing scored.
func Best(s Scorer, kw keywords.Set, segs []textproc.Segment) (Candidate, bool) {
	ranked := Rank(s, kw, segs)
	if len(ranked) == 0 {
		return Candidate{}, false
	}
	return ranked[0], true
}
