// Package keywords turns a free-text question into the set of lowercase
// terms used for lexical scoring.
package keywords

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// StopWords are discarded from every query. Changing the list changes which
// sentence every stored document answers with.
var StopWords = []string{
	"what", "is", "are", "the", "and", "or", "but", "in", "on", "at",
	"to", "for", "of", "with", "by", "how", "why", "when", "where", "who", "which",
}

// MinTokenLen is the shortest token kept.
const MinTokenLen = 3

var (
	stopSet       = toSet(StopWords)
	tokenBoundary = regexp.MustCompile(`\W+`)
)

// Set is an ordered, duplicate-free collection of keywords. The zero value
// is an empty set, which callers treat as "question too vague".
type Set struct {
	terms []string
}

// Extract lower-cases the query, splits it on non-word characters and
// drops short tokens and stop-words.
func Extract(query string) Set {
	var s Set
	seen := make(map[string]bool)
	for _, tok := range tokenBoundary.Split(strings.ToLower(query), -1) {
		if utf8.RuneCountInString(tok) < MinTokenLen || stopSet[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		s.terms = append(s.terms, tok)
	}
	return s
}

// Of builds a Set from already-normalized terms. Duplicates are dropped.
func Of(terms ...string) Set {
	var s Set
	seen := make(map[string]bool)
	for _, t := range terms {
		t = strings.ToLower(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		s.terms = append(s.terms, t)
	}
	return s
}

// Terms returns the keywords in first-seen order.
func (s Set) Terms() []string {
	return append([]string(nil), s.terms...)
}

// Len returns the number of keywords.
func (s Set) Len() int { return len(s.terms) }

// Empty reports whether no keywords survived extraction.
func (s Set) Empty() bool { return len(s.terms) == 0 }

// IsStopWord reports whether w (lowercase) is in StopWords.
func IsStopWord(w string) bool {
	return stopSet[w]
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
