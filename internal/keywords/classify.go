package keywords

import (
	"regexp"
	"strings"
)

// QuestionType is a coarse label for what the question is asking for.
type QuestionType string

const (
	TypeDefinition  QuestionType = "definition"
	TypeProcess     QuestionType = "process"
	TypeExplanation QuestionType = "explanation"
	TypeComparison  QuestionType = "comparison"
	TypeTemporal    QuestionType = "temporal"
	TypeLocation    QuestionType = "location"
	TypeEnumeration QuestionType = "enumeration"
	TypeGeneral     QuestionType = "general"
)

type typeRule struct {
	typ     QuestionType
	pattern *regexp.Regexp
}

// typeRules are evaluated in order; the first match wins.
var typeRules = []typeRule{
	{TypeDefinition, regexp.MustCompile(`^what is|^what are|define|definition|meaning`)},
	{TypeProcess, regexp.MustCompile(`^how|process|procedure|steps|method`)},
	{TypeExplanation, regexp.MustCompile(`^why|reason|cause|because`)},
	{TypeComparison, regexp.MustCompile(`compare|contrast|difference|similar|versus`)},
	{TypeTemporal, regexp.MustCompile(`^when|time|date|period`)},
	{TypeLocation, regexp.MustCompile(`^where|location|place`)},
	{TypeEnumeration, regexp.MustCompile(`list|types|kinds|categories|examples`)},
}

// Classify labels a question. It is informational only and never affects
// scoring.
func Classify(question string) QuestionType {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, r := range typeRules {
		if r.pattern.MatchString(q) {
			return r.typ
		}
	}
	return TypeGeneral
}
