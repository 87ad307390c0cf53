package keywords

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"What is normalization?", []string{"normalization"}},
		{"is", nil},
		{"", nil},
		{"How do the Neural-Networks learn patterns?", []string{"neural", "networks", "learn", "patterns"}},
		{"data DATA Data", []string{"data"}},
		{"Who is at an AI lab?", []string{"lab"}},
	}
	for _, tt := range tests {
		got := Extract(tt.query).Terms()
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Extract(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestExtract_EmptyIsVague(t *testing.T) {
	for _, q := range []string{"is", "what is the", "?!", "a b c"} {
		if s := Extract(q); !s.Empty() || s.Len() != 0 {
			t.Errorf("Extract(%q) should be empty, got %v", q, s.Terms())
		}
	}
}

func TestOf(t *testing.T) {
	s := Of("Data", "data", "", "model")
	if !reflect.DeepEqual(s.Terms(), []string{"data", "model"}) {
		t.Errorf("Of = %v", s.Terms())
	}
}

func TestTermsReturnsCopy(t *testing.T) {
	s := Extract("entropy measure")
	terms := s.Terms()
	terms[0] = "mutated"
	if s.Terms()[0] != "entropy" {
		t.Error("Terms must not expose internal storage")
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range StopWords {
		if !IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = false", w)
		}
	}
	if IsStopWord("normalization") {
		t.Error("normalization is not a stop-word")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		q    string
		want QuestionType
	}{
		{"What is entropy?", TypeDefinition},
		{"Define recursion", TypeDefinition},
		{"How does caching work?", TypeProcess},
		{"Why do stars shine?", TypeExplanation},
		{"Compare TCP and UDP", TypeComparison},
		{"When did the war end?", TypeTemporal},
		{"Where is the mitochondria?", TypeLocation},
		{"List the planets", TypeEnumeration},
		{"Tell me about Rome", TypeGeneral},
	}
	for _, tt := range tests {
		if got := Classify(tt.q); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.q, got, tt.want)
		}
	}
}
