package quiz

import (
	"encoding/json"
	"strings"
	"testing"
)

const sampleDoc = "Machine learning is a field of study that gives computers the ability to learn from data without being explicitly programmed.\n" +
	"Normalization is the process of organizing data to reduce redundancy.\n" +
	"There are three main types of machine learning: supervised, unsupervised and reinforcement learning.\n" +
	"The most important step in any project is understanding the data before building models."

func assertWellFormed(t *testing.T, qs []Question) {
	t.Helper()
	for i, q := range qs {
		if err := Check(q, DefaultValidators()); err != nil {
			t.Errorf("question %d invalid: %v", i, err)
		}
		correct := strings.ToLower(q.Answer())
		for j, opt := range q.Options {
			if j != q.Correct && strings.ToLower(opt) == correct {
				t.Errorf("question %d option %d repeats the correct answer %q", i, j, opt)
			}
		}
	}
}

func TestCompose_ExactCount(t *testing.T) {
	c := NewComposer(DefaultConfig(), nil)
	for _, n := range []int{1, 3, 5, 8, 10, 25} {
		got := c.Compose(sampleDoc, n)
		if len(got) != n {
			t.Errorf("Compose(n=%d) returned %d questions", n, len(got))
		}
		assertWellFormed(t, got)
	}
}

func TestCompose_NonPositiveCount(t *testing.T) {
	c := NewComposer(DefaultConfig(), nil)
	for _, n := range []int{0, -3} {
		got := c.Compose(sampleDoc, n)
		if got == nil || len(got) != 0 {
			t.Errorf("Compose(n=%d) = %v, want empty slice", n, got)
		}
	}
}

func TestCompose_PriorityOrder(t *testing.T) {
	got := NewComposer(DefaultConfig(), nil).Compose(sampleDoc, 5)

	want := []struct {
		kind   Kind
		prompt string
	}{
		{KindDefinition, "What is Machine learning?"},
		{KindDefinition, "What is Normalization?"},
		{KindConcept, "Which of the following best describes Machine learning?"},
		{KindConcept, "Which of the following best describes Normalization?"},
		{KindConcept, "Which of the following best describes There?"},
	}
	for i, w := range want {
		if got[i].Kind != w.kind || got[i].Prompt != w.prompt {
			t.Errorf("question %d = (%s) %q, want (%s) %q", i, got[i].Kind, got[i].Prompt, w.kind, w.prompt)
		}
	}
	if got[1].Answer() != "the process of organizing data to reduce redundancy" {
		t.Errorf("definition answer = %q", got[1].Answer())
	}
	if got[1].Explanation != "Based on the document: the process of organizing data to reduce redundancy" {
		t.Errorf("explanation = %q", got[1].Explanation)
	}
}

func TestCompose_ShortContentCyclesBank(t *testing.T) {
	c := NewComposer(DefaultConfig(), nil)
	bank := DefaultBank()

	got := c.Compose("ten chars.", 10)
	if len(got) != 10 {
		t.Fatalf("got %d questions, want 10", len(got))
	}
	for i, q := range got {
		want := bank[i%DefaultBankSize]
		if q.Prompt != want.Prompt || q.Correct != want.Correct {
			t.Errorf("question %d = %q, want bank item %d", i, q.Prompt, i%DefaultBankSize)
		}
		if q.Kind != KindDefault {
			t.Errorf("question %d kind = %q", i, q.Kind)
		}
	}
}

func TestCompose_EmptyContent(t *testing.T) {
	got := NewComposer(DefaultConfig(), nil).Compose("", 3)
	bank := DefaultBank()
	for i := range got {
		if got[i].Prompt != bank[i].Prompt {
			t.Errorf("question %d = %q", i, got[i].Prompt)
		}
	}
}

func TestCompose_PaddingStartsAfterGenerated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generators = []Generator{&DefinitionGenerator{}}
	got := NewComposer(cfg, nil).Compose(sampleDoc, 4)

	bank := DefaultBank()
	if got[0].Kind != KindDefinition || got[1].Kind != KindDefinition {
		t.Fatalf("expected two definitions first, got %q, %q", got[0].Kind, got[1].Kind)
	}
	if got[2].Prompt != bank[2].Prompt || got[3].Prompt != bank[3].Prompt {
		t.Errorf("padding = %q, %q; want bank items 2 and 3", got[2].Prompt, got[3].Prompt)
	}
}

type stubGenerator struct {
	questions []Question
}

func (s *stubGenerator) Name() string { return "stub" }

func (s *stubGenerator) Generate(_ Source, budget int) []Question {
	if budget < len(s.questions) {
		return s.questions[:budget]
	}
	return s.questions
}

func TestCompose_DropsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generators = []Generator{&stubGenerator{questions: []Question{
		{Prompt: "Broken?", Options: []string{"only one"}, Correct: 0},
		{Prompt: "Fine?", Options: []string{"yes", "no"}, Correct: 1},
	}}}
	got := NewComposer(cfg, nil).Compose(sampleDoc, 2)

	if got[0].Prompt != "Fine?" {
		t.Errorf("question 0 = %q, want the valid stub", got[0].Prompt)
	}
	if got[1].Prompt != DefaultBank()[1].Prompt {
		t.Errorf("question 1 = %q, want bank item 1", got[1].Prompt)
	}
}

func TestCompose_SkipsRepeatedPrompts(t *testing.T) {
	sentence := "Machine learning is a field of study that gives computers the ability to learn from data. "
	doc := strings.Repeat(sentence, 3) + "Normalization is the process of organizing data to reduce redundancy."

	got := NewComposer(DefaultConfig(), nil).Compose(doc, 4)
	if len(got) != 4 {
		t.Fatalf("got %d questions, want 4", len(got))
	}
	seen := map[string]bool{}
	for i, q := range got {
		if seen[q.Prompt] {
			t.Errorf("question %d repeats %q", i, q.Prompt)
		}
		seen[q.Prompt] = true
	}
	if got[0].Prompt != "What is Machine learning?" || got[1].Prompt != "What is Normalization?" {
		t.Errorf("definitions = %q, %q", got[0].Prompt, got[1].Prompt)
	}
}

func TestCompose_RepeatedStubPromptsPadFromBank(t *testing.T) {
	q := Question{Prompt: "Same?", Options: []string{"yes", "no"}, Correct: 0}
	dup := q
	dup.Prompt = "  same? "
	cfg := DefaultConfig()
	cfg.Generators = []Generator{&stubGenerator{questions: []Question{q, dup, q}}}

	got := NewComposer(cfg, nil).Compose(sampleDoc, 3)
	if got[0].Prompt != "Same?" {
		t.Errorf("question 0 = %q", got[0].Prompt)
	}
	bank := DefaultBank()
	if got[1].Prompt != bank[1].Prompt || got[2].Prompt != bank[2].Prompt {
		t.Errorf("padding = %q, %q", got[1].Prompt, got[2].Prompt)
	}
}

func TestDefinitionOptionsShareCase(t *testing.T) {
	got := (&DefinitionGenerator{}).Generate(NewSource(sampleDoc), 2)
	if len(got) == 0 {
		t.Fatal("expected definition questions")
	}
	for _, q := range got {
		first := q.Answer()[:1]
		for _, opt := range q.Options {
			if opt[:1] != strings.ToLower(opt[:1]) && first == strings.ToLower(first) {
				t.Errorf("%q: option %q is capitalized but the answer %q is not", q.Prompt, opt, q.Answer())
			}
		}
	}
}

func TestFactualGenerator(t *testing.T) {
	text := "The first version of the protocol was released in 1995 by researchers."
	got := (&FactualGenerator{}).Generate(NewSource(text), 5)
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}
	q := got[0]
	wantPrompt := "Complete the following statement: The ______ version of the protocol was released in 1995 by researchers."
	if q.Prompt != wantPrompt {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.Answer() != "first" {
		t.Errorf("answer = %q", q.Answer())
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %v", q.Options)
	}
}

func TestFactualGenerator_RequiresCue(t *testing.T) {
	text := "Rivers carry sediment downstream toward the ocean over long periods."
	if got := (&FactualGenerator{}).Generate(NewSource(text), 5); len(got) != 0 {
		t.Errorf("expected no questions without a cue word, got %+v", got)
	}
}

func TestKeywordGenerator(t *testing.T) {
	text := "Regular practice is an essential habit for students who want strong results."
	got := (&KeywordGenerator{}).Generate(NewSource(text), 5)
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}
	if !strings.HasPrefix(got[0].Prompt, "Fill in the blank: ______ practice") {
		t.Errorf("prompt = %q", got[0].Prompt)
	}
	if got[0].Answer() != "Regular" {
		t.Errorf("answer = %q", got[0].Answer())
	}
	if got[0].Explanation != "From the document: "+text {
		t.Errorf("explanation = %q", got[0].Explanation)
	}
}

func TestKeywordGenerator_RequiresNineWords(t *testing.T) {
	text := "Sleep is a critical factor for memory consolidation."
	if got := (&KeywordGenerator{}).Generate(NewSource(text), 5); len(got) != 0 {
		t.Errorf("expected no questions for an eight-word sentence, got %+v", got)
	}
}

func TestPickBlankWord(t *testing.T) {
	tests := []struct {
		words []string
		want  string
	}{
		{[]string{"The", "(quick)", "fox"}, "quick"},
		{[]string{"which", "where", "these,", "animals"}, "these"},
		{[]string{"from", "that", "this", "a", "b"}, ""},
	}
	for _, tt := range tests {
		if got := pickBlankWord(tt.words); got != tt.want {
			t.Errorf("pickBlankWord(%v) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestMaskFirst(t *testing.T) {
	got, ok := maskFirst("Data about data is metadata.", "data")
	if !ok || got != "______ about data is metadata." {
		t.Errorf("maskFirst = %q, %v", got, ok)
	}
	if _, ok := maskFirst("nothing here", "absent"); ok {
		t.Error("expected no mask for an absent word")
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"valid", Question{Prompt: "Q?", Options: []string{"a", "b"}, Correct: 1}, false},
		{"empty prompt", Question{Prompt: "  ", Options: []string{"a", "b"}}, true},
		{"one option", Question{Prompt: "Q?", Options: []string{"a"}}, true},
		{"negative index", Question{Prompt: "Q?", Options: []string{"a", "b"}, Correct: -1}, true},
		{"index too large", Question{Prompt: "Q?", Options: []string{"a", "b"}, Correct: 2}, true},
	}
	for _, tt := range tests {
		err := v.Validate(tt.q)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && err.Validator != "structural" {
			t.Errorf("%s: validator = %q", tt.name, err.Validator)
		}
	}
}

func TestDistinctOptionsValidator(t *testing.T) {
	v := &DistinctOptionsValidator{}
	if err := v.Validate(Question{Options: []string{"Alpha", "Beta"}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.Validate(Question{Options: []string{"Alpha", "alpha "}}); err == nil {
		t.Error("expected duplicate error")
	}
	if err := v.Validate(Question{Options: []string{"Alpha", ""}}); err == nil {
		t.Error("expected empty option error")
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "structural", Message: "question is empty"}
	if got := err.Error(); got != `validator "structural": question is empty` {
		t.Errorf("Error() = %q", got)
	}
}

func TestDefaultBank(t *testing.T) {
	bank := DefaultBank()
	if len(bank) != DefaultBankSize {
		t.Fatalf("bank has %d items, want %d", len(bank), DefaultBankSize)
	}
	wantCorrect := []int{0, 2, 1, 2, 2, 2, 1, 1}
	for i, q := range bank {
		if q.Correct != wantCorrect[i] {
			t.Errorf("bank item %d correct = %d, want %d", i, q.Correct, wantCorrect[i])
		}
		if err := Check(q, DefaultValidators()); err != nil {
			t.Errorf("bank item %d invalid: %v", i, err)
		}
	}

	bank[0].Options[0] = "mutated"
	if DefaultBank()[0].Options[0] == "mutated" {
		t.Error("DefaultBank must return independent copies")
	}
}

func TestSchema(t *testing.T) {
	qs := NewComposer(DefaultConfig(), nil).Compose(sampleDoc, 6)
	raw, err := json.Marshal(qs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidateJSON(raw); err != nil {
		t.Errorf("composed quiz failed schema: %v", err)
	}

	bad := `[{"question":"","options":["a"],"correct":0,"explanation":""}]`
	if err := ValidateJSON([]byte(bad)); err == nil {
		t.Error("expected schema error for malformed quiz")
	}
}
