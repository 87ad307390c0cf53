package textproc

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"horizontal whitespace", "a \t  b", "a b"},
		{"crlf and cr", "one\r\ntwo\rthree", "one\ntwo\nthree"},
		{"control chars", "a\x00b\x07c\x7fd", "abcd"},
		{"blank line runs", "a\n\n\n\nb", "a\n\nb"},
		{"spaces around blank lines", "a  \n \n\n  b", "a\n\nb"},
		{"trim", "   padded \n ", "padded"},
		{"invalid utf8", "a\xffb", "ab"},
		{"keeps single newlines", "Title\nBody text", "Title\nBody text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := "Chapter 1\r\n\r\n\r\n\tIntro  text.\x01\n"
	once := Normalize(in)
	if twice := Normalize(once); twice != once {
		t.Errorf("not idempotent: %q -> %q", once, twice)
	}
}

func TestSentences(t *testing.T) {
	text := "First sentence is long enough. Short. Another long sentence here!"
	got := Sentences(text, "doc-1", MinAnswerSentence)

	want := []string{"First sentence is long enough.", "Another long sentence here!"}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences, want %d: %+v", len(got), len(want), got)
	}
	for i, s := range got {
		if s.Text != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, s.Text, want[i])
		}
		if s.Position != i {
			t.Errorf("sentence %d position = %d", i, s.Position)
		}
		if s.DocumentID != "doc-1" {
			t.Errorf("sentence %d document = %q", i, s.DocumentID)
		}
		if s.Kind != KindSentence {
			t.Errorf("sentence %d kind = %q", i, s.Kind)
		}
	}
}

func TestSentences_ThresholdIsExclusive(t *testing.T) {
	exact := strings.Repeat("a", 15) + "."
	if got := Sentences(exact, "d", 15); len(got) != 0 {
		t.Errorf("expected 15-char sentence to be dropped, got %+v", got)
	}
	longer := strings.Repeat("a", 16) + "."
	if got := Sentences(longer, "d", 15); len(got) != 1 {
		t.Errorf("expected 16-char sentence to be kept, got %+v", got)
	}
}

func TestSentences_JoinsWrappedLines(t *testing.T) {
	got := Sentences("This sentence wraps\nacross two lines.", "d", 10)
	if len(got) != 1 || got[0].Text != "This sentence wraps across two lines." {
		t.Errorf("got %+v", got)
	}
}

func TestParagraphs(t *testing.T) {
	long := strings.Repeat("word ", 12)
	text := "tiny\n\n" + long + "\n  \n" + long
	got := Paragraphs(text, "doc")
	if len(got) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(got))
	}
	for i, p := range got {
		if p.Position != i || p.Kind != KindParagraph {
			t.Errorf("paragraph %d = %+v", i, p)
		}
	}
}

func TestLines(t *testing.T) {
	got := Lines("short\n  a line that is long  \n\nanother long line", 10)
	want := []string{"a line that is long", "another long line"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIndex(t *testing.T) {
	ix := NewIndex("d1", "notes.txt", "  Normalization reduces redundancy in tables.  Ok.  ")
	if ix.Empty() {
		t.Fatal("index should not be empty")
	}
	if ix.Text != "Normalization reduces redundancy in tables. Ok." {
		t.Errorf("text = %q", ix.Text)
	}
	if len(ix.Sentences) != 1 {
		t.Errorf("sentences = %+v", ix.Sentences)
	}
	if got := ix.SentencesLongerThan(50); len(got) != 0 {
		t.Errorf("SentencesLongerThan(50) = %+v", got)
	}

	var nilIndex *Index
	if !nilIndex.Empty() {
		t.Error("nil index should be empty")
	}
	if !NewIndex("d2", "", "   ").Empty() {
		t.Error("whitespace-only index should be empty")
	}
}
