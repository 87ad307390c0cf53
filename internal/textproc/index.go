package textproc

// Index is the segmented form of one document. It is immutable once built
// and safe to share between goroutines and cache backends.
type Index struct {
	DocumentID string    `json:"document_id"`
	FileName   string    `json:"file_name"`
	Text       string    `json:"text"`
	Sentences  []Segment `json:"sentences"`
	Paragraphs []Segment `json:"paragraphs"`
}

// NewIndex normalizes text and segments it. Sentences are cut at the
// loosest threshold (MinAnswerSentence); stricter consumers filter with
// SentencesLongerThan.
func NewIndex(docID, fileName, text string) *Index {
	clean := Normalize(text)
	return &Index{
		DocumentID: docID,
		FileName:   fileName,
		Text:       clean,
		Sentences:  Sentences(clean, docID, MinAnswerSentence),
		Paragraphs: Paragraphs(clean, docID),
	}
}

// Empty reports whether the document has no usable text.
func (ix *Index) Empty() bool {
	return ix == nil || ix.Text == ""
}

// SentencesLongerThan returns the sentences whose length exceeds n, in
// source order.
func (ix *Index) SentencesLongerThan(n int) []Segment {
	if ix == nil {
		return nil
	}
	out := make([]Segment, 0, len(ix.Sentences))
	for _, s := range ix.Sentences {
		if s.Len() > n {
			out = append(out, s)
		}
	}
	return out
}
