package engine

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a DocumentSource when the id is unknown.
var ErrNotFound = errors.New("document not found")

// Document is the immutable snapshot the engine reads for one call.
type Document struct {
	ID       string
	FileName string
	Text     string
}

// DocumentSource fetches document text. Implementations wrap ErrNotFound
// for unknown ids.
type DocumentSource interface {
	GetDocumentText(ctx context.Context, id string) (*Document, error)
}

// SourceFunc adapts a function to DocumentSource.
type SourceFunc func(ctx context.Context, id string) (*Document, error)

func (f SourceFunc) GetDocumentText(ctx context.Context, id string) (*Document, error) {
	return f(ctx, id)
}
