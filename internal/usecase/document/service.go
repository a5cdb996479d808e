package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/docstore/internal/domain"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Service handles document upsert and lookup.
type Service struct {
	repo Repository
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save upserts a document. A document without an identifier gets a freshly
// generated UUID before it is stored; an existing document keeps its stored
// identifier and creation timestamp (title, content and author are replaced).
// Returns the stored (post-merge) document.
func (s *Service) Save(ctx context.Context, doc *domdoc.Document) (domdoc.Document, error) {
	if doc == nil {
		return domdoc.Document{}, domain.ErrNilDocument
	}

	if doc.ID() == "" {
		doc.SetID(uuid.NewString())
	}

	stored, err := s.repo.Save(ctx, *doc)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("save document: %w", err)
	}
	return stored, nil
}

// FindByID returns the document stored under the exact identifier.
// A missing identifier yields domain.ErrDocumentNotFound, never a panic;
// no partial or case-insensitive matching is performed.
func (s *Service) FindByID(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// List returns every stored document, in unspecified order.
func (s *Service) List(ctx context.Context) ([]domdoc.Document, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Count returns the number of stored documents.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}
