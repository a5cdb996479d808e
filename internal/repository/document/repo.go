// Package document implements the in-memory document store. The backing map
// is owned exclusively by the Repo; all mutation goes through its methods
// and is guarded by a read-write mutex, so the store is safe to share
// between the HTTP handlers and any embedding caller.
package document

import (
	"context"
	"fmt"
	"sync"

	"github.com/kailas-cloud/docstore/internal/domain"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repo implements usecase/document.Repository and usecase/search.Repository.
type Repo struct {
	mu   sync.RWMutex
	docs map[string]domdoc.Document
}

// New creates an empty document repository.
func New() *Repo {
	return &Repo{docs: make(map[string]domdoc.Document)}
}

// Save upserts a document under its identifier. The identifier must already
// be assigned. If an entry exists under that identifier, its title, content
// and author are replaced while the stored identifier and creation timestamp
// are preserved; otherwise the document is inserted as-is.
// Returns the stored (post-merge) document.
func (r *Repo) Save(_ context.Context, doc domdoc.Document) (domdoc.Document, error) {
	if doc.ID() == "" {
		return domdoc.Document{}, fmt.Errorf("save without identifier: %w", domain.ErrInvalidDocument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := doc
	if existing, ok := r.docs[doc.ID()]; ok {
		stored = existing.Merge(doc)
	}
	r.docs[doc.ID()] = stored

	return stored, nil
}

// Get returns the document stored under the exact identifier.
// A missing identifier is reported as domain.ErrDocumentNotFound.
func (r *Repo) Get(_ context.Context, id string) (domdoc.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return doc, nil
}

// All returns a snapshot of every stored document, in unspecified order.
func (r *Repo) All(_ context.Context) ([]domdoc.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]domdoc.Document, 0, len(r.docs))
	for _, doc := range r.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

// Count returns the number of stored documents.
func (r *Repo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.docs), nil
}

// Ping reports store availability. The in-memory store is always reachable.
func (r *Repo) Ping(_ context.Context) error {
	return nil
}
