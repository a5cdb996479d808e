package document

import (
	"context"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Save(ctx context.Context, doc domdoc.Document) (domdoc.Document, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	All(ctx context.Context) ([]domdoc.Document, error)
	Count(ctx context.Context) (int, error)
}
