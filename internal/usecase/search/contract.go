package search

import (
	"context"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

// Repository defines the storage contract for search: a full snapshot of the
// store to scan. Every active criterion scans the whole candidate set.
type Repository interface {
	All(ctx context.Context) ([]domdoc.Document, error)
}
