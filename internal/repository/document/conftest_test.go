package document

import (
	"testing"
	"time"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	return New()
}

func testDocument(t *testing.T, id string) domdoc.Document {
	t.Helper()
	author := domdoc.ReconstructAuthor("author-1", "Alice")
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return domdoc.Reconstruct(id, "Report", "quarterly budget", author, created)
}
