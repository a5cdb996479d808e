package docstore

import "github.com/kailas-cloud/docstore/internal/domain"

// Sentinel errors returned by the Client. Match with errors.Is.
var (
	// ErrNotFound signals a lookup for an identifier no document is stored under.
	ErrNotFound = domain.ErrDocumentNotFound
	// ErrNilDocument signals a nil document passed to Save.
	ErrNilDocument = domain.ErrNilDocument
	// ErrInvalidDocument signals a document failing presence checks.
	ErrInvalidDocument = domain.ErrInvalidDocument
	// ErrInvalidRequest signals an invalid search request.
	ErrInvalidRequest = domain.ErrInvalidRequest
)
