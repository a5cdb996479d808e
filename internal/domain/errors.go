package domain

import "errors"

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrNilDocument signals a nil document passed to save.
	ErrNilDocument = errors.New("nil document")
	// ErrInvalidDocument signals a document failing presence checks.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrInvalidRequest signals an invalid search request.
	ErrInvalidRequest = errors.New("invalid search request")
)
