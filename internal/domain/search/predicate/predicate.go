// Package predicate holds the per-criterion match rules: each constructor
// binds one scalar criterion value and yields a yes/no decision for a single
// document. All comparisons are byte-wise and case-sensitive; the date
// bounds are strict (exclusive).
package predicate

import (
	"strings"
	"time"

	"github.com/kailas-cloud/docstore/internal/domain/document"
)

// Predicate decides whether a document satisfies one criterion value.
type Predicate func(doc document.Document) bool

// TitlePrefix matches documents whose title starts with prefix.
func TitlePrefix(prefix string) Predicate {
	return func(doc document.Document) bool {
		return strings.HasPrefix(doc.Title(), prefix)
	}
}

// ContentContains matches documents whose content contains substr anywhere.
func ContentContains(substr string) Predicate {
	return func(doc document.Document) bool {
		return strings.Contains(doc.Content(), substr)
	}
}

// AuthorID matches documents whose author identifier equals id exactly.
func AuthorID(id string) Predicate {
	return func(doc document.Document) bool {
		return doc.Author().ID() == id
	}
}

// CreatedAfter matches documents created strictly later than t.
func CreatedAfter(t time.Time) Predicate {
	return func(doc document.Document) bool {
		return doc.Created().After(t)
	}
}

// CreatedBefore matches documents created strictly earlier than t.
func CreatedBefore(t time.Time) Predicate {
	return func(doc document.Document) bool {
		return doc.Created().Before(t)
	}
}
