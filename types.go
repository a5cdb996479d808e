package docstore

import (
	"fmt"
	"time"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
)

// Author identifies who wrote a document.
type Author struct {
	ID   string
	Name string
}

// Document is a stored record. ID may be left empty on save; the store then
// assigns a generated identifier. Created is supplied by the caller on first
// save and never overwritten by later saves under the same ID.
type Document struct {
	ID      string
	Title   string
	Content string
	Author  Author
	Created time.Time
}

// SearchRequest is a bag of independent, optional filter criteria. A nil
// list or bound means "do not filter on this dimension"; an empty non-nil
// list is an active criterion that matches nothing. A request with no
// active criteria matches nothing at all.
//
// Results are the union across all active criteria and all values within a
// list: a document satisfying any single one is included, once. CreatedFrom
// (strictly after) and CreatedTo (strictly before) are independent criteria
// and are unioned like the rest, not combined into a range.
type SearchRequest struct {
	TitlePrefixes    []string
	ContainsContents []string
	AuthorIDs        []string
	CreatedFrom      *time.Time
	CreatedTo        *time.Time
}

func documentToDomain(doc *Document) (domdoc.Document, error) {
	author, err := domdoc.NewAuthor(doc.Author.ID, doc.Author.Name)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	d, err := domdoc.New(doc.ID, doc.Title, doc.Content, author, doc.Created)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return d, nil
}

func documentFromDomain(doc domdoc.Document) Document {
	return Document{
		ID:      doc.ID(),
		Title:   doc.Title(),
		Content: doc.Content(),
		Author: Author{
			ID:   doc.Author().ID(),
			Name: doc.Author().Name(),
		},
		Created: doc.Created(),
	}
}

func searchRequestToDomain(req SearchRequest) (request.Request, error) {
	r, err := request.New(
		req.TitlePrefixes,
		req.ContainsContents,
		req.AuthorIDs,
		req.CreatedFrom,
		req.CreatedTo,
	)
	if err != nil {
		return request.Request{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return r, nil
}
