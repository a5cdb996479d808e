package search

import (
	"context"
	"fmt"

	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/predicate"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
)

// Service is the result aggregator: it turns a search request into the set
// of documents matching at least one active criterion.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search runs every active criterion of the request against the full store
// and returns the union of the per-criterion match sets, deduplicated by
// document identifier. Results can only grow as more criteria are supplied;
// a document matching any one value of any criterion is included. The two
// date bounds are independent criteria and are unioned like the rest, never
// intersected into a range. A request with no active criteria yields an
// empty result, and no matches is never an error. Result order is
// unspecified.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]domdoc.Document, error) {
	predicates := activePredicates(req)

	results := make([]domdoc.Document, 0)
	if len(predicates) == 0 {
		return results, nil
	}

	docs, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan store: %w", err)
	}

	seen := make(map[string]struct{})
	for _, p := range predicates {
		for _, doc := range docs {
			if _, ok := seen[doc.ID()]; ok {
				continue
			}
			if p(doc) {
				seen[doc.ID()] = struct{}{}
				results = append(results, doc)
			}
		}
	}

	return results, nil
}

// activePredicates expands the request into one predicate per active
// criterion value. Nil list criteria and empty ones both expand to zero
// predicates; nil date bounds expand to none.
func activePredicates(req *request.Request) []predicate.Predicate {
	var predicates []predicate.Predicate

	for _, prefix := range req.TitlePrefixes() {
		predicates = append(predicates, predicate.TitlePrefix(prefix))
	}
	for _, substr := range req.ContainsContents() {
		predicates = append(predicates, predicate.ContentContains(substr))
	}
	for _, id := range req.AuthorIDs() {
		predicates = append(predicates, predicate.AuthorID(id))
	}
	if from := req.CreatedFrom(); from != nil {
		predicates = append(predicates, predicate.CreatedAfter(*from))
	}
	if to := req.CreatedTo(); to != nil {
		predicates = append(predicates, predicate.CreatedBefore(*to))
	}

	return predicates
}
