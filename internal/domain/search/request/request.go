package request

import (
	"fmt"
	"time"
)

// Search parameter limits.
const (
	// MaxValuesPerCriterion is the maximum number of values per list criterion.
	MaxValuesPerCriterion = 32
	// MaxTermLength is the maximum length of a single criterion value.
	MaxTermLength = 4096
)

// Request is a validated search query: a bag of independent, optional filter
// criteria. A nil sequence means the criterion is inactive; an empty non-nil
// sequence is active but matches nothing. Nil date bounds are inactive.
// The request is purely descriptive and performs no filtering itself.
type Request struct {
	titlePrefixes    []string
	containsContents []string
	authorIDs        []string
	createdFrom      *time.Time
	createdTo        *time.Time
}

// New validates and creates a search Request. Every field may be nil,
// including all of them at once (such a request matches nothing).
func New(
	titlePrefixes, containsContents, authorIDs []string,
	createdFrom, createdTo *time.Time,
) (Request, error) {
	if err := validateValues("title_prefixes", titlePrefixes); err != nil {
		return Request{}, err
	}
	if err := validateValues("contains_contents", containsContents); err != nil {
		return Request{}, err
	}
	if err := validateValues("author_ids", authorIDs); err != nil {
		return Request{}, err
	}

	return Request{
		titlePrefixes:    cloneValues(titlePrefixes),
		containsContents: cloneValues(containsContents),
		authorIDs:        cloneValues(authorIDs),
		createdFrom:      cloneTime(createdFrom),
		createdTo:        cloneTime(createdTo),
	}, nil
}

// TitlePrefixes returns the title-prefix criterion values.
func (r *Request) TitlePrefixes() []string { return r.titlePrefixes }

// ContainsContents returns the content-substring criterion values.
func (r *Request) ContainsContents() []string { return r.containsContents }

// AuthorIDs returns the author-identifier criterion values.
func (r *Request) AuthorIDs() []string { return r.authorIDs }

// CreatedFrom returns the exclusive lower creation-time bound, or nil.
func (r *Request) CreatedFrom() *time.Time { return r.createdFrom }

// CreatedTo returns the exclusive upper creation-time bound, or nil.
func (r *Request) CreatedTo() *time.Time { return r.createdTo }

// IsEmpty reports whether no criterion is active.
func (r *Request) IsEmpty() bool {
	return r.titlePrefixes == nil &&
		r.containsContents == nil &&
		r.authorIDs == nil &&
		r.createdFrom == nil &&
		r.createdTo == nil
}

func validateValues(criterion string, values []string) error {
	if len(values) > MaxValuesPerCriterion {
		return fmt.Errorf("too many %s values (max %d)", criterion, MaxValuesPerCriterion)
	}
	for _, v := range values {
		if len(v) > MaxTermLength {
			return fmt.Errorf("%s value too long (max %d chars)", criterion, MaxTermLength)
		}
	}
	return nil
}

// cloneValues copies a criterion value list, preserving the nil/empty
// distinction the query model depends on.
func cloneValues(values []string) []string {
	if values == nil {
		return nil
	}
	c := make([]string, len(values))
	copy(c, values)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
