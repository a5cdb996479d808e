package docstore

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testDocument(title, content, authorID string, created time.Time) *Document {
	return &Document{
		Title:   title,
		Content: content,
		Author:  Author{ID: authorID, Name: "Test Author"},
		Created: created,
	}
}

func ts(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func ids(docs []Document) map[string]bool {
	m := make(map[string]bool, len(docs))
	for _, d := range docs {
		m[d.ID] = true
	}
	return m
}

func TestSave_AssignsUniqueIDs(t *testing.T) {
	c := New()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		stored, err := c.Save(ctx, testDocument("Report", "content", "a1", ts(100)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.ID == "" {
			t.Fatal("expected non-empty generated identifier")
		}
		if seen[stored.ID] {
			t.Fatalf("duplicate identifier %q", stored.ID)
		}
		seen[stored.ID] = true
	}

	count, err := c.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 50 {
		t.Errorf("expected 50 documents, got %d", count)
	}
}

func TestSave_NilDocument(t *testing.T) {
	c := New()

	_, err := c.Save(context.Background(), nil)
	if !errors.Is(err, ErrNilDocument) {
		t.Errorf("expected ErrNilDocument, got %v", err)
	}
}

func TestSave_InvalidDocument(t *testing.T) {
	c := New()
	ctx := context.Background()

	tests := []struct {
		name string
		doc  *Document
	}{
		{"missing title", testDocument("", "content", "a1", ts(100))},
		{"missing content", testDocument("Report", "", "a1", ts(100))},
		{"missing author", testDocument("Report", "content", "", ts(100))},
		{"zero created", testDocument("Report", "content", "a1", time.Time{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Save(ctx, tt.doc)
			if !errors.Is(err, ErrInvalidDocument) {
				t.Errorf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}

	// Failed saves must not corrupt the store.
	count, err := c.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty store after failed saves, got %d documents", count)
	}
}

func TestSave_UpdatePreservesIDAndCreated(t *testing.T) {
	c := New()
	ctx := context.Background()

	original, err := c.Save(ctx, testDocument("Report", "content", "a1", ts(100)))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	update := testDocument("Updated", "fresh content", "a2", ts(999))
	update.ID = original.ID

	stored, err := c.Save(ctx, update)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if stored.ID != original.ID {
		t.Errorf("expected id %q preserved, got %q", original.ID, stored.ID)
	}
	if !stored.Created.Equal(original.Created) {
		t.Errorf("expected created %v preserved, got %v", original.Created, stored.Created)
	}
	if stored.Title != "Updated" || stored.Content != "fresh content" || stored.Author.ID != "a2" {
		t.Errorf("expected updated fields, got %+v", stored)
	}
}

func TestFindByID_AfterSave(t *testing.T) {
	c := New()
	ctx := context.Background()

	stored, err := c.Save(ctx, testDocument("Report", "content", "a1", ts(100)))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := c.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != stored.ID || got.Title != "Report" {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	c := New()

	_, err := c.FindByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSearch_UnionSemantics(t *testing.T) {
	c := New()
	ctx := context.Background()

	a, err := c.Save(ctx, testDocument("Report", "annual summary", "a1", ts(100)))
	if err != nil {
		t.Fatalf("save a: %v", err)
	}
	b, err := c.Save(ctx, testDocument("Notes", "the budget line", "a2", ts(100)))
	if err != nil {
		t.Fatalf("save b: %v", err)
	}

	// A matches only the title prefix, B matches only the substring; the
	// union includes both.
	results, err := c.Search(ctx, SearchRequest{
		TitlePrefixes:    []string{"Rep"},
		ContainsContents: []string{"budget"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ids(results)
	if len(got) != 2 || !got[a.ID] || !got[b.ID] {
		t.Errorf("expected union of both documents, got %v", got)
	}
}

func TestSearch_Deduplication(t *testing.T) {
	c := New()
	ctx := context.Background()

	if _, err := c.Save(ctx, testDocument("Report", "content", "author-1", ts(100))); err != nil {
		t.Fatalf("save: %v", err)
	}

	results, err := c.Search(ctx, SearchRequest{
		TitlePrefixes: []string{"Rep"},
		AuthorIDs:     []string{"author-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Errorf("document matching two criteria must appear exactly once, got %d", len(results))
	}
}

func TestSearch_IndependentDateBounds(t *testing.T) {
	c := New()
	ctx := context.Background()

	if _, err := c.Save(ctx, testDocument("Report", "content", "a1", ts(100))); err != nil {
		t.Fatalf("save: %v", err)
	}

	from := ts(50)
	to := ts(10)

	// createdFrom=50 alone includes the document.
	results, err := c.Search(ctx, SearchRequest{CreatedFrom: &from})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("createdFrom=50 should match, got %d results", len(results))
	}

	// createdTo=10 alone excludes it.
	results, err = c.Search(ctx, SearchRequest{CreatedTo: &to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("createdTo=10 should not match, got %d results", len(results))
	}

	// Both set: the bounds are independent criteria, so the createdFrom
	// match still admits the document.
	results, err = c.Search(ctx, SearchRequest{CreatedFrom: &from, CreatedTo: &to})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("independent bounds must union, got %d results", len(results))
	}
}

func TestSearch_EmptyRequest(t *testing.T) {
	c := New()
	ctx := context.Background()

	if _, err := c.Save(ctx, testDocument("Report", "content", "a1", ts(100))); err != nil {
		t.Fatalf("save: %v", err)
	}

	results, err := c.Search(ctx, SearchRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results == nil {
		t.Fatal("expected non-nil empty result")
	}
	if len(results) != 0 {
		t.Errorf("empty request must match nothing even on a non-empty store, got %d", len(results))
	}
}

func TestSearch_ResultsGrowWithCriteria(t *testing.T) {
	c := New()
	ctx := context.Background()

	if _, err := c.Save(ctx, testDocument("Alpha", "x", "a1", ts(100))); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := c.Save(ctx, testDocument("Beta", "x", "a2", ts(100))); err != nil {
		t.Fatalf("save: %v", err)
	}

	narrow, err := c.Search(ctx, SearchRequest{TitlePrefixes: []string{"Al"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wide, err := c.Search(ctx, SearchRequest{
		TitlePrefixes: []string{"Al"},
		AuthorIDs:     []string{"a2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(wide) < len(narrow) {
		t.Errorf("adding criteria must never shrink results: narrow=%d wide=%d", len(narrow), len(wide))
	}
	if len(wide) != 2 {
		t.Errorf("expected 2 results, got %d", len(wide))
	}
}

func TestSearch_InvalidRequest(t *testing.T) {
	c := New()

	values := make([]string, 64)
	for i := range values {
		values[i] = "v"
	}

	_, err := c.Search(context.Background(), SearchRequest{TitlePrefixes: values})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestClientsAreIsolated(t *testing.T) {
	ctx := context.Background()

	c1 := New()
	c2 := New()

	if _, err := c1.Save(ctx, testDocument("Report", "content", "a1", ts(100))); err != nil {
		t.Fatalf("save: %v", err)
	}

	count, err := c2.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected isolated stores, second client has %d documents", count)
	}
}
