package document

import (
	"strings"
	"testing"
	"time"
)

func testAuthor(t *testing.T) Author {
	t.Helper()
	a, err := NewAuthor("author-1", "Alice")
	if err != nil {
		t.Fatalf("NewAuthor: %v", err)
	}
	return a
}

func TestNew_Valid(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	doc, err := New("doc-1", "Report", "quarterly budget", testAuthor(t), created)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.ID() != "doc-1" {
		t.Errorf("expected id doc-1, got %q", doc.ID())
	}
	if doc.Title() != "Report" {
		t.Errorf("expected title Report, got %q", doc.Title())
	}
	if doc.Author().ID() != "author-1" {
		t.Errorf("expected author author-1, got %q", doc.Author().ID())
	}
	if !doc.Created().Equal(created) {
		t.Errorf("expected created %v, got %v", created, doc.Created())
	}
}

func TestNew_EmptyIDAllowed(t *testing.T) {
	doc, err := New("", "Report", "content", testAuthor(t), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "" {
		t.Errorf("expected empty id, got %q", doc.ID())
	}
}

func TestNew_Invalid(t *testing.T) {
	author := testAuthor(t)
	created := time.Now()

	tests := []struct {
		name    string
		id      string
		title   string
		content string
		author  Author
		created time.Time
	}{
		{"missing title", "doc-1", "", "content", author, created},
		{"missing content", "doc-1", "Report", "", author, created},
		{"missing author", "doc-1", "Report", "content", Author{}, created},
		{"zero created", "doc-1", "Report", "content", author, time.Time{}},
		{"id too long", strings.Repeat("a", MaxIDLength+1), "Report", "content", author, created},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.id, tt.title, tt.content, tt.author, tt.created); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewAuthor_RequiresID(t *testing.T) {
	if _, err := NewAuthor("", "Alice"); err == nil {
		t.Error("expected error for empty author id")
	}
}

func TestSetID(t *testing.T) {
	doc, err := New("", "Report", "content", testAuthor(t), time.Now())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	doc.SetID("generated")
	if doc.ID() != "generated" {
		t.Errorf("expected generated, got %q", doc.ID())
	}
}

func TestMerge_PreservesIDAndCreated(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := Reconstruct("doc-1", "Old title", "old content", testAuthor(t), created)

	newAuthor := ReconstructAuthor("author-2", "Bob")
	update := Reconstruct("doc-1", "New title", "new content", newAuthor, time.Now())

	merged := existing.Merge(update)

	if merged.ID() != "doc-1" {
		t.Errorf("expected id doc-1, got %q", merged.ID())
	}
	if !merged.Created().Equal(created) {
		t.Errorf("expected original created %v, got %v", created, merged.Created())
	}
	if merged.Title() != "New title" {
		t.Errorf("expected New title, got %q", merged.Title())
	}
	if merged.Content() != "new content" {
		t.Errorf("expected new content, got %q", merged.Content())
	}
	if merged.Author().ID() != "author-2" {
		t.Errorf("expected author-2, got %q", merged.Author().ID())
	}
}
