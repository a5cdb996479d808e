package document

import (
	"fmt"
	"time"
)

// MaxIDLength is the maximum document identifier length.
const MaxIDLength = 256

// Author identifies who wrote a document. It has no lifecycle of its own and
// is always embedded within a Document.
type Author struct {
	id   string
	name string
}

// NewAuthor validates and creates an Author.
func NewAuthor(id, name string) (Author, error) {
	if id == "" {
		return Author{}, fmt.Errorf("author ID is required")
	}
	if len(id) > MaxIDLength {
		return Author{}, fmt.Errorf("author ID too long (max %d)", MaxIDLength)
	}
	return Author{id: id, name: name}, nil
}

// ReconstructAuthor creates an Author without validation (storage hydration).
func ReconstructAuthor(id, name string) Author {
	return Author{id: id, name: name}
}

// ID returns the author identifier.
func (a Author) ID() string { return a.id }

// Name returns the author display name.
func (a Author) Name() string { return a.name }

// Document is the document aggregate (immutable value object).
// The identifier may be empty until the store assigns one at save time.
type Document struct {
	id      string
	title   string
	content string
	author  Author
	created time.Time
}

// New validates and creates a Document.
// ID is optional (empty means "assign at save time"), max 256 chars.
// Title, content, author ID and creation timestamp are required: the search
// predicates assume these fields are present, so presence is enforced here
// rather than checked per scan.
func New(id, title, content string, author Author, created time.Time) (Document, error) {
	if len(id) > MaxIDLength {
		return Document{}, fmt.Errorf("document ID too long (max %d)", MaxIDLength)
	}
	if title == "" {
		return Document{}, fmt.Errorf("title is required")
	}
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if author.ID() == "" {
		return Document{}, fmt.Errorf("author is required")
	}
	if created.IsZero() {
		return Document{}, fmt.Errorf("creation timestamp is required")
	}

	return Document{
		id:      id,
		title:   title,
		content: content,
		author:  author,
		created: created,
	}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id, title, content string, author Author, created time.Time) Document {
	return Document{id: id, title: title, content: content, author: author, created: created}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Content returns the document text content.
func (d *Document) Content() string { return d.content }

// Author returns the embedded author.
func (d *Document) Author() Author { return d.author }

// Created returns the creation timestamp.
func (d *Document) Created() time.Time { return d.created }

// SetID assigns the identifier in place (mutation). The store calls this
// exactly once, when saving a document without an identifier.
func (d *Document) SetID(id string) { d.id = id }

// Merge returns the stored state after an upsert over an existing entry:
// title, content and author are taken from the update, the identifier and
// creation timestamp are preserved from the existing entry.
func (d *Document) Merge(update Document) Document {
	return Document{
		id:      d.id,
		title:   update.title,
		content: update.content,
		author:  update.author,
		created: d.created,
	}
}
