package docstore

import (
	"context"

	"go.uber.org/zap"

	documentrepo "github.com/kailas-cloud/docstore/internal/repository/document"
	documentuc "github.com/kailas-cloud/docstore/internal/usecase/document"
	searchuc "github.com/kailas-cloud/docstore/internal/usecase/search"
)

// Client is the embeddable document repository. It owns an in-memory store
// scoped to its own lifetime; two clients never share documents. The client
// is safe for concurrent use.
type Client struct {
	docSvc    *documentuc.Service
	searchSvc *searchuc.Service
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for debug-level operation logging.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// New creates a Client with an empty store.
func New(opts ...Option) *Client {
	cfg := &clientConfig{logger: zap.NewNop()}
	for _, o := range opts {
		o(cfg)
	}

	repo := documentrepo.New()

	return &Client{
		docSvc:    documentuc.New(repo),
		searchSvc: searchuc.New(repo),
		logger:    cfg.logger,
	}
}

// Save upserts a document. A nil document is rejected with ErrNilDocument;
// a document with an empty ID gets a generated one. On an existing ID the
// stored title, content and author are replaced while the stored identifier
// and creation timestamp are preserved. Returns the stored (post-merge)
// document.
func (c *Client) Save(ctx context.Context, doc *Document) (Document, error) {
	if doc == nil {
		return Document{}, ErrNilDocument
	}

	domainDoc, err := documentToDomain(doc)
	if err != nil {
		return Document{}, err
	}

	stored, err := c.docSvc.Save(ctx, &domainDoc)
	if err != nil {
		return Document{}, err
	}

	c.logger.Debug("document saved", zap.String("id", stored.ID()))

	return documentFromDomain(stored), nil
}

// FindByID returns the document stored under the exact identifier, or
// ErrNotFound. No partial or case-insensitive matching is performed.
func (c *Client) FindByID(ctx context.Context, id string) (Document, error) {
	doc, err := c.docSvc.FindByID(ctx, id)
	if err != nil {
		return Document{}, err
	}
	return documentFromDomain(doc), nil
}

// Search returns every document matching at least one active criterion of
// the request, deduplicated by identifier, in unspecified order. The result
// is never nil; no matches and an empty request both yield an empty slice.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Document, error) {
	domainReq, err := searchRequestToDomain(req)
	if err != nil {
		return nil, err
	}

	docs, err := c.searchSvc.Search(ctx, &domainReq)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("search executed", zap.Int("matches", len(docs)))

	results := make([]Document, len(docs))
	for i, d := range docs {
		results[i] = documentFromDomain(d)
	}
	return results, nil
}

// List returns every stored document, in unspecified order.
func (c *Client) List(ctx context.Context) ([]Document, error) {
	docs, err := c.docSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Document, len(docs))
	for i, d := range docs {
		results[i] = documentFromDomain(d)
	}
	return results, nil
}

// Count returns the number of stored documents.
func (c *Client) Count(ctx context.Context) (int, error) {
	return c.docSvc.Count(ctx)
}
