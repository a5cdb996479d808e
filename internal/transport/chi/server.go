package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docstore/internal/domain"
	domdoc "github.com/kailas-cloud/docstore/internal/domain/document"
	"github.com/kailas-cloud/docstore/internal/domain/search/request"
	"github.com/kailas-cloud/docstore/internal/metrics"
	documentuc "github.com/kailas-cloud/docstore/internal/usecase/document"
	healthuc "github.com/kailas-cloud/docstore/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docstore/internal/usecase/search"
)

type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeDocumentNotFound errorCode = "document_not_found"
	codeUnauthorized     errorCode = "unauthorized"
	codeInternalError    errorCode = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the document repository over HTTP.
type Server struct {
	documents     *documentuc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	documents *documentuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		documents: documents,
		search:    search,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, codeDocumentNotFound),
		sentinelHandler(domain.ErrNilDocument, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidDocument, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes registers all API routes on the given router.
func (s *Server) Routes(r chirouter.Router) {
	r.Route("/api/v1", func(r chirouter.Router) {
		r.Post("/documents", s.SaveDocument)
		r.Get("/documents", s.ListDocuments)
		r.Put("/documents/{id}", s.UpsertDocument)
		r.Get("/documents/{id}", s.GetDocument)
		r.Post("/search", s.SearchDocuments)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SaveDocument handles POST /api/v1/documents. The identifier is optional;
// a document without one gets a generated identifier.
func (s *Server) SaveDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.saveDocument(w, r, req.ID, req)
}

// UpsertDocument handles PUT /api/v1/documents/{id}.
func (s *Server) UpsertDocument(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.saveDocument(w, r, chirouter.URLParam(r, "id"), req)
}

func (s *Server) saveDocument(w http.ResponseWriter, r *http.Request, id string, req documentRequest) {
	doc, err := documentFromRequest(id, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	created := doc.ID() == ""

	stored, err := s.documents.Save(r.Context(), &doc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if n, countErr := s.documents.Count(r.Context()); countErr == nil {
		metrics.DocumentsStored.Set(float64(n))
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/api/v1/documents/"+stored.ID())
	}

	writeJSON(w, status, documentToResponse(stored))
}

// GetDocument handles GET /api/v1/documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	doc, err := s.documents.FindByID(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, documentToResponse(doc))
}

// ListDocuments handles GET /api/v1/documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]documentResponse, len(docs))
	for i, d := range docs {
		items[i] = documentToResponse(d)
	}

	writeJSON(w, http.StatusOK, documentListResponse{
		Items: items,
		Total: len(items),
	})
}

// SearchDocuments handles POST /api/v1/search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	searchReq, err := searchRequestFromPayload(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	docs, err := s.search.Search(r.Context(), &searchReq)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.SearchesTotal.Inc()
	metrics.SearchResultCount.Observe(float64(len(docs)))

	items := make([]documentResponse, len(docs))
	for i, d := range docs {
		items[i] = documentToResponse(d)
	}

	writeJSON(w, http.StatusOK, documentListResponse{
		Items: items,
		Total: len(items),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checksToResponse(report.Checks),
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrDocumentNotFound,
		domain.ErrNilDocument,
		domain.ErrInvalidDocument,
		domain.ErrInvalidRequest,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// --- Wire types and converters ---

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type authorPayload struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type documentRequest struct {
	ID      string        `json:"id,omitempty"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Author  authorPayload `json:"author"`
	Created time.Time     `json:"created"`
}

type documentResponse struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Author  authorPayload `json:"author"`
	Created time.Time     `json:"created"`
}

type documentListResponse struct {
	Items []documentResponse `json:"items"`
	Total int                `json:"total"`
}

// searchRequest uses pointer-valued lists so an absent criterion (inactive)
// stays distinguishable from a present-but-empty one.
type searchRequest struct {
	TitlePrefixes    *[]string  `json:"title_prefixes,omitempty"`
	ContainsContents *[]string  `json:"contains_contents,omitempty"`
	AuthorIDs        *[]string  `json:"author_ids,omitempty"`
	CreatedFrom      *time.Time `json:"created_from,omitempty"`
	CreatedTo        *time.Time `json:"created_to,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func documentFromRequest(id string, req documentRequest) (domdoc.Document, error) {
	author, err := domdoc.NewAuthor(req.Author.ID, req.Author.Name)
	if err != nil {
		return domdoc.Document{}, err
	}
	return domdoc.New(id, req.Title, req.Content, author, req.Created)
}

func documentToResponse(doc domdoc.Document) documentResponse {
	return documentResponse{
		ID:      doc.ID(),
		Title:   doc.Title(),
		Content: doc.Content(),
		Author: authorPayload{
			ID:   doc.Author().ID(),
			Name: doc.Author().Name(),
		},
		Created: doc.Created(),
	}
}

func searchRequestFromPayload(req searchRequest) (request.Request, error) {
	return request.New(
		derefValues(req.TitlePrefixes),
		derefValues(req.ContainsContents),
		derefValues(req.AuthorIDs),
		req.CreatedFrom,
		req.CreatedTo,
	)
}

// derefValues maps an absent list to nil and a present one to a non-nil
// slice, preserving the active/inactive distinction of the query model.
func derefValues(p *[]string) []string {
	if p == nil {
		return nil
	}
	if *p == nil {
		return []string{}
	}
	return *p
}

func checksToResponse(checks map[string]healthuc.CheckResult) map[string]string {
	out := make(map[string]string, len(checks))
	for k, v := range checks {
		out[k] = string(v)
	}
	return out
}
