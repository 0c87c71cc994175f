// Package chi exposes the engine over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/divdex/divdex/internal/domain"
	domdoc "github.com/divdex/divdex/internal/domain/document"
	"github.com/divdex/divdex/internal/domain/query/direction"
	"github.com/divdex/divdex/internal/domain/query/request"
	"github.com/divdex/divdex/internal/domain/query/result"
	"github.com/divdex/divdex/internal/usecase/health"
)

// DocumentService is the ingest-side contract the server consumes.
type DocumentService interface {
	Ingest(ctx context.Context, docs []domdoc.Document) (int, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	Delete(ctx context.Context, id string) error
}

// QueryService runs diversity-bounded range queries.
type QueryService interface {
	Query(ctx context.Context, req *request.Request) (result.Hits, error)
}

// HealthService reports component health.
type HealthService interface {
	Check(ctx context.Context) health.Report
}

// Server holds the HTTP handlers.
type Server struct {
	docs   DocumentService
	query  QueryService
	health HealthService
	logger *zap.Logger
}

// NewServer creates the HTTP server facade.
func NewServer(docs DocumentService, query QueryService, healthSvc HealthService, logger *zap.Logger) *Server {
	return &Server{docs: docs, query: query, health: healthSvc, logger: logger}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Put("/documents", s.handleIngest)
		r.Get("/documents/{id}", s.handleGetDocument)
		r.Delete("/documents/{id}", s.handleDeleteDocument)
		r.Post("/query", s.handleQuery)
	})
}

type documentPayload struct {
	ID     string            `json:"id,omitempty"`
	Fields map[string]string `json:"fields"`
}

type ingestRequest struct {
	Documents []documentPayload `json:"documents"`
}

type ingestResponse struct {
	Ingested int `json:"ingested"`
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return
	}
	if len(req.Documents) == 0 {
		writeError(w, http.StatusBadRequest, codeBadRequest, "documents is required")
		return
	}

	docs := make([]domdoc.Document, 0, len(req.Documents))
	for _, p := range req.Documents {
		doc, err := domdoc.New(p.ID, p.Fields)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
		docs = append(docs, doc)
	}

	n, err := s.docs.Ingest(r.Context(), docs)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ingestResponse{Ingested: n})
}

type documentResponse struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, err := s.docs.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentResponse{ID: doc.ID(), Fields: doc.Fields()})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.docs.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type diversityPayload struct {
	Attribute   string `json:"attribute"`
	MaxPerGroup int    `json:"max_per_group,omitempty"`
	MaxGroups   int    `json:"max_groups,omitempty"`
	Strict      bool   `json:"strict,omitempty"`
}

type queryPayload struct {
	Attribute string            `json:"attribute"`
	From      string            `json:"from,omitempty"`
	To        string            `json:"to,omitempty"`
	Direction string            `json:"direction,omitempty"`
	MaxHits   int               `json:"max_hits,omitempty"`
	Diversity *diversityPayload `json:"diversity,omitempty"`
}

type hitPayload struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Group string `json:"group,omitempty"`
}

type queryResponse struct {
	Hits      []hitPayload `json:"hits"`
	Total     uint32       `json:"total"`
	Saturated bool         `json:"saturated"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var p queryPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return
	}

	var div *request.Diversity
	if p.Diversity != nil {
		d, err := request.NewDiversity(
			p.Diversity.Attribute, p.Diversity.MaxPerGroup, p.Diversity.MaxGroups, p.Diversity.Strict,
		)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
		div = &d
	}

	req, err := request.New(p.Attribute, p.From, p.To, direction.Direction(p.Direction), p.MaxHits, div)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	hits, err := s.query.Query(r.Context(), &req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	resp := queryResponse{
		Hits:      make([]hitPayload, 0, len(hits.All())),
		Total:     hits.Total(),
		Saturated: hits.Saturated(),
	}
	for _, h := range hits.All() {
		resp.Hits = append(resp.Hits, hitPayload{ID: h.ID(), Value: h.Value(), Group: h.Group()})
	}
	writeJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status      string            `json:"status"`
	Checks      map[string]string `json:"checks"`
	IndexReady  bool              `json:"index_ready"`
	IndexedDocs int               `json:"indexed_docs"`
	RebuiltAt   string            `json:"index_rebuilt_at,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	status := http.StatusOK
	if report.Status != health.Healthy {
		status = http.StatusServiceUnavailable
	}
	resp := healthResponse{
		Status:      string(report.Status),
		Checks:      checks,
		IndexReady:  report.IndexReady,
		IndexedDocs: report.IndexedDocs,
	}
	if !report.RebuiltAt.IsZero() {
		resp.RebuiltAt = report.RebuiltAt.UTC().Format(time.RFC3339)
	}
	writeJSON(w, status, resp)
}

// writeServiceError maps domain errors to HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound), errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "document not found")
	case errors.Is(err, domain.ErrUnknownAttribute),
		errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrBatchTooLarge):
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	case errors.Is(err, domain.ErrIndexNotReady):
		writeError(w, http.StatusServiceUnavailable, codeUnavailable, "index not ready")
	default:
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
	}
}
