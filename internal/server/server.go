// Package server exposes the bucket operations as a JSON HTTP API.
//
// The API is a thin presentation layer: handlers decode requests, call
// the service, and render results. All balance and settlement numbers
// pass through untouched; no currency formatting or localization
// happens here.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bucketsplit/internal/middleware"
	"bucketsplit/internal/service"
)

// Server routes HTTP requests to the bucket service.
type Server struct {
	svc *service.BucketService
	mux *http.ServeMux
}

// New creates a Server with all routes registered.
func New(svc *service.BucketService) *Server {
	s := &Server{svc: svc, mux: http.NewServeMux()}

	s.mux.HandleFunc("POST /api/buckets", s.handleCreateBucket)
	s.mux.HandleFunc("GET /api/buckets", s.handleListBuckets)
	s.mux.HandleFunc("GET /api/buckets/{id}", s.handleGetBucket)
	s.mux.HandleFunc("PATCH /api/buckets/{id}", s.handleUpdateBucket)
	s.mux.HandleFunc("DELETE /api/buckets/{id}", s.handleDeleteBucket)

	s.mux.HandleFunc("POST /api/buckets/{id}/participants", s.handleAddParticipant)
	s.mux.HandleFunc("DELETE /api/buckets/{id}/participants/{uid}", s.handleRemoveParticipant)

	s.mux.HandleFunc("POST /api/buckets/{id}/expenses", s.handleRecordExpense)
	s.mux.HandleFunc("GET /api/buckets/{id}/expenses", s.handleListExpenses)
	s.mux.HandleFunc("PUT /api/expenses/{id}", s.handleUpdateExpense)
	s.mux.HandleFunc("DELETE /api/expenses/{id}", s.handleDeleteExpense)

	s.mux.HandleFunc("POST /api/buckets/{id}/credits", s.handleRecordCredit)
	s.mux.HandleFunc("GET /api/buckets/{id}/credits", s.handleListCredits)
	s.mux.HandleFunc("PUT /api/credits/{id}", s.handleUpdateCredit)
	s.mux.HandleFunc("DELETE /api/credits/{id}", s.handleDeleteCredit)

	s.mux.HandleFunc("GET /api/buckets/{id}/summary", s.handleSummary)

	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return middleware.Logging(middleware.Metrics(middleware.CORS(s.mux)))
}
