// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs cost logic.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/toyiyo/nimble-pnl-sub007/adapters/punches"
	"github.com/toyiyo/nimble-pnl-sub007/core/costing"
	"github.com/toyiyo/nimble-pnl-sub007/core/labor"
	"github.com/toyiyo/nimble-pnl-sub007/core/types"
	"github.com/toyiyo/nimble-pnl-sub007/core/units"
	"github.com/toyiyo/nimble-pnl-sub007/internal/errors"
	"github.com/toyiyo/nimble-pnl-sub007/internal/logging"
)

// Server is the API server
type Server struct {
	mux        *http.ServeMux
	version    string
	aggregator *costing.Aggregator
	allocator  *labor.Allocator
}

// NewServer creates a server over the default unit catalog
func NewServer(version string) *Server {
	return NewServerWithCatalog(version, units.NewCatalog())
}

// NewServerWithCatalog creates a server over a prepared catalog (e.g.
// one extended by rule files).
func NewServerWithCatalog(version string, catalog *units.Catalog) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		version:    version,
		aggregator: costing.NewAggregator(catalog),
		allocator:  labor.NewAllocator(punches.NewPairer()),
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /recipe-cost", s.handleRecipeCost)
	s.mux.HandleFunc("POST /labor-cost/scheduled", s.handleScheduledLabor)
	s.mux.HandleFunc("POST /labor-cost/actual", s.handleActualLabor)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleRecipeCost handles POST /recipe-cost
func (s *Server) handleRecipeCost(w http.ResponseWriter, r *http.Request) {
	var req RecipeCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Parsing("invalid recipe cost request", err))
		return
	}
	requestID := uuid.NewString()
	logging.Info("recipe cost request",
		zap.String("request_id", requestID),
		zap.Int("ingredients", len(req.Ingredients)))

	result := s.aggregator.Aggregate(req.Ingredients)
	writeJSON(w, http.StatusOK, RecipeCostResponse{RequestID: requestID, Result: result})
}

// handleScheduledLabor handles POST /labor-cost/scheduled
func (s *Server) handleScheduledLabor(w http.ResponseWriter, r *http.Request) {
	var req ScheduledLaborRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Parsing("invalid scheduled labor request", err))
		return
	}
	if req.End.Before(req.Start) {
		writeError(w, http.StatusBadRequest, errors.Input("period end precedes period start"))
		return
	}
	requestID := uuid.NewString()
	logging.Info("scheduled labor request",
		zap.String("request_id", requestID),
		zap.Int("shifts", len(req.Shifts)),
		zap.Int("employees", len(req.Employees)))

	result := s.allocator.ScheduledCost(req.Shifts, req.Employees, req.Start, req.End)
	writeJSON(w, http.StatusOK, LaborCostResponse{RequestID: requestID, Result: result})
}

// handleActualLabor handles POST /labor-cost/actual
func (s *Server) handleActualLabor(w http.ResponseWriter, r *http.Request) {
	var req ActualLaborRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Parsing("invalid actual labor request", err))
		return
	}
	if req.End.Before(req.Start) {
		writeError(w, http.StatusBadRequest, errors.Input("period end precedes period start"))
		return
	}
	requestID := uuid.NewString()
	logging.Info("actual labor request",
		zap.String("request_id", requestID),
		zap.Int("punches", len(req.Punches)),
		zap.Int("periods", len(req.Periods)),
		zap.Int("employees", len(req.Employees)))

	var result types.LaborCostResult
	if len(req.Periods) > 0 {
		result = s.allocator.ActualCostFromPeriods(req.Employees, req.Periods, req.Start, req.End)
	} else {
		result = s.allocator.ActualCost(req.Employees, req.Punches, req.Start, req.End)
	}
	writeJSON(w, http.StatusOK, LaborCostResponse{RequestID: requestID, Result: result})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	if e, ok := err.(*errors.Error); ok {
		resp.Type = string(e.Type)
	}
	writeJSON(w, status, resp)
}
