// Package server exposes the result-access API as a JSON HTTP façade.
// The teacher's transport layer is gRPC + grpc-gateway with
// protoc-generated stubs, which cannot be regenerated in this
// environment; this package instead follows
// sarat-asymmetrica-genomevedic/backend's plain gorilla/mux JSON API
// pattern, serving the same operations over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/vedastra/jyotisha/api"
	"github.com/vedastra/jyotisha/compatibility"
	"github.com/vedastra/jyotisha/observability"
)

// Server wires the chart result-access API onto HTTP handlers.
type Server struct {
	chart    *api.Service
	observer observability.ObserverInterface
}

// New creates a Server around an already-constructed chart service.
func New(chart *api.Service, observer observability.ObserverInterface) *Server {
	return &Server{chart: chart, observer: observer}
}

// RegisterRoutes registers every HTTP route on router.
func (s *Server) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/api/v1/info", s.handleInfo).Methods("GET")
	router.HandleFunc("/api/v1/panchangam", s.handlePanchangam).Methods("POST")
	router.HandleFunc("/api/v1/transits", s.handleTransits).Methods("POST")
	router.HandleFunc("/api/v1/compatibility", s.handleCompatibility).Methods("POST")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "jyotisha chart API",
		"version": api.CurrentVersion.String(),
		"endpoints": map[string]string{
			"panchangam":    "POST /api/v1/panchangam",
			"compatibility": "POST /api/v1/compatibility",
		},
	})
}

// handlePanchangam assembles a full sidereal chart for the requested
// moment and place -- bodies, houses, angles, nakshatra/KP/varga per body,
// and the day's panchanga snapshot -- and returns it as one JSON document.
func (s *Server) handlePanchangam(w http.ResponseWriter, r *http.Request) {
	var req api.ChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	data, err := s.chart.GetChart(ctx, req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "chart calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// handleTransits runs a Gochara (transit) reading: the natal chart fixes
// the Moon sign and ashtakavarga positions, the moment chart supplies
// each transiting planet's current sign.
func (s *Server) handleTransits(w http.ResponseWriter, r *http.Request) {
	var req api.TransitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	data, err := s.chart.GetTransits(ctx, req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "transit calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// compatibilityRequest is the wire shape for a two-chart compatibility
// request; it mirrors compatibility.Partner field-for-field so the HTTP
// boundary needs no separate DTO maintenance burden beyond JSON tags.
type compatibilityRequest struct {
	Boy  compatibility.Partner `json:"boy"`
	Girl compatibility.Partner `json:"girl"`
}

func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	var req compatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	report, err := compatibility.Analyze(req.Boy, req.Girl)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "compatibility analysis failed", err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	writeJSON(w, status, map[string]string{
		"error":   message,
		"details": err.Error(),
	})
}

// NewHTTPServer builds a ready-to-run *http.Server with routes registered
// and the teacher's conservative timeout defaults.
func NewHTTPServer(s *Server, port int) *http.Server {
	router := mux.NewRouter()
	s.RegisterRoutes(router)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
