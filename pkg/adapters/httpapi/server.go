// Package httpapi serves the planform engine over a small JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/planform/planform"
	"github.com/planform/planform/internal/encoder/dxf"
	"github.com/planform/planform/pkg/analysis"
	"github.com/planform/planform/pkg/convert"
	"github.com/planform/planform/pkg/domain"
)

// Server holds the engine and the request metrics.
type Server struct {
	engine *planform.Engine

	requests    *prometheus.CounterVec
	invalidDocs prometheus.Counter
}

// ValidateResponse is the body of POST /validate.
type ValidateResponse struct {
	Valid       bool               `json:"valid"`
	Diagnostics domain.Diagnostics `json:"diagnostics"`
}

// AnalyzeResponse is the body of POST /analyze.
type AnalyzeResponse struct {
	Report      *analysis.FloorReport `json:"report"`
	Diagnostics domain.Diagnostics    `json:"diagnostics"`
}

// NewHandler creates the HTTP handler for the engine. Metrics are registered
// on a fresh registry per handler so tests can build handlers independently.
func NewHandler(engine *planform.Engine) http.Handler {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	s := &Server{
		engine: engine,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "planform_http_requests_total",
			Help: "HTTP requests served, by route and status class.",
		}, []string{"route", "status"}),
		invalidDocs: factory.NewCounter(prometheus.CounterOpts{
			Name: "planform_invalid_documents_total",
			Help: "Documents that failed validation with at least one error.",
		}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/validate", s.instrument("validate", s.Validate))
	r.Post("/generate", s.instrument("generate", s.Generate))
	r.Post("/analyze", s.instrument("analyze", s.Analyze))
	r.Post("/convert", s.instrument("convert", s.Convert))
	r.Get("/healthz", s.Health)
	r.Get("/info", s.Info)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// instrument wraps a handler with a per-route request counter. The status
// label collapses to the class (2xx, 4xx, 5xx) to keep cardinality low.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.requests.WithLabelValues(route, fmt.Sprintf("%dxx", status/100)).Inc()
	}
}

// Validate handles the POST /validate request. The body is the raw design
// document in JSON or YAML.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	diags, err := s.engine.Validate(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("Validation error: %v", err), http.StatusBadRequest)
		slog.Warn("Validate: Unparsable document", "error", err)
		return
	}
	if diags == nil {
		diags = domain.Diagnostics{}
	}
	if diags.HasErrors() {
		s.invalidDocs.Inc()
	}

	writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:       !diags.HasErrors(),
		Diagnostics: diags,
	})
}

// Generate handles the POST /generate request and responds with the DXF
// document. The floor is selected with the ?level= query parameter.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	level, err := levelParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, diags, err := s.engine.Generate(raw, level)
	if err != nil {
		if diags.HasErrors() {
			s.invalidDocs.Inc()
			writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{
				Valid:       false,
				Diagnostics: diags,
			})
			return
		}
		http.Error(w, fmt.Sprintf("Generate error: %v", err), http.StatusBadRequest)
		slog.Warn("Generate failed", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/dxf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", doc.Name+".dxf"))
	if err := dxf.Encode(doc, w); err != nil {
		slog.Error("Generate response encode failed", "error", err)
	}
}

// Analyze handles the POST /analyze request.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	level, err := levelParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, diags, err := s.engine.Analyze(raw, level)
	if err != nil {
		if diags.HasErrors() {
			s.invalidDocs.Inc()
			writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{
				Valid:       false,
				Diagnostics: diags,
			})
			return
		}
		http.Error(w, fmt.Sprintf("Analyze error: %v", err), http.StatusBadRequest)
		slog.Warn("Analyze failed", "error", err)
		return
	}
	if diags == nil {
		diags = domain.Diagnostics{}
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{Report: report, Diagnostics: diags})
}

// Convert handles the POST /convert request. The target format comes from
// the ?to= query parameter.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	format, err := convert.ParseFormat(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := convert.Convert(raw, format)
	if err != nil {
		http.Error(w, fmt.Sprintf("Convert error: %v", err), http.StatusBadRequest)
		return
	}

	if format == convert.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/yaml")
	}
	w.Write(out)
}

// Health handles the GET /healthz request.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Info handles the GET /info request.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "planform-http",
		"version": strings.TrimSpace(planform.Version),
	})
}

func levelParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("level")
	if raw == "" {
		return 0, nil
	}
	level, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid level %q: must be an integer", raw)
	}
	return level, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Response encode failed", "error", err)
	}
}
