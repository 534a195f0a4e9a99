package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/plangen/internal/logging"
	"github.com/aretw0/plangen/pkg/domain"
	"github.com/aretw0/plangen/pkg/encoding"
)

// Generator defines the subset of the plangen facade the server needs.
type Generator interface {
	GenerateMode(ctx context.Context, name string, size int, mode encoding.Mode) (*encoding.Encoding, error)
	Domains() []string
}

// Server exposes encodings over HTTP.
type Server struct {
	Generator Generator
	// MaxSize rejects larger sizes before any work is done; zero disables it.
	MaxSize  int
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewHandler creates a new HTTP handler for the generator.
// A nil gatherer disables /metrics.
func NewHandler(gen Generator, maxSize int, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	server := &Server{Generator: gen, MaxSize: maxSize, Gatherer: gatherer, Logger: logger}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/v1/domains", server.ListDomains)
	r.Get("/v1/{domain}/{size}", server.Generate)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Generate handles GET /v1/{domain}/{size}?mode=&format=.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "domain")
	size, err := strconv.Atoi(chi.URLParam(r, "size"))
	if err != nil {
		http.Error(w, fmt.Sprintf("size must be an integer: %q", chi.URLParam(r, "size")), http.StatusBadRequest)
		return
	}

	if err := domain.CheckSizeLimit(size, s.MaxSize); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	q := r.URL.Query()
	mode, err := encoding.ParseMode(q.Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	format, err := encoding.ParseFormat(q.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	enc, err := s.Generator.GenerateMode(r.Context(), name, size, mode)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrUnknownDomain):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrInvalidSize):
			status = http.StatusUnprocessableEntity
		}
		if status == http.StatusInternalServerError {
			s.Logger.Error("Generate failed", "domain", name, "size", size, "error", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", contentType(format))
	if err := encoding.Write(w, enc, format); err != nil {
		s.Logger.Error("Failed to write encoding", "error", err)
	}
}

// ListDomains handles GET /v1/domains.
func (s *Server) ListDomains(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"domains": s.Generator.Domains()})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func contentType(f encoding.Format) string {
	switch f {
	case encoding.FormatJSON:
		return "application/json"
	case encoding.FormatYAML:
		return "application/yaml"
	}
	return "text/plain; charset=utf-8"
}
