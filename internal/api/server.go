package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sage-agent/sage/internal/pipeline"
	"github.com/sage-agent/sage/internal/session"
)

// Answerer is the pipeline capability the HTTP layer calls per turn.
type Answerer interface {
	Answer(ctx context.Context, rawQuestion, lastEntity string) pipeline.Result
}

type Server struct {
	router   *chi.Mux
	port     int
	answerer Answerer
	sessions *session.Store
	logger   *slog.Logger
}

func NewServer(port int, answerer Answerer, sessions *session.Store, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     port,
		answerer: answerer,
		sessions: sessions,
		logger:   logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/sage/status", s.status)
	router.Post("/api/v1/ask", s.ask)
	router.Get("/api/v1/history", s.history)
	router.Post("/api/v1/reset", s.reset)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"agent":  "sage",
		"status": "ready",
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
