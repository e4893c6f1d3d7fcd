// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fread-app/fread-server-go/internal/constants"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewRouter wires the API routes. Everything under /api/v1 except the
// spell check requires an identified caller.
func NewRouter(h *Handler, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(recoverMiddleware(logger))
	r.Use(loggingMiddleware(logger))

	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyses/spellcheck", h.SpellCheck).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(identityMiddleware)
	authed.HandleFunc("/analyses/fread", h.SubmitFread).Methods(http.MethodPost)
	authed.HandleFunc("/analyses", h.ListAnalyses).Methods(http.MethodGet)
	authed.HandleFunc("/analyses/{id:[0-9]+}", h.GetAnalysis).Methods(http.MethodGet)

	return r
}

func New(addr string, router *mux.Router, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  constants.HTTPConfig.ReadTimeout,
			WriteTimeout: constants.HTTPConfig.WriteTimeout,
			IdleTimeout:  constants.HTTPConfig.IdleTimeout,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}
