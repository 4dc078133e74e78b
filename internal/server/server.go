package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"realty-catalog/internal/common/config"
	"realty-catalog/internal/common/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the catalog handlers into a chi router.
type Server struct {
	httpServer *http.Server
	logger     logger.Logger
}

// NewRouter builds the full route tree for the catalog API.
func NewRouter(handler *Handler, log logger.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestLogger(log), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/listings", handler.ListListings)
		r.Get("/listings/{listingID}", handler.GetListing)
		r.Get("/listings/{listingID}/similar", handler.GetSimilar)
		r.Post("/catalog/reload", handler.ReloadCatalog)
	})
	r.Get("/healthz", handler.Health)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func NewServer(cfg config.ServerConfig, handler *Handler, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      NewRouter(handler, log),
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		},
		logger: log,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting REST server", map[string]interface{}{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping REST server", nil)
	return s.httpServer.Shutdown(ctx)
}
