package http

import (
	"change-request-service/internal/infrastructure/config"
	"change-request-service/internal/infrastructure/logger"
	"context"
	"log/slog"
	"net/http"
	"time"
)

type Server struct {
	address  string
	log      *logger.Logger
	router   *Router
	server   *http.Server
	services Services
}

func NewServer(address string, log *logger.Logger, services Services) *Server {
	return &Server{
		address:  address,
		log:      log,
		services: services,
	}
}

// Handler builds the routed handler without starting a listener.
func (s *Server) Handler(cfg *config.Config) http.Handler {
	s.router = NewRouter(s.log, s.services)
	s.router.Setup(cfg)
	return s.router.GetRouter()
}

func (s *Server) Run(cfg *config.Config) error {
	s.server = &http.Server{
		Addr:         s.address,
		Handler:      s.Handler(cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.log.Info("Starting server", slog.String("address", s.address))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
