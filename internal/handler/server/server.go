package server

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bagdasarian/kanban-board/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	log     *log.Logger
}

func NewServer(h *handler.Handler, addr string, logger *log.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		log:     logger,
		server: &http.Server{
			Addr:              addr,
			Handler:           handler.RequestLogger(logger, mux),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	s.log.WithField("addr", s.server.Addr).Info("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
