package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/handler"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
)

var stopSignals = []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), stopSignals...)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is cancelled, then shuts the listener down and waits
// for in-flight requests.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	if err := s.httpServer.listen(); err != nil {
		return err
	}

	served := make(chan struct{})
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		defer close(served)
		s.httpServer.RunServer()
	}()

	<-ctx.Done()
	s.Shutdown()
	<-served

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
