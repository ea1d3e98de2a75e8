package handler

import (
	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/handler/http"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
