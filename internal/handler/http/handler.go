package http

import (
	"time"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *httpMetrics

	uploadsDir     string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        newHTTPMetrics(),
		uploadsDir:     cfg.Storage.Files.UploadsDir,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
