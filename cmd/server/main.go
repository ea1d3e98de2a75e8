package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/handler"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/server"
	"github.com/MKhiriev/perf-dashboard/internal/service"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build: %s\n", buildInfo)

	log := logger.NewLogger("dashboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// a version injected at build time wins over the default one
	if buildInfo.BuildVersion() != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
