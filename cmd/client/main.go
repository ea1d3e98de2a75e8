package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/perf-dashboard/internal/adapter"
	"github.com/MKhiriev/perf-dashboard/internal/client"
	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewCLILogger("dashctl")
	log.Debug().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()).Msg("dashctl")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	dashboardAdapter, err := adapter.NewHTTPDashboardAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create dashboard adapter")
	}

	app, err := client.NewApp(dashboardAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
