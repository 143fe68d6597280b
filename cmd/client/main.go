package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sticky-board/internal/adapter"
	"github.com/MKhiriev/sticky-board/internal/client"
	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/service"
	"github.com/MKhiriev/sticky-board/internal/tui"
	"github.com/MKhiriev/sticky-board/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("sticky-board-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	transport, err := adapter.NewWebsocketTransport(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create websocket transport")
	}

	infoAdapter, err := adapter.NewHTTPInfoAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create info adapter")
	}

	services := service.NewClientServices(transport, infoAdapter, cfg.App, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, transport, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(transport, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
