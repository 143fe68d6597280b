package main

import (
	"fmt"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/handler"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/server"
	"github.com/MKhiriev/sticky-board/internal/service"
	"github.com/MKhiriev/sticky-board/internal/store"
	"github.com/MKhiriev/sticky-board/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sticky-board-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	w := workers.NewWorkers(services.SessionService, cfg.Workers, log)

	srv, err := server.NewServer(handlers, w, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
