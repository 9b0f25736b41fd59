package main

import (
	"fmt"

	"github.com/MKhiriev/go-form-relay/internal/adapter"
	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/handler"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/server"
	"github.com/MKhiriev/go-form-relay/internal/service"
	"github.com/MKhiriev/go-form-relay/internal/store"
	"github.com/MKhiriev/go-form-relay/internal/workers"
	"github.com/MKhiriev/go-form-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-form-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	bot, err := adapter.NewTelegramBotAdapter(cfg.Bot, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot adapter")
	}

	services, err := service.NewServices(storages, bot, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
