package service

import (
	"fmt"

	"github.com/MKhiriev/go-form-relay/internal/adapter"
	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/store"
	"github.com/MKhiriev/go-form-relay/internal/validators"
)

type Services struct {
	RelayService   RelayService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, bot adapter.BotAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	renderer := NewMessageRenderer(cfg.App.Fields, cfg.Bot.ParseMode)
	relayService := NewRelayService(storages.UploadStorage, bot, renderer, logger)

	validation := NewRelayValidationService(validators.SubmissionRules{
		RequiredFields:    cfg.App.RequiredFields,
		FileRequired:      cfg.App.FileRequired,
		MaxFileSize:       cfg.Storage.Files.MaxFileSize,
		AllowedExtensions: cfg.Storage.Files.AllowedExtensions,
	})

	return &Services{
		RelayService:   validation.Wrap(relayService),
		AppInfoService: appInfoService,
	}, nil
}
