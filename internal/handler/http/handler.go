package http

import (
	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/service"
)

type Handler struct {
	services *service.Services
	form     formSettings

	logger *logger.Logger
}

// formSettings describe how a submission is read from the request.
type formSettings struct {
	fieldKeys         []string
	fileField         string
	maxFileSize       int64
	allowedExtensions []string
	oversizeStatus    int
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		form: formSettings{
			fieldKeys:         cfg.App.Fields.Keys(),
			fileField:         cfg.App.FileField,
			maxFileSize:       cfg.Storage.Files.MaxFileSize,
			allowedExtensions: cfg.Storage.Files.AllowedExtensions,
			oversizeStatus:    cfg.Storage.Files.OversizeStatus,
		},
		logger: logger,
	}
}
