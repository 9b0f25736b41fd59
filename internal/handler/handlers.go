package handler

import (
	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/handler/http"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/service"
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
