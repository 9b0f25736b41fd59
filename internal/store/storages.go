package store

import (
	"fmt"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
)

type Storages struct {
	UploadStorage UploadStorage
}

// NewStorages creates all storages and makes sure the upload directory exists.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	uploads, err := NewUploadFileStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating upload storage: %w", err)
	}

	return &Storages{
		UploadStorage: uploads,
	}, nil
}
