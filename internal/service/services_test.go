package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/mock"
	"github.com/MKhiriev/go-form-relay/internal/service"
	"github.com/MKhiriev/go-form-relay/internal/store"
	"github.com/MKhiriev/go-form-relay/internal/validators"
	"github.com/MKhiriev/go-form-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()
	return config.StructuredConfig{
		App: config.App{
			Fields:         models.DefaultFieldSet,
			RequiredFields: []string{"name", "phone"},
			FileField:      "selfie",
			Version:        "1.2.3",
		},
		Bot: config.Bot{ParseMode: models.ParseModeMarkdownV2},
		Storage: config.Storage{Files: config.Files{
			UploadDir:         t.TempDir(),
			MaxFileSize:       5 << 20,
			AllowedExtensions: []string{".png"},
			OversizeStatus:    400,
		}},
	}
}

func TestNewServices_WiresValidationAndRelay(t *testing.T) {
	cfg := testConfig(t)
	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	bot := mock.NewMockBotAdapter(gomock.NewController(t))
	services, err := service.NewServices(storages, bot, cfg, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = services.RelayService.Relay(context.Background(), models.Submission{
		Fields: map[string]string{"name": "Ada"},
	})
	assert.ErrorIs(t, err, validators.ErrMissingRequiredFields)

	bot.EXPECT().SendMessage(gomock.Any(), gomock.Any(), models.ParseModeMarkdownV2).Return(nil)
	result, err := services.RelayService.Relay(context.Background(), textSubmission())
	require.NoError(t, err)
	assert.True(t, result.TextSent)
}

func TestNewServices_RequiresVersion(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.Version = ""

	_, err := service.NewServices(&store.Storages{}, nil, cfg, logger.Nop())

	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}
