package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/service"
	"github.com/MKhiriev/go-form-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig mirrors the defaults of a "selfie" deployment.
func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()
	return config.StructuredConfig{
		App: config.App{
			Fields:         models.DefaultFieldSet,
			RequiredFields: []string{"name", "phone"},
			FileField:      "selfie",
			Version:        "1.2.3",
		},
		Bot: config.Bot{
			Token:          "42:test-token",
			ChatID:         "-1001",
			ParseMode:      models.ParseModeHTML,
			RequestTimeout: 2 * time.Second,
		},
		Storage: config.Storage{Files: config.Files{
			UploadDir:         t.TempDir(),
			MaxFileSize:       5 << 20,
			AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
			OversizeStatus:    400,
		}},
	}
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, testConfig(t), log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_FormSettingsFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.FileField = "passport"
	cfg.Storage.Files.OversizeStatus = 413

	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, []string{"name", "email", "phone", "city", "message"}, h.form.fieldKeys)
	assert.Equal(t, "passport", h.form.fileField)
	assert.Equal(t, int64(5<<20), h.form.maxFileSize)
	assert.Equal(t, 413, h.form.oversizeStatus)
}

func TestInit_RegistersRoutes(t *testing.T) {
	h := NewHandler(&service.Services{}, testConfig(t), logger.Nop())
	router := h.Init()

	patterns := make(map[string][]string)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			patterns[route.Pattern] = append(patterns[route.Pattern], method)
		}
	}

	assert.ElementsMatch(t, []string{"GET"}, patterns["/"])
	assert.ElementsMatch(t, []string{"GET", "POST"}, patterns["/api/data"])
	assert.ElementsMatch(t, []string{"GET"}, patterns["/api/version/"])
}
