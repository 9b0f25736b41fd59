package handler

import (
	"testing"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/service"
	"github.com/MKhiriev/go-form-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(address string) config.StructuredConfig {
	return config.StructuredConfig{
		App:    config.App{Fields: models.DefaultFieldSet, FileField: "selfie"},
		Server: config.Server{HTTPAddress: address},
	}
}

// TestNewHandlers_HTTP verifies that the HTTP handler is initialised when an
// address is configured.
func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, testConfig(":3000"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies the startup failure without an address.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, testConfig(""), logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
