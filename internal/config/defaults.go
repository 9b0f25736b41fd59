package config

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-form-relay/models"
)

const (
	defaultHTTPAddress    = ":3000"
	defaultBotAPIURL      = "https://api.telegram.org"
	defaultBotTimeout     = 10 * time.Second
	defaultServerTimeout  = 30 * time.Second
	defaultUploadDir      = "./uploads"
	defaultMaxFileSize    = 5 << 20
	defaultFileField      = "selfie"
	defaultLogLevel       = "debug"
	defaultJanitorPeriod  = 10 * time.Minute
	defaultStaleUploadAge = time.Hour
)

// defaultConfig returns the values used for every field no other source set.
// Bot credentials have no default and must be configured.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Fields:         append(models.FieldSet(nil), models.DefaultFieldSet...),
			RequiredFields: []string{"name", "phone"},
			FileField:      defaultFileField,
			LogLevel:       defaultLogLevel,
		},
		Bot: Bot{
			APIURL:         defaultBotAPIURL,
			ParseMode:      models.ParseModeHTML,
			RequestTimeout: defaultBotTimeout,
		},
		Storage: Storage{
			Files: Files{
				UploadDir:         defaultUploadDir,
				MaxFileSize:       defaultMaxFileSize,
				AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
				OversizeStatus:    http.StatusBadRequest,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultServerTimeout,
		},
		Workers: Workers{
			JanitorInterval: defaultJanitorPeriod,
			StaleUploadAge:  defaultStaleUploadAge,
		},
	}
}
