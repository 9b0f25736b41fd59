// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/go-form-relay/models"
)

// StructuredConfig is the top-level configuration container for the
// form relay. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings that shape a submission: the rendered field set,
	// required keys and the name of the file field.
	App App `envPrefix:"APP_"`

	// Bot holds the bot API credentials and outbound call settings. Its
	// variables carry no prefix (BOT_TOKEN, CHAT_ID, ...).
	Bot Bot

	// Storage holds the temporary upload directory and file limits.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the background upload janitor.
	Workers Workers `envPrefix:"WORKERS_"`

	// Port is the bare listening port honoured for compatibility with PaaS
	// platforms. SERVER_ADDRESS takes precedence when both are set.
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App describes the form a deployment accepts.
type App struct {
	// Fields is the ordered list of rendered fields.
	// Env: APP_FIELDS, e.g. "name:Name,phone:Phone"
	Fields models.FieldSet `env:"FIELDS"`

	// RequiredFields lists keys that must be present and non-blank.
	// Env: APP_REQUIRED_FIELDS, e.g. "name,phone"
	RequiredFields []string `env:"REQUIRED_FIELDS" envSeparator:","`

	// FileField is the multipart field name of the image ("selfie", "passport").
	// Env: APP_FILE_FIELD
	FileField string `env:"FILE_FIELD"`

	// FileRequired rejects submissions without an image.
	// Env: APP_FILE_REQUIRED
	FileRequired bool `env:"FILE_REQUIRED"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version overrides the build version reported by /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Bot holds the settings of the outbound bot API client.
type Bot struct {
	// Token authenticates the bot. It is embedded in the URL path of every
	// call and must be kept confidential.
	// Env: BOT_TOKEN
	Token string `env:"BOT_TOKEN" json:"-"`

	// ChatID is the destination chat every submission is delivered to.
	// Env: CHAT_ID
	ChatID string `env:"CHAT_ID"`

	// APIURL is the bot API base URL without the bot<token> segment.
	// Env: BOT_API_URL
	APIURL string `env:"BOT_API_URL"`

	// ParseMode selects the markup of the rendered message (HTML or MarkdownV2).
	// Env: BOT_PARSE_MODE
	ParseMode models.ParseMode `env:"BOT_PARSE_MODE"`

	// RequestTimeout bounds every outbound call. Expiry is reported as an
	// upstream failure.
	// Env: BOT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"BOT_REQUEST_TIMEOUT"`
}

// Storage groups the configuration of local storage.
type Storage struct {
	// Files holds the temporary upload settings.
	Files Files `envPrefix:"FILES_"`
}

// Files holds settings of the temporary upload directory.
type Files struct {
	// UploadDir is where attached images are written until they are relayed.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// MaxFileSize is the upload ceiling in bytes.
	// Env: STORAGE_FILES_MAX_FILE_SIZE
	MaxFileSize int64 `env:"MAX_FILE_SIZE"`

	// AllowedExtensions is the image extension allow-list, e.g. ".png,.jpg".
	// Env: STORAGE_FILES_ALLOWED_EXTENSIONS
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:","`

	// OversizeStatus is the HTTP status returned for a file above
	// MaxFileSize: 400 or 413.
	// Env: STORAGE_FILES_OVERSIZE_STATUS
	OversizeStatus int `env:"OVERSIZE_STATUS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the read and write timeout of a single inbound request.
	// It must exceed the bot timeout, since a submission waits for two
	// outbound calls.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval is the period of the stale upload sweep.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`

	// StaleUploadAge is the age after which a left-behind upload is removed.
	// Env: WORKERS_STALE_UPLOAD_AGE
	StaleUploadAge time.Duration `env:"STALE_UPLOAD_AGE"`
}

// GetStructuredConfig loads, merges, normalises and validates the
// configuration from all available sources. For every field the first source
// that sets it wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
