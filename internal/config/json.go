package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-form-relay/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON file.
// The bot token is not read from the file; it is only taken from the
// environment.
type StructuredJSONConfig struct {
	App struct {
		Fields         models.FieldSet `json:"fields"`
		RequiredFields []string        `json:"required_fields"`
		FileField      string          `json:"file_field"`
		FileRequired   bool            `json:"file_required"`
		LogLevel       string          `json:"log_level"`
		Version        string          `json:"version"`
	} `json:"app,omitempty"`

	Bot struct {
		ChatID         string   `json:"chat_id"`
		APIURL         string   `json:"api_url"`
		ParseMode      string   `json:"parse_mode"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"bot,omitempty"`

	Storage struct {
		Files struct {
			UploadDir         string   `json:"upload_dir"`
			MaxFileSize       int64    `json:"max_file_size"`
			AllowedExtensions []string `json:"allowed_extensions"`
			OversizeStatus    int      `json:"oversize_status"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval"`
		StaleUploadAge  Duration `json:"stale_upload_age"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Fields:         jsonCfg.App.Fields,
			RequiredFields: jsonCfg.App.RequiredFields,
			FileField:      jsonCfg.App.FileField,
			FileRequired:   jsonCfg.App.FileRequired,
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Bot: Bot{
			ChatID:         jsonCfg.Bot.ChatID,
			APIURL:         jsonCfg.Bot.APIURL,
			ParseMode:      models.ParseMode(jsonCfg.Bot.ParseMode),
			RequestTimeout: time.Duration(jsonCfg.Bot.RequestTimeout),
		},
		Storage: Storage{
			Files: Files{
				UploadDir:         jsonCfg.Storage.Files.UploadDir,
				MaxFileSize:       jsonCfg.Storage.Files.MaxFileSize,
				AllowedExtensions: jsonCfg.Storage.Files.AllowedExtensions,
				OversizeStatus:    jsonCfg.Storage.Files.OversizeStatus,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval),
			StaleUploadAge:  time.Duration(jsonCfg.Workers.StaleUploadAge),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
