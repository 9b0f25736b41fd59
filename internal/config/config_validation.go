// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/http"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Bot.Token == "" || cfg.Bot.ChatID == "" {
		return fmt.Errorf("%w: BOT_TOKEN and CHAT_ID must be set", ErrInvalidBotConfigs)
	}
	if !cfg.Bot.ParseMode.Valid() {
		return fmt.Errorf("%w: unsupported parse mode %q", ErrInvalidBotConfigs, cfg.Bot.ParseMode)
	}
	if cfg.Bot.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidBotConfigs)
	}

	if len(cfg.App.Fields) == 0 {
		return fmt.Errorf("%w: field set is empty", ErrInvalidAppConfigs)
	}
	for _, key := range cfg.App.RequiredFields {
		if !cfg.App.Fields.Has(key) {
			return fmt.Errorf("%w: required field %q is not in the field set", ErrInvalidAppConfigs, key)
		}
	}
	if cfg.App.FileField == "" {
		return fmt.Errorf("%w: file field name is empty", ErrInvalidAppConfigs)
	}

	files := cfg.Storage.Files
	if files.UploadDir == "" || files.MaxFileSize <= 0 || len(files.AllowedExtensions) == 0 {
		return ErrInvalidStorageConfigs
	}
	if files.OversizeStatus != http.StatusBadRequest && files.OversizeStatus != http.StatusRequestEntityTooLarge {
		return fmt.Errorf("%w: oversize status must be 400 or 413", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.JanitorInterval <= 0 || cfg.Workers.StaleUploadAge <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
