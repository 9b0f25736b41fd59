// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the external bot API the relay
// delivers submissions to.
//
// The primary abstraction is [BotAdapter], which decouples the service layer
// from the HTTP details of the bot API. The package ships a Telegram-shaped
// implementation ([NewTelegramBotAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from transport failures and
// bot API answers by mapBotError so that callers can use [errors.Is] (e.g.
// [ErrBotRejected] for an ok:false answer, [ErrBotTimeout] for an expired call).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-form-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bot_adapter_mock.go -package=mock

// BotAdapter delivers messages to the single destination chat the adapter
// was configured with. Calls are never retried.
type BotAdapter interface {
	// SendMessage delivers text rendered with the given parse mode.
	SendMessage(ctx context.Context, text string, parseMode models.ParseMode) error

	// SendPhoto uploads the image stored at photoPath with an optional
	// caption. A missing or unreadable file is reported as
	// [ErrPhotoUnreadable].
	SendPhoto(ctx context.Context, photoPath string, caption string) error
}
