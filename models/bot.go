// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ParseMode selects how the bot API interprets markup in a message text.
type ParseMode string

const (
	ParseModeHTML       ParseMode = "HTML"
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
)

// Valid reports whether the parse mode is supported by the message renderer.
func (p ParseMode) Valid() bool {
	return p == ParseModeHTML || p == ParseModeMarkdownV2
}

// BotMessage is the JSON payload of the sendMessage method.
type BotMessage struct {
	ChatID    string    `json:"chat_id"`
	Text      string    `json:"text"`
	ParseMode ParseMode `json:"parse_mode,omitempty"`
}

// BotResponse is the envelope the bot API wraps every answer in.
type BotResponse struct {
	OK          bool               `json:"ok"`
	Description string             `json:"description,omitempty"`
	ErrorCode   int                `json:"error_code,omitempty"`
	Parameters  *BotResponseParams `json:"parameters,omitempty"`
}

// BotResponseParams carries optional hints attached to a failed call.
type BotResponseParams struct {
	RetryAfter int `json:"retry_after,omitempty"`
}
