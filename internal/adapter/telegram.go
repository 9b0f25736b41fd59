package adapter

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/utils"
	"github.com/MKhiriev/go-form-relay/models"
)

const (
	methodSendMessage = "sendMessage"
	methodSendPhoto   = "sendPhoto"
)

type telegramBotAdapter struct {
	client *utils.HTTPClient

	token  string
	chatID string
}

// NewTelegramBotAdapter constructs a [BotAdapter] talking to a Telegram-shaped
// bot API. It normalises the base URL from cfg.APIURL and applies
// cfg.RequestTimeout to every call.
//
// Returns an error if the token or chat id is empty or the base URL cannot
// be parsed.
func NewTelegramBotAdapter(cfg config.Bot, logger *logger.Logger) (BotAdapter, error) {
	if cfg.Token == "" || cfg.ChatID == "" {
		return nil, fmt.Errorf("bot token and chat id are required")
	}

	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bot api url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetLogger(restyLogger{logger: logger, secret: cfg.Token})

	return &telegramBotAdapter{
		client: client,
		token:  cfg.Token,
		chatID: cfg.ChatID,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendMessage implements [BotAdapter]. It POSTs {chat_id, text, parse_mode}
// as JSON to /bot<token>/sendMessage.
func (a *telegramBotAdapter) SendMessage(ctx context.Context, text string, parseMode models.ParseMode) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BotMessage{
			ChatID:    a.chatID,
			Text:      text,
			ParseMode: parseMode,
		}).
		Post(a.methodPath(methodSendMessage))
	if err != nil {
		return fmt.Errorf("send message request: %w", mapTransportError(err, a.token))
	}

	if err = mapBotError(resp); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	logger.FromContext(ctx).Debug().Dur("took", resp.Time()).Msg("message delivered to bot api")
	return nil
}

// SendPhoto implements [BotAdapter]. It POSTs a multipart form with chat_id,
// the photo file and an optional caption to /bot<token>/sendPhoto.
func (a *telegramBotAdapter) SendPhoto(ctx context.Context, photoPath string, caption string) error {
	file, err := os.Open(photoPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPhotoUnreadable, filepath.Base(photoPath))
	}
	defer file.Close()

	formData := map[string]string{"chat_id": a.chatID}
	if caption != "" {
		formData["caption"] = caption
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetFormData(formData).
		SetFileReader("photo", filepath.Base(photoPath), file).
		Post(a.methodPath(methodSendPhoto))
	if err != nil {
		return fmt.Errorf("send photo request: %w", mapTransportError(err, a.token))
	}

	if err = mapBotError(resp); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}

	logger.FromContext(ctx).Debug().Dur("took", resp.Time()).Msg("photo delivered to bot api")
	return nil
}

func (a *telegramBotAdapter) methodPath(method string) string {
	return "/bot" + a.token + "/" + method
}
