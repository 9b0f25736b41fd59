package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-form-relay/models"
	"github.com/go-resty/resty/v2"
)

// mapBotError turns a bot API answer into nil or a *BotError. The envelope
// description is used as detail when present.
func mapBotError(resp *resty.Response) error {
	var envelope models.BotResponse
	decodeErr := json.Unmarshal(resp.Body(), &envelope)

	status := resp.StatusCode()
	botErr := &BotError{StatusCode: status, Description: envelope.Description}

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if decodeErr == nil && !envelope.OK {
			botErr.Kind = ErrBotRejected
			botErr.detail = describe(envelope, status)
			return botErr
		}
		return nil
	}

	botErr.detail = describe(envelope, status)
	if decodeErr != nil {
		if body := strings.TrimSpace(string(resp.Body())); body != "" && len(body) < 256 {
			botErr.detail = body
		}
	}

	switch {
	case status == http.StatusUnauthorized:
		botErr.Kind = ErrBotUnauthorized
	case status == http.StatusTooManyRequests:
		botErr.Kind = ErrBotRateLimited
		if envelope.Parameters != nil {
			botErr.RetryAfter = envelope.Parameters.RetryAfter
		}
	case status >= http.StatusInternalServerError:
		botErr.Kind = ErrBotUnavailable
	default:
		botErr.Kind = ErrBotRejected
	}
	return botErr
}

func describe(envelope models.BotResponse, status int) string {
	if envelope.Description != "" {
		return envelope.Description
	}
	return http.StatusText(status)
}

// mapTransportError classifies a failure that happened before any answer
// was received.
func mapTransportError(err error, token string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", ErrBotTimeout, redact(err, token))
	}
	return fmt.Errorf("%w: %w", ErrBotUnavailable, redact(err, token))
}
