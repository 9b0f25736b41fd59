package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBotUnavailable is returned when the bot API cannot be reached or
	// answers with a 5xx status.
	ErrBotUnavailable = errors.New("bot api unavailable")
	// ErrBotTimeout is returned when a call does not finish within the
	// configured timeout.
	ErrBotTimeout = errors.New("bot api request timed out")
	// ErrBotRejected is returned when the bot API refuses a call (ok:false or
	// a 4xx status).
	ErrBotRejected = errors.New("bot api rejected the request")
	// ErrBotUnauthorized is returned when the bot token is not accepted.
	ErrBotUnauthorized = errors.New("bot api unauthorized")
	// ErrBotRateLimited is returned on 429 Too Many Requests.
	ErrBotRateLimited = errors.New("bot api rate limit exceeded")
	// ErrPhotoUnreadable is returned when the photo file cannot be opened.
	ErrPhotoUnreadable = errors.New("photo file is unreadable")
)

// BotError is a failed call that the bot API answered. Kind is one of the
// sentinels above; Description is the API's own explanation, e.g.
// "Bad Request: chat not found", and is empty when the answer had no envelope.
type BotError struct {
	Kind        error
	StatusCode  int
	Description string
	RetryAfter  int

	detail string
}

func (e *BotError) Error() string {
	msg := e.Kind.Error()
	if e.StatusCode < 200 || e.StatusCode >= 300 {
		msg = fmt.Sprintf("%s: http %d", msg, e.StatusCode)
	}
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.RetryAfter > 0 {
		msg = fmt.Sprintf("%s (retry after %ds)", msg, e.RetryAfter)
	}
	return msg
}

func (e *BotError) Unwrap() error {
	return e.Kind
}

const redactedToken = "<redacted>"

// redactedError hides the bot token that transport errors carry in their URL
// while keeping the original error reachable for errors.Is.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string {
	return e.msg
}

func (e *redactedError) Unwrap() error {
	return e.err
}

func redact(err error, secret string) error {
	if err == nil || secret == "" {
		return err
	}
	return &redactedError{
		msg: strings.ReplaceAll(err.Error(), secret, redactedToken),
		err: err,
	}
}
