package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-relay/internal/adapter"
	"github.com/MKhiriev/go-form-relay/internal/service"
	"github.com/MKhiriev/go-form-relay/internal/store"
	"github.com/MKhiriev/go-form-relay/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMissingRequiredFields: http.StatusBadRequest,
	validators.ErrFileRequired:          http.StatusBadRequest,
	validators.ErrUnsupportedFileType:   http.StatusBadRequest,
	validators.ErrFileTooLarge:          http.StatusRequestEntityTooLarge,

	ErrRequestTooLarge:        http.StatusRequestEntityTooLarge,
	ErrInvalidForm:            http.StatusBadRequest,
	ErrUnsupportedContentType: http.StatusUnsupportedMediaType,

	service.ErrSendText:    http.StatusBadGateway,
	service.ErrStoreUpload: http.StatusInternalServerError,
}

// upstreamReasons are the bot adapter errors whose text is safe to show to a
// client. The order is the matching priority.
var upstreamReasons = []error{
	adapter.ErrBotTimeout,
	adapter.ErrBotUnauthorized,
	adapter.ErrBotRateLimited,
	adapter.ErrBotRejected,
	adapter.ErrBotUnavailable,
	adapter.ErrPhotoUnreadable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// upstreamReason returns a client-safe description of an outbound failure:
// the sentinel text plus the bot API's own description when it sent one.
// Wrapped details such as URLs and file paths are never included.
func upstreamReason(err error) string {
	for _, target := range upstreamReasons {
		if !errors.Is(err, target) {
			continue
		}
		var botErr *adapter.BotError
		if errors.As(err, &botErr) && botErr.Description != "" {
			return target.Error() + ": " + botErr.Description
		}
		return target.Error()
	}
	return "unexpected error"
}

func isTooLarge(err error) bool {
	return errors.Is(err, validators.ErrFileTooLarge) ||
		errors.Is(err, ErrRequestTooLarge) ||
		errors.Is(err, store.ErrUploadExceedsLimit)
}
