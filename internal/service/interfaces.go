package service

import (
	"context"

	"github.com/MKhiriev/go-form-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RelayService delivers a submission to the bot API.
type RelayService interface {
	// Relay sends the rendered text and, when attached, the photo. A failed
	// photo after a delivered text is not an error: it is reported through
	// [models.RelayResult.PhotoErr].
	Relay(ctx context.Context, submission models.Submission) (models.RelayResult, error)
}

// RelayServiceWrapper defines middleware composition for RelayService.
// Implementations wrap an existing RelayService to add behavior such as
// validating.
type RelayServiceWrapper interface {
	Wrap(RelayService) RelayService // returns a decorated RelayService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
