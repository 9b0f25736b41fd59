package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-relay/internal/validators"
	"github.com/MKhiriev/go-form-relay/models"
)

type RelayValidationService struct {
	inner     RelayService
	validator validators.Validator
}

func NewRelayValidationService(rules validators.SubmissionRules) RelayServiceWrapper {
	return &RelayValidationService{
		validator: validators.NewSubmissionValidator(rules),
	}
}

func (v *RelayValidationService) Relay(ctx context.Context, submission models.Submission) (models.RelayResult, error) {
	if err := v.validator.Validate(ctx, submission); err != nil {
		return models.RelayResult{}, fmt.Errorf("submission validation failed: %w", err)
	}

	return v.inner.Relay(ctx, submission)
}

func (v *RelayValidationService) Wrap(wrapped RelayService) RelayService {
	v.inner = wrapped
	return v
}
