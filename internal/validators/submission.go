package validators

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-form-relay/models"
)

const (
	FieldRequired = "required"
	FieldPhoto    = "photo"
)

// SubmissionRules are the deployment specific constraints of a submission.
type SubmissionRules struct {
	// RequiredFields must be present and non-blank.
	RequiredFields []string

	// FileRequired rejects submissions without a photo.
	FileRequired bool

	// MaxFileSize is the photo size ceiling in bytes.
	MaxFileSize int64

	// AllowedExtensions is the lower-case, dot-prefixed extension allow-list.
	AllowedExtensions []string
}

type SubmissionValidator struct {
	rules      SubmissionRules
	extensions map[string]struct{}
}

func NewSubmissionValidator(rules SubmissionRules) Validator {
	extensions := make(map[string]struct{}, len(rules.AllowedExtensions))
	for _, ext := range rules.AllowedExtensions {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	return &SubmissionValidator{
		rules:      rules,
		extensions: extensions,
	}
}

// Validate checks a [models.Submission]. With no fields given both the
// required fields and the photo are checked; pass FieldRequired or FieldPhoto
// to check only one of them. Nothing is read from the photo content, so the
// check is safe to run before the upload is written to disk.
func (v *SubmissionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Submission:
		return v.validateSubmission(ctx, value, fields...)
	case *models.Submission:
		return v.validateSubmission(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SubmissionValidator) validateSubmission(_ context.Context, submission models.Submission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldPhoto}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if err := v.validateRequired(submission); err != nil {
				return err
			}
		case FieldPhoto:
			if err := v.validatePhoto(submission.Photo); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *SubmissionValidator) validateRequired(submission models.Submission) error {
	required := make(map[string]bool, len(v.rules.RequiredFields))
	var missing []string

	for _, key := range v.rules.RequiredFields {
		absent := submission.Value(key) == ""
		required[key] = absent
		if absent {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Required: required, Missing: missing}
	}

	return nil
}

func (v *SubmissionValidator) validatePhoto(photo *models.Photo) error {
	if photo == nil {
		if v.rules.FileRequired {
			return ErrFileRequired
		}
		return nil
	}

	ext := strings.ToLower(filepath.Ext(photo.FileName))
	if _, ok := v.extensions[ext]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}

	if photo.Size > v.rules.MaxFileSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, photo.Size, v.rules.MaxFileSize)
	}

	return nil
}
