// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-form-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testRules() SubmissionRules {
	return SubmissionRules{
		RequiredFields:    []string{"name", "phone"},
		MaxFileSize:       5 << 20,
		AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
	}
}

func validSubmission() models.Submission {
	return models.Submission{
		Fields: map[string]string{"name": "Ada Lovelace", "phone": "+2348000000000"},
	}
}

func withPhoto(s models.Submission, name string, size int64) models.Submission {
	s.Photo = &models.Photo{FileName: name, Size: size}
	return s
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSubmissionValidator(testRules())
	ctx := context.Background()

	s := validSubmission()
	assert.NoError(t, v.Validate(ctx, s))
	assert.NoError(t, v.Validate(ctx, &s))
	assert.ErrorIs(t, v.Validate(ctx, "submission"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, s, "email"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Required fields
// ---------------------------------------------------------------------------

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]string
		wantMissing []string
		wantDetails map[string]bool
	}{
		{
			name:   "all present",
			fields: map[string]string{"name": "Ada", "phone": "1"},
		},
		{
			name:        "phone absent",
			fields:      map[string]string{"name": "Ada"},
			wantMissing: []string{"phone"},
			wantDetails: map[string]bool{"name": false, "phone": true},
		},
		{
			name:        "blank counts as absent",
			fields:      map[string]string{"name": "   ", "phone": "1"},
			wantMissing: []string{"name"},
			wantDetails: map[string]bool{"name": true, "phone": false},
		},
		{
			name:        "nothing sent",
			fields:      nil,
			wantMissing: []string{"name", "phone"},
			wantDetails: map[string]bool{"name": true, "phone": true},
		},
	}

	v := NewSubmissionValidator(testRules())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.Submission{Fields: tt.fields}, FieldRequired)
			if tt.wantMissing == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrMissingRequiredFields)
			var missingErr *MissingFieldsError
			require.True(t, errors.As(err, &missingErr))
			assert.Equal(t, tt.wantMissing, missingErr.Missing)
			assert.Equal(t, tt.wantDetails, missingErr.Required)
			assert.Contains(t, err.Error(), tt.wantMissing[0])
		})
	}
}

func TestValidate_OptionalFieldsAreNotChecked(t *testing.T) {
	v := NewSubmissionValidator(SubmissionRules{RequiredFields: []string{"name"}})

	err := v.Validate(context.Background(), models.Submission{Fields: map[string]string{"name": "Ada"}}, FieldRequired)

	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Photo
// ---------------------------------------------------------------------------

func TestValidate_PhotoExtensions(t *testing.T) {
	v := NewSubmissionValidator(testRules())

	accepted := []string{"a.jpg", "a.jpeg", "a.png", "a.gif", "a.webp", "A.PNG", "selfie.final.JpG"}
	for _, name := range accepted {
		t.Run("accepts "+name, func(t *testing.T) {
			err := v.Validate(context.Background(), withPhoto(validSubmission(), name, 1024), FieldPhoto)
			assert.NoError(t, err)
		})
	}

	rejected := []string{"setup.exe", "doc.pdf", "noext", "image.png.exe", ".png.sh"}
	for _, name := range rejected {
		t.Run("rejects "+name, func(t *testing.T) {
			err := v.Validate(context.Background(), withPhoto(validSubmission(), name, 1024), FieldPhoto)
			assert.ErrorIs(t, err, ErrUnsupportedFileType)
		})
	}
}

func TestValidate_PhotoSize(t *testing.T) {
	v := NewSubmissionValidator(testRules())
	limit := testRules().MaxFileSize

	assert.NoError(t, v.Validate(context.Background(), withPhoto(validSubmission(), "a.png", limit), FieldPhoto))
	assert.ErrorIs(t, v.Validate(context.Background(), withPhoto(validSubmission(), "a.png", limit+1), FieldPhoto), ErrFileTooLarge)
}

func TestValidate_PhotoOptionalByDefault(t *testing.T) {
	v := NewSubmissionValidator(testRules())

	assert.NoError(t, v.Validate(context.Background(), validSubmission()))
}

func TestValidate_PhotoRequired(t *testing.T) {
	rules := testRules()
	rules.FileRequired = true
	v := NewSubmissionValidator(rules)

	assert.ErrorIs(t, v.Validate(context.Background(), validSubmission()), ErrFileRequired)
	assert.NoError(t, v.Validate(context.Background(), withPhoto(validSubmission(), "a.png", 10)))
}

// TestValidate_RequiredCheckedBeforePhoto verifies the order of the default
// field list: a submission that breaks both rules reports missing fields.
func TestValidate_RequiredCheckedBeforePhoto(t *testing.T) {
	v := NewSubmissionValidator(testRules())
	s := withPhoto(models.Submission{}, "virus.exe", 10)

	err := v.Validate(context.Background(), s)

	assert.ErrorIs(t, err, ErrMissingRequiredFields)
}
