package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredFields = errors.New("required fields are missing")
	ErrFileRequired          = errors.New("file is required")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file too large")
)

// MissingFieldsError reports which required fields were absent. It matches
// [ErrMissingRequiredFields] with errors.Is.
type MissingFieldsError struct {
	// Required maps every required key to true when it was missing.
	Required map[string]bool

	// Missing lists the absent keys in the configured order.
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingRequiredFields, strings.Join(e.Missing, ", "))
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrMissingRequiredFields
}
