// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a submission from the request body.
// Callers can match against them with [errors.Is].
var (
	// ErrRequestTooLarge is returned when the body exceeds the upload ceiling
	// plus the allowance for the text fields.
	ErrRequestTooLarge = errors.New("request body too large")

	// ErrInvalidForm is returned when the body cannot be parsed as the
	// declared content type.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrUnsupportedContentType is returned for bodies that are neither a
	// form nor JSON.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	errNotScalar = errors.New("value must be a string, number or boolean")
)
