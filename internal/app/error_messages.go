// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// form relay handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgSubmitted is the success message of a fully relayed submission.
	MsgSubmitted = "Form submitted and data sent to Telegram successfully"

	// MsgPartiallySubmitted is returned when the text was relayed but the
	// photo was not.
	MsgPartiallySubmitted = "Form submitted to Telegram, but the photo could not be delivered"

	// MsgSubmissionFailed is returned when the submission could not be
	// relayed at all.
	MsgSubmissionFailed = "Failed to process form submission"

	// MsgFieldsRequired is returned when required fields are missing or blank.
	MsgFieldsRequired = "All fields are required"

	// MsgOnlyImages is returned for an attachment outside the extension
	// allow-list.
	MsgOnlyImages = "Only image files are allowed!"

	// MsgFileTooLarge is returned for an attachment above the size ceiling.
	MsgFileTooLarge = "File too large"

	// MsgPhotoRequired is returned when a deployment requires a photo and
	// none was sent.
	MsgPhotoRequired = "Photo is required"

	// MsgInvalidForm is returned when the body cannot be parsed.
	MsgInvalidForm = "Invalid form data"

	// MsgUnsupportedContentType is returned for bodies that are neither a
	// form nor JSON.
	MsgUnsupportedContentType = "Unsupported content type"

	// MsgServerRunning is the health check message.
	MsgServerRunning = "Form submission server is running"
)
