package store

import "errors"

// Sentinel errors returned by the upload storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCreatingUploadDir is returned when the upload directory cannot be
	// created or is not a directory.
	ErrCreatingUploadDir = errors.New("error creating upload directory")

	// ErrWritingUpload is returned when the uploaded content cannot be
	// written to disk. The partial file is removed before returning.
	ErrWritingUpload = errors.New("error writing upload")

	// ErrUploadExceedsLimit is returned when the streamed content turns out
	// larger than the configured ceiling, regardless of the declared size.
	ErrUploadExceedsLimit = errors.New("upload exceeds size limit")

	// ErrOutsideUploadDir is returned when asked to remove a path that does
	// not belong to the upload directory.
	ErrOutsideUploadDir = errors.New("path is outside the upload directory")
)
