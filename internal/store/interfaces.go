// Package store owns the transient local storage of the relay: the upload
// directory that holds an attached photo between the inbound request and the
// outbound photo call.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_storage_mock.go -package=mock

// UploadStorage persists photos for the lifetime of a single request.
type UploadStorage interface {
	// Save streams photo.Content into a new file with a unique name. On any
	// failure no file is left behind.
	Save(ctx context.Context, photo models.Photo) (models.UploadedFile, error)

	// Remove deletes a previously saved file. Removing a file that no longer
	// exists is not an error.
	Remove(ctx context.Context, path string) error

	// PurgeStale deletes files whose modification time is older than
	// olderThan and returns how many were removed.
	PurgeStale(ctx context.Context, olderThan time.Duration) (int, error)
}
