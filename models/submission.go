package models

import (
	"io"
	"strings"
	"time"
)

// Submission is one inbound form post. It lives for the duration of a single
// request and is never persisted.
type Submission struct {
	// Fields holds the raw text values keyed by form field name.
	Fields map[string]string

	// Photo is the optional attached image. Nil when no file was sent.
	Photo *Photo

	// ReceivedAt is the server-side time the submission was accepted.
	ReceivedAt time.Time
}

// Value returns the trimmed value of the field with the given key, or an
// empty string when the field is absent.
func (s Submission) Value(key string) string {
	if s.Fields == nil {
		return ""
	}
	return strings.TrimSpace(s.Fields[key])
}

// HasPhoto reports whether an image was attached to the submission.
func (s Submission) HasPhoto() bool {
	return s.Photo != nil
}

// Photo is an image attached to a submission before it is written to the
// upload directory.
type Photo struct {
	// FileName is the client supplied file name. Only its extension is used.
	FileName string

	// Size is the declared size of the file in bytes.
	Size int64

	// Content streams the file body.
	Content io.Reader
}

// UploadedFile is a photo written to the upload directory. The request that
// created it owns it and must remove it once the relay is finished.
type UploadedFile struct {
	// Path is the location of the file on local disk.
	Path string

	// Name is the unique base name generated for the file.
	Name string

	// Size is the number of bytes written.
	Size int64
}
