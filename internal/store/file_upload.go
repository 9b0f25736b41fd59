// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/utils"
	"github.com/MKhiriev/go-form-relay/models"
)

const (
	uploadDirPerm  = 0o750
	uploadFilePerm = 0o600
)

type nameGenerator interface {
	Generate() string
}

// uploadFileStorage keeps uploads as plain files in a single directory.
// Names combine a millisecond timestamp with a UUID v7, so concurrent
// requests never collide.
type uploadFileStorage struct {
	dir         string
	maxFileSize int64

	names nameGenerator
	now   func() time.Time

	logger *logger.Logger
}

// NewUploadFileStorage creates the upload directory if needed and returns an
// [UploadStorage] rooted at it.
func NewUploadFileStorage(cfg config.Files, logger *logger.Logger) (UploadStorage, error) {
	dir, err := filepath.Abs(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingUploadDir, err)
	}

	if err = os.MkdirAll(dir, uploadDirPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingUploadDir, err)
	}

	return &uploadFileStorage{
		dir:         dir,
		maxFileSize: cfg.MaxFileSize,
		names:       utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *uploadFileStorage) Save(ctx context.Context, photo models.Photo) (models.UploadedFile, error) {
	if err := ctx.Err(); err != nil {
		return models.UploadedFile{}, err
	}
	if photo.Content == nil {
		return models.UploadedFile{}, fmt.Errorf("%w: empty content", ErrWritingUpload)
	}

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), s.names.Generate(), strings.ToLower(filepath.Ext(photo.FileName)))
	path := filepath.Join(s.dir, name)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, uploadFilePerm)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("%w: %w", ErrWritingUpload, err)
	}

	written, err := io.Copy(file, io.LimitReader(photo.Content, s.maxFileSize+1))
	closeErr := file.Close()

	switch {
	case err != nil:
		err = fmt.Errorf("%w: %w", ErrWritingUpload, err)
	case closeErr != nil:
		err = fmt.Errorf("%w: %w", ErrWritingUpload, closeErr)
	case written > s.maxFileSize:
		err = ErrUploadExceedsLimit
	}

	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			s.logger.Err(rmErr).Str("file", name).Msg("failed to remove partial upload")
		}
		return models.UploadedFile{}, err
	}

	s.logger.Debug().Str("file", name).Int64("size", written).Msg("upload saved")

	return models.UploadedFile{Path: path, Name: name, Size: written}, nil
}

func (s *uploadFileStorage) Remove(_ context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if filepath.Dir(abs) != s.dir {
		return fmt.Errorf("%w: %s", ErrOutsideUploadDir, filepath.Base(abs))
	}

	if err = os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing upload: %w", err)
	}

	return nil
}

func (s *uploadFileStorage) PurgeStale(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("error listing upload directory: %w", err)
	}

	cutoff := s.now().Add(-olderThan)
	removed := 0
	var errs []error

	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return removed, err
		}
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed concurrently
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err = os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}
