// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestStorage(t *testing.T, maxSize int64) (*uploadFileStorage, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")

	s, err := NewUploadFileStorage(config.Files{UploadDir: dir, MaxFileSize: maxSize}, logger.Nop())
	require.NoError(t, err)

	return s.(*uploadFileStorage), dir
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

// ── NewUploadFileStorage ──────────────────────────────────────────────────────

func TestNewUploadFileStorage_CreatesDirectory(t *testing.T) {
	_, dir := newTestStorage(t, 1024)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewUploadFileStorage_DirIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := NewUploadFileStorage(config.Files{UploadDir: path, MaxFileSize: 1}, logger.Nop())

	assert.ErrorIs(t, err, ErrCreatingUploadDir)
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestSave_WritesUniqueFile(t *testing.T) {
	s, dir := newTestStorage(t, 1024)
	content := []byte("png-bytes")

	saved, err := s.Save(context.Background(), models.Photo{FileName: "Me.PNG", Size: int64(len(content)), Content: bytes.NewReader(content)})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(saved.Path))
	assert.True(t, strings.HasSuffix(saved.Name, ".png"))
	assert.NotContains(t, saved.Name, "Me")
	assert.Equal(t, int64(len(content)), saved.Size)

	got, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSave_ConcurrentNamesDoNotCollide(t *testing.T) {
	s, dir := newTestStorage(t, 1024)
	const n = 20

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Save(context.Background(), models.Photo{FileName: "a.jpg", Content: strings.NewReader("x")})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, dirEntries(t, dir), n)
}

func TestSave_ContentLargerThanLimit(t *testing.T) {
	s, dir := newTestStorage(t, 4)

	_, err := s.Save(context.Background(), models.Photo{FileName: "a.png", Size: 2, Content: strings.NewReader("12345")})

	assert.ErrorIs(t, err, ErrUploadExceedsLimit)
	assert.Empty(t, dirEntries(t, dir))
}

func TestSave_ReadFailureLeavesNoFile(t *testing.T) {
	s, dir := newTestStorage(t, 1024)

	_, err := s.Save(context.Background(), models.Photo{FileName: "a.png", Content: failingReader{}})

	assert.ErrorIs(t, err, ErrWritingUpload)
	assert.Empty(t, dirEntries(t, dir))
}

func TestSave_NilContent(t *testing.T) {
	s, _ := newTestStorage(t, 1024)

	_, err := s.Save(context.Background(), models.Photo{FileName: "a.png"})

	assert.ErrorIs(t, err, ErrWritingUpload)
}

func TestSave_CancelledContext(t *testing.T) {
	s, dir := newTestStorage(t, 1024)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, models.Photo{FileName: "a.png", Content: strings.NewReader("x")})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dirEntries(t, dir))
}

// ── Remove ────────────────────────────────────────────────────────────────────

func TestRemove_DeletesFile(t *testing.T) {
	s, dir := newTestStorage(t, 1024)
	saved, err := s.Save(context.Background(), models.Photo{FileName: "a.png", Content: strings.NewReader("x")})
	require.NoError(t, err)

	require.NoError(t, s.Remove(context.Background(), saved.Path))

	assert.Empty(t, dirEntries(t, dir))
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	s, dir := newTestStorage(t, 1024)

	assert.NoError(t, s.Remove(context.Background(), filepath.Join(dir, "gone.png")))
}

func TestRemove_RefusesPathOutsideDir(t *testing.T) {
	s, _ := newTestStorage(t, 1024)
	outside := filepath.Join(t.TempDir(), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))

	err := s.Remove(context.Background(), outside)

	assert.ErrorIs(t, err, ErrOutsideUploadDir)
	assert.FileExists(t, outside)
}

// ── PurgeStale ────────────────────────────────────────────────────────────────

func TestPurgeStale_RemovesOnlyOldFiles(t *testing.T) {
	s, dir := newTestStorage(t, 1024)

	oldPath := filepath.Join(dir, "old.png")
	freshPath := filepath.Join(dir, "fresh.png")
	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(freshPath, []byte("x"), 0o600))
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))

	removed, err := s.PurgeStale(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, freshPath)
	assert.DirExists(t, filepath.Join(dir, "nested"))
}

func TestPurgeStale_MissingDirectory(t *testing.T) {
	s, dir := newTestStorage(t, 1024)
	require.NoError(t, os.RemoveAll(dir))

	removed, err := s.PurgeStale(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Zero(t, removed)
}

// ── NewStorages ───────────────────────────────────────────────────────────────

func TestNewStorages(t *testing.T) {
	storages, err := NewStorages(config.Storage{Files: config.Files{UploadDir: t.TempDir(), MaxFileSize: 10}}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, storages.UploadStorage)
}
