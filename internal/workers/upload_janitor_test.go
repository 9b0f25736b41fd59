package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/mock"
	"github.com/MKhiriev/go-form-relay/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUploadJanitor_SweepsOnStartAndOnTick(t *testing.T) {
	uploads := mock.NewMockUploadStorage(gomock.NewController(t))
	ctx, cancel := context.WithCancel(context.Background())

	sweeps := make(chan struct{}, 3)
	uploads.EXPECT().PurgeStale(gomock.Any(), time.Hour).DoAndReturn(
		func(context.Context, time.Duration) (int, error) {
			select {
			case sweeps <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(2)

	janitor := NewUploadJanitor(uploads, config.Workers{
		JanitorInterval: 10 * time.Millisecond,
		StaleUploadAge:  time.Hour,
	}, logger.Nop())

	done := make(chan struct{})
	go func() {
		janitor.Run(ctx)
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-sweeps:
		case <-time.After(time.Second):
			t.Fatalf("sweep %d did not happen", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestUploadJanitor_ErrorDoesNotStopWorker(t *testing.T) {
	uploads := mock.NewMockUploadStorage(gomock.NewController(t))
	ctx, cancel := context.WithCancel(context.Background())

	sweeps := make(chan struct{}, 3)
	uploads.EXPECT().PurgeStale(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, time.Duration) (int, error) {
			select {
			case sweeps <- struct{}{}:
			default:
			}
			return 0, errors.New("permission denied")
		}).MinTimes(2)

	janitor := NewUploadJanitor(uploads, config.Workers{
		JanitorInterval: 10 * time.Millisecond,
		StaleUploadAge:  time.Minute,
	}, logger.Nop())

	done := make(chan struct{})
	go func() {
		janitor.Run(ctx)
		close(done)
	}()

	<-sweeps
	select {
	case <-sweeps:
	case <-time.After(time.Second):
		t.Fatal("janitor stopped after a failed sweep")
	}
	cancel()
	<-done
}

func TestUploadJanitor_RemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()
	uploads, err := store.NewUploadFileStorage(config.Files{
		UploadDir:         dir,
		MaxFileSize:       1 << 20,
		AllowedExtensions: []string{".png"},
	}, logger.Nop())
	require.NoError(t, err)

	stale := filepath.Join(dir, "1-stale.png")
	fresh := filepath.Join(dir, "2-fresh.png")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0o600))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	janitor := &uploadJanitor{uploads: uploads, interval: time.Hour, staleAge: time.Hour, logger: logger.Nop()}
	janitor.sweep(context.Background())

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
}
