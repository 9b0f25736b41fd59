package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/store"
)

// uploadJanitor removes uploads a crashed or killed process left behind.
// Only files older than staleAge are touched, so in-flight requests are safe.
type uploadJanitor struct {
	uploads  store.UploadStorage
	interval time.Duration
	staleAge time.Duration

	logger *logger.Logger
}

func NewUploadJanitor(uploads store.UploadStorage, cfg config.Workers, logger *logger.Logger) Worker {
	return &uploadJanitor{
		uploads:  uploads,
		interval: cfg.JanitorInterval,
		staleAge: cfg.StaleUploadAge,
		logger:   logger,
	}
}

// Run sweeps once immediately and then every interval.
func (j *uploadJanitor) Run(ctx context.Context) {
	j.logger.Info().
		Dur("interval", j.interval).
		Dur("stale_age", j.staleAge).
		Msg("upload janitor started")

	j.sweep(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("upload janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *uploadJanitor) sweep(ctx context.Context) {
	removed, err := j.uploads.PurgeStale(ctx, j.staleAge)
	if err != nil {
		j.logger.Err(err).Msg("stale upload sweep failed")
		return
	}
	if removed > 0 {
		j.logger.Warn().Int("removed", removed).Msg("removed stale uploads")
	}
}
