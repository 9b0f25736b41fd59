package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-form-relay/internal/config"
	"github.com/MKhiriev/go-form-relay/internal/logger"
	"github.com/MKhiriev/go-form-relay/internal/store"
)

type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")
	return &Workers{
		workers: []Worker{
			NewUploadJanitor(storages.UploadStorage, cfg, logger),
		},
	}
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until all workers started by Run have returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
