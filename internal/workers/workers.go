package workers

import (
	"context"

	"github.com/launcherlock/answer-relay/internal/config"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/store"
)

// Workers aggregates the relay's background jobs.
type Workers struct {
	Cleanup *CleanupWorker

	cfg config.Workers
}

func NewWorkers(repos *store.Repositories, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		Cleanup: NewCleanupWorker(repos.Security, logger),
		cfg:     cfg,
	}
}

// StartAll launches every background job.
func (w *Workers) StartAll(ctx context.Context) {
	w.Cleanup.Start(ctx, w.cfg.CleanupInterval)
}

// StopAll stops every background job and blocks until they have
// exited.
func (w *Workers) StopAll() {
	w.Cleanup.Stop()
}
