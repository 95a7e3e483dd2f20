package workers

import (
	"context"
	"sync"
	"time"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/store"
)

// CleanupWorker periodically deletes expired nonce and idempotency
// records. Device keys carry no expiry and are never touched. The
// sweep is advisory: reservation correctness does not depend on it
// because expired rows are reclaimable in place, it only keeps the
// table from growing without bound.
type CleanupWorker struct {
	security store.SecurityRepository

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewCleanupWorker(security store.SecurityRepository, logger *logger.Logger) *CleanupWorker {
	return &CleanupWorker{security: security, logger: logger}
}

// Start launches the background sweep goroutine. It sweeps every
// interval, defaulting to 1 hour if interval is zero or negative. Any
// previously running worker is stopped before the new one begins.
func (c *CleanupWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	c.Stop()

	c.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				c.sweep(workerCtx)
			}
		}
	}()
}

// Stop signals the background goroutine to exit and blocks until it
// has fully exited. Safe to call when the worker is not running.
func (c *CleanupWorker) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

func (c *CleanupWorker) sweep(ctx context.Context) {
	deleted, err := c.security.DeleteExpired(ctx)
	if err != nil {
		c.logger.Err(err).Msg("expired record sweep failed")
		return
	}
	if deleted > 0 {
		c.logger.Info().Int64("deleted", deleted).Msg("swept expired security records")
	}
}
