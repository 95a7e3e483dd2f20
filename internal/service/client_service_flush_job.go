package service

import (
	"context"
	"sync"
	"time"
)

type clientFlushJob struct {
	submissionService ClientSubmissionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientFlushJob creates a clientFlushJob that drains the retry
// queue on a ticker. The job is idle until Start is called.
func NewClientFlushJob(submissionService ClientSubmissionService) ClientFlushJob {
	return &clientFlushJob{submissionService: submissionService}
}

// Start implements ClientFlushJob. It stops any previously running job,
// then launches a background goroutine that calls FlushQueue every
// interval. If interval is zero or negative it defaults to 15 minutes.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientFlushJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.submissionService.FlushQueue(jobCtx)
			}
		}
	}()
}

// Stop implements ClientFlushJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running (no-op in that case).
func (j *clientFlushJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
