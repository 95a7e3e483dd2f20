package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/launcherlock/answer-relay/models"
)

// countingFlusher records FlushQueue calls without touching a network.
type countingFlusher struct {
	flushes atomic.Int64
}

func (c *countingFlusher) RegisterKey(ctx context.Context) error { return nil }

func (c *countingFlusher) SubmitOrQueue(ctx context.Context, payload models.AnswerPayload) (SubmitResult, error) {
	return SubmitSuccess, nil
}

func (c *countingFlusher) FlushQueue(ctx context.Context) (int, error) {
	c.flushes.Add(1)
	return 0, nil
}

func TestClientFlushJob_FlushesOnTicker(t *testing.T) {
	flusher := &countingFlusher{}
	job := NewClientFlushJob(flusher)

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return flusher.flushes.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestClientFlushJob_StopHaltsFlushing(t *testing.T) {
	flusher := &countingFlusher{}
	job := NewClientFlushJob(flusher)

	job.Start(context.Background(), 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return flusher.flushes.Load() >= 1
	}, 2*time.Second, time.Millisecond)

	job.Stop()
	after := flusher.flushes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, flusher.flushes.Load(), "no flushes may run after Stop")
}

func TestClientFlushJob_StopWhenIdleIsNoOp(t *testing.T) {
	job := NewClientFlushJob(&countingFlusher{})
	job.Stop()
	job.Stop()
}

func TestClientFlushJob_RestartReplacesPreviousRun(t *testing.T) {
	flusher := &countingFlusher{}
	job := NewClientFlushJob(flusher)

	job.Start(context.Background(), 5*time.Millisecond)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return flusher.flushes.Load() >= 1
	}, 2*time.Second, time.Millisecond)
}

func TestClientFlushJob_ParentContextCancelStops(t *testing.T) {
	flusher := &countingFlusher{}
	job := NewClientFlushJob(flusher)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	after := flusher.flushes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, flusher.flushes.Load())

	job.Stop()
}
