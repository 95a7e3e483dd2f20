package service

import (
	"context"
	"time"

	"github.com/launcherlock/answer-relay/models"
)

// SubmitResult describes how the agent handled a submission attempt.
type SubmitResult int

const (
	// SubmitSuccess means the relay accepted the submission. Callers
	// clear the locked state only on this result.
	SubmitSuccess SubmitResult = iota

	// SubmitQueuedRateLimited means the relay rate-limited the attempt
	// and the payload was queued; callers should back off more
	// aggressively than for SubmitQueued.
	SubmitQueuedRateLimited

	// SubmitQueued means delivery failed and the payload was persisted
	// to the local retry queue.
	SubmitQueued
)

// ClientSubmissionService defines the agent-side contract for
// delivering answer payloads to the relay.
type ClientSubmissionService interface {
	// RegisterKey ensures the device has a signing key pair and
	// uploads the public key to the relay. Safe to call repeatedly:
	// re-registering the same key is idempotent on the server.
	RegisterKey(ctx context.Context) error

	// SubmitOrQueue attempts immediate delivery of payload: key
	// registration first, then the signed submission. A missing
	// payload device id is filled from the local identity; a missing
	// idempotency key is generated so that queued retries of this
	// logical submission reuse it. Every failure persists the exact
	// signed bytes to the local retry queue; the result reports
	// whether the failure was rate limiting.
	SubmitOrQueue(ctx context.Context, payload models.AnswerPayload) (SubmitResult, error)

	// FlushQueue redelivers queued submissions whose retry time has
	// arrived, oldest first, up to the configured batch size.
	// Unparsable rows are dropped; failed rows are rescheduled with
	// exponential backoff and retried indefinitely. Returns the number
	// of successfully delivered rows.
	FlushQueue(ctx context.Context) (int, error)
}

// ClientFlushJob defines the contract for a background worker that
// periodically drains the retry queue.
type ClientFlushJob interface {
	// Start launches the background flush goroutine. It flushes every
	// interval, defaulting to 15 minutes if interval is zero or
	// negative. Any previously running job is stopped before the new
	// one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until
	// it has fully terminated.
	Stop()
}
