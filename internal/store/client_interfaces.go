package store

import (
	"context"

	"github.com/launcherlock/answer-relay/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// QueueRepository is the agent's durable retry queue: an ordered,
// persistent store of undelivered submissions with retry bookkeeping.
// There is deliberately no uniqueness constraint beyond the primary
// key — duplicate payloads sharing an idempotency key may coexist; the
// relay deduplicates, not the queue.
type QueueRepository interface {
	// Insert appends a new queue row and returns its assigned id.
	Insert(ctx context.Context, item models.PendingSubmission) (int64, error)

	// FindReady returns rows whose next retry time has passed, oldest
	// id first, at most limit rows.
	FindReady(ctx context.Context, nowMillis int64, limit int) ([]models.PendingSubmission, error)

	// Update rewrites a row's retry bookkeeping in place.
	Update(ctx context.Context, item models.PendingSubmission) error

	// Delete removes a row by id.
	Delete(ctx context.Context, id int64) error
}

// PrefsRepository is the agent's durable string key/value store
// (relay base URL, generated device id, and similar settings).
type PrefsRepository interface {
	// Get returns the stored value for key, or "" when unset.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value string) error
}

// ClientStorages aggregates the agent's local repositories.
type ClientStorages struct {
	Queue QueueRepository
	Prefs PrefsRepository
}
