package store

import (
	"context"
	"time"

	"github.com/launcherlock/answer-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/security_repository_mock.go -package=mock

// IdempotencyOutcome is the result of a conditional idempotency-key
// reservation.
type IdempotencyOutcome int

const (
	// IdempotencyReserved means the key was free (or expired) and is
	// now reserved for this submission; the caller owns dispatch.
	IdempotencyReserved IdempotencyOutcome = iota

	// IdempotencyDuplicatePending means the key is reserved but mail
	// dispatch was never confirmed: the earlier attempt died between
	// reservation and dispatch. The caller should dispatch again.
	IdempotencyDuplicatePending

	// IdempotencyDuplicateDispatched means the key is reserved and the
	// mail was dispatched: this is a true duplicate to short-circuit.
	IdempotencyDuplicateDispatched
)

// SecurityRepository is the relay's single key-value trust store. Three
// record kinds share one table, distinguished by partition-key prefix:
// device public keys (write-once, no expiry), consumed nonces, and
// consumed idempotency keys (both expiring). Reservations rely on the
// database's own conditional-write semantics so that concurrent relay
// instances cannot double-reserve.
type SecurityRepository interface {
	// GetDeviceKey looks up the registered public key for deviceID.
	// Returns ErrDeviceKeyNotFound when the device has never registered.
	GetDeviceKey(ctx context.Context, deviceID string) (models.DeviceKeyRecord, error)

	// CreateDeviceKey records the device's public key. Returns
	// ErrDeviceKeyExists when any key record for deviceID already
	// exists; the existing record is never overwritten.
	CreateDeviceKey(ctx context.Context, record models.DeviceKeyRecord) error

	// ReserveNonce atomically inserts the (deviceID, nonce) reservation
	// with the given TTL. Returns ErrAlreadyReserved when a live
	// reservation exists — a replayed request.
	ReserveNonce(ctx context.Context, deviceID string, nonce string, ttl time.Duration) error

	// ReserveIdempotencyKey atomically reserves (deviceID, key) with
	// the given TTL and reports whether the slot was free, held by an
	// undispatched attempt, or held by a dispatched one.
	ReserveIdempotencyKey(ctx context.Context, deviceID string, key string, ttl time.Duration) (IdempotencyOutcome, error)

	// MarkDispatched flags the (deviceID, key) reservation as having
	// had its mail dispatched.
	MarkDispatched(ctx context.Context, deviceID string, key string) error

	// DeleteExpired removes expired nonce and idempotency records and
	// returns how many rows were deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}

// Repositories aggregates the relay's storage repositories.
type Repositories struct {
	Security SecurityRepository
}
