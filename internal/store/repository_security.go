package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/models"
)

// Partition-key prefixes separating the three record kinds stored in
// the security_records table.
const (
	devicePrefix      = "DEVICE#"
	noncePrefix       = "NONCE#"
	idempotencyPrefix = "IDEMPOTENCY#"
)

// securityRepository is the PostgreSQL-backed implementation of
// [SecurityRepository]. It handles device trust anchors and the
// replay/idempotency reservations against the "security_records" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext]
// for structured, request-level tracing of database interactions.
type securityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSecurityRepository constructs a [SecurityRepository] backed by the
// provided database connection and logger.
func NewSecurityRepository(db *DB, logger *logger.Logger) SecurityRepository {
	logger.Debug().Msg("creating security repository")
	return &securityRepository{
		db:     db,
		logger: logger,
	}
}

// GetDeviceKey implements [SecurityRepository].
func (r *securityRepository) GetDeviceKey(ctx context.Context, deviceID string) (models.DeviceKeyRecord, error) {
	log := logger.FromContext(ctx)

	var record models.DeviceKeyRecord
	row := r.db.QueryRowContext(ctx, getDeviceKey, devicePrefix+deviceID)
	if err := row.Scan(&record.DeviceID, &record.PublicKeyPEM, &record.KeyAlgorithm, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DeviceKeyRecord{}, ErrDeviceKeyNotFound
		}
		log.Err(err).Str("func", "*securityRepository.GetDeviceKey").Msg("error: scanning error")
		return models.DeviceKeyRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// CreateDeviceKey implements [SecurityRepository]. Device key records
// are write-once: a unique violation on (pk, sk) maps to
// [ErrDeviceKeyExists] and the stored key is left untouched.
func (r *securityRepository) CreateDeviceKey(ctx context.Context, record models.DeviceKeyRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createDeviceKey,
		devicePrefix+record.DeviceID,
		record.DeviceID,
		record.PublicKeyPEM,
		record.KeyAlgorithm,
	)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrDeviceKeyExists
		default:
			log.Err(err).Str("func", "*securityRepository.CreateDeviceKey").Msg("error creating device key")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// ReserveNonce implements [SecurityRepository].
func (r *securityRepository) ReserveNonce(ctx context.Context, deviceID string, nonce string, ttl time.Duration) error {
	claimed, err := r.reserve(ctx, noncePrefix+deviceID, nonce, deviceID, ttl)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrAlreadyReserved
	}

	return nil
}

// ReserveIdempotencyKey implements [SecurityRepository]. When the slot
// is already held by a live reservation, the dispatched flag decides
// whether the duplicate is a true dedup hit or a retry of an attempt
// that died before its mail went out.
func (r *securityRepository) ReserveIdempotencyKey(ctx context.Context, deviceID string, key string, ttl time.Duration) (IdempotencyOutcome, error) {
	log := logger.FromContext(ctx)

	pk := idempotencyPrefix + deviceID
	claimed, err := r.reserve(ctx, pk, key, deviceID, ttl)
	if err != nil {
		return IdempotencyReserved, err
	}
	if claimed {
		return IdempotencyReserved, nil
	}

	var dispatched bool
	row := r.db.QueryRowContext(ctx, getDispatched, pk, key)
	if err = row.Scan(&dispatched); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// reservation vanished between the claim and the read
			// (expired and swept); treat as a retryable storage error
			return IdempotencyReserved, fmt.Errorf("unexpected DB error: %w", err)
		}
		log.Err(err).Str("func", "*securityRepository.ReserveIdempotencyKey").Msg("error reading dispatched flag")
		return IdempotencyReserved, fmt.Errorf("unexpected DB error: %w", err)
	}

	if dispatched {
		return IdempotencyDuplicateDispatched, nil
	}
	return IdempotencyDuplicatePending, nil
}

// MarkDispatched implements [SecurityRepository].
func (r *securityRepository) MarkDispatched(ctx context.Context, deviceID string, key string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, markDispatched, idempotencyPrefix+deviceID, key); err != nil {
		log.Err(err).Str("func", "*securityRepository.MarkDispatched").Msg("error marking dispatched")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteExpired implements [SecurityRepository].
func (r *securityRepository) DeleteExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteExpired)
	if err != nil {
		log.Err(err).Str("func", "*securityRepository.DeleteExpired").Msg("error deleting expired records")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// reserve runs the conditional insert shared by nonce and idempotency
// reservations. It reports whether this call claimed the slot.
func (r *securityRepository) reserve(ctx context.Context, pk string, sk string, deviceID string, ttl time.Duration) (bool, error) {
	log := logger.FromContext(ctx)

	expiresAt := time.Now().UTC().Add(ttl)
	res, err := r.db.ExecContext(ctx, reserveRecord, pk, sk, deviceID, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*securityRepository.reserve").Str("pk", pk).Msg("error reserving record")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected > 0, nil
}
