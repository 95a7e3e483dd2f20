package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/launcherlock/answer-relay/internal/adapter"
	"github.com/launcherlock/answer-relay/internal/crypto"
	"github.com/launcherlock/answer-relay/internal/identity"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/store"
	"github.com/launcherlock/answer-relay/models"
)

const (
	backoffBase     = 30 * time.Second
	backoffCeiling  = 6 * time.Hour
	backoffMaxShift = 8
)

type clientSubmissionService struct {
	queue         store.QueueRepository
	serverAdapter adapter.ServerAdapter
	signer        crypto.Signer
	identity      *identity.Provider

	flushBatchSize int
	now            func() time.Time

	logger *logger.Logger
}

// NewClientSubmissionService constructs a ClientSubmissionService
// backed by the local retry queue.
func NewClientSubmissionService(queue store.QueueRepository, serverAdapter adapter.ServerAdapter, signer crypto.Signer, identity *identity.Provider, flushBatchSize int, logger *logger.Logger) ClientSubmissionService {
	if flushBatchSize <= 0 {
		flushBatchSize = 20
	}

	return &clientSubmissionService{
		queue:          queue,
		serverAdapter:  serverAdapter,
		signer:         signer,
		identity:       identity,
		flushBatchSize: flushBatchSize,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *clientSubmissionService) RegisterKey(ctx context.Context) error {
	if err := s.signer.EnsureKeyPair(); err != nil {
		return fmt.Errorf("ensure key pair: %w", err)
	}

	publicKeyPEM, err := s.signer.PublicKeyPEM()
	if err != nil {
		return fmt.Errorf("export public key: %w", err)
	}

	deviceID, err := s.identity.DeviceID()
	if err != nil {
		return err
	}

	registration := models.DeviceKeyRegistration{
		DeviceID:     deviceID,
		PublicKeyPEM: publicKeyPEM,
		KeyAlgorithm: models.KeyAlgorithmECDSAP256,
	}

	if err = s.serverAdapter.RegisterDeviceKey(ctx, registration); err != nil {
		return fmt.Errorf("register device key: %w", err)
	}

	s.logger.Info().Str("device_id", deviceID).Msg("device key registered")
	return nil
}

// SubmitOrQueue implements ClientSubmissionService. The serialized
// bytes produced here are what gets signed, and on failure they are
// queued verbatim: a flush retry must transmit the same bytes so the
// body hash and idempotency key survive the round-trip.
func (s *clientSubmissionService) SubmitOrQueue(ctx context.Context, payload models.AnswerPayload) (SubmitResult, error) {
	deviceID, err := s.identity.DeviceID()
	if err != nil {
		return 0, err
	}

	if payload.DeviceID == "" {
		payload.DeviceID = deviceID
	}
	if payload.IdempotencyKey == "" {
		payload.IdempotencyKey = uuid.NewString()
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("encode payload: %w", err)
	}

	// the relay rejects a payload signed under a different identity;
	// queueing avoids losing the answers while the mismatch is sorted out
	if payload.DeviceID != deviceID {
		s.logger.Warn().Str("payload_device_id", payload.DeviceID).Str("device_id", deviceID).Msg("payload device id differs from local identity, queueing")
		return s.enqueue(ctx, raw, SubmitQueued)
	}

	if err = s.RegisterKey(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("key registration failed, queueing submission")
		if errors.Is(err, adapter.ErrRateLimited) {
			return s.enqueue(ctx, raw, SubmitQueuedRateLimited)
		}
		return s.enqueue(ctx, raw, SubmitQueued)
	}

	_, err = s.serverAdapter.SubmitAnswers(ctx, raw)
	if err == nil {
		return SubmitSuccess, nil
	}

	s.logger.Warn().Err(err).Str("device_id", deviceID).Msg("submission failed, queueing for retry")
	if errors.Is(err, adapter.ErrRateLimited) {
		return s.enqueue(ctx, raw, SubmitQueuedRateLimited)
	}
	return s.enqueue(ctx, raw, SubmitQueued)
}

func (s *clientSubmissionService) enqueue(ctx context.Context, raw []byte, result SubmitResult) (SubmitResult, error) {
	item := models.PendingSubmission{
		PayloadJSON:       string(raw),
		RetryCount:        0,
		NextRetryAtMillis: s.now().Add(Backoff(1)).UnixMilli(),
	}
	if _, err := s.queue.Insert(ctx, item); err != nil {
		return 0, fmt.Errorf("queue submission: %w", err)
	}
	return result, nil
}

func (s *clientSubmissionService) FlushQueue(ctx context.Context) (int, error) {
	items, err := s.queue.FindReady(ctx, s.now().UnixMilli(), s.flushBatchSize)
	if err != nil {
		return 0, fmt.Errorf("load retry queue: %w", err)
	}

	sent := 0
	for _, item := range items {
		if err = ctx.Err(); err != nil {
			return sent, err
		}

		var payload models.AnswerPayload
		if err = json.Unmarshal([]byte(item.PayloadJSON), &payload); err != nil {
			// poison row: redelivering bytes that never parse cannot succeed
			s.logger.Warn().Err(err).Int64("id", item.ID).Msg("dropping unparsable queued submission")
			if err = s.queue.Delete(ctx, item.ID); err != nil {
				return sent, fmt.Errorf("remove poison row %d: %w", item.ID, err)
			}
			continue
		}

		sendErr := s.RegisterKey(ctx)
		if sendErr == nil {
			_, sendErr = s.serverAdapter.SubmitAnswers(ctx, []byte(item.PayloadJSON))
		}

		if sendErr == nil {
			if err = s.queue.Delete(ctx, item.ID); err != nil {
				return sent, fmt.Errorf("remove delivered row %d: %w", item.ID, err)
			}
			sent++
			continue
		}

		item.RetryCount++
		item.NextRetryAtMillis = s.now().Add(Backoff(item.RetryCount)).UnixMilli()
		if err = s.queue.Update(ctx, item); err != nil {
			return sent, fmt.Errorf("reschedule row %d: %w", item.ID, err)
		}
		s.logger.Info().Err(sendErr).Int64("id", item.ID).Int("retry_count", item.RetryCount).Msg("submission rescheduled")
	}

	return sent, nil
}

// Backoff returns the delay before retry attempt n (1-based). The
// delay doubles from 30 seconds, stops doubling after 8 steps, and
// never exceeds 6 hours.
func Backoff(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	shift := n - 1
	if shift > backoffMaxShift {
		shift = backoffMaxShift
	}
	d := backoffBase << shift
	if d > backoffCeiling {
		d = backoffCeiling
	}
	return d
}
