package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/mailer"
	"github.com/launcherlock/answer-relay/internal/store"
	"github.com/launcherlock/answer-relay/models"
)

// submissionService is the default implementation of
// [SubmissionService].
type submissionService struct {
	security store.SecurityRepository
	mailer   mailer.Mailer

	idempotencyTTL time.Duration

	logger *logger.Logger
}

// NewSubmissionService constructs a [SubmissionService] reserving
// idempotency keys for the given TTL.
func NewSubmissionService(security store.SecurityRepository, m mailer.Mailer, idempotencyTTL time.Duration, logger *logger.Logger) SubmissionService {
	logger.Debug().Dur("idempotency_ttl", idempotencyTTL).Msg("creating submission service")
	return &submissionService{
		security:       security,
		mailer:         m,
		idempotencyTTL: idempotencyTTL,
		logger:         logger,
	}
}

// Submit implements [SubmissionService].
//
// The idempotency reservation happens before dispatch, and the
// reservation carries a dispatched flag set only after mail goes out.
// A duplicate key whose flag is unset is a retry of an attempt that
// died mid-dispatch and is allowed through; a duplicate whose flag is
// set short-circuits without re-sending mail.
func (s *submissionService) Submit(ctx context.Context, payload models.AnswerPayload) (bool, error) {
	log := logger.FromContext(ctx)

	if err := ValidatePayload(payload); err != nil {
		return false, err
	}

	key := strings.TrimSpace(payload.IdempotencyKey)
	if key != "" {
		outcome, err := s.security.ReserveIdempotencyKey(ctx, payload.DeviceID, key, s.idempotencyTTL)
		if err != nil {
			return false, fmt.Errorf("reserve idempotency key: %w", err)
		}

		if outcome == store.IdempotencyDuplicateDispatched {
			log.Info().Str("device_id", payload.DeviceID).Str("idempotency_key", key).Msg("duplicate submission deduplicated")
			return true, nil
		}
		if outcome == store.IdempotencyDuplicatePending {
			log.Warn().Str("device_id", payload.DeviceID).Str("idempotency_key", key).Msg("retrying submission whose dispatch never completed")
		}
	}

	if err := s.dispatch(ctx, payload); err != nil {
		return false, err
	}

	if key != "" {
		if err := s.security.MarkDispatched(ctx, payload.DeviceID, key); err != nil {
			// mail already went out; failing the request now would
			// trigger a client retry and a duplicate mail, so only log
			log.Err(err).Str("device_id", payload.DeviceID).Msg("failed to mark idempotency key dispatched")
		}
	}

	return false, nil
}

func (s *submissionService) dispatch(ctx context.Context, payload models.AnswerPayload) error {
	log := logger.FromContext(ctx)

	subject := mailer.Subject(payload.DeviceID)
	body := mailer.BuildMailText(payload)

	if err := s.mailer.Send(ctx, payload.To, subject, body); err != nil {
		log.Err(err).Str("device_id", payload.DeviceID).Msg("guardian mail dispatch failed")
		return fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	return nil
}

// ValidatePayload enforces the answer payload field rules. Messages
// are field-specific and wrapped in [ErrInvalidPayload].
func ValidatePayload(payload models.AnswerPayload) error {
	if strings.TrimSpace(payload.DeviceID) == "" {
		return fmt.Errorf("%w: deviceId is required", ErrInvalidPayload)
	}
	if strings.TrimSpace(payload.AnsweredAt) == "" {
		return fmt.Errorf("%w: answeredAt is required", ErrInvalidPayload)
	}
	if len(payload.Questions) == 0 {
		return fmt.Errorf("%w: questions must be a non-empty array", ErrInvalidPayload)
	}
	if strings.TrimSpace(payload.To) == "" {
		return fmt.Errorf("%w: to is required", ErrInvalidPayload)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(payload.To)); err != nil {
		return fmt.Errorf("%w: to is not a valid email address", ErrInvalidPayload)
	}

	for _, item := range payload.Questions {
		if strings.TrimSpace(item.Q) == "" {
			return fmt.Errorf("%w: question text is required", ErrInvalidPayload)
		}
		if strings.TrimSpace(item.A) == "" {
			return fmt.Errorf("%w: answer text is required", ErrInvalidPayload)
		}
	}

	return nil
}
