package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/mock"
	"github.com/launcherlock/answer-relay/internal/store"
	"github.com/launcherlock/answer-relay/models"
)

const testIdempotencyTTL = 90 * 24 * time.Hour

func validPayload() models.AnswerPayload {
	return models.AnswerPayload{
		DeviceID:       "dev-1",
		To:             "guardian@example.com",
		AnsweredAt:     "2026-08-31T10:00:00Z",
		IdempotencyKey: "idem-1",
		Questions: []models.QuestionAnswer{
			{Q: "Who is your homeroom teacher?", A: "Ms. Harper"},
		},
	}
}

func newTestSubmissionSvc(t *testing.T, ctrl *gomock.Controller) (SubmissionService, *mock.MockSecurityRepository, *mock.MockMailer) {
	t.Helper()

	security := mock.NewMockSecurityRepository(ctrl)
	m := mock.NewMockMailer(ctrl)
	svc := NewSubmissionService(security, m, testIdempotencyTTL, logger.Nop())

	return svc, security, m
}

func TestSubmit_FirstDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, security, m := newTestSubmissionSvc(t, ctrl)
	payload := validPayload()

	gomock.InOrder(
		security.EXPECT().ReserveIdempotencyKey(gomock.Any(), "dev-1", "idem-1", testIdempotencyTTL).
			Return(store.IdempotencyReserved, nil),
		m.EXPECT().Send(gomock.Any(), "guardian@example.com", gomock.Any(), gomock.Any()).Return(nil),
		security.EXPECT().MarkDispatched(gomock.Any(), "dev-1", "idem-1").Return(nil),
	)

	deduplicated, err := svc.Submit(testContext(), payload)
	require.NoError(t, err)
	assert.False(t, deduplicated)
}

func TestSubmit_DuplicateDispatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, security, _ := newTestSubmissionSvc(t, ctrl)
	payload := validPayload()

	// dispatched duplicate short-circuits: no Send, no MarkDispatched
	security.EXPECT().ReserveIdempotencyKey(gomock.Any(), "dev-1", "idem-1", testIdempotencyTTL).
		Return(store.IdempotencyDuplicateDispatched, nil)

	deduplicated, err := svc.Submit(testContext(), payload)
	require.NoError(t, err)
	assert.True(t, deduplicated)
}

func TestSubmit_DuplicatePendingRedispatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, security, m := newTestSubmissionSvc(t, ctrl)
	payload := validPayload()

	// a duplicate whose earlier attempt died before mail went out is
	// allowed through
	gomock.InOrder(
		security.EXPECT().ReserveIdempotencyKey(gomock.Any(), "dev-1", "idem-1", testIdempotencyTTL).
			Return(store.IdempotencyDuplicatePending, nil),
		m.EXPECT().Send(gomock.Any(), "guardian@example.com", gomock.Any(), gomock.Any()).Return(nil),
		security.EXPECT().MarkDispatched(gomock.Any(), "dev-1", "idem-1").Return(nil),
	)

	deduplicated, err := svc.Submit(testContext(), payload)
	require.NoError(t, err)
	assert.False(t, deduplicated)
}

func TestSubmit_DispatchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, security, m := newTestSubmissionSvc(t, ctrl)
	payload := validPayload()

	gomock.InOrder(
		security.EXPECT().ReserveIdempotencyKey(gomock.Any(), "dev-1", "idem-1", testIdempotencyTTL).
			Return(store.IdempotencyReserved, nil),
		m.EXPECT().Send(gomock.Any(), "guardian@example.com", gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: connection refused")),
	)

	// MarkDispatched must not run: the key stays pending so a retry can
	// deliver
	_, err := svc.Submit(testContext(), payload)
	assert.ErrorIs(t, err, ErrDispatchFailed)
}

func TestSubmit_MarkDispatchedFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, security, m := newTestSubmissionSvc(t, ctrl)
	payload := validPayload()

	gomock.InOrder(
		security.EXPECT().ReserveIdempotencyKey(gomock.Any(), "dev-1", "idem-1", testIdempotencyTTL).
			Return(store.IdempotencyReserved, nil),
		m.EXPECT().Send(gomock.Any(), "guardian@example.com", gomock.Any(), gomock.Any()).Return(nil),
		security.EXPECT().MarkDispatched(gomock.Any(), "dev-1", "idem-1").Return(errors.New("db gone")),
	)

	// mail already went out: failing now would cause a duplicate send on
	// retry
	deduplicated, err := svc.Submit(testContext(), payload)
	require.NoError(t, err)
	assert.False(t, deduplicated)
}

func TestSubmit_BlankKeySkipsReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, m := newTestSubmissionSvc(t, ctrl)
	payload := validPayload()
	payload.IdempotencyKey = "  "

	m.EXPECT().Send(gomock.Any(), "guardian@example.com", gomock.Any(), gomock.Any()).Return(nil)

	deduplicated, err := svc.Submit(testContext(), payload)
	require.NoError(t, err)
	assert.False(t, deduplicated)
}

func TestSubmit_ReservationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, security, _ := newTestSubmissionSvc(t, ctrl)
	payload := validPayload()

	security.EXPECT().ReserveIdempotencyKey(gomock.Any(), "dev-1", "idem-1", testIdempotencyTTL).
		Return(store.IdempotencyOutcome(0), errors.New("db gone"))

	_, err := svc.Submit(testContext(), payload)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDispatchFailed)
}

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.AnswerPayload)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *models.AnswerPayload) {}},
		{name: "blank device id", mutate: func(p *models.AnswerPayload) { p.DeviceID = " " }, wantErr: true},
		{name: "blank answeredAt", mutate: func(p *models.AnswerPayload) { p.AnsweredAt = "" }, wantErr: true},
		{name: "no questions", mutate: func(p *models.AnswerPayload) { p.Questions = nil }, wantErr: true},
		{name: "blank recipient", mutate: func(p *models.AnswerPayload) { p.To = "" }, wantErr: true},
		{name: "unparsable recipient", mutate: func(p *models.AnswerPayload) { p.To = "not an address" }, wantErr: true},
		{
			name:    "blank question text",
			mutate:  func(p *models.AnswerPayload) { p.Questions[0].Q = "" },
			wantErr: true,
		},
		{
			name:    "blank answer text",
			mutate:  func(p *models.AnswerPayload) { p.Questions[0].A = "  " },
			wantErr: true,
		},
		{
			name:   "missing idempotency key is allowed",
			mutate: func(p *models.AnswerPayload) { p.IdempotencyKey = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			err := ValidatePayload(payload)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPayload)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
