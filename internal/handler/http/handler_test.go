package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launcherlock/answer-relay/internal/config"
	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/service"
	"github.com/launcherlock/answer-relay/models"
)

// stubAuthGate returns canned errors so the handler's status mapping
// can be exercised without real keys.
type stubAuthGate struct {
	registrationErr error
	submissionErr   error
}

func (s *stubAuthGate) AuthorizeRegistration(ctx context.Context, hdr service.SignedHeaders, rawBody []byte, reg models.DeviceKeyRegistration) error {
	return s.registrationErr
}

func (s *stubAuthGate) AuthorizeSubmission(ctx context.Context, hdr service.SignedHeaders, rawBody []byte, payloadDeviceID string) error {
	return s.submissionErr
}

type stubSubmission struct {
	deduplicated bool
	err          error
	calls        int
}

func (s *stubSubmission) Submit(ctx context.Context, payload models.AnswerPayload) (bool, error) {
	s.calls++
	return s.deduplicated, s.err
}

type handlerFixture struct {
	router   http.Handler
	authGate *stubAuthGate
	submit   *stubSubmission
}

func newHandlerFixture(mutate func(cfg *config.StructuredConfig)) *handlerFixture {
	cfg := &config.StructuredConfig{}
	cfg.App.AppTokenCurrent = "current-token"
	cfg.App.AppTokenNext = "next-token"
	cfg.Server.RequestTimeout = 5 * time.Second

	if mutate != nil {
		mutate(cfg)
	}

	authGate := &stubAuthGate{}
	submit := &stubSubmission{}
	h := NewHandler(&service.Services{AuthGate: authGate, Submission: submit}, cfg, logger.Nop())

	return &handlerFixture{router: h.Init(), authGate: authGate, submit: submit}
}

func (f *handlerFixture) do(t *testing.T, method, path string, body []byte, headers map[string]string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec, resp
}

func signedHeaderSet() map[string]string {
	return map[string]string{
		headerDeviceID:  "dev-1",
		headerTimestamp: "1700000000",
		headerNonce:     "nonce-1",
		headerSignature: "c2ln",
	}
}

func registrationBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(models.DeviceKeyRegistration{
		DeviceID:     "dev-1",
		PublicKeyPEM: "-----BEGIN PUBLIC KEY-----\nx\n-----END PUBLIC KEY-----\n",
	})
	require.NoError(t, err)
	return body
}

func submissionBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(models.AnswerPayload{
		DeviceID:   "dev-1",
		To:         "guardian@example.com",
		AnsweredAt: "2026-08-31T10:00:00Z",
		Questions:  []models.QuestionAnswer{{Q: "q", A: "a"}},
	})
	require.NoError(t, err)
	return body
}

func TestRegisterDeviceKey(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		f := newHandlerFixture(nil)

		rec, resp := f.do(t, http.MethodPost, "/register-device-key", registrationBody(t), signedHeaderSet())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Accepted())
		assert.Equal(t, "device key registered", resp.Message)
	})

	t.Run("malformed json", func(t *testing.T) {
		f := newHandlerFixture(nil)

		rec, resp := f.do(t, http.MethodPost, "/register-device-key", []byte("{oops"), signedHeaderSet())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, resp.Accepted())
	})

	t.Run("status mapping", func(t *testing.T) {
		tests := []struct {
			name        string
			err         error
			wantStatus  int
			wantMessage string
		}{
			{name: "replay", err: service.ErrReplayedNonce, wantStatus: http.StatusUnauthorized, wantMessage: "replayed nonce"},
			{name: "bad signature", err: service.ErrInvalidSignature, wantStatus: http.StatusUnauthorized, wantMessage: "invalid signature"},
			{name: "stale timestamp", err: service.ErrTimestampOutOfRange, wantStatus: http.StatusUnauthorized, wantMessage: "timestamp out of allowed range"},
			{name: "missing nonce", err: service.ErrMissingNonce, wantStatus: http.StatusBadRequest, wantMessage: "missing nonce"},
			{name: "key conflict", err: service.ErrDeviceKeyConflict, wantStatus: http.StatusConflict, wantMessage: "device key already registered"},
			{name: "storage failure stays generic", err: context.DeadlineExceeded, wantStatus: http.StatusInternalServerError, wantMessage: "internal error"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newHandlerFixture(nil)
				f.authGate.registrationErr = tt.err

				rec, resp := f.do(t, http.MethodPost, "/register-device-key", registrationBody(t), signedHeaderSet())

				assert.Equal(t, tt.wantStatus, rec.Code)
				assert.False(t, resp.Accepted())
				assert.Equal(t, tt.wantMessage, resp.Message)
			})
		}
	})
}

func TestSubmitAnswers_Signed(t *testing.T) {
	t.Run("delivered", func(t *testing.T) {
		f := newHandlerFixture(nil)

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), signedHeaderSet())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Accepted())
		assert.False(t, resp.Deduplicated)
		assert.Equal(t, 1, f.submit.calls)
	})

	t.Run("deduplicated", func(t *testing.T) {
		f := newHandlerFixture(nil)
		f.submit.deduplicated = true

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), signedHeaderSet())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Accepted())
		assert.True(t, resp.Deduplicated)
	})

	t.Run("auth rejection skips dispatch", func(t *testing.T) {
		f := newHandlerFixture(nil)
		f.authGate.submissionErr = service.ErrUnknownDeviceKey

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), signedHeaderSet())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unknown device key", resp.Message)
		assert.Zero(t, f.submit.calls)
	})

	t.Run("dispatch failure", func(t *testing.T) {
		f := newHandlerFixture(nil)
		f.submit.err = service.ErrDispatchFailed

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), signedHeaderSet())

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "mail send failed", resp.Message)
	})

	t.Run("validation message reaches the caller", func(t *testing.T) {
		f := newHandlerFixture(nil)
		f.submit.err = service.ErrInvalidPayload

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), signedHeaderSet())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, resp.Message, "invalid payload")
	})
}

func TestSubmitAnswers_LegacyToken(t *testing.T) {
	t.Run("current token accepted", func(t *testing.T) {
		f := newHandlerFixture(nil)

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), map[string]string{
			headerAppToken: "current-token",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Accepted())
	})

	t.Run("next token accepted during rotation", func(t *testing.T) {
		f := newHandlerFixture(nil)

		rec, _ := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), map[string]string{
			headerAppToken: "next-token",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		f := newHandlerFixture(nil)

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), map[string]string{
			headerAppToken: "guessed-token",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid app token", resp.Message)
		assert.Zero(t, f.submit.calls)
	})

	t.Run("no credentials at all", func(t *testing.T) {
		f := newHandlerFixture(nil)

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "missing credentials", resp.Message)
	})

	t.Run("token path disabled when no tokens configured", func(t *testing.T) {
		f := newHandlerFixture(func(cfg *config.StructuredConfig) {
			cfg.App.AppTokenCurrent = ""
			cfg.App.AppTokenNext = ""
		})

		rec, _ := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), map[string]string{
			headerAppToken: "anything",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("signature takes precedence over token", func(t *testing.T) {
		f := newHandlerFixture(nil)
		f.authGate.submissionErr = service.ErrInvalidSignature

		headers := signedHeaderSet()
		headers[headerAppToken] = "current-token"

		rec, resp := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), headers)

		// a bad signature cannot fall back to the shared secret
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid signature", resp.Message)
	})
}

func TestRateLimit(t *testing.T) {
	f := newHandlerFixture(func(cfg *config.StructuredConfig) {
		cfg.Server.RateLimitPerMinute = 2
	})

	headers := map[string]string{headerAppToken: "current-token"}

	for i := 0; i < 2; i++ {
		rec, _ := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), headers)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/submit-answers", bytes.NewReader(submissionBody(t)))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_KeyedByDeviceID(t *testing.T) {
	f := newHandlerFixture(func(cfg *config.StructuredConfig) {
		cfg.Server.RateLimitPerMinute = 1
	})

	// distinct devices from the same IP get independent budgets
	for _, device := range []string{"dev-a", "dev-b", "dev-c"} {
		headers := map[string]string{
			headerAppToken: "current-token",
			headerDeviceID: device,
		}
		rec, _ := f.do(t, http.MethodPost, "/submit-answers", submissionBody(t), headers)
		assert.Equal(t, http.StatusOK, rec.Code, "device %s", device)
	}
}
