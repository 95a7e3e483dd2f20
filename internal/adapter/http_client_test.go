package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launcherlock/answer-relay/internal/signature"
	"github.com/launcherlock/answer-relay/models"
)

// stubSigner emits fixed values so header assertions are exact.
type stubSigner struct {
	nonce     string
	signature string
	canonical string
}

func (s *stubSigner) EnsureKeyPair() error { return nil }

func (s *stubSigner) PublicKeyPEM() (string, error) { return "pem", nil }

func (s *stubSigner) Sign(canonical string) (string, error) {
	s.canonical = canonical
	return s.signature, nil
}

func (s *stubSigner) Nonce() string { return s.nonce }

func newTestAdapter(t *testing.T, serverURL string) (*httpServerAdapter, *stubSigner) {
	t.Helper()

	signer := &stubSigner{nonce: "nonce-x", signature: "sig-x"}
	a := NewHTTPServerAdapter(HTTPClientConfig{
		BaseURL:  serverURL,
		AppToken: "legacy-token",
		Timeout:  5 * time.Second,
	}, signer, "dev-1").(*httpServerAdapter)
	a.now = func() time.Time { return time.Unix(1700000000, 0) }

	return a, signer
}

func okBody() string {
	return `{"ok":true,"message":"answers submitted"}`
}

func TestSubmitAnswers_SignedHeaders(t *testing.T) {
	payload := []byte(`{"deviceId":"dev-1","to":"g@example.com"}`)

	var got *http.Request
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody()))
	}))
	defer srv.Close()

	a, signer := newTestAdapter(t, srv.URL)

	deduplicated, err := a.SubmitAnswers(context.Background(), payload)
	require.NoError(t, err)
	assert.False(t, deduplicated)

	require.NotNil(t, got)
	assert.Equal(t, "/submit-answers", got.URL.Path)
	assert.Equal(t, "dev-1", got.Header.Get("X-Device-Id"))
	assert.Equal(t, "1700000000", got.Header.Get("X-Timestamp"))
	assert.Equal(t, "nonce-x", got.Header.Get("X-Nonce"))
	assert.Equal(t, "sig-x", got.Header.Get("X-Signature"))
	assert.Equal(t, "v2", got.Header.Get("X-Auth-Version"))
	assert.Equal(t, "legacy-token", got.Header.Get("X-App-Token"))

	// the transmitted bytes are exactly the signed bytes
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, signature.Canonical("dev-1", 1700000000, "nonce-x", payload), signer.canonical)
}

func TestSubmitAnswers_Deduplicated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"message":"already delivered","deduplicated":true}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	deduplicated, err := a.SubmitAnswers(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.True(t, deduplicated)
}

func TestSubmitAnswers_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"ok":false,"message":"invalid signature"}`, wantErr: ErrUnauthorized},
		{name: "conflict", status: http.StatusConflict, body: `{"ok":false,"message":"device key already registered"}`, wantErr: ErrKeyConflict},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "Too Many Requests", wantErr: ErrRateLimited},
		{name: "bad request", status: http.StatusBadRequest, body: `{"ok":false,"message":"invalid payload"}`, wantErr: ErrRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a, _ := newTestAdapter(t, srv.URL)

			_, err := a.SubmitAnswers(context.Background(), []byte(`{}`))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitAnswers_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false,"message":"mail send failed"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	_, err := a.SubmitAnswers(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRejected)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestSubmitAnswers_RejectedByBody(t *testing.T) {
	// 200 with ok:false is still a rejection
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"message":"nope"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	_, err := a.SubmitAnswers(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSubmitAnswers_LegacyResponseWithoutOkField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"delivered"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)

	// an absent ok field counts as acceptance for older relay revisions
	_, err := a.SubmitAnswers(context.Background(), []byte(`{}`))
	assert.NoError(t, err)
}

func TestRegisterDeviceKey(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		var got models.DeviceKeyRegistration
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/register-device-key", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &got)
			_, _ = w.Write([]byte(`{"ok":true,"message":"device key registered"}`))
		}))
		defer srv.Close()

		a, _ := newTestAdapter(t, srv.URL)

		err := a.RegisterDeviceKey(context.Background(), models.DeviceKeyRegistration{
			DeviceID:     "dev-1",
			PublicKeyPEM: "pem",
			KeyAlgorithm: models.KeyAlgorithmECDSAP256,
		})
		require.NoError(t, err)
		assert.Equal(t, "dev-1", got.DeviceID)
	})

	t.Run("conflict", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"ok":false,"message":"device key already registered"}`))
		}))
		defer srv.Close()

		a, _ := newTestAdapter(t, srv.URL)

		err := a.RegisterDeviceKey(context.Background(), models.DeviceKeyRegistration{DeviceID: "dev-1"})
		assert.ErrorIs(t, err, ErrKeyConflict)
	})
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "http://localhost:8080"},
		{in: "relay.example.com:9090", want: "http://relay.example.com:9090"},
		{in: "https://relay.example.com/", want: "https://relay.example.com"},
		{in: "  http://relay.example.com  ", want: "http://relay.example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeBaseURL(tt.in), "input %q", tt.in)
	}
}

func TestSubmitAnswers_NetworkFailure(t *testing.T) {
	a, _ := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.SubmitAnswers(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRejected))
}
