package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/launcherlock/answer-relay/internal/crypto"
	"github.com/launcherlock/answer-relay/internal/signature"
	"github.com/launcherlock/answer-relay/models"
)

type HTTPClientConfig struct {
	BaseURL  string
	AppToken string
	Timeout  time.Duration
}

type httpServerAdapter struct {
	client   *resty.Client
	signer   crypto.Signer
	deviceID string
	appToken string

	now func() time.Time
}

// NewHTTPServerAdapter creates a ServerAdapter that signs every
// request with the device's private key.
func NewHTTPServerAdapter(cfg HTTPClientConfig, signer crypto.Signer, deviceID string) ServerAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(normalizeBaseURL(cfg.BaseURL)).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{
		client:   cli,
		signer:   signer,
		deviceID: deviceID,
		appToken: strings.TrimSpace(cfg.AppToken),
		now:      time.Now,
	}
}

func (h *httpServerAdapter) RegisterDeviceKey(ctx context.Context, registration models.DeviceKeyRegistration) error {
	body, err := json.Marshal(registration)
	if err != nil {
		return fmt.Errorf("encode registration: %w", err)
	}

	resp, err := h.signedRequest(ctx, body)
	if err != nil {
		return err
	}
	rawResp, err := resp.Post("/register-device-key")
	if err != nil {
		return fmt.Errorf("register device key request: %w", err)
	}
	if err = mapHTTPError(rawResp); err != nil {
		return err
	}

	return checkAccepted(rawResp)
}

func (h *httpServerAdapter) SubmitAnswers(ctx context.Context, rawPayload []byte) (bool, error) {
	resp, err := h.signedRequest(ctx, rawPayload)
	if err != nil {
		return false, err
	}
	rawResp, err := resp.Post("/submit-answers")
	if err != nil {
		return false, fmt.Errorf("submit answers request: %w", err)
	}
	if err = mapHTTPError(rawResp); err != nil {
		return false, err
	}

	var api models.APIResponse
	if err = json.Unmarshal(rawResp.Body(), &api); err != nil {
		return false, fmt.Errorf("decode submit response: %w", err)
	}
	if !api.Accepted() {
		return false, fmt.Errorf("%w: %s", ErrRejected, api.Message)
	}

	return api.Deduplicated, nil
}

// signedRequest builds a request carrying the v2 authentication
// headers over exactly the given body bytes. The body is set on the
// request as a byte slice so resty transmits it unmodified.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body []byte) (*resty.Request, error) {
	timestamp := h.now().Unix()
	nonce := h.signer.Nonce()

	canonical := signature.Canonical(h.deviceID, timestamp, nonce, body)
	signed, err := h.signer.Sign(canonical)
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Device-Id", h.deviceID).
		SetHeader("X-Timestamp", strconv.FormatInt(timestamp, 10)).
		SetHeader("X-Nonce", nonce).
		SetHeader("X-Signature", signed).
		SetHeader("X-Auth-Version", "v2").
		SetBody(body)

	if h.appToken != "" {
		req.SetHeader("X-App-Token", h.appToken)
	}

	return req, nil
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrKeyConflict, body)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, body)
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrRejected, code, body)
	default:
		return fmt.Errorf("http %d: %s", code, body)
	}
}

func checkAccepted(resp *resty.Response) error {
	var api models.APIResponse
	if err := json.Unmarshal(resp.Body(), &api); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !api.Accepted() {
		return fmt.Errorf("%w: %s", ErrRejected, api.Message)
	}
	return nil
}

func normalizeBaseURL(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = "http://localhost:8080"
	}
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}
	return strings.TrimRight(addr, "/")
}
