package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/launcherlock/answer-relay/internal/logger"
	"github.com/launcherlock/answer-relay/internal/signature"
	"github.com/launcherlock/answer-relay/internal/store"
	"github.com/launcherlock/answer-relay/models"
)

// authGateService is the storage-backed implementation of
// [AuthGateService].
type authGateService struct {
	security store.SecurityRepository

	skewWindow time.Duration
	nonceTTL   time.Duration

	// now is swappable for tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthGateService constructs an [AuthGateService] enforcing the
// given timestamp freshness window and nonce reservation TTL.
func NewAuthGateService(security store.SecurityRepository, skewWindow, nonceTTL time.Duration, logger *logger.Logger) AuthGateService {
	logger.Debug().Dur("skew_window", skewWindow).Dur("nonce_ttl", nonceTTL).Msg("creating auth gate service")
	return &authGateService{
		security:   security,
		skewWindow: skewWindow,
		nonceTTL:   nonceTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// AuthorizeRegistration implements [AuthGateService].
//
// Order matters: the nonce is reserved before the signature is checked,
// so even a request that fails verification burns its nonce — an
// attacker cannot probe signatures with a captured nonce.
func (s *authGateService) AuthorizeRegistration(ctx context.Context, hdr SignedHeaders, rawBody []byte, reg models.DeviceKeyRegistration) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(reg.DeviceID) == "" {
		return fmt.Errorf("%w: deviceId is required", ErrInvalidPayload)
	}
	if !signature.HasPublicKeyMarker(reg.PublicKeyPEM) {
		return fmt.Errorf("%w: publicKeyPem is required", ErrInvalidPayload)
	}

	ts, err := s.validateHeaders(hdr)
	if err != nil {
		return err
	}

	if strings.TrimSpace(hdr.DeviceID) != strings.TrimSpace(reg.DeviceID) {
		return ErrDeviceIDMismatch
	}

	if err = s.reserveNonce(ctx, hdr); err != nil {
		return err
	}

	// self-signed proof of possession: the registrant must sign with
	// the private half of the key it is asserting
	canonical := signature.Canonical(hdr.DeviceID, ts, hdr.Nonce, rawBody)
	if err = signature.Verify(reg.PublicKeyPEM, canonical, hdr.Signature); err != nil {
		log.Warn().Str("device_id", hdr.DeviceID).Msg("registration signature rejected")
		return ErrInvalidSignature
	}

	return s.storeKeyOnce(ctx, reg)
}

// AuthorizeSubmission implements [AuthGateService].
func (s *authGateService) AuthorizeSubmission(ctx context.Context, hdr SignedHeaders, rawBody []byte, payloadDeviceID string) error {
	log := logger.FromContext(ctx)

	ts, err := s.validateHeaders(hdr)
	if err != nil {
		return err
	}

	record, err := s.security.GetDeviceKey(ctx, strings.TrimSpace(hdr.DeviceID))
	if err != nil {
		if errors.Is(err, store.ErrDeviceKeyNotFound) {
			return ErrUnknownDeviceKey
		}
		return fmt.Errorf("lookup device key: %w", err)
	}

	if err = s.reserveNonce(ctx, hdr); err != nil {
		return err
	}

	canonical := signature.Canonical(hdr.DeviceID, ts, hdr.Nonce, rawBody)
	if err = signature.Verify(record.PublicKeyPEM, canonical, hdr.Signature); err != nil {
		log.Warn().Str("device_id", hdr.DeviceID).Msg("submission signature rejected")
		return ErrInvalidSignature
	}

	if strings.TrimSpace(hdr.DeviceID) != strings.TrimSpace(payloadDeviceID) {
		return ErrDeviceIDMismatch
	}

	return nil
}

// validateHeaders checks presence and shape of the signature headers
// and returns the parsed timestamp. The timestamp must be a decimal
// string of Unix seconds within the skew window of the server clock.
func (s *authGateService) validateHeaders(hdr SignedHeaders) (int64, error) {
	if strings.TrimSpace(hdr.DeviceID) == "" {
		return 0, ErrMissingDeviceID
	}
	if strings.TrimSpace(hdr.Nonce) == "" {
		return 0, ErrMissingNonce
	}
	if strings.TrimSpace(hdr.Signature) == "" {
		return 0, ErrMissingSignature
	}

	raw := strings.TrimSpace(hdr.Timestamp)
	if raw == "" || !isDecimal(raw) {
		return 0, ErrInvalidTimestamp
	}

	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidTimestamp
	}

	nowSec := s.now().Unix()
	diff := nowSec - ts
	if diff < 0 {
		diff = -diff
	}
	if diff > int64(s.skewWindow/time.Second) {
		return 0, ErrTimestampOutOfRange
	}

	return ts, nil
}

func (s *authGateService) reserveNonce(ctx context.Context, hdr SignedHeaders) error {
	err := s.security.ReserveNonce(ctx, strings.TrimSpace(hdr.DeviceID), strings.TrimSpace(hdr.Nonce), s.nonceTTL)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyReserved) {
			return ErrReplayedNonce
		}
		return fmt.Errorf("reserve nonce: %w", err)
	}

	return nil
}

// storeKeyOnce applies the write-once registration rule: first key
// wins, an identical re-registration is an idempotent success, a
// different key is a conflict.
func (s *authGateService) storeKeyOnce(ctx context.Context, reg models.DeviceKeyRegistration) error {
	log := logger.FromContext(ctx)

	deviceID := strings.TrimSpace(reg.DeviceID)
	algorithm := strings.TrimSpace(reg.KeyAlgorithm)
	if algorithm == "" {
		algorithm = models.KeyAlgorithmECDSAP256
	}

	record := models.DeviceKeyRecord{
		DeviceID:     deviceID,
		PublicKeyPEM: reg.PublicKeyPEM,
		KeyAlgorithm: algorithm,
	}

	err := s.security.CreateDeviceKey(ctx, record)
	if err == nil {
		log.Info().Str("device_id", deviceID).Msg("device key registered")
		return nil
	}
	if !errors.Is(err, store.ErrDeviceKeyExists) {
		return fmt.Errorf("store device key: %w", err)
	}

	existing, err := s.security.GetDeviceKey(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("lookup existing device key: %w", err)
	}

	if samePEM(existing.PublicKeyPEM, reg.PublicKeyPEM) {
		// already registered with this exact key: idempotent success
		return nil
	}

	log.Warn().Str("device_id", deviceID).Msg("registration rejected: key differs from stored trust anchor")
	return ErrDeviceKeyConflict
}

func isDecimal(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// samePEM compares two PEM blocks ignoring surrounding whitespace and
// line-ending differences.
func samePEM(a, b string) bool {
	normalize := func(s string) string {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		return strings.TrimSpace(s)
	}
	return normalize(a) == normalize(b)
}
