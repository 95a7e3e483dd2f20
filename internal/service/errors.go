package service

import "errors"

// Rejection reasons produced by the authentication gate. The HTTP layer
// maps these to status codes and response messages; the texts are part
// of the wire contract (clients and tests match on them).
var (
	ErrMissingDeviceID     = errors.New("missing device id")
	ErrMissingNonce        = errors.New("missing nonce")
	ErrMissingSignature    = errors.New("missing signature")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrTimestampOutOfRange = errors.New("timestamp out of allowed range")
	ErrDeviceIDMismatch    = errors.New("device id mismatch")
	ErrReplayedNonce       = errors.New("replayed nonce")
	ErrInvalidSignature    = errors.New("invalid signature")
	ErrUnknownDeviceKey    = errors.New("unknown device key")

	// ErrDeviceKeyConflict is terminal for the device identity:
	// registration is write-once and a differing key is never accepted.
	ErrDeviceKeyConflict = errors.New("device key already registered")
)

// Payload-level failures.
var (
	// ErrInvalidPayload wraps field-specific validation messages.
	// Validation failures are terminal: never queued, reported
	// immediately to the caller.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrDispatchFailed indicates guardian mail could not be sent. The
	// relay answers 500 and the device re-queues the submission.
	ErrDispatchFailed = errors.New("mail send failed")
)
