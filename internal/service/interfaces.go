package service

import (
	"context"

	"github.com/launcherlock/answer-relay/models"
)

// SignedHeaders carries the signature headers of one inbound request,
// untrimmed and unparsed. Timestamp stays a string until the gate
// validates it: a non-numeric value is a rejection, not a parse panic.
type SignedHeaders struct {
	DeviceID  string
	Timestamp string
	Nonce     string
	Signature string
}

// AuthGateService is the relay's per-request authentication state
// machine. Each method returns nil for AUTHORIZED or one of this
// package's rejection sentinels; storage failures come back wrapped and
// must surface as a generic 500.
//
// Both methods verify the signature over the exact raw body bytes
// received — re-serializing the parsed payload would break the body
// hash.
type AuthGateService interface {
	// AuthorizeRegistration validates a self-signed device-key
	// registration: header shape, header/payload identity match, nonce
	// single-use, proof of possession against the asserted key, and
	// the write-once key store rule.
	AuthorizeRegistration(ctx context.Context, hdr SignedHeaders, rawBody []byte, reg models.DeviceKeyRegistration) error

	// AuthorizeSubmission validates a signed answer submission against
	// the device's registered key.
	AuthorizeSubmission(ctx context.Context, hdr SignedHeaders, rawBody []byte, payloadDeviceID string) error
}

// SubmissionService handles an authorized answer payload: shape
// validation, idempotency reservation, and guardian mail dispatch.
type SubmissionService interface {
	// Submit validates and dispatches payload. The returned flag is
	// true when an idempotency-key collision short-circuited dispatch:
	// the submission already succeeded earlier and no mail was sent.
	Submit(ctx context.Context, payload models.AnswerPayload) (deduplicated bool, err error)
}

// Services aggregates the relay's business services.
type Services struct {
	AuthGate   AuthGateService
	Submission SubmissionService
}
