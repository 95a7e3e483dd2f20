package http

import (
	"errors"
	"net/http"

	"github.com/launcherlock/answer-relay/internal/service"
	"github.com/launcherlock/answer-relay/internal/signature"
)

var errorStatusMap = map[error]int{
	service.ErrMissingDeviceID:  http.StatusBadRequest,
	service.ErrMissingNonce:     http.StatusBadRequest,
	service.ErrMissingSignature: http.StatusBadRequest,
	service.ErrInvalidTimestamp: http.StatusBadRequest,
	service.ErrInvalidPayload:   http.StatusBadRequest,
	service.ErrDeviceIDMismatch: http.StatusBadRequest,

	service.ErrTimestampOutOfRange: http.StatusUnauthorized,
	service.ErrReplayedNonce:       http.StatusUnauthorized,
	service.ErrInvalidSignature:    http.StatusUnauthorized,
	service.ErrUnknownDeviceKey:    http.StatusUnauthorized,

	service.ErrDeviceKeyConflict: http.StatusConflict,

	service.ErrDispatchFailed: http.StatusInternalServerError,

	signature.ErrInvalidPublicKey: http.StatusBadRequest,

	errMissingCredentials: http.StatusUnauthorized,
	errInvalidAppToken:    http.StatusUnauthorized,
}

// statusFromError maps sentinel errors to HTTP statuses. Anything
// unrecognized (storage failures included) collapses to a generic 500
// so internal detail never reaches the wire.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError is the client-facing rejection reason. Only the
// sentinel text crosses the wire — wrapped detail stays in the logs —
// except for payload validation, whose field-specific messages are
// meant for the caller.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrInvalidPayload) {
		return err.Error()
	}
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "internal error"
}
