package http

import (
	"net/http"

	"github.com/launcherlock/answer-relay/internal/service"
)

// Authentication headers of the signed-request protocol.
const (
	headerDeviceID    = "X-Device-Id"
	headerTimestamp   = "X-Timestamp"
	headerNonce       = "X-Nonce"
	headerSignature   = "X-Signature"
	headerAppToken    = "X-App-Token"
	headerAuthVersion = "X-Auth-Version"
)

func signedHeaders(r *http.Request) service.SignedHeaders {
	return service.SignedHeaders{
		DeviceID:  r.Header.Get(headerDeviceID),
		Timestamp: r.Header.Get(headerTimestamp),
		Nonce:     r.Header.Get(headerNonce),
		Signature: r.Header.Get(headerSignature),
	}
}
