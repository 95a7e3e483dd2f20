package adapter

import "errors"

var (
	// ErrUnauthorized is returned on HTTP 401: the signature did not
	// verify, the nonce was replayed, or the device key is unknown.
	ErrUnauthorized = errors.New("request unauthorized")

	// ErrKeyConflict is returned on HTTP 409: the server already holds
	// a different public key for this device.
	ErrKeyConflict = errors.New("device key conflict")

	// ErrRateLimited is returned on HTTP 429.
	ErrRateLimited = errors.New("rate limited")

	// ErrRejected is returned on other 4xx statuses: the server
	// permanently refused the request and retrying the same bytes
	// cannot succeed.
	ErrRejected = errors.New("request rejected")
)
