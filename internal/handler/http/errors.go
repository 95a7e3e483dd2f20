package http

import "errors"

// Sentinel errors of the legacy shared-secret authentication path.
// Callers can match against them with [errors.Is].
var (
	// errMissingCredentials is returned when a request carries neither
	// signature headers nor a usable `X-App-Token`.
	errMissingCredentials = errors.New("missing credentials")

	// errInvalidAppToken is returned when the presented `X-App-Token`
	// matches neither half of the configured rotation pair.
	errInvalidAppToken = errors.New("invalid app token")
)
