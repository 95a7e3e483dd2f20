// Package signature implements the canonical-request construction and
// ECDSA verification shared by the device agent and the relay server.
//
// A signed request covers the canonical string
//
//	deviceId "\n" timestamp "\n" nonce "\n" hex(sha256(body))
//
// where body is the exact byte sequence transmitted, post-serialization.
// Both ends must build this string byte-identically: any re-serialization
// of the body (different JSON key order, added whitespace) breaks
// verification, so callers hash the outgoing/incoming bytes as-is.
package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// BodyHash returns the lowercase hex SHA-256 digest of body. A nil body
// hashes the same as an empty one.
func BodyHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// Canonical builds the signable string for one request attempt from the
// identity headers and the exact request body bytes.
func Canonical(deviceID string, timestamp int64, nonce string, body []byte) string {
	return strings.Join([]string{
		deviceID,
		strconv.FormatInt(timestamp, 10),
		nonce,
		BodyHash(body),
	}, "\n")
}
