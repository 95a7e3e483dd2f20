// Package crypto holds the device agent's signing capability: a P-256
// key pair generated on first use and kept encrypted at rest, never
// exported. The rest of the agent sees only the Signer interface —
// sign a canonical string, export the public half, mint nonces.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/signer_mock.go -package=mock

// Signer is the opaque signing capability the submission path depends
// on. Implementations stand in for whatever the platform offers as a
// secure key store; the file keystore in this package is the baseline
// for headless targets.
type Signer interface {
	// EnsureKeyPair generates and persists the device key pair on first
	// invocation and is a no-op afterwards. An unusable keystore is
	// unrecoverable for the device, so callers treat errors as fatal.
	EnsureKeyPair() error

	// PublicKeyPEM returns the PEM-wrapped SPKI encoding of the public
	// key, deterministic for a given key pair. It implies EnsureKeyPair.
	PublicKeyPEM() (string, error)

	// Sign returns the base64-encoded ECDSA-SHA256 signature over
	// canonical. The private key never leaves the keystore.
	Sign(canonical string) (string, error)

	// Nonce returns a cryptographically random single-use token with at
	// least 128 bits of entropy.
	Nonce() string
}
