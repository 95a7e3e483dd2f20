package signature

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"strings"
)

var (
	// ErrInvalidPublicKey is returned when a PEM block cannot be parsed
	// into an ECDSA public key.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidSignature is returned when a signature does not verify
	// against the canonical string and public key, or is not valid
	// base64-encoded DER.
	ErrInvalidSignature = errors.New("invalid signature")
)

// publicKeyMarker is the PEM header every registered key must carry.
const publicKeyMarker = "-----BEGIN PUBLIC KEY-----"

// HasPublicKeyMarker reports whether s looks like a PEM public key.
// Registration payload validation uses it as a cheap shape check before
// full parsing.
func HasPublicKeyMarker(s string) bool {
	return strings.Contains(s, publicKeyMarker)
}

// ParsePublicKeyPEM decodes a PEM-wrapped SPKI block into an ECDSA
// public key. Keys of any other algorithm are rejected.
func ParsePublicKeyPEM(pemText string) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, ErrInvalidPublicKey
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}

	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, ErrInvalidPublicKey
	}

	return key, nil
}

// Verify checks signatureBase64 (base64-encoded ASN.1 DER, the encoding
// produced by SHA256withECDSA signers) over canonical using the given
// PEM public key. It returns nil on success, ErrInvalidPublicKey if the
// key cannot be parsed, and ErrInvalidSignature otherwise.
func Verify(publicKeyPEM string, canonical string, signatureBase64 string) error {
	key, err := ParsePublicKeyPEM(publicKeyPEM)
	if err != nil {
		return err
	}

	der, err := base64.StdEncoding.DecodeString(strings.TrimSpace(signatureBase64))
	if err != nil || len(der) == 0 {
		return ErrInvalidSignature
	}

	digest := sha256.Sum256([]byte(canonical))
	if !ecdsa.VerifyASN1(key, digest[:], der) {
		return ErrInvalidSignature
	}

	return nil
}
