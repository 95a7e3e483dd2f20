package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launcherlock/answer-relay/internal/signature"
)

func testKeystore(t *testing.T) (Signer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "device-signing.key")
	return NewFileKeystore(path, "passphrase"), path
}

func TestEnsureKeyPairCreatesFile(t *testing.T) {
	signer, path := testKeystore(t)

	require.NoError(t, signer.EnsureKeyPair())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnsureKeyPairIdempotent(t *testing.T) {
	signer, _ := testKeystore(t)

	require.NoError(t, signer.EnsureKeyPair())
	firstPEM, err := signer.PublicKeyPEM()
	require.NoError(t, err)

	require.NoError(t, signer.EnsureKeyPair())
	secondPEM, err := signer.PublicKeyPEM()
	require.NoError(t, err)

	assert.Equal(t, firstPEM, secondPEM)
}

func TestKeyPairSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device-signing.key")

	first := NewFileKeystore(path, "passphrase")
	require.NoError(t, first.EnsureKeyPair())
	firstPEM, err := first.PublicKeyPEM()
	require.NoError(t, err)

	// a fresh instance over the same file must load the same pair
	second := NewFileKeystore(path, "passphrase")
	secondPEM, err := second.PublicKeyPEM()
	require.NoError(t, err)

	assert.Equal(t, firstPEM, secondPEM)
}

func TestWrongPassphraseFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device-signing.key")

	first := NewFileKeystore(path, "correct")
	require.NoError(t, first.EnsureKeyPair())

	second := NewFileKeystore(path, "wrong")
	err := second.EnsureKeyPair()
	assert.ErrorIs(t, err, ErrKeystoreUnavailable)
}

func TestSignVerifiesAgainstExportedKey(t *testing.T) {
	signer, _ := testKeystore(t)

	pemText, err := signer.PublicKeyPEM()
	require.NoError(t, err)

	body := []byte(`{"deviceId":"dev-1"}`)
	canonical := signature.Canonical("dev-1", 1700000000, signer.Nonce(), body)

	sig, err := signer.Sign(canonical)
	require.NoError(t, err)

	assert.NoError(t, signature.Verify(pemText, canonical, sig))
	assert.ErrorIs(t, signature.Verify(pemText, canonical+"x", sig), signature.ErrInvalidSignature)
}

func TestNonceEntropy(t *testing.T) {
	signer, _ := testKeystore(t)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		n := signer.Nonce()
		// 16 bytes hex-encoded
		assert.Len(t, n, 32)
		_, dup := seen[n]
		assert.False(t, dup, "nonce repeated")
		seen[n] = struct{}{}
	}
}

func TestCorruptKeystoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device-signing.key")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	signer := NewFileKeystore(path, "passphrase")
	assert.ErrorIs(t, signer.EnsureKeyPair(), ErrKeystoreUnavailable)
}
