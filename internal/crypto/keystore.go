package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
)

// ErrKeystoreUnavailable wraps any failure to read, decrypt, or write
// the keystore file. The device cannot sign without its keystore, so
// callers treat this as fatal for the current device identity.
var ErrKeystoreUnavailable = errors.New("keystore unavailable")

// fileKeystore is the file-backed implementation of [Signer]. The
// private key is stored as PKCS#8 DER sealed with AES-256-GCM under an
// Argon2id-derived key, in a 0600 file. The decrypted key is cached in
// memory after first load.
type fileKeystore struct {
	path       string
	passphrase string

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	mu  sync.Mutex
	key *ecdsa.PrivateKey
}

// keystoreFile is the on-disk JSON envelope around the sealed key.
type keystoreFile struct {
	Version    int    `json:"version"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// NewFileKeystore constructs a file-backed [Signer] storing its sealed
// key at path. The Argon2id parameters follow the OWASP (2024)
// recommendation: 1 iteration, 64 MiB, 4 threads, 256-bit key.
func NewFileKeystore(path string, passphrase string) Signer {
	return &fileKeystore{
		path:         path,
		passphrase:   passphrase,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// EnsureKeyPair implements [Signer]. It loads the existing key pair if
// the keystore file exists, otherwise generates a P-256 key pair, seals
// it, and writes the keystore file with 0600 permissions.
func (k *fileKeystore) EnsureKeyPair() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, err := k.ensureKeyLocked()
	return err
}

// PublicKeyPEM implements [Signer]. The output is the PEM-wrapped SPKI
// encoding of the public half, recomputed from the key pair on demand.
func (k *fileKeystore) PublicKeyPEM() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	key, err := k.ensureKeyLocked()
	if err != nil {
		return "", err
	}

	spki, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: encode public key: %w", ErrKeystoreUnavailable, err)
	}

	block := &pem.Block{Type: "PUBLIC KEY", Bytes: spki}
	return string(pem.EncodeToMemory(block)), nil
}

// Sign implements [Signer]. It signs SHA-256(canonical) with the device
// private key and returns the ASN.1 DER signature base64-encoded, the
// same wire format SHA256withECDSA signers produce.
func (k *fileKeystore) Sign(canonical string) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	key, err := k.ensureKeyLocked()
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256([]byte(canonical))
	der, err := ecdsa.SignASN1(rand.Reader, key, digest[:])
	if err != nil {
		return "", fmt.Errorf("sign canonical: %w", err)
	}

	return base64.StdEncoding.EncodeToString(der), nil
}

// Nonce implements [Signer]. 16 random bytes, hex-encoded: 128 bits of
// entropy, collision probability negligible at this system's volume.
func (k *fileKeystore) Nonce() string {
	buf := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		// rand.Reader failing means the platform CSPRNG is broken;
		// nothing sensible can be signed either, so panic early.
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}

func (k *fileKeystore) ensureKeyLocked() (*ecdsa.PrivateKey, error) {
	if k.key != nil {
		return k.key, nil
	}

	key, err := k.load()
	if err != nil {
		return nil, err
	}
	if key == nil {
		key, err = k.generate()
		if err != nil {
			return nil, err
		}
	}

	k.key = key
	return key, nil
}

// load reads and unseals the keystore file. A missing file is not an
// error: it returns (nil, nil) so the caller generates a fresh pair.
func (k *fileKeystore) load() (*ecdsa.PrivateKey, error) {
	raw, err := os.ReadFile(k.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read keystore: %w", ErrKeystoreUnavailable, err)
	}

	var file keystoreFile
	if err = json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: decode keystore: %w", ErrKeystoreUnavailable, err)
	}

	salt, err := base64.StdEncoding.DecodeString(file.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %w", ErrKeystoreUnavailable, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(file.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: decode nonce: %w", ErrKeystoreUnavailable, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(file.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode ciphertext: %w", ErrKeystoreUnavailable, err)
	}

	aead, err := k.aead(salt)
	if err != nil {
		return nil, err
	}

	der, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: unseal keystore: %w", ErrKeystoreUnavailable, err)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %w", ErrKeystoreUnavailable, err)
	}

	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: keystore holds a non-EC key", ErrKeystoreUnavailable)
	}

	return key, nil
}

func (k *fileKeystore) generate() (*ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: generate key pair: %w", ErrKeystoreUnavailable, err)
	}

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: encode private key: %w", ErrKeystoreUnavailable, err)
	}

	salt := make([]byte, 16)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: generate salt: %w", ErrKeystoreUnavailable, err)
	}

	aead, err := k.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrKeystoreUnavailable, err)
	}

	file := keystoreFile{
		Version:    1,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(aead.Seal(nil, nonce, der, nil)),
	}

	payload, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encode keystore: %w", ErrKeystoreUnavailable, err)
	}

	dir := filepath.Dir(k.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w: create keystore dir: %w", ErrKeystoreUnavailable, err)
		}
	}

	if err = os.WriteFile(k.path, payload, 0o600); err != nil {
		return nil, fmt.Errorf("%w: write keystore: %w", ErrKeystoreUnavailable, err)
	}

	return key, nil
}

// aead builds the AES-256-GCM cipher for the given salt, deriving the
// sealing key from the passphrase with Argon2id.
func (k *fileKeystore) aead(salt []byte) (cipher.AEAD, error) {
	sealKey := argon2.IDKey(
		[]byte(k.passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)

	block, err := aes.NewCipher(sealKey)
	if err != nil {
		return nil, fmt.Errorf("%w: init cipher: %w", ErrKeystoreUnavailable, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: init GCM: %w", ErrKeystoreUnavailable, err)
	}

	return aead, nil
}
