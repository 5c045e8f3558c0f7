package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// minSecretLen is the shortest secret DeriveEd25519Key accepts.
const minSecretLen = 16

var ErrWeakSecret = errors.New("cryptox: secret too short")

// GenerateEd25519Key generates a new Ed25519 private key as PKCS8 PEM.
func GenerateEd25519Key() ([]byte, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate Ed25519 key: %w", err)
	}
	return encodeEd25519(key)
}

// DeriveEd25519Key derives a deterministic Ed25519 private key from secret
// using HKDF-SHA256, so every replica sharing the secret signs with the same
// key. info separates keys derived from one secret for different purposes.
func DeriveEd25519Key(secret []byte, info string) ([]byte, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("%w: need at least %d bytes", ErrWeakSecret, minSecretLen)
	}

	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), seed); err != nil {
		return nil, fmt.Errorf("cryptox: hkdf: %w", err)
	}
	return encodeEd25519(ed25519.NewKeyFromSeed(seed))
}

func encodeEd25519(key ed25519.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to marshal PKCS8 key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
