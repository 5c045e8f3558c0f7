package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// keyIDLen is long enough to tell keys apart in a JWKS and short enough to
// read in logs.
const keyIDLen = 16

// Fingerprint returns the base64url SHA-256 digest of s (43 chars). Session
// stores key on it so the raw session id never lands in redis.
func Fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// KeyID names a public key by a prefix of its fingerprint, so every replica
// holding the same key agrees on the kid.
func KeyID(pub []byte) string {
	return Fingerprint(string(pub))[:keyIDLen]
}
