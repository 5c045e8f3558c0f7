package jwtx

import "errors"

var (
	ErrNoKey       = errors.New("jwtx: key not found")
	ErrMissingKID  = errors.New("jwtx: missing kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrInvalidKey  = errors.New("jwtx: invalid Ed25519 key")
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrInvalidClaim is returned when a session token lacks sub or sid.
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)
