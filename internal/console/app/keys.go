package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/stellar/pkg/cryptox"
	"github.com/aussiebroadwan/stellar/pkg/jwtx"
)

// sessionKeyInfo separates the session signing key from anything else
// that might one day be derived from the same secret.
const sessionKeyInfo = "stellar-console-session"

// SessionKeys is everything the HTTP layer needs to issue and check
// session tokens.
type SessionKeys struct {
	KeySet   *jwtx.KeySet
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
}

// InitSessionKeys builds the EdDSA signing key for session tokens.
//
// With a token secret the key is derived from it, so every replica sharing
// the secret accepts the others' tokens and tokens survive restarts.
// Without one a random key is generated and tokens die with the process.
func InitSessionKeys(cfg Config, audience string, logger *slog.Logger) (*SessionKeys, error) {
	var (
		pemKey []byte
		err    error
	)
	if cfg.TokenSecret != "" {
		pemKey, err = cryptox.DeriveEd25519Key([]byte(cfg.TokenSecret), sessionKeyInfo)
		if err != nil {
			return nil, fmt.Errorf("failed to derive signing key: %w", err)
		}
	} else {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}
		logger.Warn("CONSOLE_TOKEN_SECRET not set, using an ephemeral signing key")
	}

	probe, err := jwtx.NewSignerEdDSA("", pemKey)
	if err != nil {
		return nil, err
	}
	pub, err := probe.PublicJWK().PublicKey()
	if err != nil {
		return nil, err
	}
	kid := cryptox.KeyID(pub)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, err
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("failed to register signing key: %w", err)
	}

	logger.Info("session signing key ready", slog.String("kid", kid), slog.String("alg", signer.Alg()))
	return &SessionKeys{
		KeySet:   keys,
		Signer:   signer,
		Verifier: jwtx.NewVerifierEdDSA(keys, cfg.Issuer, []string{audience}),
	}, nil
}
