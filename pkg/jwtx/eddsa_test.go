package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/stellar/pkg/cryptox"
	"github.com/aussiebroadwan/stellar/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	s, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return s
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "console-1")
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "console-1", signer.KID())

	claims := jwtx.NewSessionClaims("2", "sid-42", "Manager Mike", 5*time.Minute, testIssuer, []string{"console"}, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	require.True(t, keys.IsReady())

	got, err := jwtx.NewVerifierEdDSA(keys, testIssuer, []string{"console"}).Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, claims.SID, got.SID)
	require.Equal(t, claims.Name, got.Name)
	require.Equal(t, claims.ID, got.ID)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	signer := newSigner(t, "k1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	now := time.Now().UTC()

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("1", "s", "", time.Minute, testIssuer, nil, now))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, "other", nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("unknown kid", func(t *testing.T) {
		stranger := newSigner(t, "k2")
		token, err := stranger.Sign(jwtx.NewSessionClaims("1", "s", "", time.Minute, testIssuer, nil, now))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("1", "s", "", time.Minute, testIssuer, nil, now.Add(-time.Hour)))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing session id", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewSessionClaims("1", "", "", time.Minute, testIssuer, nil, now))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify("not.a.token")
		require.Error(t, err)
	})
}

func TestNewSignerEdDSARejectsBadPEM(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.ErrorContains(t, err, "invalid PEM")
}

func TestKeySetPublishesJWKS(t *testing.T) {
	signer := newSigner(t, "k1")
	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())
	require.NoError(t, keys.AddSigner(signer))
	require.NoError(t, keys.AddSigner(signer))

	jwks := keys.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)

	pemStr, err := jwks.Keys[0].PEM()
	require.NoError(t, err)
	require.Contains(t, pemStr, "BEGIN PUBLIC KEY")

	_, err = keys.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}
