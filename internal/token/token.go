// Package token implements signed, expiring bearer tokens. A token binds a
// unique token ID (jti) to the subject username; the jti is the key used by
// the revocation ledger.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures, split by kind. Malformed and bad-signature tokens
// are rejected before any store lookup happens.
var (
	ErrMalformed    = errors.New("token malformed")
	ErrBadSignature = errors.New("token signature invalid")
	ErrExpired      = errors.New("token expired")
)

// Claims carried by every issued token.
type Claims struct {
	jwt.RegisteredClaims
}

// Subject returns the username the token was issued for.
func (c *Claims) Subject() string { return c.RegisteredClaims.Subject }

// TokenID returns the jti.
func (c *Claims) TokenID() string { return c.RegisteredClaims.ID }

// Issuer creates and verifies HS256 tokens. The signing key and TTL are
// process-wide configuration; rotating the key invalidates all outstanding
// tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, expiryHours int) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    time.Duration(expiryHours) * time.Hour,
	}
}

// Issue signs a new token for subject with a fresh jti.
func (i *Issuer) Issue(subject string) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, claims, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// The signing method is pinned to HS256 so an attacker cannot downgrade
// to "none" or swap in an asymmetric scheme.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})

	switch {
	case err == nil && tkn.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrBadSignature
	default:
		return nil, ErrMalformed
	}
}
