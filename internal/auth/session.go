package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCodec issues and verifies the self-contained bearer tokens that prove
// caller identity. Tokens are HS256-signed JWTs carrying the user id as the
// subject; no server-side session state exists.
type SessionCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionCodec constructs a codec signing with the provided secret and
// issuing tokens valid for the provided TTL.
func NewSessionCodec(secret []byte, ttl time.Duration) *SessionCodec {
	if len(secret) == 0 {
		panic("auth: signing secret must not be empty")
	}
	return &SessionCodec{secret: secret, ttl: ttl, now: time.Now}
}

// Issue creates a signed session token for the provided user identifier.
func (c *SessionCodec) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("user id must be provided")
	}

	now := c.now().UTC()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify validates the token's signature and expiry and returns the user id it
// was issued for. Expired tokens fail with ErrExpiredToken; everything else
// (bad signature, malformed structure, foreign signing method) fails with
// ErrInvalidToken. Tokens from other namespaces (a playback token carries a
// type tag) fail with ErrWrongTokenType even though they decode under the same
// secret.
func (c *SessionCodec) Verify(token string) (string, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, c.keyFunc, jwt.WithTimeFunc(c.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	if claims.TokenType != "" {
		return "", ErrWrongTokenType
	}
	return claims.Subject, nil
}

// keyFunc pins the expected signing method. The algorithm is never read from
// the token itself; a token declaring any method other than HS256 is rejected
// before its signature is checked.
func (c *SessionCodec) keyFunc(t *jwt.Token) (any, error) {
	if t.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return c.secret, nil
}
