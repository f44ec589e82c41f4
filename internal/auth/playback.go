package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// playbackTokenType tags playback tokens so they cannot be confused with
// session tokens signed by the same secret. The tag is the only thing keeping
// the two token namespaces apart; both codecs enforce it.
const playbackTokenType = "playback"

// tokenClaims is the claim set shared by both codecs: registered claims plus
// the namespace tag. Session tokens leave the tag empty.
type tokenClaims struct {
	TokenType string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// PlaybackCodec issues and verifies short-lived, single-purpose tokens scoped
// to exactly one video. A playback token is meant to be consumed right after
// the dashboard load that produced it, not cached long-term.
type PlaybackCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewPlaybackCodec constructs a codec signing with the provided secret and
// issuing tokens valid for the provided TTL.
func NewPlaybackCodec(secret []byte, ttl time.Duration) *PlaybackCodec {
	if len(secret) == 0 {
		panic("auth: signing secret must not be empty")
	}
	return &PlaybackCodec{secret: secret, ttl: ttl, now: time.Now}
}

// Issue creates a signed playback token for the provided video identifier.
func (c *PlaybackCodec) Issue(videoID string) (string, error) {
	if videoID == "" {
		return "", errors.New("video id must be provided")
	}

	now := c.now().UTC()
	claims := tokenClaims{
		TokenType: playbackTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   videoID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify validates signature, expiry, and the playback type tag, returning the
// video id the token was issued for. A session token decodes cleanly under the
// same secret but lacks the type tag and fails with ErrWrongTokenType.
func (c *PlaybackCodec) Verify(token string) (string, error) {
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
	if claims.TokenType != playbackTokenType {
		return "", ErrWrongTokenType
	}
	return claims.Subject, nil
}

func (c *PlaybackCodec) keyFunc(t *jwt.Token) (any, error) {
	if t.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return c.secret, nil
}
