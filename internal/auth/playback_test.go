package auth

import (
	"errors"
	"testing"
	"time"
)

func TestPlaybackCodecIssueAndVerify(t *testing.T) {
	codec := NewPlaybackCodec(testSecret, time.Hour)

	token, err := codec.Issue("video-42")
	if err != nil {
		t.Fatalf("issue playback token: %v", err)
	}

	videoID, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify playback token: %v", err)
	}

	if videoID != "video-42" {
		t.Fatalf("expected video-42, got %q", videoID)
	}
}

func TestPlaybackCodecRejectsSessionToken(t *testing.T) {
	sessions := NewSessionCodec(testSecret, 24*time.Hour)
	playback := NewPlaybackCodec(testSecret, time.Hour)

	// A session token is signed with the same secret and algorithm; only the
	// missing type tag keeps it out of the playback namespace.
	token, err := sessions.Issue("user-123")
	if err != nil {
		t.Fatalf("issue session token: %v", err)
	}

	if _, err := playback.Verify(token); !errors.Is(err, ErrWrongTokenType) {
		t.Fatalf("expected ErrWrongTokenType, got %v", err)
	}
}

func TestPlaybackCodecRejectsExpiredToken(t *testing.T) {
	codec := NewPlaybackCodec(testSecret, time.Hour)

	issuedAt := time.Now().UTC().Add(-2 * time.Hour)
	codec.now = func() time.Time { return issuedAt }

	token, err := codec.Issue("video-42")
	if err != nil {
		t.Fatalf("issue playback token: %v", err)
	}

	codec.now = time.Now
	if _, err := codec.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestPlaybackCodecRejectsForeignSecret(t *testing.T) {
	issuer := NewPlaybackCodec([]byte("some-other-secret"), time.Hour)
	verifier := NewPlaybackCodec(testSecret, time.Hour)

	token, err := issuer.Issue("video-42")
	if err != nil {
		t.Fatalf("issue playback token: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestPlaybackCodecTokensAreVideoSpecific(t *testing.T) {
	codec := NewPlaybackCodec(testSecret, time.Hour)

	tokenA, err := codec.Issue("video-a")
	if err != nil {
		t.Fatalf("issue token for video-a: %v", err)
	}
	tokenB, err := codec.Issue("video-b")
	if err != nil {
		t.Fatalf("issue token for video-b: %v", err)
	}

	if tokenA == tokenB {
		t.Fatal("expected distinct tokens per video")
	}

	idA, err := codec.Verify(tokenA)
	if err != nil {
		t.Fatalf("verify token for video-a: %v", err)
	}
	idB, err := codec.Verify(tokenB)
	if err != nil {
		t.Fatalf("verify token for video-b: %v", err)
	}

	if idA != "video-a" || idB != "video-b" {
		t.Fatalf("tokens resolved to wrong videos: %q, %q", idA, idB)
	}
}
