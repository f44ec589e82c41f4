package handlers

import (
	"context"

	"github.com/clipstream/backend/internal/models"
)

// UserStore captures the persistence operations required by the auth handlers.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

// VideoStore captures read access to the curated video catalog.
type VideoStore interface {
	FindActive(ctx context.Context, limit int) ([]models.Video, error)
	FindByID(ctx context.Context, id string) (models.Video, error)
}

// SessionManager issues and verifies session tokens proving caller identity.
type SessionManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// PlaybackTokens issues and verifies single-purpose tokens scoped to one video.
type PlaybackTokens interface {
	Issue(videoID string) (string, error)
	Verify(token string) (string, error)
}
