package app

import (
	"github.com/clipstream/backend/internal/auth"
	"github.com/clipstream/backend/internal/config"
	"github.com/clipstream/backend/internal/db"
	"github.com/clipstream/backend/internal/handlers"
	"github.com/clipstream/backend/internal/repositories"
)

// buildDependencies wires together concrete implementations used by the HTTP
// handlers. Both codecs share the process-wide signing secret; the type tag on
// playback claims keeps the two token namespaces apart.
func buildDependencies(pool db.Pool, cfg config.Config) handlers.Dependencies {
	secret := []byte(cfg.JWTSecret)

	return handlers.Dependencies{
		Users:    repositories.NewPostgresUserRepository(pool),
		Videos:   repositories.NewPostgresVideoRepository(pool),
		Sessions: auth.NewSessionCodec(secret, cfg.SessionTTL),
		Playback: auth.NewPlaybackCodec(secret, cfg.PlaybackTTL),
	}
}
