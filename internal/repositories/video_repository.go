package repositories

import (
	"context"

	"github.com/clipstream/backend/internal/models"
)

// VideoRepository exposes read access to the curated video catalog. Records
// are seeded out-of-band; this service never writes them.
type VideoRepository interface {
	FindActive(ctx context.Context, limit int) ([]models.Video, error)
	FindByID(ctx context.Context, id string) (models.Video, error)
}
