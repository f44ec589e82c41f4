package handlers

import (
	"context"

	"github.com/clipstream/backend/internal/models"
	"github.com/clipstream/backend/internal/repositories"
)

type inMemoryUserStore struct {
	users map[string]models.User // keyed by lowercased email
}

func newInMemoryUserStore() *inMemoryUserStore {
	return &inMemoryUserStore{users: make(map[string]models.User)}
}

func (s *inMemoryUserStore) Create(_ context.Context, user models.User) error {
	if _, exists := s.users[user.Email]; exists {
		return repositories.ErrConflict
	}
	s.users[user.Email] = user
	return nil
}

func (s *inMemoryUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return user, nil
}

func (s *inMemoryUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

type inMemoryVideoStore struct {
	videos []models.Video
}

func (s *inMemoryVideoStore) FindActive(_ context.Context, limit int) ([]models.Video, error) {
	var active []models.Video
	for _, video := range s.videos {
		if !video.Active {
			continue
		}
		active = append(active, video)
		if len(active) == limit {
			break
		}
	}
	return active, nil
}

func (s *inMemoryVideoStore) FindByID(_ context.Context, id string) (models.Video, error) {
	for _, video := range s.videos {
		if video.ID == id {
			return video, nil
		}
	}
	return models.Video{}, repositories.ErrNotFound
}
