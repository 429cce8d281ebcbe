package memstore

import (
	"context"
	"sync"

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/ports"
)

// ProfileStore keeps listening profiles in a mutex-guarded map. Slices are
// copied on both paths so callers cannot mutate stored state.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.ListeningProfile
}

// compile-time interface assertion
var _ ports.ProfileStore = (*ProfileStore)(nil)

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[string]domain.ListeningProfile),
	}
}

func (s *ProfileStore) Get(ctx context.Context, userID string) (*domain.ListeningProfile, error) {
	s.mu.RLock()
	profile, ok := s.profiles[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, ports.ErrProfileNotFound
	}
	copied := profile
	copied.TopGenres = append([]string(nil), profile.TopGenres...)
	copied.FavoriteArtists = append([]string(nil), profile.FavoriteArtists...)
	return &copied, nil
}

func (s *ProfileStore) Put(ctx context.Context, profile domain.ListeningProfile) error {
	stored := profile
	stored.TopGenres = append([]string(nil), profile.TopGenres...)
	stored.FavoriteArtists = append([]string(nil), profile.FavoriteArtists...)

	s.mu.Lock()
	s.profiles[profile.UserID] = stored
	s.mu.Unlock()
	return nil
}
