package ports

import (
	"context"
	"errors"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// ErrProfileNotFound indicates no listening profile exists for the user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore persists listening profiles. Implementations may lose data
// across restarts; callers treat every Get as possibly missing.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*domain.ListeningProfile, error)
	Put(ctx context.Context, profile domain.ListeningProfile) error
}
