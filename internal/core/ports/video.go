package ports

import (
	"context"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// VideoFinder is the secondary media collaborator. Nil with nil error
// means no video was found; that is not a failure.
type VideoFinder interface {
	Find(ctx context.Context, query string) (*domain.Video, error)
}
