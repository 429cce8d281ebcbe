package ports

import (
	"context"
	"errors"
	"time"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// ErrCatalogUnavailable indicates the catalog could not be reached at all.
// A reachable catalog with no results returns nil/empty values instead.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Catalog is the track-search collaborator.
//
// SearchTrack resolves a free-form "'Title' by Artist" query to the single
// best catalog hit, or nil when nothing scores above the accept threshold.
// SearchByTerms runs every term in one market and pools hits above the
// popularity floor; ranking and dedup belong to the caller. TracksForArtist
// resolves the artist by ID when set, by name otherwise. Trending reports
// the songs together with the time the list was last refreshed.
type Catalog interface {
	SearchTrack(ctx context.Context, query, market string) (*domain.Track, error)
	SearchByTerms(ctx context.Context, terms []string, market string, limit int) ([]domain.Track, error)
	TracksForArtist(ctx context.Context, artist domain.ArtistMatch) ([]domain.Track, error)
	FindArtist(ctx context.Context, name string) (*domain.ArtistMatch, error)
	Trending(ctx context.Context) ([]string, time.Time, error)
}
