package spotify

import (
	"context"
	"fmt"
	"strings"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

const (
	topTrackMinPopularity   = 10
	supplementMinPopularity = 15
	supplementThreshold     = 12
	artistTracksCap         = 20
)

// FindArtist resolves a free-text name to the best matching artist.
// Exact name matches outrank partial matches, which outrank popularity
// alone. The caller decides whether the returned popularity is enough to
// trust; a nil match with a nil error means no candidate scored at all.
func (c *Client) FindArtist(ctx context.Context, name string) (*domain.ArtistMatch, error) {
	artists, err := c.searchArtists(ctx, fmt.Sprintf(`artist:"%s"`, name), 10)
	if err != nil {
		return nil, err
	}
	if len(artists) == 0 {
		return nil, nil
	}

	queryLower := strings.ToLower(name)
	var best *spotifyArtist
	bestScore := 0
	for i := range artists {
		nameLower := strings.ToLower(artists[i].Name)
		score := artists[i].Popularity
		switch {
		case nameLower == queryLower:
			score += 100
		case strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower):
			score += 50
		}
		if score > bestScore {
			bestScore = score
			best = &artists[i]
		}
	}
	if best == nil {
		return nil, nil
	}

	return &domain.ArtistMatch{Name: best.Name, ID: best.ID, Popularity: best.Popularity}, nil
}

// TracksForArtist returns an artist's strongest tracks: the top-tracks
// list first, topped up from a plain track search when the list runs
// short. The ID is used when the classifier already resolved it.
func (c *Client) TracksForArtist(ctx context.Context, artist domain.ArtistMatch) ([]domain.Track, error) {
	id, name := artist.ID, artist.Name
	if id == "" {
		resolved, err := c.resolveArtistByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			c.log.Debug().Str("artist", name).Msg("artist not found")
			return nil, nil
		}
		id, name = resolved.ID, resolved.Name
	}

	top, err := c.topTracks(ctx, id, "US")
	if err != nil {
		return nil, err
	}

	pool := make([]spotifyTrack, 0, artistTracksCap)
	for _, t := range top {
		if t.Popularity > topTrackMinPopularity {
			pool = append(pool, t)
		}
	}

	if len(pool) < supplementThreshold {
		more, err := c.searchTracks(ctx, fmt.Sprintf(`artist:"%s"`, name), "US", 25)
		if err != nil {
			c.log.Warn().Err(err).Str("artist", name).Msg("supplemental track search failed")
		} else {
			for _, t := range more {
				if t.Popularity > supplementMinPopularity && t.primaryArtist() == name {
					pool = append(pool, t)
				}
				if len(pool) >= artistTracksCap {
					break
				}
			}
		}
	}

	tracks := make([]domain.Track, len(pool))
	for i, t := range pool {
		tracks[i] = mapTrackToDomain(t)
	}
	return tracks, nil
}

// resolveArtistByName picks the most popular artist whose name overlaps
// the query. Unlike FindArtist this requires the overlap outright, since
// the name came from an already classified request.
func (c *Client) resolveArtistByName(ctx context.Context, name string) (*spotifyArtist, error) {
	artists, err := c.searchArtists(ctx, fmt.Sprintf(`artist:"%s"`, name), 10)
	if err != nil {
		return nil, err
	}

	queryLower := strings.ToLower(name)
	var best *spotifyArtist
	bestPopularity := 0
	for i := range artists {
		nameLower := strings.ToLower(artists[i].Name)
		if !strings.Contains(nameLower, queryLower) && !strings.Contains(queryLower, nameLower) {
			continue
		}
		if artists[i].Popularity > bestPopularity {
			bestPopularity = artists[i].Popularity
			best = &artists[i]
		}
	}
	return best, nil
}
