package spotify

import (
	"context"
	"fmt"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// SearchTrack resolves a "'Title' by Artist" query to the best catalog hit.
// Two query strategies run in order, strict field search first, and only
// the top three results of each are scored. A nil track with a nil error
// means nothing scored at or above the accept threshold; that outcome is
// cached like a hit so repeated misses stay cheap.
func (c *Client) SearchTrack(ctx context.Context, query, market string) (*domain.Track, error) {
	key := searchCacheKey(query, market)
	if track, ok := c.cachedTrack(ctx, key); ok {
		return track, nil
	}

	title, artist := domain.ParseDescriptor(query)
	if title == "" || artist == "" {
		c.log.Debug().Str("query", query).Msg("query has no parseable title and artist")
		return nil, nil
	}

	strategies := []string{
		fmt.Sprintf(`track:"%s" artist:"%s"`, title, artist),
		fmt.Sprintf(`"%s" "%s"`, title, artist),
	}

	var best *spotifyTrack
	bestScore := 0.0
	attempted := 0

	var lastErr error
	for _, strategy := range strategies {
		items, err := c.searchTracks(ctx, strategy, market, 5)
		if err != nil {
			lastErr = err
			c.log.Debug().Err(err).Str("strategy", strategy).Msg("search strategy failed")
			continue
		}
		attempted++

		for i := range items {
			if i >= 3 {
				break
			}
			score := matchScore(title, artist, items[i].Name, items[i].primaryArtist())
			if score > bestScore {
				bestScore = score
				best = &items[i]
			}
		}

		if bestScore >= earlyExitScore {
			break
		}
	}

	if attempted == 0 {
		return nil, fmt.Errorf("spotify adapter: search %q: %w", query, lastErr)
	}

	var result *domain.Track
	if best != nil && bestScore >= acceptScore {
		track := mapTrackToDomain(*best)
		track.MatchScore = bestScore
		result = &track
		c.log.Debug().Str("track", track.Descriptor()).Float64("score", bestScore).Msg("search matched")
	} else {
		c.log.Debug().Str("query", query).Float64("best_score", bestScore).Msg("no confident match")
	}

	c.storeTrack(ctx, key, result)
	return result, nil
}
