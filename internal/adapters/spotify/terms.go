package spotify

import (
	"context"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// minPoolPopularity filters obscure tracks out of candidate pools before
// they ever reach ranking.
const minPoolPopularity = 15

// SearchByTerms runs each term as its own track search in one market and
// pools the hits above the popularity floor, in provider order. A failed
// term is logged and skipped so one bad query cannot empty the pool.
func (c *Client) SearchByTerms(ctx context.Context, terms []string, market string, limit int) ([]domain.Track, error) {
	var pool []domain.Track
	for _, term := range terms {
		if err := ctx.Err(); err != nil {
			return pool, err
		}

		items, err := c.searchTracks(ctx, term, market, limit)
		if err != nil {
			c.log.Warn().Err(err).Str("term", term).Str("market", market).Msg("term search failed")
			continue
		}
		for _, tr := range items {
			if tr.Popularity > minPoolPopularity {
				pool = append(pool, mapTrackToDomain(tr))
			}
		}
	}
	return pool, nil
}
