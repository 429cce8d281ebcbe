package spotify

import (
	"context"
	"math/rand"
	"time"
)

const (
	minTrendingPopularity = 30
	trendingTarget        = 150
	trendingKeep          = 100
)

// trendingQueries covers mainstream, regional, genre and decade slices so
// the pool stays diverse even before shuffling.
var trendingQueries = []string{
	"taylor swift", "drake", "billie eilish", "the weeknd", "dua lipa",
	"chart hits", "viral hits", "trending songs",

	"bollywood music", "kpop", "afrobeats", "latin music",

	"indie rock", "hip hop", "electronic music", "pop music",

	"80s hits", "90s hits", "2000s hits",
}

// fallbackTrending keeps /trending and general requests alive when the
// catalog is unreachable.
var fallbackTrending = []string{
	"'Anti-Hero' by Taylor Swift", "'God's Plan' by Drake", "'Bad Guy' by Billie Eilish",
	"'Blinding Lights' by The Weeknd", "'Levitating' by Dua Lipa", "'As It Was' by Harry Styles",
	"'Heat Waves' by Glass Animals", "'Good 4 U' by Olivia Rodrigo", "'Stay' by The Kid LAROI",
	"'Jai Ho' by A.R. Rahman", "'Tum Hi Ho' by Arijit Singh", "'Dynamite' by BTS",
	"'Despacito' by Luis Fonsi", "'Ye' by Burna Boy", "'Essence' by Wizkid",
	"'Motion Sickness' by Phoebe Bridgers", "'The Less I Know The Better' by Tame Impala",
	"'Bohemian Rhapsody' by Queen", "'Billie Jean' by Michael Jackson", "'Smells Like Teen Spirit' by Nirvana",
}

// Trending returns a shuffled list of popular song descriptors plus the
// time the list was assembled. Results are cached for an hour; when every
// query fails the built-in fallback list is returned uncached.
func (c *Client) Trending(ctx context.Context) ([]string, time.Time, error) {
	if songs, updatedAt, ok := c.cachedTrendingList(ctx); ok {
		return songs, updatedAt, nil
	}

	c.log.Info().Msg("refreshing trending songs")

	var pool []string
	seen := make(map[string]struct{})
	for _, query := range trendingQueries {
		if err := ctx.Err(); err != nil {
			return nil, time.Time{}, err
		}

		items, err := c.searchTracks(ctx, query, "US", 15)
		if err != nil {
			c.log.Warn().Err(err).Str("query", query).Msg("trending query failed")
			continue
		}
		for _, tr := range items {
			if tr.Popularity <= minTrendingPopularity {
				continue
			}
			d := descriptorOf(tr)
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			pool = append(pool, d)
		}

		if len(pool) >= trendingTarget {
			break
		}
	}

	if len(pool) == 0 {
		c.log.Warn().Msg("trending refresh found nothing, serving fallback list")
		return fallbackTrending, time.Now(), nil
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > trendingKeep {
		pool = pool[:trendingKeep]
	}

	updatedAt := time.Now()
	c.storeTrendingList(ctx, pool, updatedAt)
	c.log.Info().Int("count", len(pool)).Msg("trending songs cached")
	return pool, updatedAt, nil
}
