package spotify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

const (
	searchCacheTTL   = 30 * time.Minute
	trendingCacheTTL = time.Hour
	trendingCacheKey = "spotify:trending"
)

// cachedSearch wraps a search result so a miss can be cached too: repeat
// queries for songs that do not exist should not hit the API again.
type cachedSearch struct {
	Found bool          `json:"found"`
	Track *domain.Track `json:"track,omitempty"`
}

type cachedTrending struct {
	Songs     []string  `json:"songs"`
	UpdatedAt time.Time `json:"updated_at"`
}

func searchCacheKey(query, market string) string {
	return "spotify:search:" + market + ":" + strings.ToLower(strings.TrimSpace(query))
}

func (c *Client) cachedTrack(ctx context.Context, key string) (*domain.Track, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, ok := c.cache.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var entry cachedSearch
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("dropping bad cache entry")
		return nil, false
	}
	if !entry.Found {
		return nil, true
	}
	return entry.Track, true
}

func (c *Client) storeTrack(ctx context.Context, key string, track *domain.Track) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(cachedSearch{Found: track != nil, Track: track})
	if err != nil {
		return
	}
	c.cache.Set(ctx, key, raw, searchCacheTTL)
}

func (c *Client) cachedTrendingList(ctx context.Context) ([]string, time.Time, bool) {
	if c.cache == nil {
		return nil, time.Time{}, false
	}
	raw, ok := c.cache.Get(ctx, trendingCacheKey)
	if !ok {
		return nil, time.Time{}, false
	}
	var entry cachedTrending
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, time.Time{}, false
	}
	return entry.Songs, entry.UpdatedAt, true
}

func (c *Client) storeTrendingList(ctx context.Context, songs []string, updatedAt time.Time) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(cachedTrending{Songs: songs, UpdatedAt: updatedAt})
	if err != nil {
		return
	}
	c.cache.Set(ctx, trendingCacheKey, raw, trendingCacheTTL)
}
