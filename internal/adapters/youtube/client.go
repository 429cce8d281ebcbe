// Package youtube provides an adapter for the YouTube Data API v3.
// It resolves song queries to a single music video, used as the secondary
// media link next to the catalog result.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/ports"
)

const (
	defaultBaseURL  = "https://www.googleapis.com/youtube/v3"
	watchURLPrefix  = "https://www.youtube.com/watch?v="
	musicCategoryID = "10"
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// compile-time interface assertion
var _ ports.VideoFinder = (*Client)(nil)

func NewClient(apiKey string, log zerolog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log.With().Str("component", "youtube").Logger(),
	}
}

// NewClientWithBaseURL constructs a client against an arbitrary base URL.
// Used by tests to point the adapter at a stub server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:     "test-key",
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        zerolog.Nop(),
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

// Find searches for the best music video matching the query. The search is
// pinned to the music category and "official music video" is appended to
// bias results toward the canonical upload. A nil video with a nil error
// means nothing was found.
func (c *Client) Find(ctx context.Context, query string) (*domain.Video, error) {
	params := url.Values{
		"part":            {"snippet"},
		"q":               {query + " official music video"},
		"type":            {"video"},
		"videoCategoryId": {musicCategoryID},
		"maxResults":      {"1"},
		"key":             {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube: unexpected status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("youtube: decode response: %w", err)
	}

	if len(parsed.Items) == 0 || parsed.Items[0].ID.VideoID == "" {
		c.log.Debug().Str("query", query).Msg("no video found")
		return nil, nil
	}

	item := parsed.Items[0]
	return &domain.Video{
		Title:     item.Snippet.Title,
		URL:       watchURLPrefix + item.ID.VideoID,
		Thumbnail: item.Snippet.Thumbnails.Medium.URL,
		Channel:   item.Snippet.ChannelTitle,
	}, nil
}
