package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/ports"
)

const (
	apiBaseURL = "https://api.spotify.com/v1"
	tokenURL   = "https://accounts.spotify.com/api/token"
)

// Client talks to the Spotify Web API using the client-credentials flow.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      ports.Cache
	log        zerolog.Logger
	retry      retryPolicy
}

// compile-time interface assertion
var _ ports.Catalog = (*Client)(nil)

// NewClient constructs a client that authenticates with the given app
// credentials. Tokens are fetched and refreshed transparently. cache may
// be nil to disable result caching.
func NewClient(ctx context.Context, clientID, clientSecret string, cache ports.Cache, log zerolog.Logger) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	httpClient := conf.Client(ctx)
	httpClient.Timeout = 15 * time.Second

	return &Client{
		httpClient: httpClient,
		baseURL:    apiBaseURL,
		cache:      cache,
		log:        log.With().Str("component", "spotify").Logger(),
		retry:      retryPolicyFromEnv(),
	}
}

// NewClientWithBaseURL constructs an unauthenticated client against an
// arbitrary base URL. Used by tests to point the adapter at a stub server.
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        zerolog.Nop(),
		retry:      retryPolicyFromEnv(),
	}
}

// searchTracks runs a raw track search and returns the result items.
func (c *Client) searchTracks(ctx context.Context, query, market string, limit int) ([]spotifyTrack, error) {
	var body trackSearchResponse
	if err := c.getJSON(ctx, "/search", url.Values{
		"q":      {query},
		"type":   {"track"},
		"limit":  {strconv.Itoa(limit)},
		"market": {market},
	}, &body); err != nil {
		return nil, err
	}
	return body.Tracks.Items, nil
}

// searchArtists runs a raw artist search and returns the result items.
func (c *Client) searchArtists(ctx context.Context, query string, limit int) ([]spotifyArtist, error) {
	var body artistSearchResponse
	if err := c.getJSON(ctx, "/search", url.Values{
		"q":      {query},
		"type":   {"artist"},
		"limit":  {strconv.Itoa(limit)},
		"market": {"US"},
	}, &body); err != nil {
		return nil, err
	}
	return body.Artists.Items, nil
}

// topTracks fetches an artist's top tracks, which Spotify pre-sorts by
// popularity and caps at ten.
func (c *Client) topTracks(ctx context.Context, artistID, market string) ([]spotifyTrack, error) {
	var body topTracksResponse
	path := fmt.Sprintf("/artists/%s/top-tracks", artistID)
	if err := c.getJSON(ctx, path, url.Values{"market": {market}}, &body); err != nil {
		return nil, err
	}
	return body.Tracks, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("spotify adapter: invalid url: %w", err)
	}
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: create request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ports.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify adapter: %s status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify adapter: decode %s: %w", path, err)
	}
	return nil
}

// descriptorOf renders a track in the canonical exchange form.
func descriptorOf(st spotifyTrack) string {
	return domain.FormatDescriptor(st.Name, st.primaryArtist())
}
