package domain

// Track is the provider-neutral metadata record for a catalog hit.
// Ephemeral: built per request, returned to the caller, never stored.
type Track struct {
	Title      string  `json:"name"`
	Artist     string  `json:"artist"`
	Album      string  `json:"album,omitempty"`
	PreviewURL string  `json:"preview_url,omitempty"`
	SpotifyURL string  `json:"spotify_url,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
	Popularity int     `json:"popularity"`
	MatchScore float64 `json:"match_score,omitempty"`
	Explicit   bool    `json:"-"`
}

// Descriptor renders the track in the canonical "'Title' by Artist" form.
func (t Track) Descriptor() string {
	return FormatDescriptor(t.Title, t.Artist)
}

// Video is the secondary provider's answer for the same recommendation.
type Video struct {
	Title     string `json:"title"`
	URL       string `json:"youtube_url"`
	Thumbnail string `json:"thumbnail_url,omitempty"`
	Channel   string `json:"channel,omitempty"`
}

// ArtistMatch is a resolved catalog artist with enough context for the
// classifier to decide whether the name is worth trusting.
type ArtistMatch struct {
	Name       string
	ID         string
	Popularity int
}
