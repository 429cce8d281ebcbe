package spotify

// spotifyTrack represents the Spotify API response for a track.
type spotifyTrack struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Artists      []spotifyArtistRef `json:"artists"`
	Album        spotifyAlbum       `json:"album"`
	PreviewURL   string             `json:"preview_url"`
	ExternalURLs spotifyExternalURL `json:"external_urls"`
	Popularity   int                `json:"popularity"`
	Explicit     bool               `json:"explicit"`
}

// primaryArtist is the display artist: Spotify lists the main artist first.
func (st spotifyTrack) primaryArtist() string {
	if len(st.Artists) == 0 {
		return ""
	}
	return st.Artists[0].Name
}

type spotifyArtistRef struct {
	Name string `json:"name"`
}

type spotifyAlbum struct {
	Name   string         `json:"name"`
	Images []spotifyImage `json:"images"`
}

type spotifyImage struct {
	URL string `json:"url"`
}

type spotifyExternalURL struct {
	Spotify string `json:"spotify"`
}

// spotifyArtist represents a full artist object from an artist search.
type spotifyArtist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Popularity int    `json:"popularity"`
}

type trackSearchResponse struct {
	Tracks struct {
		Items []spotifyTrack `json:"items"`
	} `json:"tracks"`
}

type artistSearchResponse struct {
	Artists struct {
		Items []spotifyArtist `json:"items"`
	} `json:"artists"`
}

type topTracksResponse struct {
	Tracks []spotifyTrack `json:"tracks"`
}
