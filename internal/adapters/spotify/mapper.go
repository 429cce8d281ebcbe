package spotify

import "github.com/ewilliams-labs/segue/internal/core/domain"

// mapTrackToDomain converts a raw Spotify track to a clean domain track.
// MatchScore is left zero; only scored single-track searches set it.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	imageURL := ""
	if len(st.Album.Images) > 0 {
		imageURL = st.Album.Images[0].URL
	}

	return domain.Track{
		Title:      st.Name,
		Artist:     st.primaryArtist(),
		Album:      st.Album.Name,
		PreviewURL: st.PreviewURL,
		SpotifyURL: st.ExternalURLs.Spotify,
		ImageURL:   imageURL,
		Popularity: st.Popularity,
		Explicit:   st.Explicit,
	}
}
