package domain

import "time"

// ListeningProfile summarizes a connected user's catalog taste. Profiles
// are stored through an injected store and may vanish across restarts, so
// every consumer must tolerate a missing profile.
type ListeningProfile struct {
	UserID          string    `json:"user_id"`
	DisplayName     string    `json:"display_name"`
	TopGenres       []string  `json:"top_genres"`
	FavoriteArtists []string  `json:"favorite_artists"`
	UpdatedAt       time.Time `json:"updated_at"`
}
