package domain

// MemoryValidation reports the pre-flight health check of the caller's
// suggestion history, and, when a new descriptor is being vetted, whether
// it collides with an entry already shown.
type MemoryValidation struct {
	Valid   bool   `json:"valid"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// MemoryStats is the per-request diagnostic block describing what the
// memory filter did. Clients display it; nothing server-side reads it back.
type MemoryStats struct {
	SongsRemembered     int              `json:"songs_remembered"`
	SongsBeforeFilter   int              `json:"songs_available_before_filter"`
	SongsAfterFilter    int              `json:"songs_available_after_filter"`
	SongsFilteredOut    int              `json:"songs_filtered_out"`
	RequestType         string           `json:"request_type"`
	ActualSongReturned  string           `json:"actual_song_returned,omitempty"`
	MemoryActive        bool             `json:"memory_active"`
	SearchSuccessful    bool             `json:"search_successful"`
	FilterEffectiveness float64          `json:"filter_effectiveness"`
	Validation          MemoryValidation `json:"validation"`
	Error               bool             `json:"error,omitempty"`
}

// UserPreferences is the personalization block echoed back to connected
// clients. Lists are truncated to the top five entries.
type UserPreferences struct {
	DisplayName     string   `json:"display_name,omitempty"`
	TopGenres       []string `json:"top_genres"`
	FavoriteArtists []string `json:"favorite_artists"`
	Active          bool     `json:"personalization_active"`
}

// ChatResponse is the envelope returned for every chat message. It is
// always well formed: total upstream failure produces apology text and
// null media fields rather than an error to the caller.
type ChatResponse struct {
	Response     string           `json:"response"`
	Spotify      *Track           `json:"spotify"`
	YouTube      *Video           `json:"youtube"`
	MemoryStats  MemoryStats      `json:"memory_stats"`
	Personalized bool             `json:"personalized"`
	UserID       string           `json:"user_id,omitempty"`
	Preferences  *UserPreferences `json:"user_preferences,omitempty"`
}
