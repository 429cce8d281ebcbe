package rest

import (
	"net/http"
)

type trendingResponse struct {
	TrendingSongs []string `json:"trending_songs"`
	Count         int      `json:"count"`
	LastUpdated   int64    `json:"last_updated"`
}

// Trending handles GET /trending
//
// LastUpdated is the unix time of the last successful refresh, 0 when the
// list has never been refreshed from the catalog.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	songs, updatedAt, err := h.trending.Trending(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "trending list unavailable")
		return
	}

	var lastUpdated int64
	if !updatedAt.IsZero() {
		lastUpdated = updatedAt.Unix()
	}

	writeJSON(w, http.StatusOK, trendingResponse{
		TrendingSongs: songs,
		Count:         len(songs),
		LastUpdated:   lastUpdated,
	})
}
