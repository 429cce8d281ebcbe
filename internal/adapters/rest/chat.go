package rest

import (
	"encoding/json"
	"net/http"
	"strings"
)

type chatRequest struct {
	Message        string   `json:"message"`
	SuggestedSongs []string `json:"suggested_songs"`
	UserID         string   `json:"user_id"`
}

// Chat handles POST /chat
//
// The body carries the user's message, the songs already suggested this
// conversation and optionally the Spotify user ID. Pipeline failures are
// reported inside the envelope, so a well-formed request always gets 200.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	resp := h.chat.HandleChat(r.Context(), req.Message, req.SuggestedSongs, req.UserID)

	writeJSON(w, http.StatusOK, resp)
}
