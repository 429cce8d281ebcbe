package rest

import (
	"errors"
	"net/http"

	"github.com/ewilliams-labs/segue/internal/core/ports"
	"github.com/ewilliams-labs/segue/internal/worker"
)

// UserProfile handles GET /users/{id}/profile
//
// Reads serve the stored copy and schedule a background recompute, so a
// profile freshens on use without the reader waiting for it.
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ports.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "no listening profile for user")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if h.jobs != nil {
		h.jobs.Submit(worker.Job{Kind: worker.ProfileRecompute, UserID: userID})
	}

	writeJSON(w, http.StatusOK, profile)
}
