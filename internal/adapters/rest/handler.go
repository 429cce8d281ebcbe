// Package rest is the HTTP adapter: it parses requests, hands them to the
// core services and renders envelopes as JSON. No recommendation logic
// lives here.
package rest

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/ports"
	"github.com/ewilliams-labs/segue/internal/worker"
)

const requestIDHeader = "X-Request-ID"

// ChatService is the conversation pipeline as the HTTP layer sees it.
type ChatService interface {
	HandleChat(ctx context.Context, message string, history []string, userID string) domain.ChatResponse
}

// TrendingSource serves the current trending list.
type TrendingSource interface {
	Trending(ctx context.Context) ([]string, time.Time, error)
}

// Scheduler queues background work. nil disables scheduling.
type Scheduler interface {
	Submit(job worker.Job)
}

// HealthStatus reports which upstream integrations are configured.
type HealthStatus struct {
	Spotify bool
	YouTube bool
	Gemini  bool
}

// Handler manages the HTTP interface for our application.
type Handler struct {
	chat     ChatService
	trending TrendingSource
	profiles ports.ProfileStore
	jobs     Scheduler
	health   HealthStatus
	router   *http.ServeMux
	log      zerolog.Logger
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(chat ChatService, trending TrendingSource, profiles ports.ProfileStore, jobs Scheduler, health HealthStatus, log zerolog.Logger) *Handler {
	h := &Handler{
		chat:     chat,
		trending: trending,
		profiles: profiles,
		jobs:     jobs,
		health:   health,
		router:   http.NewServeMux(),
		log:      log.With().Str("component", "rest").Logger(),
	}

	// Register Routes
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// Every request gets a request ID (caller-provided or generated) echoed
// back in the response header, plus one access log line.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, requestID)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	h.router.ServeHTTP(rec, r)

	h.log.Info().
		Str("request_id", requestID).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("elapsed", time.Since(start)).
		Msg("request handled")
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Conversation
	h.router.HandleFunc("POST /chat", h.Chat)
	// Discovery
	h.router.HandleFunc("GET /trending", h.Trending)
	h.router.HandleFunc("GET /users/{id}/profile", h.UserProfile)
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
}

type healthResponse struct {
	Status  string `json:"status"`
	Spotify bool   `json:"spotify"`
	YouTube bool   `json:"youtube"`
	Gemini  bool   `json:"gemini"`
}

// HealthCheck reports liveness and which integrations are configured.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Spotify: h.health.Spotify,
		YouTube: h.health.YouTube,
		Gemini:  h.health.Gemini,
	})
}

// statusRecorder captures the status code for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func isJSONContentType(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/json"
}
