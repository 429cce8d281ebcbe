// Package services wires the conversation pipeline together: classify the
// message, retrieve candidates, filter them against the caller's memory,
// generate the reply, extract the recommended track and resolve it to
// playable media. The package promise is that HandleChat always produces
// a well-formed envelope, whatever the collaborators do.
package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/memory"
	"github.com/ewilliams-labs/segue/internal/core/ports"
)

const (
	// defaultMarket is used for single-track lookups; market fan-out only
	// applies to candidate retrieval.
	defaultMarket = "US"
	// maxAlternates bounds the replacement walk after a memory violation.
	maxAlternates = 5
)

// Classifier turns a chat message into a structured request.
type Classifier interface {
	Classify(ctx context.Context, message string) domain.ClassifiedRequest
}

// Composer coordinates the chat pipeline across the classifier, the
// retriever, the generative collaborator and both media providers.
type Composer struct {
	classifier Classifier
	retriever  *Retriever
	generator  ports.TextGenerator
	catalog    ports.Catalog
	videos     ports.VideoFinder
	profiles   ports.ProfileStore
	responder  *Responder
	log        zerolog.Logger
}

// NewComposer constructs a Composer. generator and videos may be nil when
// the integration is not configured; text then degrades to templated
// responses and media lookups run on the catalog alone.
func NewComposer(
	classifier Classifier,
	retriever *Retriever,
	generator ports.TextGenerator,
	catalog ports.Catalog,
	videos ports.VideoFinder,
	profiles ports.ProfileStore,
	responder *Responder,
	log zerolog.Logger,
) *Composer {
	return &Composer{
		classifier: classifier,
		retriever:  retriever,
		generator:  generator,
		catalog:    catalog,
		videos:     videos,
		profiles:   profiles,
		responder:  responder,
		log:        log.With().Str("component", "composer").Logger(),
	}
}

// HandleChat runs one chat message through the full pipeline. history is
// the caller-held list of every song already suggested in this
// conversation. The envelope is always well formed; collaborator failures
// degrade to templated text and null media fields, and nothing panics out.
func (c *Composer) HandleChat(ctx context.Context, message string, history []string, userID string) (resp domain.ChatResponse) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("chat pipeline panicked")
			resp = apologyResponse()
		}
	}()

	// 1. Pre-flight the caller's memory.
	validation := memory.Validate(history, "")
	if len(history) > 0 {
		ins := memory.BuildInsights(history)
		c.log.Debug().
			Int("songs", ins.TotalSongs).
			Int("unique_artists", ins.UniqueArtists).
			Float64("diversity", ins.Diversity).
			Interface("top_artists", ins.TopArtists).
			Msg("history insights")
	}

	// 2. Load the listening profile when the caller identifies itself.
	profile := c.loadProfile(ctx, userID)

	// 3. Classify the message.
	req := c.classifier.Classify(ctx, message)
	c.log.Info().
		Str("kind", string(req.Kind)).
		Str("category", req.Category).
		Int("history", len(history)).
		Msg("message classified")

	// Profile and creator questions are answered from templates, no
	// retrieval or generation involved.
	if req.Kind == domain.KindProfile || req.Kind == domain.KindCreator {
		return c.composeDirect(req, profile, history, userID, validation)
	}

	// 4. Retrieve candidates.
	pool := c.retriever.Retrieve(ctx, req, profile)
	beforeFilter := len(pool)

	// 5. Drop candidates the caller has already seen. Specific song
	// requests are exempt: the user asked for that exact song.
	afterFilter := beforeFilter
	if req.Kind != domain.KindSpecificSong {
		var diag memory.Diagnostics
		pool, diag = memory.FilterOut(pool, history)
		afterFilter = len(pool)
		c.log.Info().
			Int("blocked", diag.Blocked).
			Int("kept", diag.Kept).
			Bool("degenerate", diag.Degenerate).
			Msg("memory filter applied")
	}

	// 6. Generate the reply text.
	text := c.generateText(ctx, message, req, pool, history, profile)

	// 7. Extract the recommended song from the reply. For specific song
	// requests the original query backstops a failed extraction.
	query, ok := extractSong(text)
	if !ok && req.Kind == domain.KindSpecificSong {
		query = req.SearchQuery
	}

	// 8. Resolve the song on both media providers.
	track, video, descriptor := c.lookupMedia(ctx, query)

	// 9. Nothing resolved anywhere: retry with the first candidate so the
	// reply still ships playable media. Specific songs stay unresolved
	// rather than answering with a different song.
	if track == nil && video == nil && len(pool) > 0 && req.Kind != domain.KindSpecificSong {
		c.log.Info().Str("candidate", pool[0]).Msg("no media found, retrying with first candidate")
		track, video, descriptor = c.lookupMedia(ctx, pool[0])
	}

	// 10. Re-check what actually came back against the caller's memory
	// and swap in an alternate when it collides.
	if descriptor != "" && req.Kind != domain.KindSpecificSong {
		track, descriptor = c.replaceOnViolation(ctx, history, pool, track, descriptor)
	}

	// 11. Compose the envelope.
	filteredOut := beforeFilter - afterFilter
	if filteredOut < 0 {
		filteredOut = 0
	}
	stats := domain.MemoryStats{
		SongsRemembered:     len(history),
		SongsBeforeFilter:   beforeFilter,
		SongsAfterFilter:    afterFilter,
		SongsFilteredOut:    filteredOut,
		RequestType:         req.TypeLabel(),
		ActualSongReturned:  descriptor,
		MemoryActive:        true,
		SearchSuccessful:    track != nil || video != nil,
		FilterEffectiveness: effectiveness(filteredOut, beforeFilter),
		Validation:          validation,
	}

	return domain.ChatResponse{
		Response:     text,
		Spotify:      track,
		YouTube:      video,
		MemoryStats:  stats,
		Personalized: profile != nil,
		UserID:       personalizedID(profile, userID),
		Preferences:  preferencesBlock(profile),
	}
}

// composeDirect answers profile and creator questions from templates.
func (c *Composer) composeDirect(req domain.ClassifiedRequest, profile *domain.ListeningProfile, history []string, userID string, validation domain.MemoryValidation) domain.ChatResponse {
	var text string
	if req.Kind == domain.KindProfile {
		text = c.responder.Profile(profile)
	} else {
		text = c.responder.Creator()
	}

	return domain.ChatResponse{
		Response: text,
		MemoryStats: domain.MemoryStats{
			SongsRemembered: len(history),
			RequestType:     req.TypeLabel(),
			MemoryActive:    true,
			Validation:      validation,
		},
		Personalized: profile != nil,
		UserID:       personalizedID(profile, userID),
		Preferences:  preferencesBlock(profile),
	}
}

// generateText asks the generative collaborator for the reply and falls
// back to a templated response when it fails. The fallback draws from the
// already-filtered pool, so exclusions hold there too.
func (c *Composer) generateText(ctx context.Context, message string, req domain.ClassifiedRequest, pool, history []string, profile *domain.ListeningProfile) string {
	// No generator configured: templated responses only.
	if c.generator == nil {
		return c.templatedResponse(req, pool, profile)
	}

	var prompt string
	if profile != nil {
		prompt = buildPersonalizedPrompt(message, req, pool, history, *profile)
	} else {
		prompt = buildPrompt(message, req, pool, history)
	}

	text, err := c.generator.Generate(ctx, prompt)
	if err == nil {
		return text
	}

	var genErr *ports.GenerationError
	if errors.As(err, &genErr) {
		c.log.Warn().Str("reason", genErr.Reason).Err(err).Msg("generation failed, using templated response")
	} else {
		c.log.Warn().Err(err).Msg("generation failed, using templated response")
	}

	return c.templatedResponse(req, pool, profile)
}

func (c *Composer) templatedResponse(req domain.ClassifiedRequest, pool []string, profile *domain.ListeningProfile) string {
	if req.Kind == domain.KindArtistSearch {
		return c.responder.Artist(req, pool)
	}
	var displayName string
	if profile != nil {
		displayName = profile.DisplayName
	}
	return c.responder.Creative(req, pool, displayName)
}

// lookupMedia resolves a descriptor query on both providers. The memory
// descriptor follows whichever provider answered, catalog first. Either
// provider may fail without sinking the request.
func (c *Composer) lookupMedia(ctx context.Context, query string) (*domain.Track, *domain.Video, string) {
	if query == "" {
		return nil, nil, ""
	}

	track, err := c.catalog.SearchTrack(ctx, query, defaultMarket)
	if err != nil {
		c.log.Warn().Err(err).Str("query", query).Msg("catalog lookup failed")
	}

	var video *domain.Video
	if c.videos != nil {
		video, err = c.videos.Find(ctx, query)
		if err != nil {
			c.log.Warn().Err(err).Str("query", query).Msg("video lookup failed")
		}
	}

	var descriptor string
	switch {
	case track != nil:
		descriptor = track.Descriptor()
	case video != nil:
		descriptor = domain.FormatDescriptor(video.Title, video.Channel)
	}
	return track, video, descriptor
}

// replaceOnViolation re-checks the returned descriptor against history and
// walks up to maxAlternates candidates when it collides. Only the catalog
// side is replaced; the video stays with the reply text. When no alternate
// passes, the violating track is kept: always answer with something.
func (c *Composer) replaceOnViolation(ctx context.Context, history, pool []string, track *domain.Track, descriptor string) (*domain.Track, string) {
	check := memory.Validate(history, descriptor)
	if check.Valid {
		return track, descriptor
	}
	c.log.Warn().Str("song", descriptor).Str("detail", check.Message).Msg("memory violation on returned song")

	if len(pool) < 2 {
		return track, descriptor
	}
	alternates := pool[1:]
	if len(alternates) > maxAlternates {
		alternates = alternates[:maxAlternates]
	}
	for _, candidate := range alternates {
		alt, err := c.catalog.SearchTrack(ctx, candidate, defaultMarket)
		if err != nil || alt == nil {
			continue
		}
		altDescriptor := alt.Descriptor()
		if memory.Validate(history, altDescriptor).Valid {
			c.log.Info().Str("song", altDescriptor).Msg("alternate passed memory check")
			return alt, altDescriptor
		}
	}
	c.log.Warn().Str("song", descriptor).Msg("no valid alternate found, keeping violating song")
	return track, descriptor
}

// loadProfile returns nil for anonymous or unknown callers; nil means
// "not personalized" everywhere downstream.
func (c *Composer) loadProfile(ctx context.Context, userID string) *domain.ListeningProfile {
	if userID == "" {
		return nil
	}
	profile, err := c.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ports.ErrProfileNotFound) {
			c.log.Warn().Err(err).Str("user_id", userID).Msg("profile load failed")
		}
		return nil
	}
	return profile
}

func personalizedID(profile *domain.ListeningProfile, userID string) string {
	if profile == nil {
		return ""
	}
	return userID
}

func preferencesBlock(profile *domain.ListeningProfile) *domain.UserPreferences {
	if profile == nil {
		return nil
	}
	return &domain.UserPreferences{
		DisplayName:     profile.DisplayName,
		TopGenres:       headTerms(profile.TopGenres, 5),
		FavoriteArtists: headTerms(profile.FavoriteArtists, 5),
		Active:          true,
	}
}

func effectiveness(filteredOut, before int) float64 {
	if before < 1 {
		before = 1
	}
	return float64(filteredOut) / float64(before) * 100
}

// apologyResponse is the envelope of last resort.
func apologyResponse() domain.ChatResponse {
	return domain.ChatResponse{
		Response: "Sorry, I had trouble processing your request!",
		MemoryStats: domain.MemoryStats{
			Error: true,
			Validation: domain.MemoryValidation{
				Valid:   false,
				Status:  "error",
				Message: "Request failed",
			},
		},
	}
}
