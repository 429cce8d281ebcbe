package services

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/ports"
)

func newTestComposer(classifier Classifier, catalog *mockCatalog, gen *mockGenerator, videos *mockVideos, profiles *mockProfiles) *Composer {
	return NewComposer(
		classifier,
		NewRetriever(catalog, zerolog.Nop()),
		gen,
		catalog,
		videos,
		profiles,
		NewResponder(rand.New(rand.NewSource(1))),
		zerolog.Nop(),
	)
}

func TestHandleChat_GeneralFlow(t *testing.T) {
	catalog := &mockCatalog{
		trending: []string{"'Heat Waves' by Glass Animals", "'As It Was' by Harry Styles"},
		trackByQuery: map[string]*domain.Track{
			"'Heat Waves' by Glass Animals": {Title: "Heat Waves", Artist: "Glass Animals", Popularity: 90},
		},
	}
	gen := &mockGenerator{text: "Oh you're in luck! Try 'Heat Waves' by Glass Animals 🎵"}
	videos := &mockVideos{video: &domain.Video{Title: "Heat Waves (Official Video)", URL: "https://www.youtube.com/watch?v=abc"}}

	c := newTestComposer(
		stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindGeneral, DisplayHint: "some great music"}},
		catalog, gen, videos, &mockProfiles{},
	)
	resp := c.HandleChat(context.Background(), "recommend me something", nil, "")

	if resp.Response != gen.text {
		t.Fatalf("response = %q, want generated text", resp.Response)
	}
	if resp.Spotify == nil || resp.Spotify.Title != "Heat Waves" {
		t.Fatalf("spotify = %+v, want Heat Waves", resp.Spotify)
	}
	if resp.YouTube == nil || resp.YouTube.Title != "Heat Waves (Official Video)" {
		t.Fatalf("youtube = %+v, want official video", resp.YouTube)
	}
	if resp.Personalized || resp.UserID != "" || resp.Preferences != nil {
		t.Fatalf("anonymous request got personalization: %+v", resp)
	}

	stats := resp.MemoryStats
	if stats.SongsRemembered != 0 || stats.SongsBeforeFilter != 2 || stats.SongsAfterFilter != 2 {
		t.Fatalf("unexpected filter stats: %+v", stats)
	}
	if stats.RequestType != "general" {
		t.Fatalf("request type = %q", stats.RequestType)
	}
	if stats.ActualSongReturned != "'Heat Waves' by Glass Animals" {
		t.Fatalf("actual song = %q", stats.ActualSongReturned)
	}
	if !stats.SearchSuccessful || !stats.MemoryActive {
		t.Fatalf("flags off: %+v", stats)
	}
	if stats.Validation.Status != "empty" {
		t.Fatalf("validation status = %q", stats.Validation.Status)
	}
}

func TestHandleChat_MemoryFilterAndPrompt(t *testing.T) {
	history := []string{"'As It Was' by Harry Styles"}
	catalog := &mockCatalog{
		trending: []string{
			"'Heat Waves' by Glass Animals",
			"'As It Was' by Harry Styles",
			"'Levitating' by Dua Lipa",
		},
	}
	gen := &mockGenerator{text: "Try 'Heat Waves' by Glass Animals!"}

	c := newTestComposer(
		stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindGeneral, DisplayHint: "some great music"}},
		catalog, gen, &mockVideos{}, &mockProfiles{},
	)
	resp := c.HandleChat(context.Background(), "another one please", history, "")

	stats := resp.MemoryStats
	if stats.SongsRemembered != 1 || stats.SongsBeforeFilter != 3 || stats.SongsAfterFilter != 2 || stats.SongsFilteredOut != 1 {
		t.Fatalf("unexpected filter stats: %+v", stats)
	}
	if want := float64(1) / float64(3) * 100; stats.FilterEffectiveness != want {
		t.Fatalf("effectiveness = %v, want %v", stats.FilterEffectiveness, want)
	}
	if stats.Validation.Status != "active" {
		t.Fatalf("validation status = %q", stats.Validation.Status)
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("generator called %d times", len(gen.prompts))
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "CRITICAL MEMORY RULE") {
		t.Fatal("prompt missing the exclusion rule")
	}
	if !strings.Contains(prompt, "'As It Was' by Harry Styles") {
		t.Fatal("prompt missing the excluded song")
	}
	if !strings.Contains(prompt, "- 'Heat Waves' by Glass Animals") {
		t.Fatal("prompt missing the surviving candidate")
	}
}

func TestHandleChat_GenerationFailureFallsBack(t *testing.T) {
	catalog := &mockCatalog{
		byTerm: map[string][]domain.Track{
			"sad songs|US": {{Title: "Only Song", Artist: "One Band", Popularity: 60}},
		},
	}
	gen := &mockGenerator{err: &ports.GenerationError{Reason: ports.GenerationQuota, Err: errors.New("quota hit")}}

	c := newTestComposer(
		stubClassifier{req: domain.ClassifiedRequest{
			Kind:        domain.KindCategory,
			Category:    "sad",
			SearchTerms: []string{"sad songs"},
			DisplayHint: "sad emotional music",
		}},
		catalog, gen, &mockVideos{}, &mockProfiles{},
	)
	resp := c.HandleChat(context.Background(), "i want to cry", nil, "")

	if !strings.Contains(resp.Response, "'Only Song' by One Band") {
		t.Fatalf("fallback response %q does not name the candidate", resp.Response)
	}
	if resp.Spotify != nil || resp.YouTube != nil {
		t.Fatalf("media should be empty, got %+v / %+v", resp.Spotify, resp.YouTube)
	}
	if resp.MemoryStats.SearchSuccessful {
		t.Fatal("search reported successful with no media")
	}
}

func TestHandleChat_RunsWithoutGeneratorOrVideos(t *testing.T) {
	catalog := &mockCatalog{
		byTerm: map[string][]domain.Track{
			"sad songs|US": {{Title: "Only Song", Artist: "One Band", Popularity: 60}},
		},
		trackByQuery: map[string]*domain.Track{
			"'Only Song' by One Band": {Title: "Only Song", Artist: "One Band", Popularity: 60},
		},
	}

	// Untyped nils: a nil *mock wrapped in the interface would not read
	// as unconfigured.
	c := NewComposer(
		stubClassifier{req: domain.ClassifiedRequest{
			Kind:        domain.KindCategory,
			Category:    "sad",
			SearchTerms: []string{"sad songs"},
			DisplayHint: "sad emotional music",
		}},
		NewRetriever(catalog, zerolog.Nop()),
		nil,
		catalog,
		nil,
		&mockProfiles{},
		NewResponder(rand.New(rand.NewSource(1))),
		zerolog.Nop(),
	)
	resp := c.HandleChat(context.Background(), "i want to cry", nil, "")

	if !strings.Contains(resp.Response, "'Only Song' by One Band") {
		t.Fatalf("templated response %q does not name the candidate", resp.Response)
	}
	if resp.Spotify == nil || resp.Spotify.Title != "Only Song" {
		t.Fatalf("spotify = %+v, want the catalog hit", resp.Spotify)
	}
	if resp.YouTube != nil {
		t.Fatalf("youtube = %+v, want nil with no video finder", resp.YouTube)
	}
	if resp.MemoryStats.Error {
		t.Fatal("degraded run flagged as error")
	}
}

func TestHandleChat_SpecificSongUsesOriginalQuery(t *testing.T) {
	catalog := &mockCatalog{
		trackByQuery: map[string]*domain.Track{
			"'Glimpse of Us' by Joji": {Title: "Glimpse of Us", Artist: "Joji", Popularity: 85},
		},
	}
	// No extractable suggestion in the reply; the classifier's query must
	// drive the lookup instead.
	gen := &mockGenerator{text: "YES. Incredible choice. Playing it now!"}

	history := []string{"'Glimpse of Us' by Joji"}
	c := newTestComposer(
		stubClassifier{req: domain.ClassifiedRequest{
			Kind:        domain.KindSpecificSong,
			SongName:    "Glimpse of Us",
			ArtistName:  "Joji",
			SearchQuery: "'Glimpse of Us' by Joji",
		}},
		catalog, gen, &mockVideos{}, &mockProfiles{},
	)
	resp := c.HandleChat(context.Background(), "glimpse of us by joji", history, "")

	if resp.Spotify == nil || resp.Spotify.Title != "Glimpse of Us" {
		t.Fatalf("spotify = %+v, want Glimpse of Us", resp.Spotify)
	}
	// Specific requests skip both the memory filter and the violation
	// check, even when the song is already in history.
	stats := resp.MemoryStats
	if stats.SongsBeforeFilter != 1 || stats.SongsAfterFilter != 1 || stats.SongsFilteredOut != 0 {
		t.Fatalf("specific request was filtered: %+v", stats)
	}
	if stats.ActualSongReturned != "'Glimpse of Us' by Joji" {
		t.Fatalf("actual song = %q", stats.ActualSongReturned)
	}
}

func TestHandleChat_NoMediaRetriesFirstCandidate(t *testing.T) {
	catalog := &mockCatalog{
		trending: []string{"'Levitating' by Dua Lipa", "'Good 4 U' by Olivia Rodrigo"},
		trackByQuery: map[string]*domain.Track{
			"'Levitating' by Dua Lipa": {Title: "Levitating", Artist: "Dua Lipa", Popularity: 88},
		},
	}
	// The generated pick resolves nowhere, so the first candidate ships.
	gen := &mockGenerator{text: "Try 'Totally Made Up' by Nobody Real"}

	c := newTestComposer(
		stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindGeneral, DisplayHint: "some great music"}},
		catalog, gen, &mockVideos{}, &mockProfiles{},
	)
	resp := c.HandleChat(context.Background(), "surprise me", nil, "")

	if resp.Spotify == nil || resp.Spotify.Title != "Levitating" {
		t.Fatalf("spotify = %+v, want the first candidate", resp.Spotify)
	}
	if resp.MemoryStats.ActualSongReturned != "'Levitating' by Dua Lipa" {
		t.Fatalf("actual song = %q", resp.MemoryStats.ActualSongReturned)
	}

	wantAsked := []string{"'Totally Made Up' by Nobody Real", "'Levitating' by Dua Lipa"}
	if !reflect.DeepEqual(catalog.trackAsked, wantAsked) {
		t.Fatalf("lookups = %v, want %v", catalog.trackAsked, wantAsked)
	}
}

func TestHandleChat_MemoryViolationWalksAlternates(t *testing.T) {
	history := []string{"'Heat Waves' by Glass Animals"}
	pool := []string{"'A Song' by X", "'B Song' by Y", "'C Song' by Z"}

	t.Run("alternate replaces the catalog side only", func(t *testing.T) {
		catalog := &mockCatalog{
			trending: pool,
			trackByQuery: map[string]*domain.Track{
				"'Heat Waves' by Glass Animals": {Title: "Heat Waves", Artist: "Glass Animals", Popularity: 90},
				"'B Song' by Y":                 {Title: "B Song", Artist: "Y", Popularity: 70},
			},
		}
		gen := &mockGenerator{text: "Try 'Heat Waves' by Glass Animals 🎵"}
		videos := &mockVideos{video: &domain.Video{Title: "Heat Waves (Official Video)", URL: "https://www.youtube.com/watch?v=abc"}}

		c := newTestComposer(
			stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindGeneral, DisplayHint: "some great music"}},
			catalog, gen, videos, &mockProfiles{},
		)
		resp := c.HandleChat(context.Background(), "more music", history, "")

		if resp.Spotify == nil || resp.Spotify.Title != "B Song" {
			t.Fatalf("spotify = %+v, want the alternate", resp.Spotify)
		}
		if resp.MemoryStats.ActualSongReturned != "'B Song' by Y" {
			t.Fatalf("actual song = %q", resp.MemoryStats.ActualSongReturned)
		}
		// The video from the original pick stays; it matches the text.
		if resp.YouTube == nil || resp.YouTube.Title != "Heat Waves (Official Video)" {
			t.Fatalf("youtube = %+v, want the original video", resp.YouTube)
		}
		// The walk starts at the second candidate.
		wantAsked := []string{"'Heat Waves' by Glass Animals", "'B Song' by Y"}
		if !reflect.DeepEqual(catalog.trackAsked, wantAsked) {
			t.Fatalf("lookups = %v, want %v", catalog.trackAsked, wantAsked)
		}
	})

	t.Run("violating song is kept when no alternate resolves", func(t *testing.T) {
		catalog := &mockCatalog{
			trending: pool,
			trackByQuery: map[string]*domain.Track{
				"'Heat Waves' by Glass Animals": {Title: "Heat Waves", Artist: "Glass Animals", Popularity: 90},
			},
		}
		gen := &mockGenerator{text: "Try 'Heat Waves' by Glass Animals 🎵"}

		c := newTestComposer(
			stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindGeneral, DisplayHint: "some great music"}},
			catalog, gen, &mockVideos{}, &mockProfiles{},
		)
		resp := c.HandleChat(context.Background(), "more music", history, "")

		if resp.Spotify == nil || resp.Spotify.Title != "Heat Waves" {
			t.Fatalf("spotify = %+v, want the violating song kept", resp.Spotify)
		}
		if resp.MemoryStats.ActualSongReturned != "'Heat Waves' by Glass Animals" {
			t.Fatalf("actual song = %q", resp.MemoryStats.ActualSongReturned)
		}
	})
}

func TestHandleChat_ProfileAndCreatorShortCircuit(t *testing.T) {
	profile := &domain.ListeningProfile{
		UserID:          "user-1",
		DisplayName:     "Alex",
		TopGenres:       []string{"indie pop", "shoegaze"},
		FavoriteArtists: []string{"keshi", "beabadoobee"},
	}

	t.Run("profile question answered from the stored profile", func(t *testing.T) {
		catalog := &mockCatalog{}
		gen := &mockGenerator{}

		c := newTestComposer(
			stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindProfile}},
			catalog, gen, &mockVideos{}, &mockProfiles{profile: profile},
		)
		resp := c.HandleChat(context.Background(), "what's my music taste", nil, "user-1")

		if !strings.Contains(resp.Response, "Alex") {
			t.Fatalf("response %q does not address the user", resp.Response)
		}
		if len(gen.prompts) != 0 {
			t.Fatal("generator should not be called for profile questions")
		}
		if n := len(catalog.calls()); n != 0 {
			t.Fatalf("expected no retrieval, got %d sub-searches", n)
		}
		if !resp.Personalized || resp.UserID != "user-1" {
			t.Fatalf("personalization flags wrong: %+v", resp)
		}
		if resp.Preferences == nil || !resp.Preferences.Active {
			t.Fatalf("preferences block missing: %+v", resp.Preferences)
		}
		if resp.MemoryStats.RequestType != "profile_request" {
			t.Fatalf("request type = %q", resp.MemoryStats.RequestType)
		}
	})

	t.Run("profile question without a profile asks to connect", func(t *testing.T) {
		c := newTestComposer(
			stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindProfile}},
			&mockCatalog{}, &mockGenerator{}, &mockVideos{}, &mockProfiles{},
		)
		resp := c.HandleChat(context.Background(), "what's my name", nil, "stranger")

		if resp.Response == "" {
			t.Fatal("empty response")
		}
		if resp.Personalized {
			t.Fatal("unknown user reported as personalized")
		}
	})

	t.Run("creator question gets a templated answer", func(t *testing.T) {
		gen := &mockGenerator{}
		c := newTestComposer(
			stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindCreator}},
			&mockCatalog{}, gen, &mockVideos{}, &mockProfiles{},
		)
		resp := c.HandleChat(context.Background(), "who made you", nil, "")

		if resp.Response == "" {
			t.Fatal("empty response")
		}
		if len(gen.prompts) != 0 {
			t.Fatal("generator should not be called for creator questions")
		}
		if resp.MemoryStats.RequestType != "creator_request" {
			t.Fatalf("request type = %q", resp.MemoryStats.RequestType)
		}
	})
}

func TestHandleChat_PersonalizedPromptCarriesTaste(t *testing.T) {
	profile := &domain.ListeningProfile{
		UserID:          "user-1",
		DisplayName:     "Alex",
		TopGenres:       []string{"indie pop"},
		FavoriteArtists: []string{"keshi"},
	}
	catalog := &mockCatalog{trending: []string{"'Like I Need U' by keshi"}}
	gen := &mockGenerator{text: "Try 'Like I Need U' by keshi"}

	c := newTestComposer(
		stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindGeneral, DisplayHint: "some great music"}},
		catalog, gen, &mockVideos{}, &mockProfiles{profile: profile},
	)
	resp := c.HandleChat(context.Background(), "anything good?", nil, "user-1")

	if len(gen.prompts) != 1 {
		t.Fatalf("generator called %d times", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "indie pop") {
		t.Fatal("prompt missing the user's genres")
	}
	if !strings.Contains(gen.prompts[0], "music taste") {
		t.Fatal("prompt missing the taste section")
	}
	if !resp.Personalized || resp.Preferences == nil {
		t.Fatalf("personalization missing: %+v", resp)
	}
	if !reflect.DeepEqual(resp.Preferences.TopGenres, []string{"indie pop"}) {
		t.Fatalf("preferences genres = %v", resp.Preferences.TopGenres)
	}
}

func TestHandleChat_RecoversFromPanic(t *testing.T) {
	catalog := &mockCatalog{trending: []string{"'Heat Waves' by Glass Animals"}}
	gen := &mockGenerator{panicWith: "generator exploded"}

	c := newTestComposer(
		stubClassifier{req: domain.ClassifiedRequest{Kind: domain.KindGeneral, DisplayHint: "some great music"}},
		catalog, gen, &mockVideos{}, &mockProfiles{},
	)
	resp := c.HandleChat(context.Background(), "hello", nil, "")

	if resp.Response != "Sorry, I had trouble processing your request!" {
		t.Fatalf("response = %q, want the apology", resp.Response)
	}
	if !resp.MemoryStats.Error {
		t.Fatal("error flag not set")
	}
	if resp.Spotify != nil || resp.YouTube != nil {
		t.Fatal("media fields should be null")
	}
}

// --- Mocks ---

// stubClassifier returns a fixed classification for any message.
type stubClassifier struct {
	req domain.ClassifiedRequest
}

func (s stubClassifier) Classify(ctx context.Context, message string) domain.ClassifiedRequest {
	return s.req
}

// mockGenerator captures prompts and returns a canned completion.
type mockGenerator struct {
	text      string
	err       error
	panicWith string

	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if m.panicWith != "" {
		panic(m.panicWith)
	}
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// mockVideos returns one canned video for every query.
type mockVideos struct {
	video *domain.Video
	err   error

	asked []string
}

func (m *mockVideos) Find(ctx context.Context, query string) (*domain.Video, error) {
	m.asked = append(m.asked, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.video, nil
}

// mockProfiles serves a single stored profile; everything else is a miss.
type mockProfiles struct {
	profile *domain.ListeningProfile
	err     error
}

func (m *mockProfiles) Get(ctx context.Context, userID string) (*domain.ListeningProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profile == nil || m.profile.UserID != userID {
		return nil, ports.ErrProfileNotFound
	}
	return m.profile, nil
}

func (m *mockProfiles) Put(ctx context.Context, profile domain.ListeningProfile) error {
	return nil
}
