// Package intent turns free-form chat messages into structured music
// requests. Classification is a fixed rule chain evaluated in order:
// profile questions, creator questions, "song by artist" phrasings,
// artist lookups verified against the catalog, keyword categories, and
// finally a broad general fallback. Reordering the chain changes what
// wins for overlapping messages, so the order is part of the contract.
package intent

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// minArtistPopularity keeps obscure catalog matches from hijacking short
// messages. A lookup result at or below this popularity is treated as
// "no recognized artist" and the chain keeps falling through.
const minArtistPopularity = 15

// ArtistFinder resolves a free-text name to the best matching catalog
// artist. A nil match with a nil error means nothing plausible exists.
type ArtistFinder interface {
	FindArtist(ctx context.Context, name string) (*domain.ArtistMatch, error)
}

// Classifier is safe for concurrent use.
type Classifier struct {
	artists ArtistFinder
	log     zerolog.Logger
}

func NewClassifier(artists ArtistFinder, log zerolog.Logger) *Classifier {
	return &Classifier{
		artists: artists,
		log:     log.With().Str("component", "classifier").Logger(),
	}
}

var profilePhrases = []string{
	"what my name", "whats my name", "what's my name",
	"who am i", "my profile", "my spotify", "my music taste",
	"what do you know about me", "tell me about myself",
	"my genres", "my artists", "my preferences",
}

var creatorPhrases = []string{
	"who made you", "who created you", "who built you", "who developed you",
	"who is your creator", "who is your author", "who is your developer",
	"who programmed you", "who designed you", "who coded you",
	"name your creator", "name your author", "who is your maker",
	"who owns you", "who is behind you", "your creator", "your author",
	"who is your boss", "who is your god", "who is your queen",
}

// Both patterns capture lazily, so the artist group grabs everything
// after the first " by " for the anchored form and a single word for the
// verb-prefixed form.
var specificSongPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)\s+by\s+(.+?)$`),
	regexp.MustCompile(`(?i)(?:play|find|search|give me|want|show me)\s+(.+?)\s+by\s+(.+?)(?:\s|$)`),
}

// Classify never fails: catalog errors during artist verification are
// logged and the message falls through to the remaining rules.
func (c *Classifier) Classify(ctx context.Context, message string) domain.ClassifiedRequest {
	lower := strings.ToLower(message)

	if containsAny(lower, profilePhrases) {
		return domain.ClassifiedRequest{
			Kind:        domain.KindProfile,
			DisplayHint: "user profile and music taste information",
		}
	}

	if containsAny(lower, creatorPhrases) {
		return domain.ClassifiedRequest{
			Kind:        domain.KindCreator,
			DisplayHint: "creator and author information",
		}
	}

	if req, ok := matchSpecificSong(lower); ok {
		c.log.Debug().
			Str("song", req.SongName).
			Str("artist", req.ArtistName).
			Msg("specific song request")
		return req
	}

	if req, ok := c.matchArtistTemplates(ctx, lower); ok {
		return req
	}

	if isPotentialArtistQuery(message) {
		if req, ok := c.verifiedArtistRequest(ctx, strings.TrimSpace(message)); ok {
			c.log.Debug().Str("artist", req.ArtistName).Msg("dynamic artist detection")
			return req
		}
	}

	for _, r := range categoryRules {
		if r.match(lower) {
			return r.build()
		}
	}

	return generalRequest()
}

func matchSpecificSong(lower string) (domain.ClassifiedRequest, bool) {
	for _, re := range specificSongPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		song := strings.TrimSpace(m[1])
		artist := strings.TrimSpace(m[2])
		if len(song) <= 1 || len(artist) <= 1 {
			continue
		}
		song = titleWords(song)
		artist = titleWords(artist)
		query := domain.FormatDescriptor(song, artist)
		return domain.ClassifiedRequest{
			Kind:        domain.KindSpecificSong,
			SongName:    song,
			ArtistName:  artist,
			SearchQuery: query,
			SearchTerms: []string{query},
			DisplayHint: "the song " + query,
		}, true
	}
	return domain.ClassifiedRequest{}, false
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// titleWords upper-cases the first letter of each space-separated word
// and lower-cases the rest, like catalog display titles.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
