package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// Template phrasings that name an artist. The lazy groups capture only
// up to the next space, so "songs from taylor swift" resolves "taylor"
// and relies on the catalog search to complete the name.
var artistTemplatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:give me|play|find|show me|want)\s+(?:songs?|music|tracks?)\s+(?:by|from)\s+(.+?)(?:\s|$)`),
	regexp.MustCompile(`(?i)(?:^|\s)songs?\s+(?:by|from)\s+(.+?)(?:\s|$)`),
	regexp.MustCompile(`(?i)(?:^|\s)(.+?)\s+songs?(?:\s|$)`),
	regexp.MustCompile(`(?i)(?:music|tracks?)\s+(?:by|from)\s+(.+?)(?:\s|$)`),
	regexp.MustCompile(`(?i)(?:^|\s)(.+?)\s+(?:music|artist|band)(?:\s|$)`),
}

// excludedArtistNames disqualifies captures that are clearly moods,
// fillers, or request verbs rather than names.
var excludedArtistNames = map[string]struct{}{
	"happy": {}, "sad": {}, "chill": {}, "me": {}, "some": {}, "good": {},
	"new": {}, "old": {}, "best": {}, "favorite": {}, "latest": {},
	"popular": {}, "trending": {}, "hot": {}, "cool": {}, "nice": {},
	"great": {}, "awesome": {}, "amazing": {}, "perfect": {}, "love": {},
	"like": {}, "want": {}, "need": {}, "get": {}, "find": {}, "search": {},
	"play": {}, "listen": {}, "hear": {}, "show": {}, "give": {}, "the": {},
	"a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "for": {},
	"with": {}, "random": {}, "any": {}, "something": {}, "anything": {},
}

var bannedArtistSubstrings = []string{"songs", "music", "tracks"}

func (c *Classifier) matchArtistTemplates(ctx context.Context, lower string) (domain.ClassifiedRequest, bool) {
	for _, re := range artistTemplatePatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if !plausibleArtistName(name) {
			continue
		}
		if req, ok := c.verifiedArtistRequest(ctx, name); ok {
			c.log.Debug().Str("artist", req.ArtistName).Msg("explicit artist request")
			return req, true
		}
	}
	return domain.ClassifiedRequest{}, false
}

func plausibleArtistName(name string) bool {
	if len(name) <= 2 {
		return false
	}
	if _, bad := excludedArtistNames[name]; bad {
		return false
	}
	for _, w := range bannedArtistSubstrings {
		if strings.Contains(name, w) {
			return false
		}
	}
	return len(strings.Fields(name)) <= 3
}

// verifiedArtistRequest asks the catalog whether the name resolves to a
// real artist popular enough to trust. Lookup errors are swallowed so
// classification can continue with the remaining rules.
func (c *Classifier) verifiedArtistRequest(ctx context.Context, name string) (domain.ClassifiedRequest, bool) {
	match, err := c.artists.FindArtist(ctx, name)
	if err != nil {
		c.log.Debug().Err(err).Str("query", name).Msg("artist lookup failed")
		return domain.ClassifiedRequest{}, false
	}
	if match == nil || match.Popularity <= minArtistPopularity {
		return domain.ClassifiedRequest{}, false
	}
	return domain.ClassifiedRequest{
		Kind:       domain.KindArtistSearch,
		ArtistName: match.Name,
		ArtistID:   match.ID,
		SearchTerms: []string{
			match.Name + " songs",
			match.Name + " popular",
			match.Name + " hits",
		},
		DisplayHint: "songs by " + match.Name,
	}, true
}

// Vocabulary that rules a short message out as an artist-name guess:
// moods, commands, bare music terms, descriptors, and genre or region
// words the category rules below will claim anyway.
var nonArtistIndicators = map[string]struct{}{
	"happy": {}, "sad": {}, "angry": {}, "excited": {}, "chill": {},
	"relaxed": {}, "stressed": {}, "love": {}, "hate": {}, "tired": {},
	"energetic": {}, "lonely": {}, "confident": {},

	"play": {}, "find": {}, "search": {}, "give": {}, "show": {},
	"get": {}, "want": {}, "need": {}, "hello": {}, "hi": {}, "hey": {},
	"thanks": {}, "help": {}, "please": {},

	"music": {}, "song": {}, "songs": {}, "playlist": {}, "album": {},
	"track": {}, "tracks": {},

	"good": {}, "bad": {}, "best": {}, "worst": {}, "new": {}, "old": {},
	"latest": {}, "trending": {}, "popular": {}, "random": {}, "any": {},
	"some": {}, "something": {}, "anything": {},

	"rock": {}, "pop": {}, "rap": {}, "jazz": {}, "blues": {},
	"country": {}, "electronic": {}, "classical": {}, "folk": {},
	"metal": {}, "punk": {}, "reggae": {}, "disco": {},

	"hindi": {}, "spanish": {}, "korean": {}, "japanese": {}, "french": {},
	"german": {}, "bollywood": {}, "kpop": {}, "latin": {}, "african": {},
	"american": {}, "british": {},
}

var commandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`give me.*`),
	regexp.MustCompile(`play some.*`),
	regexp.MustCompile(`find.*music`),
	regexp.MustCompile(`i want.*`),
	regexp.MustCompile(`show me.*`),
	regexp.MustCompile(`.*songs? (by|from).*`),
}

// isPotentialArtistQuery decides whether a message is short and opaque
// enough to be worth a catalog lookup as a bare artist name.
func isPotentialArtistQuery(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	words := strings.Fields(msg)

	if len(words) > 4 {
		return false
	}
	if len(msg) < 2 {
		return false
	}

	allKnown := true
	for _, w := range words {
		if _, ok := nonArtistIndicators[w]; !ok {
			allKnown = false
			break
		}
	}
	if allKnown {
		return false
	}

	for _, re := range commandPatterns {
		if re.MatchString(msg) {
			return false
		}
	}
	return true
}
