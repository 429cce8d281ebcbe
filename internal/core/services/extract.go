package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// songPatterns match the suggestion formats the model produces, most
// explicit first. The artist capture stops at sentence punctuation and
// music emoji so trailing prose stays out; the last two patterns catch
// responses that dropped the intro phrase or the quotes.
var songPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)try ['"]([^'"]+)['"] by ([^.!?,\n🎵🎶–—]+)`),
	regexp.MustCompile(`(?i)check out ['"]([^'"]+)['"] by ([^.!?,\n🎵🎶–—]+)`),
	regexp.MustCompile(`(?i)listen to ['"]([^'"]+)['"] by ([^.!?,\n🎵🎶–—]+)`),
	regexp.MustCompile(`(?i)go with ['"]([^'"]+)['"] by ([^.!?,\n🎵🎶–—]+)`),
	regexp.MustCompile(`(?i)(?:^|[^a-z])['"]([^'"]+)['"] by ([^.!?,\n🎵🎶–—]+)`),
	regexp.MustCompile(`(?i)try ([^🎵🎶\n–—]+?) by ([^.!?,\n🎵🎶–—]+)`),
}

// artistCutoff cuts the artist capture at the first trailing punctuation
// or descriptive filler word the model tacked on ("by Burna Boy, pure
// afrobeats energy" must end at "Burna Boy").
var artistCutoff = regexp.MustCompile(`(?i)(\s*[–—!?.,]|\s+(?:it's|that's|sweet|reggae|perfection|vibes|music|hits|pure|total|absolute|epic|energy|feels|mood|guaranteed|instant|serious|major)\b).*$`)

// emojiStrip removes music emoji and regional flag indicators from the
// artist capture.
var emojiStrip = regexp.MustCompile(`[🎵🎶🔥💯⚡🌍\x{1F1E6}-\x{1F1FF}]`)

const maxArtistRunes = 35

// extractSong pulls a "'Title' by Artist" descriptor out of generated
// prose. Patterns run in order and the first one that yields both a title
// and a cleaned artist wins.
func extractSong(text string) (string, bool) {
	for _, pattern := range songPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		artist := cleanArtist(m[2])
		if title == "" || artist == "" {
			continue
		}
		return domain.FormatDescriptor(title, artist), true
	}
	return "", false
}

func cleanArtist(artist string) string {
	artist = artistCutoff.ReplaceAllString(artist, "")
	artist = strings.TrimSpace(artist)
	artist = strings.TrimRight(artist, "!.?–—,-")

	// An overlong capture is almost always trailing sentence, not name.
	if utf8.RuneCountInString(artist) > maxArtistRunes {
		words := strings.Fields(artist)
		switch {
		case len(words) > 3:
			artist = strings.Join(words[:3], " ")
		case len(words) > 1:
			artist = strings.Join(words[:2], " ")
		}
	}

	artist = emojiStrip.ReplaceAllString(artist, "")
	return strings.TrimSpace(artist)
}
