package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Descriptor patterns, quoted form first. The quoted form wins when both
// could match so that "'Song' by Artist" never leaves a quote in the title.
var (
	quotedDescriptorRe   = regexp.MustCompile(`(?i)['"]([^'"]+)['"] by (.+)`)
	unquotedDescriptorRe = regexp.MustCompile(`(?i)([^'"]+) by (.+)`)
	whitespaceRe         = regexp.MustCompile(`\s+`)
	artistTailRe         = regexp.MustCompile(`[.!?–—,-]+.*$`)
)

// ParseDescriptor extracts (title, artist) from a "'Title' by Artist" style
// string. The unquoted "Title by Artist" form is accepted as a fallback.
// If no "by" separator is present the whole string is returned as the title
// with an empty artist; callers must treat an empty artist as unparseable.
func ParseDescriptor(descriptor string) (title, artist string) {
	for _, re := range []*regexp.Regexp{quotedDescriptorRe, unquotedDescriptorRe} {
		if m := re.FindStringSubmatch(descriptor); m != nil {
			return strings.TrimSpace(m[1]), trimDescriptorArtist(m[2])
		}
	}
	return strings.TrimSpace(descriptor), ""
}

// NormalizeDescriptor lowers the string, strips quote characters and
// collapses runs of whitespace. Used for the exact-match fast path only.
func NormalizeDescriptor(descriptor string) string {
	s := strings.ToLower(descriptor)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// FormatDescriptor renders the canonical exchange form.
func FormatDescriptor(title, artist string) string {
	return fmt.Sprintf("'%s' by %s", title, artist)
}

// trimDescriptorArtist drops everything from the first punctuation run
// onward, so "Queen - Live at Wembley" yields just "Queen".
func trimDescriptorArtist(artist string) string {
	return strings.TrimSpace(artistTailRe.ReplaceAllString(strings.TrimSpace(artist), ""))
}
