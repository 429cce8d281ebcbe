package spotify

import (
	"strings"
	"unicode"
)

const (
	// acceptScore is the floor for returning a match at all; earlyExitScore
	// lets the search stop before trying the looser query strategy.
	acceptScore    = 0.6
	earlyExitScore = 0.8
)

// matchScore weighs title similarity over artist similarity. Titles carry
// more signal: covers and remixes share titles but rarely both fields.
func matchScore(targetTitle, targetArtist, resultTitle, resultArtist string) float64 {
	titleSim := stringSimilarity(targetTitle, resultTitle)
	artistSim := stringSimilarity(targetArtist, resultArtist)
	return 0.6*titleSim + 0.4*artistSim
}

// stringSimilarity grades two names: 1.0 for a normalized exact match,
// 0.9 when one contains the other, otherwise the word-overlap ratio of
// the two token sets.
func stringSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	na := normalizeForMatch(a)
	nb := normalizeForMatch(b)
	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.9
	}

	wordsA := wordSet(na)
	wordsB := wordSet(nb)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// normalizeForMatch lowers the string and drops everything that is not a
// word character or whitespace, so "Anti-Hero" and "antihero" compare equal.
func normalizeForMatch(s string) string {
	var out strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			out.WriteRune(r)
		}
	}
	return strings.TrimSpace(out.String())
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
