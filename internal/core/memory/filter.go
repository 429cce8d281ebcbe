// Package memory implements the suggestion-history exclusion system: fuzzy
// duplicate detection across differently formatted song descriptors, so a
// track already shown to the client is never recommended again.
package memory

import (
	"fmt"
	"strings"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// degenerateTail is how many of the original candidates survive when
// filtering would otherwise remove everything. Returning a short tail beats
// returning nothing: the caller always has something to offer, at the cost
// of a possible repeat.
const degenerateTail = 5

// Diagnostics describes one filtering pass.
type Diagnostics struct {
	Blocked       int
	Kept          int
	Effectiveness float64
	Degenerate    bool
}

// entry is a descriptor pre-parsed for comparison. Title and artist are
// lower-cased; artist is empty when the descriptor did not parse.
type entry struct {
	original   string
	title      string
	artist     string
	normalized string
}

func parseEntry(descriptor string) entry {
	title, artist := domain.ParseDescriptor(descriptor)
	return entry{
		original:   descriptor,
		title:      strings.ToLower(title),
		artist:     strings.ToLower(artist),
		normalized: domain.NormalizeDescriptor(descriptor),
	}
}

// FilterOut returns the candidates that do not fuzzy-match any history
// entry. Candidate order is preserved and neither input is mutated.
//
// A candidate is dropped when any strategy matches any history entry:
//
//  1. exact equality after normalization,
//  2. parsed titles contained in one another (either direction),
//  3. identical parsed artists with at least one shared title word.
//
// If every candidate would be dropped, the last 5 of the original list are
// returned instead and Diagnostics.Degenerate is set.
func FilterOut(candidates, history []string) ([]string, Diagnostics) {
	if len(history) == 0 {
		return candidates, Diagnostics{Kept: len(candidates)}
	}

	seen := make([]entry, 0, len(history))
	for _, h := range history {
		seen = append(seen, parseEntry(h))
	}

	kept := make([]string, 0, len(candidates))
	blocked := 0
	for _, c := range candidates {
		if _, dup := matchHistory(parseEntry(c), seen); dup {
			blocked++
			continue
		}
		kept = append(kept, c)
	}

	diag := Diagnostics{Blocked: blocked, Kept: len(kept)}
	if len(candidates) > 0 {
		diag.Effectiveness = float64(blocked) / float64(len(candidates)) * 100
	}

	if len(kept) == 0 && len(candidates) > 0 {
		tail := candidates
		if len(tail) > degenerateTail {
			tail = tail[len(tail)-degenerateTail:]
		}
		diag.Degenerate = true
		diag.Kept = len(tail)
		return tail, diag
	}
	return kept, diag
}

// matchHistory reports whether the candidate duplicates any history entry,
// returning the matched entry's original form for logging.
func matchHistory(c entry, history []entry) (string, bool) {
	for _, h := range history {
		// Strategy 1: full string exact match after normalization.
		if c.normalized == h.normalized {
			return h.original, true
		}

		// Strategy 2: song titles contained in one another.
		if c.title != "" && h.title != "" {
			if strings.Contains(c.title, h.title) || strings.Contains(h.title, c.title) {
				return h.original, true
			}
		}

		// Strategy 3: same artist and the titles share a word. Catches
		// radio edit vs album version without blocking a different song
		// by a repeat artist.
		if c.artist != "" && h.artist != "" && c.artist == h.artist {
			if sharedWord(c.title, h.title) {
				return h.original, true
			}
		}
	}
	return "", false
}

func sharedWord(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	words := make(map[string]struct{})
	for _, w := range strings.Fields(a) {
		words[w] = struct{}{}
	}
	for _, w := range strings.Fields(b) {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

// Validate is the pre-flight health check for the caller's history. With a
// non-empty newDescriptor it vets that descriptor against every history
// entry using the title-containment rule and reports the first collision.
func Validate(history []string, newDescriptor string) domain.MemoryValidation {
	if len(history) == 0 {
		return domain.MemoryValidation{
			Valid:   true,
			Status:  "empty",
			Message: "Memory system ready - no previous suggestions",
		}
	}

	if newDescriptor != "" {
		nt, _ := domain.ParseDescriptor(newDescriptor)
		newTitle := strings.ToLower(nt)
		for _, h := range history {
			ht, _ := domain.ParseDescriptor(h)
			oldTitle := strings.ToLower(ht)
			if newTitle == "" || oldTitle == "" {
				continue
			}
			if strings.Contains(newTitle, oldTitle) || strings.Contains(oldTitle, newTitle) {
				return domain.MemoryValidation{
					Valid:   false,
					Status:  "duplicate",
					Message: fmt.Sprintf("Song '%s' is too similar to '%s'", newDescriptor, h),
				}
			}
		}
	}

	return domain.MemoryValidation{
		Valid:   true,
		Status:  "active",
		Message: fmt.Sprintf("Memory tracking %d unique songs", len(history)),
	}
}
