package memory

import (
	"sort"
	"strings"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// ArtistCount pairs an artist with how often they appear in history.
type ArtistCount struct {
	Artist string
	Count  int
}

// Insights summarizes listening patterns visible in a history list.
// Purely diagnostic; nothing in the pipeline branches on it.
type Insights struct {
	TotalSongs    int
	UniqueArtists int
	TopArtists    []ArtistCount
	Diversity     float64
}

// BuildInsights counts repeat artists across the history. Diversity is
// unique artists over total songs, so 1.0 means no artist repeated.
func BuildInsights(history []string) Insights {
	if len(history) == 0 {
		return Insights{}
	}

	counts := make(map[string]int)
	var order []string
	for _, h := range history {
		_, artist := domain.ParseDescriptor(h)
		artist = strings.ToLower(artist)
		if artist == "" {
			continue
		}
		if _, ok := counts[artist]; !ok {
			order = append(order, artist)
		}
		counts[artist]++
	}

	top := make([]ArtistCount, 0, len(order))
	for _, a := range order {
		top = append(top, ArtistCount{Artist: a, Count: counts[a]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > 3 {
		top = top[:3]
	}

	return Insights{
		TotalSongs:    len(history),
		UniqueArtists: len(counts),
		TopArtists:    top,
		Diversity:     float64(len(counts)) / float64(len(history)),
	}
}
