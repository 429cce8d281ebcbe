package services

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ewilliams-labs/segue/internal/core/domain"
	"github.com/ewilliams-labs/segue/internal/core/ports"
)

const (
	// maxFanOutTerms bounds how many search terms a single request may
	// spend on the catalog; classifier term lists can be much longer.
	maxFanOutTerms = 6
	// maxSubSearches is the concurrent sub-search ceiling per request.
	maxSubSearches   = 4
	subSearchTimeout = 3 * time.Second
	subSearchLimit   = 10

	categoryPoolCap = 20
	artistPoolCap   = 15

	// minRankPopularity drops obscure tracks at ranking time, on top of
	// whatever floor the catalog applied while collecting.
	minRankPopularity = 15

	// supplementFloor is the pool size under which a personalized search
	// is topped up with the generic genre set.
	supplementFloor = 10

	maxPersonalTerms = 3
)

// Retriever turns a classified request into a candidate pool of song
// descriptors. Retrieval never fails: catalog errors degrade to a smaller
// or empty pool, and the caller decides what an empty pool means.
type Retriever struct {
	catalog ports.Catalog
	log     zerolog.Logger
}

// NewRetriever constructs a Retriever around the given catalog.
func NewRetriever(catalog ports.Catalog, log zerolog.Logger) *Retriever {
	return &Retriever{
		catalog: catalog,
		log:     log.With().Str("component", "retriever").Logger(),
	}
}

// Retrieve builds the candidate pool for a classified request. Specific
// songs skip search entirely, profile and creator questions need no pool,
// categories fan out across the catalog, and everything else draws from
// the trending list. A non-nil profile personalizes category searches.
func (r *Retriever) Retrieve(ctx context.Context, req domain.ClassifiedRequest, profile *domain.ListeningProfile) []string {
	switch req.Kind {
	case domain.KindSpecificSong:
		return []string{req.SearchQuery}

	case domain.KindArtistSearch:
		return r.artistPool(ctx, req)

	case domain.KindProfile, domain.KindCreator:
		return nil

	case domain.KindCategory:
		return r.categoryPool(ctx, req, profile)

	default:
		songs, _, err := r.catalog.Trending(ctx)
		if err != nil {
			r.log.Warn().Err(err).Msg("trending pool unavailable")
			return nil
		}
		return songs
	}
}

func (r *Retriever) artistPool(ctx context.Context, req domain.ClassifiedRequest) []string {
	tracks, err := r.catalog.TracksForArtist(ctx, domain.ArtistMatch{
		Name: req.ArtistName,
		ID:   req.ArtistID,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("artist", req.ArtistName).Msg("artist search failed")
		return nil
	}
	return rankPool(tracks, artistPoolCap)
}

func (r *Retriever) categoryPool(ctx context.Context, req domain.ClassifiedRequest, profile *domain.ListeningProfile) []string {
	markets := marketsFor(req.Category)

	personal := personalizedTerms(profile, req.Category)
	if len(personal) == 0 {
		return r.fanOutSearch(ctx, headTerms(req.SearchTerms, maxFanOutTerms), markets)
	}

	// Personalized hits keep the head of the pool even when the generic
	// hits outscore them, so the two term sets are ranked separately.
	pool := mergeDescriptors(
		r.fanOutSearch(ctx, personal, markets),
		r.fanOutSearch(ctx, headTerms(req.SearchTerms, 3), markets),
		categoryPoolCap,
	)

	// A thin personalized pool is topped up with the full generic set so
	// taste-matching never starves the conversation of candidates.
	if len(pool) < supplementFloor {
		generic := r.fanOutSearch(ctx, headTerms(req.SearchTerms, maxFanOutTerms), markets)
		pool = mergeDescriptors(pool, generic, categoryPoolCap)
	}
	return pool
}

// fanOutSearch runs one catalog search per term and market pair, at most
// maxSubSearches at a time, and folds the hits into a single ranked pool.
// Each sub-search carries its own timeout so one slow market cannot stall
// the request; whatever failed or timed out is simply absent from the pool.
func (r *Retriever) fanOutSearch(ctx context.Context, terms, markets []string) []string {
	type subSearch struct {
		term   string
		market string
	}
	var subs []subSearch
	for _, term := range terms {
		for _, market := range markets {
			subs = append(subs, subSearch{term: term, market: market})
		}
	}
	if len(subs) == 0 {
		return nil
	}

	results := make([][]domain.Track, len(subs))
	sem := make(chan struct{}, maxSubSearches)
	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func(i int, sub subSearch) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			subCtx, cancel := context.WithTimeout(ctx, subSearchTimeout)
			defer cancel()

			tracks, err := r.catalog.SearchByTerms(subCtx, []string{sub.term}, sub.market, subSearchLimit)
			if err != nil {
				r.log.Warn().Err(err).
					Str("term", sub.term).
					Str("market", sub.market).
					Msg("sub-search failed")
				return
			}
			results[i] = tracks
		}(i, sub)
	}
	wg.Wait()

	// Fold in submission order so duplicate resolution does not depend on
	// goroutine scheduling.
	seen := make(map[string]struct{})
	var pool []domain.Track
	for _, tracks := range results {
		for _, tr := range tracks {
			d := tr.Descriptor()
			if _, dup := seen[d]; dup {
				continue
			}
			seen[d] = struct{}{}
			pool = append(pool, tr)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	return rankPool(pool, categoryPoolCap)
}

// rankPool orders tracks by composite quality score and renders the best
// as descriptors.
func rankPool(tracks []domain.Track, limit int) []string {
	type scored struct {
		track domain.Track
		score int
	}
	ranked := make([]scored, 0, len(tracks))
	for _, tr := range tracks {
		if tr.Popularity <= minRankPopularity {
			continue
		}
		ranked = append(ranked, scored{track: tr, score: smartScore(tr)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	pool := make([]string, 0, len(ranked))
	for _, s := range ranked {
		pool = append(pool, s.track.Descriptor())
	}
	return pool
}

// smartScore is the composite quality score: raw popularity plus bonuses
// for very popular tracks, an available preview and explicit content.
func smartScore(tr domain.Track) int {
	score := tr.Popularity
	switch {
	case tr.Popularity > 70:
		score += 20
	case tr.Popularity > 50:
		score += 10
	}
	if tr.PreviewURL != "" {
		score += 5
	}
	if tr.Explicit {
		score += 3
	}
	return score
}

// marketsFor picks the catalog markets most likely to carry a category.
// Regional categories search their home market first, US second.
func marketsFor(category string) []string {
	switch category {
	case "bengali", "tamil", "telugu", "punjabi", "hindi_bollywood":
		return []string{"IN", "US"}
	case "afrobeats":
		return []string{"NG", "US"}
	case "kpop":
		return []string{"KR", "US"}
	default:
		return []string{"US"}
	}
}

// personalizedTerms derives search terms from the user's top genres, biased
// toward the requested category: "indie pop" plus "sad_songs" becomes
// "indie pop sad songs". At most three so the generic terms keep a seat.
func personalizedTerms(profile *domain.ListeningProfile, category string) []string {
	if profile == nil {
		return nil
	}
	flavor := strings.ReplaceAll(category, "_", " ")
	var terms []string
	for _, genre := range profile.TopGenres {
		if len(terms) == maxPersonalTerms {
			break
		}
		genre = strings.TrimSpace(genre)
		if genre == "" {
			continue
		}
		terms = append(terms, genre+" "+flavor)
	}
	return terms
}

func headTerms(terms []string, n int) []string {
	if len(terms) > n {
		return terms[:n]
	}
	return terms
}

// mergeDescriptors appends extra descriptors after the primary ones,
// skipping duplicates, up to limit.
func mergeDescriptors(primary, extra []string, limit int) []string {
	seen := make(map[string]struct{}, len(primary))
	merged := make([]string, 0, limit)
	for _, d := range primary {
		seen[d] = struct{}{}
		merged = append(merged, d)
	}
	for _, d := range extra {
		if len(merged) >= limit {
			break
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		merged = append(merged, d)
	}
	return merged
}
