package services

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// Phrase banks for templated responses. Every generated failure route
// lands on one of these, so they carry the same voice as the model prompt.
var (
	fallbackOpeners = []string{
		"Okay bestie,", "Listen up,", "Alright alright,", "Oh honey,",
		"You know what?", "Here's the tea:", "Plot twist:", "Real talk:",
		"Not to be dramatic but", "I'm about to change your life:",
		"Your playlist is about to thank me:", "This is your moment:",
	}

	fallbackBoosts = []string{
		"this is about to be PERFECT", "you're gonna obsess over this",
		"this one hits different", "absolute chef's kiss vibes",
		"this is THE one", "trust me on this", "you'll thank me later",
		"this is your new anthem", "prepare to be blessed",
		"this is going straight to your favorites",
	}

	fallbackIntros = []string{
		"Try", "Give", "Check out", "Listen to", "Go with",
		"Your ears need", "Time for", "Here's", "Meet your new obsession:",
		"Introducing", "Say hello to", "Ready for",
	}

	// noSongsResponses keep the conversation alive when the candidate pool
	// is completely empty; each embeds a safe evergreen pick.
	noSongsResponses = []string{
		"My database is having main character syndrome right now, but your taste is immaculate! Try 'As It Was' by Harry Styles while I get my life together! ✨",
		"Plot twist: my song library decided to take a coffee break! But I KNOW you've got taste, so try 'Anti-Hero' by Taylor Swift! ☕",
		"Not my database acting up when you need me most! Your vibe deserves better - try 'Flowers' by Miley Cyrus while I fix this mess! 🌸",
		"Listen, my song collection is being dramatic, but I refuse to leave you hanging! Try 'Unholy' by Sam Smith while I sort this out! 😈",
		"My database said 'not today' but your music taste said 'ALWAYS'! Go stream 'Bad Habit' by Steve Lacy while I handle business! 🎵",
	}

	artistNoSongsResponses = []string{
		"Listen, I love %s too, but my database is being dramatic right now. Try searching directly on Spotify!",
		"%s is iconic! Unfortunately my song collection is having commitment issues. Check Spotify directly!",
		"We stan %s! But my database chose violence today. Hit up Spotify for the goods!",
		"%s supremacy! My database is being messy though - try Spotify for their latest!",
	}

	profileResponses = []string{
		"Hey %s! Your listening history tells me you're into %s and you clearly have taste since you love %s! Your music personality is *chef's kiss* 🎵",
		"Listen %s, I've been analyzing your taste and WOW! %s plus %s? Immaculate vibes only! ✨",
		"Okay %s, based on your listening I can tell you're cultured! %s and %s prove you've got main character energy! 💅",
	}

	noProfileResponses = []string{
		"I don't know you yet! Connect your Spotify and I'll learn your whole musical personality. Until then, ask me for a song and watch me cook! 🎵",
		"Your profile is a mystery to me so far - link your Spotify and I'll start taking notes. Meanwhile, want a recommendation anyway?",
		"No profile on file yet! Hook up your Spotify and I'll read your music taste like a book. For now, just tell me a mood!",
	}

	creatorResponses = []string{
		"I'm Segue, cooked up by one very caffeinated developer who believes every conversation deserves a soundtrack! 🎵",
		"A music-obsessed developer built me to do one thing: find your next favorite song. Mission accepted!",
		"My creator? A developer who got tired of 'what should I listen to?' going unanswered. So here I am!",
	}

	defaultReactions = []string{
		"Your music taste is about to get an upgrade! 🎵",
		"Prepare for audio perfection!",
		"This one's about to change your whole playlist game:",
		"Your ears are about to thank me:",
		"Plot twist: this song is about to become your personality:",
	}
)

// genreReactions are keyed by the first segment of the category name, so
// "sad_kpop" opens with the sad reaction and "chill_afrobeats" with the
// chill one.
var genreReactions = map[string][]string{
	"bengali": {
		"Bengali music hits different! 🇧🇩 This one's about to transport you:",
		"OH we're going Bengali? Prepare for pure soul music:",
		"Bengali vibes incoming! Your heart is about to FEEL this:",
	},
	"afrobeats": {
		"Afrobeats energy! 🌍 Your body's about to move involuntarily:",
		"African rhythms incoming! This one's pure fire:",
		"Afrobeats time! Get ready for those unstoppable vibes:",
	},
	"kpop": {
		"K-pop perfection! 🇰🇷 This is about to be your new obsession:",
		"Korean excellence incoming! Prepare to add this to every playlist:",
		"K-pop magic! Your ears are about to be blessed:",
	},
	"sad": {
		"Alright, who hurt you? 😭 Let's feel these feelings together:",
		"Sad hours activated. This one's perfect for the dramatic window stare:",
		"Time for emotional damage! This track hits right in the feels:",
	},
	"happy": {
		"YES! We love this energy! ✨ Time to amplify those good vibes:",
		"Happy vibes only! This one's pure sunshine:",
		"Good mood music incoming! Your day is about to get even better:",
	},
	"chill": {
		"Chill mode activated 😌 This one's perfect for your vibe:",
		"Relaxation station! This track is pure serenity:",
		"Chill vibes incoming! Time to unwind with this one:",
	},
}

// Responder produces templated recommendation text when the generative
// collaborator fails or a request kind never reaches it. Randomness is
// injected so tests can pin the choices.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder constructs a Responder. A nil rng gets a time-seeded one.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// Creative builds a recommendation line from a random candidate. Category
// requests open with a genre reaction, everything else with an opener and
// a confidence boost. With no candidates at all, one of the evergreen
// no-songs responses is returned instead.
func (r *Responder) Creative(req domain.ClassifiedRequest, candidates []string, displayName string) string {
	if len(candidates) == 0 {
		return r.pick(noSongsResponses)
	}

	song := r.pick(candidates)
	intro := r.pick(fallbackIntros)

	if req.Kind == domain.KindCategory {
		return fmt.Sprintf("%s %s %s", r.reaction(req.Category), intro, song)
	}

	opener := r.pick(fallbackOpeners)
	if displayName != "" && r.coin() {
		opener = opener + " " + displayName + ","
	}
	return fmt.Sprintf("%s %s! %s %s", opener, r.pick(fallbackBoosts), intro, song)
}

// Artist answers a failed artist-search generation. With candidates the
// creative line is re-addressed to the artist's fans; without them the
// response owns up and points at the provider.
func (r *Responder) Artist(req domain.ClassifiedRequest, candidates []string) string {
	if len(candidates) == 0 {
		return fmt.Sprintf(r.pick(artistNoSongsResponses), req.ArtistName)
	}
	line := r.Creative(req, candidates, "")
	return strings.ReplaceAll(line, "Try", "Okay "+req.ArtistName+" fan, try")
}

// Profile summarizes the stored listening profile, or asks the user to
// connect one.
func (r *Responder) Profile(profile *domain.ListeningProfile) string {
	if profile == nil {
		return r.pick(noProfileResponses)
	}

	name := profile.DisplayName
	if name == "" {
		name = "music lover"
	}
	return fmt.Sprintf(r.pick(profileResponses),
		name,
		tasteOr(profile.TopGenres, "amazing music"),
		tasteOr(profile.FavoriteArtists, "great artists"))
}

// Creator answers who-made-you questions.
func (r *Responder) Creator() string {
	return r.pick(creatorResponses)
}

func (r *Responder) reaction(category string) string {
	key := category
	if i := strings.IndexByte(key, '_'); i >= 0 {
		key = key[:i]
	}
	if reactions, ok := genreReactions[key]; ok {
		return r.pick(reactions)
	}
	return r.pick(defaultReactions)
}

func (r *Responder) pick(list []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return list[r.rng.Intn(len(list))]
}

func (r *Responder) coin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(2) == 0
}

func tasteOr(entries []string, fallback string) string {
	if len(entries) == 0 {
		return fallback
	}
	if len(entries) > 2 {
		entries = entries[:2]
	}
	return strings.Join(entries, ", ")
}
