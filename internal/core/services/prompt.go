package services

import (
	"fmt"
	"strings"

	"github.com/ewilliams-labs/segue/internal/core/domain"
)

// promptCandidateCap bounds how many candidates are shown to the model;
// more list than that buys nothing and burns tokens.
const promptCandidateCap = 20

// buildPrompt renders the generation prompt for a classified request.
// Specific songs get a short directive prompt, artist requests embed the
// artist's candidate list, everything else gets the full persona prompt.
func buildPrompt(message string, req domain.ClassifiedRequest, candidates, history []string) string {
	switch req.Kind {
	case domain.KindSpecificSong:
		return fmt.Sprintf(`You are Segue! The user wants %q by %s.

Respond excitedly and suggest exactly: Try '%s' by %s

Your response:`, req.SongName, req.ArtistName, req.SongName, req.ArtistName)

	case domain.KindArtistSearch:
		return fmt.Sprintf(`You are Segue! The user wants songs by %s.

Available songs by %s:
%s

Pick ONE song from the list above and be excited about %s!
Format: Try 'Song Name' by Artist Name
%s
Your response:`, req.ArtistName, req.ArtistName, candidateBlock(candidates), req.ArtistName, exclusionBlock(history))

	default:
		return fmt.Sprintf(`You are Segue, a cheeky, witty music chatbot with personality! You're like that friend who always knows the perfect song and loves to chat.

User said: %q

Your response should:
1. React to what they said in a clever, encouraging way, like a friend would
2. Reference the song's theme naturally in the conversation
3. Suggest that specific song with "Try 'Song Name' by Artist Name"
4. Keep it SHORT: 3-5 sentences maximum

WHAT THEY WANT: %s

AVAILABLE SONGS FOR THIS REQUEST:
%s
%s
INSTRUCTIONS:
- Be conversational and friendly first, then suggest music
- Use emojis naturally, not excessively
- Pick ONE song from the available list above
- Format the pick as: Try 'Song Name' by Artist Name
- NEVER repeat a song from the exclusion list above

Your conversational response (chat first, then suggest the song):`,
			message, req.DisplayHint, candidateBlock(candidates), exclusionBlock(history))
	}
}

// buildPersonalizedPrompt is buildPrompt for users with a listening
// profile: the persona prompt additionally carries their top genres and
// favorite artists so the model can nod to their taste. Specific-song and
// artist prompts are already fully determined, so they stay unchanged.
func buildPersonalizedPrompt(message string, req domain.ClassifiedRequest, candidates, history []string, profile domain.ListeningProfile) string {
	switch req.Kind {
	case domain.KindSpecificSong, domain.KindArtistSearch:
		return buildPrompt(message, req, candidates, history)
	}

	return fmt.Sprintf(`You are Segue, a nice and sassy music chatbot with a funny personality! You're that supportive friend who playfully teases but always has your back. You're witty, charming, and genuinely funny, never mean.

User said: %q

Their music taste (use SUBTLY when relevant):
- Top genres: %s
- Favorite artists: %s

WHAT THEY WANT: %s

AVAILABLE SONGS FOR THIS REQUEST:
%s
%s
YOUR MISSION:
1. React to what they said in your own unique way
2. Show you understand their vibe
3. Suggest ONE song from the available list: "Try 'Song Name' by Artist Name"
4. Keep it SHORT: 3-5 sentences maximum
- NEVER repeat a song from the exclusion list above

Be yourself, be funny, and absolutely nail this recommendation:`,
		message,
		tasteList(profile.TopGenres),
		tasteList(profile.FavoriteArtists),
		req.DisplayHint,
		candidateBlock(candidates),
		exclusionBlock(history))
}

// candidateBlock renders the pool as a dashed list, capped.
func candidateBlock(candidates []string) string {
	if len(candidates) == 0 {
		return "No matching songs found in the catalog"
	}
	if len(candidates) > promptCandidateCap {
		candidates = candidates[:promptCandidateCap]
	}
	var b strings.Builder
	for i, song := range candidates {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(song)
	}
	return b.String()
}

// exclusionBlock renders the already-suggested list as a hard rule. The
// shouting is deliberate: smaller models ignore politely phrased bans.
func exclusionBlock(history []string) string {
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nCRITICAL MEMORY RULE - ABSOLUTELY NEVER suggest these songs (already suggested):\n")
	for _, song := range history {
		b.WriteString("X ")
		b.WriteString(song)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "You MUST suggest a COMPLETELY DIFFERENT song from the available list. Memory check: %d songs already suggested - pick something NEW!\n", len(history))
	return b.String()
}

// tasteList joins the first few profile entries, with a placeholder while
// the profile is still empty.
func tasteList(entries []string) string {
	if len(entries) == 0 {
		return "Still analyzing..."
	}
	if len(entries) > 3 {
		entries = entries[:3]
	}
	return strings.Join(entries, ", ")
}
