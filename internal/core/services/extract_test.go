package services

import "testing"

func TestExtractSong(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "try with quotes",
			text: "Oh this is your moment! Try 'Heat Waves' by Glass Animals. You'll love it.",
			want: "'Heat Waves' by Glass Animals",
			ok:   true,
		},
		{
			name: "check out phrasing",
			text: "You should check out 'Die For You' by Joji 🎵 absolute tears",
			want: "'Die For You' by Joji",
			ok:   true,
		},
		{
			name: "listen to phrasing stops at comma",
			text: "listen to 'Washing Machine Heart' by Mitski, trust me on this",
			want: "'Washing Machine Heart' by Mitski",
			ok:   true,
		},
		{
			name: "go with phrasing stops at dash",
			text: "Go with 'Ye' by Burna Boy – pure fire",
			want: "'Ye' by Burna Boy",
			ok:   true,
		},
		{
			name: "bare quoted descriptor without intro",
			text: "Here you go: 'About You' by The 1975!",
			want: "'About You' by The 1975",
			ok:   true,
		},
		{
			name: "unquoted backup pattern",
			text: "Try Golden Hour by JVKE!",
			want: "'Golden Hour' by JVKE",
			ok:   true,
		},
		{
			name: "filler words trimmed from artist",
			text: "Try 'Essence' by Wizkid sweet afrobeats vibes",
			want: "'Essence' by Wizkid",
			ok:   true,
		},
		{
			name: "overlong artist capped to three words",
			text: "Try 'Intro' by The Absolutely Gigantic Collective Of Many People",
			want: "'Intro' by The Absolutely Gigantic",
			ok:   true,
		},
		{
			name: "emoji stripped from artist",
			text: "Try 'Dynamite' by BTS 🇰🇷🔥",
			want: "'Dynamite' by BTS",
			ok:   true,
		},
		{
			name: "no suggestion present",
			text: "I love music so much! What mood are you in?",
			ok:   false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractSong(tc.text)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v (got %q)", ok, tc.ok, got)
			}
			if got != tc.want {
				t.Fatalf("extracted %q, want %q", got, tc.want)
			}
		})
	}
}
