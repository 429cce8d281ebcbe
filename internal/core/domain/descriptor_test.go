package domain

import "testing"

func TestParseDescriptor(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTitle  string
		wantArtist string
	}{
		{
			name:       "quoted canonical form",
			input:      "'Anti-Hero' by Taylor Swift",
			wantTitle:  "Anti-Hero",
			wantArtist: "Taylor Swift",
		},
		{
			name:       "double quoted form",
			input:      `"Levitating" by Dua Lipa`,
			wantTitle:  "Levitating",
			wantArtist: "Dua Lipa",
		},
		{
			name:       "unquoted form",
			input:      "Blinding Lights by The Weeknd",
			wantTitle:  "Blinding Lights",
			wantArtist: "The Weeknd",
		},
		{
			name:       "no separator yields empty artist",
			input:      "random text",
			wantTitle:  "random text",
			wantArtist: "",
		},
		{
			name:       "trailing punctuation trimmed from artist",
			input:      "'Yellow' by Coldplay!",
			wantTitle:  "Yellow",
			wantArtist: "Coldplay",
		},
		{
			name:       "uppercase separator",
			input:      "'Creep' BY Radiohead",
			wantTitle:  "Creep",
			wantArtist: "Radiohead",
		},
		{
			name:       "artist tail after punctuation dropped",
			input:      "'Fix You' by Coldplay - Live at Glastonbury",
			wantTitle:  "Fix You",
			wantArtist: "Coldplay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, artist := ParseDescriptor(tt.input)
			if title != tt.wantTitle || artist != tt.wantArtist {
				t.Fatalf("ParseDescriptor(%q): got (%q, %q), want (%q, %q)",
					tt.input, title, artist, tt.wantTitle, tt.wantArtist)
			}
		})
	}
}

func TestNormalizeDescriptor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips quotes and lowercases",
			input: "'Anti-Hero' by Taylor Swift",
			want:  "anti-hero by taylor swift",
		},
		{
			name:  "collapses whitespace",
			input: "  Shape   of  You ",
			want:  "shape of you",
		},
		{
			name:  "mixed quote characters",
			input: `"Hello" by 'Adele'`,
			want:  "hello by adele",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDescriptor(tt.input)
			if got != tt.want {
				t.Fatalf("NormalizeDescriptor: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDescriptorRoundTrip(t *testing.T) {
	d := FormatDescriptor("Anti-Hero", "Taylor Swift")
	if d != "'Anti-Hero' by Taylor Swift" {
		t.Fatalf("FormatDescriptor: got %q", d)
	}
	title, artist := ParseDescriptor(d)
	if title != "Anti-Hero" || artist != "Taylor Swift" {
		t.Fatalf("round trip: got (%q, %q)", title, artist)
	}
}
