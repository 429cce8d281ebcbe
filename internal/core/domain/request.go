package domain

// RequestKind identifies what the user is actually asking for.
type RequestKind string

const (
	KindSpecificSong RequestKind = "specific_song"
	KindArtistSearch RequestKind = "artist_search"
	KindProfile      RequestKind = "profile_request"
	KindCreator      RequestKind = "creator_request"
	KindCategory     RequestKind = "category"
	KindGeneral      RequestKind = "general"
)

// ClassifiedRequest is the classifier's verdict on a single message.
// It is built once per message and not modified afterwards. Kind decides
// which optional fields are set: specific_song carries SongName, ArtistName
// and SearchQuery; artist_search carries ArtistName and maybe ArtistID;
// category carries Category plus a non-empty SearchTerms list.
type ClassifiedRequest struct {
	Kind        RequestKind
	Category    string
	SearchTerms []string
	DisplayHint string
	SongName    string
	ArtistName  string
	ArtistID    string
	SearchQuery string
}

// TypeLabel is the request type as reported to clients: the category name
// for category requests, the kind itself otherwise.
func (r ClassifiedRequest) TypeLabel() string {
	if r.Kind == KindCategory && r.Category != "" {
		return r.Category
	}
	return string(r.Kind)
}
