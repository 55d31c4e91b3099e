package dto

import "github.com/ikirmitz/mixcloud-backup/internal/model"

// TracklistData is the "data" payload of the cloudcastLookup query.
//
// Cloudcast is nil when the requested (username, slug) does not exist;
// the API reports this as a null lookup, not as a GraphQL error.
type TracklistData struct {
	Cloudcast *Cloudcast `json:"cloudcastLookup"`
}

// Cloudcast holds the section list of one upload.
type Cloudcast struct {
	Sections []JSONSection `json:"sections"`
}

// JSONSection is one tracklist section as returned by the API.
//
// TypeName discriminates the variant: "TrackSection" carries artist and
// song names, "ChapterSection" carries chapter text, anything else is
// an unrecognized section that still occupies a tracklist position.
// StartSeconds is nil when the section has no timing information.
type JSONSection struct {
	TypeName     string   `json:"__typename"`
	StartSeconds *float64 `json:"startSeconds"`
	ArtistName   string   `json:"artistName"`
	SongName     string   `json:"songName"`
	Chapter      string   `json:"chapter"`
}

// ToSection converts a JSONSection into the model variant.
func (js JSONSection) ToSection() model.Section {
	s := model.Section{StartSeconds: js.StartSeconds}

	switch js.TypeName {
	case "TrackSection":
		s.Kind = model.KindTrack
		s.Artist = js.ArtistName
		s.Song = js.SongName
	case "ChapterSection":
		s.Kind = model.KindChapter
		s.Chapter = js.Chapter
	default:
		s.Kind = model.KindOther
	}

	return s
}
