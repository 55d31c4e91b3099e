package model

// SectionKind discriminates the tracklist section variants returned by
// the Mixcloud API.
type SectionKind int

const (
	// KindTrack is a music track with artist and song names.
	KindTrack SectionKind = iota

	// KindChapter is a chapter marker with free-form text.
	KindChapter

	// KindOther is any section type this tool does not recognize.
	// It still occupies a position in the tracklist.
	KindOther
)

// Section is one raw tracklist entry as returned by the remote source.
//
// The Kind determines which label fields are populated: Artist/Song for
// KindTrack, Chapter for KindChapter, neither for KindOther. StartSeconds
// is nil when the source did not provide timing for the section.
type Section struct {
	// Kind selects the label fields below.
	Kind SectionKind

	// StartSeconds is the section start time, nil if not provided.
	StartSeconds *float64

	// Artist and Song are set for KindTrack.
	Artist string
	Song   string

	// Chapter is set for KindChapter.
	Chapter string
}

// Timed reports whether the source provided a start time for this section.
func (s Section) Timed() bool {
	return s.StartSeconds != nil
}

// Entry is one fully reconciled tracklist line.
//
// Entries always carry a usable timestamp, either from the source or
// synthesized by the reconciler. The sequence order mirrors the input
// section order and is never re-sorted by time.
type Entry struct {
	// Seconds is the entry start time, always present and non-negative.
	Seconds float64

	// Text is the display label. Empty only for KindOther sections.
	Text string
}

// Document is a reconciled tracklist ready for rendering.
//
// A Document is built once per processed file and consumed exactly once
// by the renderer; it has no identity beyond a single processing pass.
type Document struct {
	// Owner is the Mixcloud username, rendered as the [ar:] header.
	Owner string

	// Title is the display title, rendered as the [ti:] header.
	// Conventionally the audio file name without its extension.
	Title string

	// Entries are the reconciled tracklist lines in input order.
	Entries []Entry
}
