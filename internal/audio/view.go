package audio

import "strings"

// slotOrder is the tag slot priority for locating the source URL.
//
// Specific purl slots come first; the generic comment field is last
// because comment text is the most likely to hold unrelated content.
var slotOrder = []string{
	"TXXX:purl", // ID3 user-defined text
	"purl",      // MP4 freeform atom / Vorbis field
	"WXXX:purl", // ID3 user-defined URL
	"WPUB",      // ID3 podcast/publisher URL
	"WOAS",      // ID3 official audio source URL
	"comment",
}

// View is a uniform, format-agnostic picture of one file's metadata.
//
// Slots maps normalized slot names to string values. ID3 user-defined
// frames are keyed "TXXX:<description>" and "WXXX:<description>", MP4
// freeform atoms and Vorbis fields by their bare lowercase name, and
// the comment field by "comment" across all formats.
type View struct {
	Slots map[string]string

	// Duration is the playing time in seconds; valid only when
	// DurationKnown is true.
	Duration      float64
	DurationKnown bool
}

// LocateSourceURL returns the value of the highest-priority populated
// slot, or false when none of the candidate slots carries a value.
// Absence is an expected outcome for files that did not come from
// Mixcloud, not an error.
func (v View) LocateSourceURL() (string, bool) {
	for _, slot := range slotOrder {
		if value := strings.TrimSpace(v.Slots[slot]); value != "" {
			return value, true
		}
	}
	return "", false
}
