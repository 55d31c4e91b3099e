package audio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
	"github.com/simonhull/audiometa"
)

// Probe reads a file's metadata into a uniform View.
//
// Tag slots come from dhowden/tag, which exposes raw frames across
// ID3, MP4 and Vorbis containers; the duration comes from audiometa.
// A file without any tags yields an empty but valid View. A missing
// or unreadable duration leaves DurationKnown false rather than
// failing, since reconciliation can still work from source timestamps.
func Probe(path string) (View, error) {
	f, err := os.Open(path)
	if err != nil {
		return View{}, err
	}
	defer f.Close()

	view := View{Slots: map[string]string{}}

	m, err := tag.ReadFrom(f)
	switch {
	case err == nil:
		fillSlots(&view, m)
	case errors.Is(err, tag.ErrNoTagsFound):
		// untagged file, nothing to locate
	default:
		return View{}, fmt.Errorf("read tags: %w", err)
	}

	if af, err := audiometa.Open(path); err == nil {
		if d := af.Audio.Duration; d > 0 {
			view.Duration = d.Seconds()
			view.DurationKnown = true
		}
		af.Close()
	}

	return view, nil
}

// fillSlots normalizes raw tag frames into the View's slot map.
func fillSlots(view *View, m tag.Metadata) {
	id3 := strings.HasPrefix(string(m.Format()), "ID3")

	for key, value := range m.Raw() {
		slot, text, ok := normalizeFrame(key, value, id3)
		if !ok {
			continue
		}
		if _, exists := view.Slots[slot]; !exists {
			view.Slots[slot] = text
		}
	}

	if c := m.Comment(); c != "" {
		view.Slots["comment"] = c
	}
}

// normalizeFrame maps one raw frame to a (slot, value) pair.
//
// ID3 user-defined frames carry their description in a Comm payload
// and become "TXXX:<description>" or "WXXX:<description>" with the
// description lowercased. Plain string frames keep their key for ID3
// and are lowercased for atom and Vorbis containers, whose field
// names are case-insensitive.
func normalizeFrame(key string, value any, id3 bool) (string, string, bool) {
	switch v := value.(type) {
	case string:
		if !id3 {
			key = strings.ToLower(key)
		}
		return key, v, true
	case *tag.Comm:
		if v == nil {
			return "", "", false
		}
		if id3 && v.Description != "" {
			key = key + ":" + strings.ToLower(v.Description)
		}
		return key, v.Text, true
	default:
		return "", "", false
	}
}
