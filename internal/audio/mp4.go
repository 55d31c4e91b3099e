package audio

import (
	"github.com/zhaarey/go-mp4tag"
)

// embedMP4 writes text into the lyrics atom (©lyr) of an MP4 family
// file, replacing any existing value.
func embedMP4(path, text string) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return err
	}
	defer mp4.Close()

	return mp4.Write(&mp4tag.MP4Tags{Lyrics: text}, []string{})
}
