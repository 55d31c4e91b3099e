package audio

import (
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// embedXiph writes text into the LYRICS Vorbis comment of a FLAC
// file. Existing comment fields other than LYRICS are preserved; the
// comment block is rebuilt rather than appended to, since FLAC allows
// only one Vorbis comment block.
func embedXiph(path, text string) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return err
	}

	comment := flacvorbis.New()
	var rest []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			rest = append(rest, block)
			continue
		}
		existing, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}
		comment.Vendor = existing.Vendor
		for _, c := range existing.Comments {
			if !isLyricsComment(c) {
				comment.Comments = append(comment.Comments, c)
			}
		}
	}

	if err := comment.Add("LYRICS", text); err != nil {
		return err
	}

	block := comment.Marshal()
	f.Meta = append(rest, &block)

	return f.Save(path)
}

// isLyricsComment reports whether a raw "FIELD=value" comment is a
// LYRICS field. Vorbis field names are case-insensitive.
func isLyricsComment(c string) bool {
	const field = "LYRICS="
	if len(c) < len(field) {
		return false
	}
	for i := 0; i < len(field); i++ {
		ch := c[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch != field[i] {
			return false
		}
	}
	return true
}
