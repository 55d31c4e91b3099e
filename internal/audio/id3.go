package audio

import (
	"github.com/bogem/id3v2"
)

// embedID3 writes text into the USLT frame of an MP3 file, replacing
// any existing lyrics frames.
func embedID3(path, text string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.DeleteFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          "eng",
		ContentDescriptor: "",
		Lyrics:            text,
	})

	return tag.Save()
}

// EmbedArtwork embeds JPEG bytes as the front-cover picture of an MP3
// file, replacing any existing attached pictures. Non-MP3 containers
// are left untouched.
func EmbedArtwork(path string, artwork []byte) error {
	if CapabilityForPath(path) != CapabilityID3 || len(artwork) == 0 {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.DeleteFrames(tag.CommonID("Attached picture"))
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})

	return tag.Save()
}
