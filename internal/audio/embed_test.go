package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// writeMP3Fixture creates a file carrying an empty ID3v2.4 tag ahead
// of dummy audio bytes.
func writeMP3Fixture(t *testing.T, dir string) string {
	t.Helper()
	header := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0}
	data := append(header, []byte("not really audio")...)

	path := filepath.Join(dir, "mix.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbed_ID3(t *testing.T) {
	path := writeMP3Fixture(t, t.TempDir())

	const text = "[ar:user]\n[ti:mix]\n\n[00:00.00] A – B\n"
	if err := Embed(path, text); err != nil {
		t.Fatalf("embed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tag.Close()

	frames := tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	if len(frames) != 1 {
		t.Fatalf("got %d USLT frames, want 1", len(frames))
	}
	uslt, ok := frames[0].(id3v2.UnsynchronisedLyricsFrame)
	if !ok {
		t.Fatalf("frame type %T, want UnsynchronisedLyricsFrame", frames[0])
	}
	if uslt.Lyrics != text {
		t.Errorf("lyrics = %q, want %q", uslt.Lyrics, text)
	}
}

func TestEmbed_ID3ReplacesPrior(t *testing.T) {
	path := writeMP3Fixture(t, t.TempDir())

	if err := Embed(path, "old text"); err != nil {
		t.Fatalf("first embed: %v", err)
	}
	if err := Embed(path, "new text"); err != nil {
		t.Fatalf("second embed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tag.Close()

	frames := tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	if len(frames) != 1 {
		t.Fatalf("got %d USLT frames after replace, want 1", len(frames))
	}
	if uslt := frames[0].(id3v2.UnsynchronisedLyricsFrame); uslt.Lyrics != "new text" {
		t.Errorf("lyrics = %q, want %q", uslt.Lyrics, "new text")
	}
}

func TestEmbed_NoNativeSupport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mix.ogg")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Embed(path, "text"); !errors.Is(err, ErrNoNativeSupport) {
		t.Fatalf("err = %v, want ErrNoNativeSupport", err)
	}
}

func TestWriteSidecar(t *testing.T) {
	dir := t.TempDir()
	audioPath := filepath.Join(dir, "mix.opus")

	sidecar, err := WriteSidecar(audioPath, ".lrc", "first")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if sidecar != filepath.Join(dir, "mix.lrc") {
		t.Errorf("sidecar path = %q", sidecar)
	}

	// Overwrites unconditionally.
	if _, err := WriteSidecar(audioPath, ".lrc", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := os.ReadFile(sidecar)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("sidecar content = %q, want %q", data, "second")
	}
}
