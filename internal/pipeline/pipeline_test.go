package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/ikirmitz/mixcloud-backup/internal/audio"
	"github.com/ikirmitz/mixcloud-backup/internal/mixcloud"
	"github.com/ikirmitz/mixcloud-backup/internal/model"
)

// stubSource returns canned sections per lookup, or an error.
type stubSource struct {
	sections map[string][]model.Section
	err      error
}

func (s *stubSource) Tracklist(ctx context.Context, lookup model.Lookup) ([]model.Section, error) {
	if s.err != nil {
		return nil, s.err
	}
	sections, ok := s.sections[lookup.String()]
	if !ok {
		return nil, mixcloud.ErrNotFound
	}
	return sections, nil
}

func stubProbe(view audio.View) Prober {
	return func(path string) (audio.View, error) {
		return view, nil
	}
}

func untimedTracks(n int) []model.Section {
	sections := make([]model.Section, n)
	for i := range sections {
		sections[i] = model.Section{Kind: model.KindTrack, Artist: "Artist", Song: "Song"}
	}
	return sections
}

func writeMP3Fixture(t *testing.T, dir, name string) string {
	t.Helper()
	header := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 0}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, append(header, []byte("audio")...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessFile_EndToEnd(t *testing.T) {
	path := writeMP3Fixture(t, t.TempDir(), "mix.mp3")

	source := &stubSource{sections: map[string][]model.Section{
		"user/mix-name": untimedTracks(3),
	}}
	view := audio.View{
		Slots:         map[string]string{"TXXX:purl": "https://www.mixcloud.com/user/mix-name/"},
		Duration:      3600,
		DurationKnown: true,
	}

	p := NewProcessor(source, stubProbe(view), Options{Embed: true, WriteLRC: true})
	r := p.ProcessFile(context.Background(), path)

	if r.Outcome != OutcomeEmbedded {
		t.Fatalf("outcome = %v (%s, err %v), want OutcomeEmbedded", r.Outcome, r.Detail, r.Err)
	}

	// Sidecar carries the synthesized uniform spacing.
	data, err := os.ReadFile(audio.SidecarPath(path, ".lrc"))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"[ar:user]",
		"[ti:mix]",
		"[00:00.00] Artist – Song",
		"[20:00.00] Artist – Song",
		"[40:00.00] Artist – Song",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("sidecar missing %q:\n%s", want, text)
		}
	}

	// Native tag carries the same document.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer tag.Close()
	frames := tag.GetFrames(tag.CommonID("Unsynchronised lyrics/text transcription"))
	if len(frames) != 1 {
		t.Fatalf("got %d USLT frames, want 1", len(frames))
	}
}

func TestProcessFile_SingleSectionSkips(t *testing.T) {
	path := writeMP3Fixture(t, t.TempDir(), "mix.mp3")

	source := &stubSource{sections: map[string][]model.Section{
		"user/mix-name": untimedTracks(1),
	}}
	view := audio.View{
		Slots:         map[string]string{"TXXX:purl": "https://www.mixcloud.com/user/mix-name/"},
		Duration:      3600,
		DurationKnown: true,
	}

	p := NewProcessor(source, stubProbe(view), Options{Embed: true})
	r := p.ProcessFile(context.Background(), path)

	if r.Outcome != OutcomeSkipped {
		t.Fatalf("outcome = %v, want OutcomeSkipped", r.Outcome)
	}
	if !strings.Contains(r.Detail, "1 section") {
		t.Errorf("detail = %q, want section count reason", r.Detail)
	}
	if _, err := os.Stat(audio.SidecarPath(path, ".lrc")); !os.IsNotExist(err) {
		t.Error("no sidecar should be written on skip")
	}
}

func TestProcessFile_SkipReasons(t *testing.T) {
	tests := []struct {
		name       string
		view       audio.View
		wantDetail string
	}{
		{
			name:       "no source url",
			view:       audio.View{Slots: map[string]string{"TIT2": "Title"}},
			wantDetail: "no source URL",
		},
		{
			name:       "unparseable url",
			view:       audio.View{Slots: map[string]string{"TXXX:purl": "https://example.com/nope"}},
			wantDetail: "unparseable",
		},
		{
			name:       "unknown lookup",
			view:       audio.View{Slots: map[string]string{"TXXX:purl": "https://www.mixcloud.com/ghost/gone/"}},
			wantDetail: "no tracklist",
		},
	}

	source := &stubSource{sections: map[string][]model.Section{}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeMP3Fixture(t, t.TempDir(), "mix.mp3")
			p := NewProcessor(source, stubProbe(tt.view), Options{Embed: true})

			r := p.ProcessFile(context.Background(), path)
			if r.Outcome != OutcomeSkipped {
				t.Fatalf("outcome = %v (err %v), want OutcomeSkipped", r.Outcome, r.Err)
			}
			if !strings.Contains(r.Detail, tt.wantDetail) {
				t.Errorf("detail = %q, want it to mention %q", r.Detail, tt.wantDetail)
			}
		})
	}
}

func TestProcessFile_TransportFailure(t *testing.T) {
	path := writeMP3Fixture(t, t.TempDir(), "mix.mp3")

	source := &stubSource{err: errors.New("connection reset")}
	view := audio.View{
		Slots: map[string]string{"TXXX:purl": "https://www.mixcloud.com/user/mix/"},
	}

	p := NewProcessor(source, stubProbe(view), Options{Embed: true})
	r := p.ProcessFile(context.Background(), path)

	if r.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %v, want OutcomeFailed", r.Outcome)
	}
	if r.Err == nil || !strings.Contains(r.Err.Error(), "connection reset") {
		t.Errorf("err = %v, want wrapped transport error", r.Err)
	}
}

func TestProcessFile_NoNativeSupportFallsBackToSidecar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mix.opus")
	if err := os.WriteFile(path, []byte("OggS"), 0o644); err != nil {
		t.Fatal(err)
	}

	source := &stubSource{sections: map[string][]model.Section{
		"user/mix-name": untimedTracks(3),
	}}
	view := audio.View{
		Slots:         map[string]string{"purl": "https://www.mixcloud.com/user/mix-name/"},
		Duration:      300,
		DurationKnown: true,
	}

	// Sidecar not requested, but the container has no native tag; the
	// document must not be dropped.
	p := NewProcessor(source, stubProbe(view), Options{Embed: true, WriteLRC: false})
	r := p.ProcessFile(context.Background(), path)

	if r.Outcome != OutcomeSidecar {
		t.Fatalf("outcome = %v (err %v), want OutcomeSidecar", r.Outcome, r.Err)
	}
	if _, err := os.Stat(filepath.Join(dir, "mix.lrc")); err != nil {
		t.Errorf("sidecar not written: %v", err)
	}
}

func TestProcessFile_UntimeableSkips(t *testing.T) {
	path := writeMP3Fixture(t, t.TempDir(), "mix.mp3")

	source := &stubSource{sections: map[string][]model.Section{
		"user/mix-name": untimedTracks(3),
	}}
	view := audio.View{
		Slots: map[string]string{"TXXX:purl": "https://www.mixcloud.com/user/mix-name/"},
		// duration unknown
	}

	p := NewProcessor(source, stubProbe(view), Options{Embed: true})
	r := p.ProcessFile(context.Background(), path)

	if r.Outcome != OutcomeSkipped {
		t.Fatalf("outcome = %v, want OutcomeSkipped", r.Outcome)
	}
	if !strings.Contains(r.Detail, "no timing") {
		t.Errorf("detail = %q", r.Detail)
	}
}
