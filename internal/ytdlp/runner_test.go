package ytdlp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCodecFromInfo(t *testing.T) {
	tests := []struct {
		name string
		info *TrackInfo
		want Codec
	}{
		{
			name: "nil info",
			info: nil,
			want: CodecUnknown,
		},
		{
			name: "opus in formats",
			info: &TrackInfo{Formats: []struct {
				ACodec string `json:"acodec"`
			}{{ACodec: "none"}, {ACodec: "opus"}}},
			want: CodecOpus,
		},
		{
			name: "mp4a counts as aac",
			info: &TrackInfo{Formats: []struct {
				ACodec string `json:"acodec"`
			}{{ACodec: "mp4a.40.2"}}},
			want: CodecAAC,
		},
		{
			name: "top-level fallback",
			info: &TrackInfo{ACodec: "aac"},
			want: CodecAAC,
		},
		{
			name: "nothing recognizable",
			info: &TrackInfo{ACodec: "vorbis"},
			want: CodecUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodecFromInfo(tt.info); got != tt.want {
				t.Errorf("CodecFromInfo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQualityForCodec(t *testing.T) {
	// Opus sources get VBR 0, everything else the medium setting.
	if got := qualityForCodec(CodecOpus); got != "0" {
		t.Errorf("opus quality = %q, want 0", got)
	}
	if got := qualityForCodec(CodecAAC); got != "2" {
		t.Errorf("aac quality = %q, want 2", got)
	}
	if got := qualityForCodec(CodecUnknown); got != "2" {
		t.Errorf("unknown quality = %q, want 2", got)
	}
}

func TestExpectedPath(t *testing.T) {
	dir := t.TempDir()
	opts := Options{OutputDir: dir, Playlist: "Deep Cuts"}
	info := &TrackInfo{Uploader: "user", UploadDate: "20220404", Title: "Spring Mix"}

	if _, ok := ExpectedPath(info, opts); ok {
		t.Fatal("should not find a file before one exists")
	}

	target := filepath.Join(dir, "user", "Deep Cuts")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(target, "20220404 - Spring Mix.mp3")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, ok := ExpectedPath(info, opts)
	if !ok {
		t.Fatal("expected to find the archived file")
	}
	if got != file {
		t.Errorf("path = %q, want %q", got, file)
	}
}

func TestExpectedPath_NoUploadDate(t *testing.T) {
	if _, ok := ExpectedPath(&TrackInfo{Uploader: "user"}, Options{OutputDir: "."}); ok {
		t.Fatal("no upload date means no expected path")
	}
}
