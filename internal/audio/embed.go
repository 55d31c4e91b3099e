package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Capability classifies what kind of native lyrics tag a container
// supports. The mapping is closed: adding a container format means
// adding a capability case here, never special-casing a call site.
type Capability int

const (
	// CapabilityNone marks containers without a writable lyrics tag.
	CapabilityNone Capability = iota
	// CapabilityID3 marks ID3-tagged files (MP3).
	CapabilityID3
	// CapabilityMP4 marks MP4-atom-tagged files (M4A, M4B, MP4).
	CapabilityMP4
	// CapabilityXiph marks Xiph-comment-tagged files (FLAC).
	CapabilityXiph
)

// ErrNoNativeSupport reports that a container has no native lyrics
// tag. Callers fall back to a sidecar file.
var ErrNoNativeSupport = errors.New("audio: container has no native lyrics tag")

// String returns the capability name for log lines.
func (c Capability) String() string {
	switch c {
	case CapabilityID3:
		return "id3"
	case CapabilityMP4:
		return "mp4"
	case CapabilityXiph:
		return "xiph"
	default:
		return "none"
	}
}

// CapabilityForPath maps a file extension to its container capability.
//
// Ogg and Opus streams do use Xiph comments, but no maintained pure-Go
// library rewrites Ogg packets in place, so they map to CapabilityNone
// and get a sidecar instead.
func CapabilityForPath(path string) Capability {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return CapabilityID3
	case ".m4a", ".m4b", ".mp4":
		return CapabilityMP4
	case ".flac":
		return CapabilityXiph
	default:
		return CapabilityNone
	}
}

// Embed writes rendered lyrics text into the file's native tag slot,
// replacing any prior value. Returns ErrNoNativeSupport for containers
// without one; any other error is an I/O or tag-format failure.
func Embed(path, text string) error {
	switch CapabilityForPath(path) {
	case CapabilityID3:
		return embedID3(path, text)
	case CapabilityMP4:
		return embedMP4(path, text)
	case CapabilityXiph:
		return embedXiph(path, text)
	default:
		return ErrNoNativeSupport
	}
}

// SidecarPath derives the sidecar file path by swapping the source
// extension for ext (e.g. ".lrc").
func SidecarPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// WriteSidecar writes text next to the audio file, overwriting any
// existing sidecar, and returns the written path.
func WriteSidecar(path, ext, text string) (string, error) {
	sidecar := SidecarPath(path, ext)
	if err := os.WriteFile(sidecar, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write sidecar: %w", err)
	}
	return sidecar, nil
}
