package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	ioutils "github.com/ikirmitz/mixcloud-backup/internal/io"
)

// ErrAlreadyArchived reports that yt-dlp skipped a URL because the
// download archive already lists it. The caller can usually find the
// file from a previous run via ExpectedPath.
var ErrAlreadyArchived = errors.New("ytdlp: already in download archive")

// Codec identifies the source audio codec of a stream.
type Codec string

const (
	CodecOpus    Codec = "opus"
	CodecAAC     Codec = "aac"
	CodecUnknown Codec = "unknown"
)

// TrackInfo is the subset of yt-dlp's -J output the toolkit uses.
type TrackInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Uploader   string  `json:"uploader"`
	UploadDate string  `json:"upload_date"`
	Ext        string  `json:"ext"`
	ACodec     string  `json:"acodec"`
	Duration   float64 `json:"duration"`
	WebpageURL string  `json:"webpage_url"`
	Formats    []struct {
		ACodec string `json:"acodec"`
	} `json:"formats"`
}

// Options controls one download invocation.
type Options struct {
	// OutputDir is the root below which yt-dlp's output template
	// creates <uploader>/<playlist>/<date> - <title>.<ext>.
	OutputDir string
	// ArchivePath is the yt-dlp download archive file.
	ArchivePath string
	// Playlist names the subdirectory; "Uploads" for plain account
	// backups.
	Playlist string
	// SleepInterval and MaxSleepInterval throttle requests, in seconds.
	SleepInterval    float64
	MaxSleepInterval float64
	// ToMP3 re-encodes the download to MP3 with a codec-dependent
	// quality instead of keeping the native stream.
	ToMP3 bool
	// Codec selects the MP3 quality when ToMP3 is set.
	Codec Codec
}

// Runner invokes the yt-dlp binary.
//
// Downloading from Mixcloud means HLS stream assembly, signature
// handling and site-specific extraction, all of which yt-dlp already
// does well; the toolkit shells out rather than reimplementing any of
// it.
type Runner struct {
	path string
}

// NewRunner creates a Runner for the given binary path. An empty path
// means "yt-dlp" on $PATH.
func NewRunner(path string) *Runner {
	if path == "" {
		path = "yt-dlp"
	}
	return &Runner{path: path}
}

// ExtractInfo fetches a URL's metadata without downloading (-J).
func (r *Runner) ExtractInfo(ctx context.Context, url string) (*TrackInfo, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.path, "-J", "--no-warnings", url)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, commandError("extract info", err, &stderr)
	}

	var info TrackInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return nil, fmt.Errorf("ytdlp: decode info: %w", err)
	}
	return &info, nil
}

// Download fetches one URL and returns the final audio file path as
// printed by yt-dlp after all postprocessing.
//
// Returns ErrAlreadyArchived when the archive suppressed the download;
// the file from the earlier run is not located here because yt-dlp
// prints nothing in that case.
func (r *Runner) Download(ctx context.Context, url string, opts Options) (string, error) {
	template := filepath.Join(opts.OutputDir,
		"%(uploader)s", ioutils.SanitizeFileName(opts.Playlist),
		"%(upload_date)s - %(title)s.%(ext)s")

	args := []string{
		"--format", "bestaudio/best",
		"--output", template,
		"--no-warnings",
		"--extract-audio",
		"--embed-metadata",
		"--embed-thumbnail",
		"--print", "after_move:filepath",
		"--no-simulate",
	}
	if opts.ArchivePath != "" {
		args = append(args, "--download-archive", opts.ArchivePath)
	}
	if opts.SleepInterval > 0 {
		args = append(args, "--sleep-interval", fmt.Sprint(opts.SleepInterval))
	}
	if opts.MaxSleepInterval > 0 {
		args = append(args, "--max-sleep-interval", fmt.Sprint(opts.MaxSleepInterval))
	}
	if opts.ToMP3 {
		args = append(args, "--audio-format", "mp3", "--audio-quality", qualityForCodec(opts.Codec))
	}
	args = append(args, url)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", commandError("download", err, &stderr)
	}

	path := strings.TrimSpace(stdout.String())
	if path == "" {
		return "", ErrAlreadyArchived
	}
	return path, nil
}

// ExpectedPath locates a previously downloaded file for info by
// globbing "<upload_date> - *" in the directory the output template
// would have used. Returns false when no earlier download is found.
func ExpectedPath(info *TrackInfo, opts Options) (string, bool) {
	if info == nil || info.UploadDate == "" {
		return "", false
	}

	dir := filepath.Join(opts.OutputDir, info.Uploader, ioutils.SanitizeFileName(opts.Playlist))
	matches, err := filepath.Glob(filepath.Join(dir, info.UploadDate+" - *"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// CodecFromInfo inspects the acodec fields of the info dict and its
// formats. Mixcloud serves opus or aac depending on upload age; the
// answer drives the MP3 re-encode quality.
func CodecFromInfo(info *TrackInfo) Codec {
	if info == nil {
		return CodecUnknown
	}
	for _, f := range info.Formats {
		if c := codecFromACodec(f.ACodec); c != CodecUnknown {
			return c
		}
	}
	return codecFromACodec(info.ACodec)
}

func codecFromACodec(acodec string) Codec {
	acodec = strings.ToLower(acodec)
	switch {
	case strings.Contains(acodec, "opus"):
		return CodecOpus
	case strings.Contains(acodec, "aac"), strings.Contains(acodec, "mp4a"):
		return CodecAAC
	default:
		return CodecUnknown
	}
}

// qualityForCodec maps the source codec to an ffmpeg VBR quality.
// Opus sources get the best quality; aac sources get a medium setting
// to avoid inflating an already lossy stream.
func qualityForCodec(c Codec) string {
	if c == CodecOpus {
		return "0"
	}
	return "2"
}

// commandError folds yt-dlp's stderr into the returned error.
func commandError(op string, err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg != "" {
		if i := strings.LastIndex(msg, "\n"); i >= 0 {
			msg = msg[i+1:]
		}
		return fmt.Errorf("ytdlp: %s: %s", op, msg)
	}
	return fmt.Errorf("ytdlp: %s: %w", op, err)
}
