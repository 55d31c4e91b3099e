package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ikirmitz/mixcloud-backup/internal/audio"
	"github.com/ikirmitz/mixcloud-backup/internal/tracklist"
)

// Stats aggregates outcomes over one walk.
type Stats struct {
	Embedded int
	Sidecars int
	Skipped  int
	Failed   int
}

func (s *Stats) count(r Result) {
	switch r.Outcome {
	case OutcomeEmbedded:
		s.Embedded++
	case OutcomeSidecar:
		s.Sidecars++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// Walk traverses root and runs the pipeline on every audio file whose
// extension is in the allow-list. Failures stay contained to their
// file or directory entry; report receives one Result per processed
// file, in traversal order. Only cancellation aborts the walk.
func (p *Processor) Walk(ctx context.Context, root string, extensions []string, report func(Result)) (Stats, error) {
	allowed := extensionSet(extensions)
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable entry fails on its own; the rest of the
			// tree is still walked.
			fail(&stats, report, Result{Path: path, Outcome: OutcomeFailed, Err: err})
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		r := p.ProcessFile(ctx, path)
		stats.count(r)
		if report != nil {
			report(r)
		}
		return nil
	})

	return stats, err
}

// EmbedExisting traverses root looking for sidecar .lrc files and
// embeds each into the matching audio file (same name, one of the
// allowed extensions). Sidecars are preserved, not deleted. Files
// without a matching audio file or whose container has no native tag
// are reported as skips.
func EmbedExisting(ctx context.Context, root string, extensions []string, report func(Result)) (Stats, error) {
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fail(&stats, report, Result{Path: path, Outcome: OutcomeFailed, Err: err})
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), tracklist.Extension) {
			return nil
		}

		r := embedOne(path, extensions)
		stats.count(r)
		if report != nil {
			report(r)
		}
		return nil
	})

	return stats, err
}

// fail records and reports one failed entry.
func fail(stats *Stats, report func(Result), r Result) {
	stats.count(r)
	if report != nil {
		report(r)
	}
}

// embedOne embeds a single sidecar into its audio counterpart.
func embedOne(lrcPath string, extensions []string) Result {
	audioPath, ok := matchingAudioFile(lrcPath, extensions)
	if !ok {
		return skip(lrcPath, "no matching audio file")
	}

	text, err := os.ReadFile(lrcPath)
	if err != nil {
		return Result{Path: lrcPath, Outcome: OutcomeFailed, Err: err}
	}

	switch err := audio.Embed(audioPath, string(text)); {
	case err == nil:
		return Result{Path: audioPath, Outcome: OutcomeEmbedded, Detail: "embedded"}
	case errors.Is(err, audio.ErrNoNativeSupport):
		return skip(audioPath, "container has no native lyrics tag")
	default:
		return Result{Path: audioPath, Outcome: OutcomeFailed, Err: err}
	}
}

// matchingAudioFile finds the audio file sharing the sidecar's stem,
// trying the allowed extensions in order.
func matchingAudioFile(lrcPath string, extensions []string) (string, bool) {
	stem := strings.TrimSuffix(lrcPath, filepath.Ext(lrcPath))
	for _, ext := range extensions {
		candidate := stem + ext
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

func extensionSet(extensions []string) map[string]bool {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}
	return set
}
