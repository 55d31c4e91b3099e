package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ikirmitz/mixcloud-backup/internal/audio"
	"github.com/ikirmitz/mixcloud-backup/internal/mixcloud"
	"github.com/ikirmitz/mixcloud-backup/internal/model"
	"github.com/ikirmitz/mixcloud-backup/internal/tracklist"
)

// TracklistSource resolves a lookup to its raw tracklist sections.
// *mixcloud.Client satisfies it; tests substitute a local stub.
type TracklistSource interface {
	Tracklist(ctx context.Context, lookup model.Lookup) ([]model.Section, error)
}

// Prober reads one file's metadata view. audio.Probe is the real one.
type Prober func(path string) (audio.View, error)

// Options selects what to do with the rendered document.
type Options struct {
	// Embed writes the document into the container's native lyrics
	// tag when the container has one.
	Embed bool
	// WriteLRC writes a sidecar .lrc next to the audio file. A
	// sidecar is also written, regardless of this flag, when Embed is
	// requested but the container has no native tag; a resolved
	// tracklist is never silently dropped.
	WriteLRC bool
}

// Outcome classifies what happened to one file.
type Outcome int

const (
	// OutcomeEmbedded means the document went into a native tag.
	OutcomeEmbedded Outcome = iota
	// OutcomeSidecar means only a sidecar file was written.
	OutcomeSidecar
	// OutcomeSkipped means the file was left alone for an expected
	// reason (no source URL, too few sections, and so on).
	OutcomeSkipped
	// OutcomeFailed means a per-file error occurred; the walk
	// continues with the next file.
	OutcomeFailed
)

// Result describes the processing of one file. Detail carries the
// skip reason or a short success note; Err is set only for
// OutcomeFailed.
type Result struct {
	Path    string
	Outcome Outcome
	Detail  string
	Err     error
}

// Processor drives single files through tag location, tracklist
// resolution, reconciliation, rendering and embedding.
type Processor struct {
	source TracklistSource
	probe  Prober
	opts   Options
}

// NewProcessor creates a Processor. A nil probe defaults to
// audio.Probe.
func NewProcessor(source TracklistSource, probe Prober, opts Options) *Processor {
	if probe == nil {
		probe = audio.Probe
	}
	return &Processor{source: source, probe: probe, opts: opts}
}

// ProcessFile runs the full pipeline on one audio file: locate a
// source URL in its tags, parse it, fetch and reconcile the
// tracklist, then embed or write the result.
func (p *Processor) ProcessFile(ctx context.Context, path string) Result {
	view, err := p.probe(path)
	if err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: fmt.Errorf("read metadata: %w", err)}
	}

	raw, ok := view.LocateSourceURL()
	if !ok {
		return skip(path, "no source URL in tags")
	}

	lookup, ok := mixcloud.ExtractLookup(raw)
	if !ok {
		return skip(path, fmt.Sprintf("unparseable source URL %q", raw))
	}

	return p.process(ctx, path, lookup, view)
}

// ProcessWithLookup runs the pipeline on a file whose lookup is
// already known, as after a fresh download. The file is still probed
// for its duration.
func (p *Processor) ProcessWithLookup(ctx context.Context, path string, lookup model.Lookup) Result {
	view, err := p.probe(path)
	if err != nil {
		return Result{Path: path, Outcome: OutcomeFailed, Err: fmt.Errorf("read metadata: %w", err)}
	}
	return p.process(ctx, path, lookup, view)
}

func (p *Processor) process(ctx context.Context, path string, lookup model.Lookup, view audio.View) Result {
	sections, err := p.source.Tracklist(ctx, lookup)
	if err != nil {
		// An unknown lookup and a transport failure both mean "no
		// tracklist" here; only the reporting differs.
		if errors.Is(err, mixcloud.ErrNotFound) {
			return skip(path, fmt.Sprintf("no tracklist for %s", lookup))
		}
		return Result{Path: path, Outcome: OutcomeFailed, Err: fmt.Errorf("fetch tracklist: %w", err)}
	}

	entries, err := tracklist.Reconcile(sections, view.Duration, view.DurationKnown)
	switch {
	case errors.Is(err, tracklist.ErrInsufficient):
		return skip(path, fmt.Sprintf("only %d section(s)", len(sections)))
	case errors.Is(err, tracklist.ErrUntimeable):
		return skip(path, "no timing information and unknown duration")
	case err != nil:
		return Result{Path: path, Outcome: OutcomeFailed, Err: err}
	}

	doc := model.Document{
		Owner:   lookup.Username,
		Title:   fileStem(path),
		Entries: entries,
	}

	return p.write(path, tracklist.Render(doc))
}

// write applies the embed and sidecar policy for one rendered
// document.
func (p *Processor) write(path, text string) Result {
	embedded := false

	if p.opts.Embed {
		switch err := audio.Embed(path, text); {
		case err == nil:
			embedded = true
		case errors.Is(err, audio.ErrNoNativeSupport):
			// fall through to the sidecar below
		default:
			return Result{Path: path, Outcome: OutcomeFailed, Err: fmt.Errorf("embed: %w", err)}
		}
	}

	wantSidecar := p.opts.WriteLRC || (p.opts.Embed && !embedded) || !p.opts.Embed
	if wantSidecar {
		if _, err := audio.WriteSidecar(path, tracklist.Extension, text); err != nil {
			return Result{Path: path, Outcome: OutcomeFailed, Err: err}
		}
	}

	if embedded {
		detail := "embedded"
		if wantSidecar {
			detail = "embedded, sidecar written"
		}
		return Result{Path: path, Outcome: OutcomeEmbedded, Detail: detail}
	}
	return Result{Path: path, Outcome: OutcomeSidecar, Detail: "sidecar written"}
}

func skip(path, reason string) Result {
	return Result{Path: path, Outcome: OutcomeSkipped, Detail: reason}
}

// fileStem returns the base name without its extension, which serves
// as the document title.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
