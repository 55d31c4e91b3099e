package tracklist

import (
	"errors"
	"fmt"

	"github.com/ikirmitz/mixcloud-backup/internal/model"
)

// ErrInsufficient reports a tracklist with fewer than two sections. A
// single entry carries no navigational value, so nothing is rendered.
var ErrInsufficient = errors.New("tracklist: fewer than two sections")

// ErrUntimeable reports that timestamps cannot be synthesized because
// the total duration is unknown.
var ErrUntimeable = errors.New("tracklist: no timestamps and unknown duration")

// Reconcile turns raw sections into a fully timed entry sequence.
//
// Source timestamps are kept only when every section carries one. As
// soon as any section is untimed, all timestamps are replaced with a
// uniform spacing of i*(duration/n) across the file, starting at zero.
// Mixing real and synthesized timestamps would put entries out of
// order, so partial timing is discarded wholesale.
//
// Entries mirror the input order and are never re-sorted. A zero
// duration is accepted and yields all entries at timestamp 0.
//
// Returns ErrInsufficient for fewer than two sections, and
// ErrUntimeable when synthesis is needed but durationKnown is false.
func Reconcile(sections []model.Section, duration float64, durationKnown bool) ([]model.Entry, error) {
	n := len(sections)
	if n < 2 {
		return nil, ErrInsufficient
	}

	timed := 0
	for _, s := range sections {
		if s.Timed() {
			timed++
		}
	}

	entries := make([]model.Entry, 0, n)
	if timed == n {
		for _, s := range sections {
			entries = append(entries, model.Entry{
				Seconds: *s.StartSeconds,
				Text:    label(s),
			})
		}
		return entries, nil
	}

	if !durationKnown {
		return nil, ErrUntimeable
	}

	spacing := duration / float64(n)
	for i, s := range sections {
		entries = append(entries, model.Entry{
			Seconds: float64(i) * spacing,
			Text:    label(s),
		})
	}
	return entries, nil
}

// label formats the display text of one section. Tracks join artist
// and song with an en-dash, chapters pass through verbatim.
func label(s model.Section) string {
	switch s.Kind {
	case model.KindTrack:
		return fmt.Sprintf("%s – %s", s.Artist, s.Song)
	case model.KindChapter:
		return s.Chapter
	default:
		return ""
	}
}
