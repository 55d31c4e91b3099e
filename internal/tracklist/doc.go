// Package tracklist reconciles raw Mixcloud sections into timed
// entries and renders them as LRC text.
//
// Reconciliation decides where each section starts: source timestamps
// are used when complete, otherwise entries are spaced uniformly
// across the file's duration. Rendering produces the sidecar and
// embedded lyrics representation, a small header followed by
// "[MM:SS.CC] artist – title" lines.
package tracklist
