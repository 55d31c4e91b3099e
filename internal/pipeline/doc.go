// Package pipeline connects the pieces: it locates a Mixcloud URL in
// a file's tags, resolves the tracklist, reconciles timestamps,
// renders LRC text and embeds or writes it.
//
// Processing is single-file and sequential. Each file is isolated:
// its failure produces one Result and the walk moves on, so a batch
// never dies because one file is broken.
package pipeline
