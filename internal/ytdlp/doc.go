// Package ytdlp shells out to the yt-dlp binary for stream extraction
// and downloading.
//
// The package covers two calls: -J metadata extraction (codec and
// upload date detection) and the actual audio download with archive
// bookkeeping, request throttling and optional MP3 re-encoding.
package ytdlp
