// Package download orchestrates account backups.
//
// A Manager enumerates a user's cloudcasts through the GraphQL API,
// downloads each via yt-dlp, embeds resized artwork into MP3 output
// and runs the tracklist pipeline on every finished file. Progress is
// reported through a callback so the CLI and the TUI can render it
// their own way.
package download
