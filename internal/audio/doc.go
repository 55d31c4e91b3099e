// Package audio reads and writes tags across the container formats
// the toolkit handles.
//
// Reading is uniform: Probe builds a View of normalized tag slots plus
// the file's duration, regardless of container. Writing is per-format:
// each container capability (ID3, MP4 atoms, Xiph comments) has its
// own lyrics embedder, and containers without a native lyrics tag
// report ErrNoNativeSupport so callers can write a sidecar instead.
package audio
