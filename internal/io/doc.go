// Package ioutils provides file system and image helpers.
//
// It covers filename sanitization for cloudcast-derived paths,
// directory creation, small file writes, and artwork resizing for
// cover art embedding.
package ioutils
