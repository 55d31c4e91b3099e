// Package config manages persistent settings for the toolkit.
//
// Settings are stored as a single JSON file. Loading a missing file
// returns defaults, and unknown fields in an existing file are
// ignored, so upgrades never require manual migration.
package config
