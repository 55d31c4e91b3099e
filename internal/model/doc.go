// Package model defines the core data structures shared across the
// mixcloud-backup toolkit.
//
// # Lookup
//
// Lookup is the (username, slug) pair addressing one cloudcast:
//
//	lookup := model.Lookup{Username: "DJ", Slug: "cool-mix"}
//	fmt.Println(lookup.URL()) // https://www.mixcloud.com/DJ/cool-mix/
//
// # Section, Entry, Document
//
// Section is a raw tracklist entry from the API (possibly untimed),
// Entry is a reconciled line with a guaranteed timestamp, and Document
// is the ordered sequence of entries plus header metadata that the LRC
// renderer consumes.
package model
