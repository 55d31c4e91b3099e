// Package mixcloud talks to the Mixcloud GraphQL API.
//
// It covers the read-only slice of the API the toolkit needs: resolving
// a cloudcast's tracklist sections, and enumerating a user's uploads
// and playlists with Relay cursor pagination. URL parsing lives here
// too, since the (username, slug) pair embedded in a cloudcast URL is
// the only identifier the API accepts.
//
// The package does not retry failed requests; callers decide whether a
// missing tracklist is fatal for their run.
package mixcloud
