package mixcloud

import (
	"net/url"
	"regexp"

	"github.com/ikirmitz/mixcloud-backup/internal/model"
)

// lookupPattern matches the <username>/<slug> path of a Mixcloud URL
// anywhere in a string, with or without scheme, "www" or trailing slash.
var lookupPattern = regexp.MustCompile(`mixcloud\.com/([^/]+)/([^/]+)/?`)

// ExtractLookup parses a Mixcloud URL into its (username, slug) pair.
//
// Percent-encoded octets in both segments are decoded (e.g. %C3%A6
// becomes æ). The second return value is false when the string does not
// contain a Mixcloud cloudcast path; this is a total function and never
// fails on malformed input.
//
// Example:
//
//	lookup, ok := mixcloud.ExtractLookup("https://www.mixcloud.com/DJ/cool-mix/")
//	// lookup = {Username: "DJ", Slug: "cool-mix"}, ok = true
func ExtractLookup(rawURL string) (model.Lookup, bool) {
	m := lookupPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return model.Lookup{}, false
	}

	username := decodeSegment(m[1])
	slug := decodeSegment(m[2])
	if username == "" || slug == "" {
		return model.Lookup{}, false
	}

	return model.Lookup{Username: username, Slug: slug}, true
}

// decodeSegment percent-decodes a path segment, falling back to the raw
// text when the encoding is invalid.
func decodeSegment(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
