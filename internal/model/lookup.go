package model

// Lookup identifies a single cloudcast on Mixcloud.
//
// A Lookup is the (username, slug) pair that the GraphQL API uses to
// address an upload, extracted from a canonical URL like:
//
//	https://www.mixcloud.com/<username>/<slug>/
//
// Both fields are non-empty by construction; code that fails to extract
// a Lookup reports absence explicitly rather than returning a Lookup
// with empty fields.
type Lookup struct {
	// Username is the account that owns the cloudcast.
	Username string

	// Slug is the URL identifier of the cloudcast.
	Slug string
}

// URL returns the canonical Mixcloud URL for this lookup.
func (l Lookup) URL() string {
	return "https://www.mixcloud.com/" + l.Username + "/" + l.Slug + "/"
}

// String returns the lookup in "username/slug" form, as used in log lines.
func (l Lookup) String() string {
	return l.Username + "/" + l.Slug
}
