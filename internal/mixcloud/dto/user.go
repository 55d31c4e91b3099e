package dto

// PlaylistsData is the "data" payload of the user playlists query.
type PlaylistsData struct {
	User *struct {
		Playlists Connection[PlaylistNode] `json:"playlists"`
	} `json:"userLookup"`
}

// UploadsData is the "data" payload of the user uploads query.
type UploadsData struct {
	User *struct {
		Uploads Connection[UploadNode] `json:"uploads"`
	} `json:"userLookup"`
}

// PlaylistItemsData is the "data" payload of the playlist items query.
type PlaylistItemsData struct {
	Playlist *struct {
		Items Connection[PlaylistItemNode] `json:"items"`
	} `json:"playlistLookup"`
}

// Connection is a Relay-style paginated edge list.
type Connection[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
	PageInfo PageInfo `json:"pageInfo"`
}

// Nodes collects the edge nodes in order.
func (c Connection[T]) Nodes() []T {
	nodes := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		nodes = append(nodes, e.Node)
	}
	return nodes
}

// PlaylistNode is one playlist owned by a user.
type PlaylistNode struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// UploadNode is one cloudcast owned by a user.
type UploadNode struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
	// Owner is set when the upload belongs to a different account than
	// the queried user (reposts inside playlists).
	Owner *struct {
		Username string `json:"username"`
	} `json:"owner"`
	// Picture is the large artwork URL, empty when the upload has none.
	Picture *struct {
		URL string `json:"url"`
	} `json:"picture"`
}

// PlaylistItemNode wraps the cloudcast referenced by a playlist entry.
type PlaylistItemNode struct {
	Cloudcast UploadNode `json:"cloudcast"`
}
