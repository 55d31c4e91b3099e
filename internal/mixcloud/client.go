package mixcloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ikirmitz/mixcloud-backup/internal/http"
	"github.com/ikirmitz/mixcloud-backup/internal/mixcloud/dto"
	"github.com/ikirmitz/mixcloud-backup/internal/model"
)

// DefaultEndpoint is the public Mixcloud GraphQL endpoint.
const DefaultEndpoint = "https://app.mixcloud.com/graphql"

// ErrNotFound reports that a lookup resolved to nothing: the user,
// cloudcast or playlist does not exist (or is private).
var ErrNotFound = errors.New("mixcloud: not found")

const tracklistQuery = `query cloudcastQuery($lookup: CloudcastLookup!) {
  cloudcastLookup(lookup: $lookup) {
    sections {
      __typename
      ... on SectionBase { startSeconds }
      ... on TrackSection { artistName songName }
      ... on ChapterSection { chapter }
    }
  }
}`

const userPlaylistsQuery = `query playlistsQuery($lookup: UserLookup!, $cursor: String) {
  userLookup(lookup: $lookup) {
    playlists(first: 100, after: $cursor) {
      edges { node { name slug } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const userUploadsQuery = `query uploadsQuery($lookup: UserLookup!, $cursor: String) {
  userLookup(lookup: $lookup) {
    uploads(first: 100, after: $cursor) {
      edges { node { name slug url owner { username } picture(width: 1024, height: 1024) { url } } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

const playlistItemsQuery = `query playlistItemsQuery($lookup: PlaylistLookup!, $cursor: String) {
  playlistLookup(lookup: $lookup) {
    items(first: 100, after: $cursor) {
      edges { node { cloudcast { name slug url owner { username } picture(width: 1024, height: 1024) { url } } } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

// Playlist is one playlist owned by a Mixcloud user.
type Playlist struct {
	Name string
	Slug string
}

// Upload is one cloudcast, either from a user's upload list or from a
// playlist. Owner may differ from the queried username for reposts.
type Upload struct {
	Name       string
	Slug       string
	Owner      string
	URL        string
	PictureURL string
}

// Lookup returns the (username, slug) identity of the upload.
func (u Upload) Lookup() model.Lookup {
	return model.Lookup{Username: u.Owner, Slug: u.Slug}
}

// Config controls how the Client talks to the API.
type Config struct {
	// Endpoint is the GraphQL URL; empty means DefaultEndpoint.
	Endpoint string
	// UserAgent is sent on every request; empty means the toolkit default.
	UserAgent string
	// Timeout bounds each request; non-positive means http.DefaultTimeout.
	Timeout time.Duration
}

// Client queries the Mixcloud GraphQL API.
//
// Example usage:
//
//	client := mixcloud.NewClient(mixcloud.Config{})
//	sections, err := client.Tracklist(ctx, model.Lookup{
//		Username: "NTSRadio",
//		Slug:     "bonobo-4th-april-2022",
//	})
type Client struct {
	http     *http.Client
	endpoint string
}

// NewClient creates an API client from cfg, applying defaults for any
// zero field.
func NewClient(cfg Config) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		http:     http.NewClient(cfg.UserAgent, cfg.Timeout),
		endpoint: endpoint,
	}
}

// query posts one GraphQL request and decodes the data payload into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	req := dto.GraphQLRequest{Query: query, Variables: variables}

	var resp dto.GraphQLResponse
	if err := c.http.PostJSON(ctx, c.endpoint, req, &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return fmt.Errorf("graphql: %s", resp.Errors[0].Message)
	}
	return json.Unmarshal(resp.Data, out)
}

// Tracklist fetches the section list of one cloudcast.
//
// Sections come back in the API's order, which is the on-site tracklist
// order. Returns ErrNotFound when the cloudcast does not exist.
func (c *Client) Tracklist(ctx context.Context, lookup model.Lookup) ([]model.Section, error) {
	variables := map[string]any{
		"lookup": map[string]any{
			"username": lookup.Username,
			"slug":     lookup.Slug,
		},
	}

	var data dto.TracklistData
	if err := c.query(ctx, tracklistQuery, variables, &data); err != nil {
		return nil, err
	}
	if data.Cloudcast == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, lookup)
	}

	sections := make([]model.Section, 0, len(data.Cloudcast.Sections))
	for _, js := range data.Cloudcast.Sections {
		sections = append(sections, js.ToSection())
	}
	return sections, nil
}

// UserPlaylists lists all playlists of a user, following pagination to
// the end. Returns ErrNotFound when the user does not exist.
func (c *Client) UserPlaylists(ctx context.Context, username string) ([]Playlist, error) {
	var playlists []Playlist

	err := c.paginate(func(cursor *string) (dto.PageInfo, error) {
		variables := map[string]any{
			"lookup": map[string]any{"username": username},
			"cursor": cursor,
		}

		var data dto.PlaylistsData
		if err := c.query(ctx, userPlaylistsQuery, variables, &data); err != nil {
			return dto.PageInfo{}, err
		}
		if data.User == nil {
			return dto.PageInfo{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}

		for _, node := range data.User.Playlists.Nodes() {
			playlists = append(playlists, Playlist{Name: node.Name, Slug: node.Slug})
		}
		return data.User.Playlists.PageInfo, nil
	})
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

// UserUploads lists all cloudcasts uploaded by a user, newest first as
// returned by the API, following pagination to the end. Returns
// ErrNotFound when the user does not exist.
func (c *Client) UserUploads(ctx context.Context, username string) ([]Upload, error) {
	var uploads []Upload

	err := c.paginate(func(cursor *string) (dto.PageInfo, error) {
		variables := map[string]any{
			"lookup": map[string]any{"username": username},
			"cursor": cursor,
		}

		var data dto.UploadsData
		if err := c.query(ctx, userUploadsQuery, variables, &data); err != nil {
			return dto.PageInfo{}, err
		}
		if data.User == nil {
			return dto.PageInfo{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}

		for _, node := range data.User.Uploads.Nodes() {
			uploads = append(uploads, uploadFromNode(node, username))
		}
		return data.User.Uploads.PageInfo, nil
	})
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

// PlaylistItems lists all cloudcasts of one playlist, following
// pagination to the end. Returns ErrNotFound when the playlist does
// not exist.
func (c *Client) PlaylistItems(ctx context.Context, username, playlistSlug string) ([]Upload, error) {
	var uploads []Upload

	err := c.paginate(func(cursor *string) (dto.PageInfo, error) {
		variables := map[string]any{
			"lookup": map[string]any{"username": username, "slug": playlistSlug},
			"cursor": cursor,
		}

		var data dto.PlaylistItemsData
		if err := c.query(ctx, playlistItemsQuery, variables, &data); err != nil {
			return dto.PageInfo{}, err
		}
		if data.Playlist == nil {
			return dto.PageInfo{}, fmt.Errorf("%w: playlist %s/%s", ErrNotFound, username, playlistSlug)
		}

		for _, node := range data.Playlist.Items.Nodes() {
			uploads = append(uploads, uploadFromNode(node.Cloudcast, username))
		}
		return data.Playlist.Items.PageInfo, nil
	})
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

// paginate runs page until it reports no next page, threading the end
// cursor between calls.
func (c *Client) paginate(page func(cursor *string) (dto.PageInfo, error)) error {
	var cursor *string
	for {
		info, err := page(cursor)
		if err != nil {
			return err
		}
		if !info.HasNextPage || info.EndCursor == nil {
			return nil
		}
		cursor = info.EndCursor
	}
}

// uploadFromNode flattens an upload node, defaulting the owner to the
// queried username and synthesizing the canonical URL when the API
// returns none.
func uploadFromNode(node dto.UploadNode, username string) Upload {
	owner := username
	if node.Owner != nil && node.Owner.Username != "" {
		owner = node.Owner.Username
	}

	u := Upload{
		Name:  node.Name,
		Slug:  node.Slug,
		Owner: owner,
		URL:   node.URL,
	}
	if u.URL == "" {
		u.URL = model.Lookup{Username: owner, Slug: node.Slug}.URL()
	}
	if node.Picture != nil {
		u.PictureURL = node.Picture.URL
	}
	return u
}
