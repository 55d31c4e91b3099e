package mixcloud

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ikirmitz/mixcloud-backup/internal/mixcloud/dto"
	"github.com/ikirmitz/mixcloud-backup/internal/model"
)

// graphqlServer fakes the API: it routes on a substring of the query
// text and replies with the configured JSON data payload.
func graphqlServer(t *testing.T, routes map[string]func(vars map[string]any) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var req dto.GraphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			nethttp.Error(w, "bad request", nethttp.StatusBadRequest)
			return
		}
		for marker, respond := range routes {
			if strings.Contains(req.Query, marker) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"data":` + respond(req.Variables) + `}`))
				return
			}
		}
		t.Errorf("no route for query %q", req.Query)
		nethttp.Error(w, "no route", nethttp.StatusBadRequest)
	}))
}

func TestClient_Tracklist(t *testing.T) {
	srv := graphqlServer(t, map[string]func(map[string]any) string{
		"cloudcastLookup": func(vars map[string]any) string {
			return `{"cloudcastLookup":{"sections":[
				{"__typename":"TrackSection","startSeconds":12.5,"artistName":"Bonobo","songName":"Kerala"},
				{"__typename":"ChapterSection","startSeconds":300,"chapter":"Ambient hour"},
				{"__typename":"AdSection","startSeconds":null}
			]}}`
		},
	})
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	sections, err := client.Tracklist(context.Background(), model.Lookup{Username: "user", Slug: "mix"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	if sections[0].Kind != model.KindTrack || sections[0].Artist != "Bonobo" || sections[0].Song != "Kerala" {
		t.Errorf("section 0 = %+v, want track Bonobo/Kerala", sections[0])
	}
	if sections[0].StartSeconds == nil || *sections[0].StartSeconds != 12.5 {
		t.Errorf("section 0 startSeconds = %v, want 12.5", sections[0].StartSeconds)
	}
	if sections[1].Kind != model.KindChapter || sections[1].Chapter != "Ambient hour" {
		t.Errorf("section 1 = %+v, want chapter", sections[1])
	}
	if sections[2].Kind != model.KindOther {
		t.Errorf("section 2 kind = %v, want KindOther", sections[2].Kind)
	}
	if sections[2].Timed() {
		t.Errorf("section 2 should be untimed")
	}
}

func TestClient_TracklistNotFound(t *testing.T) {
	srv := graphqlServer(t, map[string]func(map[string]any) string{
		"cloudcastLookup": func(vars map[string]any) string {
			return `{"cloudcastLookup":null}`
		},
	})
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	_, err := client.Tracklist(context.Background(), model.Lookup{Username: "nobody", Slug: "nothing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_UserUploadsPagination(t *testing.T) {
	srv := graphqlServer(t, map[string]func(map[string]any) string{
		"uploads(": func(vars map[string]any) string {
			if vars["cursor"] == nil {
				return `{"userLookup":{"uploads":{
					"edges":[{"node":{"name":"Mix One","slug":"mix-one"}}],
					"pageInfo":{"hasNextPage":true,"endCursor":"c1"}}}}`
			}
			if vars["cursor"] != "c1" {
				return `{"userLookup":{"uploads":{"edges":[],"pageInfo":{"hasNextPage":false,"endCursor":null}}}}`
			}
			return `{"userLookup":{"uploads":{
				"edges":[{"node":{"name":"Mix Two","slug":"mix-two","owner":{"username":"otheruser"}}}],
				"pageInfo":{"hasNextPage":false,"endCursor":null}}}}`
		},
	})
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	uploads, err := client.UserUploads(context.Background(), "user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(uploads) != 2 {
		t.Fatalf("got %d uploads, want 2 across pages", len(uploads))
	}
	if uploads[0].Owner != "user" {
		t.Errorf("upload 0 owner = %q, want queried username as default", uploads[0].Owner)
	}
	if uploads[1].Owner != "otheruser" {
		t.Errorf("upload 1 owner = %q, want owner from response", uploads[1].Owner)
	}
	if uploads[1].URL != "https://www.mixcloud.com/otheruser/mix-two/" {
		t.Errorf("upload 1 URL = %q, want synthesized canonical URL", uploads[1].URL)
	}
}

func TestClient_UserUploadsUnknownUser(t *testing.T) {
	srv := graphqlServer(t, map[string]func(map[string]any) string{
		"uploads(": func(vars map[string]any) string {
			return `{"userLookup":null}`
		},
	})
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	if _, err := client.UserUploads(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_PlaylistItems(t *testing.T) {
	srv := graphqlServer(t, map[string]func(map[string]any) string{
		"playlistLookup": func(vars map[string]any) string {
			return `{"playlistLookup":{"items":{
				"edges":[{"node":{"cloudcast":{"name":"Mix","slug":"mix","url":"https://www.mixcloud.com/user/mix/"}}}],
				"pageInfo":{"hasNextPage":false,"endCursor":null}}}}`
		},
	})
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	items, err := client.PlaylistItems(context.Background(), "user", "favorites")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Slug != "mix" {
		t.Fatalf("items = %+v, want one item with slug mix", items)
	}
}

func TestClient_GraphQLError(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"rate limited"}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{Endpoint: srv.URL})
	_, err := client.Tracklist(context.Background(), model.Lookup{Username: "user", Slug: "mix"})
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("err = %v, want graphql error with server message", err)
	}
}
