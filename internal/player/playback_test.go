package player

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zmb3/spotify/v2"
)

// newTestClient points a player client at a fake Spotify API server.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api := spotify.New(server.Client(), spotify.WithBaseURL(server.URL+"/"))
	return New(api, "PH"), server
}

func TestPlayStartsPlaybackAndShuffles(t *testing.T) {
	var playBody map[string]any
	var shuffleCalled bool

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/me/player/play":
			if r.Method != http.MethodPut {
				t.Errorf("play method = %s, want PUT", r.Method)
			}
			body, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(body, &playBody); err != nil {
				t.Fatalf("decoding play body: %v", err)
			}
			w.WriteHeader(http.StatusNoContent)
		case "/me/player/shuffle":
			shuffleCalled = true
			if got := r.URL.Query().Get("state"); got != "true" {
				t.Errorf("shuffle state = %q, want true", got)
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	uris := []spotify.URI{"spotify:track:a", "spotify:track:b"}
	if err := client.Play(context.Background(), uris); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, ok := playBody["position_ms"].(float64); !ok || got != 35 {
		t.Errorf("position_ms = %v, want 35", playBody["position_ms"])
	}
	if got, ok := playBody["uris"].([]any); !ok || len(got) != 2 {
		t.Errorf("uris = %v, want 2 entries", playBody["uris"])
	}
	if !shuffleCalled {
		t.Error("shuffle was not enabled after play")
	}
}

func TestPlayEmptyURIs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))

	if err := client.Play(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty track list")
	}
}

func TestPause(t *testing.T) {
	var called bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/player/pause" || r.Method != http.MethodPut {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.Pause(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("pause endpoint not called")
	}
}

func TestPlaylistTrackURIs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlists/2i7PJTO3ypWshEfkhY2ja3/tracks" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"track":{"uri":"spotify:track:one","id":"one","name":"One","type":"track"}},
			{"track":{"uri":"spotify:track:two","id":"two","name":"Two","type":"track"}}
		]}`))
	}))

	uris, err := client.playlistTrackURIs(context.Background(), "2i7PJTO3ypWshEfkhY2ja3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []spotify.URI{"spotify:track:one", "spotify:track:two"}
	if len(uris) != len(want) {
		t.Fatalf("len = %d, want %d", len(uris), len(want))
	}
	for i := range want {
		if uris[i] != want[i] {
			t.Errorf("uris[%d] = %q, want %q", i, uris[i], want[i])
		}
	}
}
