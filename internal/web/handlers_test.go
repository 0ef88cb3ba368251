package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avelazco/go-mood-player/internal/lyrics"
)

// fakeSearcher records which lyric lookup the handler dispatched to.
type fakeSearcher struct {
	textQueries []string
	direct      [][2]string
}

func (f *fakeSearcher) SearchByText(_ context.Context, text string) ([]lyrics.Match, error) {
	f.textQueries = append(f.textQueries, text)
	return []lyrics.Match{{Artist: "Artist", Song: "Song"}}, nil
}

func (f *fakeSearcher) Search(_ context.Context, artist, song string) (*lyrics.Match, error) {
	f.direct = append(f.direct, [2]string{artist, song})
	return &lyrics.Match{Artist: artist, Song: song, Lyric: "la la la"}, nil
}

func newTestHandlers(searcher LyricsSearcher) *Handlers {
	return NewHandlers(nil, NewSessionStore(), nil, nil, searcher, "PH", nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLyricsSearchByText(t *testing.T) {
	searcher := &fakeSearcher{}
	h := newTestHandlers(searcher)

	w := httptest.NewRecorder()
	h.Lyrics(w, httptest.NewRequest(http.MethodGet, "/lyrics?q=rough+week", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(searcher.textQueries) != 1 || searcher.textQueries[0] != "rough week" {
		t.Errorf("text queries = %v, want [rough week]", searcher.textQueries)
	}
	if len(searcher.direct) != 0 {
		t.Errorf("direct lookups = %v, want none", searcher.direct)
	}

	var matches []lyrics.Match
	if err := json.NewDecoder(w.Body).Decode(&matches); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("matches = %v, want one entry", matches)
	}
}

func TestLyricsDirectLookup(t *testing.T) {
	searcher := &fakeSearcher{}
	h := newTestHandlers(searcher)

	w := httptest.NewRecorder()
	h.Lyrics(w, httptest.NewRequest(http.MethodGet, "/lyrics?artist=Artist&song=Song", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(searcher.direct) != 1 || searcher.direct[0] != [2]string{"Artist", "Song"} {
		t.Errorf("direct lookups = %v, want [[Artist Song]]", searcher.direct)
	}
	if len(searcher.textQueries) != 0 {
		t.Errorf("text queries = %v, want none", searcher.textQueries)
	}

	var match lyrics.Match
	if err := json.NewDecoder(w.Body).Decode(&match); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if match.Lyric != "la la la" {
		t.Errorf("Lyric = %q", match.Lyric)
	}
}

func TestLyricsMissingParams(t *testing.T) {
	h := newTestHandlers(&fakeSearcher{})

	w := httptest.NewRecorder()
	h.Lyrics(w, httptest.NewRequest(http.MethodGet, "/lyrics", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestPauseRequiresSession(t *testing.T) {
	h := newTestHandlers(&fakeSearcher{})

	w := httptest.NewRecorder()
	h.Pause(w, httptest.NewRequest(http.MethodPost, "/pause", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
