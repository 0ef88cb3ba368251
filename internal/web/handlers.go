package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/avelazco/go-mood-player/internal/db"
	"github.com/avelazco/go-mood-player/internal/emotion"
	"github.com/avelazco/go-mood-player/internal/lyrics"
	"github.com/avelazco/go-mood-player/internal/mood"
	"github.com/avelazco/go-mood-player/internal/player"
)

// LyricsSearcher is the lyric lookup surface used by the handlers.
type LyricsSearcher interface {
	SearchByText(ctx context.Context, text string) ([]lyrics.Match, error)
	Search(ctx context.Context, artist, song string) (*lyrics.Match, error)
}

// Handlers contains HTTP handlers for the web application.
type Handlers struct {
	auth      *spotifyauth.Authenticator
	sessions  SessionManager
	templates *Templates
	moods     *mood.Service
	lyrics    LyricsSearcher
	market    string
	history   *db.DB // nil without a database
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(auth *spotifyauth.Authenticator, sessions SessionManager, templates *Templates, moods *mood.Service, lyricsClient LyricsSearcher, market string, history *db.DB, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		auth:      auth,
		sessions:  sessions,
		templates: templates,
		moods:     moods,
		lyrics:    lyricsClient,
		market:    market,
		history:   history,
		logger:    logger,
	}
}

// Home handles the home page (GET /).
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)

	data := HomePageData{
		PageData: PageData{
			Title:       "Mood Player",
			CurrentPath: r.URL.Path,
		},
		Authenticated: session != nil,
	}

	if session != nil {
		data.User = &UserData{
			ID:   session.UserID,
			Name: session.UserName,
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "home", data); err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// Login initiates the Spotify OAuth flow (GET /auth/login).
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// Generate state for CSRF protection
	state, err := generateOAuthState()
	if err != nil {
		http.Error(w, "Failed to generate state", http.StatusInternalServerError)
		return
	}

	// Store state in cookie for validation on callback
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300, // 5 minutes
	})

	// Redirect to Spotify auth
	url := h.auth.AuthURL(state)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// Callback handles the OAuth callback from Spotify (GET /callback).
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	// Verify state
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil {
		http.Error(w, "Missing state cookie", http.StatusBadRequest)
		return
	}

	state := r.URL.Query().Get("state")
	if state != stateCookie.Value {
		http.Error(w, "State mismatch", http.StatusBadRequest)
		return
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	// Check for error from Spotify
	if errMsg := r.URL.Query().Get("error"); errMsg != "" {
		http.Error(w, fmt.Sprintf("Spotify auth error: %s", errMsg), http.StatusBadRequest)
		return
	}

	// Exchange code for token
	token, err := h.auth.Token(r.Context(), state, r)
	if err != nil {
		http.Error(w, "Failed to get token", http.StatusInternalServerError)
		return
	}

	// Get user info from Spotify
	client := spotify.New(h.auth.Client(r.Context(), token))
	user, err := client.CurrentUser(r.Context())
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}

	// Create session
	session, err := h.sessions.Create(r.Context(), token, string(user.ID), user.DisplayName)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	if h.history != nil {
		_ = h.history.Users().Upsert(r.Context(), &db.User{
			ID:          string(user.ID),
			DisplayName: user.DisplayName,
			Email:       user.Email,
		})
	}

	// Set session cookie
	h.sessions.SetCookie(w, session)

	// Redirect to home
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

// Logout clears the session and redirects to home (POST /auth/logout).
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session != nil {
		h.moods.Forget(session.ID)
		h.sessions.Delete(r.Context(), session.ID)
	}

	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

// cycleResponse is the JSON payload returned by the cycle trigger.
type cycleResponse struct {
	Mood      emotion.Label        `json:"mood"`
	Previous  emotion.Label        `json:"previous,omitempty"`
	Changed   bool                 `json:"changed"`
	Ambiguous bool                 `json:"ambiguous"`
	Text      emotion.Distribution `json:"text"`
	Speech    emotion.Distribution `json:"speech"`
}

// Cycle runs one mood cycle for the caller's session (POST /cycle): record,
// transcribe, analyze, reconcile, and switch playback when the mood changed.
func (h *Handlers) Cycle(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	api := spotify.New(h.auth.Client(r.Context(), session.Token))
	sessionPlayer := player.New(api, h.market)

	// A stored session may predate this process; resume from its mood.
	h.moods.Seed(session.ID, session.LastMood)

	result, err := h.moods.RunCycle(r.Context(), session.ID, sessionPlayer)
	if err != nil {
		h.logger.Error("mood cycle failed", "session", session.ID, "error", err)
		http.Error(w, cycleErrorMessage(err), cycleErrorStatus(err))
		return
	}

	h.sessions.UpdateLastMood(r.Context(), session.ID, result.Decision.Mood)
	h.recordCycle(r, session, result)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cycleResponse{
		Mood:      result.Decision.Mood,
		Previous:  result.Previous,
		Changed:   result.Changed,
		Ambiguous: result.Decision.Ambiguous,
		Text:      result.Decision.Text,
		Speech:    result.Decision.Speech,
	})
}

// recordCycle persists the decision for observability. Best-effort: a
// history failure never fails the cycle that produced it.
func (h *Handlers) recordCycle(r *http.Request, session *Session, result *mood.Result) {
	if h.history == nil {
		return
	}

	textTop := result.Decision.Text.Top()
	speechTop := result.Decision.Speech.Top()

	err := h.history.Moods().Create(r.Context(), &db.MoodCycle{
		SessionID:   session.ID,
		UserID:      session.UserID,
		Mood:        string(result.Decision.Mood),
		TextLabel:   string(textTop.Label),
		TextScore:   textTop.Score,
		SpeechLabel: string(speechTop.Label),
		SpeechScore: speechTop.Score,
		Ambiguous:   result.Decision.Ambiguous,
	})
	if err != nil {
		h.logger.Warn("recording mood cycle failed", "session", session.ID, "error", err)
	}
}

// History shows the caller's recent mood cycles (GET /history).
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil {
		http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
		return
	}

	data := HistoryPageData{
		PageData: PageData{
			Title:       "Mood History",
			CurrentPath: r.URL.Path,
			User:        &UserData{ID: session.UserID, Name: session.UserName},
		},
	}

	if h.history != nil {
		cycles, err := h.history.Moods().ListByUser(r.Context(), session.UserID, 20)
		if err != nil {
			http.Error(w, "Failed to load history", http.StatusInternalServerError)
			return
		}
		for _, c := range cycles {
			data.Cycles = append(data.Cycles, CycleData{
				Mood:        emotion.Label(c.Mood),
				TextLabel:   c.TextLabel,
				SpeechLabel: c.SpeechLabel,
				Ambiguous:   c.Ambiguous,
				CreatedAt:   c.CreatedAt,
			})
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.Render(w, "history", data); err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
}

// Lyrics looks up lyrics (GET /lyrics). With artist and song parameters it
// fetches that song's lyric directly; with q it searches songs by lyric
// text.
func (h *Handlers) Lyrics(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	artist, song := params.Get("artist"), params.Get("song")

	switch {
	case artist != "" && song != "":
		match, err := h.lyrics.Search(r.Context(), artist, song)
		if err != nil {
			h.logger.Warn("lyric lookup failed", "artist", artist, "song", song, "error", err)
			http.Error(w, "Lyric lookup failed", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(match)

	case params.Get("q") != "":
		matches, err := h.lyrics.SearchByText(r.Context(), params.Get("q"))
		if err != nil {
			h.logger.Warn("lyric search failed", "error", err)
			http.Error(w, "Lyric search failed", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(matches)

	default:
		http.Error(w, "Missing q or artist/song parameters", http.StatusBadRequest)
	}
}

// Pause stops playback for the caller's session (POST /pause). Stopping
// the listening loop leaves music running; this is the explicit off
// switch.
func (h *Handlers) Pause(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.GetFromRequest(r)
	if session == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	api := spotify.New(h.auth.Client(r.Context(), session.Token))
	if err := player.New(api, h.market).Pause(r.Context()); err != nil {
		h.logger.Warn("pause failed", "session", session.ID, "error", err)
		http.Error(w, "Pause failed", http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// cycleErrorStatus maps a cycle error kind to an HTTP status.
func cycleErrorStatus(err error) int {
	switch {
	case errors.Is(err, mood.ErrCapture):
		return http.StatusServiceUnavailable
	case errors.Is(err, mood.ErrTranscription), errors.Is(err, mood.ErrAnalysis), errors.Is(err, mood.ErrPlayback):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// cycleErrorMessage keeps collaborator details out of client responses.
func cycleErrorMessage(err error) string {
	switch {
	case errors.Is(err, mood.ErrCapture):
		return "Audio capture failed"
	case errors.Is(err, mood.ErrTranscription):
		return "Transcription failed"
	case errors.Is(err, mood.ErrAnalysis):
		return "Emotion analysis failed"
	case errors.Is(err, mood.ErrPlayback):
		return "Playback failed"
	default:
		return "Mood cycle failed"
	}
}

// generateOAuthState creates a random state string for OAuth.
func generateOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
