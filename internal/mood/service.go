// Package mood orchestrates one mood cycle: capture, transcription, the two
// emotion analyses, reconciliation, and mood-driven playback.
package mood

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zmb3/spotify/v2"

	"github.com/avelazco/go-mood-player/internal/capture"
	"github.com/avelazco/go-mood-player/internal/emotion"
	"github.com/avelazco/go-mood-player/internal/playlist"
)

// Transcriber converts a WAV clip to transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte) (string, error)
}

// TextAnalyzer extracts keyword emotion scores from transcript text.
type TextAnalyzer interface {
	AnalyzeText(ctx context.Context, text string) ([]emotion.Keyword, error)
}

// VoiceAnalyzer extracts prosody emotion probabilities from a WAV clip.
type VoiceAnalyzer interface {
	AnalyzeVoice(ctx context.Context, wav []byte) (emotion.VoiceResult, error)
}

// Player resolves a selector to tracks and starts playback. Implementations
// carry the session's own streaming credentials.
type Player interface {
	Recommend(ctx context.Context, sel playlist.Selector) ([]spotify.URI, error)
	Play(ctx context.Context, uris []spotify.URI) error
}

// Result is the outcome of one completed cycle.
type Result struct {
	Decision emotion.Decision
	Previous emotion.Label
	Changed  bool
}

// sessionState is the only state carried across cycles: the last decided
// mood, guarded by a lock that also serializes cycle execution.
type sessionState struct {
	mu       sync.Mutex
	lastMood emotion.Label

	cancelMu sync.Mutex
	cancel   context.CancelFunc
}

// Service runs mood cycles. One cycle at a time per session: a new trigger
// cancels the in-flight cycle for that session and waits for it to release
// the lock.
type Service struct {
	recorder   capture.Recorder
	transcribe Transcriber
	text       TextAnalyzer
	voice      VoiceAnalyzer
	reconciler *emotion.Reconciler
	mapper     playlist.Mapper
	logger     *slog.Logger

	statesMu sync.Mutex
	states   map[string]*sessionState
}

// NewService wires a cycle service from its collaborators.
func NewService(rec capture.Recorder, tr Transcriber, text TextAnalyzer, voice VoiceAnalyzer, reconciler *emotion.Reconciler, mapper playlist.Mapper, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		recorder:   rec,
		transcribe: tr,
		text:       text,
		voice:      voice,
		reconciler: reconciler,
		mapper:     mapper,
		logger:     logger,
		states:     make(map[string]*sessionState),
	}
}

// state returns the per-session state, creating it on first use.
func (s *Service) state(sessionID string) *sessionState {
	s.statesMu.Lock()
	defer s.statesMu.Unlock()

	st, ok := s.states[sessionID]
	if !ok {
		st = &sessionState{}
		s.states[sessionID] = st
	}
	return st
}

// Seed primes a session's last known mood without running a cycle, used to
// restore stored sessions after a restart. A session that already decided
// a mood in this process keeps it; playback state in memory is fresher
// than anything persisted.
func (s *Service) Seed(sessionID string, mood emotion.Label) {
	if mood == "" {
		return
	}

	st := s.state(sessionID)
	st.mu.Lock()
	if st.lastMood == "" {
		st.lastMood = mood
	}
	st.mu.Unlock()
}

// Forget drops the state for a session, cancelling any in-flight cycle.
// Called on logout and session expiry.
func (s *Service) Forget(sessionID string) {
	s.statesMu.Lock()
	st, ok := s.states[sessionID]
	delete(s.states, sessionID)
	s.statesMu.Unlock()

	if ok {
		st.interrupt()
	}
}

// interrupt cancels the session's in-flight cycle, if any.
func (st *sessionState) interrupt() {
	st.cancelMu.Lock()
	if st.cancel != nil {
		st.cancel()
	}
	st.cancelMu.Unlock()
}

// RunCycle runs one full mood cycle for a session and plays music when the
// mood changed since the previous cycle. Any stage failure aborts the cycle
// without touching the stored mood. A trigger arriving while a cycle is in
// flight cancels that cycle and runs in its place.
func (s *Service) RunCycle(ctx context.Context, sessionID string, player Player) (*Result, error) {
	st := s.state(sessionID)
	st.interrupt()

	st.mu.Lock()
	defer st.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	st.cancelMu.Lock()
	st.cancel = cancel
	st.cancelMu.Unlock()
	defer func() {
		st.cancelMu.Lock()
		st.cancel = nil
		st.cancelMu.Unlock()
	}()

	decision, err := s.analyze(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Decision: *decision,
		Previous: st.lastMood,
		Changed:  decision.Mood != st.lastMood,
	}

	if !result.Changed {
		s.logger.Info("mood unchanged, keeping current playback",
			"session", sessionID, "mood", decision.Mood)
		return result, nil
	}

	sel := s.mapper.ForMood(decision.Mood)
	uris, err := player.Recommend(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlayback, err)
	}
	if err := player.Play(ctx, uris); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlayback, err)
	}

	// The stored mood moves only after the full cycle succeeded.
	st.lastMood = decision.Mood

	s.logger.Info("mood changed, playback started",
		"session", sessionID, "mood", decision.Mood, "previous", result.Previous, "tracks", len(uris))

	return result, nil
}

// analyze runs the capture and analysis stages and reconciles the result.
func (s *Service) analyze(ctx context.Context, sessionID string) (*emotion.Decision, error) {
	wav, err := s.recorder.Record(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	transcript, err := s.transcribe.Transcribe(ctx, wav)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscription, err)
	}

	keywords, err := s.text.AnalyzeText(ctx, transcript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	textDist := emotion.ScoreKeywords(keywords)

	voiceResult, err := s.voice.AnalyzeVoice(ctx, wav)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}
	speechDist := emotion.ScoreVoice(voiceResult)

	decision := s.reconciler.Decide(textDist, speechDist)
	if decision.Ambiguous {
		// Genuine channel disagreement resolved by confidence; worth a log
		// line for operators, never an error.
		s.logger.Warn("emotion channels disagreed, confidence tie-break applied",
			"session", sessionID,
			"mood", decision.Mood,
			"text_top", decision.Text.Top().Label,
			"speech_top", decision.Speech.Top().Label)
	}

	return &decision, nil
}
