package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a Spotify user profile.
type User struct {
	ID          string
	DisplayName string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Session represents an authenticated web session. LastMood carries the
// session's most recent reconciled mood so a restarted process does not
// restart playback for a mood that is already playing.
type Session struct {
	ID           string
	UserID       string
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
	LastMood     string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// MoodCycle records one completed mood cycle: the reconciled mood, each
// channel's top pick, and whether the decision needed the confidence
// tie-break. This is the observability trail for reconciliation decisions.
type MoodCycle struct {
	ID          uuid.UUID
	SessionID   string
	UserID      string
	Mood        string
	TextLabel   string
	TextScore   float64
	SpeechLabel string
	SpeechScore float64
	Ambiguous   bool
	CreatedAt   time.Time
}
