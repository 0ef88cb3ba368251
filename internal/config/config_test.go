package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("SPOTIFY_ID", "client-id")
	t.Setenv("SPOTIFY_SECRET", "client-secret")
	t.Setenv("STT_API_KEY", "stt-key")
	t.Setenv("NLU_API_KEY", "nlu-key")
	t.Setenv("DATABASE_URL", "")
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.ClipDuration() != 15*time.Second {
		t.Errorf("ClipDuration = %v, want 15s", cfg.ClipDuration())
	}
	if cfg.TieBreak != "speech" {
		t.Errorf("TieBreak = %q, want speech", cfg.TieBreak)
	}
	if cfg.SpotifyID != "client-id" || cfg.STTAPIKey != "stt-key" {
		t.Error("credentials not read from environment")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	setCredentials(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
addr: "0.0.0.0:9000"
services:
  transcription:
    url: "https://stt.example.com"
    timeout_seconds: 20
  voice_analysis:
    url: "http://localhost:7000"
capture:
  clip_seconds: 5
tie_break: text
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Services.Transcription.URL != "https://stt.example.com" {
		t.Errorf("Transcription.URL = %q", cfg.Services.Transcription.URL)
	}
	if cfg.Services.Transcription.Timeout() != 20*time.Second {
		t.Errorf("Transcription.Timeout = %v", cfg.Services.Transcription.Timeout())
	}
	if cfg.ClipDuration() != 5*time.Second {
		t.Errorf("ClipDuration = %v, want 5s", cfg.ClipDuration())
	}
	if cfg.TieBreak != "text" {
		t.Errorf("TieBreak = %q, want text", cfg.TieBreak)
	}
	// File settings never override defaults it does not mention.
	if cfg.Player.Market != "PH" {
		t.Errorf("Market = %q, want PH default", cfg.Player.Market)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("SPOTIFY_ID", "")
	t.Setenv("SPOTIFY_SECRET", "")

	_, err := Load("")

	if !errors.Is(err, ErrMissingSpotifyCredentials) {
		t.Errorf("err = %v, want ErrMissingSpotifyCredentials", err)
	}
}

func TestLoadInvalidTieBreak(t *testing.T) {
	setCredentials(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tie_break: coinflip\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid tie_break")
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}
