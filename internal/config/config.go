// Package config loads application configuration: service endpoints and
// tuning from a YAML file, credentials from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingSpotifyCredentials is returned when SPOTIFY_ID or SPOTIFY_SECRET
// is not set.
var ErrMissingSpotifyCredentials = errors.New("missing SPOTIFY_ID or SPOTIFY_SECRET environment variable")

// Service is one collaborator endpoint.
type Service struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout, or zero when unset so clients apply
// their own default.
func (s Service) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Config is the full application configuration.
type Config struct {
	Addr string `yaml:"addr"`

	Services struct {
		Transcription Service `yaml:"transcription"`
		TextAnalysis  Service `yaml:"text_analysis"`
		VoiceAnalysis Service `yaml:"voice_analysis"`
	} `yaml:"services"`

	Capture struct {
		ClipSeconds int `yaml:"clip_seconds"`
	} `yaml:"capture"`

	Player struct {
		Market string `yaml:"market"`
	} `yaml:"player"`

	// TieBreak overrides the reconciler's exact-tie preference:
	// "speech" (default) or "text".
	TieBreak string `yaml:"tie_break"`

	// Credentials come from the environment only.
	SpotifyID     string `yaml:"-"`
	SpotifySecret string `yaml:"-"`
	STTAPIKey     string `yaml:"-"`
	NLUAPIKey     string `yaml:"-"`
	DatabaseURL   string `yaml:"-"`
}

// defaults mirror the original player's recording and market settings.
func defaults() *Config {
	var cfg Config
	cfg.Addr = "127.0.0.1:8080"
	cfg.Capture.ClipSeconds = 15
	cfg.Player.Market = "PH"
	cfg.TieBreak = "speech"
	return &cfg
}

// Load reads configuration from the given YAML file (optional; an empty
// path or missing file keeps the defaults) and from the environment.
// Returns ErrMissingSpotifyCredentials when the Spotify credentials are
// not set.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		f, err := os.Open(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening config file: %w", err)
		}
		if err == nil {
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	cfg.SpotifyID = os.Getenv("SPOTIFY_ID")
	cfg.SpotifySecret = os.Getenv("SPOTIFY_SECRET")
	cfg.STTAPIKey = os.Getenv("STT_API_KEY")
	cfg.NLUAPIKey = os.Getenv("NLU_API_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if cfg.SpotifyID == "" || cfg.SpotifySecret == "" {
		return nil, ErrMissingSpotifyCredentials
	}

	if cfg.TieBreak != "speech" && cfg.TieBreak != "text" {
		return nil, fmt.Errorf("invalid tie_break %q: must be speech or text", cfg.TieBreak)
	}

	return cfg, nil
}

// ClipDuration returns the capture window length.
func (c *Config) ClipDuration() time.Duration {
	return time.Duration(c.Capture.ClipSeconds) * time.Second
}
