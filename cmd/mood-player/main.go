// Command mood-player runs the mood-driven music player web application.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/avelazco/go-mood-player/internal/capture"
	"github.com/avelazco/go-mood-player/internal/config"
	"github.com/avelazco/go-mood-player/internal/db"
	"github.com/avelazco/go-mood-player/internal/emotion"
	"github.com/avelazco/go-mood-player/internal/lyrics"
	"github.com/avelazco/go-mood-player/internal/mood"
	"github.com/avelazco/go-mood-player/internal/playlist"
	"github.com/avelazco/go-mood-player/internal/sentiment"
	"github.com/avelazco/go-mood-player/internal/transcribe"
	"github.com/avelazco/go-mood-player/internal/web"
	webfs "github.com/avelazco/go-mood-player/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, config.ErrMissingSpotifyCredentials) {
			return fmt.Errorf("please set SPOTIFY_ID and SPOTIFY_SECRET environment variables")
		}
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Collaborator clients
	transcriber := transcribe.NewClient(transcribe.Config{
		APIKey:  cfg.STTAPIKey,
		BaseURL: cfg.Services.Transcription.URL,
		Timeout: cfg.Services.Transcription.Timeout(),
	})
	textAnalyzer := sentiment.NewTextClient(sentiment.TextConfig{
		APIKey:  cfg.NLUAPIKey,
		BaseURL: cfg.Services.TextAnalysis.URL,
		Timeout: cfg.Services.TextAnalysis.Timeout(),
	})
	voiceAnalyzer := sentiment.NewVoiceClient(sentiment.VoiceConfig{
		BaseURL: cfg.Services.VoiceAnalysis.URL,
		Timeout: cfg.Services.VoiceAnalysis.Timeout(),
	})

	// Microphone capture
	recorder := capture.NewPulseRecorder(cfg.ClipDuration())

	// Mood decision pipeline
	tieBreak := emotion.TieBreakSpeech
	if cfg.TieBreak == "text" {
		tieBreak = emotion.TieBreakText
	}
	moods := mood.NewService(
		recorder,
		transcriber,
		textAnalyzer,
		voiceAnalyzer,
		emotion.NewReconciler(tieBreak),
		playlist.Mapper{},
		logger,
	)

	// Optional mood history database
	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
	}

	// Create sub-filesystems for templates and static files
	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	// Create and start server
	server, err := web.NewServer(web.ServerConfig{
		Addr:         cfg.Addr,
		ClientID:     cfg.SpotifyID,
		ClientSecret: cfg.SpotifySecret,
		Market:       cfg.Player.Market,
		TemplatesFS:  templates,
		StaticFS:     static,
		Moods:        moods,
		Lyrics:       lyrics.NewClient(),
		Database:     database,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
