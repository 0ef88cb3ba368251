package player

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

// playbackPositionMs skips the first moments of the opening track, matching
// the original player's tuned start offset.
const playbackPositionMs = 35

// Play starts playback of the given track URIs on the user's active device
// and enables shuffle, the original player's default behavior.
func (c *Client) Play(ctx context.Context, uris []spotify.URI) error {
	if len(uris) == 0 {
		return fmt.Errorf("no tracks to play")
	}

	err := c.api.PlayOpt(ctx, &spotify.PlayOptions{
		URIs:       uris,
		PositionMs: playbackPositionMs,
	})
	if err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}

	if err := c.Shuffle(ctx, true); err != nil {
		return err
	}
	return nil
}

// Pause pauses playback on the user's active device.
func (c *Client) Pause(ctx context.Context) error {
	if err := c.api.Pause(ctx); err != nil {
		return fmt.Errorf("pausing playback: %w", err)
	}
	return nil
}

// Shuffle toggles shuffle mode on the user's active device.
func (c *Client) Shuffle(ctx context.Context, enabled bool) error {
	if err := c.api.Shuffle(ctx, enabled); err != nil {
		return fmt.Errorf("setting shuffle: %w", err)
	}
	return nil
}
