// Package player provides a wrapper around the Spotify Web API for
// mood-driven playback.
package player

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

// Client wraps the Spotify API client with playback convenience methods.
type Client struct {
	api    *spotify.Client
	market string
}

// New creates a new player client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client, market string) *Client {
	return &Client{api: api, market: market}
}

// UserID returns the current user's Spotify ID.
func (c *Client) UserID(ctx context.Context) (string, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	return user.ID, nil
}
