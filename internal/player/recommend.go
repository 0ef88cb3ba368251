package player

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/avelazco/go-mood-player/internal/playlist"
)

const maxSeedGenres = 5

// Recommend resolves a selector to a list of playable track URIs.
//
// A selector pinned to a curated playlist returns that playlist's tracks.
// When the pinned playlist is unavailable or empty (deleted, region-locked,
// or never populated), or when the selector pins nothing, the seed genres
// and tunable attribute bounds drive a recommendation query instead, and
// the result is refined to the cluster of tracks closest to the selector's
// attribute midpoint.
func (c *Client) Recommend(ctx context.Context, sel playlist.Selector) ([]spotify.URI, error) {
	if sel.PlaylistID != "" {
		uris, err := c.playlistTrackURIs(ctx, spotify.ID(sel.PlaylistID))
		if err == nil && len(uris) > 0 {
			return uris, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	seeds := spotify.Seeds{Genres: sel.SeedGenres}
	if len(seeds.Genres) > maxSeedGenres {
		seeds.Genres = seeds.Genres[:maxSeedGenres]
	}

	attrs := trackAttributes(sel)

	opts := []spotify.RequestOption{spotify.Limit(30)}
	if c.market != "" {
		opts = append(opts, spotify.Market(c.market))
	}

	recs, err := c.api.GetRecommendations(ctx, seeds, attrs, opts...)
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}

	return c.refineRecommendations(ctx, recs.Tracks, sel)
}

// trackAttributes converts selector bounds into a recommendation query.
func trackAttributes(sel playlist.Selector) *spotify.TrackAttributes {
	return spotify.NewTrackAttributes().
		MinAcousticness(sel.Acousticness.Min).MaxAcousticness(sel.Acousticness.Max).
		MinDanceability(sel.Danceability.Min).MaxDanceability(sel.Danceability.Max).
		MinEnergy(sel.Energy.Min).MaxEnergy(sel.Energy.Max).
		MinInstrumentalness(sel.Instrumentalness.Min).MaxInstrumentalness(sel.Instrumentalness.Max).
		MinTempo(sel.Tempo.Min).MaxTempo(sel.Tempo.Max).
		MinValence(sel.Valence.Min).MaxValence(sel.Valence.Max)
}

// refineRecommendations fetches audio features for the recommended tracks
// and keeps the cluster closest to the selector target. Feature fetch
// failures fall back to the unrefined track list.
func (c *Client) refineRecommendations(ctx context.Context, tracks []spotify.SimpleTrack, sel playlist.Selector) ([]spotify.URI, error) {
	if len(tracks) == 0 {
		return nil, nil
	}

	ids := make([]spotify.ID, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}

	features, err := c.api.GetAudioFeatures(ctx, ids...)
	if err != nil {
		uris := make([]spotify.URI, len(tracks))
		for i, t := range tracks {
			uris[i] = t.URI
		}
		return uris, nil
	}

	uriByID := make(map[string]spotify.URI, len(tracks))
	for _, t := range tracks {
		uriByID[t.ID.String()] = t.URI
	}

	var withFeatures []playlist.TrackFeatures
	for _, f := range features {
		if f == nil {
			continue
		}
		uri, ok := uriByID[f.ID.String()]
		if !ok {
			continue
		}
		withFeatures = append(withFeatures, playlist.TrackFeatures{
			URI:          string(uri),
			Energy:       float64(f.Energy),
			Valence:      float64(f.Valence),
			Danceability: float64(f.Danceability),
			Acousticness: float64(f.Acousticness),
		})
	}

	refined := playlist.Refine(withFeatures, sel)
	if len(refined) == 0 {
		uris := make([]spotify.URI, len(tracks))
		for i, t := range tracks {
			uris[i] = t.URI
		}
		return uris, nil
	}

	uris := make([]spotify.URI, len(refined))
	for i, u := range refined {
		uris[i] = spotify.URI(u)
	}
	return uris, nil
}

// playlistTrackURIs returns the track URIs of a curated playlist.
func (c *Client) playlistTrackURIs(ctx context.Context, playlistID spotify.ID) ([]spotify.URI, error) {
	page, err := c.api.GetPlaylistItems(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("fetching playlist %s: %w", playlistID, err)
	}

	var uris []spotify.URI
	for _, item := range page.Items {
		if item.Track.Track == nil {
			continue
		}
		uris = append(uris, item.Track.Track.URI)
	}
	return uris, nil
}
