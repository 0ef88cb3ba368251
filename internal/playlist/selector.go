// Package playlist maps reconciled moods to the playlist parameters used to
// request matching music.
package playlist

import "github.com/avelazco/go-mood-player/internal/emotion"

// AttributeBounds constrains one tunable recommendation attribute.
type AttributeBounds struct {
	Min float64
	Max float64
}

// Selector describes the music to request for one mood: either a fixed
// playlist, or seed genres plus tunable attribute bounds for a
// recommendation query. When PlaylistID is set it takes precedence.
type Selector struct {
	PlaylistID string

	SeedGenres       []string
	Acousticness     AttributeBounds
	Danceability     AttributeBounds
	Energy           AttributeBounds
	Instrumentalness AttributeBounds
	Tempo            AttributeBounds
	Valence          AttributeBounds
}

// Curated playlist IDs carried over from the original player setup.
const (
	happyPlaylistID = "2i7PJTO3ypWshEfkhY2ja3"
	sadPlaylistID   = "4fMQbprrxmFjLSHSOEj6sw"
	angryPlaylistID = "5CnhvCg1AcjuKH97lf1uam"
)

// selectors is domain tuning data, not behavior: the genre seeds and
// attribute ranges per mood are preserved verbatim from the original
// player configuration. Fear shares the sadness playlist.
var selectors = map[emotion.Label]Selector{
	emotion.Joy: {
		PlaylistID:       happyPlaylistID,
		SeedGenres:       []string{"acoustic", "dance", "edm", "pop"},
		Acousticness:     AttributeBounds{Min: 0.0, Max: 1.0},
		Danceability:     AttributeBounds{Min: 0.0, Max: 1.0},
		Energy:           AttributeBounds{Min: 0.5, Max: 1.0},
		Instrumentalness: AttributeBounds{Min: 0.25, Max: 1.0},
		Tempo:            AttributeBounds{Min: 90.0, Max: 200.0},
		Valence:          AttributeBounds{Min: 0.0, Max: 1.0},
	},
	emotion.Sadness: {
		PlaylistID:       sadPlaylistID,
		SeedGenres:       []string{"chill", "ambient", "piano", "soundtracks"},
		Acousticness:     AttributeBounds{Min: 0.0, Max: 1.0},
		Danceability:     AttributeBounds{Min: 0.0, Max: 1.0},
		Energy:           AttributeBounds{Min: 0.0, Max: 0.5},
		Instrumentalness: AttributeBounds{Min: 0.25, Max: 1.0},
		Tempo:            AttributeBounds{Min: 60.0, Max: 120.0},
		Valence:          AttributeBounds{Min: 0.0, Max: 0.5},
	},
	emotion.Anger: {
		PlaylistID:       angryPlaylistID,
		SeedGenres:       []string{"rock", "metal", "punk", "work-out"},
		Acousticness:     AttributeBounds{Min: 0.0, Max: 0.5},
		Danceability:     AttributeBounds{Min: 0.0, Max: 1.0},
		Energy:           AttributeBounds{Min: 0.6, Max: 1.0},
		Instrumentalness: AttributeBounds{Min: 0.0, Max: 1.0},
		Tempo:            AttributeBounds{Min: 100.0, Max: 200.0},
		Valence:          AttributeBounds{Min: 0.0, Max: 0.6},
	},
	emotion.Fear: {
		PlaylistID:       sadPlaylistID,
		SeedGenres:       []string{"chill", "ambient", "piano", "soundtracks"},
		Acousticness:     AttributeBounds{Min: 0.0, Max: 1.0},
		Danceability:     AttributeBounds{Min: 0.0, Max: 1.0},
		Energy:           AttributeBounds{Min: 0.0, Max: 0.5},
		Instrumentalness: AttributeBounds{Min: 0.25, Max: 1.0},
		Tempo:            AttributeBounds{Min: 60.0, Max: 120.0},
		Valence:          AttributeBounds{Min: 0.0, Max: 0.5},
	},
}

// Mapper resolves moods to selectors. Its zero value defaults unmapped
// moods to the joy selector.
type Mapper struct {
	// Default is returned for moods without their own selector
	// (neutral, not_determinable, disgust). Empty means the joy selector.
	Default emotion.Label
}

// ForMood returns the selector for a mood. Every canonical label resolves
// to a selector; unmapped moods get the configured default.
func (m Mapper) ForMood(mood emotion.Label) Selector {
	if sel, ok := selectors[mood]; ok {
		return sel
	}

	fallback := m.Default
	if fallback == "" {
		fallback = emotion.Joy
	}
	if sel, ok := selectors[fallback]; ok {
		return sel
	}
	return selectors[emotion.Joy]
}
