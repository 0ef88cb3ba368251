package playlist

import (
	"testing"

	"github.com/avelazco/go-mood-player/internal/emotion"
)

func TestForMood(t *testing.T) {
	tests := []struct {
		name           string
		mood           emotion.Label
		wantPlaylistID string
		wantGenre      string
	}{
		{"joy", emotion.Joy, "2i7PJTO3ypWshEfkhY2ja3", "acoustic"},
		{"sadness", emotion.Sadness, "4fMQbprrxmFjLSHSOEj6sw", "chill"},
		{"anger", emotion.Anger, "5CnhvCg1AcjuKH97lf1uam", "rock"},
		{"fear shares the sad playlist", emotion.Fear, "4fMQbprrxmFjLSHSOEj6sw", "chill"},
		{"neutral falls back to joy", emotion.Neutral, "2i7PJTO3ypWshEfkhY2ja3", "acoustic"},
		{"disgust falls back to joy", emotion.Disgust, "2i7PJTO3ypWshEfkhY2ja3", "acoustic"},
		{"not_determinable falls back to joy", emotion.NotDeterminable, "2i7PJTO3ypWshEfkhY2ja3", "acoustic"},
	}

	var m Mapper
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := m.ForMood(tt.mood)

			if sel.PlaylistID != tt.wantPlaylistID {
				t.Errorf("PlaylistID = %q, want %q", sel.PlaylistID, tt.wantPlaylistID)
			}
			if len(sel.SeedGenres) == 0 || sel.SeedGenres[0] != tt.wantGenre {
				t.Errorf("SeedGenres = %v, want first genre %q", sel.SeedGenres, tt.wantGenre)
			}
		})
	}
}

func TestForMoodTotalOverLabelSet(t *testing.T) {
	// Every canonical label must resolve to a non-empty selector.
	var m Mapper
	for _, label := range emotion.Labels {
		sel := m.ForMood(label)
		if sel.PlaylistID == "" && len(sel.SeedGenres) == 0 {
			t.Errorf("ForMood(%q) returned an empty selector", label)
		}
	}
}

func TestForMoodConfiguredDefault(t *testing.T) {
	m := Mapper{Default: emotion.Sadness}

	sel := m.ForMood(emotion.Neutral)

	if sel.PlaylistID != "4fMQbprrxmFjLSHSOEj6sw" {
		t.Errorf("PlaylistID = %q, want the sadness selector", sel.PlaylistID)
	}
}

func TestJoySelectorTuning(t *testing.T) {
	// The attribute bounds are tuning data and must stay intact.
	sel := Mapper{}.ForMood(emotion.Joy)

	if sel.Energy.Min != 0.5 {
		t.Errorf("Energy.Min = %v, want 0.5", sel.Energy.Min)
	}
	if sel.Instrumentalness.Min != 0.25 {
		t.Errorf("Instrumentalness.Min = %v, want 0.25", sel.Instrumentalness.Min)
	}
	if sel.Tempo.Min != 90.0 || sel.Tempo.Max != 200.0 {
		t.Errorf("Tempo = %+v, want 90-200", sel.Tempo)
	}
}
