package emotion

import (
	"encoding/json"
	"testing"
)

func TestScoreVoice(t *testing.T) {
	tests := []struct {
		name    string
		result  VoiceResult
		wantTop Label
		wantLen int
	}{
		{
			name: "happiness dominates",
			result: VoiceResult{
				Valid: true, Neutrality: 0.1, Happiness: 0.8, Sadness: 0.2, Anger: 0.1, Fear: 0.0,
			},
			wantTop: Joy,
			wantLen: 5,
		},
		{
			name: "neutral prosody",
			result: VoiceResult{
				Valid: true, Neutrality: 0.76, Happiness: 0.0, Sadness: 0.238, Anger: 0.001, Fear: 0.0,
			},
			wantTop: Neutral,
			wantLen: 5,
		},
		{
			name: "probabilities need not sum to one",
			result: VoiceResult{
				Valid: true, Neutrality: 0.9, Happiness: 0.9, Sadness: 0.9, Anger: 0.95, Fear: 0.9,
			},
			wantTop: Anger,
			wantLen: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreVoice(tt.result)

			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if top := got.Top().Label; top != tt.wantTop {
				t.Errorf("Top().Label = %q, want %q", top, tt.wantTop)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Score > got[i-1].Score {
					t.Errorf("not sorted descending at %d", i)
				}
			}
		})
	}
}

func TestScoreVoiceInvalid(t *testing.T) {
	// The probability fields are ignored when the signal is unusable.
	result := VoiceResult{
		Valid: false, Neutrality: 0.1, Happiness: 0.99, Sadness: 0.5, Anger: 0.5, Fear: 0.5,
	}

	got := ScoreVoice(result)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Label != NotDeterminable || got[0].Score != 1.0 {
		t.Errorf("got %+v, want (not_determinable, 1.0)", got[0])
	}
}

func TestScoreVoiceEqualProbabilitiesKeepListedOrder(t *testing.T) {
	result := VoiceResult{
		Valid: true, Neutrality: 0.5, Happiness: 0.5, Sadness: 0.5, Anger: 0.5, Fear: 0.5,
	}

	got := ScoreVoice(result)

	if got[0].Label != Neutral {
		t.Errorf("Top().Label = %q, want %q (first-listed wins ties)", got[0].Label, Neutral)
	}
}

func TestVoiceResultDecodeUsesAliasTable(t *testing.T) {
	payload := []byte(`{"valid":true,"happy":0.8,"neutrality":0.1,"sad":0.05,"boredom":0.9}`)

	var got VoiceResult
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.Valid {
		t.Error("Valid = false, want true")
	}
	if got.Happiness != 0.8 {
		t.Errorf("Happiness = %v, want 0.8 (decoded from the happy alias)", got.Happiness)
	}
	if got.Neutrality != 0.1 {
		t.Errorf("Neutrality = %v, want 0.1", got.Neutrality)
	}
	if got.Sadness != 0.05 {
		t.Errorf("Sadness = %v, want 0.05 (decoded from the sad alias)", got.Sadness)
	}
	// "boredom" is outside the voice vocabulary and must land nowhere.
	if got.Anger != 0 || got.Fear != 0 {
		t.Errorf("unknown emotion leaked into %+v", got)
	}
}
