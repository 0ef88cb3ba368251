package emotion

import "encoding/json"

// VoiceResult is the shape of a voice-prosody analysis: a validity flag and
// five independent detector probabilities. The probabilities are not
// required to sum to 1.
type VoiceResult struct {
	Valid      bool    `json:"valid"`
	Neutrality float64 `json:"neutrality"`
	Happiness  float64 `json:"happiness"`
	Sadness    float64 `json:"sadness"`
	Anger      float64 `json:"anger"`
	Fear       float64 `json:"fear"`
}

// UnmarshalJSON decodes the collaborator's probabilities through the
// voice-channel alias table ("happy" and "happiness" both land on the
// happiness probability); unrecognized fields are ignored.
func (r *VoiceResult) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	if raw, ok := fields["valid"]; ok {
		if err := json.Unmarshal(raw, &r.Valid); err != nil {
			return err
		}
		delete(fields, "valid")
	}

	for name, raw := range fields {
		var score float64
		if err := json.Unmarshal(raw, &score); err != nil {
			continue
		}
		switch ParseSpeechLabel(name) {
		case Neutral:
			r.Neutrality = score
		case Joy:
			r.Happiness = score
		case Sadness:
			r.Sadness = score
		case Anger:
			r.Anger = score
		case Fear:
			r.Fear = score
		}
	}
	return nil
}

// ScoreVoice turns a voice-analysis result into a ranked distribution.
//
// When the result is not valid (silence or non-speech audio), the sole
// output is the NotDeterminable distribution; the probability fields are
// ignored entirely. Otherwise the five probabilities are ranked descending
// without renormalization, since they are independent detector outputs.
func ScoreVoice(result VoiceResult) Distribution {
	if !result.Valid {
		return notDeterminable()
	}

	entries := []ScoredEmotion{
		{Label: Neutral, Score: result.Neutrality},
		{Label: Joy, Score: result.Happiness},
		{Label: Sadness, Score: result.Sadness},
		{Label: Anger, Score: result.Anger},
		{Label: Fear, Score: result.Fear},
	}
	return newDistribution(entries)
}
