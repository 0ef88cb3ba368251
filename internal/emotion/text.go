package emotion

import "encoding/json"

// Keyword is one keyword from a text-sentiment analysis response: the
// keyword text, its relevance to the input, and an intensity per emotion.
type Keyword struct {
	Text      string             `json:"text"`
	Relevance float64            `json:"relevance"`
	Emotion   KeywordIntensities `json:"emotion"`
}

// KeywordIntensities holds the per-emotion intensities reported for a
// keyword. The text channel scores these five emotions only.
type KeywordIntensities struct {
	Sadness float64 `json:"sadness"`
	Joy     float64 `json:"joy"`
	Fear    float64 `json:"fear"`
	Disgust float64 `json:"disgust"`
	Anger   float64 `json:"anger"`
}

// UnmarshalJSON decodes the collaborator's emotion object through the
// text-channel alias table, so native vocabulary variants and unknown
// emotion keys are resolved here rather than compared as raw strings
// downstream.
func (k *KeywordIntensities) UnmarshalJSON(data []byte) error {
	var fields map[string]float64
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for name, score := range fields {
		switch ParseTextLabel(name) {
		case Sadness:
			k.Sadness = score
		case Joy:
			k.Joy = score
		case Fear:
			k.Fear = score
		case Disgust:
			k.Disgust = score
		case Anger:
			k.Anger = score
		}
	}
	return nil
}

// textEmotions fixes accumulation order so equal weights sort predictably.
var textEmotions = []Label{Sadness, Joy, Fear, Disgust, Anger}

// ScoreKeywords turns a keyword-emotion-relevance response into a normalized
// weight per emotion: each emotion accumulates relevance x intensity across
// all keywords, and the totals are divided by their sum so the resulting
// distribution sums to 1.
//
// An empty keyword list, or one whose accumulated weights total zero, yields
// the NotDeterminable distribution rather than dividing by zero.
func ScoreKeywords(keywords []Keyword) Distribution {
	if len(keywords) == 0 {
		return notDeterminable()
	}

	weights := make(map[Label]float64, len(textEmotions))
	for _, kw := range keywords {
		weights[Sadness] += kw.Relevance * kw.Emotion.Sadness
		weights[Joy] += kw.Relevance * kw.Emotion.Joy
		weights[Fear] += kw.Relevance * kw.Emotion.Fear
		weights[Disgust] += kw.Relevance * kw.Emotion.Disgust
		weights[Anger] += kw.Relevance * kw.Emotion.Anger
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return notDeterminable()
	}

	entries := make([]ScoredEmotion, 0, len(textEmotions))
	for _, label := range textEmotions {
		entries = append(entries, ScoredEmotion{
			Label: label,
			Score: weights[label] / total,
		})
	}
	return newDistribution(entries)
}
