package emotion

import (
	"encoding/json"
	"math"
	"testing"
)

func TestScoreKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []Keyword
		wantTop  Label
	}{
		{
			name: "single keyword dominant joy",
			keywords: []Keyword{
				{Text: "sunshine", Relevance: 0.9, Emotion: KeywordIntensities{Joy: 0.8, Sadness: 0.1}},
			},
			wantTop: Joy,
		},
		{
			name: "relevance weights across keywords",
			keywords: []Keyword{
				{Text: "funeral", Relevance: 0.9, Emotion: KeywordIntensities{Sadness: 0.7, Joy: 0.1}},
				{Text: "party", Relevance: 0.2, Emotion: KeywordIntensities{Joy: 0.9}},
			},
			wantTop: Sadness,
		},
		{
			name: "low relevance cannot outweigh high relevance",
			keywords: []Keyword{
				{Text: "rage", Relevance: 0.8, Emotion: KeywordIntensities{Anger: 0.6}},
				{Text: "worry", Relevance: 0.1, Emotion: KeywordIntensities{Fear: 0.9}},
			},
			wantTop: Anger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreKeywords(tt.keywords)

			if top := got.Top().Label; top != tt.wantTop {
				t.Errorf("Top().Label = %q, want %q", top, tt.wantTop)
			}

			var sum float64
			for _, e := range got {
				if e.Score < 0 || e.Score > 1 {
					t.Errorf("score %v for %q out of [0,1]", e.Score, e.Label)
				}
				sum += e.Score
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("distribution sums to %v, want 1.0", sum)
			}
		})
	}
}

func TestScoreKeywordsEmptyInput(t *testing.T) {
	got := ScoreKeywords(nil)

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Label != NotDeterminable || got[0].Score != 1.0 {
		t.Errorf("got %+v, want (not_determinable, 1.0)", got[0])
	}
}

func TestScoreKeywordsZeroWeights(t *testing.T) {
	// All intensities zero: the normalization divisor would be zero.
	keywords := []Keyword{
		{Text: "the", Relevance: 0.5},
		{Text: "and", Relevance: 0.3},
	}

	got := ScoreKeywords(keywords)

	if got.Top().Label != NotDeterminable {
		t.Errorf("Top().Label = %q, want %q", got.Top().Label, NotDeterminable)
	}
}

func TestScoreKeywordsSortedDescending(t *testing.T) {
	keywords := []Keyword{
		{Text: "storm", Relevance: 1.0, Emotion: KeywordIntensities{
			Sadness: 0.2, Joy: 0.1, Fear: 0.5, Disgust: 0.05, Anger: 0.15,
		}},
	}

	got := ScoreKeywords(keywords)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("distribution not sorted descending at %d: %v > %v", i, got[i].Score, got[i-1].Score)
		}
	}
	if got[0].Label != Fear {
		t.Errorf("Top().Label = %q, want %q", got[0].Label, Fear)
	}
}

func TestScoreKeywordsStableTieOrder(t *testing.T) {
	// Sadness and joy end up exactly equal; sadness is accumulated first
	// and must stay first.
	keywords := []Keyword{
		{Text: "bittersweet", Relevance: 1.0, Emotion: KeywordIntensities{Sadness: 0.5, Joy: 0.5}},
	}

	got := ScoreKeywords(keywords)

	if got[0].Label != Sadness {
		t.Errorf("Top().Label = %q, want %q (first-seen wins ties)", got[0].Label, Sadness)
	}
}

func TestKeywordIntensitiesDecodeUsesAliasTable(t *testing.T) {
	payload := []byte(`{"Sadness":0.7,"joy":0.2,"boredom":0.9,"anger":0.1}`)

	var got KeywordIntensities
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Sadness != 0.7 {
		t.Errorf("Sadness = %v, want 0.7 (case-insensitive alias)", got.Sadness)
	}
	if got.Joy != 0.2 {
		t.Errorf("Joy = %v, want 0.2", got.Joy)
	}
	if got.Anger != 0.1 {
		t.Errorf("Anger = %v, want 0.1", got.Anger)
	}
	// "boredom" is outside the text vocabulary and must land nowhere.
	if got.Fear != 0 || got.Disgust != 0 {
		t.Errorf("unknown emotion leaked into %+v", got)
	}
}
