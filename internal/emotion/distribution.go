package emotion

import "sort"

// ScoredEmotion pairs a canonical label with its score.
type ScoredEmotion struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Distribution is a list of scored emotions sorted descending by score.
// Ties keep first-seen order. A distribution is built once per analysis
// call and never mutated afterwards.
type Distribution []ScoredEmotion

// newDistribution sorts entries descending by score with a stable sort so
// ties resolve to whichever entry was listed first.
func newDistribution(entries []ScoredEmotion) Distribution {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return Distribution(entries)
}

// notDeterminable is the guarded fallback distribution.
func notDeterminable() Distribution {
	return Distribution{{Label: NotDeterminable, Score: 1.0}}
}

// Top returns the highest-scored entry.
// Returns a NotDeterminable entry for an empty distribution.
func (d Distribution) Top() ScoredEmotion {
	if len(d) == 0 {
		return ScoredEmotion{Label: NotDeterminable, Score: 1.0}
	}
	return d[0]
}
