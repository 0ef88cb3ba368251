package emotion

// TieBreak selects which channel wins rule 5 when both top scores are
// exactly equal.
type TieBreak int

const (
	// TieBreakSpeech prefers the speech channel on an exact tie.
	TieBreakSpeech TieBreak = iota
	// TieBreakText prefers the text channel on an exact tie.
	TieBreakText
)

// Decision is the reconciled mood for one cycle, along with the two input
// distributions retained for the response payload.
type Decision struct {
	Mood   Label        `json:"mood"`
	Text   Distribution `json:"text"`
	Speech Distribution `json:"speech"`

	// Ambiguous is set when the channels genuinely disagreed and the
	// confidence tie-break decided the mood. Worth surfacing to operators;
	// never an error.
	Ambiguous bool `json:"ambiguous"`
}

// Reconciler resolves the top picks of the two scoring channels into one
// mood label.
type Reconciler struct {
	tieBreak TieBreak
}

// NewReconciler returns a Reconciler with the given exact-tie preference.
func NewReconciler(tb TieBreak) *Reconciler {
	return &Reconciler{tieBreak: tb}
}

// Decide picks the cycle's mood from the two distributions. Rules are
// evaluated in fixed priority order; the first match wins:
//
//  1. Text reads disgust while the voice is non-neutral: text-based disgust
//     is unreliable (often sarcasm), so the vocal reading overrides it.
//  2. The voice reads disgust: remapped to anger, the closest mood the
//     target taxonomy has for vocal disgust.
//  3. The voice reads neutral: no prosody signal, defer to the text.
//  4. Both channels agree on the canonical label: that label.
//  5. Genuine disagreement: the channel with the strictly higher top score
//     wins; an exact tie falls to the configured TieBreak.
//
// Decide never fails; given two well-formed distributions it always
// produces a label.
func (r *Reconciler) Decide(text, speech Distribution) Decision {
	d := Decision{Text: text, Speech: speech}

	textTop := text.Top()
	speechTop := speech.Top()

	switch {
	case textTop.Label == Disgust && speechTop.Label != Neutral:
		d.Mood = speechTop.Label
	case speechTop.Label == Disgust:
		d.Mood = Anger
	case speechTop.Label == Neutral:
		d.Mood = textTop.Label
	case textTop.Label == speechTop.Label:
		d.Mood = textTop.Label
	default:
		d.Ambiguous = true
		switch {
		case textTop.Score > speechTop.Score:
			d.Mood = textTop.Label
		case speechTop.Score > textTop.Score:
			d.Mood = speechTop.Label
		case r.tieBreak == TieBreakText:
			d.Mood = textTop.Label
		default:
			d.Mood = speechTop.Label
		}
	}

	return d
}
