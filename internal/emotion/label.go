// Package emotion implements emotion scoring and reconciliation for mood
// detection from transcript text and vocal prosody.
package emotion

import "strings"

// Label is a canonical emotion label.
type Label string

// Canonical emotion labels. The two analysis channels use different native
// vocabularies ("joy" vs "happy"); both map onto this single set.
const (
	Joy             Label = "joy"
	Sadness         Label = "sadness"
	Anger           Label = "anger"
	Fear            Label = "fear"
	Disgust         Label = "disgust"
	Neutral         Label = "neutral"
	NotDeterminable Label = "not_determinable"
)

// Labels lists every canonical label.
var Labels = []Label{Joy, Sadness, Anger, Fear, Disgust, Neutral, NotDeterminable}

// textAliases maps the text-analysis vocabulary to canonical labels.
var textAliases = map[string]Label{
	"joy":     Joy,
	"sadness": Sadness,
	"anger":   Anger,
	"fear":    Fear,
	"disgust": Disgust,
}

// speechAliases maps the voice-analysis vocabulary to canonical labels.
var speechAliases = map[string]Label{
	"neutral":    Neutral,
	"neutrality": Neutral,
	"happy":      Joy,
	"happiness":  Joy,
	"sad":        Sadness,
	"sadness":    Sadness,
	"angry":      Anger,
	"anger":      Anger,
	"fear":       Fear,
	"disgust":    Disgust,
}

// ParseTextLabel translates a text-channel label into the canonical set.
// Unknown labels map to NotDeterminable.
func ParseTextLabel(s string) Label {
	if l, ok := textAliases[strings.ToLower(s)]; ok {
		return l
	}
	return NotDeterminable
}

// ParseSpeechLabel translates a voice-channel label into the canonical set.
// Unknown labels map to NotDeterminable.
func ParseSpeechLabel(s string) Label {
	if l, ok := speechAliases[strings.ToLower(s)]; ok {
		return l
	}
	return NotDeterminable
}
