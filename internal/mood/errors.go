package mood

import "errors"

// Cycle error kinds. Every failure out of RunCycle wraps exactly one of
// these, so the trigger surface can classify the stage that failed.
var (
	// ErrCapture indicates a microphone or device failure.
	ErrCapture = errors.New("audio capture failed")

	// ErrTranscription indicates an upstream transcription failure or timeout.
	ErrTranscription = errors.New("transcription failed")

	// ErrAnalysis indicates a sentiment collaborator failure or malformed response.
	ErrAnalysis = errors.New("emotion analysis failed")

	// ErrPlayback indicates the streaming service rejected a playback call.
	ErrPlayback = errors.New("playback failed")
)
