// Package capture records short audio clips from the default microphone and
// frames them as WAV for the analysis services.
package capture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jfreymuth/pulse"
	pulseproto "github.com/jfreymuth/pulse/proto"
)

// DefaultClipDuration matches the original fixed-length recording window.
const DefaultClipDuration = 15 * time.Second

// Recorder captures one complete WAV clip per call.
type Recorder interface {
	Record(ctx context.Context) ([]byte, error)
}

// PulseRecorder records from the default PulseAudio source.
type PulseRecorder struct {
	duration time.Duration
}

// NewPulseRecorder creates a recorder capturing clips of the given length.
// A non-positive duration uses DefaultClipDuration.
func NewPulseRecorder(duration time.Duration) *PulseRecorder {
	if duration <= 0 {
		duration = DefaultClipDuration
	}
	return &PulseRecorder{duration: duration}
}

// pcmSink accumulates raw PCM bytes from the record stream.
type pcmSink struct {
	mu  sync.Mutex
	buf []byte
}

func (s *pcmSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	s.buf = append(s.buf, p...)
	s.mu.Unlock()
	return len(p), nil
}

func (s *pcmSink) bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Record captures one clip from the default source and returns it framed as
// WAV. The recording runs for the configured duration unless the context is
// cancelled first.
func (r *PulseRecorder) Record(ctx context.Context) ([]byte, error) {
	client, err := pulse.NewClient(
		pulse.ClientApplicationName("go-mood-player"),
		pulse.ClientApplicationIconName("audio-input-microphone"),
	)
	if err != nil {
		return nil, fmt.Errorf("connect pulse server: %w", err)
	}
	defer client.Close()

	sink := &pcmSink{}
	stream, err := client.NewRecord(
		pulse.NewWriter(sink, pulseproto.FormatInt16LE),
		pulse.RecordMono,
		pulse.RecordSampleRate(SampleRate),
		pulse.RecordMediaName("mood clip"),
	)
	if err != nil {
		return nil, fmt.Errorf("create record stream: %w", err)
	}

	stream.Start()

	select {
	case <-time.After(r.duration):
	case <-ctx.Done():
		stream.Stop()
		stream.Close()
		return nil, ctx.Err()
	}

	stream.Stop()
	stream.Close()

	pcm := sink.bytes()
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio captured from default source")
	}
	return EncodeWAV(pcm), nil
}
