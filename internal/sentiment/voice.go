package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/avelazco/go-mood-player/internal/emotion"
)

// VoiceClient is a prosody-analysis API client. The service receives a raw
// WAV clip and reports five independent emotion probabilities plus a
// validity flag for clips without enough vocal signal.
type VoiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// VoiceConfig holds the voice-analysis service endpoint.
type VoiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// NewVoiceClient creates a voice-analysis client from the provided configuration.
func NewVoiceClient(cfg VoiceConfig) *VoiceClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &VoiceClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// AnalyzeVoice uploads a WAV clip and returns the prosody result. A clip
// the detector cannot use (silence, non-speech) comes back with Valid set
// to false rather than an error.
func (c *VoiceClient) AnalyzeVoice(ctx context.Context, wav []byte) (emotion.VoiceResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "clip.wav")
	if err != nil {
		return emotion.VoiceResult{}, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(wav); err != nil {
		return emotion.VoiceResult{}, fmt.Errorf("writing clip: %w", err)
	}
	if err := writer.Close(); err != nil {
		return emotion.VoiceResult{}, fmt.Errorf("closing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", &body)
	if err != nil {
		return emotion.VoiceResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("User-Agent", clientUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return emotion.VoiceResult{}, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return emotion.VoiceResult{}, fmt.Errorf("voice analyze %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var result emotion.VoiceResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return emotion.VoiceResult{}, fmt.Errorf("parsing voice response: %w", err)
	}

	return result, nil
}
