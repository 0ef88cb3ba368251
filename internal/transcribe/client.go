// Package transcribe provides the speech-to-text client used to turn a
// recorded clip into transcript text.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultModel = "en-US_NarrowbandModel"
	userAgent    = "go-mood-player/1.0"
)

// ErrEmptyTranscript is returned when the service recognized no speech in
// the clip.
var ErrEmptyTranscript = errors.New("no speech recognized in audio clip")

// Client is a speech-to-text API client.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Config holds the transcription service endpoint and credentials.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string // empty means the narrowband English default
	Timeout time.Duration
}

// NewClient creates a transcription client from the provided configuration.
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// recognizeResponse is the JSON response shape of the recognize endpoint.
type recognizeResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
}

// Transcribe sends a WAV clip for recognition and returns the transcript.
// Multi-result responses are concatenated from each result's first
// alternative. Returns ErrEmptyTranscript when the service heard nothing.
func (c *Client) Transcribe(ctx context.Context, wav []byte) (string, error) {
	reqURL := fmt.Sprintf("%s/v1/recognize?model=%s", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(wav))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/wav")
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("recognize %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var decoded recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("parsing recognize response: %w", err)
	}

	transcript := concatenate(decoded)
	if transcript == "" {
		return "", ErrEmptyTranscript
	}
	return transcript, nil
}

// concatenate joins each result's best alternative into one transcript.
func concatenate(resp recognizeResponse) string {
	var b strings.Builder
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		b.WriteString(result.Alternatives[0].Transcript)
	}
	return strings.TrimSpace(b.String())
}
