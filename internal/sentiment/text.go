// Package sentiment provides clients for the two emotion-analysis
// collaborators: natural-language analysis of transcript text and prosody
// analysis of the raw audio.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avelazco/go-mood-player/internal/emotion"
)

const (
	textAPIVersion  = "2018-03-16"
	keywordLimit    = 2
	clientUserAgent = "go-mood-player/1.0"
)

// TextClient is a natural-language-understanding API client that extracts
// keyword emotion scores from text.
type TextClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// TextConfig holds the text-analysis service endpoint and credentials.
type TextConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewTextClient creates a text-analysis client from the provided configuration.
func NewTextClient(cfg TextConfig) *TextClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &TextClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// analyzeRequest is the JSON request shape of the analyze endpoint.
type analyzeRequest struct {
	Text     string `json:"text"`
	Features struct {
		Keywords struct {
			Emotion   bool `json:"emotion"`
			Sentiment bool `json:"sentiment"`
			Limit     int  `json:"limit"`
		} `json:"keywords"`
	} `json:"features"`
}

// analyzeResponse is the JSON response shape of the analyze endpoint.
type analyzeResponse struct {
	Keywords []emotion.Keyword `json:"keywords"`
}

// AnalyzeText submits transcript text for keyword emotion analysis and
// returns the scored keywords. An empty keyword list is a valid result; the
// scorer downstream guards it.
func (c *TextClient) AnalyzeText(ctx context.Context, text string) ([]emotion.Keyword, error) {
	var reqBody analyzeRequest
	reqBody.Text = text
	reqBody.Features.Keywords.Emotion = true
	reqBody.Features.Keywords.Sentiment = true
	reqBody.Features.Keywords.Limit = keywordLimit

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding analyze request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/analyze?version=%s", c.baseURL, textAPIVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", clientUserAgent)
	req.SetBasicAuth("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("analyze %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("parsing analyze response: %w", err)
	}

	return decoded.Keywords, nil
}
