// Package lyrics provides a ChartLyrics API client for looking up song
// lyrics, used to enrich mood analysis with lyric text.
package lyrics

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	baseURL   = "http://api.chartlyrics.com/apiv1.asmx"
	userAgent = "go-mood-player/1.0"
)

// Match is one lyric search result.
type Match struct {
	Artist string
	Song   string
	Lyric  string
}

// Client is a ChartLyrics API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a ChartLyrics client.
func NewClient() *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// searchLyricResult is the XML response shape of SearchLyricText.
type searchLyricResult struct {
	XMLName xml.Name `xml:"ArrayOfSearchLyricResult"`
	Results []struct {
		Artist string `xml:"Artist"`
		Song   string `xml:"Song"`
	} `xml:"SearchLyricResult"`
}

// getLyricResult is the XML response shape of SearchLyricDirect.
type getLyricResult struct {
	XMLName xml.Name `xml:"GetLyricResult"`
	Artist  string   `xml:"LyricArtist"`
	Song    string   `xml:"LyricSong"`
	Lyric   string   `xml:"Lyric"`
}

// SearchByText finds songs whose lyrics contain the given words. Useful for
// turning spoken phrases into candidate songs whose full lyrics can then be
// run through sentiment analysis.
func (c *Client) SearchByText(ctx context.Context, text string) ([]Match, error) {
	params := url.Values{"lyricText": {text}}

	body, err := c.get(ctx, "/SearchLyricText", params)
	if err != nil {
		return nil, fmt.Errorf("searching lyrics: %w", err)
	}

	var decoded searchLyricResult
	if err := xml.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("parsing lyric search response: %w", err)
	}

	matches := make([]Match, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		if r.Artist == "" && r.Song == "" {
			continue
		}
		matches = append(matches, Match{Artist: r.Artist, Song: r.Song})
	}
	return matches, nil
}

// Search fetches the lyric for a specific artist and song.
func (c *Client) Search(ctx context.Context, artist, song string) (*Match, error) {
	params := url.Values{"artist": {artist}, "song": {song}}

	body, err := c.get(ctx, "/SearchLyricDirect", params)
	if err != nil {
		return nil, fmt.Errorf("fetching lyric: %w", err)
	}

	var decoded getLyricResult
	if err := xml.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("parsing lyric response: %w", err)
	}

	return &Match{
		Artist: decoded.Artist,
		Song:   decoded.Song,
		Lyric:  decoded.Lyric,
	}, nil
}

// get performs a GET request against one API method.
func (c *Client) get(ctx context.Context, method string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + method + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chartlyrics %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}
