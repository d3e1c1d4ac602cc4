package music

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	musicmodel "github.com/capycare/capycare/backend/internal/model/music"
)

const defaultDeezerBaseURL = "https://api.deezer.com"

// DeezerClient implements Lookup against the Deezer search API.
type DeezerClient struct {
	baseURL    string
	httpClient *http.Client
	limit      int
}

// NewDeezerClient returns a client for baseURL (empty selects the
// public endpoint).
func NewDeezerClient(baseURL string, timeout time.Duration) *DeezerClient {
	if baseURL == "" {
		baseURL = defaultDeezerBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DeezerClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limit:      5,
	}
}

type deezerSearchResponse struct {
	Data []struct {
		Title   string `json:"title"`
		Preview string `json:"preview"`
		Artist  struct {
			Name string `json:"name"`
		} `json:"artist"`
	} `json:"data"`
}

// Search returns tracks with playable previews for the query.
func (c *DeezerClient) Search(ctx context.Context, query string) ([]musicmodel.Track, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), c.limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("deezer search returned status %d", resp.StatusCode)
	}

	var payload deezerSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode deezer response: %w", err)
	}

	tracks := make([]musicmodel.Track, 0, len(payload.Data))
	for _, item := range payload.Data {
		if item.Preview == "" {
			continue
		}
		tracks = append(tracks, musicmodel.Track{
			Title:      item.Title,
			Artist:     item.Artist.Name,
			PreviewURL: item.Preview,
		})
	}
	return tracks, nil
}
