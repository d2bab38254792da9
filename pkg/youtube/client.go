package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vidtools/yt-extract/internal/domain"
	"github.com/vidtools/yt-extract/pkg/httpclient"
)

const (
	// DefaultBaseURL is the videos.list endpoint of the YouTube Data API v3.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3/videos"

	// DefaultParts are the resource parts needed to fill every table column.
	DefaultParts = "snippet,contentDetails,statistics"

	// MaxBatchSize is the API's per-request id limit.
	MaxBatchSize = 50
)

// Config carries the static request parameters for a Client.
type Config struct {
	BaseURL   string
	APIKey    string
	Parts     string
	BatchSize int
}

// Client fetches video metadata from the YouTube Data API.
type Client struct {
	http httpclient.Client
	cfg  Config
	log  Logger
}

// NewClient builds a videos.list client. The API key is required; empty
// BaseURL, Parts, and BatchSize fall back to the package defaults.
func NewClient(client httpclient.Client, cfg Config, log Logger) (*Client, error) {
	if client == nil {
		return nil, fmt.Errorf("http client must not be nil")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("api key must not be empty")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Parts) == "" {
		cfg.Parts = DefaultParts
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = MaxBatchSize
	}
	if cfg.BatchSize < 0 || cfg.BatchSize > MaxBatchSize {
		return nil, fmt.Errorf("batch size %d out of range (1..%d)", cfg.BatchSize, MaxBatchSize)
	}
	return &Client{http: client, cfg: cfg, log: ensureLogger(log)}, nil
}

// Fetch retrieves metadata for the given video ids, splitting them into
// batches of at most BatchSize ids per request. Results keep the API's
// response order. Any transport, status, or decode failure aborts the whole
// fetch; there are no retries.
func (c *Client) Fetch(ctx context.Context, ids []string) ([]domain.Video, error) {
	videos := make([]domain.Video, 0, len(ids))

	for start := 0; start < len(ids); start += c.cfg.BatchSize {
		end := start + c.cfg.BatchSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		batch, err := c.fetchBatch(ctx, chunk)
		if err != nil {
			return nil, err
		}
		videos = append(videos, batch...)
	}

	return videos, nil
}

func (c *Client) fetchBatch(ctx context.Context, ids []string) ([]domain.Video, error) {
	query := map[string]string{
		"key":  c.cfg.APIKey,
		"part": c.cfg.Parts,
		"id":   strings.Join(ids, ","),
	}

	resp, err := c.http.Get(ctx, c.cfg.BaseURL, query, nil)
	if err != nil {
		return nil, fmt.Errorf("videos.list request: %w", err)
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("videos.list returned status %d body: %s", resp.StatusCode(), responseSnippet(body))
	}

	var payload listResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode videos.list response: %w", err)
	}

	c.log.DebugObj("videos.list batch fetched", "batch_meta", map[string]any{
		"requested": len(ids),
		"returned":  len(payload.Items),
	})

	videos := make([]domain.Video, 0, len(payload.Items))
	for _, it := range payload.Items {
		videos = append(videos, it.toVideo())
	}
	return videos, nil
}

// Missing returns the requested ids that are absent from the fetched videos,
// preserving request order. The API silently drops unknown and deleted ids
// from its response.
func Missing(requested []string, videos []domain.Video) []string {
	got := make(map[string]struct{}, len(videos))
	for _, v := range videos {
		got[v.ID] = struct{}{}
	}

	var missing []string
	for _, id := range requested {
		if _, ok := got[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func responseSnippet(body []byte) string {
	const maxLen = 500
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
