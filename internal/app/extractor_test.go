package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vidtools/yt-extract/internal/config"
	"github.com/vidtools/yt-extract/internal/domain"
)

type mockFetcher struct {
	videos []domain.Video
	err    error
	gotIDs []string
}

func (m *mockFetcher) Fetch(ctx context.Context, ids []string) ([]domain.Video, error) {
	m.gotIDs = ids
	return m.videos, m.err
}

func testConfig() *config.Config {
	return &config.Config{
		APIKey:       "k",
		BatchSize:    50,
		OutputFormat: "markdown",
	}
}

func newTestExtractor(t *testing.T, fetcher *mockFetcher) (*Extractor, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ext, err := NewExtractor(testConfig(), fetcher, nil)
	if err != nil {
		t.Fatalf("NewExtractor returned error: %v", err)
	}
	var out, errOut bytes.Buffer
	ext.In = strings.NewReader("")
	ext.Out = &out
	ext.ErrOut = &errOut
	return ext, &out, &errOut
}

func TestRunRendersTable(t *testing.T) {
	fetcher := &mockFetcher{videos: []domain.Video{{
		ID:          "abc",
		Title:       "A Video",
		PublishedAt: "2024-01-02T03:04:05Z",
		Duration:    "PT10S",
	}}}
	ext, out, errOut := newTestExtractor(t, fetcher)

	if err := ext.Run(context.Background(), []string{"abc"}, RunOptions{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !strings.Contains(out.String(), "A Video") {
		t.Fatalf("table missing title:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "2024-01-02") {
		t.Fatalf("table missing publication date:\n%s", out.String())
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected stderr output: %s", errOut.String())
	}
	if len(fetcher.gotIDs) != 1 || fetcher.gotIDs[0] != "abc" {
		t.Fatalf("unexpected fetched ids: %v", fetcher.gotIDs)
	}
}

func TestRunNormalizesURLs(t *testing.T) {
	fetcher := &mockFetcher{videos: []domain.Video{{ID: "abc"}}}
	ext, _, _ := newTestExtractor(t, fetcher)

	if err := ext.Run(context.Background(), []string{"https://youtu.be/abc"}, RunOptions{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(fetcher.gotIDs) != 1 || fetcher.gotIDs[0] != "abc" {
		t.Fatalf("unexpected fetched ids: %v", fetcher.gotIDs)
	}
}

func TestRunReportsMissingIDs(t *testing.T) {
	fetcher := &mockFetcher{videos: []domain.Video{{ID: "abc"}}}
	ext, _, errOut := newTestExtractor(t, fetcher)

	if err := ext.Run(context.Background(), []string{"abc", "gone1", "gone2"}, RunOptions{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	stderr := errOut.String()
	if !strings.Contains(stderr, "Not found: gone1") || !strings.Contains(stderr, "Not found: gone2") {
		t.Fatalf("missing not-found notices:\n%s", stderr)
	}
	if strings.Index(stderr, "gone1") > strings.Index(stderr, "gone2") {
		t.Fatalf("not-found notices out of order:\n%s", stderr)
	}
}

func TestRunNoVideosFound(t *testing.T) {
	fetcher := &mockFetcher{}
	ext, out, errOut := newTestExtractor(t, fetcher)

	err := ext.Run(context.Background(), []string{"gone"}, RunOptions{})
	if !errors.Is(err, ErrNoVideos) {
		t.Fatalf("expected ErrNoVideos, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected stdout output: %s", out.String())
	}
	if !strings.Contains(errOut.String(), "Not found: gone") {
		t.Fatalf("missing not-found notice:\n%s", errOut.String())
	}
}

func TestRunFetchError(t *testing.T) {
	fetcher := &mockFetcher{err: errors.New("boom")}
	ext, _, _ := newTestExtractor(t, fetcher)

	if err := ext.Run(context.Background(), []string{"abc"}, RunOptions{}); err == nil {
		t.Fatalf("expected fetch error, got nil")
	}
}

func TestRunPromptsWhenNoArgs(t *testing.T) {
	fetcher := &mockFetcher{videos: []domain.Video{{ID: "abc"}, {ID: "def"}}}
	ext, _, errOut := newTestExtractor(t, fetcher)
	ext.In = strings.NewReader("abc, def\n")

	if err := ext.Run(context.Background(), nil, RunOptions{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(errOut.String(), "Enter video ID(s)") {
		t.Fatalf("missing prompt on stderr:\n%s", errOut.String())
	}
	if len(fetcher.gotIDs) != 2 {
		t.Fatalf("unexpected fetched ids: %v", fetcher.gotIDs)
	}
}

func TestRunPromptEOF(t *testing.T) {
	fetcher := &mockFetcher{}
	ext, _, _ := newTestExtractor(t, fetcher)

	err := ext.Run(context.Background(), nil, RunOptions{})
	if !errors.Is(err, ErrNoIDs) {
		t.Fatalf("expected ErrNoIDs, got %v", err)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	fetcher := &mockFetcher{videos: []domain.Video{{ID: "abc"}}}
	ext, _, _ := newTestExtractor(t, fetcher)

	if err := ext.Run(context.Background(), []string{"abc"}, RunOptions{Format: "csv"}); err == nil {
		t.Fatalf("expected format error, got nil")
	}
}

func TestRunCustomColumns(t *testing.T) {
	fetcher := &mockFetcher{videos: []domain.Video{{ID: "abc", Title: "A Video", ViewCount: "7"}}}
	ext, out, _ := newTestExtractor(t, fetcher)

	opts := RunOptions{Columns: []string{"title", "view_count"}}
	if err := ext.Run(context.Background(), []string{"abc"}, opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(out.String(), "abc") {
		t.Fatalf("unselected column rendered:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "A Video") {
		t.Fatalf("selected column missing:\n%s", out.String())
	}
}

func TestNewExtractorValidation(t *testing.T) {
	if _, err := NewExtractor(nil, &mockFetcher{}, nil); err == nil {
		t.Fatalf("expected nil config error")
	}
	if _, err := NewExtractor(testConfig(), nil, nil); err == nil {
		t.Fatalf("expected nil fetcher error")
	}
}
