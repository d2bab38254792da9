package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vidtools/yt-extract/internal/config"
	"github.com/vidtools/yt-extract/internal/domain"
	"github.com/vidtools/yt-extract/internal/ids"
	"github.com/vidtools/yt-extract/internal/logger"
	"github.com/vidtools/yt-extract/pkg/render"
	"github.com/vidtools/yt-extract/pkg/youtube"
)

// ErrNoIDs is returned when neither the arguments nor the prompt produced any ids.
var ErrNoIDs = errors.New("no video ids provided")

// ErrNoVideos is returned when the API found none of the requested videos.
var ErrNoVideos = errors.New("no videos found")

// VideoFetcher retrieves metadata for a list of video ids.
type VideoFetcher interface {
	Fetch(ctx context.Context, ids []string) ([]domain.Video, error)
}

// RunOptions carry the per-invocation rendering choices.
type RunOptions struct {
	Format  string
	Columns []string
}

// Extractor is the tool runtime: it normalizes the requested ids, fetches
// their metadata, and renders the table.
type Extractor struct {
	cfg    *config.Config
	videos VideoFetcher
	log    logger.Logger

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// NewExtractor builds an extractor runtime.
func NewExtractor(cfg *config.Config, videos VideoFetcher, log logger.Logger) (*Extractor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if videos == nil {
		return nil, fmt.Errorf("video fetcher must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	return &Extractor{
		cfg:    cfg,
		videos: videos,
		log:    log,
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}, nil
}

// Run performs a single extraction: normalize ids (prompting when none were
// given), fetch metadata, report missing ids on stderr, and print the table.
func (e *Extractor) Run(ctx context.Context, rawIDs []string, opts RunOptions) error {
	videoIDs := ids.Normalize(rawIDs)
	if len(videoIDs) == 0 {
		prompted, err := e.promptForIDs()
		if err != nil {
			return err
		}
		videoIDs = prompted
	}
	if len(videoIDs) == 0 {
		return ErrNoIDs
	}

	format := opts.Format
	if format == "" {
		format = e.cfg.OutputFormat
	}
	if !render.ValidFormat(format) {
		return fmt.Errorf("unknown table format %q (expected one of %s)", format, strings.Join(render.Formats(), ", "))
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = render.DefaultColumns()
	}

	start := time.Now()
	e.log.InfoObj("fetch started", "fetch_meta", map[string]any{
		"ids_count":  len(videoIDs),
		"batch_size": e.cfg.BatchSize,
	})

	videos, err := e.videos.Fetch(ctx, videoIDs)
	if err != nil {
		return fmt.Errorf("fetch videos: %w", err)
	}

	e.log.InfoObj("fetch completed", "fetch_meta", map[string]any{
		"ids_count":    len(videoIDs),
		"videos_count": len(videos),
		"elapsed_ms":   time.Since(start).Milliseconds(),
	})

	for _, id := range youtube.Missing(videoIDs, videos) {
		fmt.Fprintf(e.ErrOut, "yt-extract: Not found: %s\n", id)
	}

	if len(videos) == 0 {
		return ErrNoVideos
	}

	out, err := render.Render(videos, columns, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.Out, out)
	return nil
}

// promptForIDs asks for ids interactively. The prompt goes to stderr so
// redirected stdout stays clean table output.
func (e *Extractor) promptForIDs() ([]string, error) {
	fmt.Fprint(e.ErrOut, "Enter video ID(s), comma- or space-separated: ")

	reader := bufio.NewReader(e.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, ErrNoIDs
	}
	return ids.Normalize([]string{strings.TrimSpace(line)}), nil
}
