package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vidtools/yt-extract/internal/app"
	"github.com/vidtools/yt-extract/internal/config"
	"github.com/vidtools/yt-extract/internal/logger"
	"github.com/vidtools/yt-extract/pkg/httpclient"
	"github.com/vidtools/yt-extract/pkg/render"
	"github.com/vidtools/yt-extract/pkg/youtube"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "yt-extract: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		format      = flag.String("format", "", "table format: markdown (default) or grid")
		columns     = flag.String("columns", "", "comma-separated column ids to render")
		preset      = flag.String("preset", "", "named column preset from the presets file")
		presetsFile = flag.String("presets-file", "", "path to the column presets YAML file")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: yt-extract [flags] [VIDEO_ID ...]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Fetch YouTube video metadata and print a table.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	opts := app.RunOptions{Format: *format}
	switch {
	case *columns != "":
		opts.Columns = strings.Split(*columns, ",")
	case *preset != "":
		path := *presetsFile
		if path == "" {
			path = cfg.PresetsFile
		}
		presets, err := render.LoadPresets(path)
		if err != nil {
			return err
		}
		cols, ok := presets[strings.ToLower(strings.TrimSpace(*preset))]
		if !ok {
			return fmt.Errorf("unknown preset %q in %s", *preset, path)
		}
		opts.Columns = cols
	}

	client := httpclient.NewRestyClient(cfg.HTTPTimeout)
	yt, err := youtube.NewClient(client, youtube.Config{
		BaseURL:   cfg.APIBaseURL,
		APIKey:    cfg.APIKey,
		Parts:     cfg.APIParts,
		BatchSize: cfg.BatchSize,
	}, log)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	extractor, err := app.NewExtractor(cfg, yt, log)
	if err != nil {
		return fmt.Errorf("init extractor: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return extractor.Run(ctx, flag.Args(), opts)
}
