package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MaxBatchSize is the most video ids the videos.list endpoint accepts per request.
const MaxBatchSize = 50

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIKey     string `mapstructure:"youtube_data_api_key"`
	APIBaseURL string `mapstructure:"api_base_url"`
	APIParts   string `mapstructure:"api_parts"`
	BatchSize  int    `mapstructure:"batch_size"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	OutputFormat string `mapstructure:"output_format"`
	PresetsFile  string `mapstructure:"presets_file"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "yt-extract")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("youtube_data_api_key", "")
	v.SetDefault("api_base_url", "https://www.googleapis.com/youtube/v3/videos")
	v.SetDefault("api_parts", "snippet,contentDetails,statistics")
	v.SetDefault("batch_size", MaxBatchSize)
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("output_format", "markdown")
	v.SetDefault("presets_file", "./configs/columns.yaml")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("youtube_data_api_key is not set (export YOUTUBE_DATA_API_KEY)")
	}

	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, fmt.Errorf("invalid api_base_url (must not be empty)")
	}
	if strings.TrimSpace(cfg.APIParts) == "" {
		return nil, fmt.Errorf("invalid api_parts (must not be empty)")
	}

	if cfg.BatchSize <= 0 || cfg.BatchSize > MaxBatchSize {
		return nil, fmt.Errorf("invalid batch_size (must be between 1 and %d)", MaxBatchSize)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}
