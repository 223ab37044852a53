package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default upstream endpoint and browser-like headers. The PHP API rejects
// requests without a recognizable browser User-Agent and matching
// Referer/Origin, so these defaults mirror what the avalanche center's own
// site sends.
const (
	defaultBaseURL   = "https://view.btjhwxavyproject.com/php-api/am_wx.php"
	defaultCSVPath   = "BTAC_History.csv"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultReferer   = "https://bridgertetonavalanchecenter.org/"
	defaultOrigin    = "https://bridgertetonavalanchecenter.org"

	logFileName = "scrape_log.txt"
)

// Config holds all settings, populated from environment variables.
type Config struct {
	BaseURL     string
	CSVPath     string
	HTTPTimeout time.Duration

	UserAgent string
	Referer   string
	Origin    string

	LogLevel  string
	LogFormat string

	// PushgatewayAddr enables a one-shot metrics push at end of run when
	// non-empty.
	PushgatewayAddr string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q", timeoutStr)
	}

	cfg := &Config{
		BaseURL:         envOrDefault("WX_BASE_URL", defaultBaseURL),
		CSVPath:         envOrDefault("CSV_PATH", defaultCSVPath),
		HTTPTimeout:     timeout,
		UserAgent:       envOrDefault("USER_AGENT", defaultUserAgent),
		Referer:         envOrDefault("REFERER", defaultReferer),
		Origin:          envOrDefault("ORIGIN", defaultOrigin),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		PushgatewayAddr: os.Getenv("PUSHGATEWAY_ADDR"),
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("WX_BASE_URL is required")
	}
	if cfg.CSVPath == "" {
		return nil, errors.New("CSV_PATH is required")
	}

	return cfg, nil
}

// LogFilePath returns the plain-text log destination, which lives next to
// the history CSV.
func (c *Config) LogFilePath() string {
	return filepath.Join(filepath.Dir(c.CSVPath), logFileName)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
