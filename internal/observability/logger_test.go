package observability

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/couchcryptid/snow-report-etl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logLineRe = regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] `)

func newTestLogger(t *testing.T) (*slog.Logger, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		CSVPath:   filepath.Join(dir, "history.csv"),
		LogLevel:  "info",
		LogFormat: "text",
	}
	return NewLogger(cfg), cfg.LogFilePath()
}

func TestNewLogger_WritesTimestampedFileLines(t *testing.T) {
	logger, logPath := newTestLogger(t)

	logger.Info("starting daily scrape")
	logger.Warn("no station matched target location", "location", "Buff")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Regexp(t, logLineRe, lines[0])
	assert.Contains(t, lines[0], "INFO starting daily scrape")
	assert.Regexp(t, logLineRe, lines[1])
	assert.Contains(t, lines[1], "WARN no station matched target location location=Buff")
}

func TestNewLogger_AppendsAcrossLoggers(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		CSVPath:   filepath.Join(dir, "history.csv"),
		LogLevel:  "info",
		LogFormat: "text",
	}

	// Two separate runs append to the same file.
	NewLogger(cfg).Info("first run")
	NewLogger(cfg).Info("second run")

	data, err := os.ReadFile(cfg.LogFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestNewLogger_LevelFiltersFileSink(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		CSVPath:   filepath.Join(dir, "history.csv"),
		LogLevel:  "warn",
		LogFormat: "text",
	}
	logger := NewLogger(cfg)

	logger.Info("suppressed")
	logger.Warn("kept")

	data, err := os.ReadFile(cfg.LogFilePath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "kept")
}

func TestNewLogger_WithAttrsCarriedToFile(t *testing.T) {
	logger, logPath := newTestLogger(t)

	logger.With("day", "2025-12-06").Info("fetched payload", "stations", 14)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "day=2025-12-06")
	assert.Contains(t, string(data), "stations=14")
}
