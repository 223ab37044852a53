// Command scrape runs one fetch-map-append cycle: it retrieves yesterday's
// weather-station summary, maps it onto the six target locations, and
// appends the rows to the history CSV. It takes no arguments; an external
// scheduler (cron, Task Scheduler) is expected to run it once daily,
// shortly after midnight.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/snow-report-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/snow-report-etl/internal/adapter/wxapi"
	"github.com/couchcryptid/snow-report-etl/internal/config"
	"github.com/couchcryptid/snow-report-etl/internal/observability"
	"github.com/couchcryptid/snow-report-etl/internal/pipeline"
)

func main() {
	// Optional; running without a .env file uses built-in defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := wxapi.NewClient(cfg, clockwork.NewRealClock(), logger)
	mapper := pipeline.NewMapper(logger, metrics)
	appender := csvfile.NewWriter(cfg.CSVPath, logger)

	p := pipeline.New(fetcher, mapper, appender, logger, metrics)

	// Ctrl-C cancels the in-flight fetch; everything else is local and fast.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
	}

	if err := metrics.Push(cfg.PushgatewayAddr); err != nil {
		logger.Warn("metrics push failed", "error", err)
	}
}
