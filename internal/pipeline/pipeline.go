package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/snow-report-etl/internal/domain"
	"github.com/couchcryptid/snow-report-etl/internal/observability"
)

// Fetcher retrieves the raw daily summary for the target day.
type Fetcher interface {
	Fetch(ctx context.Context) (domain.RawReport, error)
}

// Mapper turns a raw report into history rows.
type Mapper interface {
	Map(ctx context.Context, raw domain.RawReport) ([]domain.SummaryRow, error)
}

// Appender persists history rows.
type Appender interface {
	Append(ctx context.Context, rows []domain.SummaryRow) error
}

// Pipeline runs one fetch-map-append cycle. Every failure mode is handled:
// it is logged, counted, and ends the run early without an error, because a
// missed day is recoverable operationally (the upstream API serves any past
// day) and a crash loop under an external scheduler is not.
type Pipeline struct {
	fetcher  Fetcher
	mapper   Mapper
	appender Appender
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(f Fetcher, m Mapper, a Appender, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		fetcher:  f,
		mapper:   m,
		appender: a,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run executes the single extract-map-append cycle.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.logger.Info("starting daily scrape")

	raw, err := p.fetcher.Fetch(ctx)
	if err != nil {
		p.metrics.FetchErrors.Inc()
		p.logger.Error("fetching daily summary failed", "error", err)
		return nil
	}
	day := raw.Day.Format("2006-01-02")

	rows, err := p.mapper.Map(ctx, raw)
	if err != nil {
		p.logger.Error("mapping daily summary failed", "day", day, "error", err)
		return nil
	}
	if len(rows) == 0 {
		p.logger.Warn("no data rows matched the target stations", "day", day)
		return nil
	}

	if err := p.appender.Append(ctx, rows); err != nil {
		p.metrics.AppendErrors.Inc()
		p.logger.Error("appending history rows failed", "day", day, "error", err)
		return nil
	}

	p.metrics.RowsAppended.Add(float64(len(rows)))
	p.metrics.RunDuration.Set(time.Since(start).Seconds())
	p.metrics.LastSuccess.SetToCurrentTime()
	p.logger.Info("appended history rows", "rows", len(rows), "day", day)
	return nil
}
