package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/snow-report-etl/internal/domain"
	"github.com/couchcryptid/snow-report-etl/internal/observability"
)

// ReportMapper implements Mapper using the domain parse and row-building
// functions.
type ReportMapper struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewMapper creates a ReportMapper.
func NewMapper(logger *slog.Logger, metrics *observability.Metrics) *ReportMapper {
	return &ReportMapper{logger: logger, metrics: metrics}
}

func (m *ReportMapper) Map(_ context.Context, raw domain.RawReport) ([]domain.SummaryRow, error) {
	report, err := domain.ParseDailyReport(raw.Body)
	if err != nil {
		return nil, err
	}

	m.metrics.StationsScanned.Set(float64(len(report.Stations)))
	m.logger.Info("scanning stations",
		"stations", len(report.Stations),
		"prophix_date", domain.ProphixDate(raw.Day),
	)

	rows := domain.BuildRows(report, raw.Day, m.logger)
	if missing := len(domain.Targets) - len(rows); missing > 0 {
		m.metrics.LocationsMissing.Add(float64(missing))
	}
	return rows, nil
}
