package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const pushJobName = "snow_report_etl"

// Metrics holds the Prometheus instruments for one scrape run. The process
// is a short-lived batch job, so metrics live on a private registry and are
// pushed to a Pushgateway at end of run instead of being scraped.
type Metrics struct {
	registry *prometheus.Registry

	FetchErrors      prometheus.Counter
	AppendErrors     prometheus.Counter
	RowsAppended     prometheus.Counter
	LocationsMissing prometheus.Counter
	StationsScanned  prometheus.Gauge
	RunDuration      prometheus.Gauge
	LastSuccess      prometheus.Gauge
}

// NewMetrics creates and registers all run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	m.registry.MustRegister(
		m.FetchErrors,
		m.AppendErrors,
		m.RowsAppended,
		m.LocationsMissing,
		m.StationsScanned,
		m.RunDuration,
		m.LastSuccess,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can construct as many instances as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		registry: prometheus.NewRegistry(),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snow_etl",
			Name:      "fetch_errors_total",
			Help:      "Failed upstream fetches (transport, status, or empty body).",
		}),
		AppendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snow_etl",
			Name:      "append_errors_total",
			Help:      "Failed history-file appends (e.g. destination locked).",
		}),
		RowsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snow_etl",
			Name:      "rows_appended_total",
			Help:      "Rows appended to the history file this run.",
		}),
		LocationsMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snow_etl",
			Name:      "locations_missing_total",
			Help:      "Target locations with no matching station this run.",
		}),
		StationsScanned: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "snow_etl",
			Name:      "stations_scanned",
			Help:      "Station records in the fetched payload.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "snow_etl",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of the last run.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "snow_etl",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last run that appended rows.",
		}),
	}
}

// Push sends the run's metrics to the configured Pushgateway. A failed push
// is reported to the caller but is never fatal to the run.
func (m *Metrics) Push(addr string) error {
	if addr == "" {
		return nil
	}
	if err := push.New(addr, pushJobName).Gatherer(m.registry).Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", addr, err)
	}
	return nil
}
