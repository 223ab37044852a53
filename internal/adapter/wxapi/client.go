// Package wxapi fetches the avalanche center's daily weather-station
// summary over its public PHP API.
package wxapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/couchcryptid/snow-report-etl/internal/config"
	"github.com/couchcryptid/snow-report-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Client implements pipeline.Fetcher against the upstream daily-summary
// endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	referer    string
	origin     string
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewClient creates an upstream API client. The clock drives both the
// target-day computation and the cache-busting timestamp, so tests can pin
// them with a fake.
func NewClient(cfg *config.Config, clock clockwork.Clock, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		referer:   cfg.Referer,
		origin:    cfg.Origin,
		clock:     clock,
		logger:    logger,
	}
}

// Fetch requests yesterday's summary and returns the raw body with the
// observation day. The run happens shortly after midnight, so "yesterday"
// is the most recent complete 24-hour observation cycle.
func (c *Client) Fetch(ctx context.Context) (domain.RawReport, error) {
	now := c.clock.Now()
	day := now.AddDate(0, 0, -1)
	dayStr := day.Format("2006-01-02")

	params := url.Values{
		"action": {"getday"},
		"day":    {dayStr},
		// Cache-buster; the upstream site sends the same with every request.
		"_": {strconv.FormatInt(now.UnixMilli(), 10)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.RawReport{}, fmt.Errorf("create request: %w", err)
	}

	// The API refuses requests that don't look like the avalanche center's
	// own site, so mimic a browser session.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", c.referer)
	req.Header.Set("Origin", c.origin)

	c.logger.Info("fetching daily summary", "day", dayStr)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RawReport{}, fmt.Errorf("fetch day %s: %w", dayStr, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.RawReport{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.RawReport{}, fmt.Errorf("upstream API error: status %d: %s", resp.StatusCode, excerpt(body))
	}

	return domain.RawReport{Body: body, Day: day}, nil
}

// excerpt truncates an error body for logging.
func excerpt(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
