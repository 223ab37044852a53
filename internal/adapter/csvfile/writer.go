// Package csvfile persists history rows to the append-only CSV log.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/snow-report-etl/internal/domain"
	"github.com/jszwec/csvutil"
)

// Writer appends summary rows to a CSV file, writing the header row only on
// first creation. It implements pipeline.Appender.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a history-file writer for the given path.
func NewWriter(path string, logger *slog.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Append writes the rows to the end of the history file, creating it (and
// its directory) with a header when absent. Failures, including the
// destination being held open exclusively by a spreadsheet, are returned
// for the caller to log; the file is never rewritten.
func (w *Writer) Append(_ context.Context, rows []domain.SummaryRow) error {
	if len(rows) == 0 {
		return nil
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history file %s (is it open in a spreadsheet?): %w", w.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat history file: %w", err)
	}

	cw := csv.NewWriter(f)
	enc := csvutil.NewEncoder(cw)
	// Header only when the file is brand new (or truncated to nothing);
	// appends to an existing file must not repeat it.
	enc.AutoHeader = info.Size() == 0

	for i := range rows {
		if err := enc.Encode(rows[i]); err != nil {
			return fmt.Errorf("encode history row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write history file %s: %w", w.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history file %s: %w", w.path, err)
	}

	w.logger.Debug("history rows written", "path", w.path, "rows", len(rows))
	return nil
}
