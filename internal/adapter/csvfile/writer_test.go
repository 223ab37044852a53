package csvfile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchcryptid/snow-report-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHeader = "ProphixDate,Date,Location,NewSno,SnoDepth,SnoFall Tot,Max Temp,Min Temp,AvgWind,MaxGust,TotalWind"

func sampleRows() []domain.SummaryRow {
	return []domain.SummaryRow{
		{
			ProphixDate: "2025D220", Date: "2025-12-06", Location: "Summit",
			NewSnow: "5", SnowDepth: "61", SnowfallTotal: "190",
			MaxTemp: "12", MinTemp: "-2", AvgWind: "18", MaxGust: "44", TotalWind: "401",
		},
		{
			ProphixDate: "2025D220", Date: "2025-12-06", Location: "Raymer",
			MaxTemp: "17", AvgWind: "11",
		},
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestWriter_Append_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	w := NewWriter(path, slog.Default())

	require.NoError(t, w.Append(context.Background(), sampleRows()))

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t, wantHeader, lines[0])
	assert.Equal(t, "2025D220,2025-12-06,Summit,5,61,190,12,-2,18,44,401", lines[1])
	// Missing fields persist as empty cells, never dropped columns.
	assert.Equal(t, "2025D220,2025-12-06,Raymer,,,,17,,11,,", lines[2])
}

func TestWriter_Append_SecondRunAppendsWithoutHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	w := NewWriter(path, slog.Default())

	require.NoError(t, w.Append(context.Background(), sampleRows()))
	require.NoError(t, w.Append(context.Background(), sampleRows()))

	lines := readLines(t, path)
	require.Len(t, lines, 5)
	assert.Equal(t, wantHeader, lines[0])
	for _, line := range lines[1:] {
		assert.NotEqual(t, wantHeader, line)
	}
}

func TestWriter_Append_CreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "history.csv")
	w := NewWriter(path, slog.Default())

	require.NoError(t, w.Append(context.Background(), sampleRows()))

	lines := readLines(t, path)
	assert.Equal(t, wantHeader, lines[0])
}

func TestWriter_Append_NoRowsIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	w := NewWriter(path, slog.Default())

	require.NoError(t, w.Append(context.Background(), nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_Append_UnwritableDestinationReturnsError(t *testing.T) {
	dir := t.TempDir()
	// A directory at the destination path stands in for an exclusively
	// locked file: opening for append fails either way.
	path := filepath.Join(dir, "history.csv")
	require.NoError(t, os.Mkdir(path, 0o755))

	w := NewWriter(path, slog.Default())
	err := w.Append(context.Background(), sampleRows())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open history file")
}

func TestWriter_Append_ExistingEmptyFileGetsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w := NewWriter(path, slog.Default())
	require.NoError(t, w.Append(context.Background(), sampleRows()))

	lines := readLines(t, path)
	assert.Equal(t, wantHeader, lines[0])
}
