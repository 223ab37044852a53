// Command validate sanity-checks the accumulated history CSV: it reports
// total rows, rows per target location, the covered date range, and any
// duplicated (Date, Location) pairs. Duplicates are expected when a day was
// re-run by hand; this tool exists to find them before the file feeds the
// reporting system.
//
// Usage:
//
//	go run ./cmd/validate [-csv path/to/BTAC_History.csv]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/jszwec/csvutil"

	"github.com/couchcryptid/snow-report-etl/internal/config"
	"github.com/couchcryptid/snow-report-etl/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	csvPath := flag.String("csv", cfg.CSVPath, "history CSV to validate")
	flag.Parse()

	rows, err := readHistory(*csvPath)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("history file has a header but no rows")
		return nil
	}

	printStats(rows)
	return nil
}

func readHistory(path string) ([]domain.SummaryRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var rows []domain.SummaryRow
	if err := csvutil.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode history file %s: %w", path, err)
	}
	return rows, nil
}

func printStats(rows []domain.SummaryRow) {
	perLocation := map[string]int{}
	perKey := map[string]int{}
	minDate, maxDate := rows[0].Date, rows[0].Date

	for _, r := range rows {
		perLocation[r.Location]++
		perKey[r.Date+"|"+r.Location]++
		if r.Date < minDate {
			minDate = r.Date
		}
		if r.Date > maxDate {
			maxDate = r.Date
		}
	}

	fmt.Printf("rows: %d\n", len(rows))
	fmt.Printf("dates: %s .. %s\n", minDate, maxDate)

	fmt.Println("rows per location:")
	for _, target := range domain.Targets {
		fmt.Printf("  %-8s %d\n", target.Name, perLocation[target.Name])
		delete(perLocation, target.Name)
	}
	// Anything left is a location name no current target produces.
	for name, n := range perLocation {
		fmt.Printf("  %-8s %d (unknown location)\n", name, n)
	}

	var dupes []string
	for key, n := range perKey {
		if n > 1 {
			dupes = append(dupes, fmt.Sprintf("  %s x%d", key, n))
		}
	}
	if len(dupes) == 0 {
		fmt.Println("no duplicate (date, location) pairs")
		return
	}
	sort.Strings(dupes)
	fmt.Printf("duplicate (date, location) pairs: %d\n", len(dupes))
	for _, d := range dupes {
		fmt.Println(d)
	}
}
