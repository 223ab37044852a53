package domain

import (
	"log/slog"
	"time"
)

// SummaryRow is one history-file record: one target location on one day.
// The csv tags define the persisted column set and order; missing source
// fields are empty strings, never omitted columns.
type SummaryRow struct {
	ProphixDate   string `csv:"ProphixDate"`
	Date          string `csv:"Date"`
	Location      string `csv:"Location"`
	NewSnow       string `csv:"NewSno"`
	SnowDepth     string `csv:"SnoDepth"`
	SnowfallTotal string `csv:"SnoFall Tot"`
	MaxTemp       string `csv:"Max Temp"`
	MinTemp       string `csv:"Min Temp"`
	AvgWind       string `csv:"AvgWind"`
	MaxGust       string `csv:"MaxGust"`
	TotalWind     string `csv:"TotalWind"`
}

// TargetLocation is one of the six canonical zones extracted each day.
type TargetLocation struct {
	Name     string
	Keywords []string
	Merged   bool // synthesized from two partial stations instead of matched
}

// Targets lists the canonical zones in output order. Keywords are matched
// lower-case against station display names; first payload match wins.
var Targets = []TargetLocation{
	{Name: "Summit", Keywords: []string{"summit"}},
	{Name: "RV_Bowl", Keywords: []string{"rbowl", "rendezvous bowl"}},
	{Name: "Raymer", Merged: true},
	{Name: "MidMtn", Keywords: []string{"mid mtn", "mid mountain"}},
	{Name: "Buff", Keywords: []string{"buff"}},
	{Name: "Base", Keywords: []string{"base"}},
}

// BuildRows maps a day's station records onto the target locations,
// producing one row per matched target in Targets order. Raymer always uses
// the synthesized merge record; a target with no matching station is
// skipped with a warning. The function is deterministic: identical inputs
// produce identical row sets.
func BuildRows(report DailyReport, day time.Time, logger *slog.Logger) []SummaryRow {
	prophix := ProphixDate(day)
	date := day.Format("2006-01-02")
	raymer := MergeRaymer(report.Stations)

	rows := make([]SummaryRow, 0, len(Targets))
	for _, target := range Targets {
		var station StationRecord
		if target.Merged {
			station = raymer
		} else {
			found, ok := FindStation(report.Stations, target.Keywords)
			if !ok {
				logger.Warn("no station matched target location",
					"location", target.Name, "day", date)
				continue
			}
			station = found
		}

		rows = append(rows, SummaryRow{
			ProphixDate:   prophix,
			Date:          date,
			Location:      target.Name,
			NewSnow:       station.NewSnow.String(),
			SnowDepth:     station.SnowDepth.String(),
			SnowfallTotal: station.TotalSnowfall.String(),
			MaxTemp:       station.MaxTemp.String(),
			MinTemp:       station.MinTemp.String(),
			AvgWind:       station.AvgWindSpeed.String(),
			MaxGust:       station.MaxGust.String(),
			TotalWind:     station.TotalWindMiles.String(),
		})
	}
	return rows
}
