package domain

import "strings"

// Keyword substrings identifying the two partial Raymer stations.
const (
	raymerTempKeyword = "raymer 9,360"
	raymerWindKeyword = "raymer wind"
)

// MatchStation reports whether a station display name matches any of the
// given keywords. Matching is case-insensitive substring containment; the
// keywords themselves are stored lower-case.
func MatchStation(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// FindStation returns the first station in payload order whose display name
// matches any keyword, and whether one was found.
func FindStation(stations []StationRecord, keywords []string) (StationRecord, bool) {
	for _, s := range stations {
		if MatchStation(s.DisplayName, keywords) {
			return s, true
		}
	}
	return StationRecord{}, false
}

// MergeRaymer synthesizes the logical Raymer station from its two partial
// upstream records: temperatures from the "raymer 9,360" station, wind from
// the "raymer wind" station. The snow fields are reported by either station
// depending on the season, so each takes the temperature station's value
// and falls back to the wind station's. A missing source contributes empty
// fields only.
func MergeRaymer(stations []StationRecord) StationRecord {
	temp, _ := FindStation(stations, []string{raymerTempKeyword})
	wind, _ := FindStation(stations, []string{raymerWindKeyword})

	return StationRecord{
		DisplayName:    "Raymer",
		MaxTemp:        temp.MaxTemp,
		MinTemp:        temp.MinTemp,
		AvgWindSpeed:   wind.AvgWindSpeed,
		MaxGust:        wind.MaxGust,
		TotalWindMiles: wind.TotalWindMiles,
		NewSnow:        coalesce(temp.NewSnow, wind.NewSnow),
		SnowDepth:      coalesce(temp.SnowDepth, wind.SnowDepth),
		TotalSnowfall:  coalesce(temp.TotalSnowfall, wind.TotalSnowfall),
	}
}

func coalesce(a, b Metric) Metric {
	if !a.IsEmpty() {
		return a
	}
	return b
}
