package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Metric is an optional numeric field from the upstream payload. Station
// firmware is inconsistent about types: the same field arrives as a JSON
// number, a quoted string, or null depending on the sensor. Values are kept
// as their verbatim text so "-3" and -3 produce the same CSV cell; absent
// and null both render as the empty string.
type Metric string

// UnmarshalJSON accepts string, number, or null.
func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("metric string: %w", err)
		}
		*m = Metric(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("metric value %q: %w", b, err)
	}
	*m = Metric(n.String())
	return nil
}

// IsEmpty reports whether the field was absent, null, or blank upstream.
func (m Metric) IsEmpty() bool { return m == "" }

func (m Metric) String() string { return string(m) }

// StationRecord is one named weather-observation entry from the upstream
// daily summary. Every metric field is optional.
type StationRecord struct {
	DisplayName    string `json:"display_name"`
	MaxTemp        Metric `json:"maxtemp"`
	MinTemp        Metric `json:"mintemp"`
	AvgWindSpeed   Metric `json:"avewindspd"`
	MaxGust        Metric `json:"maxgust"`
	TotalWindMiles Metric `json:"ttlwindmiles"`
	NewSnow        Metric `json:"newsnow"`
	SnowDepth      Metric `json:"depth"`
	TotalSnowfall  Metric `json:"ttlsnowfall"`
}

// DailyReport is the parsed upstream payload for one observation day.
type DailyReport struct {
	Stations []StationRecord
}

// RawReport is the unparsed fetch result handed to the mapper: the response
// body as received plus the observation day it was requested for.
type RawReport struct {
	Body []byte
	Day  time.Time
}

// ParseDailyReport deserializes the upstream response body. The payload must
// be a JSON object with a "data" key holding the station array; anything
// else is a structural error. An empty station array is valid.
func ParseDailyReport(body []byte) (DailyReport, error) {
	var envelope struct {
		Data *[]StationRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return DailyReport{}, fmt.Errorf("parse daily report: %w", err)
	}
	if envelope.Data == nil {
		return DailyReport{}, fmt.Errorf(`parse daily report: payload has no "data" key`)
	}
	return DailyReport{Stations: *envelope.Data}, nil
}
