package entity

import "time"

// BuildingSummary is one row of the building summary table: the per-building
// statistics derived from the cleaned reading set.
type BuildingSummary struct {
	Building string  `json:"building"`
	TotalKWh float64 `json:"total_kwh"`
	AvgKWh   float64 `json:"avg_kwh"`
	MinKWh   float64 `json:"min_kwh"`
	MaxKWh   float64 `json:"max_kwh"`
	Readings int     `json:"readings"`
}

// DailyTotal is the kWh consumed by one building on one calendar day.
type DailyTotal struct {
	Building string    `json:"building"`
	Day      time.Time `json:"day"`
	KWh      float64   `json:"kwh"`
}

// WeeklyTotal is the kWh consumed by one building in one ISO week
// (Monday start). Week labels use the "2024-W05" format.
type WeeklyTotal struct {
	Building string  `json:"building"`
	Week     string  `json:"week"`
	KWh      float64 `json:"kwh"`
	AvgKWh   float64 `json:"avg_kwh"`
	Readings int     `json:"readings"`
}

// CampusReport bundles everything the reporters consume: the aggregated
// views plus the executive figures printed in summary.txt.
type CampusReport struct {
	CampusTotalKWh float64           `json:"campus_total_kwh"`
	TopBuilding    string            `json:"top_building,omitempty"`
	TopBuildingKWh float64           `json:"top_building_kwh"`
	PeakReading    *Reading          `json:"peak_reading,omitempty"`
	Trend          string            `json:"trend"`
	Summaries      []BuildingSummary `json:"summaries"`
	DailyTotals    []DailyTotal      `json:"daily_totals"`
	WeeklyTotals   []WeeklyTotal     `json:"weekly_totals"`
	Stats          IngestStats       `json:"ingest_stats"`
}
