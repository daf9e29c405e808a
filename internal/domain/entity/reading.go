package entity

import "time"

// Reading represents a single timestamped energy measurement for a building.
// Readings are immutable once parsed; rows with a negative kWh or an
// unparseable timestamp are dropped during ingestion and never reach here.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	Building  string    `json:"building"`
	KWh       float64   `json:"kwh"`
}

// IngestStats carrega os contadores produzidos pela ingestão.
type IngestStats struct {
	FilesRead   int `json:"files_read"`
	RowsKept    int `json:"rows_kept"`
	RowsDropped int `json:"rows_dropped"`
}
