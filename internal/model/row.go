// Package model defines the data structures shared across the pburn pipeline.
package model

// UsageRow is one event from a premium request usage report: one user
// consuming quantity premium requests against one model on one day.
// Missing numeric fields are resolved to 0 at the ingestion boundary,
// never inside aggregation.
type UsageRow struct {
	Username  string
	Model     string
	Date      string // ISO date (YYYY-MM-DD); lexical sort == chronological sort
	Quantity  float64
	NetAmount float64
}
