package model

// UserStats holds per-user accumulations.
type UserStats struct {
	Requests float64
	Cost     float64
	Models   map[string]struct{} // distinct models this user touched
}

// ModelStats holds per-model accumulations.
type ModelStats struct {
	Requests float64
	Cost     float64
}

// DailyStats holds per-calendar-day accumulations.
type DailyStats struct {
	Requests float64
	Cost     float64
}

// Metrics is the snapshot derived from one usage report plus a seat count.
// It is computed fresh on every analysis run and never mutated afterwards.
type Metrics struct {
	TotalRequests float64
	TotalCost     float64

	UserStats  map[string]*UserStats
	ModelStats map[string]*ModelStats
	ModelOrder []string // models in first-appearance order, for deterministic ranking ties
	UserOrder  []string // users in first-appearance order
	DailyStats map[string]*DailyStats

	ActiveUsers  int
	TotalSeats   int
	UnusedSeats  int
	AdoptionRate float64 // percent of seats with at least one row

	AvgRequestsPerUser       float64 // across all licensed seats
	AvgCostPerUser           float64
	AvgRequestsPerActiveUser float64 // across active users only, 0 when none
	AvgCostPerActiveUser     float64

	QuotaUsagePercent float64 // of TotalSeats * 300 monthly premium requests

	CodeReviewRequests  float64
	CodingAgentRequests float64
}

// Insight is one narrative finding. Order within a generated sequence is
// significant and drives display order.
type Insight struct {
	Title string
	Text  string
}

// Capacity holds the productivity opportunity breakdown: what the purchased
// quota is worth in development hours and dollars, and how much of it the
// team actually consumed.
type Capacity struct {
	TotalMinutes float64
	TotalHours   float64
	UsedHours    float64
	LostHours    float64
	TotalValue   float64
	UsedValue    float64
	LostValue    float64
}
