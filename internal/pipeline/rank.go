package pipeline

import (
	"sort"

	"github.com/pdewey/pburn/internal/model"
)

// UserRank is one row of the per-user breakdown, ordered for display.
type UserRank struct {
	Username string
	Requests float64
	Cost     float64
	Models   int     // distinct models used
	Share    float64 // percent of total requests, 0 when there are none
}

// ModelRank is one row of the per-model breakdown, ordered for display.
type ModelRank struct {
	Model    string
	Requests float64
	Cost     float64
	Share    float64
}

// DailyPoint is one day of the usage time series.
type DailyPoint struct {
	Date     string
	Requests float64
	Cost     float64
}

// RankedUsers returns users sorted by request count descending. Ties keep
// first-appearance order from the report.
func RankedUsers(m model.Metrics) []UserRank {
	ranks := make([]UserRank, 0, len(m.UserOrder))
	for _, name := range m.UserOrder {
		us := m.UserStats[name]
		r := UserRank{
			Username: name,
			Requests: us.Requests,
			Cost:     us.Cost,
			Models:   len(us.Models),
		}
		if m.TotalRequests > 0 {
			r.Share = us.Requests / m.TotalRequests * 100
		}
		ranks = append(ranks, r)
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Requests > ranks[j].Requests
	})
	return ranks
}

// TopUsers returns at most n of the highest-request users.
func TopUsers(m model.Metrics, n int) []UserRank {
	ranks := RankedUsers(m)
	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// RankedModels returns models sorted by request count descending, ties by
// first-appearance order.
func RankedModels(m model.Metrics) []ModelRank {
	ranks := make([]ModelRank, 0, len(m.ModelOrder))
	for _, name := range m.ModelOrder {
		ms := m.ModelStats[name]
		r := ModelRank{
			Model:    name,
			Requests: ms.Requests,
			Cost:     ms.Cost,
		}
		if m.TotalRequests > 0 {
			r.Share = ms.Requests / m.TotalRequests * 100
		}
		ranks = append(ranks, r)
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Requests > ranks[j].Requests
	})
	return ranks
}

// TopModel returns the model with the highest request count. Only a strictly
// greater count displaces the leader, so ties go to the model that appeared
// first in the report.
func TopModel(m model.Metrics) (string, bool) {
	if len(m.ModelOrder) == 0 {
		return "", false
	}
	top := m.ModelOrder[0]
	for _, name := range m.ModelOrder[1:] {
		if m.ModelStats[name].Requests > m.ModelStats[top].Requests {
			top = name
		}
	}
	return top, true
}

// DailySeries returns the per-day buckets sorted by date. ISO date keys sort
// lexically into chronological order.
func DailySeries(m model.Metrics) []DailyPoint {
	dates := make([]string, 0, len(m.DailyStats))
	for date := range m.DailyStats {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]DailyPoint, 0, len(dates))
	for _, date := range dates {
		ds := m.DailyStats[date]
		series = append(series, DailyPoint{Date: date, Requests: ds.Requests, Cost: ds.Cost})
	}
	return series
}
