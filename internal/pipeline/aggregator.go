// Package pipeline derives usage metrics, capacity estimates, and insights
// from premium request usage rows.
package pipeline

import (
	"github.com/pdewey/pburn/internal/model"
)

// Domain constants. The monthly quota is fixed per seat, not derived from
// the report.
const (
	// MonthlyQuotaPerSeat is the number of premium requests each seat is
	// entitled to per month.
	MonthlyQuotaPerSeat = 300

	// MinutesPerRequest values one quota unit as minutes of AI-assisted
	// development capacity. Used for the opportunity/capacity math only.
	MinutesPerRequest = 15

	// MinutesSavedPerRequest is the assumed time saved by one consumed
	// request. Used for the ROI estimate only; not interchangeable with
	// MinutesPerRequest.
	MinutesSavedPerRequest = 5
)

// Model names that trigger the agent-feature counters.
const (
	CodeReviewModel  = "Code Review model"
	CodingAgentModel = "Coding Agent model"
)

// Compute aggregates usage rows into a metrics snapshot.
//
// totalSeats must be positive and at least the number of distinct usernames
// in rows; ValidateSeats enforces that upstream and Compute does not
// re-check it. Grouping keys are used verbatim (case-sensitive, no
// trimming). Empty rows is valid and yields an all-zero snapshot.
func Compute(rows []model.UsageRow, totalSeats int) model.Metrics {
	m := model.Metrics{
		UserStats:  make(map[string]*model.UserStats),
		ModelStats: make(map[string]*model.ModelStats),
		DailyStats: make(map[string]*model.DailyStats),
		TotalSeats: totalSeats,
	}

	for _, row := range rows {
		m.TotalRequests += row.Quantity
		m.TotalCost += row.NetAmount

		us, ok := m.UserStats[row.Username]
		if !ok {
			us = &model.UserStats{Models: make(map[string]struct{})}
			m.UserStats[row.Username] = us
			m.UserOrder = append(m.UserOrder, row.Username)
		}
		us.Requests += row.Quantity
		us.Cost += row.NetAmount
		us.Models[row.Model] = struct{}{}

		ms, ok := m.ModelStats[row.Model]
		if !ok {
			ms = &model.ModelStats{}
			m.ModelStats[row.Model] = ms
			m.ModelOrder = append(m.ModelOrder, row.Model)
		}
		ms.Requests += row.Quantity
		ms.Cost += row.NetAmount

		ds, ok := m.DailyStats[row.Date]
		if !ok {
			ds = &model.DailyStats{}
			m.DailyStats[row.Date] = ds
		}
		ds.Requests += row.Quantity
		ds.Cost += row.NetAmount

		switch row.Model {
		case CodeReviewModel:
			m.CodeReviewRequests += row.Quantity
		case CodingAgentModel:
			m.CodingAgentRequests += row.Quantity
		}
	}

	m.ActiveUsers = len(m.UserStats)
	m.UnusedSeats = totalSeats - m.ActiveUsers

	seats := float64(totalSeats)
	m.AdoptionRate = float64(m.ActiveUsers) / seats * 100
	m.AvgRequestsPerUser = m.TotalRequests / seats
	m.AvgCostPerUser = m.TotalCost / seats
	m.QuotaUsagePercent = m.TotalRequests / (seats * MonthlyQuotaPerSeat) * 100

	// Per-active-user averages are 0, not NaN, when nobody is active.
	if m.ActiveUsers > 0 {
		m.AvgRequestsPerActiveUser = m.TotalRequests / float64(m.ActiveUsers)
		m.AvgCostPerActiveUser = m.TotalCost / float64(m.ActiveUsers)
	}

	return m
}

// UniqueUsers counts distinct usernames in rows, verbatim keys.
func UniqueUsers(rows []model.UsageRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		seen[row.Username] = struct{}{}
	}
	return len(seen)
}
