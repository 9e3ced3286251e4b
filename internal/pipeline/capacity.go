package pipeline

import (
	"github.com/pdewey/pburn/internal/model"
)

// ComputeCapacity values the purchased quota in development hours and
// dollars: total opportunity, the share actually consumed, and the share
// left on the table. Each quota unit counts as MinutesPerRequest of
// AI-assisted capacity.
func ComputeCapacity(m model.Metrics, hourlyRate float64) model.Capacity {
	totalMinutes := float64(m.TotalSeats) * MonthlyQuotaPerSeat * MinutesPerRequest
	totalHours := totalMinutes / 60
	available := float64(m.TotalSeats) * MonthlyQuotaPerSeat

	c := model.Capacity{
		TotalMinutes: totalMinutes,
		TotalHours:   totalHours,
		TotalValue:   totalHours * hourlyRate,
	}

	if available > 0 {
		c.UsedHours = m.TotalRequests / available * totalHours
		c.LostHours = (available - m.TotalRequests) / available * totalHours
		c.UsedValue = c.UsedHours * hourlyRate
		c.LostValue = c.LostHours * hourlyRate
	}

	return c
}
