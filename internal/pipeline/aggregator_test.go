package pipeline

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/pdewey/pburn/internal/model"
)

func sampleRows() []model.UsageRow {
	return []model.UsageRow{
		{Username: "user1", Quantity: 10, NetAmount: 0, Model: "gpt-4", Date: "2024-01-01"},
		{Username: "user1", Quantity: 5, NetAmount: 0, Model: "claude", Date: "2024-01-02"},
		{Username: "user2", Quantity: 20, NetAmount: 0, Model: "gpt-4", Date: "2024-01-01"},
	}
}

func TestCompute_SampleData(t *testing.T) {
	m := Compute(sampleRows(), 5)

	if m.TotalRequests != 35 {
		t.Errorf("TotalRequests = %v, want 35", m.TotalRequests)
	}
	if m.ActiveUsers != 2 {
		t.Errorf("ActiveUsers = %d, want 2", m.ActiveUsers)
	}
	if m.AdoptionRate != 40 {
		t.Errorf("AdoptionRate = %v, want 40", m.AdoptionRate)
	}
	if m.TotalSeats != 5 {
		t.Errorf("TotalSeats = %d, want 5", m.TotalSeats)
	}
	if m.UnusedSeats != 3 {
		t.Errorf("UnusedSeats = %d, want 3", m.UnusedSeats)
	}
	want := 35.0 / (5 * 300) * 100
	if m.QuotaUsagePercent != want {
		t.Errorf("QuotaUsagePercent = %v, want %v", m.QuotaUsagePercent, want)
	}
	if m.AvgRequestsPerUser != 7 {
		t.Errorf("AvgRequestsPerUser = %v, want 7", m.AvgRequestsPerUser)
	}
	if m.AvgRequestsPerActiveUser != 17.5 {
		t.Errorf("AvgRequestsPerActiveUser = %v, want 17.5", m.AvgRequestsPerActiveUser)
	}
}

func TestCompute_GroupStats(t *testing.T) {
	m := Compute(sampleRows(), 5)

	u1 := m.UserStats["user1"]
	if u1 == nil {
		t.Fatal("missing user1 in UserStats")
	}
	if u1.Requests != 15 {
		t.Errorf("user1 requests = %v, want 15", u1.Requests)
	}
	if len(u1.Models) != 2 {
		t.Errorf("user1 distinct models = %d, want 2", len(u1.Models))
	}

	gpt4 := m.ModelStats["gpt-4"]
	if gpt4 == nil {
		t.Fatal("missing gpt-4 in ModelStats")
	}
	if gpt4.Requests != 30 {
		t.Errorf("gpt-4 requests = %v, want 30", gpt4.Requests)
	}

	d1 := m.DailyStats["2024-01-01"]
	if d1 == nil {
		t.Fatal("missing 2024-01-01 in DailyStats")
	}
	if d1.Requests != 30 {
		t.Errorf("2024-01-01 requests = %v, want 30", d1.Requests)
	}

	if got := []string{"gpt-4", "claude"}; !reflect.DeepEqual(m.ModelOrder, got) {
		t.Errorf("ModelOrder = %v, want %v", m.ModelOrder, got)
	}
}

func TestCompute_EmptyRows(t *testing.T) {
	m := Compute(nil, 8)

	if m.TotalRequests != 0 || m.TotalCost != 0 {
		t.Errorf("totals = %v/%v, want 0/0", m.TotalRequests, m.TotalCost)
	}
	if m.ActiveUsers != 0 {
		t.Errorf("ActiveUsers = %d, want 0", m.ActiveUsers)
	}
	if m.AdoptionRate != 0 {
		t.Errorf("AdoptionRate = %v, want 0", m.AdoptionRate)
	}
	if m.UnusedSeats != 8 {
		t.Errorf("UnusedSeats = %d, want 8", m.UnusedSeats)
	}
	// Per-active-user averages must be 0, never NaN.
	if m.AvgRequestsPerActiveUser != 0 {
		t.Errorf("AvgRequestsPerActiveUser = %v, want 0", m.AvgRequestsPerActiveUser)
	}
	if m.AvgCostPerActiveUser != 0 {
		t.Errorf("AvgCostPerActiveUser = %v, want 0", m.AvgCostPerActiveUser)
	}
}

func TestCompute_CaseSensitiveUsernames(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "Alice", Quantity: 1, Model: "gpt-4", Date: "2024-01-01"},
		{Username: "alice", Quantity: 1, Model: "gpt-4", Date: "2024-01-01"},
	}
	m := Compute(rows, 2)
	if m.ActiveUsers != 2 {
		t.Errorf("ActiveUsers = %d, want 2 (case-sensitive keys)", m.ActiveUsers)
	}
}

func TestCompute_AgentCounters(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "u1", Quantity: 3, Model: CodeReviewModel, Date: "2024-01-01"},
		{Username: "u1", Quantity: 2, Model: CodingAgentModel, Date: "2024-01-01"},
		{Username: "u1", Quantity: 10, Model: "gpt-4", Date: "2024-01-01"},
	}
	m := Compute(rows, 3)
	if m.CodeReviewRequests != 3 {
		t.Errorf("CodeReviewRequests = %v, want 3", m.CodeReviewRequests)
	}
	if m.CodingAgentRequests != 2 {
		t.Errorf("CodingAgentRequests = %v, want 2", m.CodingAgentRequests)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	rows := sampleRows()
	a := Compute(rows, 5)
	b := Compute(rows, 5)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated Compute with identical inputs differs")
	}
}

func TestCompute_ActiveUsersMatchesUniqueUsers(t *testing.T) {
	rows := sampleRows()
	m := Compute(rows, 10)
	if m.ActiveUsers != UniqueUsers(rows) {
		t.Errorf("ActiveUsers = %d, UniqueUsers = %d", m.ActiveUsers, UniqueUsers(rows))
	}
	if m.UnusedSeats != m.TotalSeats-m.ActiveUsers {
		t.Errorf("UnusedSeats = %d, want %d", m.UnusedSeats, m.TotalSeats-m.ActiveUsers)
	}
}

func TestValidateSeats(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "u1", Quantity: 1, Model: "gpt-4", Date: "2024-01-01"},
		{Username: "u2", Quantity: 1, Model: "gpt-4", Date: "2024-01-01"},
	}

	err := ValidateSeats(rows, 1)
	var seatErr *SeatError
	if !errors.As(err, &seatErr) {
		t.Fatalf("ValidateSeats(rows, 1) = %v, want *SeatError", err)
	}
	if seatErr.Seats != 1 || seatErr.UniqueUsers != 2 {
		t.Errorf("SeatError = %+v, want Seats=1 UniqueUsers=2", seatErr)
	}
	for _, operand := range []string{"(1)", "(2)"} {
		if msg := err.Error(); !strings.Contains(msg, operand) {
			t.Errorf("error %q does not name operand %s", msg, operand)
		}
	}

	if err := ValidateSeats(rows, 2); err != nil {
		t.Errorf("ValidateSeats(rows, 2) = %v, want nil", err)
	}

	var countErr *SeatCountError
	if err := ValidateSeats(nil, 0); !errors.As(err, &countErr) {
		t.Errorf("ValidateSeats(nil, 0) = %v, want *SeatCountError", err)
	}

	// Capacity-only runs supply no rows; any positive count passes.
	if err := ValidateSeats(nil, 1); err != nil {
		t.Errorf("ValidateSeats(nil, 1) = %v, want nil", err)
	}
}

func TestComputeCapacity(t *testing.T) {
	c := ComputeCapacity(Compute(nil, 4), 75)
	if c.TotalMinutes != 18000 {
		t.Errorf("TotalMinutes = %v, want 18000", c.TotalMinutes)
	}
	if c.TotalHours != 300 {
		t.Errorf("TotalHours = %v, want 300", c.TotalHours)
	}
	if c.TotalValue != 22500 {
		t.Errorf("TotalValue = %v, want 22500", c.TotalValue)
	}

	c = ComputeCapacity(Compute(nil, 3), 100)
	if c.TotalHours != 225 {
		t.Errorf("TotalHours = %v, want 225", c.TotalHours)
	}
	if c.TotalValue != 22500 {
		t.Errorf("TotalValue = %v, want 22500", c.TotalValue)
	}
}

func TestComputeCapacity_UsedLostSplit(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "u1", Quantity: 150, Model: "gpt-4", Date: "2024-01-01"},
	}
	// 1 seat: 300 available, half consumed.
	c := ComputeCapacity(Compute(rows, 1), 100)
	if c.TotalHours != 75 {
		t.Errorf("TotalHours = %v, want 75", c.TotalHours)
	}
	if c.UsedHours != 37.5 {
		t.Errorf("UsedHours = %v, want 37.5", c.UsedHours)
	}
	if c.LostHours != 37.5 {
		t.Errorf("LostHours = %v, want 37.5", c.LostHours)
	}
	if c.UsedValue != 3750 || c.LostValue != 3750 {
		t.Errorf("Used/LostValue = %v/%v, want 3750/3750", c.UsedValue, c.LostValue)
	}
}
