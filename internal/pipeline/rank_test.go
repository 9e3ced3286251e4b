package pipeline

import (
	"testing"

	"github.com/pdewey/pburn/internal/model"
)

func TestRankedUsers_OrderAndShare(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "alice", Model: "gpt-4", Date: "2024-01-01", Quantity: 10},
		{Username: "bob", Model: "gpt-4", Date: "2024-01-01", Quantity: 30},
		{Username: "carol", Model: "claude", Date: "2024-01-02", Quantity: 10},
	}
	m := Compute(rows, 5)

	users := RankedUsers(m)
	if len(users) != 3 {
		t.Fatalf("got %d users, want 3", len(users))
	}
	if users[0].Username != "bob" {
		t.Errorf("top user = %q, want bob", users[0].Username)
	}
	if users[0].Share != 60 {
		t.Errorf("top user share = %v, want 60", users[0].Share)
	}

	// alice and carol tie at 10; alice appeared first in the report
	if users[1].Username != "alice" || users[2].Username != "carol" {
		t.Errorf("tied users ordered %q, %q; want alice, carol", users[1].Username, users[2].Username)
	}
}

func TestTopUsers_Truncates(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "a", Model: "m", Date: "2024-01-01", Quantity: 3},
		{Username: "b", Model: "m", Date: "2024-01-01", Quantity: 2},
		{Username: "c", Model: "m", Date: "2024-01-01", Quantity: 1},
	}
	m := Compute(rows, 3)

	top := TopUsers(m, 2)
	if len(top) != 2 {
		t.Fatalf("got %d users, want 2", len(top))
	}
	if top[0].Username != "a" || top[1].Username != "b" {
		t.Errorf("top users = %q, %q; want a, b", top[0].Username, top[1].Username)
	}
}

func TestRankedModels_FirstAppearanceTies(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "u", Model: "claude", Date: "2024-01-01", Quantity: 5},
		{Username: "u", Model: "gpt-4", Date: "2024-01-01", Quantity: 5},
	}
	m := Compute(rows, 1)

	ranked := RankedModels(m)
	if ranked[0].Model != "claude" {
		t.Errorf("tied models ranked %q first, want claude", ranked[0].Model)
	}
}

func TestDailySeries_SortedByDate(t *testing.T) {
	rows := []model.UsageRow{
		{Username: "u", Model: "m", Date: "2024-01-15", Quantity: 1},
		{Username: "u", Model: "m", Date: "2024-01-02", Quantity: 2},
		{Username: "u", Model: "m", Date: "2024-01-09", Quantity: 3},
	}
	m := Compute(rows, 1)

	series := DailySeries(m)
	want := []string{"2024-01-02", "2024-01-09", "2024-01-15"}
	for i, p := range series {
		if p.Date != want[i] {
			t.Errorf("series[%d].Date = %q, want %q", i, p.Date, want[i])
		}
	}
}

func TestDailySeries_EmptyMetrics(t *testing.T) {
	m := Compute(nil, 1)
	if series := DailySeries(m); len(series) != 0 {
		t.Errorf("got %d points for empty metrics, want 0", len(series))
	}
}
