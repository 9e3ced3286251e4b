package store

import (
	"path/filepath"
	"testing"

	"github.com/pdewey/pburn/internal/model"
	"github.com/pdewey/pburn/internal/pipeline"
)

func openTemp(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestSaveAndListRuns(t *testing.T) {
	h := openTemp(t)

	rows := []model.UsageRow{
		{Username: "user1", Quantity: 10, Model: "gpt-4", Date: "2024-01-01"},
		{Username: "user2", Quantity: 20, Model: "claude", Date: "2024-01-02"},
	}
	m := pipeline.Compute(rows, 5)

	if err := h.SaveRun(m, 100, "report.csv", false); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := h.SaveRun(pipeline.Compute(nil, 3), 75, "", true); err != nil {
		t.Fatalf("SaveRun capacity: %v", err)
	}

	runs, err := h.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	// Newest first
	if !runs[0].CapacityOnly {
		t.Error("runs[0].CapacityOnly = false, want true (newest first)")
	}
	if runs[1].ReportPath != "report.csv" {
		t.Errorf("ReportPath = %q, want report.csv", runs[1].ReportPath)
	}
	if runs[1].TotalRequests != 30 {
		t.Errorf("TotalRequests = %v, want 30", runs[1].TotalRequests)
	}
	if runs[1].ActiveUsers != 2 {
		t.Errorf("ActiveUsers = %d, want 2", runs[1].ActiveUsers)
	}
	if runs[1].AdoptionRate != 40 {
		t.Errorf("AdoptionRate = %v, want 40", runs[1].AdoptionRate)
	}
	if runs[0].AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt not recorded")
	}
}

func TestListRuns_Limit(t *testing.T) {
	h := openTemp(t)
	m := pipeline.Compute(nil, 2)
	for i := 0; i < 5; i++ {
		if err := h.SaveRun(m, 100, "", true); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := h.ListRuns(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
}
