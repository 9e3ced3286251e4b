package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func read(t *testing.T, csv string) ([]rowT, error) {
	t.Helper()
	rows, err := ReadReport(strings.NewReader(csv))
	out := make([]rowT, len(rows))
	for i, r := range rows {
		out[i] = rowT{r.Username, r.Model, r.Date, r.Quantity, r.NetAmount}
	}
	return out, err
}

type rowT struct {
	user, model, date string
	quantity, net     float64
}

func TestReadReport_Basic(t *testing.T) {
	rows, err := read(t, strings.Join([]string{
		"username,date,model,quantity,net_amount",
		"user1,2024-01-01,gpt-4,10,0",
		"user2,2024-01-01,claude,5.5,1.25",
	}, "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []rowT{
		{"user1", "gpt-4", "2024-01-01", 10, 0},
		{"user2", "claude", "2024-01-01", 5.5, 1.25},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestReadReport_HeaderDrivenColumns(t *testing.T) {
	// Shuffled column order and mixed-case headers resolve the same.
	rows, err := read(t, strings.Join([]string{
		"Net_Amount, Model ,username,QUANTITY,date",
		"2.5,gpt-4,user1,7,2024-02-03",
	}, "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0].user != "user1" || rows[0].quantity != 7 || rows[0].net != 2.5 {
		t.Errorf("row = %+v, columns not resolved by header", rows[0])
	}
}

func TestReadReport_BlankLinesAndMissingNumerics(t *testing.T) {
	rows, err := read(t, strings.Join([]string{
		"username,date,model,quantity,net_amount",
		"user1,2024-01-01,gpt-4,,",
		"",
		"user2,2024-01-01,gpt-4,3,",
	}, "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank line skipped)", len(rows))
	}
	if rows[0].quantity != 0 || rows[0].net != 0 {
		t.Errorf("absent numerics = %v/%v, want 0/0", rows[0].quantity, rows[0].net)
	}
}

func TestReadReport_RejectsBadNumerics(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"non-numeric quantity", "user1,2024-01-01,gpt-4,abc,0"},
		{"negative quantity", "user1,2024-01-01,gpt-4,-5,0"},
		{"NaN quantity", "user1,2024-01-01,gpt-4,NaN,0"},
		{"infinite net_amount", "user1,2024-01-01,gpt-4,1,+Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := read(t, "username,date,model,quantity,net_amount\n"+tt.row)
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				t.Fatalf("err = %v, want *RowError", err)
			}
			if rowErr.Line != 2 {
				t.Errorf("RowError.Line = %d, want 2", rowErr.Line)
			}
		})
	}
}

func TestReadReport_MissingColumn(t *testing.T) {
	_, err := read(t, "username,date,model,quantity\nuser1,2024-01-01,gpt-4,1")
	var hdrErr *HeaderError
	if !errors.As(err, &hdrErr) {
		t.Fatalf("err = %v, want *HeaderError", err)
	}
	if hdrErr.Column != "net_amount" {
		t.Errorf("missing column = %q, want net_amount", hdrErr.Column)
	}
}

func TestReadReport_Empty(t *testing.T) {
	_, err := read(t, "")
	if !errors.Is(err, ErrEmptyReport) {
		t.Errorf("err = %v, want ErrEmptyReport", err)
	}
}

func TestReadReport_HeaderOnly(t *testing.T) {
	rows, err := read(t, "username,date,model,quantity,net_amount\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.csv")
	content := "username,date,model,quantity,net_amount\nuser1,2024-01-01,gpt-4,10,0\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Username != "user1" {
		t.Errorf("rows = %+v, want one row for user1", rows)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
