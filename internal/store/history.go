// Package store provides a SQLite-backed history of analysis runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdewey/pburn/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History provides SQLite-backed storage of past analysis runs.
type History struct {
	db *sql.DB
}

// Run is one recorded analysis.
type Run struct {
	ID                int64
	AnalyzedAt        time.Time
	ReportPath        string
	CapacityOnly      bool
	TotalSeats        int
	HourlyRate        float64
	TotalRequests     float64
	TotalCost         float64
	ActiveUsers       int
	AdoptionRate      float64
	QuotaUsagePercent float64
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun records one analysis run.
func (h *History) SaveRun(m model.Metrics, hourlyRate float64, reportPath string, capacityOnly bool) error {
	capOnly := 0
	if capacityOnly {
		capOnly = 1
	}

	_, err := h.db.Exec(`INSERT INTO runs
		(analyzed_at, report_path, capacity_only, total_seats, hourly_rate,
		 total_requests, total_cost, active_users, adoption_rate, quota_usage_percent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), reportPath, capOnly,
		m.TotalSeats, hourlyRate,
		m.TotalRequests, m.TotalCost, m.ActiveUsers, m.AdoptionRate, m.QuotaUsagePercent,
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first, at most limit rows.
func (h *History) ListRuns(limit int) ([]Run, error) {
	rows, err := h.db.Query(`SELECT
		id, analyzed_at, report_path, capacity_only, total_seats, hourly_rate,
		total_requests, total_cost, active_users, adoption_rate, quota_usage_percent
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var analyzedAt string
		var reportPath sql.NullString
		var capOnly int

		err := rows.Scan(
			&r.ID, &analyzedAt, &reportPath, &capOnly, &r.TotalSeats, &r.HourlyRate,
			&r.TotalRequests, &r.TotalCost, &r.ActiveUsers, &r.AdoptionRate, &r.QuotaUsagePercent,
		)
		if err != nil {
			return nil, err
		}

		if t, perr := time.Parse(time.RFC3339, analyzedAt); perr == nil {
			r.AnalyzedAt = t
		}
		if reportPath.Valid {
			r.ReportPath = reportPath.String
		}
		r.CapacityOnly = capOnly != 0

		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DefaultPath returns the history database location under the user cache dir.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "pburn", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "pburn", "history.db")
}
