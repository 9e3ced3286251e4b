package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    analyzed_at          TEXT NOT NULL,
    report_path          TEXT,
    capacity_only        INTEGER NOT NULL DEFAULT 0,
    total_seats          INTEGER NOT NULL,
    hourly_rate          REAL NOT NULL,
    total_requests       REAL NOT NULL,
    total_cost           REAL NOT NULL,
    active_users         INTEGER NOT NULL,
    adoption_rate        REAL NOT NULL,
    quota_usage_percent  REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_analyzed ON runs(analyzed_at);
`
