package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS work_sessions (
		date              TEXT PRIMARY KEY,
		status            TEXT NOT NULL DEFAULT 'not_started'
		                  CHECK(status IN ('not_started','running','on_break','ended')),
		start_time        TEXT,
		end_time          TEXT,
		work_seconds      INTEGER NOT NULL DEFAULT 0,
		break_seconds     INTEGER NOT NULL DEFAULT 0,
		work_norm_seconds INTEGER NOT NULL DEFAULT 27000,
		overtime_seconds  INTEGER NOT NULL DEFAULT 0,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS break_periods (
		id           TEXT PRIMARY KEY,
		session_date TEXT NOT NULL REFERENCES work_sessions(date),
		break_type   TEXT NOT NULL
		             CHECK(break_type IN ('lunch','coffee','general')),
		start_time   TEXT NOT NULL,
		end_time     TEXT,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_breaks_session ON break_periods(session_date)`,

	// At most one open break per session at any time.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_breaks_open
		ON break_periods(session_date) WHERE end_time IS NULL`,

	// Append-only ledger. Rows are never updated or deleted; a day reset
	// keeps history and revokes are recorded as compensating entries.
	`CREATE TABLE IF NOT EXISTS action_log (
		id                    INTEGER PRIMARY KEY AUTOINCREMENT,
		session_date          TEXT NOT NULL,
		seq                   INTEGER NOT NULL,
		action                TEXT NOT NULL
		                      CHECK(action IN ('start_day','stop','continue','end_day','reset_day','revoke')),
		timestamp             TEXT NOT NULL,
		prev_status           TEXT NOT NULL,
		prev_start_time       TEXT,
		prev_end_time         TEXT,
		prev_work_seconds     INTEGER NOT NULL DEFAULT 0,
		prev_break_seconds    INTEGER NOT NULL DEFAULT 0,
		prev_overtime_seconds INTEGER NOT NULL DEFAULT 0,
		break_id              TEXT,
		break_type            TEXT,
		break_start_time      TEXT,
		break_end_time        TEXT,
		revoked_seqs          TEXT NOT NULL DEFAULT '',
		created_at            TEXT NOT NULL,
		UNIQUE(session_date, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_action_log_session ON action_log(session_date, seq)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                 TEXT PRIMARY KEY DEFAULT 'default',
		work_norm_seconds  INTEGER NOT NULL DEFAULT 27000,
		default_break_type TEXT NOT NULL DEFAULT 'general'
		                   CHECK(default_break_type IN ('lunch','coffee','general'))
	)`,

	// Seed default settings
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,
}
