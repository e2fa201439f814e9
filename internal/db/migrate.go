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
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE,
		created_at INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS work_calendars (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		timezone       TEXT NOT NULL,
		week_start     INTEGER NOT NULL CHECK(week_start BETWEEN 1 AND 7),
		hours_per_day  REAL NOT NULL CHECK(hours_per_day > 0),
		work_days      TEXT NOT NULL CHECK(length(work_days) = 7),
		holiday_region TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		started_at INTEGER NOT NULL,
		ended_at   INTEGER,
		note       TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_user_start ON time_entries(user_id, started_at)`,

	// One open entry per user, enforced by the store (soft invariant in
	// the engine, hard constraint here).
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_time_entries_open ON time_entries(user_id) WHERE ended_at IS NULL`,

	`CREATE TABLE IF NOT EXISTS breaks (
		id            TEXT PRIMARY KEY,
		time_entry_id TEXT NOT NULL REFERENCES time_entries(id) ON DELETE CASCADE,
		started_at    INTEGER NOT NULL,
		ended_at      INTEGER,
		note          TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_breaks_entry ON breaks(time_entry_id)`,

	// One open break per entry.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_breaks_open ON breaks(time_entry_id) WHERE ended_at IS NULL`,

	`CREATE TABLE IF NOT EXISTS leave_entries (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		leave_type     TEXT NOT NULL,
		started_at     INTEGER NOT NULL,
		duration_days  REAL NOT NULL,
		public_holiday INTEGER NOT NULL DEFAULT 0,
		note           TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_leave_entries_user_start ON leave_entries(user_id, started_at)`,
}
