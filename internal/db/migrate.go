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
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		subject         TEXT NOT NULL DEFAULT '',
		status          TEXT NOT NULL DEFAULT 'pending'
		                CHECK(status IN ('pending','in_progress','completed','cancelled')),
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('urgent','high','medium','low')),
		estimated_hours REAL NOT NULL DEFAULT 1,
		difficulty      INTEGER NOT NULL DEFAULT 3,
		due_date        TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS syllabus_topics (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		course_id       TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL,
		subject         TEXT NOT NULL DEFAULT '',
		estimated_hours REAL NOT NULL DEFAULT 1,
		difficulty      INTEGER NOT NULL DEFAULT 3,
		completion_pct  REAL NOT NULL DEFAULT 0,
		completed       INTEGER NOT NULL DEFAULT 0,
		due_date        TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_topics_user ON syllabus_topics(user_id)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		title        TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		work_item_id TEXT,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_user_start ON calendar_events(user_id, start_time)`,

	`CREATE TABLE IF NOT EXISTS study_metrics (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL,
		day                 TEXT NOT NULL,
		productivity_rating REAL NOT NULL,
		study_time_minutes  INTEGER NOT NULL,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL,
		UNIQUE(user_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_applications (
		idempotency_key TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		applied_at      TEXT NOT NULL,
		session_count   INTEGER NOT NULL
	)`,
}
