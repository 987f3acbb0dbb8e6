package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenPostgres connects a pgx pool to the given DSN and runs migrations.
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if err := MigratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running postgres migrations: %w", err)
	}
	return pool, nil
}

// MigratePostgres runs all schema migrations against postgres.
func MigratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range postgresMigrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migration %d: %w", i, err)
		}
	}
	return nil
}

var postgresMigrations = []string{
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
		estimated_hours DOUBLE PRECISION NOT NULL DEFAULT 1,
		difficulty      INTEGER NOT NULL DEFAULT 3,
		due_date        TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS syllabus_topics (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		course_id       TEXT NOT NULL DEFAULT '',
		title           TEXT NOT NULL,
		subject         TEXT NOT NULL DEFAULT '',
		estimated_hours DOUBLE PRECISION NOT NULL DEFAULT 1,
		difficulty      INTEGER NOT NULL DEFAULT 3,
		completion_pct  DOUBLE PRECISION NOT NULL DEFAULT 0,
		completed       BOOLEAN NOT NULL DEFAULT FALSE,
		due_date        TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL,
		updated_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_topics_user ON syllabus_topics(user_id)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		title        TEXT NOT NULL,
		start_time   TIMESTAMPTZ NOT NULL,
		end_time     TIMESTAMPTZ NOT NULL,
		work_item_id TEXT,
		created_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_user_start ON calendar_events(user_id, start_time)`,

	`CREATE TABLE IF NOT EXISTS study_metrics (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL,
		day                 DATE NOT NULL,
		productivity_rating DOUBLE PRECISION NOT NULL,
		study_time_minutes  INTEGER NOT NULL,
		created_at          TIMESTAMPTZ NOT NULL,
		updated_at          TIMESTAMPTZ NOT NULL,
		UNIQUE(user_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_applications (
		idempotency_key TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		applied_at      TIMESTAMPTZ NOT NULL,
		session_count   INTEGER NOT NULL
	)`,
}
