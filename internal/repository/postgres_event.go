package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avermeer/lectio/internal/domain"
)

// PostgresEventRepo implements EventRepo using a pgx connection pool.
type PostgresEventRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepo creates a new PostgresEventRepo.
func NewPostgresEventRepo(pool *pgxpool.Pool) *PostgresEventRepo {
	return &PostgresEventRepo{pool: pool}
}

func (r *PostgresEventRepo) Create(ctx context.Context, e *domain.CalendarBlock) error {
	query := `INSERT INTO calendar_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.UserID, e.Title, e.StartTime, e.EndTime, e.WorkItemID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

func (r *PostgresEventRepo) ListBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.CalendarBlock, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events
		WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time`
	rows, err := r.pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()
	return scanPgEvents(rows)
}

func scanPgEvents(rows pgx.Rows) ([]domain.CalendarBlock, error) {
	var events []domain.CalendarBlock
	for rows.Next() {
		var e domain.CalendarBlock
		err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.StartTime, &e.EndTime, &e.WorkItemID, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}
