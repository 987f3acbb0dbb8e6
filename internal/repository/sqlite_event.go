package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/lectio/internal/db"
	"github.com/avermeer/lectio/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

const eventColumns = `id, user_id, title, start_time, end_time, work_item_id, created_at`

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.CalendarBlock) error {
	query := `INSERT INTO calendar_events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Title,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
		nullableStr(e.WorkItemID),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

// ListBetween returns the user's events whose start falls within
// [start, end], ordered by start time.
func (r *SQLiteEventRepo) ListBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.CalendarBlock, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events
		WHERE user_id = ? AND start_time >= ? AND start_time <= ?
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query,
		userID, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]domain.CalendarBlock, error) {
	var events []domain.CalendarBlock
	for rows.Next() {
		var e domain.CalendarBlock
		var startStr, endStr, createdAtStr string
		var workItemID sql.NullString

		err := rows.Scan(&e.ID, &e.UserID, &e.Title, &startStr, &endStr, &workItemID, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}

		e.WorkItemID = strFromNullable(workItemID)

		var parseErr error
		e.StartTime, parseErr = time.Parse(time.RFC3339, startStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing start_time: %w", parseErr)
		}
		e.EndTime, parseErr = time.Parse(time.RFC3339, endStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing end_time: %w", parseErr)
		}
		e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}

		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}
