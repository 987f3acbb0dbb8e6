package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/lectio/internal/db"
	"github.com/avermeer/lectio/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

const taskColumns = `id, user_id, title, description, subject, status, priority,
	estimated_hours, difficulty, due_date, created_at, updated_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.Subject,
		string(t.Status),
		string(t.Priority),
		t.EstimatedHours,
		t.Difficulty,
		nullableTimeToString(t.DueDate, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

// ListSchedulable returns the user's tasks whose status is neither
// completed nor cancelled, in creation order.
func (r *SQLiteTaskRepo) ListSchedulable(ctx context.Context, userID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status NOT IN ('completed', 'cancelled')
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing schedulable tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) CountOverdue(ctx context.Context, userID string, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM tasks
		WHERE user_id = ? AND status NOT IN ('completed', 'cancelled')
		  AND due_date IS NOT NULL AND due_date < ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, userID, now.UTC().Format(time.RFC3339)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting overdue tasks: %w", err)
	}
	return count, nil
}

// ListDueWithin returns open tasks due between now and now+days,
// soonest first.
func (r *SQLiteTaskRepo) ListDueWithin(ctx context.Context, userID string, now time.Time, days int) ([]domain.Task, error) {
	horizon := now.AddDate(0, 0, days)
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status NOT IN ('completed', 'cancelled')
		  AND due_date IS NOT NULL AND due_date >= ? AND due_date <= ?
		ORDER BY due_date`
	rows, err := r.db.QueryContext(ctx, query,
		userID, now.UTC().Format(time.RFC3339), horizon.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing upcoming tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var status, priority string
	var dueDate sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Subject, &status, &priority,
		&t.EstimatedHours, &t.Difficulty, &dueDate, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, status, priority, dueDate, createdAtStr, updatedAtStr)
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var status, priority string
		var dueDate sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Subject, &status, &priority,
			&t.EstimatedHours, &t.Difficulty, &dueDate, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, populateErr := r.populateTask(&t, status, priority, dueDate, createdAtStr, updatedAtStr)
		if populateErr != nil {
			return nil, populateErr
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) populateTask(t *domain.Task, status, priority string, dueDate sql.NullString, createdAtStr, updatedAtStr string) (*domain.Task, error) {
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.TaskPriority(priority)
	t.DueDate = parseNullableTime(dueDate, time.RFC3339)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return t, nil
}
