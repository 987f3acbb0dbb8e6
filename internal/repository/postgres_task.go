package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avermeer/lectio/internal/domain"
)

// PostgresTaskRepo implements TaskRepo using a pgx connection pool.
type PostgresTaskRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepo creates a new PostgresTaskRepo.
func NewPostgresTaskRepo(pool *pgxpool.Pool) *PostgresTaskRepo {
	return &PostgresTaskRepo{pool: pool}
}

func (r *PostgresTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		t.ID,
		t.UserID,
		t.Title,
		t.Description,
		t.Subject,
		string(t.Status),
		string(t.Priority),
		t.EstimatedHours,
		t.Difficulty,
		t.DueDate,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *PostgresTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("loading task: %w", err)
	}
	defer rows.Close()

	tasks, err := scanPgTasks(rows)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("task: %w", ErrNotFound)
	}
	return &tasks[0], nil
}

func (r *PostgresTaskRepo) ListSchedulable(ctx context.Context, userID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1 AND status NOT IN ('completed', 'cancelled')
		ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing schedulable tasks: %w", err)
	}
	defer rows.Close()
	return scanPgTasks(rows)
}

func (r *PostgresTaskRepo) CountOverdue(ctx context.Context, userID string, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM tasks
		WHERE user_id = $1 AND status NOT IN ('completed', 'cancelled')
		  AND due_date IS NOT NULL AND due_date < $2`
	var count int
	if err := r.pool.QueryRow(ctx, query, userID, now).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting overdue tasks: %w", err)
	}
	return count, nil
}

func (r *PostgresTaskRepo) ListDueWithin(ctx context.Context, userID string, now time.Time, days int) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = $1 AND status NOT IN ('completed', 'cancelled')
		  AND due_date IS NOT NULL AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date`
	rows, err := r.pool.Query(ctx, query, userID, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("listing upcoming tasks: %w", err)
	}
	defer rows.Close()
	return scanPgTasks(rows)
}

func scanPgTasks(rows pgx.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var status, priority string

		err := rows.Scan(
			&t.ID, &t.UserID, &t.Title, &t.Description, &t.Subject, &status, &priority,
			&t.EstimatedHours, &t.Difficulty, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		t.Status = domain.TaskStatus(status)
		t.Priority = domain.TaskPriority(priority)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
