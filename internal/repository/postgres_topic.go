package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avermeer/lectio/internal/domain"
)

// PostgresTopicRepo implements TopicRepo using a pgx connection pool.
type PostgresTopicRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresTopicRepo creates a new PostgresTopicRepo.
func NewPostgresTopicRepo(pool *pgxpool.Pool) *PostgresTopicRepo {
	return &PostgresTopicRepo{pool: pool}
}

func (r *PostgresTopicRepo) Create(ctx context.Context, t *domain.SyllabusTopic) error {
	query := `INSERT INTO syllabus_topics (` + topicColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		t.ID,
		t.UserID,
		t.CourseID,
		t.Title,
		t.Subject,
		t.EstimatedHours,
		t.Difficulty,
		t.CompletionPct,
		t.Completed,
		t.DueDate,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting syllabus topic: %w", err)
	}
	return nil
}

func (r *PostgresTopicRepo) ListIncomplete(ctx context.Context, userID string) ([]domain.SyllabusTopic, error) {
	query := `SELECT ` + topicColumns + ` FROM syllabus_topics
		WHERE user_id = $1 AND completed = FALSE
		ORDER BY created_at, id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing incomplete topics: %w", err)
	}
	defer rows.Close()
	return scanPgTopics(rows)
}

func (r *PostgresTopicRepo) ListDifficult(ctx context.Context, userID string, minDifficulty, limit int) ([]domain.SyllabusTopic, error) {
	query := `SELECT ` + topicColumns + ` FROM syllabus_topics
		WHERE user_id = $1 AND completed = FALSE AND difficulty >= $2
		ORDER BY completion_pct, id
		LIMIT $3`
	rows, err := r.pool.Query(ctx, query, userID, minDifficulty, limit)
	if err != nil {
		return nil, fmt.Errorf("listing difficult topics: %w", err)
	}
	defer rows.Close()
	return scanPgTopics(rows)
}

func scanPgTopics(rows pgx.Rows) ([]domain.SyllabusTopic, error) {
	var topics []domain.SyllabusTopic
	for rows.Next() {
		var t domain.SyllabusTopic
		err := rows.Scan(
			&t.ID, &t.UserID, &t.CourseID, &t.Title, &t.Subject, &t.EstimatedHours,
			&t.Difficulty, &t.CompletionPct, &t.Completed, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning topic row: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}
	return topics, nil
}
