package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/lectio/internal/db"
	"github.com/avermeer/lectio/internal/domain"
)

// SQLiteTopicRepo implements TopicRepo using a SQLite database.
type SQLiteTopicRepo struct {
	db db.DBTX
}

// NewSQLiteTopicRepo creates a new SQLiteTopicRepo.
func NewSQLiteTopicRepo(db db.DBTX) *SQLiteTopicRepo {
	return &SQLiteTopicRepo{db: db}
}

const topicColumns = `id, user_id, course_id, title, subject, estimated_hours,
	difficulty, completion_pct, completed, due_date, created_at, updated_at`

func (r *SQLiteTopicRepo) Create(ctx context.Context, t *domain.SyllabusTopic) error {
	query := `INSERT INTO syllabus_topics (` + topicColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		t.CourseID,
		t.Title,
		t.Subject,
		t.EstimatedHours,
		t.Difficulty,
		t.CompletionPct,
		boolToInt(t.Completed),
		nullableTimeToString(t.DueDate, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting syllabus topic: %w", err)
	}
	return nil
}

// ListIncomplete returns the user's unfinished topics in creation order.
func (r *SQLiteTopicRepo) ListIncomplete(ctx context.Context, userID string) ([]domain.SyllabusTopic, error) {
	query := `SELECT ` + topicColumns + ` FROM syllabus_topics
		WHERE user_id = ? AND completed = 0
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing incomplete topics: %w", err)
	}
	defer rows.Close()
	return r.scanTopics(rows)
}

// ListDifficult returns unfinished topics at or above minDifficulty,
// lowest completion first, capped at limit.
func (r *SQLiteTopicRepo) ListDifficult(ctx context.Context, userID string, minDifficulty, limit int) ([]domain.SyllabusTopic, error) {
	query := `SELECT ` + topicColumns + ` FROM syllabus_topics
		WHERE user_id = ? AND completed = 0 AND difficulty >= ?
		ORDER BY completion_pct, id
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, minDifficulty, limit)
	if err != nil {
		return nil, fmt.Errorf("listing difficult topics: %w", err)
	}
	defer rows.Close()
	return r.scanTopics(rows)
}

func (r *SQLiteTopicRepo) scanTopics(rows *sql.Rows) ([]domain.SyllabusTopic, error) {
	var topics []domain.SyllabusTopic
	for rows.Next() {
		var t domain.SyllabusTopic
		var completed int
		var dueDate sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.UserID, &t.CourseID, &t.Title, &t.Subject, &t.EstimatedHours,
			&t.Difficulty, &t.CompletionPct, &completed, &dueDate, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning topic row: %w", err)
		}

		t.Completed = intToBool(completed)
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

		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topics: %w", err)
	}
	return topics, nil
}
