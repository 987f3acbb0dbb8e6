package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/lectio/internal/db"
	"github.com/avermeer/lectio/internal/domain"
)

// SQLiteMetricsRepo implements MetricsRepo using a SQLite database.
type SQLiteMetricsRepo struct {
	db db.DBTX
}

// NewSQLiteMetricsRepo creates a new SQLiteMetricsRepo.
func NewSQLiteMetricsRepo(db db.DBTX) *SQLiteMetricsRepo {
	return &SQLiteMetricsRepo{db: db}
}

const dayLayout = "2006-01-02"

// Upsert records one day's telemetry. When a row already exists for the
// day, the rating folds the previous value in at weight 1/2 regardless
// of sample count, and study minutes accumulate.
func (r *SQLiteMetricsRepo) Upsert(ctx context.Context, m *domain.DailyMetric) error {
	day := m.Day.Format(dayLayout)

	var existingRating float64
	var existingMinutes int
	err := r.db.QueryRowContext(ctx,
		`SELECT productivity_rating, study_time_minutes FROM study_metrics
			WHERE user_id = ? AND day = ?`,
		m.UserID, day,
	).Scan(&existingRating, &existingMinutes)

	switch {
	case err == sql.ErrNoRows:
		query := `INSERT INTO study_metrics
			(id, user_id, day, productivity_rating, study_time_minutes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query,
			m.ID,
			m.UserID,
			day,
			m.ProductivityRating,
			m.StudyTimeMinutes,
			m.CreatedAt.Format(time.RFC3339),
			m.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting study metric: %w", err)
		}
		return nil

	case err != nil:
		return fmt.Errorf("loading existing study metric: %w", err)
	}

	folded := (existingRating + m.ProductivityRating) / 2
	query := `UPDATE study_metrics
		SET productivity_rating = ?, study_time_minutes = ?, updated_at = ?
		WHERE user_id = ? AND day = ?`
	_, err = r.db.ExecContext(ctx, query,
		folded,
		existingMinutes+m.StudyTimeMinutes,
		m.UpdatedAt.Format(time.RFC3339),
		m.UserID,
		day,
	)
	if err != nil {
		return fmt.Errorf("updating study metric: %w", err)
	}
	return nil
}

// AverageWindow averages rating and study minutes over the trailing
// window of days ending today. Both fields are nil when the window holds
// no samples.
func (r *SQLiteMetricsRepo) AverageWindow(ctx context.Context, userID string, days int) (MetricsAverages, error) {
	query := `SELECT AVG(productivity_rating), AVG(study_time_minutes)
		FROM study_metrics
		WHERE user_id = ? AND day >= date('now', ? || ' days')`
	var rating, minutes sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, userID, fmt.Sprintf("-%d", days)).Scan(&rating, &minutes)
	if err != nil {
		return MetricsAverages{}, fmt.Errorf("averaging study metrics: %w", err)
	}

	var out MetricsAverages
	if rating.Valid {
		v := rating.Float64
		out.AvgProductivityRating = &v
	}
	if minutes.Valid {
		v := minutes.Float64
		out.AvgStudyTimeMinutes = &v
	}
	return out, nil
}
