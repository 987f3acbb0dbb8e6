package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avermeer/lectio/internal/domain"
)

// PostgresMetricsRepo implements MetricsRepo using a pgx connection pool.
type PostgresMetricsRepo struct {
	pool *pgxpool.Pool
}

// NewPostgresMetricsRepo creates a new PostgresMetricsRepo.
func NewPostgresMetricsRepo(pool *pgxpool.Pool) *PostgresMetricsRepo {
	return &PostgresMetricsRepo{pool: pool}
}

// Upsert records one day's telemetry. When a row already exists for the
// day, the rating folds the previous value in at weight 1/2 regardless
// of sample count, and study minutes accumulate.
func (r *PostgresMetricsRepo) Upsert(ctx context.Context, m *domain.DailyMetric) error {
	day := m.Day.Format(dayLayout)

	var existingRating float64
	var existingMinutes int
	err := r.pool.QueryRow(ctx,
		`SELECT productivity_rating, study_time_minutes FROM study_metrics
			WHERE user_id = $1 AND day = $2`,
		m.UserID, day,
	).Scan(&existingRating, &existingMinutes)

	switch {
	case err == pgx.ErrNoRows:
		query := `INSERT INTO study_metrics
			(id, user_id, day, productivity_rating, study_time_minutes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		_, err := r.pool.Exec(ctx, query,
			m.ID, m.UserID, day, m.ProductivityRating, m.StudyTimeMinutes, m.CreatedAt, m.UpdatedAt,
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
		SET productivity_rating = $1, study_time_minutes = $2, updated_at = $3
		WHERE user_id = $4 AND day = $5`
	_, err = r.pool.Exec(ctx, query,
		folded, existingMinutes+m.StudyTimeMinutes, m.UpdatedAt, m.UserID, day,
	)
	if err != nil {
		return fmt.Errorf("updating study metric: %w", err)
	}
	return nil
}

// AverageWindow averages rating and study minutes over the trailing
// window of days ending today.
func (r *PostgresMetricsRepo) AverageWindow(ctx context.Context, userID string, days int) (MetricsAverages, error) {
	query := `SELECT AVG(productivity_rating), AVG(study_time_minutes)
		FROM study_metrics
		WHERE user_id = $1 AND day >= CURRENT_DATE - $2::int`
	var rating, minutes *float64
	err := r.pool.QueryRow(ctx, query, userID, days).Scan(&rating, &minutes)
	if err != nil {
		return MetricsAverages{}, fmt.Errorf("averaging study metrics: %w", err)
	}
	return MetricsAverages{
		AvgProductivityRating: rating,
		AvgStudyTimeMinutes:   minutes,
	}, nil
}
