package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avermeer/lectio/internal/domain"
)

// PostgresPlanApplier implements PlanApplier over a pgx transaction.
type PostgresPlanApplier struct {
	pool *pgxpool.Pool
}

// NewPostgresPlanApplier creates a new PostgresPlanApplier.
func NewPostgresPlanApplier(pool *pgxpool.Pool) *PostgresPlanApplier {
	return &PostgresPlanApplier{pool: pool}
}

func (a *PostgresPlanApplier) Apply(ctx context.Context, userID, idempotencyKey string, events []*domain.CalendarBlock) error {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO plan_applications (idempotency_key, user_id, applied_at, session_count)
			VALUES ($1, $2, $3, $4)`,
		idempotencyKey, userID, time.Now().UTC(), len(events),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("idempotency key %q: %w", idempotencyKey, ErrDuplicateApplication)
		}
		return fmt.Errorf("recording plan application: %w", err)
	}

	for _, e := range events {
		_, err := tx.Exec(ctx,
			`INSERT INTO calendar_events (`+eventColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			e.ID, e.UserID, e.Title, e.StartTime, e.EndTime, e.WorkItemID, e.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting calendar event: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing plan application: %w", err)
	}
	return nil
}
