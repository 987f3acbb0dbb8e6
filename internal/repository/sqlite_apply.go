package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avermeer/lectio/internal/db"
	"github.com/avermeer/lectio/internal/domain"
)

// SQLitePlanApplier implements PlanApplier over a unit of work so the
// idempotency record and every created event commit or roll back
// together.
type SQLitePlanApplier struct {
	uow db.UnitOfWork
}

// NewSQLitePlanApplier creates a new SQLitePlanApplier.
func NewSQLitePlanApplier(uow db.UnitOfWork) *SQLitePlanApplier {
	return &SQLitePlanApplier{uow: uow}
}

func (a *SQLitePlanApplier) Apply(ctx context.Context, userID, idempotencyKey string, events []*domain.CalendarBlock) error {
	return a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO plan_applications (idempotency_key, user_id, applied_at, session_count)
				VALUES (?, ?, ?, ?)`,
			idempotencyKey,
			userID,
			time.Now().UTC().Format(time.RFC3339),
			len(events),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("idempotency key %q: %w", idempotencyKey, ErrDuplicateApplication)
			}
			return fmt.Errorf("recording plan application: %w", err)
		}

		eventRepo := NewSQLiteEventRepo(tx)
		for _, e := range events {
			if err := eventRepo.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed")
}
