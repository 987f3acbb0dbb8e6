package repository

import (
	"context"
	"errors"
	"time"

	"github.com/avermeer/lectio/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateApplication is returned when a plan application reuses an
// idempotency key that has already been applied.
var ErrDuplicateApplication = errors.New("plan already applied")

// MetricsAverages holds windowed telemetry averages. Fields are nil when
// the window contains no samples.
type MetricsAverages struct {
	AvgProductivityRating *float64
	AvgStudyTimeMinutes   *float64
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListSchedulable(ctx context.Context, userID string) ([]domain.Task, error)
	CountOverdue(ctx context.Context, userID string, now time.Time) (int, error)
	ListDueWithin(ctx context.Context, userID string, now time.Time, days int) ([]domain.Task, error)
}

type TopicRepo interface {
	Create(ctx context.Context, t *domain.SyllabusTopic) error
	ListIncomplete(ctx context.Context, userID string) ([]domain.SyllabusTopic, error)
	ListDifficult(ctx context.Context, userID string, minDifficulty, limit int) ([]domain.SyllabusTopic, error)
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.CalendarBlock) error
	ListBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.CalendarBlock, error)
}

type MetricsRepo interface {
	Upsert(ctx context.Context, m *domain.DailyMetric) error
	AverageWindow(ctx context.Context, userID string, days int) (MetricsAverages, error)
}

// PlanApplier persists a generated plan's sessions as calendar events in
// a single transaction keyed by a client-supplied idempotency key.
// Reapplying the same key returns ErrDuplicateApplication and creates
// nothing.
type PlanApplier interface {
	Apply(ctx context.Context, userID, idempotencyKey string, events []*domain.CalendarBlock) error
}
