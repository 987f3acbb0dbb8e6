package service

import (
	"context"

	"github.com/avermeer/lectio/internal/contract"
	"github.com/avermeer/lectio/internal/domain"
)

type PlanService interface {
	Generate(ctx context.Context, userID string, req contract.GeneratePlanRequest) (*contract.StudyPlan, error)
}

type ApplyService interface {
	Apply(ctx context.Context, userID string, req contract.ApplyPlanRequest) ([]*domain.CalendarBlock, error)
}

type RecommendationService interface {
	Derive(ctx context.Context, userID string) ([]domain.Recommendation, error)
}

type MetricsService interface {
	Log(ctx context.Context, userID string, req contract.LogMetricsRequest) error
}

// CatalogService creates the raw planning inputs: tasks, syllabus
// topics, and fixed calendar events.
type CatalogService interface {
	AddTask(ctx context.Context, userID string, in NewTaskInput) (*domain.Task, error)
	AddTopic(ctx context.Context, userID string, in NewTopicInput) (*domain.SyllabusTopic, error)
	AddEvent(ctx context.Context, userID string, in NewEventInput) (*domain.CalendarBlock, error)
}
