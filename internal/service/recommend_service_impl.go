package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avermeer/lectio/internal/domain"
	"github.com/avermeer/lectio/internal/recommend"
	"github.com/avermeer/lectio/internal/repository"
)

// Snapshot aggregation parameters: trailing telemetry window, deadline
// lookahead, and the difficult-topic filter.
const (
	metricsWindowDays  = 7
	deadlineWindowDays = 7
	minDifficulty      = 4
	maxDifficultTopics = 5
)

type recommendationService struct {
	tasks    repository.TaskRepo
	topics   repository.TopicRepo
	metrics  repository.MetricsRepo
	observer UseCaseObserver
	now      func() time.Time
}

// NewRecommendationService wires a RecommendationService over the given
// sources.
func NewRecommendationService(
	tasks repository.TaskRepo,
	topics repository.TopicRepo,
	metrics repository.MetricsRepo,
	observers ...UseCaseObserver,
) RecommendationService {
	return &recommendationService{
		tasks:    tasks,
		topics:   topics,
		metrics:  metrics,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *recommendationService) Derive(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	started := time.Now()

	snapshot, err := s.buildSnapshot(ctx, userID)
	if err != nil {
		s.observe(ctx, started, err, nil)
		return nil, err
	}

	recs := recommend.Derive(*snapshot)
	s.observe(ctx, started, nil, map[string]any{"recommendations": len(recs)})
	return recs, nil
}

// buildSnapshot assembles the performance snapshot the engine consumes:
// 7-day telemetry averages, the current overdue count, deadlines within
// the next week, and the hardest low-completion topics.
func (s *recommendationService) buildSnapshot(ctx context.Context, userID string) (*domain.PerformanceSnapshot, error) {
	now := s.now()

	averages, err := s.metrics.AverageWindow(ctx, userID, metricsWindowDays)
	if err != nil {
		return nil, fmt.Errorf("loading metric averages: %w", err)
	}

	overdue, err := s.tasks.CountOverdue(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("counting overdue tasks: %w", err)
	}

	dueSoon, err := s.tasks.ListDueWithin(ctx, userID, now, deadlineWindowDays)
	if err != nil {
		return nil, fmt.Errorf("loading upcoming deadlines: %w", err)
	}
	deadlines := make([]domain.UpcomingDeadline, 0, len(dueSoon))
	for _, t := range dueSoon {
		deadlines = append(deadlines, domain.UpcomingDeadline{
			Title:    t.Title,
			DueDate:  *t.DueDate,
			Priority: t.Priority,
		})
	}

	hardTopics, err := s.topics.ListDifficult(ctx, userID, minDifficulty, maxDifficultTopics)
	if err != nil {
		return nil, fmt.Errorf("loading difficult topics: %w", err)
	}
	difficult := make([]domain.DifficultTopic, 0, len(hardTopics))
	for _, t := range hardTopics {
		difficult = append(difficult, domain.DifficultTopic{
			Topic:         t.Title,
			Subject:       t.Subject,
			Difficulty:    t.Difficulty,
			CompletionPct: t.CompletionPct,
		})
	}

	return &domain.PerformanceSnapshot{
		AvgProductivityRating: averages.AvgProductivityRating,
		AvgStudyTimeMinutes:   averages.AvgStudyTimeMinutes,
		OverdueTaskCount:      overdue,
		UpcomingDeadlines:     deadlines,
		DifficultTopics:       difficult,
	}, nil
}

func (s *recommendationService) observe(ctx context.Context, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "recommendations_derive",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
