package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/avermeer/lectio/internal/contract"
	"github.com/avermeer/lectio/internal/domain"
	"github.com/avermeer/lectio/internal/repository"
)

type metricsService struct {
	metrics  repository.MetricsRepo
	observer UseCaseObserver
	now      func() time.Time
}

// NewMetricsService wires a MetricsService over the given metrics store.
func NewMetricsService(metrics repository.MetricsRepo, observers ...UseCaseObserver) MetricsService {
	return &metricsService{
		metrics:  metrics,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *metricsService) Log(ctx context.Context, userID string, req contract.LogMetricsRequest) error {
	started := time.Now()

	now := s.now()
	day, err := req.Validate(now)
	if err != nil {
		s.observe(ctx, started, err)
		return err
	}

	err = s.metrics.Upsert(ctx, &domain.DailyMetric{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Day:                day,
		ProductivityRating: req.ProductivityRating,
		StudyTimeMinutes:   req.StudyTimeMinutes,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	s.observe(ctx, started, err)
	return err
}

func (s *metricsService) observe(ctx context.Context, started time.Time, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "metrics_log",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	})
}
