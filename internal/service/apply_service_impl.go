package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avermeer/lectio/internal/contract"
	"github.com/avermeer/lectio/internal/domain"
	"github.com/avermeer/lectio/internal/repository"
)

type applyService struct {
	applier  repository.PlanApplier
	observer UseCaseObserver
	now      func() time.Time
}

// NewApplyService wires an ApplyService over the given plan applier.
func NewApplyService(applier repository.PlanApplier, observers ...UseCaseObserver) ApplyService {
	return &applyService{
		applier:  applier,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Apply persists each session of a generated plan as a calendar event.
// The whole application is transactional and keyed by the request's
// idempotency key, so reapplying the same plan cannot create duplicate
// events.
func (s *applyService) Apply(ctx context.Context, userID string, req contract.ApplyPlanRequest) ([]*domain.CalendarBlock, error) {
	started := time.Now()

	if err := req.Validate(); err != nil {
		s.observe(ctx, started, err, nil)
		return nil, err
	}

	now := s.now()
	events := make([]*domain.CalendarBlock, 0, len(req.Sessions))
	for _, sess := range req.Sessions {
		events = append(events, &domain.CalendarBlock{
			ID:         uuid.NewString(),
			UserID:     userID,
			Title:      sess.Title,
			StartTime:  sess.StartTime,
			EndTime:    sess.EndTime,
			WorkItemID: sess.WorkItemID,
			CreatedAt:  now,
		})
	}

	if err := s.applier.Apply(ctx, userID, req.IdempotencyKey, events); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			err = &contract.PlanError{
				Code:    contract.ErrDuplicateApplication,
				Message: "this plan has already been applied",
			}
		}
		s.observe(ctx, started, err, nil)
		return nil, err
	}

	s.observe(ctx, started, nil, map[string]any{"events_created": len(events)})
	return events, nil
}

func (s *applyService) observe(ctx context.Context, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_apply",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
