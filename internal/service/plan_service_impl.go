package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avermeer/lectio/internal/contract"
	"github.com/avermeer/lectio/internal/domain"
	"github.com/avermeer/lectio/internal/planner"
	"github.com/avermeer/lectio/internal/repository"
)

// PlanContext bundles all data loaded for one plan-generation call.
// Everything is read once and discarded when the call returns.
type PlanContext struct {
	Window contract.PlanWindow
	Queue  []domain.WorkItem
	Blocks []domain.CalendarBlock
}

// PlanContextLoader validates the request and loads work items and
// calendar blocks from their sources.
type PlanContextLoader struct {
	tasks  repository.TaskRepo
	topics repository.TopicRepo
	events repository.EventRepo
}

// Load validates the request, fetches open tasks, incomplete topics, and
// the window's calendar blocks, and builds the sorted work-item queue.
func (pl *PlanContextLoader) Load(ctx context.Context, userID string, req contract.GeneratePlanRequest) (*PlanContext, error) {
	window, err := req.Validate()
	if err != nil {
		return nil, err
	}

	tasks, err := pl.tasks.ListSchedulable(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading schedulable tasks: %w", err)
	}
	topics, err := pl.topics.ListIncomplete(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading incomplete topics: %w", err)
	}

	// Include blocks through the end of the last day.
	windowEnd := window.EndDate.AddDate(0, 0, 1).Add(-time.Second)
	blocks, err := pl.events.ListBetween(ctx, userID, window.StartDate, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("loading calendar blocks: %w", err)
	}

	return &PlanContext{
		Window: window,
		Queue:  planner.BuildQueue(tasks, topics, window.PrioritizeDueTasks),
		Blocks: blocks,
	}, nil
}

type planService struct {
	loader   *PlanContextLoader
	observer UseCaseObserver
}

// NewPlanService wires a PlanService over the given sources.
func NewPlanService(
	tasks repository.TaskRepo,
	topics repository.TopicRepo,
	events repository.EventRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		loader: &PlanContextLoader{
			tasks:  tasks,
			topics: topics,
			events: events,
		},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, userID string, req contract.GeneratePlanRequest) (*contract.StudyPlan, error) {
	started := time.Now()

	pctx, err := s.loader.Load(ctx, userID, req)
	if err != nil {
		s.observe(ctx, started, err, nil)
		return nil, err
	}

	plan := planner.GeneratePlan(
		pctx.Queue,
		pctx.Blocks,
		pctx.Window.StartDate,
		pctx.Window.EndDate,
		pctx.Window.DailyStudyHours,
		pctx.Window.IncludeWeekends,
	)

	s.observe(ctx, started, nil, map[string]any{
		"work_items":  len(pctx.Queue),
		"total_days":  plan.TotalDays,
		"total_hours": plan.TotalStudyHours,
	})
	return &plan, nil
}

func (s *planService) observe(ctx context.Context, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan_generate",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
