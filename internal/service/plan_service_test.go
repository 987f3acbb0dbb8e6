package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avermeer/lectio/internal/contract"
	"github.com/avermeer/lectio/internal/repository"
	"github.com/avermeer/lectio/internal/testutil"
)

type planFixture struct {
	tasks   *repository.SQLiteTaskRepo
	topics  *repository.SQLiteTopicRepo
	events  *repository.SQLiteEventRepo
	service PlanService
}

func newPlanFixture(t *testing.T) *planFixture {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	topics := repository.NewSQLiteTopicRepo(database)
	events := repository.NewSQLiteEventRepo(database)
	return &planFixture{
		tasks:   tasks,
		topics:  topics,
		events:  events,
		service: NewPlanService(tasks, topics, events),
	}
}

func TestPlanService_Generate_EndToEnd(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Essay", testutil.WithTaskHours(2))))
	require.NoError(t, f.topics.Create(ctx, testutil.NewTestTopic("Calculus", testutil.WithTopicHours(1))))

	// Monday-only window.
	plan, err := f.service.Generate(ctx, "user-1", contract.GeneratePlanRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-05",
	})

	require.NoError(t, err)
	require.Len(t, plan.DailyPlans, 1)
	assert.InDelta(t, 3.0, plan.TotalStudyHours, 1e-9)
	assert.Len(t, plan.DailyPlans[0].Sessions, 2)
}

func TestPlanService_Generate_InvalidRequestSurfacesPlanError(t *testing.T) {
	f := newPlanFixture(t)

	_, err := f.service.Generate(context.Background(), "user-1", contract.GeneratePlanRequest{
		StartDate: "2026-01-09",
		EndDate:   "2026-01-05",
	})

	var planErr *contract.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, contract.ErrInvalidDateRange, planErr.Code)
}

func TestPlanService_Generate_DueTaskScheduledFirst(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	due := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Undated", testutil.WithTaskHours(2))))
	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Dated",
		testutil.WithTaskHours(2), testutil.WithTaskDue(due))))

	plan, err := f.service.Generate(ctx, "user-1", contract.GeneratePlanRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-05",
	})

	require.NoError(t, err)
	require.Len(t, plan.DailyPlans, 1)
	require.NotEmpty(t, plan.DailyPlans[0].Sessions)
	assert.Equal(t, "Dated", plan.DailyPlans[0].Sessions[0].Title)
}

func TestPlanService_Generate_CalendarEventsReduceCapacity(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()

	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Big task", testutil.WithTaskHours(10))))
	require.NoError(t, f.events.Create(ctx, testutil.NewTestEvent("Lectures",
		monday.Add(9*time.Hour), monday.Add(13*time.Hour))))

	hours := 6.0
	plan, err := f.service.Generate(ctx, "user-1", contract.GeneratePlanRequest{
		StartDate:       "2026-01-05",
		EndDate:         "2026-01-05",
		DailyStudyHours: &hours,
	})

	require.NoError(t, err)
	require.Len(t, plan.DailyPlans, 1)
	assert.InDelta(t, 2.0, plan.DailyPlans[0].TotalHours, 1e-9)
}

func TestPlanService_Generate_NoOpenWorkYieldsEmptyPlan(t *testing.T) {
	f := newPlanFixture(t)

	plan, err := f.service.Generate(context.Background(), "user-1", contract.GeneratePlanRequest{
		StartDate: "2026-01-05",
		EndDate:   "2026-01-09",
	})

	require.NoError(t, err)
	assert.Zero(t, plan.TotalDays)
	assert.Empty(t, plan.DailyPlans)
}
