package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avermeer/lectio/internal/domain"
)

func item(id string, totalHours float64, score int, due *time.Time) domain.WorkItem {
	return domain.WorkItem{
		ID:            id,
		Kind:          domain.KindTask,
		Title:         "Item " + id,
		Subject:       "math",
		TotalHours:    totalHours,
		PriorityScore: score,
		DueDate:       due,
	}
}

// Monday.
var monday = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

func TestGeneratePlan_SingleTaskSingleDay(t *testing.T) {
	items := []domain.WorkItem{item("a", 2, 3, nil)}

	plan := GeneratePlan(items, nil, monday, monday, 6, false)

	require.Len(t, plan.DailyPlans, 1)
	assert.Equal(t, 1, plan.TotalDays)
	assert.InDelta(t, 2.0, plan.TotalStudyHours, 1e-9)

	day := plan.DailyPlans[0]
	assert.Equal(t, "2026-01-05", day.Date)
	require.Len(t, day.Sessions, 1)
	assert.InDelta(t, 2.0, day.Sessions[0].Hours, 1e-9)
	assert.Equal(t, 9, day.Sessions[0].StartTime.Hour())
	assert.Equal(t, 11, day.Sessions[0].EndTime.Hour())
}

func TestGeneratePlan_SessionCapAndFragmentSkip(t *testing.T) {
	// Two 3h items against 4h capacity: the first is capped at 2.5h, its
	// 0.5h remainder is too small to stand alone, and the second takes
	// the remaining 1.5h.
	items := []domain.WorkItem{
		item("first", 3, 4, nil),
		item("second", 3, 3, nil),
	}

	plan := GeneratePlan(items, nil, monday, monday, 4, false)

	require.Len(t, plan.DailyPlans, 1)
	sessions := plan.DailyPlans[0].Sessions
	require.Len(t, sessions, 2)

	assert.Equal(t, "first", *sessions[0].WorkItemID)
	assert.InDelta(t, 2.5, sessions[0].Hours, 1e-9)
	assert.Equal(t, "second", *sessions[1].WorkItemID)
	assert.InDelta(t, 1.5, sessions[1].Hours, 1e-9)
	assert.InDelta(t, 4.0, plan.DailyPlans[0].TotalHours, 1e-9)
}

func TestGeneratePlan_FullyBlockedDayOmitted(t *testing.T) {
	items := []domain.WorkItem{item("a", 2, 3, nil)}
	blocks := []domain.CalendarBlock{
		{
			ID:        "b1",
			Title:     "All-day seminar",
			StartTime: monday.Add(8 * time.Hour),
			EndTime:   monday.Add(16 * time.Hour),
		},
	}

	tuesday := monday.AddDate(0, 0, 1)
	plan := GeneratePlan(items, blocks, monday, tuesday, 6, false)

	require.Len(t, plan.DailyPlans, 1)
	assert.Equal(t, "2026-01-06", plan.DailyPlans[0].Date)
}

func TestGeneratePlan_WeekendsSkippedByDefault(t *testing.T) {
	friday := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	nextMonday := friday.AddDate(0, 0, 3)
	items := []domain.WorkItem{item("a", 20, 3, nil)}

	plan := GeneratePlan(items, nil, friday, nextMonday, 6, false)

	require.Len(t, plan.DailyPlans, 2)
	assert.Equal(t, "2026-01-09", plan.DailyPlans[0].Date)
	assert.Equal(t, "2026-01-12", plan.DailyPlans[1].Date)
}

func TestGeneratePlan_WeekendsIncludedWhenRequested(t *testing.T) {
	friday := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	nextMonday := friday.AddDate(0, 0, 3)
	items := []domain.WorkItem{item("a", 40, 3, nil)}

	plan := GeneratePlan(items, nil, friday, nextMonday, 6, true)

	assert.Equal(t, 4, plan.TotalDays)
}

func TestGeneratePlan_ItemCarriesAcrossDays(t *testing.T) {
	// 6h of work at 2.5h/session and 3h/day: 2.5 on day one (0.5
	// remainder skipped), 2.5 + 1.0 carried into later days.
	items := []domain.WorkItem{item("big", 6, 3, nil)}

	plan := GeneratePlan(items, nil, monday, monday.AddDate(0, 0, 4), 3, false)

	total := 0.0
	for _, day := range plan.DailyPlans {
		for _, s := range day.Sessions {
			total += s.Hours
		}
	}
	assert.InDelta(t, 6.0, total, 1e-9)
	assert.GreaterOrEqual(t, len(plan.DailyPlans), 3)
}

func TestGeneratePlan_SessionsWithinDayDoNotOverlap(t *testing.T) {
	items := []domain.WorkItem{
		item("a", 2, 5, nil),
		item("b", 2, 4, nil),
		item("c", 2, 3, nil),
	}

	plan := GeneratePlan(items, nil, monday, monday, 6, false)

	require.Len(t, plan.DailyPlans, 1)
	sessions := plan.DailyPlans[0].Sessions
	require.Len(t, sessions, 3)
	for i := 1; i < len(sessions); i++ {
		assert.False(t, sessions[i].StartTime.Before(sessions[i-1].EndTime),
			"session %d starts before the previous one ends", i)
	}
}

func TestGeneratePlan_EmptyQueueYieldsEmptyPlan(t *testing.T) {
	plan := GeneratePlan(nil, nil, monday, monday.AddDate(0, 0, 4), 6, false)

	assert.Equal(t, 0, plan.TotalDays)
	assert.Zero(t, plan.TotalStudyHours)
	assert.Empty(t, plan.DailyPlans)
}

func TestGeneratePlan_InputItemsNeverMutated(t *testing.T) {
	items := []domain.WorkItem{item("a", 6, 3, nil)}
	before := items[0]

	GeneratePlan(items, nil, monday, monday.AddDate(0, 0, 4), 6, false)

	assert.Equal(t, before, items[0])
}

func TestGeneratePlan_TinyItemBelowMinimumNeverScheduled(t *testing.T) {
	items := []domain.WorkItem{item("tiny", 0.4, 3, nil)}

	plan := GeneratePlan(items, nil, monday, monday.AddDate(0, 0, 4), 6, false)

	assert.Empty(t, plan.DailyPlans)
}

func TestLedger_RemainingAndDone(t *testing.T) {
	wi := item("a", 3, 3, nil)
	ledger := make(Ledger)

	assert.InDelta(t, 3.0, ledger.Remaining(wi), 1e-9)
	assert.False(t, ledger.Done(wi))

	ledger[wi.ID] = 3
	assert.Zero(t, ledger.Remaining(wi))
	assert.True(t, ledger.Done(wi))
}
