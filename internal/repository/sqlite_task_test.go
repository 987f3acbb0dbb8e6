package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avermeer/lectio/internal/domain"
	"github.com/avermeer/lectio/internal/testutil"
)

func TestSQLiteTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("Read chapter 4",
		testutil.WithTaskPriority(domain.PriorityHigh),
		testutil.WithTaskDue(due),
	)
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Read chapter 4", got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.TaskPending, got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
}

func TestSQLiteTaskRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteTaskRepo_ListSchedulable_FiltersClosedAndOtherUsers(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	open := testutil.NewTestTask("Open")
	open.CreatedAt = base
	inProgress := testutil.NewTestTask("In progress", testutil.WithTaskStatus(domain.TaskInProgress))
	inProgress.CreatedAt = base.Add(time.Minute)
	done := testutil.NewTestTask("Done", testutil.WithTaskStatus(domain.TaskCompleted))
	cancelled := testutil.NewTestTask("Cancelled", testutil.WithTaskStatus(domain.TaskCancelled))
	foreign := testutil.NewTestTask("Foreign", testutil.WithTaskUser("user-2"))

	for _, task := range []*domain.Task{open, inProgress, done, cancelled, foreign} {
		require.NoError(t, repo.Create(ctx, task))
	}

	tasks, err := repo.ListSchedulable(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Open", tasks[0].Title)
	assert.Equal(t, "In progress", tasks[1].Title)
}

func TestSQLiteTaskRepo_CountOverdue(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	overdue1 := testutil.NewTestTask("Late essay", testutil.WithTaskDue(now.AddDate(0, 0, -3)))
	overdue2 := testutil.NewTestTask("Late quiz", testutil.WithTaskDue(now.Add(-time.Hour)))
	future := testutil.NewTestTask("Future", testutil.WithTaskDue(now.AddDate(0, 0, 3)))
	undated := testutil.NewTestTask("Undated")
	closedLate := testutil.NewTestTask("Closed late",
		testutil.WithTaskDue(now.AddDate(0, 0, -3)),
		testutil.WithTaskStatus(domain.TaskCompleted),
	)

	for _, task := range []*domain.Task{overdue1, overdue2, future, undated, closedLate} {
		require.NoError(t, repo.Create(ctx, task))
	}

	count, err := repo.CountOverdue(ctx, "user-1", now)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSQLiteTaskRepo_ListDueWithin(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	ctx := context.Background()

	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	inWindowLater := testutil.NewTestTask("Due in 6 days", testutil.WithTaskDue(now.AddDate(0, 0, 6)))
	inWindowSoon := testutil.NewTestTask("Due tomorrow", testutil.WithTaskDue(now.AddDate(0, 0, 1)))
	pastWindow := testutil.NewTestTask("Due in 10 days", testutil.WithTaskDue(now.AddDate(0, 0, 10)))
	alreadyLate := testutil.NewTestTask("Overdue", testutil.WithTaskDue(now.AddDate(0, 0, -1)))

	for _, task := range []*domain.Task{inWindowLater, inWindowSoon, pastWindow, alreadyLate} {
		require.NoError(t, repo.Create(ctx, task))
	}

	tasks, err := repo.ListDueWithin(ctx, "user-1", now, 7)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Due tomorrow", tasks[0].Title)
	assert.Equal(t, "Due in 6 days", tasks[1].Title)
}
