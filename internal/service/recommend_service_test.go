package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avermeer/lectio/internal/domain"
	"github.com/avermeer/lectio/internal/repository"
	"github.com/avermeer/lectio/internal/testutil"
)

type recommendFixture struct {
	tasks   *repository.SQLiteTaskRepo
	topics  *repository.SQLiteTopicRepo
	metrics *repository.SQLiteMetricsRepo
	service *recommendationService
	now     time.Time
}

func newRecommendFixture(t *testing.T) *recommendFixture {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	topics := repository.NewSQLiteTopicRepo(database)
	metrics := repository.NewSQLiteMetricsRepo(database)

	f := &recommendFixture{
		tasks:   tasks,
		topics:  topics,
		metrics: metrics,
		now:     time.Now().UTC(),
	}
	svc := NewRecommendationService(tasks, topics, metrics).(*recommendationService)
	svc.now = func() time.Time { return f.now }
	f.service = svc
	return f
}

func TestRecommendationService_Derive_EmptyStateYieldsNothing(t *testing.T) {
	f := newRecommendFixture(t)

	recs, err := f.service.Derive(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendationService_Derive_OverdueTasks(t *testing.T) {
	f := newRecommendFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		task := testutil.NewTestTask("Overdue",
			testutil.WithTaskDue(f.now.AddDate(0, 0, -(i+1))))
		require.NoError(t, f.tasks.Create(ctx, task))
	}

	recs, err := f.service.Derive(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.RecDeadline, recs[0].Type)
	assert.Equal(t, domain.RecPriorityUrgent, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "2")
}

func TestRecommendationService_Derive_LowTelemetry(t *testing.T) {
	f := newRecommendFixture(t)
	ctx := context.Background()

	today := f.now.Truncate(24 * time.Hour)
	require.NoError(t, f.metrics.Upsert(ctx, testutil.NewTestMetric("user-1", today, 2, 30)))

	recs, err := f.service.Derive(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.RecPerformance, recs[0].Type)
	assert.Equal(t, domain.RecTime, recs[1].Type)
}

func TestRecommendationService_Derive_UpcomingDeadlinesAndDifficultTopics(t *testing.T) {
	f := newRecommendFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tasks.Create(ctx, testutil.NewTestTask("Exam prep",
		testutil.WithTaskDue(f.now.AddDate(0, 0, 3)))))
	require.NoError(t, f.topics.Create(ctx, testutil.NewTestTopic("Hard topic",
		testutil.WithTopicDifficulty(5), testutil.WithTopicCompletion(10))))

	recs, err := f.service.Derive(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.RecPlanning, recs[0].Type)
	assert.Contains(t, recs[0].Description, "Exam prep")
	assert.Equal(t, domain.RecDifficulty, recs[1].Type)
	assert.Contains(t, recs[1].Description, "Hard topic")
}

func TestRecommendationService_Derive_EasyTopicsDoNotTriggerDifficulty(t *testing.T) {
	f := newRecommendFixture(t)
	ctx := context.Background()

	require.NoError(t, f.topics.Create(ctx, testutil.NewTestTopic("Easy topic",
		testutil.WithTopicDifficulty(2), testutil.WithTopicCompletion(10))))

	recs, err := f.service.Derive(ctx, "user-1")

	require.NoError(t, err)
	assert.Empty(t, recs)
}
