package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avermeer/lectio/internal/testutil"
)

func TestSQLiteMetricsRepo_UpsertInsertsFirstSample(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteMetricsRepo(database)
	ctx := context.Background()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMetric("user-1", day, 4, 90)))

	avg, err := repo.AverageWindow(ctx, "user-1", 7)
	require.NoError(t, err)
	require.NotNil(t, avg.AvgProductivityRating)
	require.NotNil(t, avg.AvgStudyTimeMinutes)
	assert.InDelta(t, 4.0, *avg.AvgProductivityRating, 1e-9)
	assert.InDelta(t, 90.0, *avg.AvgStudyTimeMinutes, 1e-9)
}

func TestSQLiteMetricsRepo_UpsertFoldsRatingAndAccumulatesMinutes(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteMetricsRepo(database)
	ctx := context.Background()

	day := time.Now().UTC().Truncate(24 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMetric("user-1", day, 4, 60)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMetric("user-1", day, 2, 30)))

	avg, err := repo.AverageWindow(ctx, "user-1", 7)
	require.NoError(t, err)
	// The rating folds the previous value in at weight 1/2: (4+2)/2 = 3.
	require.NotNil(t, avg.AvgProductivityRating)
	assert.InDelta(t, 3.0, *avg.AvgProductivityRating, 1e-9)
	// Minutes accumulate.
	require.NotNil(t, avg.AvgStudyTimeMinutes)
	assert.InDelta(t, 90.0, *avg.AvgStudyTimeMinutes, 1e-9)
}

func TestSQLiteMetricsRepo_AverageWindow_EmptyIsNil(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteMetricsRepo(database)

	avg, err := repo.AverageWindow(context.Background(), "user-1", 7)
	require.NoError(t, err)
	assert.Nil(t, avg.AvgProductivityRating)
	assert.Nil(t, avg.AvgStudyTimeMinutes)
}

func TestSQLiteMetricsRepo_AverageWindow_ExcludesOldDays(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteMetricsRepo(database)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMetric("user-1", today, 5, 120)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMetric("user-1", today.AddDate(0, 0, -30), 1, 10)))

	avg, err := repo.AverageWindow(ctx, "user-1", 7)
	require.NoError(t, err)
	require.NotNil(t, avg.AvgProductivityRating)
	assert.InDelta(t, 5.0, *avg.AvgProductivityRating, 1e-9)
}

func TestSQLiteMetricsRepo_SeparateDaysKeptApart(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteMetricsRepo(database)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMetric("user-1", today, 4, 60)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestMetric("user-1", today.AddDate(0, 0, -1), 2, 120)))

	avg, err := repo.AverageWindow(ctx, "user-1", 7)
	require.NoError(t, err)
	require.NotNil(t, avg.AvgProductivityRating)
	assert.InDelta(t, 3.0, *avg.AvgProductivityRating, 1e-9)
	require.NotNil(t, avg.AvgStudyTimeMinutes)
	assert.InDelta(t, 90.0, *avg.AvgStudyTimeMinutes, 1e-9)
}
