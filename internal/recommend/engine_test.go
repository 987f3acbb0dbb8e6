package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avermeer/lectio/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestDerive_HealthySnapshotYieldsNothing(t *testing.T) {
	s := domain.PerformanceSnapshot{
		AvgProductivityRating: floatPtr(4.2),
		AvgStudyTimeMinutes:   floatPtr(180),
	}

	assert.Empty(t, Derive(s))
}

func TestDerive_NoTelemetryYieldsNothing(t *testing.T) {
	// Nil averages mean no samples, not zero performance.
	assert.Empty(t, Derive(domain.PerformanceSnapshot{}))
}

func TestDerive_LowRating(t *testing.T) {
	recs := Derive(domain.PerformanceSnapshot{
		AvgProductivityRating: floatPtr(2.4),
	})

	require.Len(t, recs, 1)
	assert.Equal(t, domain.RecPerformance, recs[0].Type)
	assert.Equal(t, domain.RecPriorityHigh, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "2.4")
}

func TestDerive_RatingAtThresholdDoesNotTrigger(t *testing.T) {
	recs := Derive(domain.PerformanceSnapshot{
		AvgProductivityRating: floatPtr(3.0),
	})

	assert.Empty(t, recs)
}

func TestDerive_LowStudyTime(t *testing.T) {
	recs := Derive(domain.PerformanceSnapshot{
		AvgStudyTimeMinutes: floatPtr(45),
	})

	require.Len(t, recs, 1)
	assert.Equal(t, domain.RecTime, recs[0].Type)
	assert.Equal(t, domain.RecPriorityMedium, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "45")
}

func TestDerive_OverdueTasks(t *testing.T) {
	recs := Derive(domain.PerformanceSnapshot{OverdueTaskCount: 2})

	require.Len(t, recs, 1)
	assert.Equal(t, domain.RecDeadline, recs[0].Type)
	assert.Equal(t, domain.RecPriorityUrgent, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "2")
}

func TestDerive_UpcomingDeadlines(t *testing.T) {
	recs := Derive(domain.PerformanceSnapshot{
		UpcomingDeadlines: []domain.UpcomingDeadline{
			{Title: "Physics exam", DueDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
			{Title: "Essay draft", DueDate: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)},
		},
	})

	require.Len(t, recs, 1)
	assert.Equal(t, domain.RecPlanning, recs[0].Type)
	assert.Equal(t, domain.RecPriorityHigh, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "Physics exam")
	assert.Contains(t, recs[0].Description, "2026-03-04")
}

func TestDerive_DifficultTopics(t *testing.T) {
	recs := Derive(domain.PerformanceSnapshot{
		DifficultTopics: []domain.DifficultTopic{
			{Topic: "Fourier analysis", Subject: "math", Difficulty: 5, CompletionPct: 20},
		},
	})

	require.Len(t, recs, 1)
	assert.Equal(t, domain.RecDifficulty, recs[0].Type)
	assert.Equal(t, domain.RecPriorityMedium, recs[0].Priority)
	assert.Contains(t, recs[0].Description, "Fourier analysis")
}

func TestDerive_AllRulesFireInFixedOrder(t *testing.T) {
	recs := Derive(domain.PerformanceSnapshot{
		AvgProductivityRating: floatPtr(1.5),
		AvgStudyTimeMinutes:   floatPtr(30),
		OverdueTaskCount:      4,
		UpcomingDeadlines: []domain.UpcomingDeadline{
			{Title: "Exam", DueDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
		},
		DifficultTopics: []domain.DifficultTopic{
			{Topic: "Hard topic", Subject: "cs"},
		},
	})

	require.Len(t, recs, 5)
	assert.Equal(t, domain.RecPerformance, recs[0].Type)
	assert.Equal(t, domain.RecTime, recs[1].Type)
	assert.Equal(t, domain.RecDeadline, recs[2].Type)
	assert.Equal(t, domain.RecPlanning, recs[3].Type)
	assert.Equal(t, domain.RecDifficulty, recs[4].Type)
}

func TestDerive_Idempotent(t *testing.T) {
	s := domain.PerformanceSnapshot{
		AvgProductivityRating: floatPtr(2.0),
		OverdueTaskCount:      1,
	}

	assert.Equal(t, Derive(s), Derive(s))
}
