package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskPriority_Score(t *testing.T) {
	assert.Equal(t, 5, PriorityUrgent.Score())
	assert.Equal(t, 4, PriorityHigh.Score())
	assert.Equal(t, 3, PriorityMedium.Score())
	assert.Equal(t, 2, PriorityLow.Score())
	assert.Equal(t, 3, TaskPriority("whenever").Score())
}

func TestTask_Schedulable(t *testing.T) {
	assert.True(t, (&Task{Status: TaskPending}).Schedulable())
	assert.True(t, (&Task{Status: TaskInProgress}).Schedulable())
	assert.False(t, (&Task{Status: TaskCompleted}).Schedulable())
	assert.False(t, (&Task{Status: TaskCancelled}).Schedulable())
}

func TestSyllabusTopic_PriorityScore(t *testing.T) {
	assert.Equal(t, 3, (&SyllabusTopic{CompletionPct: 0}).PriorityScore())
	assert.Equal(t, 3, (&SyllabusTopic{CompletionPct: 49.9}).PriorityScore())
	assert.Equal(t, 2, (&SyllabusTopic{CompletionPct: 50}).PriorityScore())
	assert.Equal(t, 2, (&SyllabusTopic{CompletionPct: 100}).PriorityScore())
}

func TestFromTask_CarriesFields(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	task := &Task{
		ID:             "t-1",
		Title:          "Essay",
		Subject:        "history",
		Priority:       PriorityUrgent,
		EstimatedHours: 3,
		Difficulty:     4,
		DueDate:        &due,
	}

	wi := FromTask(task)

	assert.Equal(t, KindTask, wi.Kind)
	assert.Equal(t, 5, wi.PriorityScore)
	assert.Equal(t, 3.0, wi.TotalHours)
	assert.Equal(t, &due, wi.DueDate)
}

func TestFromTopic_HoursAreNotScaledByCompletion(t *testing.T) {
	topic := &SyllabusTopic{
		ID:             "s-1",
		Title:          "Linear algebra",
		EstimatedHours: 4,
		CompletionPct:  75,
	}

	wi := FromTopic(topic)

	assert.Equal(t, KindTopic, wi.Kind)
	assert.Equal(t, 4.0, wi.TotalHours)
	assert.Equal(t, 2, wi.PriorityScore)
}

func TestCalendarBlock_DurationHours(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	b := CalendarBlock{StartTime: start, EndTime: start.Add(90 * time.Minute)}

	assert.InDelta(t, 1.5, b.DurationHours(), 1e-9)
}
