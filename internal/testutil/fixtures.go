package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/avermeer/lectio/internal/domain"
)

// Task options

type TaskOption func(*domain.Task)

func WithTaskUser(userID string) TaskOption {
	return func(t *domain.Task) { t.UserID = userID }
}

func WithTaskPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) { t.Priority = p }
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithTaskHours(hours float64) TaskOption {
	return func(t *domain.Task) { t.EstimatedHours = hours }
}

func WithTaskDue(d time.Time) TaskOption {
	return func(t *domain.Task) { t.DueDate = &d }
}

func WithTaskSubject(subject string) TaskOption {
	return func(t *domain.Task) { t.Subject = subject }
}

func WithTaskDifficulty(d int) TaskOption {
	return func(t *domain.Task) { t.Difficulty = d }
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:             uuid.NewString(),
		UserID:         "user-1",
		Title:          title,
		Subject:        "math",
		Status:         domain.TaskPending,
		Priority:       domain.PriorityMedium,
		EstimatedHours: 2,
		Difficulty:     3,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Topic options

type TopicOption func(*domain.SyllabusTopic)

func WithTopicUser(userID string) TopicOption {
	return func(t *domain.SyllabusTopic) { t.UserID = userID }
}

func WithTopicCompletion(pct float64) TopicOption {
	return func(t *domain.SyllabusTopic) {
		t.CompletionPct = pct
		t.Completed = pct >= 100
	}
}

func WithTopicHours(hours float64) TopicOption {
	return func(t *domain.SyllabusTopic) { t.EstimatedHours = hours }
}

func WithTopicDifficulty(d int) TopicOption {
	return func(t *domain.SyllabusTopic) { t.Difficulty = d }
}

func WithTopicDue(d time.Time) TopicOption {
	return func(t *domain.SyllabusTopic) { t.DueDate = &d }
}

func WithTopicSubject(subject string) TopicOption {
	return func(t *domain.SyllabusTopic) { t.Subject = subject }
}

func NewTestTopic(title string, opts ...TopicOption) *domain.SyllabusTopic {
	now := time.Now().UTC()
	topic := &domain.SyllabusTopic{
		ID:             uuid.NewString(),
		UserID:         "user-1",
		CourseID:       "course-1",
		Title:          title,
		Subject:        "math",
		EstimatedHours: 3,
		Difficulty:     3,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(topic)
	}
	return topic
}

// Event options

type EventOption func(*domain.CalendarBlock)

func WithEventUser(userID string) EventOption {
	return func(e *domain.CalendarBlock) { e.UserID = userID }
}

func WithEventWorkItem(id string) EventOption {
	return func(e *domain.CalendarBlock) { e.WorkItemID = &id }
}

func NewTestEvent(title string, start, end time.Time, opts ...EventOption) *domain.CalendarBlock {
	event := &domain.CalendarBlock{
		ID:        uuid.NewString(),
		UserID:    "user-1",
		Title:     title,
		StartTime: start,
		EndTime:   end,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(event)
	}
	return event
}

// Metric options

func NewTestMetric(userID string, day time.Time, rating float64, minutes int) *domain.DailyMetric {
	now := time.Now().UTC()
	return &domain.DailyMetric{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Day:                day,
		ProductivityRating: rating,
		StudyTimeMinutes:   minutes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
