package domain

import "time"

// DailyMetric is one day's productivity telemetry for a user.
type DailyMetric struct {
	ID                 string
	UserID             string
	Day                time.Time
	ProductivityRating float64
	StudyTimeMinutes   int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UpcomingDeadline is a task due in the near-term window.
type UpcomingDeadline struct {
	Title    string
	DueDate  time.Time
	Priority TaskPriority
}

// DifficultTopic is a hard syllabus topic with low completion.
type DifficultTopic struct {
	Topic         string
	Subject       string
	Difficulty    int
	CompletionPct float64
}

// PerformanceSnapshot aggregates recent telemetry for recommendation
// derivation. Average fields are nil when no samples exist in the window.
type PerformanceSnapshot struct {
	AvgProductivityRating *float64
	AvgStudyTimeMinutes   *float64
	OverdueTaskCount      int
	UpcomingDeadlines     []UpcomingDeadline
	DifficultTopics       []DifficultTopic
}
