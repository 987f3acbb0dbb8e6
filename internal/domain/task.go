package domain

import "time"

// Task is a user-created piece of schedulable work with an explicit
// priority label and an effort estimate.
type Task struct {
	ID             string
	UserID         string
	Title          string
	Description    string
	Subject        string
	Status         TaskStatus
	Priority       TaskPriority
	EstimatedHours float64
	Difficulty     int
	DueDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Schedulable reports whether the task is still open for planning.
func (t *Task) Schedulable() bool {
	return t.Status != TaskCompleted && t.Status != TaskCancelled
}

// SyllabusTopic is a unit of course material tracked by completion
// percentage rather than an explicit priority.
type SyllabusTopic struct {
	ID             string
	UserID         string
	CourseID       string
	Title          string
	Subject        string
	EstimatedHours float64
	Difficulty     int
	CompletionPct  float64
	Completed      bool
	DueDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PriorityScore weights topics furthest from completion like a
// medium-priority task; topics at least half done rank as low.
func (t *SyllabusTopic) PriorityScore() int {
	if t.CompletionPct < 50 {
		return 3
	}
	return 2
}
