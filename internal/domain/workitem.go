package domain

import "time"

// WorkItem is the unified schedulable unit the planner operates on.
// Tasks and syllabus topics are both normalized into this shape.
// WorkItems are immutable during plan generation; progress accrued while
// allocating sessions lives in the planner's ledger, not here.
type WorkItem struct {
	ID            string
	Kind          WorkItemKind
	Title         string
	Subject       string
	TotalHours    float64
	PriorityScore int
	Difficulty    int
	DueDate       *time.Time
}

// FromTask normalizes a task into a work item.
func FromTask(t *Task) WorkItem {
	return WorkItem{
		ID:            t.ID,
		Kind:          KindTask,
		Title:         t.Title,
		Subject:       t.Subject,
		TotalHours:    t.EstimatedHours,
		PriorityScore: t.Priority.Score(),
		Difficulty:    t.Difficulty,
		DueDate:       t.DueDate,
	}
}

// FromTopic normalizes a syllabus topic into a work item.
func FromTopic(t *SyllabusTopic) WorkItem {
	return WorkItem{
		ID:            t.ID,
		Kind:          KindTopic,
		Title:         t.Title,
		Subject:       t.Subject,
		TotalHours:    t.EstimatedHours,
		PriorityScore: t.PriorityScore(),
		Difficulty:    t.Difficulty,
		DueDate:       t.DueDate,
	}
}
