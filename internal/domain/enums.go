package domain

type WorkItemKind string

const (
	KindTask  WorkItemKind = "task"
	KindTopic WorkItemKind = "topic"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// ValidTaskPriorities is the canonical set of accepted priority labels.
var ValidTaskPriorities = map[string]bool{
	"urgent": true, "high": true, "medium": true, "low": true,
}

// Score maps a priority label to its numeric scheduling weight.
// Unknown labels fall back to the medium weight.
func (p TaskPriority) Score() int {
	switch p {
	case PriorityUrgent:
		return 5
	case PriorityHigh:
		return 4
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

type RecommendationType string

const (
	RecPerformance RecommendationType = "performance"
	RecTime        RecommendationType = "time"
	RecDeadline    RecommendationType = "deadline"
	RecPlanning    RecommendationType = "planning"
	RecDifficulty  RecommendationType = "difficulty"
)

type RecommendationPriority string

const (
	RecPriorityLow    RecommendationPriority = "low"
	RecPriorityMedium RecommendationPriority = "medium"
	RecPriorityHigh   RecommendationPriority = "high"
	RecPriorityUrgent RecommendationPriority = "urgent"
)
