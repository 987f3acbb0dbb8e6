package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avermeer/lectio/internal/domain"
	"github.com/avermeer/lectio/internal/repository"
)

// NewTaskInput carries the fields needed to create a task.
type NewTaskInput struct {
	Title          string
	Description    string
	Subject        string
	Priority       string
	EstimatedHours float64
	Difficulty     int
	DueDate        *time.Time
}

// NewTopicInput carries the fields needed to create a syllabus topic.
type NewTopicInput struct {
	CourseID       string
	Title          string
	Subject        string
	EstimatedHours float64
	Difficulty     int
	CompletionPct  float64
	DueDate        *time.Time
}

// NewEventInput carries the fields needed to create a calendar event.
type NewEventInput struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

type catalogService struct {
	tasks  repository.TaskRepo
	topics repository.TopicRepo
	events repository.EventRepo
	now    func() time.Time
}

// NewCatalogService wires a CatalogService over the given stores.
func NewCatalogService(tasks repository.TaskRepo, topics repository.TopicRepo, events repository.EventRepo) CatalogService {
	return &catalogService{
		tasks:  tasks,
		topics: topics,
		events: events,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *catalogService) AddTask(ctx context.Context, userID string, in NewTaskInput) (*domain.Task, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("task title is required")
	}
	if in.EstimatedHours <= 0 {
		return nil, fmt.Errorf("estimated hours must be greater than 0")
	}
	priority := domain.TaskPriority(in.Priority)
	if in.Priority == "" {
		priority = domain.PriorityMedium
	} else if !domain.ValidTaskPriorities[in.Priority] {
		return nil, fmt.Errorf("unknown priority %q", in.Priority)
	}

	now := s.now()
	task := &domain.Task{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          in.Title,
		Description:    in.Description,
		Subject:        in.Subject,
		Status:         domain.TaskPending,
		Priority:       priority,
		EstimatedHours: in.EstimatedHours,
		Difficulty:     in.Difficulty,
		DueDate:        in.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return task, nil
}

func (s *catalogService) AddTopic(ctx context.Context, userID string, in NewTopicInput) (*domain.SyllabusTopic, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("topic title is required")
	}
	if in.EstimatedHours <= 0 {
		return nil, fmt.Errorf("estimated hours must be greater than 0")
	}
	if in.CompletionPct < 0 || in.CompletionPct > 100 {
		return nil, fmt.Errorf("completion percentage must be between 0 and 100")
	}

	now := s.now()
	topic := &domain.SyllabusTopic{
		ID:             uuid.NewString(),
		UserID:         userID,
		CourseID:       in.CourseID,
		Title:          in.Title,
		Subject:        in.Subject,
		EstimatedHours: in.EstimatedHours,
		Difficulty:     in.Difficulty,
		CompletionPct:  in.CompletionPct,
		Completed:      in.CompletionPct >= 100,
		DueDate:        in.DueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.topics.Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("creating topic: %w", err)
	}
	return topic, nil
}

func (s *catalogService) AddEvent(ctx context.Context, userID string, in NewEventInput) (*domain.CalendarBlock, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("event title is required")
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, fmt.Errorf("event end must be after start")
	}

	event := &domain.CalendarBlock{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		CreatedAt: s.now(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return event, nil
}
