package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avermeer/lectio/internal/cli/formatter"
	"github.com/avermeer/lectio/internal/service"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage schedulable tasks",
	}
	cmd.AddCommand(newTaskAddCmd(app))
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, description, subject, priority, due string
	var hours float64
	var difficulty int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.NewTaskInput{
				Title:          title,
				Description:    description,
				Subject:        subject,
				Priority:       priority,
				EstimatedHours: hours,
				Difficulty:     difficulty,
			}
			if due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				in.DueDate = &parsed
			}

			task, err := app.Catalog.AddTask(context.Background(), app.UserID, in)
			if err != nil {
				return err
			}
			fmt.Printf("Created task %s: %s\n", formatter.TruncID(task.ID), task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject the task belongs to")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: urgent, high, medium, or low")
	cmd.Flags().Float64Var(&hours, "hours", 1, "Estimated hours of work")
	cmd.Flags().IntVar(&difficulty, "difficulty", 3, "Difficulty from 1 to 5")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTopicCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage syllabus topics",
	}
	cmd.AddCommand(newTopicAddCmd(app))
	return cmd
}

func newTopicAddCmd(app *App) *cobra.Command {
	var title, subject, course, due string
	var hours, completion float64
	var difficulty int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a syllabus topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.NewTopicInput{
				CourseID:       course,
				Title:          title,
				Subject:        subject,
				EstimatedHours: hours,
				Difficulty:     difficulty,
				CompletionPct:  completion,
			}
			if due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing --due: %w", err)
				}
				in.DueDate = &parsed
			}

			topic, err := app.Catalog.AddTopic(context.Background(), app.UserID, in)
			if err != nil {
				return err
			}
			fmt.Printf("Created topic %s: %s\n", formatter.TruncID(topic.ID), topic.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Topic title")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject the topic belongs to")
	cmd.Flags().StringVar(&course, "course", "", "Course ID")
	cmd.Flags().Float64Var(&hours, "hours", 1, "Estimated hours of work")
	cmd.Flags().IntVar(&difficulty, "difficulty", 3, "Difficulty from 1 to 5")
	cmd.Flags().Float64Var(&completion, "completion", 0, "Completion percentage, 0-100")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}
	cmd.AddCommand(newEventAddCmd(app))
	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var title, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fixed calendar event",
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("parsing --start: %w", err)
			}
			endAt, err := time.Parse(time.RFC3339, end)
			if err != nil {
				return fmt.Errorf("parsing --end: %w", err)
			}

			event, err := app.Catalog.AddEvent(context.Background(), app.UserID, service.NewEventInput{
				Title:     title,
				StartTime: startAt,
				EndTime:   endAt,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created event %s: %s\n", formatter.TruncID(event.ID), event.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&start, "start", "", "Start time (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "End time (RFC 3339)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
