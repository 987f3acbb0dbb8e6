// Package recommend derives actionable study recommendations from a
// performance snapshot. The engine is a pure rule evaluator: no I/O, no
// retained state, identical output for identical input.
package recommend

import (
	"fmt"

	"github.com/avermeer/lectio/internal/domain"
)

// Thresholds for the trigger rules.
const (
	lowRatingThreshold    = 3.0
	lowStudyTimeThreshold = 120.0
)

// Derive evaluates the five trigger rules in fixed order and returns one
// recommendation per satisfied rule. The list is not re-sorted by
// severity; rule order is the contract. A healthy snapshot yields an
// empty list.
func Derive(s domain.PerformanceSnapshot) []domain.Recommendation {
	var recs []domain.Recommendation

	if s.AvgProductivityRating != nil && *s.AvgProductivityRating < lowRatingThreshold {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecPerformance,
			Priority: domain.RecPriorityHigh,
			Title:    "Improve study effectiveness",
			Description: fmt.Sprintf(
				"Your average productivity rating is %.1f out of 5 over the last week.",
				*s.AvgProductivityRating),
			Action: "Try shorter, focused sessions and remove distractions during study time",
		})
	}

	if s.AvgStudyTimeMinutes != nil && *s.AvgStudyTimeMinutes < lowStudyTimeThreshold {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecTime,
			Priority: domain.RecPriorityMedium,
			Title:    "Increase daily study time",
			Description: fmt.Sprintf(
				"You are averaging %.0f minutes of study per day.",
				*s.AvgStudyTimeMinutes),
			Action: "Block out at least two hours of study time each day",
		})
	}

	if s.OverdueTaskCount > 0 {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecDeadline,
			Priority: domain.RecPriorityUrgent,
			Title:    "Clear overdue tasks",
			Description: fmt.Sprintf(
				"You have %d overdue task(s) that need attention.",
				s.OverdueTaskCount),
			Action: "Reschedule or complete overdue tasks before taking on new work",
		})
	}

	if len(s.UpcomingDeadlines) > 0 {
		next := s.UpcomingDeadlines[0]
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecPlanning,
			Priority: domain.RecPriorityHigh,
			Title:    "Prepare for upcoming deadlines",
			Description: fmt.Sprintf(
				"%d deadline(s) fall within the next week, starting with '%s' on %s.",
				len(s.UpcomingDeadlines), next.Title, next.DueDate.Format("2006-01-02")),
			Action: "Generate a study plan that front-loads work due soonest",
		})
	}

	if len(s.DifficultTopics) > 0 {
		first := s.DifficultTopics[0]
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecDifficulty,
			Priority: domain.RecPriorityMedium,
			Title:    "Focus on difficult topics",
			Description: fmt.Sprintf(
				"%d difficult topic(s) have low completion, starting with '%s' (%s).",
				len(s.DifficultTopics), first.Topic, first.Subject),
			Action: "Schedule extra sessions for high-difficulty topics while energy is high",
		})
	}

	return recs
}
