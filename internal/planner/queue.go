package planner

import (
	"sort"

	"github.com/avermeer/lectio/internal/domain"
)

// BuildQueue normalizes open tasks and incomplete topics into a single
// stably sorted work-item queue. Tasks keep their collection order ahead
// of topics when all sort keys tie.
func BuildQueue(tasks []domain.Task, topics []domain.SyllabusTopic, prioritizeDue bool) []domain.WorkItem {
	items := make([]domain.WorkItem, 0, len(tasks)+len(topics))
	for i := range tasks {
		items = append(items, domain.FromTask(&tasks[i]))
	}
	for i := range topics {
		items = append(items, domain.FromTopic(&topics[i]))
	}
	SortQueue(items, prioritizeDue)
	return items
}

// SortQueue applies the canonical ordering in a single stable pass:
//  1. Items with a due date before items without one.
//  2. Among dated items, ascending by due date.
//  3. Ties broken by descending priority score.
//
// Items with identical keys keep their original relative order. When
// prioritizeDue is false the due-date tiers are skipped and the queue
// orders by descending priority score alone.
func SortQueue(items []domain.WorkItem, prioritizeDue bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		if prioritizeDue {
			if (a.DueDate == nil) != (b.DueDate == nil) {
				return a.DueDate != nil
			}
			if a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate) {
				return a.DueDate.Before(*b.DueDate)
			}
		}

		return a.PriorityScore > b.PriorityScore
	})
}
