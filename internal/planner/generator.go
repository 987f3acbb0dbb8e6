package planner

import (
	"math"
	"time"

	"github.com/avermeer/lectio/internal/contract"
	"github.com/avermeer/lectio/internal/domain"
)

// Session length bounds in hours. A remainder at or below the floor is
// never emitted standalone; it waits for a day with more room or stays
// unscheduled at window end.
const (
	MinSessionHours = 0.5
	MaxSessionHours = 2.5
)

// Sessions are packed from this hour of the day onward.
const dayStartHour = 9

// Ledger tracks hours allocated per work item across the day loop. It is
// local to one generation run; input work items are never mutated.
type Ledger map[string]float64

// Remaining returns the unscheduled hours left on the given item.
func (l Ledger) Remaining(item domain.WorkItem) float64 {
	return item.TotalHours - l[item.ID]
}

// Done reports whether the item has been fully scheduled.
func (l Ledger) Done(item domain.WorkItem) bool {
	return l[item.ID] >= item.TotalHours
}

// GeneratePlan walks the planning window one day at a time, allocating
// sessions from the sorted queue against each day's remaining capacity.
// The walk is a deterministic greedy pass: items that do not fit are
// left partially or fully unscheduled, which is a valid outcome rather
// than an error. Days with zero capacity or nothing scheduled are
// omitted from the result entirely.
func GeneratePlan(
	items []domain.WorkItem,
	blocks []domain.CalendarBlock,
	startDate, endDate time.Time,
	dailyStudyHours float64,
	includeWeekends bool,
) contract.StudyPlan {
	ledger := make(Ledger, len(items))
	var dailyPlans []contract.DayPlan
	totalHours := 0.0

	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		if !includeWeekends && isWeekend(day) {
			continue
		}

		available := math.Max(0, AvailableHours(day, dailyStudyHours, blocks))
		if available <= 0 {
			continue
		}

		sessions, scheduledToday := allocateDay(day, available, items, ledger)
		if scheduledToday <= 0 {
			continue
		}

		dailyPlans = append(dailyPlans, contract.DayPlan{
			Date:       day.Format("2006-01-02"),
			TotalHours: scheduledToday,
			Sessions:   sessions,
		})
		totalHours += scheduledToday
	}

	return contract.StudyPlan{
		TotalDays:       len(dailyPlans),
		TotalStudyHours: totalHours,
		DailyPlans:      dailyPlans,
	}
}

// allocateDay walks the queue in order and carves sessions out of the
// day's capacity. An item whose next session would not clear the minimum
// length is skipped for today but stays eligible on later days.
func allocateDay(
	day time.Time,
	available float64,
	items []domain.WorkItem,
	ledger Ledger,
) ([]contract.Session, float64) {
	var sessions []contract.Session
	scheduledToday := 0.0

	for _, item := range items {
		if scheduledToday >= available {
			break
		}
		if ledger.Done(item) {
			continue
		}

		hours := math.Min(ledger.Remaining(item), math.Min(available-scheduledToday, MaxSessionHours))
		if hours <= MinSessionHours {
			continue
		}

		start := sessionStart(day, scheduledToday)
		id := item.ID
		sessions = append(sessions, contract.Session{
			Title:      item.Title,
			StartTime:  start,
			EndTime:    start.Add(hoursToDuration(hours)),
			WorkItemID: &id,
			Subject:    item.Subject,
			Difficulty: item.Difficulty,
			Hours:      hours,
		})

		ledger[item.ID] += hours
		scheduledToday += hours
	}

	return sessions, scheduledToday
}

// sessionStart places a session at 09:00 plus the hours already
// scheduled today, so sessions within a day never overlap.
func sessionStart(day time.Time, scheduledToday float64) time.Time {
	base := time.Date(day.Year(), day.Month(), day.Day(), dayStartHour, 0, 0, 0, day.Location())
	return base.Add(hoursToDuration(scheduledToday))
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h * 60)) * time.Minute
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
