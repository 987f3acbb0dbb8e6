package planner

import (
	"time"

	"github.com/avermeer/lectio/internal/domain"
)

// AvailableHours computes the study capacity left on day after
// subtracting every calendar block that starts on that day. The result
// may be negative when the day is overcommitted; callers clamp to zero
// before allocating sessions.
func AvailableHours(day time.Time, dailyStudyHours float64, blocks []domain.CalendarBlock) float64 {
	committed := 0.0
	for i := range blocks {
		if !SameDate(blocks[i].StartTime, day) {
			continue
		}
		committed += blocks[i].DurationHours()
	}
	return dailyStudyHours - committed
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
