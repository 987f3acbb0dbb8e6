package domain

import "time"

// CalendarBlock is an existing calendar commitment. Blocks are read-only
// inputs to the planner; plan application creates new ones.
type CalendarBlock struct {
	ID         string
	UserID     string
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	WorkItemID *string
	CreatedAt  time.Time
}

// DurationHours returns the block length in fractional hours.
func (b *CalendarBlock) DurationHours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}
