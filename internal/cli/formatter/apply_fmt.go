package formatter

import (
	"fmt"
	"strings"

	"github.com/avermeer/lectio/internal/domain"
)

// FormatApplied formats the calendar events created by applying a plan.
func FormatApplied(events []*domain.CalendarBlock) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Applied: %d calendar event(s) created", len(events))))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		window := fmt.Sprintf("%s–%s",
			e.StartTime.Format("15:04"),
			e.EndTime.Format("15:04"),
		)
		rows = append(rows, []string{
			e.StartTime.Format("Mon Jan 2"),
			StyleGreen.Render(window),
			StyleFg.Render(e.Title),
			TruncID(e.ID),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "TIME", "SESSION", "ID"}, rows))

	return RenderBox("Calendar", b.String())
}
