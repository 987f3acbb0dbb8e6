package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/avermeer/lectio/internal/contract"
)

// FormatPlan formats a generated study plan into a styled CLI string.
func FormatPlan(plan *contract.StudyPlan) string {
	var b strings.Builder

	summary := fmt.Sprintf("Study Plan (%d days, %s total)",
		plan.TotalDays, FormatHours(plan.TotalStudyHours))
	b.WriteString(Header(summary))
	b.WriteString("\n\n")

	if len(plan.DailyPlans) == 0 {
		b.WriteString(Dim("Nothing to schedule in this window."))
		b.WriteString("\n")
		return RenderBox("Plan", b.String())
	}

	for i, day := range plan.DailyPlans {
		dayLabel := day.Date
		if parsed, err := time.Parse("2006-01-02", day.Date); err == nil {
			dayLabel = parsed.Format("Mon Jan 2")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			Bold(dayLabel),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatHours(day.TotalHours))),
		))

		for _, sess := range day.Sessions {
			window := fmt.Sprintf("%s–%s",
				sess.StartTime.Format("15:04"),
				sess.EndTime.Format("15:04"),
			)
			line := fmt.Sprintf("   %s  %s",
				StyleGreen.Render(window),
				StyleFg.Render(sess.Title),
			)
			if sess.Subject != "" {
				line += "  " + StylePurple.Render(sess.Subject)
			}
			b.WriteString(line + "\n")
		}

		if i < len(plan.DailyPlans)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Plan", b.String())
}
