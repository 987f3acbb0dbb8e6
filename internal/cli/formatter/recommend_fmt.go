package formatter

import (
	"fmt"
	"strings"

	"github.com/avermeer/lectio/internal/domain"
)

// FormatRecommendations formats engine output into a styled CLI string.
func FormatRecommendations(recs []domain.Recommendation) string {
	var b strings.Builder

	b.WriteString(Header("Recommendations"))
	b.WriteString("\n\n")

	if len(recs) == 0 {
		b.WriteString(StyleGreen.Render("All clear — no recommendations right now."))
		b.WriteString("\n")
		return RenderBox("Study Coach", b.String())
	}

	for i, rec := range recs {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(rec.Title),
			PriorityBadge(rec.Priority),
		))
		b.WriteString(fmt.Sprintf("   %s\n", Dim(rec.Description)))
		if rec.Action != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n",
				StyleYellow.Render("NEXT:"),
				StyleFg.Render(rec.Action),
			))
		}
		if i < len(recs)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Study Coach", b.String())
}
