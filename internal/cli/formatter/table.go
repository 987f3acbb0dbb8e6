package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable renders headers and rows as an aligned table with a dim
// separator under the header. Cell widths are measured with lipgloss.Width
// so styled cells line up with plain ones.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder

	styledHeaders := make([]string, len(headers))
	for i, h := range headers {
		styledHeaders[i] = StyleHeader.Render(h)
	}
	writeTableRow(&b, styledHeaders, widths)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeTableRow(&b, rule, widths)

	for _, row := range rows {
		writeTableRow(&b, row, widths)
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeTableRow(b *strings.Builder, cells []string, widths []int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cell)
		if i == len(widths)-1 {
			break
		}
		if pad := w - lipgloss.Width(cell); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(strings.Repeat(" ", tableColGap))
	}
	b.WriteString("\n")
}
