package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/runoshun/kanban/internal/view"
)

// RenderPlain renders tree as an uncoloured table, one row per task,
// followed by a per-column summary line. Columns are padded by display
// width so wide characters line up.
func RenderPlain(tree view.Tree) string {
	headers := []string{"#", "STATUS", "NAME", "ASSIGNEE", "MANDAYS"}
	var rows [][]string
	for _, col := range tree.Columns {
		for _, card := range col.Cards {
			rows = append(rows, []string{
				strconv.Itoa(card.Index),
				col.Label,
				card.Name,
				card.Assignee,
				card.Mandays,
			})
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}

	summary := make([]string, 0, len(tree.Columns))
	for _, col := range tree.Columns {
		summary = append(summary, fmt.Sprintf("%s: %d", col.Label, col.Count))
	}
	fmt.Fprintf(&b, "\n%s (total %d)\n", strings.Join(summary, ", "), tree.Total())
	return b.String()
}
