package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Abhishek2312Singh/complain-management-system/internal/view"
)

const (
	maxCellWidth = 28
	cellGap      = 2
)

// renderTable lays out a plain column-aligned table. selected highlights one
// data row (-1 for none). Cells wider than maxCellWidth are truncated with
// an ellipsis rather than wrapping, to keep rows on one line.
func renderTable(columns []string, rows [][]string, selected int) string {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = ansi.StringWidth(col)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(columns, widths, headerCellStyle.Render))
	b.WriteString("\n")
	for idx, row := range rows {
		render := cellStyle.Render
		if idx == selected {
			render = selectedRowStyle.Render
		}
		b.WriteString(renderRow(row, widths, render))
		if idx < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderRow(cells []string, widths []int, render func(...string) string) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = ansi.Truncate(cell, widths[i], "…")
		pad := widths[i] - ansi.StringWidth(cell)
		parts[i] = cell + strings.Repeat(" ", pad)
	}
	return render(strings.Join(parts, strings.Repeat(" ", cellGap)))
}

// recordCells renders one normalized record under the current column set.
// The status blanking rules are re-applied on every render, never cached.
func recordCells(r view.Record, showManager bool) []string {
	cells := []string{r.Number, r.Reporter, r.Mobile, r.Address, r.Text, r.Date, r.Status}
	if showManager {
		cells = append(cells,
			view.ManagerCell(r.Status, r.ManagerName),
			view.ManagerCell(r.Status, r.ManagerEmail),
			view.ManagerCell(r.Status, r.ManagerMobile),
			view.ResponseCell(r.Status, r.Response),
		)
	}
	return cells
}
