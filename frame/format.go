package frame

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	ansiUnderline = "\033[4m"
	ansiReset     = "\033[0m"
)

// String renders t as an aligned text grid: a header line with the column
// names, then one line per row starting with its label.
func (t *Table) String() string {
	return t.Render(false)
}

// Render is like String. If styled is set the header line is underlined
// with ANSI escapes.
func (t *Table) Render(styled bool) string {
	grid := make([][]string, t.NRow()+1)
	grid[0] = append([]string{""}, t.names...)
	for i := range t.NRow() {
		line := make([]string, 0, t.NCol()+1)
		line = append(line, fmt.Sprint(t.labels[i]))
		for _, name := range t.names {
			line = append(line, fmt.Sprint(t.cols[name][i]))
		}
		grid[i+1] = line
	}

	widths := make([]int, t.NCol()+1)
	for _, line := range grid {
		for j, cell := range line {
			widths[j] = max(widths[j], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for i, line := range grid {
		if i == 0 && styled {
			sb.WriteString(ansiUnderline)
		}
		for j, cell := range line {
			if j > 0 {
				sb.WriteByte(' ')
			}
			// labels are left aligned, values right aligned
			if j == 0 {
				sb.WriteString(runewidth.FillRight(cell, widths[j]))
			} else {
				sb.WriteString(runewidth.FillLeft(cell, widths[j]))
			}
		}
		if i == 0 && styled {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
