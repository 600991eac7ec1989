package cli

import (
	"strings"
)

// table is a minimal column-aligned text table for report output. Columns
// grow to their widest cell unless a wrap width caps them.
type table struct {
	headers []string
	rows    [][]string
	wrapAt  []int // per-column wrap width, 0 = unlimited
}

func newTable(headers ...string) *table {
	return &table{
		headers: headers,
		wrapAt:  make([]int, len(headers)),
	}
}

// wrapColumn caps a column's width; longer cells wrap onto extra lines.
func (t *table) wrapColumn(col, width int) {
	if col >= 0 && col < len(t.wrapAt) {
		t.wrapAt[col] = width
	}
}

func (t *table) addRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *table) render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap each cell up front so width calculation sees final lines.
	wrapped := make([][][]string, len(t.rows))
	for i, row := range t.rows {
		wrapped[i] = make([][]string, len(row))
		for j, cell := range row {
			wrapped[i][j] = wrapWords(cell, t.wrapAt[j])
		}
	}

	widths := make([]int, len(t.headers))
	for j, h := range t.headers {
		widths[j] = len(h)
	}
	for _, row := range wrapped {
		for j, lines := range row {
			for _, line := range lines {
				if len(line) > widths[j] {
					widths[j] = len(line)
				}
			}
		}
	}

	var sb strings.Builder
	writeLine := func(cells []string) {
		for j, cell := range cells {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(cell)
			if j < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			}
		}
		sb.WriteString("\n")
	}

	writeLine(t.headers)
	seps := make([]string, len(t.headers))
	for j, w := range widths {
		seps[j] = strings.Repeat("-", w)
	}
	writeLine(seps)

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for line := 0; line < height; line++ {
			cells := make([]string, len(t.headers))
			for j, lines := range row {
				if line < len(lines) {
					cells[j] = lines[line]
				}
			}
			writeLine(cells)
		}
	}

	return sb.String()
}

// wrapWords breaks text at word boundaries to fit width. Words longer than
// the width are split mid-word. A width of 0 disables wrapping.
func wrapWords(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
