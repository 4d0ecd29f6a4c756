package cli

import (
	"strings"

	"github.com/fatih/color"
)

// Table represents a simple table formatter with dynamic column widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
	header  func(a ...any) string
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
		header:  color.New(color.Bold).SprintFunc(),
	}
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	newRow := make([]string, len(t.headers))
	copy(newRow, row)
	t.rows = append(t.rows, newRow)
}

// Lines formats the table and returns the header, separator and data lines.
func (t *Table) Lines() []string {
	if len(t.headers) == 0 {
		return nil
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], len(cell))
		}
	}

	gap := strings.Repeat(" ", t.padding)
	lines := make([]string, 0, len(t.rows)+2)

	headerParts := make([]string, len(t.headers))
	sepParts := make([]string, len(t.headers))
	for i, h := range t.headers {
		// Pad before styling so escape codes do not count towards the width.
		headerParts[i] = t.header(padRight(h, colWidths[i]))
		sepParts[i] = strings.Repeat("-", colWidths[i])
	}
	lines = append(lines, strings.Join(headerParts, gap), strings.Join(sepParts, gap))

	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = padRight(cell, colWidths[i])
		}
		lines = append(lines, strings.Join(parts, gap))
	}
	return lines
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	lines := t.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
