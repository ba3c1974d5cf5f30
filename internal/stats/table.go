package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTable lays out rows in columns padded to the widest cell.
func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = padCell(cell, widths[i], rightAlignCols[i])
	}
	return strings.Join(cells, " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
