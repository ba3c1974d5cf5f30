package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/ttypr/internal/buffer"
	"github.com/verte-zerg/ttypr/internal/model"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes colours one buffered line by its status tags. cursorIndex
// is the position of the next keystroke within the line, or -1 when the
// cursor is elsewhere.
func buildStyledRunes(line buffer.Line, cursorIndex int) []styledRune {
	wordStart, wordEnd, hasWord := wordAt(line.Target, cursorIndex)

	out := make([]styledRune, 0, len(line.Target))
	for i, target := range line.Target {
		displayed := target
		style := pendingStyle
		switch line.Status[i] {
		case model.Correct:
			style = correctStyle
		case model.Incorrect:
			style = incorrectStyle
			if target == ' ' {
				displayed = '•'
			}
		default:
			if hasWord && i >= wordStart && i < wordEnd {
				style = currentWordStyle
			}
		}
		if i == cursorIndex {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

// wordAt returns the bounds of the word under i, or of the next word when i
// sits on a space.
func wordAt(target []rune, i int) (start, end int, ok bool) {
	if i < 0 {
		return 0, 0, false
	}
	for i < len(target) && target[i] == ' ' {
		i++
	}
	if i >= len(target) {
		return 0, 0, false
	}
	start = i
	for start > 0 && target[start-1] != ' ' {
		start--
	}
	end = i
	for end < len(target) && target[end] != ' ' {
		end++
	}
	return start, end, true
}

// renderLine draws a line, wrapping it at spaces when it is wider than width.
func renderLine(line buffer.Line, cursorIndex, width int) string {
	runes := buildStyledRunes(line, cursorIndex)
	if width > 0 && lineWidthOf(runes) > width {
		return wrapStyledRunes(runes, width)
	}
	return renderStyledRunes(runes)
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks runes into rows no wider than width, preferring to
// break at the last space. The space at a break is dropped.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var rows []string
	start, rowWidth, lastSpace := 0, 0, -1
	for i, item := range runes {
		if rowWidth+item.width > width && i > start {
			cut, next := i, i
			if lastSpace >= start {
				cut, next = lastSpace, lastSpace+1
			}
			rows = append(rows, renderStyledRunes(runes[start:cut]))
			start = next
			rowWidth = lineWidthOf(runes[start:i])
			lastSpace = -1
			if idx := lastSpaceIndex(runes[start:i]); idx >= 0 {
				lastSpace = start + idx
			}
		}
		rowWidth += item.width
		if item.isSpace {
			lastSpace = i
		}
	}
	rows = append(rows, renderStyledRunes(runes[start:]))
	return strings.Join(rows, "\n")
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
