package tui

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/session"
	"github.com/verte-zerg/ttypr/internal/stats"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const firstRunText = `ttypr shows three lines of practice text. Type them and the text scrolls up one line each time you finish the second line.

The app starts in the menu. Press i to start typing and esc to get back to the menu. Press o in the menu to switch between random characters, random words and your own text.

Words come from words.txt and text from text.txt in the config directory. Without them you can pick the built-in sets.

Press h in the menu for all keys.

Press enter to continue.`

const helpText = `Correct characters turn white and mistakes turn red. Mistyped characters are counted by the character you should have typed and listed under most mistyped. In Text mode your position is saved on exit and restored on the next start.`

// wrapText wraps every paragraph of s at width.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// mistakeRows renders the ledger as char, count, share and stored accuracy
// rows.
func mistakeRows(mistakes []model.Mistake, history stats.History) []table.Row {
	total := 0
	for _, m := range mistakes {
		total += m.Count
	}
	rows := make([]table.Row, 0, len(mistakes))
	for _, m := range mistakes {
		accuracy := "-"
		if acc, ok := history.CharAccuracy(m.Char); ok {
			accuracy = fmt.Sprintf("%.1f%%", acc*100)
		}
		rows = append(rows, table.Row{
			stats.CharLabel(m.Char),
			fmt.Sprintf("%d", m.Count),
			fmt.Sprintf("%.2f%%", stats.Share(m.Count, total)*100),
			accuracy,
		})
	}
	return rows
}

func buildMistakeTable(mistakes []model.Mistake, history stats.History, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Char", Width: 8},
		{Title: "Count", Width: 7},
		{Title: "Share", Width: 8},
		{Title: "Accuracy", Width: 9},
	}
	// modal chrome: border, padding, title, hint
	rowsHeight := height - 12
	if rowsHeight < 3 {
		rowsHeight = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(mistakeRows(mistakes, history)),
		table.WithHeight(rowsHeight),
		table.WithFocused(true),
	)
	tableWidth := 0
	for _, c := range columns {
		tableWidth += c.Width + 1
	}
	if width > 0 && width < tableWidth {
		tableWidth = width
	}
	t.SetWidth(tableWidth)
	t.SetStyles(mistakeTableStyles())
	return t
}

func mistakeTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

// copyMistakes puts the plain-text mistake report on the system clipboard.
func (m *Model) copyMistakes() {
	ledger := m.sess.State().Mistyped
	var buf bytes.Buffer
	if err := stats.RenderMistakeTable(&buf, ledger, len(ledger)); err != nil {
		logErrf("failed to render mistakes: %v\n", err)
		return
	}
	if err := writeClipboard(buf.String()); err != nil {
		logErrf("failed to copy mistakes: %v\n", err)
		return
	}
	m.notices.Show(session.NoticeCopied, m.now())
}
