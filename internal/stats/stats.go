package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/ttypr/internal/model"
)

// SessionMetrics computes WPM, CPM, and accuracy for a session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// RenderSummary prints the metrics of a finished run.
func RenderSummary(w io.Writer, run model.SessionStats) error {
	if run.CorrectNonSpace+run.IncorrectNonSpace == 0 {
		_, err := fmt.Fprintln(w, "Nothing typed this time.")
		return err
	}
	wpm, cpm, acc := SessionMetrics(run.CorrectNonSpace, run.IncorrectNonSpace, run.DurationMs)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Mode: %s\n", run.Mode); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "WPM: %.2f\n", wpm); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "CPM: %.2f\n", cpm); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.2f%%\n", acc*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderMistakeTable prints the top n ledger entries with their share.
func RenderMistakeTable(w io.Writer, ledger map[string]int, n int) error {
	top := TopMistakes(ledger, n)
	if len(top) == 0 {
		_, err := fmt.Fprintln(w, "No mistyped characters recorded.")
		return err
	}
	total := TotalMistakes(ledger)
	if _, err := fmt.Fprintln(w, "Most Mistyped"); err != nil {
		return err
	}
	headers := []string{"Char", "Count", "Share"}
	rows := make([][]string, 0, len(top))
	for _, m := range top {
		rows = append(rows, []string{
			CharLabel(m.Char),
			fmt.Sprintf("%d", m.Count),
			fmt.Sprintf("%.2f%%", Share(m.Count, total)*100),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Share returns count/total, or 0 when total is 0.
func Share(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total)
}
