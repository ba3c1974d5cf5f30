// Package stats contains statistics calculations and reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/ttypr/internal/model"
)

// SortMistakes orders the ledger by count descending, then by character.
func SortMistakes(ledger map[string]int) []model.Mistake {
	if len(ledger) == 0 {
		return nil
	}
	items := make([]model.Mistake, 0, len(ledger))
	for ch, count := range ledger {
		items = append(items, model.Mistake{Char: ch, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Char < items[j].Char
		}
		return items[i].Count > items[j].Count
	})
	return items
}

// TopMistakes returns at most n entries of the sorted ledger.
func TopMistakes(ledger map[string]int, n int) []model.Mistake {
	sorted := SortMistakes(ledger)
	if n <= 0 {
		return nil
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// TotalMistakes sums all ledger counts.
func TotalMistakes(ledger map[string]int) int {
	total := 0
	for _, count := range ledger {
		total += count
	}
	return total
}

// CharLabel makes whitespace visible in reports.
func CharLabel(ch string) string {
	switch ch {
	case " ":
		return "<space>"
	case "\t":
		return "<tab>"
	default:
		return ch
	}
}
