package session

import (
	"sort"
	"time"

	"github.com/verte-zerg/ttypr/internal/model"
)

type charStat struct {
	correct   int
	incorrect int
}

// runStats accumulates keystroke counts for the current run. Spaces are not
// counted.
type runStats struct {
	started   bool
	startedAt time.Time

	correctNonSpace   int
	incorrectNonSpace int
	charStats         map[rune]*charStat
}

func newRunStats() runStats {
	return runStats{charStats: map[rune]*charStat{}}
}

func (r *runStats) record(expected rune, correct bool, now time.Time) {
	if !r.started {
		r.started = true
		r.startedAt = now
	}
	if expected == ' ' {
		return
	}
	entry := r.charEntry(expected)
	if correct {
		r.correctNonSpace++
		entry.correct++
		return
	}
	r.incorrectNonSpace++
	entry.incorrect++
}

func (r *runStats) charEntry(expected rune) *charStat {
	entry, ok := r.charStats[expected]
	if !ok {
		entry = &charStat{}
		r.charStats[expected] = entry
	}
	return entry
}

func (r *runStats) live(now time.Time) (correct, incorrect int, durationMs int64) {
	if !r.started {
		return 0, 0, 0
	}
	return r.correctNonSpace, r.incorrectNonSpace, now.Sub(r.startedAt).Milliseconds()
}

func (r *runStats) result(mode model.Mode, endedAt time.Time) (model.SessionStats, []model.CharStats, bool) {
	if !r.started {
		return model.SessionStats{}, nil, false
	}
	stats := model.SessionStats{
		StartedAt:         r.startedAt,
		EndedAt:           endedAt,
		Mode:              mode,
		CorrectNonSpace:   r.correctNonSpace,
		IncorrectNonSpace: r.incorrectNonSpace,
		DurationMs:        endedAt.Sub(r.startedAt).Milliseconds(),
	}
	chars := make([]model.CharStats, 0, len(r.charStats))
	for ch, entry := range r.charStats {
		chars = append(chars, model.CharStats{
			Char:      string(ch),
			Correct:   entry.correct,
			Incorrect: entry.incorrect,
		})
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i].Char < chars[j].Char })
	return stats, chars, true
}
