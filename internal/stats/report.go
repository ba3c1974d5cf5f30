package stats

import (
	"context"

	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/store"
)

// History holds the stored runs used by the footer and the mistake report.
type History struct {
	Sessions     []model.SessionAggregate
	Chars        map[string]model.CharAggregate
	AllCorrect   int
	AllIncorrect int
	AllDuration  int64
}

// LoadHistory reads every stored run and totals them.
func LoadHistory(ctx context.Context, st *store.Store) (History, error) {
	sessions, err := st.ListSessions(ctx)
	if err != nil {
		return History{}, err
	}
	chars, err := st.ListCharAggregates(ctx)
	if err != nil {
		return History{}, err
	}
	h := History{Sessions: sessions, Chars: make(map[string]model.CharAggregate, len(chars))}
	for _, c := range chars {
		h.Chars[c.Char] = c
	}
	for _, s := range sessions {
		h.AllCorrect += s.Correct
		h.AllIncorrect += s.Incorrect
		h.AllDuration += s.DurationMs
	}
	return h, nil
}

// Last returns the most recent run, if any.
func (h History) Last() (model.SessionAggregate, bool) {
	if len(h.Sessions) == 0 {
		return model.SessionAggregate{}, false
	}
	return h.Sessions[len(h.Sessions)-1], true
}

// AllTime returns WPM and accuracy over every stored run.
func (h History) AllTime() (wpm, accuracy float64) {
	wpm, _, accuracy = SessionMetrics(h.AllCorrect, h.AllIncorrect, h.AllDuration)
	return wpm, accuracy
}

// CharAccuracy returns the stored accuracy of ch as the expected character.
// ok is false when ch was never typed.
func (h History) CharAccuracy(ch string) (accuracy float64, ok bool) {
	agg, found := h.Chars[ch]
	if !found || agg.Correct+agg.Incorrect == 0 {
		return 0, false
	}
	return float64(agg.Correct) / float64(agg.Correct+agg.Incorrect), true
}
