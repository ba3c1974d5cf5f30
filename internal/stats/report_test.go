package stats

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/store"
)

func TestLoadHistory(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "ttypr.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		run := model.SessionStats{
			StartedAt:         start,
			EndedAt:           end,
			Mode:              model.ModeWords,
			CorrectNonSpace:   10,
			IncorrectNonSpace: 10,
			DurationMs:        end.Sub(start).Milliseconds(),
		}
		chars := []model.CharStats{{Char: "a", Correct: 3, Incorrect: 1}}
		if _, err := st.InsertSession(ctx, run, chars); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	h, err := LoadHistory(ctx, st)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	if len(h.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(h.Sessions))
	}
	if h.AllCorrect != 30 || h.AllIncorrect != 30 || h.AllDuration != 90000 {
		t.Fatalf("unexpected totals: %+v", h)
	}
	last, ok := h.Last()
	if !ok || last.SessionID != h.Sessions[2].SessionID {
		t.Fatalf("expected last session")
	}
	if acc, ok := h.CharAccuracy("a"); !ok || math.Abs(acc-0.75) > 1e-9 {
		t.Fatalf("unexpected char accuracy: %f %v", acc, ok)
	}
	if _, ok := h.CharAccuracy("z"); ok {
		t.Fatalf("expected no accuracy for untyped char")
	}
	wpm, acc := h.AllTime()
	if math.Abs(wpm-4) > 1e-9 || math.Abs(acc-0.5) > 1e-9 {
		t.Fatalf("unexpected all-time metrics: %f %f", wpm, acc)
	}
}

func TestHistoryEmpty(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Fatalf("expected no last session")
	}
	if wpm, acc := h.AllTime(); wpm != 0 || acc != 0 {
		t.Fatalf("expected zero metrics")
	}
}
