package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/ttypr/internal/model"
)

func TestSessionMetrics(t *testing.T) {
	wpm, cpm, acc := SessionMetrics(50, 50, 60000)
	if math.Abs(wpm-10) > 1e-9 {
		t.Fatalf("expected 10 WPM, got %f", wpm)
	}
	if math.Abs(cpm-50) > 1e-9 {
		t.Fatalf("expected 50 CPM, got %f", cpm)
	}
	if math.Abs(acc-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 accuracy, got %f", acc)
	}
	if wpm, _, _ := SessionMetrics(10, 0, 0); wpm != 0 {
		t.Fatalf("expected zero metrics for zero duration")
	}
}

func TestRenderMistakeTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMistakeTable(&buf, map[string]int{" ": 1, "e": 3}, 10); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[1] != "Char    Count  Share" {
		t.Fatalf("unexpected header: %q", lines[1])
	}
	if lines[2] != "e           3 75.00%" {
		t.Fatalf("unexpected first row: %q", lines[2])
	}
	if lines[3] != "<space>     1 25.00%" {
		t.Fatalf("unexpected second row: %q", lines[3])
	}
}

func TestRenderMistakeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMistakeTable(&buf, nil, 10); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No mistyped characters") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	run := model.SessionStats{Mode: model.ModeText, CorrectNonSpace: 25, DurationMs: 60000}
	if err := RenderSummary(&buf, run); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Mode: Text", "WPM: 5.00", "Accuracy: 100.00%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q: %s", want, out)
		}
	}
}
