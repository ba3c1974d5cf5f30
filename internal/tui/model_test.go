package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/ttypr/internal/config"
	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/session"
)

func newTestModel(t *testing.T, firstRun bool) (*Model, *config.State, string) {
	t.Helper()
	state := config.DefaultState()
	state.FirstRun = firstRun
	statePath := filepath.Join(t.TempDir(), "config.toml")
	clock := time.Unix(0, 0)
	sess := session.New(&state, session.Options{Now: func() time.Time { return clock }})
	m := NewModel(sess, Options{
		StatePath: statePath,
		WordsPath: "/cfg/words.txt",
		TextPath:  "/cfg/text.txt",
		Now:       func() time.Time { return clock },
	})
	return m, &state, statePath
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msg tea.KeyMsg) {
	m.Update(msg)
}

func TestFirstRunCapturesInput(t *testing.T) {
	m, state, statePath := newTestModel(t, true)
	press(m, runeKey("o"))
	if m.sess.Mode() != model.ModeASCII {
		t.Fatalf("expected first-run page to capture keys")
	}
	if !strings.Contains(m.View(), "Welcome") {
		t.Fatalf("expected welcome page")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if state.FirstRun {
		t.Fatalf("expected first run dismissed")
	}
	saved, err := config.LoadState(statePath)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if saved.FirstRun {
		t.Fatalf("expected first_run=false to be saved")
	}
}

func TestTypingModeKeys(t *testing.T) {
	m, _, _ := newTestModel(t, false)
	target := m.sess.Snapshot().Target

	press(m, runeKey("x"))
	if len(m.sess.Snapshot().Typed) != 0 {
		t.Fatalf("expected menu keys not to type")
	}

	press(m, runeKey("i"))
	if m.screen != screenTyping || !m.notices.Has(session.NoticeMode) {
		t.Fatalf("expected typing screen with mode notice")
	}
	press(m, runeKey(string(target[0])))
	press(m, runeKey("q"))
	snap := m.sess.Snapshot()
	if len(snap.Typed) != 2 || snap.Status[0] != model.Correct {
		t.Fatalf("expected two keystrokes recorded, got %q", string(snap.Typed))
	}

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if len(m.sess.Snapshot().Typed) != 1 {
		t.Fatalf("expected backspace to remove a keystroke")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("expected esc to return to menu")
	}
}

func TestMenuOptionAndDefaultCorpus(t *testing.T) {
	m, state, _ := newTestModel(t, false)
	press(m, runeKey("o"))
	if m.sess.Mode() != model.ModeWords || !m.notices.Has(session.NoticeOption) {
		t.Fatalf("expected Words mode with option notice")
	}
	if !strings.Contains(m.View(), "/cfg/words.txt") {
		t.Fatalf("expected empty corpus instructions")
	}

	press(m, runeKey("i"))
	if m.screen != screenMenu {
		t.Fatalf("expected typing to be gated without words")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !state.UseDefaultWords || !m.sess.CanType() {
		t.Fatalf("expected default words loaded")
	}
	press(m, runeKey("i"))
	if m.screen != screenTyping {
		t.Fatalf("expected typing after default words")
	}
}

func TestMenuToggles(t *testing.T) {
	m, state, _ := newTestModel(t, false)
	press(m, runeKey("n"))
	if state.ShowNotifications || !m.notices.Has(session.NoticeToggle) {
		t.Fatalf("expected notifications off with toggle notice")
	}
	if !strings.Contains(m.renderNotices(), "Notifications off") {
		t.Fatalf("expected toggle notice to render while notifications are off")
	}
	press(m, runeKey("c"))
	if state.SaveMistyped {
		t.Fatalf("expected mistake tracking off")
	}
	if strings.Contains(m.renderNotices(), "Mistake tracking") {
		t.Fatalf("expected other notices hidden while notifications are off")
	}

	state.Mistyped["a"] = 3
	press(m, runeKey("r"))
	if len(state.Mistyped) != 0 || !m.notices.Has(session.NoticeClearMistyped) {
		t.Fatalf("expected ledger cleared with notice")
	}
}

func TestOverlaysCaptureInput(t *testing.T) {
	m, state, _ := newTestModel(t, false)
	state.Mistyped = map[string]int{" ": 2, "b": 1}

	press(m, runeKey("w"))
	if m.overlay != overlayMistakes {
		t.Fatalf("expected mistakes overlay")
	}
	view := m.View()
	if !strings.Contains(view, "<space>") || !strings.Contains(view, "66.67%") {
		t.Fatalf("expected mistake table, got:\n%s", view)
	}
	press(m, runeKey("o"))
	if m.sess.Mode() != model.ModeASCII {
		t.Fatalf("expected overlay to capture keys")
	}
	press(m, runeKey("w"))
	if m.overlay != overlayNone {
		t.Fatalf("expected overlay closed")
	}

	press(m, runeKey("h"))
	if m.overlay != overlayHelp {
		t.Fatalf("expected help overlay")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.overlay != overlayNone {
		t.Fatalf("expected help closed by enter")
	}
}

func TestTickExpiresNotices(t *testing.T) {
	m, _, _ := newTestModel(t, false)
	press(m, runeKey("o"))
	m.Update(tickMsg(time.Unix(1, 0)))
	if !m.notices.Any() {
		t.Fatalf("expected notice visible within ttl")
	}
	_, cmd := m.Update(tickMsg(time.Unix(3, 0)))
	if m.notices.Any() {
		t.Fatalf("expected notice expired")
	}
	if cmd == nil {
		t.Fatalf("expected tick to be rescheduled")
	}
}

func TestCtrlCQuitsFromAnyScreen(t *testing.T) {
	m, _, _ := newTestModel(t, true)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestCopyMistakes(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, state, _ := newTestModel(t, false)
	state.Mistyped = map[string]int{"b": 2}
	press(m, runeKey("w"))
	press(m, runeKey("y"))
	if !strings.Contains(copied, "Most Mistyped") || !strings.Contains(copied, "b") {
		t.Fatalf("unexpected clipboard text: %q", copied)
	}
	if !m.notices.Has(session.NoticeCopied) {
		t.Fatalf("expected copied notice")
	}
}
