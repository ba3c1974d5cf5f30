// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/ttypr/internal/config"
	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/session"
	statsPkg "github.com/verte-zerg/ttypr/internal/stats"
	"github.com/verte-zerg/ttypr/internal/store"
)

// tickInterval bounds how long an idle screen waits before notification
// expiry is checked.
const tickInterval = 50 * time.Millisecond

type screen int

const (
	screenMenu screen = iota
	screenTyping
)

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayMistakes
)

type tickMsg time.Time

// Options configures the typing UI.
type Options struct {
	// StatePath is where the state file is written when the first-run page
	// is dismissed.
	StatePath string
	WordsPath string
	TextPath  string
	// Store supplies the footer history. It may be nil.
	Store *store.Store
	Now   func() time.Time
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	sess    *session.Session
	opts    Options
	now     func() time.Time
	keys    keyMap
	help    help.Model
	notices session.Notifications

	screen   screen
	overlay  overlay
	mistakes table.Model

	width  int
	height int

	history statsPkg.History
	lastWPM float64
	lastAcc float64
	hasLast bool

	allWPM float64
	allAcc float64
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0")).Bold(true)
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	infoStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modalStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A")).
				Padding(1, 2)
)

// NewModel constructs a typing TUI model.
func NewModel(sess *session.Session, opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	m := &Model{
		sess: sess,
		opts: opts,
		now:  now,
		keys: newKeyMap(),
		help: help.New(),
	}
	m.loadFooterStats()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.overlay == overlayMistakes {
			m.mistakes = buildMistakeTable(m.sess.Mistakes(), m.history, m.modalInnerWidth(), m.height)
		}
		return m, nil
	case tickMsg:
		m.notices.OnTick(time.Time(msg))
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess.State().FirstRun {
		if key.Matches(msg, m.keys.Confirm) {
			m.dismissFirstRun()
		}
		return m, nil
	}

	switch m.overlay {
	case overlayHelp:
		if key.Matches(msg, m.keys.Confirm, m.keys.Help) {
			m.overlay = overlayNone
			return m, tea.ClearScreen
		}
		return m, nil
	case overlayMistakes:
		if key.Matches(msg, m.keys.Confirm, m.keys.Report) {
			m.overlay = overlayNone
			return m, tea.ClearScreen
		}
		if key.Matches(msg, m.keys.Copy) {
			m.copyMistakes()
			return m, nil
		}
		var cmd tea.Cmd
		m.mistakes, cmd = m.mistakes.Update(msg)
		return m, cmd
	}

	if m.screen == screenTyping {
		return m.handleTypingKey(msg)
	}
	return m.handleMenuKey(msg)
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Insert):
		if !m.sess.CanType() {
			return m, nil
		}
		m.setScreen(screenTyping)
		m.notices.Show(session.NoticeMode, now)
	case key.Matches(msg, m.keys.Option):
		m.sess.CycleMode()
		m.notices.Show(session.NoticeOption, now)
		return m, tea.ClearScreen
	case key.Matches(msg, m.keys.Notifications):
		m.sess.ToggleNotifications()
		m.notices.Show(session.NoticeToggle, now)
	case key.Matches(msg, m.keys.Mistyped):
		m.sess.ToggleSaveMistyped()
		m.notices.Show(session.NoticeMistyped, now)
	case key.Matches(msg, m.keys.Reset):
		m.sess.ResetMistakes()
		m.notices.Show(session.NoticeClearMistyped, now)
	case key.Matches(msg, m.keys.Report):
		m.overlay = overlayMistakes
		m.mistakes = buildMistakeTable(m.sess.Mistakes(), m.history, m.modalInnerWidth(), m.height)
		return m, tea.ClearScreen
	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, tea.ClearScreen
	case key.Matches(msg, m.keys.Confirm):
		m.sess.UseDefaultCorpus()
	}
	return m, nil
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.setScreen(screenMenu)
		m.notices.Show(session.NoticeMode, m.now())
	case tea.KeyBackspace, tea.KeyDelete:
		m.sess.Backspace()
	case tea.KeySpace:
		m.sess.Type(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.sess.Type(r)
		}
	}
	return m, nil
}

func (m *Model) setScreen(s screen) {
	m.screen = s
	m.keys.typing = s == screenTyping
}

func (m *Model) dismissFirstRun() {
	st := m.sess.State()
	st.FirstRun = false
	if m.opts.StatePath == "" {
		return
	}
	if err := config.SaveState(m.opts.StatePath, *st); err != nil {
		logErrf("failed to save config: %v\n", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch {
	case m.sess.State().FirstRun:
		content = m.renderModal("Welcome to ttypr", firstRunText, "")
	case m.overlay == overlayHelp:
		helpView := m.help
		helpView.ShowAll = true
		helpView.Width = m.modalInnerWidth()
		content = m.renderModal("Help", helpText, helpView.View(m.keys))
	case m.overlay == overlayMistakes:
		content = m.renderMistakes()
	default:
		content = m.renderPractice()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}

	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderPractice() string {
	header := headerStyle.Render(fmt.Sprintf("%s · %s", m.screenLabel(), m.sess.Mode()))
	if !m.sess.HasCorpus() {
		msg := wrapText(m.emptyCorpusText(), m.textWidth())
		return lipgloss.JoinVertical(lipgloss.Center, header, "", infoStyle.Render(msg), "", m.renderNotices())
	}

	snap := m.sess.Snapshot()
	typed := len(snap.Typed)
	contentWidth := 0
	for _, line := range snap.Lines() {
		if w := runewidth.StringWidth(string(line.Target)); w > contentWidth {
			contentWidth = w
		}
	}
	if m.width > 0 && contentWidth > m.width {
		contentWidth = m.width
	}

	rendered := make([]string, 0, len(snap.LineLens)*2)
	offset := 0
	for _, line := range snap.Lines() {
		cursor := -1
		if m.screen == screenTyping && typed >= offset && typed < offset+len(line.Target) {
			cursor = typed - offset
		}
		rendered = append(rendered, renderLine(line, cursor, m.width), "")
		offset += len(line.Target)
	}
	lines := lipgloss.NewStyle().Width(contentWidth).Render(strings.Join(rendered, "\n"))
	return lipgloss.JoinVertical(lipgloss.Center, header, "", lines, m.renderNotices())
}

func (m *Model) screenLabel() string {
	if m.screen == screenTyping {
		return "Typing"
	}
	return "Menu"
}

func (m *Model) emptyCorpusText() string {
	if m.sess.Mode() == model.ModeWords {
		return fmt.Sprintf("No words found. Put a whitespace separated word list in %s and restart, or press enter to use the default word set.", m.opts.WordsPath)
	}
	return fmt.Sprintf("No text found. Put the text you want to practice in %s and restart, or press enter to use the default text.", m.opts.TextPath)
}

func (m *Model) renderNotices() string {
	st := m.sess.State()
	var parts []string
	if st.ShowNotifications {
		if m.notices.Has(session.NoticeMode) {
			parts = append(parts, m.screenLabel()+" mode")
		}
		if m.notices.Has(session.NoticeOption) {
			parts = append(parts, "Content: "+m.sess.Mode().String())
		}
		if m.notices.Has(session.NoticeMistyped) {
			parts = append(parts, "Mistake tracking "+onOff(st.SaveMistyped))
		}
		if m.notices.Has(session.NoticeClearMistyped) {
			parts = append(parts, "Mistakes cleared")
		}
		if m.notices.Has(session.NoticeCopied) {
			parts = append(parts, "Report copied")
		}
	}
	if m.notices.Has(session.NoticeToggle) {
		parts = append(parts, "Notifications "+onOff(st.ShowNotifications))
	}
	return noticeStyle.Render(strings.Join(parts, " · "))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// renderModal draws a bordered box with a wrapped body and an optional
// preformatted tail.
func (m *Model) renderModal(title, body, tail string) string {
	text := titleStyle.Render(title) + "\n\n" + wrapText(body, m.modalInnerWidth())
	if tail != "" {
		text += "\n\n" + tail
	}
	return modalStyle.Width(modalWidth(m.width)).Render(text)
}

func (m *Model) renderMistakes() string {
	body := m.mistakes.View()
	if len(m.sess.Mistakes()) == 0 {
		body = "No mistyped characters recorded."
	}
	hint := footerStyle.Render("enter/w close · y copy")
	text := titleStyle.Render("Most Mistyped") + "\n\n" + body + "\n\n" + hint
	if notices := m.renderNotices(); notices != "" {
		text += "\n" + notices
	}
	return modalStyle.Width(modalWidth(m.width)).Render(text)
}

func (m *Model) textWidth() int {
	w := m.sess.LineWidth()
	if m.width > 0 && m.width < w {
		w = m.width
	}
	return w
}

func (m *Model) modalInnerWidth() int {
	return modalInnerWidth(m.width)
}

func (m *Model) loadFooterStats() {
	if m.opts.Store == nil {
		return
	}
	history, err := statsPkg.LoadHistory(context.Background(), m.opts.Store)
	if err != nil {
		logErrf("failed to load session stats: %v\n", err)
		return
	}
	m.history = history
	if last, ok := history.Last(); ok {
		wpm, _, acc := statsPkg.SessionMetrics(last.Correct, last.Incorrect, last.DurationMs)
		m.lastWPM = wpm
		m.lastAcc = acc
		m.hasLast = true
	}
	m.allWPM, m.allAcc = history.AllTime()
}

func (m *Model) renderFooter() string {
	segments := []string{}
	correct, incorrect, durationMs := m.sess.LiveMetrics()
	if correct+incorrect > 0 {
		wpm, _, acc := statsPkg.SessionMetrics(correct, incorrect, durationMs)
		segments = append(segments, fmt.Sprintf("Now %.1f WPM · %.1f%%", wpm, acc*100))
	}
	if m.hasLast {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.lastWPM, m.lastAcc*100))
		segments = append(segments, fmt.Sprintf("All-time %.1f WPM · %.1f%%", m.allWPM, m.allAcc*100))
	}
	segments = append(segments, m.help.View(m.keys))
	footer := strings.Join(segments, "  ")
	return footerStyle.Render(footer)
}

func modalWidth(width int) int {
	if width <= 0 {
		return 60
	}
	w := width * 2 / 3
	if w < 30 {
		w = width
	}
	if w > 80 {
		w = 80
	}
	return w
}

func modalInnerWidth(width int) int {
	// horizontal padding
	inner := modalWidth(width) - 4
	if inner < 10 {
		inner = 10
	}
	return inner
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
