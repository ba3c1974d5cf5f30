// Package session drives a typing practice run: it feeds keystrokes into the
// scrolling buffer, refills lines from the active content source, switches
// content modes and keeps the mistake ledger and corpus position current.
package session

import (
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/ttypr/internal/buffer"
	"github.com/verte-zerg/ttypr/internal/config"
	"github.com/verte-zerg/ttypr/internal/generator"
	"github.com/verte-zerg/ttypr/internal/model"
	"github.com/verte-zerg/ttypr/internal/wordlist"
)

// VisibleLines is the number of lines kept in the buffer.
const VisibleLines = 3

// Options configures a new Session.
type Options struct {
	// Words and Text are the tokens read from the user's files.
	Words []string
	Text  []string
	// TextHash identifies the current text file contents, "" when absent.
	TextHash string
	Rand     *rand.Rand
	Now      func() time.Time
}

// Session is the state of one practice run. It owns the persisted state it
// was created with and mutates it in place.
type Session struct {
	state *config.State
	buf   *buffer.Buffer
	mode  model.Mode
	rnd   *rand.Rand
	now   func() time.Time

	ascii *generator.ASCII
	words *generator.Words
	text  *generator.Text

	// lineTokens holds the corpus token count of each buffered Text line;
	// lookahead is their sum.
	lineTokens []int
	lookahead  int

	run runStats
}

// New reconciles state with the loaded corpora and fills the buffer for the
// starting ASCII mode.
func New(state *config.State, opts Options) *Session {
	if state.Mistyped == nil {
		state.Mistyped = map[string]int{}
	}
	if state.LineWidth <= 0 {
		state.LineWidth = config.DefaultLineWidth
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = generator.NewRand()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	words, text := reconcile(state, opts.Words, opts.Text, opts.TextHash)

	s := &Session{
		state: state,
		buf:   buffer.New(),
		mode:  model.ModeASCII,
		rnd:   rnd,
		now:   now,
		ascii: generator.NewASCII(rnd),
		words: generator.NewWords(rnd, words),
		text:  generator.NewText(text, state.CorpusCursor),
		run:   newRunStats(),
	}
	s.syncCursor()
	s.fill()
	return s
}

// reconcile applies the persisted corpus choices to the freshly loaded
// files and returns the corpora to practice with.
func reconcile(state *config.State, words, text []string, textHash string) ([]string, []string) {
	if len(words) > 0 {
		state.UseDefaultWords = false
	}
	if state.UseDefaultWords {
		words = wordlist.DefaultWords()
	}

	// A user file replaces the default text and starts from its beginning.
	if len(text) > 0 && state.UseDefaultText {
		state.UseDefaultText = false
		state.CorpusCursor = 0
	}
	if len(text) == 0 && !state.UseDefaultText {
		state.CorpusCursor = 0
	}
	if state.UseDefaultText {
		text = wordlist.DefaultText()
	}

	if state.TextHash != textHash {
		state.CorpusCursor = 0
	}
	state.TextHash = textHash

	if state.CorpusCursor < 0 || state.CorpusCursor > len(text) {
		state.CorpusCursor = 0
	}
	return words, text
}

// Mode returns the active content mode.
func (s *Session) Mode() model.Mode {
	return s.mode
}

// State returns the persisted state owned by the session.
func (s *Session) State() *config.State {
	return s.state
}

// LineWidth returns the maximum practice line width.
func (s *Session) LineWidth() int {
	return s.state.LineWidth
}

// Snapshot returns the buffer contents for rendering.
func (s *Session) Snapshot() buffer.Snapshot {
	return s.buf.Snapshot()
}

// HasCorpus reports whether the active mode has content to practice.
func (s *Session) HasCorpus() bool {
	switch s.mode {
	case model.ModeWords:
		return s.words.Len() > 0
	case model.ModeText:
		return s.text.Len() > 0
	default:
		return true
	}
}

// CanType reports whether keystrokes may be processed in the active mode.
func (s *Session) CanType() bool {
	return s.HasCorpus() && !s.buf.Empty()
}

// Type records one keystroke. It returns false when the keystroke was
// ignored and nothing needs redrawing.
func (s *Session) Type(r rune) bool {
	if !s.CanType() {
		return false
	}
	expected, correct, ok := s.buf.Record(r)
	if !ok {
		return false
	}
	s.run.record(expected, correct, s.now())
	if !correct && s.state.SaveMistyped {
		s.state.Mistyped[string(expected)]++
	}
	if s.buf.NeedsRetire() {
		s.retire()
	}
	return true
}

// Backspace removes the last keystroke. It returns false at the start of the
// buffer.
func (s *Session) Backspace() bool {
	return s.buf.Backspace()
}

// CycleMode switches to the next content mode and refills the buffer.
func (s *Session) CycleMode() model.Mode {
	if s.mode == model.ModeText {
		s.releaseLookahead()
	}
	s.buf.Clear()
	s.mode = s.mode.Next()
	s.fill()
	return s.mode
}

// UseDefaultCorpus loads the built-in corpus for the active mode when the
// user supplied none. It reports whether anything changed.
func (s *Session) UseDefaultCorpus() bool {
	switch s.mode {
	case model.ModeWords:
		if s.words.Len() > 0 {
			return false
		}
		s.words = generator.NewWords(s.rnd, wordlist.DefaultWords())
		s.state.UseDefaultWords = true
	case model.ModeText:
		if s.text.Len() > 0 {
			return false
		}
		s.text = generator.NewText(wordlist.DefaultText(), s.state.CorpusCursor)
		s.state.UseDefaultText = true
		s.syncCursor()
	default:
		return false
	}
	s.buf.Clear()
	s.fill()
	return true
}

// ToggleSaveMistyped flips mistake tracking and returns the new value.
func (s *Session) ToggleSaveMistyped() bool {
	s.state.SaveMistyped = !s.state.SaveMistyped
	return s.state.SaveMistyped
}

// ToggleNotifications flips notification display and returns the new value.
func (s *Session) ToggleNotifications() bool {
	s.state.ShowNotifications = !s.state.ShowNotifications
	return s.state.ShowNotifications
}

// ResetMistakes empties the mistake ledger.
func (s *Session) ResetMistakes() {
	s.state.Mistyped = map[string]int{}
}

// Mistakes returns the ledger sorted by count, then character.
func (s *Session) Mistakes() []model.Mistake {
	return s.state.Mistakes()
}

// Finish ends the run: Text read-ahead is given back to the corpus cursor
// and the run's stats are returned. ok is false when nothing was typed.
func (s *Session) Finish() (run model.SessionStats, chars []model.CharStats, ok bool) {
	if s.mode == model.ModeText {
		s.releaseLookahead()
	}
	return s.run.result(s.mode, s.now())
}

// LiveMetrics returns the current run's WPM inputs.
func (s *Session) LiveMetrics() (correct, incorrect int, durationMs int64) {
	return s.run.live(s.now())
}

func (s *Session) source() generator.Source {
	switch s.mode {
	case model.ModeWords:
		return s.words
	case model.ModeText:
		return s.text
	default:
		return s.ascii
	}
}

func (s *Session) fill() {
	if !s.HasCorpus() {
		return
	}
	for i := 0; i < VisibleLines; i++ {
		s.buf.AppendLine(s.nextLine())
	}
}

func (s *Session) nextLine() string {
	line := s.source().NextLine(s.state.LineWidth)
	if s.mode == model.ModeText {
		n := len(strings.Fields(line))
		s.lineTokens = append(s.lineTokens, n)
		s.lookahead += n
		s.syncCursor()
	}
	return line
}

func (s *Session) retire() {
	next := s.nextLine()
	s.buf.RetireAndRefill(next)
	if s.mode == model.ModeText && len(s.lineTokens) > 0 {
		s.lookahead -= s.lineTokens[0]
		s.lineTokens = s.lineTokens[1:]
	}
}

// releaseLookahead rewinds the corpus cursor over tokens generated for lines
// that were never finished. It must run before the buffer is cleared.
func (s *Session) releaseLookahead() {
	s.text.Rewind(s.unconsumedTokens())
	s.lookahead = 0
	s.lineTokens = nil
	s.syncCursor()
}

// unconsumedTokens is the read-ahead minus the tokens of a fully typed head line.
func (s *Session) unconsumedTokens() int {
	n := s.lookahead
	typed := s.buf.TypedLen()
	for i, l := range s.buf.LineLens() {
		if i >= len(s.lineTokens) || l == 0 || typed < l {
			break
		}
		typed -= l
		n -= s.lineTokens[i]
	}
	return n
}

func (s *Session) syncCursor() {
	if s.text.Len() == 0 {
		return
	}
	s.state.CorpusCursor = s.text.Cursor()
}
