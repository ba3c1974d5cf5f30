// Package generator produces lines of practice content.
package generator

import (
	"math/rand"
	"time"
	"unicode/utf8"
)

// Source produces one line of practice text at most maxWidth runes wide.
type Source interface {
	NextLine(maxWidth int) string
}

// asciiCharset is the fixed alphabet of the ASCII source. Digits are left out.
const asciiCharset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"~`!@#$%^&*()-_+={}[]|\\:;\"'<>,.?/"

// NewRand returns a random source seeded with the current time.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Alphabet returns the characters the ASCII source draws from.
func Alphabet() string {
	return asciiCharset
}

// ASCII emits fixed-width lines of uniformly random characters.
type ASCII struct {
	rnd *rand.Rand
}

// NewASCII returns an ASCII source drawing from rnd.
func NewASCII(rnd *rand.Rand) *ASCII {
	return &ASCII{rnd: rnd}
}

// NextLine returns exactly maxWidth random characters.
func (a *ASCII) NextLine(maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	line := make([]byte, maxWidth)
	for i := range line {
		line[i] = asciiCharset[a.rnd.Intn(len(asciiCharset))]
	}
	return string(line)
}

// Words emits lines of words drawn uniformly at random.
type Words struct {
	rnd     *rand.Rand
	words   []string
	pending string
}

// NewWords returns a word source over words. Callers must not request lines
// while the list is empty.
func NewWords(rnd *rand.Rand, words []string) *Words {
	return &Words{rnd: rnd, words: words}
}

// Len returns the number of words available.
func (w *Words) Len() int {
	return len(w.words)
}

// NextLine joins random words with spaces until the next one would overflow.
func (w *Words) NextLine(maxWidth int) string {
	if len(w.words) == 0 {
		panic("generator: NextLine on empty word list")
	}
	w.pending = ""
	return fillLine(w, maxWidth)
}

func (w *Words) peek() string {
	if w.pending == "" {
		w.pending = w.words[w.rnd.Intn(len(w.words))]
	}
	return w.pending
}

func (w *Words) advance() {
	w.pending = ""
}

// Text emits lines of corpus tokens in order, wrapping at the end of the
// corpus. The cursor points at the next token to be consumed.
type Text struct {
	tokens []string
	cursor int
}

// NewText returns a text source positioned at cursor. Out-of-range cursors
// restart at the beginning of the corpus.
func NewText(tokens []string, cursor int) *Text {
	t := &Text{tokens: tokens}
	t.SetCursor(cursor)
	return t
}

// Len returns the number of tokens in the corpus.
func (t *Text) Len() int {
	return len(t.tokens)
}

// Cursor returns the index of the next token to be consumed.
func (t *Text) Cursor() int {
	return t.cursor
}

// SetCursor moves the cursor, resetting it to 0 when outside [0, Len()].
func (t *Text) SetCursor(cursor int) {
	if cursor < 0 || cursor > len(t.tokens) {
		cursor = 0
	}
	t.cursor = cursor
}

// Rewind moves the cursor back by n tokens, stopping at 0.
func (t *Text) Rewind(n int) {
	if n <= 0 {
		return
	}
	if t.cursor >= n {
		t.cursor -= n
		return
	}
	t.cursor = 0
}

// NextLine joins corpus tokens from the cursor until the next one would
// overflow, advancing the cursor past every token it used.
func (t *Text) NextLine(maxWidth int) string {
	if len(t.tokens) == 0 {
		panic("generator: NextLine on empty corpus")
	}
	return fillLine(t, maxWidth)
}

func (t *Text) peek() string {
	if t.cursor >= len(t.tokens) {
		t.cursor = 0
	}
	return t.tokens[t.cursor]
}

func (t *Text) advance() {
	t.cursor++
}

type tokenStream interface {
	peek() string
	advance()
}

// fillLine accumulates space-joined tokens while the line fits in maxWidth.
// A first token wider than maxWidth is truncated and taken on its own so a
// line is never empty.
func fillLine(s tokenStream, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	var line []byte
	width := 0
	for {
		token := s.peek()
		tokenWidth := utf8.RuneCountInString(token)
		if width == 0 {
			if tokenWidth > maxWidth {
				s.advance()
				return truncateRunes(token, maxWidth)
			}
			line = append(line, token...)
			width = tokenWidth
			s.advance()
			continue
		}
		if width+1+tokenWidth > maxWidth {
			return string(line)
		}
		line = append(line, ' ')
		line = append(line, token...)
		width += 1 + tokenWidth
		s.advance()
	}
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
